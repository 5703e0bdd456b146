// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "github.com/emersion/go-imap"

//go:generate mockgen -destination=mocks/imap.go -package=mocks . MessageSource

// MessageSource is a single, sequentially used session to the mail store.
type MessageSource interface {
	Select(label string, readOnly bool) (*LabelStatus, error)
	FetchHeader(seqNum uint32) (*Header, error)
	FetchBody(uid uint32) ([]byte, error)
	Search(criteria *imap.SearchCriteria) ([]uint32, error)
	MarkDeleted(uid uint32) error
	Expunge() error
	Move(uid uint32, label string) error

	Close() error
}
