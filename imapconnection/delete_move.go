// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import "github.com/emersion/go-imap"

//go:generate mockgen -destination=delete_move_mocks_test.go -package=imapconnection -source delete_move.go

// Consolidated file for the deleter and quarantiner interfaces plus copyAndDeleteClient so gomock can
// generate mocks properly. Source-mode fails if there are embedded interfaces spread over multiple files.

type deleter interface {
	delete([]uint32) error
	expunge([]uint32) error
	deleteReady() (error, error)
}

type quarantiner interface {
	quarantine(uid uint32, label string) error
}

type copyAndDeleteClient interface {
	deleter
	uidCopy(seqset *imap.SeqSet, dest string) error
}
