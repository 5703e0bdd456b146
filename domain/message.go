// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "fmt"

// MessageLocation identifies one physical copy of a message on the server.
// Uids are only stable within a session of the same UIDVALIDITY.
type MessageLocation struct {
	Label string
	Uid   uint32
}

func (l MessageLocation) String() string {
	return fmt.Sprintf("%s/%d", l.Label, l.Uid)
}

// MessageIdentity holds the fields SMS Backup+ writes into the X-smssync-* headers.
// Address is kept exactly as delivered by the server.
type MessageIdentity struct {
	Timestamp int64
	Kind      int
	Address   string
}

type Fingerprint string

// DuplicateGroup lists every location sharing a fingerprint, in discovery order.
type DuplicateGroup struct {
	Fingerprint Fingerprint
	Locations   []MessageLocation
}

func (g DuplicateGroup) Size() int {
	return len(g.Locations)
}

type Header struct {
	Uid      uint32
	Identity MessageIdentity
}

type LabelStatus struct {
	Name        string
	Messages    uint32
	UidValidity uint32
	ReadOnly    bool
}

type DeletionFailure struct {
	Location    MessageLocation
	Fingerprint Fingerprint
	Err         error
}

type DeletionReport struct {
	Attempted int
	Succeeded int
	Failed    int
	Failures  []DeletionFailure
}

// Ok reports whether every attempted deletion went through.
func (r *DeletionReport) Ok() bool {
	return r.Failed == 0
}
