// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

//go:generate mockgen -destination=mocks/persistence.go -package=mocks . Persistence
type ImapFolder struct {
	Name        string
	UidValidity uint32
}

type Run struct {
	Id        int64
	Started   time.Time
	Finished  *time.Time
	Labels    string
	DryRun    bool
	Indexed   int
	Attempted int
	Succeeded int
	Failed    int
}

type SaveDeletion struct {
	RunId       int64
	Fingerprint Fingerprint
	Label       string
	Uid         uint32
	DryRun      bool
	Error       *string
}

type SavedDeletion struct {
	Id          int64
	RunId       int64
	Fingerprint Fingerprint
	Label       string
	Uid         uint32
	DryRun      bool
	Error       *string
	Created     time.Time
}

type Persistence interface {
	Close() error
	AllFolders() ([]*ImapFolder, error)
	SaveFolder(name string, uidValidity uint32) error
	StartRun(labels []string, dryRun bool) (int64, error)
	FinishRun(id int64, indexed int, report *DeletionReport) error
	GetRun(id int64) (*Run, error)
	SaveDeletion(deletion SaveDeletion) error
	Deletions(runId int64) ([]*SavedDeletion, error)
}
