// SPDX-License-Identifier: GPL-3.0-or-later
package index

import (
	"fmt"
	"time"

	"github.com/jberkel/imap-dedup/domain"
	"github.com/jberkel/imap-dedup/mail"

	"github.com/sirupsen/logrus"
)

// ProgressFunc is called after every fetched header.
type ProgressFunc func(label string, seqNum uint32, messages uint32)

type Scanner struct {
	source   domain.MessageSource
	progress ProgressFunc

	l *logrus.Logger
}

func NewScanner(source domain.MessageSource, l *logrus.Logger, progress ProgressFunc) *Scanner {
	return &Scanner{
		source:   source,
		progress: progress,
		l:        l,
	}
}

// Scan indexes labels in the given order, messages within a label in ascending
// sequence number order. Any failure leaves the index Incomplete, it must not
// be used for deletion afterwards.
func (s *Scanner) Scan(idx *Index, labels []string) error {
	if idx.Status() == Incomplete {
		return fmt.Errorf("cannot continue scan: %w", domain.ErrIndexIncomplete)
	}

	idx.status = Building
	for _, label := range labels {
		err := s.scanLabel(idx, label)
		if err != nil {
			idx.status = Incomplete
			return err
		}
	}

	idx.status = Complete
	s.l.WithFields(logrus.Fields{"labels": labels, "messages": idx.Total(), "fingerprints": idx.Len(), "duplicates": len(idx.Duplicates())}).Info("Index complete")
	return nil
}

func (s *Scanner) scanLabel(idx *Index, label string) error {
	if idx.Scanned(label) {
		return fmt.Errorf("could not scan %s: %w", label, domain.ErrLabelAlreadyScanned)
	}

	start := time.Now()
	status, err := s.source.Select(label, true)
	if err != nil {
		return fmt.Errorf("could not select label %s: %w", label, err)
	}
	idx.MarkScanned(label)
	idx.SetUidValidity(label, status.UidValidity)

	baseLogger := s.l.WithFields(logrus.Fields{"label": label})
	baseLogger.WithFields(logrus.Fields{"messages": status.Messages, "uidvalidity": status.UidValidity}).Info("Scanning label")

	for seqNum := uint32(1); seqNum <= status.Messages; seqNum++ {
		header, err := s.source.FetchHeader(seqNum)
		if err != nil {
			return fmt.Errorf("could not fetch header %d/%d in %s: %w", seqNum, status.Messages, label, err)
		}

		fingerprint := mail.Fingerprint(header.Identity)
		err = idx.Add(fingerprint, domain.MessageLocation{Label: label, Uid: header.Uid})
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrProtocol, err)
		}

		baseLogger.WithFields(logrus.Fields{"seq": seqNum, "uid": header.Uid, "fingerprint": fingerprint}).Trace("Indexed message")
		if s.progress != nil {
			s.progress(label, seqNum, status.Messages)
		}
	}

	baseLogger.WithFields(logrus.Fields{"messages": status.Messages, "duration": time.Since(start)}).Info("Scanned label")
	return nil
}
