// SPDX-License-Identifier: GPL-3.0-or-later
package dedup

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jberkel/imap-dedup/domain"
	"github.com/jberkel/imap-dedup/index"
	"github.com/jberkel/imap-dedup/mail"
	"github.com/jberkel/imap-dedup/retention"

	"github.com/sirupsen/logrus"
)

// Candidate is a location the retention policy chose for deletion.
type Candidate struct {
	Fingerprint domain.Fingerprint
	Location    domain.MessageLocation
}

type Dedup struct {
	source      domain.MessageSource
	persistence domain.Persistence

	configuration *configuration

	l *logrus.Logger
}

func NewDedup(source domain.MessageSource, persistence domain.Persistence, l *logrus.Logger, configFunc ...ConfigFunc) (*Dedup, error) {
	config := &configuration{Policy: retention.KeepFirst}
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	return &Dedup{
		source:        source,
		persistence:   persistence,
		configuration: config,
		l:             l,
	}, nil
}

// Plan applies the retention policy to every group of idx.
func (d *Dedup) Plan(idx *index.Index) ([]Candidate, error) {
	if !idx.Complete() {
		return nil, fmt.Errorf("refusing to plan deletions on %s index: %w", idx.Status(), domain.ErrIndexIncomplete)
	}

	candidates := []Candidate{}
	for _, g := range idx.Duplicates() {
		for _, l := range d.configuration.Policy(g) {
			candidates = append(candidates, Candidate{Fingerprint: g.Fingerprint, Location: l})
		}
	}
	return candidates, nil
}

// Execute removes every planned candidate, one at a time. A failing candidate
// is recorded in the report and does not stop the remaining ones.
func (d *Dedup) Execute(idx *index.Index) (*domain.DeletionReport, error) {
	candidates, err := d.Plan(idx)
	if err != nil {
		return nil, err
	}

	knownFolders := []*domain.ImapFolder{}
	if !d.configuration.DryRun {
		knownFolders, err = d.persistence.AllFolders()
		if err != nil {
			return nil, fmt.Errorf("could not list known folders: %w", err)
		}
	}

	runId, err := d.persistence.StartRun(idx.Labels(), d.configuration.DryRun)
	if err != nil {
		return nil, fmt.Errorf("could not start run: %w", err)
	}
	runLogger := d.l.WithField("run", runId)
	runLogger.WithFields(logrus.Fields{"candidates": len(candidates), "dryrun": d.configuration.DryRun}).Info("Starting deletion")

	report := &domain.DeletionReport{Failures: []domain.DeletionFailure{}}
	start := time.Now()
	err = d.removeAll(idx, runId, knownFolders, candidates, report, runLogger)

	runLogger.WithFields(logrus.Fields{
		"duration":  time.Since(start),
		"attempted": report.Attempted,
		"succeeded": report.Succeeded,
		"failed":    report.Failed,
	}).Info("Finished deletion")

	// the run is finished on abort too, its counts cover everything attempted
	finishErr := d.persistence.FinishRun(runId, idx.Total(), report)
	if err != nil {
		if finishErr != nil {
			runLogger.WithError(finishErr).Error("Could not finish run")
		}
		return report, err
	}
	if finishErr != nil {
		return report, fmt.Errorf("could not finish run %d: %w", runId, finishErr)
	}
	return report, nil
}

// removeAll fills report while working through candidates. It only returns an
// error for ErrPermissionDenied, after the failing candidate was recorded.
func (d *Dedup) removeAll(idx *index.Index, runId int64, knownFolders []*domain.ImapFolder, candidates []Candidate, report *domain.DeletionReport, runLogger *logrus.Entry) error {
	for _, c := range candidates {
		report.Attempted++
		logger := runLogger.WithFields(logrus.Fields{"label": c.Location.Label, "uid": c.Location.Uid, "fingerprint": c.Fingerprint})

		if d.configuration.DryRun {
			logger.Info("Not deleting duplicate due to dry-run")
			d.saveDeletion(runId, c, nil)
			continue
		}

		err := d.remove(idx, knownFolders, c)
		if err != nil {
			logger.WithError(err).Error("Could not remove duplicate")
			report.Failed++
			report.Failures = append(report.Failures, domain.DeletionFailure{
				Location:    c.Location,
				Fingerprint: c.Fingerprint,
				Err:         fmt.Errorf("%w: %w", domain.ErrDeletionFailure, err),
			})
		} else {
			logger.Debug("Removed duplicate")
			report.Succeeded++
		}
		d.saveDeletion(runId, c, err)

		if errors.Is(err, domain.ErrPermissionDenied) {
			return fmt.Errorf("could not remove %s: %w", c.Location, err)
		}
	}
	return nil
}

func (d *Dedup) remove(idx *index.Index, knownFolders []*domain.ImapFolder, c Candidate) error {
	label := c.Location.Label
	status, err := d.source.Select(label, false)
	if err != nil {
		return fmt.Errorf("could not select %s: %w", label, err)
	}

	expected, ok := idx.UidValidity(label)
	if !ok {
		folder := folderByName(knownFolders, label)
		if folder == nil {
			return fmt.Errorf("no uid validity known for %s", label)
		}
		expected = folder.UidValidity
	}
	if expected != status.UidValidity {
		return fmt.Errorf("%s is at %d, indexed at %d: %w", label, status.UidValidity, expected, domain.ErrUidValidityChanged)
	}

	if d.configuration.MoveDuplicates {
		return d.source.Move(c.Location.Uid, d.configuration.QuarantineLabel)
	}

	err = d.source.MarkDeleted(c.Location.Uid)
	if err != nil {
		return err
	}
	return d.source.Expunge()
}

func (d *Dedup) saveDeletion(runId int64, c Candidate, deletionErr error) {
	var errText *string
	if deletionErr != nil {
		s := deletionErr.Error()
		errText = &s
	}

	err := d.persistence.SaveDeletion(domain.SaveDeletion{
		RunId:       runId,
		Fingerprint: c.Fingerprint,
		Label:       c.Location.Label,
		Uid:         c.Location.Uid,
		DryRun:      d.configuration.DryRun,
		Error:       errText,
	})
	if err != nil {
		d.l.WithFields(logrus.Fields{"location": c.Location.String()}).WithError(err).Error("Could not save deletion")
	}
}

// Review writes every duplicate group of idx to w, with the summary and the
// raw content of each copy. Labels are only selected read-only.
func (d *Dedup) Review(idx *index.Index, w io.Writer) error {
	if !idx.Complete() {
		return fmt.Errorf("refusing to review %s index: %w", idx.Status(), domain.ErrIndexIncomplete)
	}

	selected := ""
	for _, g := range idx.Duplicates() {
		fmt.Fprintf(w, "%s (%d copies)\n", g.Fingerprint, g.Size())
		for _, l := range g.Locations {
			if l.Label != selected {
				_, err := d.source.Select(l.Label, true)
				if err != nil {
					return fmt.Errorf("could not select %s: %w", l.Label, err)
				}
				selected = l.Label
			}

			body, err := d.source.FetchBody(l.Uid)
			if err != nil {
				return fmt.Errorf("could not fetch %s: %w", l, err)
			}

			summary, err := mail.Summarize(body)
			if err != nil {
				d.l.WithFields(logrus.Fields{"location": l.String()}).WithError(err).Warn("Could not summarize mail")
				fmt.Fprintf(w, "--- %s\n", l)
			} else {
				fmt.Fprintf(w, "--- %s %s %s %q\n", l, summary.Date.Format(time.RFC3339), summary.From, mail.ShortSubject(summary.Subject))
			}
			fmt.Fprintf(w, "%s\n", body)
		}
	}
	return nil
}

// ListDuplicates writes one line per duplicate group of idx to w.
func ListDuplicates(idx *index.Index, w io.Writer) int {
	duplicates := idx.Duplicates()
	for _, g := range duplicates {
		fmt.Fprintf(w, "%s", g.Fingerprint)
		for _, l := range g.Locations {
			fmt.Fprintf(w, " %s", l)
		}
		fmt.Fprintln(w)
	}
	return len(duplicates)
}

func folderByName(knownFolders []*domain.ImapFolder, folder string) *domain.ImapFolder {
	for i := 0; i < len(knownFolders); i++ {
		if knownFolders[i].Name == folder {
			return knownFolders[i]
		}
	}
	return nil
}
