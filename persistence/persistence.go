// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jberkel/imap-dedup/domain"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Persistence struct {
	db *sqlx.DB
	l  *logrus.Logger
}

var connect = sqlx.Connect

func NewPersistence(datasource string, l *logrus.Logger) (*Persistence, error) {
	db, err := connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l.WithField("file", datasource).Info("Connected")

	err = prepare(db, l)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			l.WithError(closeErr).Warn("Could not close db")
		}
		return nil, err
	}

	return &Persistence{
		db: db,
		l:  l,
	}, nil
}

func prepare(db *sqlx.DB, l *logrus.Logger) error {
	_, err := db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return fmt.Errorf("could not set synchronous mode: %w", err)
	}

	migrationSource := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations,
		Root:       "migrations",
	}
	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrationSource, migrate.Up)
	if err != nil {
		return fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")
	return nil
}

func (p *Persistence) Close() error {
	err := p.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	p.l.Info("Disconnected")
	return nil
}

func (p *Persistence) AllFolders() ([]*domain.ImapFolder, error) {
	dbFolders := []struct {
		Name        string
		UidValidity uint32
	}{}

	err := p.db.Select(
		&dbFolders,
		`SELECT name, uidvalidity FROM folders ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	folders := []*domain.ImapFolder{}
	for _, f := range dbFolders {
		folders = append(
			folders,
			&domain.ImapFolder{
				Name:        f.Name,
				UidValidity: f.UidValidity,
			},
		)
	}

	p.l.WithField("Count", len(folders)).Debug("Found folders")

	return folders, nil
}

func (p *Persistence) SaveFolder(name string, uidValidity uint32) error {
	_, err := p.db.Exec(
		"INSERT OR REPLACE INTO folders (name, uidvalidity) VALUES (?, ?)",
		name,
		uidValidity,
	)

	if err != nil {
		return fmt.Errorf("could not save folder: %w", err)
	}

	p.l.WithFields(logrus.Fields{"Name": name, "UidValidity": uidValidity}).Info("Persisted folder")
	return nil
}

func (p *Persistence) StartRun(labels []string, dryRun bool) (int64, error) {
	result, err := p.db.Exec(
		"INSERT INTO runs (started, labels, dryrun) VALUES (?, ?, ?)",
		time.Now().UTC(),
		strings.Join(labels, ","),
		dryRun,
	)
	if err != nil {
		return 0, fmt.Errorf("could not start run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("could not get run id: %w", err)
	}

	p.l.WithFields(logrus.Fields{"Id": id, "Labels": labels, "DryRun": dryRun}).Debug("Started run")
	return id, nil
}

// FinishRun stores the counts of report and marks the run as finished.
func (p *Persistence) FinishRun(id int64, indexed int, report *domain.DeletionReport) error {
	tx, err := p.db.BeginTxx(context.TODO(), nil)
	if err != nil {
		return fmt.Errorf("could not start transaction: %w", err)
	}

	result, err := tx.Exec(
		"UPDATE runs SET finished = ?, indexed = ?, attempted = ?, succeeded = ?, failed = ? WHERE id = ? AND finished IS NULL",
		time.Now().UTC(), indexed, report.Attempted, report.Succeeded, report.Failed, id,
	)
	if err != nil {
		return txEnd(tx, fmt.Errorf("could not update run: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return txEnd(tx, fmt.Errorf("could not get num of affected rows: %w", err))
	}

	if affected != 1 {
		return txEnd(tx, fmt.Errorf("unexpected number of affected rows, expected 1 got %d", affected))
	}

	return txEnd(tx, nil)
}

func (p *Persistence) GetRun(id int64) (*domain.Run, error) {
	dbRun := struct {
		Id        int64
		Started   time.Time
		Finished  *time.Time
		Labels    string
		DryRun    bool
		Indexed   int
		Attempted int
		Succeeded int
		Failed    int
	}{}

	err := p.db.Get(
		&dbRun,
		"SELECT id, started, finished, labels, dryrun, indexed, attempted, succeeded, failed FROM runs WHERE id = ?",
		id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	return &domain.Run{
		Id:        dbRun.Id,
		Started:   dbRun.Started,
		Finished:  dbRun.Finished,
		Labels:    dbRun.Labels,
		DryRun:    dbRun.DryRun,
		Indexed:   dbRun.Indexed,
		Attempted: dbRun.Attempted,
		Succeeded: dbRun.Succeeded,
		Failed:    dbRun.Failed,
	}, nil
}

func (p *Persistence) SaveDeletion(deletion domain.SaveDeletion) error {
	_, err := p.db.Exec(
		"INSERT INTO deletions (run_id, fingerprint, label, uid, dryrun, error, created) VALUES (?, ?, ?, ?, ?, ?, ?)",
		deletion.RunId,
		string(deletion.Fingerprint),
		deletion.Label,
		deletion.Uid,
		deletion.DryRun,
		deletion.Error,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("could not save deletion: %w", err)
	}

	return nil
}

func (p *Persistence) Deletions(runId int64) ([]*domain.SavedDeletion, error) {
	dbDeletions := []struct {
		Id          int64
		RunId       int64 `db:"run_id"`
		Fingerprint string
		Label       string
		Uid         uint32
		DryRun      bool
		Error       *string
		Created     time.Time
	}{}

	err := p.db.Select(
		&dbDeletions,
		"SELECT id, run_id, fingerprint, label, uid, dryrun, error, created FROM deletions WHERE run_id = ? ORDER BY id",
		runId,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	deletions := []*domain.SavedDeletion{}
	for _, d := range dbDeletions {
		deletions = append(
			deletions,
			&domain.SavedDeletion{
				Id:          d.Id,
				RunId:       d.RunId,
				Fingerprint: domain.Fingerprint(d.Fingerprint),
				Label:       d.Label,
				Uid:         d.Uid,
				DryRun:      d.DryRun,
				Error:       d.Error,
				Created:     d.Created,
			},
		)
	}

	return deletions, nil
}

func txEnd(tx *sqlx.Tx, err error) error {
	if err == nil {
		err = tx.Commit()
		if err != nil {
			return fmt.Errorf("could not commit tx: %w", err)
		}
	} else {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil {
			errStr := err.Error()
			return fmt.Errorf("%s, could not rollback tx: %w", errStr, rollbackErr)
		} else {
			return err
		}
	}

	return nil
}
