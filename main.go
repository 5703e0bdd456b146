// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jberkel/imap-dedup/config"
	"github.com/jberkel/imap-dedup/dedup"
	"github.com/jberkel/imap-dedup/domain"
	"github.com/jberkel/imap-dedup/imapconnection"
	"github.com/jberkel/imap-dedup/index"
	"github.com/jberkel/imap-dedup/log"
	"github.com/jberkel/imap-dedup/persistence"
	"github.com/jberkel/imap-dedup/retention"
	"github.com/jberkel/imap-dedup/snapshot"

	pb "github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

const defaultConfigFile = "config.toml"

var configFile string
var snapshotFile string

func init() {
	flag.Usage = func() {
		o := flag.CommandLine.Output()
		fmt.Fprintln(o, "Usage: imap-dedup [-flags] command, where command is one of:")
		fmt.Fprintln(o, "  scan:    index the configured labels and list duplicate messages")
		fmt.Fprintln(o, "  review:  print the content of every duplicate message")
		fmt.Fprintln(o, "  delete:  delete duplicate messages, keeping one copy each")
		fmt.Fprintln(o, "")
		fmt.Fprintln(o, "The available flags are:")
		flag.PrintDefaults()
	}

	flag.StringVar(&configFile, "c", defaultConfigFile, "Config file")
	flag.StringVar(&snapshotFile, "snapshot", "", "Index snapshot, written by scan and read instead of scanning by review and delete")
}

func main() {
	log.InitLogging("info")
	logger := log.Logger(log.LOG_MAIN)

	flag.Parse()
	args := flag.Args()
	if len(args) != 1 || (args[0] != "scan" && args[0] != "review" && args[0] != "delete") {
		flag.Usage()
		os.Exit(2)
	}

	ok, err := run(args[0], logger)
	if err != nil {
		logger.WithField("error", err).Fatal("Run failed")
	}
	if !ok {
		os.Exit(1)
	}
}

// run returns instead of exiting so the deferred logout and close always happen.
func run(command string, logger *logrus.Logger) (bool, error) {
	conf, err := config.ReadConfig(configFile, configFile != defaultConfigFile)
	if err != nil {
		return false, fmt.Errorf("could not load config: %w", err)
	}

	if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}
	if len(snapshotFile) > 0 {
		conf.Snapshot = snapshotFile
	}

	p, err := persistence.NewPersistence(conf.Database, log.Logger(log.LOG_PERSISTENCE))
	if err != nil {
		return false, fmt.Errorf("could not connect to database: %w", err)
	}
	defer p.Close()

	user, password, err := conf.Credentials(config.TerminalPrompt)
	if err != nil {
		return false, fmt.Errorf("could not determine credentials: %w", err)
	}

	imapConn, err := imapconnection.NewImapConnection(conf.ImapHost, user, password, !conf.Insecure, log.Logger(log.LOG_IMAP))
	if err != nil {
		return false, fmt.Errorf("could not start imap connector: %w", err)
	}
	defer imapConn.Close()

	var idx *index.Index
	if command != "scan" && len(conf.Snapshot) > 0 {
		idx, err = snapshot.LoadFile(conf.Snapshot)
		if err != nil {
			return false, err
		}
		logger.WithFields(logrus.Fields{"snapshot": conf.Snapshot, "messages": idx.Total(), "labels": idx.Labels()}).Info("Loaded index")
	} else {
		idx, err = scan(imapConn, p, conf.Labels)
		if err != nil {
			return false, err
		}
	}

	configs := []dedup.ConfigFunc{}
	if conf.DryRun {
		configs = append(configs, dedup.DryRun())
	}
	if len(conf.PreferLabel) > 0 {
		configs = append(configs, dedup.WithPolicy(retention.PreferLabel(conf.PreferLabel)))
	}
	if conf.MoveDuplicates {
		configs = append(configs, dedup.MoveDuplicates(conf.QuarantineLabel))
	}

	d, err := dedup.NewDedup(imapConn, p, log.Logger(log.LOG_DEDUP), configs...)
	if err != nil {
		return false, fmt.Errorf("could not start dedup: %w", err)
	}

	switch command {
	case "scan":
		groups := dedup.ListDuplicates(idx, os.Stdout)
		fmt.Printf("%d duplicate groups in %d messages\n", groups, idx.Total())
		if len(conf.Snapshot) > 0 {
			err = snapshot.SaveFile(idx, conf.Snapshot)
			if err != nil {
				return false, err
			}
			logger.WithField("snapshot", conf.Snapshot).Info("Saved index")
		}

	case "review":
		err = d.Review(idx, os.Stdout)
		if err != nil {
			return false, fmt.Errorf("review failed: %w", err)
		}

	case "delete":
		logger.WithFields(logrus.Fields{"labels": idx.Labels(), "dryrun": conf.DryRun, "move": conf.MoveDuplicates}).Info("Deleting duplicates")
		if conf.DryRun {
			logger.Warn("Skipping deletion due to dry-run")
		}
		report, err := d.Execute(idx)
		if report != nil {
			printReport(report, idx.Total())
		}
		if err != nil {
			return false, fmt.Errorf("deletion failed: %w", err)
		}
		return report.Ok(), nil
	}

	return true, nil
}

func scan(source domain.MessageSource, p domain.Persistence, labels []string) (*index.Index, error) {
	var bar *pb.ProgressBar
	progress := func(label string, seqNum, messages uint32) {
		if seqNum == 1 {
			bar = pb.Default(int64(messages), "Scan "+label)
		}
		_ = bar.Set(int(seqNum))
	}

	idx := index.New()
	err := index.NewScanner(source, log.Logger(log.LOG_INDEX), progress).Scan(idx, labels)
	if err != nil {
		return nil, fmt.Errorf("scan failed after %d messages: %w", idx.Total(), err)
	}

	for _, label := range idx.Labels() {
		uidValidity, _ := idx.UidValidity(label)
		err = p.SaveFolder(label, uidValidity)
		if err != nil {
			return nil, fmt.Errorf("could not save uidvalidity for %s: %w", label, err)
		}
	}

	return idx, nil
}

func printReport(report *domain.DeletionReport, total int) {
	fmt.Printf("%d/%d messages deleted\n", report.Succeeded, total)
	fmt.Printf("attempted %d, succeeded %d, failed %d\n", report.Attempted, report.Succeeded, report.Failed)
	for _, f := range report.Failures {
		fmt.Printf("  %s (%s): %v\n", f.Location, f.Fingerprint, f.Err)
	}
}
