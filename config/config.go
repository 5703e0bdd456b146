// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Database string

	ImapHost string
	Insecure bool

	User         string
	Password     string
	NetrcMachine string
	NetrcFile    string

	Labels []string

	DryRun bool

	MoveDuplicates  bool
	QuarantineLabel string
	PreferLabel     string

	Snapshot string

	Loglevel *string
}

func defaultConfig() *Config {
	return &Config{
		Database:     "dedup.db",
		ImapHost:     "imap.gmail.com:993",
		NetrcMachine: "google.com",
		Labels:       []string{"SMS"},
		DryRun:       true,
	}
}

// ReadConfig reads filename on top of the defaults. A missing file is only
// accepted when mustExist is false.
func ReadConfig(filename string, mustExist bool) (*Config, error) {
	config := defaultConfig()

	_, err := toml.DecodeFile(filename, config)
	if err != nil && (mustExist || !errors.Is(err, fs.ErrNotExist)) {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.Database, "Database name must not be empty, set to a filename for the sqlite database"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.ImapHost, "ImapHost must not be empty, set to host:port of the imap server"); err != nil {
		return err
	}

	if len(c.Labels) == 0 {
		return fmt.Errorf("Labels must not be empty, set to the labels holding the backed up messages")
	}

	seen := map[string]bool{}
	for _, l := range c.Labels {
		if err := validateNonEmptyStringField(l, "Labels must not contain empty names"); err != nil {
			return err
		}
		if seen[l] {
			return fmt.Errorf("label %s is listed more than once", l)
		}
		seen[l] = true
	}

	if c.MoveDuplicates {
		if err := validateNonEmptyStringField(c.QuarantineLabel, "QuarantineLabel must be set if MoveDuplicates is set"); err != nil {
			return err
		}
		if seen[c.QuarantineLabel] {
			return fmt.Errorf("QuarantineLabel %s cannot be one of the scanned Labels", c.QuarantineLabel)
		}
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
