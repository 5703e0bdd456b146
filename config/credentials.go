// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jdxcode/netrc"
	"golang.org/x/term"
)

// PasswordPrompt asks for the password of user.
type PasswordPrompt func(user string) (string, error)

// Credentials resolves the imap login. Values from the config file win over
// the netrc entry of NetrcMachine, a missing password is asked for with prompt.
func (c *Config) Credentials(prompt PasswordPrompt) (string, string, error) {
	user, password := c.User, c.Password

	if len(user) == 0 || len(password) == 0 {
		machine, err := c.netrcMachine()
		if err != nil {
			return "", "", err
		}
		if machine != nil {
			if len(user) == 0 {
				user = machine.Get("login")
			}
			if len(password) == 0 && user == machine.Get("login") {
				password = machine.Get("password")
			}
		}
	}

	if len(user) == 0 {
		return "", "", fmt.Errorf("User must not be empty, set it in the config file or in the netrc entry for %s", c.NetrcMachine)
	}

	if len(password) == 0 {
		if prompt == nil {
			return "", "", fmt.Errorf("no password found for %s", user)
		}
		p, err := prompt(user)
		if err != nil {
			return "", "", fmt.Errorf("could not read password: %w", err)
		}
		password = p
	}

	return user, password, nil
}

func (c *Config) netrcMachine() (*netrc.Machine, error) {
	if len(c.NetrcMachine) == 0 {
		return nil, nil
	}

	path := c.NetrcFile
	if len(path) == 0 {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil
		}
		path = filepath.Join(home, ".netrc")
	}

	n, err := netrc.Parse(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}

	return n.Machine(c.NetrcMachine), nil
}

// TerminalPrompt reads the password from stdin without echoing it.
func TerminalPrompt(user string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal")
	}

	fmt.Fprintf(os.Stderr, "Password for %s: ", user)
	p, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(p), nil
}
