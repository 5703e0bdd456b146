// SPDX-License-Identifier: GPL-3.0-or-later
package dedup

import (
	"fmt"

	"github.com/jberkel/imap-dedup/retention"
)

type ConfigFunc func(c *configuration) error

func DryRun() ConfigFunc {
	return func(c *configuration) error {
		c.DryRun = true

		return nil
	}
}

func WithPolicy(policy retention.Policy) ConfigFunc {
	return func(c *configuration) error {
		if policy == nil {
			return fmt.Errorf("Policy cannot be nil")
		}

		c.Policy = policy
		return nil
	}
}

// MoveDuplicates quarantines duplicates in label instead of deleting them.
func MoveDuplicates(label string) ConfigFunc {
	return func(c *configuration) error {
		if len(label) == 0 {
			return fmt.Errorf("QuarantineLabel cannot be null")
		}

		c.MoveDuplicates = true
		c.QuarantineLabel = label
		return nil
	}
}

type configuration struct {
	DryRun bool

	Policy retention.Policy

	MoveDuplicates  bool
	QuarantineLabel string
}
