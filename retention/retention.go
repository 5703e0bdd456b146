// SPDX-License-Identifier: GPL-3.0-or-later
package retention

import "github.com/jberkel/imap-dedup/domain"

// Policy returns the locations of group to delete. It never returns the
// retained copy and must only depend on the group it is given.
type Policy func(group domain.DuplicateGroup) []domain.MessageLocation

// KeepFirst retains the first location in discovery order.
func KeepFirst(group domain.DuplicateGroup) []domain.MessageLocation {
	return deleteAllBut(group, 0)
}

// PreferLabel retains the first location found in label, falling back to
// KeepFirst for groups without a copy in label.
func PreferLabel(label string) Policy {
	return func(group domain.DuplicateGroup) []domain.MessageLocation {
		keep := 0
		for i, l := range group.Locations {
			if l.Label == label {
				keep = i
				break
			}
		}
		return deleteAllBut(group, keep)
	}
}

func deleteAllBut(group domain.DuplicateGroup, keep int) []domain.MessageLocation {
	deletions := []domain.MessageLocation{}
	for i, l := range group.Locations {
		if i != keep {
			deletions = append(deletions, l)
		}
	}
	return deletions
}
