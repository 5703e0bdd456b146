// SPDX-License-Identifier: GPL-3.0-or-later
package index

import (
	"fmt"
	"sort"

	"github.com/jberkel/imap-dedup/domain"
)

type Status int

const (
	Building Status = iota
	Complete
	Incomplete
)

func (s Status) String() string {
	switch s {
	case Building:
		return "building"
	case Complete:
		return "complete"
	case Incomplete:
		return "incomplete"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Index maps fingerprints to the locations sharing them. It is owned by a
// single run and must not be mutated once deletion starts.
type Index struct {
	groups      map[domain.Fingerprint]*domain.DuplicateGroup
	locations   map[domain.MessageLocation]bool
	scanned     map[string]bool
	uidValidity map[string]uint32
	status      Status
}

func New() *Index {
	return &Index{
		groups:      map[domain.Fingerprint]*domain.DuplicateGroup{},
		locations:   map[domain.MessageLocation]bool{},
		scanned:     map[string]bool{},
		uidValidity: map[string]uint32{},
		status:      Building,
	}
}

// Add appends location to the group of fingerprint.
func (i *Index) Add(fingerprint domain.Fingerprint, location domain.MessageLocation) error {
	if i.locations[location] {
		return fmt.Errorf("location %s is already indexed", location)
	}
	i.locations[location] = true

	group, ok := i.groups[fingerprint]
	if !ok {
		group = &domain.DuplicateGroup{Fingerprint: fingerprint}
		i.groups[fingerprint] = group
	}
	group.Locations = append(group.Locations, location)
	return nil
}

func (i *Index) Group(fingerprint domain.Fingerprint) (domain.DuplicateGroup, bool) {
	group, ok := i.groups[fingerprint]
	if !ok {
		return domain.DuplicateGroup{}, false
	}
	return copyGroup(group), true
}

// Groups returns all groups sorted by fingerprint.
func (i *Index) Groups() []domain.DuplicateGroup {
	fingerprints := make([]string, 0, len(i.groups))
	for fp := range i.groups {
		fingerprints = append(fingerprints, string(fp))
	}
	sort.Strings(fingerprints)

	groups := make([]domain.DuplicateGroup, 0, len(fingerprints))
	for _, fp := range fingerprints {
		groups = append(groups, copyGroup(i.groups[domain.Fingerprint(fp)]))
	}
	return groups
}

// Duplicates returns the groups with more than one location.
func (i *Index) Duplicates() []domain.DuplicateGroup {
	duplicates := []domain.DuplicateGroup{}
	for _, g := range i.Groups() {
		if g.Size() > 1 {
			duplicates = append(duplicates, g)
		}
	}
	return duplicates
}

func copyGroup(group *domain.DuplicateGroup) domain.DuplicateGroup {
	locations := make([]domain.MessageLocation, len(group.Locations))
	copy(locations, group.Locations)
	return domain.DuplicateGroup{
		Fingerprint: group.Fingerprint,
		Locations:   locations,
	}
}

// Len is the number of distinct fingerprints.
func (i *Index) Len() int {
	return len(i.groups)
}

// Total is the number of indexed locations.
func (i *Index) Total() int {
	return len(i.locations)
}

func (i *Index) Status() Status {
	return i.status
}

func (i *Index) Complete() bool {
	return i.status == Complete
}

func (i *Index) MarkComplete() {
	i.status = Complete
}

func (i *Index) MarkScanned(label string) {
	i.scanned[label] = true
}

func (i *Index) Scanned(label string) bool {
	return i.scanned[label]
}

// Labels returns the scanned labels, sorted.
func (i *Index) Labels() []string {
	labels := make([]string, 0, len(i.scanned))
	for l := range i.scanned {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

func (i *Index) SetUidValidity(label string, uidValidity uint32) {
	i.uidValidity[label] = uidValidity
}

// UidValidity returns the UIDVALIDITY the uids of label were recorded under.
func (i *Index) UidValidity(label string) (uint32, bool) {
	v, ok := i.uidValidity[label]
	return v, ok
}
