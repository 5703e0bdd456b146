// SPDX-License-Identifier: GPL-3.0-or-later
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jberkel/imap-dedup/domain"
	"github.com/jberkel/imap-dedup/index"
)

// location is written as a two element array of label and uid. The uid is
// written as a decimal string and accepted as a string or a number.
type location domain.MessageLocation

func (l location) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{l.Label, strconv.FormatUint(uint64(l.Uid), 10)})
}

func (l *location) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("could not parse location: %w", err)
	}
	if len(fields) != 2 {
		return fmt.Errorf("location must have 2 elements, got %d", len(fields))
	}
	if err := json.Unmarshal(fields[0], &l.Label); err != nil {
		return fmt.Errorf("could not parse label: %w", err)
	}

	uid := string(bytes.Trim(fields[1], `"`))
	parsed, err := strconv.ParseUint(uid, 10, 32)
	if err != nil {
		return fmt.Errorf("could not parse uid %s: %w", fields[1], err)
	}
	l.Uid = uint32(parsed)
	return nil
}

// Save writes every group of idx to w. Incomplete indexes are refused.
func Save(idx *index.Index, w io.Writer) error {
	if !idx.Complete() {
		return fmt.Errorf("could not save snapshot: %w", domain.ErrIndexIncomplete)
	}

	groups := map[string][]location{}
	for _, g := range idx.Groups() {
		locations := make([]location, 0, g.Size())
		for _, l := range g.Locations {
			locations = append(locations, location(l))
		}
		groups[string(g.Fingerprint)] = locations
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(groups); err != nil {
		return fmt.Errorf("could not write snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot written by Save. The returned index is complete and
// carries no UIDVALIDITY, callers restore it from the folder state.
func Load(r io.Reader) (*index.Index, error) {
	groups := map[string][]location{}
	if err := json.NewDecoder(r).Decode(&groups); err != nil {
		return nil, fmt.Errorf("could not read snapshot: %w", err)
	}

	idx := index.New()
	for fp, locations := range groups {
		for _, l := range locations {
			if err := idx.Add(domain.Fingerprint(fp), domain.MessageLocation(l)); err != nil {
				return nil, fmt.Errorf("could not load snapshot: %w", err)
			}
			idx.MarkScanned(l.Label)
		}
	}
	idx.MarkComplete()
	return idx, nil
}

func SaveFile(idx *index.Index, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create snapshot file: %w", err)
	}
	defer func() {
		if cErr := f.Close(); err == nil && cErr != nil {
			err = fmt.Errorf("could not close snapshot file: %w", cErr)
		}
	}()
	return Save(idx, f)
}

func LoadFile(path string) (*index.Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot file: %w", err)
	}
	defer f.Close()
	return Load(f)
}
