// Package status holds the county alcohol-sale classification: the Status
// enum, the state FIPS tables, and the curated dataset of non-wet counties.
package status

import (
	"fmt"
	"strings"
)

// Status classifies a county's retail alcohol sales rules.
type Status string

const (
	// Dry means no legal retail alcohol sales anywhere in the county.
	Dry Status = "Dry"
	// Moist means county-level restrictions exist but with exceptions,
	// such as wet municipalities or beer-only sales.
	Moist Status = "Moist"
	// Wet means no county-level restriction beyond state law.
	Wet Status = "Wet"
)

// Parse converts a string to a Status, case-insensitively.
func Parse(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dry":
		return Dry, nil
	case "moist":
		return Moist, nil
	case "wet":
		return Wet, nil
	}
	return "", fmt.Errorf("unknown status %q (want Dry, Moist or Wet)", s)
}

type key struct {
	stateFP string
	county  string
}

// Table maps (state FIPS, lowercase county name) to a status. Counties not
// listed resolve to Wet. Immutable once built.
type Table struct {
	entries map[key]Status
}

// Lookup returns the status for a county. County name matching is
// case-insensitive; stateFP is the 2-digit state FIPS code.
func (t *Table) Lookup(stateFP, county string) Status {
	if s, ok := t.entries[key{stateFP, strings.ToLower(county)}]; ok {
		return s
	}
	return Wet
}

// Len returns the number of explicit (non-wet) entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Builder accumulates per-state county batches. Later batches overwrite
// earlier entries for the same (state, county) key.
type Builder struct {
	entries map[key]Status
	err     error
}

func NewBuilder() *Builder {
	return &Builder{entries: make(map[key]Status)}
}

// Add records every county in the batch at the given status. The state is
// identified by its full name; an unknown state name is an error reported by
// Build rather than a silent skip, so a typo cannot drop a whole batch.
func (b *Builder) Add(stateName string, counties []string, s Status) *Builder {
	fp, ok := StateFIPS(stateName)
	if !ok {
		if b.err == nil {
			b.err = fmt.Errorf("unknown state name %q", stateName)
		}
		return b
	}
	for _, c := range counties {
		b.entries[key{fp, strings.ToLower(c)}] = s
	}
	return b
}

// Build returns the finished table, or the first error Add encountered.
func (b *Builder) Build() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &Table{entries: b.entries}, nil
}
