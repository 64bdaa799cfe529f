// Package source supplies the county status table for a run. The static
// source wraps the curated snapshot; the Wikipedia source probes the live
// dry-communities article for freshness before falling back to it.
package source

import "github.com/dblasing/drycounties/internal/status"

// Source produces the status table used by the join.
type Source interface {
	// Name describes the source for run logs.
	Name() string
	// Table builds the status table.
	Table() (*status.Table, error)
}

// Static serves the curated Feb 2026 snapshot.
type Static struct{}

func (Static) Name() string {
	return "curated snapshot (Feb 2026)"
}

func (Static) Table() (*status.Table, error) {
	return status.DefaultTable()
}
