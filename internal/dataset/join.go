// Package dataset joins county boundaries against the status table and
// prepares the simplified geometry the renderer consumes.
package dataset

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"

	"github.com/dblasing/drycounties/internal/geo"
	"github.com/dblasing/drycounties/internal/status"
)

// SimplifyTolerance is the Douglas-Peucker tolerance, in degrees, applied to
// every county polygon. Changing it changes the rendered output bytes.
const SimplifyTolerance = 0.005

// Row is one county in the joined output.
type Row struct {
	FIPS   string
	County string
	State  string
	Status status.Status
}

// Counts summarizes a joined dataset by status.
type Counts struct {
	Dry   int
	Moist int
	Wet   int
	Total int
}

// Result pairs the flat table with its feature collection. Rows[i]
// corresponds to GeoJSON.Features[i] and both share the FIPS identifier.
type Result struct {
	Rows    []Row
	GeoJSON *geojson.FeatureCollection
}

// Join filters regions to the 50 states plus DC, resolves each county's
// status from the table (defaulting to Wet), and emits rows plus a
// simplified feature collection aligned 1:1 with the rows. Input order is
// preserved, so output is deterministic for a given shapefile.
func Join(regions []geo.Region, table *status.Table) *Result {
	simplifier := simplify.DouglasPeucker(SimplifyTolerance)

	res := &Result{GeoJSON: geojson.NewFeatureCollection()}
	for _, reg := range regions {
		stateName, ok := status.JoinableState(reg.StateFP)
		if !ok {
			continue
		}
		res.Rows = append(res.Rows, Row{
			FIPS:   reg.GEOID,
			County: reg.Name,
			State:  stateName,
			Status: table.Lookup(reg.StateFP, reg.Name),
		})

		// Simplify mutates its input, so work on a copy.
		f := geojson.NewFeature(simplifier.Simplify(orb.Clone(reg.Geometry)))
		f.ID = reg.GEOID
		f.Properties = geojson.Properties{"name": reg.Name, "state": stateName}
		res.GeoJSON.Append(f)
	}
	return res
}

// Counts tallies the rows per status.
func (r *Result) Counts() Counts {
	var c Counts
	for _, row := range r.Rows {
		switch row.Status {
		case status.Dry:
			c.Dry++
		case status.Moist:
			c.Moist++
		case status.Wet:
			c.Wet++
		}
		c.Total++
	}
	return c
}

// Find returns the first row matching county and state exactly.
func (r *Result) Find(county, state string) (Row, bool) {
	for _, row := range r.Rows {
		if row.County == county && row.State == state {
			return row, true
		}
	}
	return Row{}, false
}
