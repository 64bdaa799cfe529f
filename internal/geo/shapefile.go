// Package geo loads county boundary geometry from the Census cartographic
// boundary shapefile and can download the archive when it is missing.
package geo

import (
	"fmt"
	"strings"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
)

// DefaultShapefile is where generate looks for the bundled boundaries.
const DefaultShapefile = "data/cb_2016_us_county_500k.shp"

// Region is one county-equivalent record from the boundary shapefile.
type Region struct {
	GEOID    string // 5-digit county FIPS code, unique per region
	Name     string
	StateFP  string // 2-digit state FIPS code
	Geometry orb.Geometry
}

// Load reads every polygon record from the shapefile at path. The sidecar
// .dbf must carry GEOID, NAME and STATEFP fields.
func Load(path string) ([]Region, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shapefile: %w", err)
	}
	defer r.Close()

	idx := make(map[string]int)
	for i, f := range r.Fields() {
		idx[strings.ToUpper(f.String())] = i
	}
	var missing []string
	for _, name := range []string{"GEOID", "NAME", "STATEFP"} {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("shapefile %s missing attribute fields: %s", path, strings.Join(missing, ", "))
	}

	var regions []Region
	for r.Next() {
		row, shape := r.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			continue
		}
		regions = append(regions, Region{
			GEOID:    strings.TrimSpace(r.ReadAttribute(row, idx["GEOID"])),
			Name:     strings.TrimSpace(r.ReadAttribute(row, idx["NAME"])),
			StateFP:  strings.TrimSpace(r.ReadAttribute(row, idx["STATEFP"])),
			Geometry: polygonGeometry(poly),
		})
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("read shapefile: %w", err)
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("shapefile %s contains no polygon records", path)
	}
	return regions, nil
}

// polygonGeometry converts a shapefile polygon to orb geometry. Shapefile
// rings wind clockwise for outer boundaries and counter-clockwise for holes;
// GeoJSON wants the opposite, so each ring is reversed and holes are grouped
// under the preceding outer ring.
func polygonGeometry(p *shp.Polygon) orb.Geometry {
	var mp orb.MultiPolygon
	for i, start := range p.Parts {
		end := len(p.Points)
		if i+1 < len(p.Parts) {
			end = int(p.Parts[i+1])
		}
		part := p.Points[start:end]
		ring := make(orb.Ring, len(part))
		for j, pt := range part {
			// Reversed so outer rings come out counter-clockwise.
			ring[len(part)-1-j] = orb.Point{pt.X, pt.Y}
		}
		if ring.Orientation() == orb.CCW || len(mp) == 0 {
			mp = append(mp, orb.Polygon{ring})
		} else {
			mp[len(mp)-1] = append(mp[len(mp)-1], ring)
		}
	}
	if len(mp) == 1 {
		return mp[0]
	}
	return mp
}
