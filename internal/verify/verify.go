// Package verify spot-checks the joined dataset against known counties.
package verify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dblasing/drycounties/internal/dataset"
	"github.com/dblasing/drycounties/internal/status"
)

// Check is one spot-check assertion against the joined table.
type Check struct {
	County string        `yaml:"county"`
	State  string        `yaml:"state"`
	Expect status.Status `yaml:"expect"`
	Note   string        `yaml:"note"`
}

// Outcome of a single check.
type Outcome string

const (
	Pass Outcome = "PASS"
	Fail Outcome = "FAIL"
	Miss Outcome = "MISS" // county/state pair not present in the dataset
)

// Result pairs a check with its outcome and, when found, the actual status.
type Result struct {
	Check
	Outcome Outcome
	Actual  status.Status
}

// String formats a result the way the run log prints it.
func (r Result) String() string {
	if r.Outcome == Miss {
		return fmt.Sprintf("%s  %s County, %s: not found in data", r.Outcome, r.County, r.State)
	}
	s := fmt.Sprintf("%s  %s County, %s: %s (expected %s)", r.Outcome, r.County, r.State, r.Actual, r.Expect)
	if r.Note != "" {
		s += " [" + r.Note + "]"
	}
	return s
}

// DefaultChecks returns the built-in spot checks for the curated snapshot.
func DefaultChecks() []Check {
	return []Check{
		{County: "Hot Spring", State: "Arkansas", Expect: status.Wet, Note: "voted wet Nov 2022"},
		{County: "Borden", State: "Texas", Expect: status.Dry, Note: "one of only 3 dry TX counties"},
		{County: "Kent", State: "Texas", Expect: status.Dry, Note: "one of only 3 dry TX counties"},
		{County: "Roberts", State: "Texas", Expect: status.Dry, Note: "one of only 3 dry TX counties"},
		{County: "Benton", State: "Mississippi", Expect: status.Dry, Note: "only fully dry MS county"},
		{County: "Liberty", State: "Florida", Expect: status.Dry, Note: "only fully dry FL county"},
		{County: "Cullman", State: "Alabama", Expect: status.Moist, Note: "moist, has wet cities"},
		{County: "Throckmorton", State: "Texas", Expect: status.Wet, Note: "voted wet Nov 2024"},
		{County: "Davidson", State: "Tennessee", Expect: status.Wet, Note: "Nashville, fully wet"},
		{County: "Shelby", State: "Tennessee", Expect: status.Wet, Note: "Memphis, fully wet"},
		{County: "Moore", State: "Tennessee", Expect: status.Moist, Note: "Jack Daniel's county, moist"},
	}
}

// LoadChecks reads a YAML override file of the form:
//
//	checks:
//	  - county: Borden
//	    state: Texas
//	    expect: Dry
//	    note: optional
func LoadChecks(path string) ([]Check, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read checks file: %w", err)
	}
	var doc struct {
		Checks []Check `yaml:"checks"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse checks file: %w", err)
	}
	if len(doc.Checks) == 0 {
		return nil, fmt.Errorf("checks file %s defines no checks", path)
	}
	for i, c := range doc.Checks {
		if c.County == "" || c.State == "" {
			return nil, fmt.Errorf("check %d: county and state are required", i+1)
		}
		st, err := status.Parse(string(c.Expect))
		if err != nil {
			return nil, fmt.Errorf("check %d (%s County, %s): %w", i+1, c.County, c.State, err)
		}
		doc.Checks[i].Expect = st
	}
	return doc.Checks, nil
}

// Run evaluates every check against the joined dataset. The bool is true
// only when every check passed.
func Run(res *dataset.Result, checks []Check) ([]Result, bool) {
	ok := true
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		r := Result{Check: c}
		row, found := res.Find(c.County, c.State)
		switch {
		case !found:
			r.Outcome = Miss
			ok = false
		case row.Status == c.Expect:
			r.Outcome = Pass
			r.Actual = row.Status
		default:
			r.Outcome = Fail
			r.Actual = row.Status
			ok = false
		}
		results = append(results, r)
	}
	return results, ok
}
