package status

import "testing"

func TestBuilderDefaultsToWet(t *testing.T) {
	table, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := table.Lookup("06", "Los Angeles"); got != Wet {
		t.Errorf("Lookup(06, Los Angeles) = %v, want Wet", got)
	}
}

func TestBuilderLastWriteWins(t *testing.T) {
	b := NewBuilder()
	b.Add("Texas", []string{"Sterling"}, Dry)
	b.Add("Texas", []string{"sterling"}, Moist)
	table, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := table.Lookup("48", "Sterling"); got != Moist {
		t.Errorf("Lookup(48, Sterling) = %v, want Moist (later batch)", got)
	}
}

func TestBuilderUnknownState(t *testing.T) {
	b := NewBuilder()
	b.Add("Franklin", []string{"Somewhere"}, Dry)
	if _, err := b.Build(); err == nil {
		t.Fatal("Build with unknown state name: got nil error")
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	b := NewBuilder()
	b.Add("Mississippi", []string{"Pearl River"}, Moist)
	table, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, name := range []string{"Pearl River", "pearl river", "PEARL RIVER"} {
		if got := table.Lookup("28", name); got != Moist {
			t.Errorf("Lookup(28, %q) = %v, want Moist", name, got)
		}
	}
}

func TestSameCountyNameAcrossStates(t *testing.T) {
	table, err := DefaultTable()
	if err != nil {
		t.Fatalf("DefaultTable: %v", err)
	}
	// Clay County exists in several states with different statuses.
	cases := []struct {
		stateFP string
		want    Status
	}{
		{"05", Dry},   // Arkansas
		{"01", Moist}, // Alabama
		{"47", Moist}, // Tennessee
		{"12", Wet},   // Florida, unlisted
	}
	for _, tc := range cases {
		if got := table.Lookup(tc.stateFP, "Clay"); got != tc.want {
			t.Errorf("Lookup(%s, Clay) = %v, want %v", tc.stateFP, got, tc.want)
		}
	}
}

func TestDefaultTableSpotStatuses(t *testing.T) {
	table, err := DefaultTable()
	if err != nil {
		t.Fatalf("DefaultTable: %v", err)
	}
	cases := []struct {
		stateFP string
		county  string
		want    Status
	}{
		{"05", "Hot Spring", Wet}, // voted wet Nov 2022, not listed
		{"48", "Borden", Dry},
		{"48", "Throckmorton", Wet}, // voted wet Nov 2024
		{"28", "Benton", Dry},
		{"01", "Cullman", Moist},
		{"47", "Davidson", Wet},
		{"47", "Moore", Moist},
		{"46", "Oglala Lakota", Dry},
		{"46", "Shannon", Dry}, // pre-2015 name in older shapefiles
		{"13", "Hart", Moist},
	}
	for _, tc := range cases {
		if got := table.Lookup(tc.stateFP, tc.county); got != tc.want {
			t.Errorf("Lookup(%s, %s) = %v, want %v", tc.stateFP, tc.county, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	for in, want := range map[string]Status{
		"dry":   Dry,
		"MOIST": Moist,
		" Wet ": Wet,
		"Dry":   Dry,
	} {
		got, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("Parse(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := Parse("damp"); err == nil {
		t.Error("Parse(damp): got nil error")
	}
}

func TestJoinableState(t *testing.T) {
	if name, ok := JoinableState("11"); !ok || name != "District of Columbia" {
		t.Errorf("JoinableState(11) = %q, %v; want District of Columbia, true", name, ok)
	}
	if _, ok := JoinableState("72"); ok {
		t.Error("JoinableState(72): Puerto Rico should be excluded")
	}
	if _, ok := JoinableState("99"); ok {
		t.Error("JoinableState(99): unknown code should be excluded")
	}
}

func TestStateFIPSRoundTrip(t *testing.T) {
	fp, ok := StateFIPS("Tennessee")
	if !ok || fp != "47" {
		t.Fatalf("StateFIPS(Tennessee) = %q, %v; want 47, true", fp, ok)
	}
	name, ok := StateName(fp)
	if !ok || name != "Tennessee" {
		t.Fatalf("StateName(47) = %q, %v; want Tennessee, true", name, ok)
	}
}
