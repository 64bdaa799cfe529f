package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"

	"github.com/dblasing/drycounties/internal/dataset"
	"github.com/dblasing/drycounties/internal/geo"
	"github.com/dblasing/drycounties/internal/status"
)

func testResult(t *testing.T) *dataset.Result {
	t.Helper()
	table, err := status.DefaultTable()
	if err != nil {
		t.Fatalf("DefaultTable: %v", err)
	}
	square := orb.Polygon{orb.Ring{
		{-101.5, 32.5}, {-100.5, 32.5}, {-100.5, 33.5}, {-101.5, 33.5}, {-101.5, 32.5},
	}}
	regions := []geo.Region{
		{GEOID: "48033", Name: "Borden", StateFP: "48", Geometry: square},
		{GEOID: "01043", Name: "Cullman", StateFP: "01", Geometry: square},
		{GEOID: "47037", Name: "Davidson", StateFP: "47", Geometry: square},
	}
	return dataset.Join(regions, table)
}

const fakePlotly = "window.Plotly={newPlot:function(){}};"

func TestWriteHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.html")
	if err := WriteHTML(testResult(t), []byte(fakePlotly), path); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(data)

	for _, want := range []string{
		"US Dry Counties Map (2026)",
		`"type":"choropleth"`,
		`"albers usa"`,
		"County Status",
		"Dry: 1 | Moist: 1 | Wet: 1 (of 3 total counties)",
		`"Borden"`, // hover customdata
		`"48033"`,  // feature id and location
		"Plotly.newPlot",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestWriteHTMLSelfContained(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.html")
	if err := WriteHTML(testResult(t), []byte(fakePlotly), path); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(data)

	if !strings.Contains(html, fakePlotly) {
		t.Error("plotly.js source not inlined in the output")
	}
	if strings.Contains(html, "cdn.plot.ly") {
		t.Error("output references the plotly CDN")
	}
	if strings.Contains(html, "<script src=") {
		t.Error("output loads a script from an external URL")
	}
}

func TestWriteHTMLRequiresPlotly(t *testing.T) {
	err := WriteHTML(testResult(t), nil, filepath.Join(t.TempDir(), "map.html"))
	if err == nil {
		t.Fatal("WriteHTML without plotly source: got nil error")
	}
}

func TestWriteHTMLBadPath(t *testing.T) {
	err := WriteHTML(testResult(t), []byte(fakePlotly), filepath.Join(t.TempDir(), "missing", "map.html"))
	if err == nil {
		t.Fatal("WriteHTML to missing directory: got nil error")
	}
}

func TestBuildFigureLegendOrder(t *testing.T) {
	fig := buildFigure(testResult(t))

	if len(fig.Data) != 3 {
		t.Fatalf("len(Data) = %d, want one trace per status", len(fig.Data))
	}
	for i, want := range []string{"Wet", "Moist", "Dry"} {
		if fig.Data[i].Name != want {
			t.Errorf("trace %d = %s, want %s (legend order Wet, Moist, Dry)", i, fig.Data[i].Name, want)
		}
	}
}

func TestBuildFigureTraceContents(t *testing.T) {
	fig := buildFigure(testResult(t))

	byName := make(map[string]choroplethTrace)
	for _, tr := range fig.Data {
		byName[tr.Name] = tr
	}

	dry := byName["Dry"]
	if len(dry.Locations) != 1 || dry.Locations[0] != "48033" {
		t.Fatalf("dry locations = %v, want [48033]", dry.Locations)
	}
	if len(dry.Customdata) != 1 || dry.Customdata[0] != [3]string{"Borden", "Texas", "Dry"} {
		t.Errorf("dry customdata = %v", dry.Customdata)
	}
	if dry.Colorscale[0][1] != "#e31a1c" {
		t.Errorf("dry color = %v, want #e31a1c", dry.Colorscale[0][1])
	}
	if !dry.Showlegend {
		t.Error("dry trace hidden from legend")
	}
	if dry.Showscale {
		t.Error("dry trace shows a continuous colorbar")
	}
}

func TestWriteCard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	counts := dataset.Counts{Dry: 37, Moist: 198, Wet: 2907, Total: 3142}
	if err := WriteCard(counts, path); err != nil {
		t.Fatalf("WriteCard: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat card: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("card file is empty")
	}
}
