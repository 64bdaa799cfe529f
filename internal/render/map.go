// Package render writes the interactive choropleth document and the optional
// PNG summary card.
package render

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"

	"github.com/dblasing/drycounties/internal/dataset"
	"github.com/dblasing/drycounties/internal/status"
)

//go:embed templates/*
var templateFS embed.FS

// legendOrder fixes the trace and legend order: Wet first, Dry last.
var legendOrder = []status.Status{status.Wet, status.Moist, status.Dry}

// statusColors is the fixed categorical palette.
var statusColors = map[status.Status]string{
	status.Wet:   "#c7e9c0", // light green
	status.Moist: "#fdae6b", // orange
	status.Dry:   "#e31a1c", // red
}

const hoverTemplate = "<b>%{customdata[0]} County, %{customdata[1]}</b><br>" +
	"Status: %{customdata[2]}<extra></extra>"

// choroplethTrace is the subset of the plotly choropleth trace schema the map
// uses. One trace is emitted per status so each gets its own legend entry.
type choroplethTrace struct {
	Type          string      `json:"type"`
	Name          string      `json:"name"`
	Locations     []string    `json:"locations"`
	Z             []int       `json:"z"`
	Zmin          int         `json:"zmin"`
	Zmax          int         `json:"zmax"`
	Colorscale    [][2]any    `json:"colorscale"`
	Showscale     bool        `json:"showscale"`
	Showlegend    bool        `json:"showlegend"`
	Marker        traceMarker `json:"marker"`
	Customdata    [][3]string `json:"customdata"`
	Hovertemplate string      `json:"hovertemplate"`
}

type traceMarker struct {
	Line traceMarkerLine `json:"line"`
}

type traceMarkerLine struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

type figure struct {
	Data   []choroplethTrace `json:"data"`
	Layout map[string]any    `json:"layout"`
	Config map[string]any    `json:"config"`
}

type pageData struct {
	Title    string
	PlotlyJS template.JS
	Counties template.JS
	Figure   template.JS
}

// WriteHTML renders the joined dataset to a single self-contained HTML
// document at path. The plotly.js source, the county geometry and the figure
// spec are all inlined; the document works offline.
func WriteHTML(res *dataset.Result, plotlyJS []byte, path string) error {
	if len(plotlyJS) == 0 {
		return fmt.Errorf("plotly.js source is empty")
	}

	counties, err := json.Marshal(res.GeoJSON)
	if err != nil {
		return fmt.Errorf("marshal geometry: %w", err)
	}

	fig, err := json.Marshal(buildFigure(res))
	if err != nil {
		return fmt.Errorf("marshal figure: %w", err)
	}

	tmpl, err := template.ParseFS(templateFS, "templates/map.html.tmpl")
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	data := pageData{
		Title:    "US Dry Counties Map (2026)",
		PlotlyJS: template.JS(plotlyJS),
		Counties: template.JS(counties),
		Figure:   template.JS(fig),
	}
	if err := tmpl.Execute(out, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	return out.Close()
}

// buildFigure assembles the plotly figure spec: one trace per status in
// legend order, USA scope with albers projection, title, legend and the
// counts footer. The per-trace geojson is attached client-side so the
// feature collection is inlined once.
func buildFigure(res *dataset.Result) figure {
	counts := res.Counts()

	var traces []choroplethTrace
	for _, st := range legendOrder {
		tr := choroplethTrace{
			Type: "choropleth",
			Name: string(st),
			Zmax: 1,
			Colorscale: [][2]any{
				{0, statusColors[st]},
				{1, statusColors[st]},
			},
			Marker: traceMarker{
				Line: traceMarkerLine{Width: 0.2, Color: "rgba(80, 80, 80, 0.3)"},
			},
			Hovertemplate: hoverTemplate,
		}
		for _, row := range res.Rows {
			if row.Status != st {
				continue
			}
			tr.Locations = append(tr.Locations, row.FIPS)
			tr.Z = append(tr.Z, 0)
			tr.Customdata = append(tr.Customdata, [3]string{row.County, row.State, string(row.Status)})
		}
		tr.Showlegend = len(tr.Locations) > 0
		traces = append(traces, tr)
	}

	footer := fmt.Sprintf(
		"<i>Dry: %d | Moist: %d | Wet: %d (of %d total counties)</i><br>"+
			"<i>Sources: State ABC boards, NABCA, Wikipedia (compiled Feb 2026). "+
			"Hot Spring County, AR correctly shows as Wet.</i>",
		counts.Dry, counts.Moist, counts.Wet, counts.Total)

	layout := map[string]any{
		"title": map[string]any{
			"text": "<b>US Dry Counties Map (2026)</b><br>" +
				"<sup>Counties where the sale of alcohol is still prohibited or restricted</sup>",
			"x":       0.5,
			"xanchor": "center",
			"font":    map[string]any{"size": 18},
		},
		"geo": map[string]any{
			"scope":         "usa",
			"projection":    map[string]any{"type": "albers usa"},
			"showlakes":     true,
			"lakecolor":     "rgb(200, 220, 240)",
			"showland":      true,
			"landcolor":     "rgb(250, 250, 250)",
			"showcountries": true,
			"countrycolor":  "rgb(80, 80, 80)",
			"showsubunits":  true,
			"subunitcolor":  "rgb(40, 40, 40)",
			"subunitwidth":  1.2,
		},
		"legend": map[string]any{
			"title":       map[string]any{"text": "County Status"},
			"orientation": "h",
			"yanchor":     "bottom",
			"y":           -0.05,
			"xanchor":     "center",
			"x":           0.5,
			"font":        map[string]any{"size": 13},
		},
		"margin": map[string]any{"l": 10, "r": 10, "t": 80, "b": 60},
		"height": 650,
		"width":  1100,
		"annotations": []map[string]any{
			{
				"text":      footer,
				"showarrow": false,
				"xref":      "paper",
				"yref":      "paper",
				"x":         0.5,
				"y":         -0.1,
				"font":      map[string]any{"size": 10, "color": "gray"},
				"align":     "center",
			},
		},
	}

	config := map[string]any{
		"displayModeBar":         true,
		"modeBarButtonsToRemove": []string{"lasso2d", "select2d"},
		"displaylogo":            false,
		"scrollZoom":             true,
	}

	return figure{Data: traces, Layout: layout, Config: config}
}
