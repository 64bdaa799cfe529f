package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/dblasing/drycounties/internal/dataset"
	"github.com/dblasing/drycounties/internal/geo"
	"github.com/dblasing/drycounties/internal/httputil"
	"github.com/dblasing/drycounties/internal/render"
	"github.com/dblasing/drycounties/internal/source"
	"github.com/dblasing/drycounties/internal/verify"
)

var cli struct {
	Generate        GenerateCmd        `cmd:"" default:"withargs" help:"Generate the interactive dry counties map."`
	FetchBoundaries FetchBoundariesCmd `cmd:"" name:"fetch-boundaries" help:"Download the Census county boundary shapefile."`
}

type GenerateCmd struct {
	Update    bool   `help:"Probe Wikipedia for newer dry-community listings before rendering."`
	Shapefile string `default:"${shapefile}" help:"Path to the county boundary shapefile."`
	Output    string `default:"dry_counties_map.html" help:"Output HTML path."`
	PlotlyJS  string `default:"${plotlyjs}" help:"Cached copy of plotly.js, downloaded when missing."`
	Card      string `help:"Optional path for a PNG summary card."`
	Checks    string `help:"Optional YAML file overriding the built-in spot checks."`
}

func (c *GenerateCmd) Run() error {
	log.Printf("[1/4] loading county boundaries from %s", c.Shapefile)
	if _, err := os.Stat(c.Shapefile); err != nil {
		return fmt.Errorf("county shapefile not found at %s (run fetch-boundaries to download it): %w", c.Shapefile, err)
	}
	regions, err := geo.Load(c.Shapefile)
	if err != nil {
		return fmt.Errorf("load boundaries: %w", err)
	}
	log.Printf("loaded %d county/equivalent boundaries", len(regions))

	var src source.Source = source.Static{}
	if c.Update {
		src = source.NewWikipedia()
		log.Printf("[2/4] checking wikipedia for updates")
	} else {
		log.Printf("[2/4] using the curated snapshot (run with --update to probe wikipedia)")
	}
	table, err := src.Table()
	if err != nil {
		return fmt.Errorf("build status table (%s): %w", src.Name(), err)
	}

	log.Printf("[3/4] building county dataset")
	res := dataset.Join(regions, table)
	counts := res.Counts()
	log.Printf("county breakdown: dry=%d moist=%d wet=%d total=%d",
		counts.Dry, counts.Moist, counts.Wet, counts.Total)

	log.Printf("[4/4] generating interactive map")
	plotlyJS, err := render.LoadPlotlyJS(httputil.NewClient(), render.PlotlyURL, c.PlotlyJS)
	if err != nil {
		return fmt.Errorf("load plotly.js: %w", err)
	}
	if err := render.WriteHTML(res, plotlyJS, c.Output); err != nil {
		return fmt.Errorf("render map: %w", err)
	}
	log.Printf("map saved to %s", c.Output)

	if c.Card != "" {
		if err := render.WriteCard(counts, c.Card); err != nil {
			return fmt.Errorf("render summary card: %w", err)
		}
		log.Printf("summary card saved to %s", c.Card)
	}

	checks := verify.DefaultChecks()
	if c.Checks != "" {
		checks, err = verify.LoadChecks(c.Checks)
		if err != nil {
			return err
		}
		log.Printf("using %d checks from %s", len(checks), c.Checks)
	}
	log.Printf("spot-checking known counties:")
	results, ok := verify.Run(res, checks)
	for _, r := range results {
		log.Printf("  %s", r)
	}
	if !ok {
		return errors.New("verification failed")
	}
	log.Printf("all %d checks passed", len(results))
	return nil
}

type FetchBoundariesCmd struct {
	Dir string `default:"data" help:"Directory to extract the shapefile into."`
}

func (c *FetchBoundariesCmd) Run() error {
	log.Printf("downloading %s from the Census FTP mirror", "cb_2016_us_county_500k.zip")
	files, err := geo.FetchBoundaries(c.Dir)
	if err != nil {
		return fmt.Errorf("fetch boundaries: %w", err)
	}
	for _, f := range files {
		log.Printf("extracted %s", f)
	}

	dest := filepath.Join(c.Dir, filepath.Base(render.DefaultPlotlyPath))
	if _, err := render.LoadPlotlyJS(httputil.NewClient(), render.PlotlyURL, dest); err != nil {
		return fmt.Errorf("fetch plotly.js: %w", err)
	}
	log.Printf("cached plotly.js at %s", dest)
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("drycounties"),
		kong.Description("Renders US county alcohol-sale statuses (Dry/Moist/Wet) onto an interactive choropleth map."),
		kong.Vars{
			"shapefile": geo.DefaultShapefile,
			"plotlyjs":  render.DefaultPlotlyPath,
		},
	)
	if err := ctx.Run(); err != nil {
		log.Fatalf("%v", err)
	}
}
