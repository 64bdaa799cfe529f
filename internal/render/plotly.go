package render

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dblasing/drycounties/internal/httputil"
)

// PlotlyURL is the pinned plotly.js build inlined into the output document.
const PlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// DefaultPlotlyPath is where generate caches the downloaded library.
const DefaultPlotlyPath = "data/plotly-2.35.2.min.js"

// LoadPlotlyJS returns the plotly.js source, reading cachePath when present
// and otherwise downloading url and caching it there. The output document is
// self-contained, so there is no CDN reference at view time: without the
// library source the generate step fails.
func LoadPlotlyJS(client *http.Client, url, cachePath string) ([]byte, error) {
	if data, err := os.ReadFile(cachePath); err == nil && len(data) > 0 {
		return data, nil
	}
	data, err := httputil.Get(client, url)
	if err != nil {
		return nil, fmt.Errorf("download plotly.js: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.WriteFile(cachePath, data, 0o644); err != nil {
		return nil, fmt.Errorf("cache plotly.js: %w", err)
	}
	return data, nil
}
