package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"landpress/internal/builder"
	"landpress/internal/export"
)

// Export serves the three download formats: standalone HTML, a zip
// archive with bundled assets, and the raw layout JSON.
type Export struct {
	builder *builder.Builder
	assets  export.AssetSource
}

// NewExport creates a new Export handler group. assets may be nil when
// no static asset directory or object store is configured; archives then
// contain only the HTML and README.
func NewExport(b *builder.Builder, assets export.AssetSource) *Export {
	return &Export{builder: b, assets: assets}
}

// HTML downloads the current document as a single standalone HTML file.
func (e *Export) HTML(w http.ResponseWriter, r *http.Request) {
	layout := e.builder.Layout()
	html := export.GenerateStandaloneHTML(layout)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(layout)))
	w.Write([]byte(html))
}

// JSON downloads the current document as importable layout JSON.
func (e *Export) JSON(w http.ResponseWriter, r *http.Request) {
	layout := e.builder.Layout()
	data, err := export.ExportJSON(layout)
	if err != nil {
		slog.Error("layout export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	name := strings.TrimSuffix(export.Filename(layout), ".html") + ".json"
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Write(data)
}

// Archive downloads the document as a zip with index.html, the bundled
// static assets, and a README.
func (e *Export) Archive(w http.ResponseWriter, r *http.Request) {
	layout := e.builder.Layout()
	data, err := export.GenerateArchive(r.Context(), layout, e.assets, export.DefaultAssetManifest)
	if err != nil {
		slog.Error("archive export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	name := strings.TrimSuffix(export.Filename(layout), ".html") + ".zip"
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Write(data)
}
