// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// zip.go packages a generated site into a downloadable archive: the
// standalone index.html, a fixed manifest of static assets, and a README.
package export

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"landpress/internal/models"
)

// AssetSource fetches a static asset by its manifest path. Implementations
// back onto a local directory or object storage.
type AssetSource interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// DirAssets serves assets from a local directory, the development default.
type DirAssets struct {
	Root string
}

// Fetch reads one asset file relative to the root. Path traversal is
// rejected since manifest paths are fixed and relative.
func (d DirAssets) Fetch(_ context.Context, path string) ([]byte, error) {
	clean := filepath.Clean(path)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("asset path escapes root: %q", path)
	}
	data, err := os.ReadFile(filepath.Join(d.Root, clean))
	if err != nil {
		return nil, fmt.Errorf("read asset %s: %w", path, err)
	}
	return data, nil
}

// DefaultAssetManifest is the fixed set of static files bundled into
// every archive alongside the generated HTML.
var DefaultAssetManifest = []string{
	"pixels/zap-icon.svg",
	"pixels/thumb-icon.svg",
	"pixels/shape-icon.svg",
	"pixels/features-showcase-1.png",
	"pixels/features-showcase-2.png",
	"pixels/hero-section-showcase.png",
	"pixels/footer-logo.svg",
	"pixels/logo.svg",
}

// GenerateArchive builds the zip export: index.html, the asset manifest,
// and a README with the project name and generation time. A failed
// individual asset fetch is logged and skipped — it never aborts the
// archive. A nil source skips assets entirely.
func GenerateArchive(ctx context.Context, layout *models.Layout, source AssetSource, manifest []string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	if source != nil {
		for _, path := range manifest {
			data, err := source.Fetch(ctx, path)
			if err != nil {
				slog.Warn("archive: asset skipped", "path", path, "error", err)
				continue
			}
			if err := writeZipFile(zw, path, data); err != nil {
				return nil, err
			}
		}
	}

	htmlContent := GenerateStandaloneHTML(layout)
	if err := writeZipFile(zw, "index.html", []byte(htmlContent)); err != nil {
		return nil, err
	}

	readme := fmt.Sprintf("Project: %s\nGenerated with landpress\nDate: %s\n",
		layout.Name, time.Now().Format("2006-01-02 15:04:05"))
	if err := writeZipFile(zw, "README.txt", []byte(readme)); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

func writeZipFile(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("archive entry %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("archive write %s: %w", name, err)
	}
	return nil
}
