// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package export

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("archive does not parse: %v", err)
	}
	files := map[string][]byte{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		files[f.Name] = content
	}
	return files
}

func TestGenerateArchive(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "pixels"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "pixels", "logo.svg"), []byte("<svg/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	layout := testLayout()
	data, err := GenerateArchive(context.Background(), layout, DirAssets{Root: root}, []string{"pixels/logo.svg"})
	if err != nil {
		t.Fatal(err)
	}

	files := readArchive(t, data)
	if !strings.Contains(string(files["index.html"]), "<!DOCTYPE html>") {
		t.Error("index.html missing or not a document")
	}
	if string(files["pixels/logo.svg"]) != "<svg/>" {
		t.Error("asset content mismatch")
	}
	readme := string(files["README.txt"])
	if !strings.Contains(readme, "Project: Test Page") {
		t.Errorf("readme = %q", readme)
	}
	if !strings.Contains(readme, "Date: ") {
		t.Error("readme missing generation date")
	}
}

func TestGenerateArchiveSkipsMissingAssets(t *testing.T) {
	root := t.TempDir()

	layout := testLayout()
	data, err := GenerateArchive(context.Background(), layout, DirAssets{Root: root}, DefaultAssetManifest)
	if err != nil {
		t.Fatalf("missing assets aborted the archive: %v", err)
	}

	files := readArchive(t, data)
	if _, ok := files["index.html"]; !ok {
		t.Error("index.html missing")
	}
	if _, ok := files["README.txt"]; !ok {
		t.Error("README.txt missing")
	}
	for name := range files {
		if strings.HasPrefix(name, "pixels/") {
			t.Errorf("unexpected asset entry %q", name)
		}
	}
}

func TestGenerateArchiveNilSource(t *testing.T) {
	data, err := GenerateArchive(context.Background(), testLayout(), nil, DefaultAssetManifest)
	if err != nil {
		t.Fatal(err)
	}
	files := readArchive(t, data)
	if len(files) != 2 {
		t.Errorf("entries = %d, want index.html and README.txt only", len(files))
	}
}

func TestDirAssetsRejectsTraversal(t *testing.T) {
	source := DirAssets{Root: t.TempDir()}

	for _, path := range []string{"../etc/passwd", "/etc/passwd", "pixels/../../secret"} {
		if _, err := source.Fetch(context.Background(), path); err == nil {
			t.Errorf("traversal path %q accepted", path)
		}
	}
}
