// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

func sampleLayout() *Layout {
	return &Layout{
		ID:   "l1",
		Name: "Sample",
		Components: []*Component{
			{
				ID:      "c1",
				Type:    SectionHero,
				Variant: "v1",
				Props: map[string]any{
					"title": "Hello",
					"items": []any{map[string]any{"name": "a"}},
				},
				Styles: map[string]any{"glassmorphism": true},
			},
		},
		Theme:    Theme{PrimaryColor: "#000000", Mode: ThemeModeLight},
		SEO:      SEO{Title: "Sample"},
		Versions: []Version{},
	}
}

func TestSectionTypeValid(t *testing.T) {
	for _, typ := range SectionTypes {
		if !typ.Valid() {
			t.Errorf("%q reported invalid", typ)
		}
	}
	for _, bad := range []SectionType{"", "carousel", "HERO"} {
		if bad.Valid() {
			t.Errorf("%q reported valid", bad)
		}
	}
}

func TestLayoutCloneIsolation(t *testing.T) {
	original := sampleLayout()
	clone := original.Clone()

	clone.Components[0].Props["title"] = "Changed"
	items := clone.Components[0].Props["items"].([]any)
	items[0].(map[string]any)["name"] = "changed"
	clone.Components[0].Styles["glassmorphism"] = false
	clone.Theme.PrimaryColor = "#ffffff"

	if original.Components[0].Props["title"] != "Hello" {
		t.Error("clone shares props map with original")
	}
	origItems := original.Components[0].Props["items"].([]any)
	if origItems[0].(map[string]any)["name"] != "a" {
		t.Error("clone shares nested item maps with original")
	}
	if original.Components[0].Styles["glassmorphism"] != true {
		t.Error("clone shares styles map with original")
	}
	if original.Theme.PrimaryColor != "#000000" {
		t.Error("clone shares theme with original")
	}
}

func TestLayoutCloneVersions(t *testing.T) {
	original := sampleLayout()
	original.Versions = []Version{{
		ID:        "v1",
		Name:      "checkpoint",
		Timestamp: 1,
		Layout:    sampleLayout(),
	}}

	clone := original.Clone()
	clone.Versions[0].Layout.Components[0].Props["title"] = "Changed"

	if original.Versions[0].Layout.Components[0].Props["title"] != "Hello" {
		t.Error("clone shares version snapshots with original")
	}
}

func TestLayoutCloneNilVersionLayout(t *testing.T) {
	// Decoded documents can carry version entries without a snapshot.
	original := sampleLayout()
	original.Versions = []Version{{ID: "v1", Name: "empty"}}

	clone := original.Clone()
	if len(clone.Versions) != 1 || clone.Versions[0].Layout != nil {
		t.Errorf("versions = %+v, want one entry with nil layout", clone.Versions)
	}
}

func TestSnapshotStripsVersions(t *testing.T) {
	layout := sampleLayout()
	layout.Versions = []Version{{ID: "v1", Layout: sampleLayout()}}

	s := layout.Snapshot()
	if s.Versions != nil {
		t.Error("snapshot carries versions")
	}
	if len(s.Components) != 1 {
		t.Error("snapshot lost components")
	}
}

func TestFindComponent(t *testing.T) {
	layout := sampleLayout()

	c, idx := layout.FindComponent("c1")
	if c == nil || idx != 0 {
		t.Errorf("FindComponent(c1) = %v, %d", c, idx)
	}
	c, idx = layout.FindComponent("missing")
	if c != nil || idx != -1 {
		t.Errorf("FindComponent(missing) = %v, %d, want nil, -1", c, idx)
	}
}

func TestDefaultLayout(t *testing.T) {
	layout := DefaultLayout()

	if layout.ID == "" {
		t.Error("no id")
	}
	if layout.SEO.Title != DefaultSEOTitle {
		t.Errorf("seo title = %q", layout.SEO.Title)
	}
	if layout.Components == nil || layout.Versions == nil {
		t.Error("nil slices on fresh layout")
	}
	if layout.Theme.Mode != ThemeModeLight {
		t.Errorf("mode = %q", layout.Theme.Mode)
	}

	// Two defaults never share an identity.
	if DefaultLayout().ID == DefaultLayout().ID {
		t.Error("default layouts share ids")
	}
}

func TestKnownFont(t *testing.T) {
	if !KnownFont("Inter") || !KnownFont("Space Grotesk") {
		t.Error("allowlisted font rejected")
	}
	if KnownFont("Comic Sans MS") || KnownFont("inter") {
		t.Error("unknown font accepted")
	}
}

func TestCopyValue(t *testing.T) {
	src := map[string]any{
		"list": []any{map[string]any{"k": "v"}, "s", 3},
	}
	copied := CopyValue(src).(map[string]any)
	copied["list"].([]any)[0].(map[string]any)["k"] = "changed"

	if src["list"].([]any)[0].(map[string]any)["k"] != "v" {
		t.Error("CopyValue shares nested maps")
	}
}

func TestCopyPropMapNil(t *testing.T) {
	m := CopyPropMap(nil)
	if m == nil {
		t.Fatal("nil map returned")
	}
	m["x"] = 1 // must be writable
}
