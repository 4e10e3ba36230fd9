// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package registry

import (
	"errors"
	"strings"
	"testing"

	"landpress/internal/models"
)

func TestDefaultProps(t *testing.T) {
	tests := []struct {
		name    string
		typ     models.SectionType
		variant string
		wantKey string
	}{
		{"header", models.SectionHeader, "v1", "logo"},
		{"hero v1", models.SectionHero, "v1", "image"},
		{"hero v2", models.SectionHero, "v2", "centered"},
		{"features", models.SectionFeatures, "v1", "items"},
		{"pricing", models.SectionPricing, "v1", "items"},
		{"testimonials", models.SectionTestimonials, "v1", "items"},
		{"faq", models.SectionFAQ, "v1", "items"},
		{"cta", models.SectionCTA, "v1", "buttonText"},
		{"footer", models.SectionFooter, "v1", "socials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := DefaultProps(tt.typ, tt.variant)
			if _, ok := props[tt.wantKey]; !ok {
				t.Errorf("defaults for %s/%s missing %q: %v", tt.typ, tt.variant, tt.wantKey, props)
			}
		})
	}
}

func TestDefaultPropsContactEmpty(t *testing.T) {
	props := DefaultProps(models.SectionContact, "v1")
	if props == nil {
		t.Fatal("nil props")
	}
	if len(props) != 0 {
		t.Errorf("contact defaults = %v, want empty", props)
	}
}

func TestDefaultPropsUnknownVariantFallsBack(t *testing.T) {
	got := DefaultProps(models.SectionHero, "v9")
	if got["title"] != "Craft Your Perfect Landing Page" {
		t.Errorf("unknown variant title = %v, want v1 defaults", got["title"])
	}
}

func TestDefaultPropsReturnsFreshMap(t *testing.T) {
	a := DefaultProps(models.SectionCTA, "v1")
	a["title"] = "mutated"
	b := DefaultProps(models.SectionCTA, "v1")
	if b["title"] == "mutated" {
		t.Error("defaults share state between calls")
	}
}

// ---- rendering ----

func TestRenderAllTypes(t *testing.T) {
	for _, typ := range models.SectionTypes {
		t.Run(string(typ), func(t *testing.T) {
			html, err := Render(typ, RenderContext{
				ID:      "c1",
				Variant: "v1",
				Props:   DefaultProps(typ, "v1"),
				Styles:  map[string]any{},
			})
			if err != nil {
				t.Fatalf("render failed: %v", err)
			}
			if html == "" {
				t.Fatal("empty markup")
			}
		})
	}
}

func TestRenderUnknownType(t *testing.T) {
	_, err := Render("carousel", RenderContext{})
	if !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("error = %v, want ErrUnknownSection", err)
	}
}

func TestRenderEscapesProps(t *testing.T) {
	props := DefaultProps(models.SectionCTA, "v1")
	props["title"] = `<script>alert("x")</script>`

	html, err := Render(models.SectionCTA, RenderContext{ID: "c1", Variant: "v1", Props: props})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(html, "<script>alert") {
		t.Error("unescaped prop value in markup")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("expected escaped prop value")
	}
}

func TestRenderEditorMarkers(t *testing.T) {
	props := DefaultProps(models.SectionHero, "v1")

	editor, err := Render(models.SectionHero, RenderContext{ID: "c1", Variant: "v1", Props: props})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(editor, `data-editable="c1:title"`) {
		t.Error("editor render missing editable marker")
	}
	if !strings.Contains(editor, "contenteditable") {
		t.Error("editor render missing contenteditable")
	}

	exported, err := Render(models.SectionHero, RenderContext{ID: "c1", Variant: "v1", Props: props, Export: true})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(exported, "data-editable") || strings.Contains(exported, "contenteditable") {
		t.Error("export render carries editor markers")
	}
}

func TestRenderStyleToggles(t *testing.T) {
	html, err := Render(models.SectionCTA, RenderContext{
		ID:      "c1",
		Variant: "v1",
		Props:   DefaultProps(models.SectionCTA, "v1"),
		Styles:  map[string]any{"glassmorphism": true, "textAlign": "left"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "backdrop-blur-xl") {
		t.Error("glassmorphism classes missing")
	}
	if !strings.Contains(html, "text-left") {
		t.Error("textAlign class missing")
	}
}

func TestRenderFAQInteractiveMarkup(t *testing.T) {
	html, err := Render(models.SectionFAQ, RenderContext{
		ID:      "c1",
		Variant: "v1",
		Props:   DefaultProps(models.SectionFAQ, "v1"),
		Export:  true,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, marker := range []string{"data-faq-item", "data-faq-button", "data-faq-content", "data-faq-icon", "max-h-0"} {
		if !strings.Contains(html, marker) {
			t.Errorf("faq markup missing %q", marker)
		}
	}
}

func TestRenderHeaderMobileMenu(t *testing.T) {
	html, err := Render(models.SectionHeader, RenderContext{
		ID:      "c1",
		Variant: "v1",
		Props:   DefaultProps(models.SectionHeader, "v1"),
		Export:  true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "data-mobile-menu-btn") || !strings.Contains(html, "data-mobile-menu") {
		t.Error("header markup missing mobile menu hooks")
	}
}

func TestRenderComponent(t *testing.T) {
	c := &models.Component{
		ID:      "abc",
		Type:    models.SectionHero,
		Variant: "v2",
		Props:   DefaultProps(models.SectionHero, "v2"),
		Styles:  map[string]any{},
	}
	html, err := RenderComponent(c, false)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "Centered Growth Strategy") {
		t.Error("v2 variant content missing")
	}
}

// ---- prop accessors ----

func TestPropAccessors(t *testing.T) {
	props := map[string]any{
		"s":     "text",
		"empty": "",
		"b":     true,
		"items": []any{map[string]any{"k": "v"}, "stray string", map[string]any{}},
		"tags":  []any{"a", 7, "b"},
	}

	if got := propString(props, "s", "fb"); got != "text" {
		t.Errorf("propString = %q", got)
	}
	if got := propString(props, "empty", "fb"); got != "fb" {
		t.Errorf("propString empty = %q, want fallback", got)
	}
	if got := propString(props, "missing", "fb"); got != "fb" {
		t.Errorf("propString missing = %q, want fallback", got)
	}
	if !propBool(props, "b") || propBool(props, "missing") {
		t.Error("propBool mismatch")
	}
	if got := propItems(props, "items"); len(got) != 2 {
		t.Errorf("propItems length = %d, want 2 (non-maps skipped)", len(got))
	}
	if got := propStrings(props, "tags"); len(got) != 2 {
		t.Errorf("propStrings length = %d, want 2 (non-strings skipped)", len(got))
	}
}
