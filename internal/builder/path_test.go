// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package builder

import (
	"testing"
)

func TestParsePropPath(t *testing.T) {
	tests := []struct {
		dotted string
		want   PropPath
	}{
		{"title", PropPath{{Key: "title"}}},
		{"items.0.title", PropPath{{Key: "items"}, {Index: 0, IsIndex: true}, {Key: "title"}}},
		{"items.12.features.3", PropPath{{Key: "items"}, {Index: 12, IsIndex: true}, {Key: "features"}, {Index: 3, IsIndex: true}}},
		// Negative numbers are not indexes.
		{"items.-1", PropPath{{Key: "items"}, {Key: "-1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.dotted, func(t *testing.T) {
			got := ParsePropPath(tt.dotted)
			if len(got) != len(tt.want) {
				t.Fatalf("segments = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("segment %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
			if got.String() != tt.dotted {
				t.Errorf("round trip = %q, want %q", got.String(), tt.dotted)
			}
		})
	}
}

func TestSetPropValue(t *testing.T) {
	props := map[string]any{
		"title": "Plans",
		"items": []any{
			map[string]any{"name": "Starter", "price": "$0"},
			map[string]any{"name": "Pro", "price": "$49"},
		},
	}

	props = setPropValue(props, ParsePropPath("items.1.price"), "$59")

	items := props["items"].([]any)
	second := items[1].(map[string]any)
	if second["price"] != "$59" {
		t.Errorf("price = %v", second["price"])
	}
	if second["name"] != "Pro" {
		t.Errorf("sibling key lost: %v", second["name"])
	}
	first := items[0].(map[string]any)
	if first["price"] != "$0" {
		t.Errorf("sibling item changed: %v", first["price"])
	}
	if props["title"] != "Plans" {
		t.Errorf("top-level sibling changed: %v", props["title"])
	}
}

func TestSetPropValueCreatesIntermediates(t *testing.T) {
	props := setPropValue(map[string]any{}, ParsePropPath("nav.links.2.label"), "Docs")

	nav := props["nav"].(map[string]any)
	links := nav["links"].([]any)
	if len(links) != 3 {
		t.Fatalf("links length = %d, want 3 (nil-padded)", len(links))
	}
	if links[0] != nil || links[1] != nil {
		t.Error("padding entries are not nil")
	}
	leaf := links[2].(map[string]any)
	if leaf["label"] != "Docs" {
		t.Errorf("leaf = %v", leaf["label"])
	}
}

func TestSetPropValueNilRoot(t *testing.T) {
	props := setPropValue(nil, ParsePropPath("title"), "x")
	if props == nil || props["title"] != "x" {
		t.Errorf("props = %v", props)
	}
}

func TestSetPropValueReplacesScalarWithContainer(t *testing.T) {
	props := map[string]any{"items": "oops, a string"}
	props = setPropValue(props, ParsePropPath("items.0.name"), "Starter")

	items, ok := props["items"].([]any)
	if !ok {
		t.Fatalf("items = %T, want []any", props["items"])
	}
	leaf := items[0].(map[string]any)
	if leaf["name"] != "Starter" {
		t.Errorf("leaf = %v", leaf["name"])
	}
}

func TestGetPropValue(t *testing.T) {
	props := map[string]any{
		"items": []any{map[string]any{"name": "Starter"}},
	}

	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{"existing leaf", "items.0.name", "Starter", true},
		{"whole list", "items", []any{map[string]any{"name": "Starter"}}, true},
		{"missing key", "items.0.price", nil, false},
		{"index out of range", "items.5.name", nil, false},
		{"key into scalar", "items.0.name.deeper", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := getPropValue(props, ParsePropPath(tt.path))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			switch want := tt.want.(type) {
			case string:
				if got != want {
					t.Errorf("value = %v, want %v", got, want)
				}
			case []any:
				list, isList := got.([]any)
				if !isList || len(list) != len(want) {
					t.Errorf("value = %v, want list of %d", got, len(want))
				}
			}
		})
	}
}

func TestGetPropValueReturnsCopy(t *testing.T) {
	props := map[string]any{"item": map[string]any{"name": "Starter"}}

	got, _ := getPropValue(props, ParsePropPath("item"))
	got.(map[string]any)["name"] = "Tampered"

	if props["item"].(map[string]any)["name"] != "Starter" {
		t.Error("returned value aliases the stored props")
	}
}
