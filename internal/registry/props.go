// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package registry

import (
	"html"
	"strings"
)

// propString reads a string prop, returning fallback when the key is
// absent or holds a non-string value.
func propString(props map[string]any, key, fallback string) string {
	if v, ok := props[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// propBool reads a boolean prop, treating anything but true as false.
func propBool(props map[string]any, key string) bool {
	v, _ := props[key].(bool)
	return v
}

// propItems reads a list prop and returns its map entries. Non-map entries
// are skipped so a malformed import never panics a renderer.
func propItems(props map[string]any, key string) []map[string]any {
	raw, _ := props[key].([]any)
	items := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}

// propStrings reads a list prop of plain strings (e.g. pricing features).
func propStrings(props map[string]any, key string) []string {
	raw, _ := props[key].([]any)
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// esc escapes user-supplied text for safe HTML interpolation.
func esc(s string) string {
	return html.EscapeString(s)
}

// sectionClass combines a section's base classes with the per-component
// style toggles: glassmorphism adds the translucent panel treatment and
// textAlign overrides the default alignment.
func sectionClass(rc RenderContext, base string) string {
	var sb strings.Builder
	sb.WriteString(base)
	if glass, _ := rc.Styles["glassmorphism"].(bool); glass {
		sb.WriteString(" backdrop-blur-xl bg-white/5 border border-white/10")
	}
	if align, _ := rc.Styles["textAlign"].(string); align != "" {
		sb.WriteString(" text-")
		sb.WriteString(align)
	}
	return sb.String()
}

// editable emits the inline-editing marker attributes in editor mode.
// Export strips them entirely so the artifact carries no editor residue.
func editable(rc RenderContext, propKey string) string {
	if rc.Export {
		return ""
	}
	return ` contenteditable="true" data-editable="` + esc(rc.ID) + `:` + esc(propKey) + `"`
}
