// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the serializable page document: a Layout made of
// ordered section Components plus theme, SEO metadata, and saved Versions.
// Every structure here round-trips through JSON unchanged — the same shape
// is used for persistence, import/export, and history snapshots.
package models

import (
	"github.com/google/uuid"
)

// SectionType identifies one of the fixed section kinds a page is built from.
type SectionType string

const (
	SectionHero         SectionType = "hero"
	SectionFeatures     SectionType = "features"
	SectionPricing      SectionType = "pricing"
	SectionTestimonials SectionType = "testimonials"
	SectionCTA          SectionType = "cta"
	SectionFAQ          SectionType = "faq"
	SectionHeader       SectionType = "header"
	SectionFooter       SectionType = "footer"
	SectionContact      SectionType = "contact"
)

// SectionTypes lists every valid section type, in palette order.
var SectionTypes = []SectionType{
	SectionHeader, SectionHero, SectionFeatures, SectionPricing,
	SectionTestimonials, SectionFAQ, SectionCTA, SectionContact,
	SectionFooter,
}

// Valid reports whether t is a known section type.
func (t SectionType) Valid() bool {
	for _, known := range SectionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ThemeMode selects the light or dark base palette.
type ThemeMode string

const (
	ThemeModeLight ThemeMode = "light"
	ThemeModeDark  ThemeMode = "dark"
)

// Theme holds the page-wide design settings.
type Theme struct {
	PrimaryColor   string    `json:"primaryColor"`
	SecondaryColor string    `json:"secondaryColor"`
	FontFamily     string    `json:"fontFamily"`
	Mode           ThemeMode `json:"mode"`
}

// SEO holds the document metadata embedded in exported pages.
// OGImage is optional; an empty value emits no og:image tag at all.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	OGImage     string `json:"ogImage,omitempty"`
}

// Component is one section instance on the page. Props carry the content
// data bag whose shape is determined by (Type, Variant); Styles carry
// presentational toggles independent of content (textAlign, glassmorphism).
// Values in both maps are JSON scalars, nested maps, or slices thereof.
type Component struct {
	ID      string         `json:"id"`
	Type    SectionType    `json:"type"`
	Variant string         `json:"variant"`
	Props   map[string]any `json:"props"`
	Styles  map[string]any `json:"styles"`
}

// Clone returns a deep copy of the component sharing no mutable state
// with the original.
func (c *Component) Clone() *Component {
	return &Component{
		ID:      c.ID,
		Type:    c.Type,
		Variant: c.Variant,
		Props:   CopyPropMap(c.Props),
		Styles:  CopyPropMap(c.Styles),
	}
}

// Version is a named, timestamped snapshot of the whole Layout. The stored
// layout excludes its own versions list so snapshots never nest recursively.
type Version struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Timestamp int64   `json:"timestamp"` // Unix milliseconds, matches the persisted format.
	Layout    *Layout `json:"layout"`
}

// Layout is the full page document. Component order is render order,
// top to bottom. ID never changes after creation.
type Layout struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Components []*Component `json:"components"`
	Theme      Theme        `json:"theme"`
	SEO        SEO          `json:"seo"`
	Versions   []Version    `json:"versions"`
}

// Clone returns a deep copy of the layout. History entries and saved
// versions must never alias the live document — a later in-place edit
// would silently corrupt the frozen snapshot.
func (l *Layout) Clone() *Layout {
	clone := &Layout{
		ID:    l.ID,
		Name:  l.Name,
		Theme: l.Theme,
		SEO:   l.SEO,
	}
	if l.Components != nil {
		clone.Components = make([]*Component, len(l.Components))
		for i, c := range l.Components {
			clone.Components[i] = c.Clone()
		}
	}
	if l.Versions != nil {
		clone.Versions = make([]Version, len(l.Versions))
		for i, v := range l.Versions {
			cv := Version{
				ID:        v.ID,
				Name:      v.Name,
				Timestamp: v.Timestamp,
			}
			if v.Layout != nil {
				cv.Layout = v.Layout.Clone()
			}
			clone.Versions[i] = cv
		}
	}
	return clone
}

// Snapshot returns a deep copy with the versions list stripped. This is
// the form stored inside a Version.
func (l *Layout) Snapshot() *Layout {
	s := l.Clone()
	s.Versions = nil
	return s
}

// FindComponent returns the component with the given id and its index,
// or (nil, -1) when absent.
func (l *Layout) FindComponent(id string) (*Component, int) {
	for i, c := range l.Components {
		if c.ID == id {
			return c, i
		}
	}
	return nil, -1
}

// DefaultSEOTitle is the placeholder SEO title on a fresh layout. Template
// application only overwrites the title while it still holds this value.
const DefaultSEOTitle = "My Landing Page"

// DefaultLayout returns a fresh empty page with the built-in theme.
func DefaultLayout() *Layout {
	return &Layout{
		ID:         uuid.NewString(),
		Name:       "New Page",
		Components: []*Component{},
		Theme: Theme{
			PrimaryColor:   "#3b82f6",
			SecondaryColor: "#6366f1",
			FontFamily:     "Inter",
			Mode:           ThemeModeLight,
		},
		SEO: SEO{
			Title:       DefaultSEOTitle,
			Description: "Professional landing page built with landpress.",
		},
		Versions: []Version{},
	}
}

// CopyValue deep-copies a prop value. Values originate from JSON or the
// section registry, so only maps, slices, and scalars occur.
func CopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CopyPropMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = CopyValue(item)
		}
		return out
	default:
		return val
	}
}

// CopyPropMap deep-copies a props or styles map. A nil input yields an
// empty, writable map.
func CopyPropMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = CopyValue(v)
	}
	return out
}
