// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package registry maps section types to their default content and their
// HTML renderers. It is pure and stateless: DefaultProps never fails, and
// Render only fails for an unknown section type so a caller can substitute
// a placeholder without aborting the rest of the page.
package registry

import (
	"errors"
	"fmt"

	"landpress/internal/models"
)

// ErrUnknownSection is returned by Render for a section type that has no
// registered renderer.
var ErrUnknownSection = errors.New("unknown section type")

// RenderContext carries everything a section renderer needs. Props and
// Styles are read-only from the renderer's point of view.
type RenderContext struct {
	ID      string
	Variant string
	Props   map[string]any
	Styles  map[string]any
	Export  bool // true when rendering for the standalone export artifact
}

// renderFunc produces the HTML fragment for one section instance.
type renderFunc func(rc RenderContext) string

// renderers is the fixed section-type registry. Render functions live in
// sections.go.
var renderers = map[models.SectionType]renderFunc{
	models.SectionHeader:       renderHeader,
	models.SectionHero:         renderHero,
	models.SectionFeatures:     renderFeatures,
	models.SectionPricing:      renderPricing,
	models.SectionTestimonials: renderTestimonials,
	models.SectionFAQ:          renderFAQ,
	models.SectionCTA:          renderCTA,
	models.SectionContact:      renderContact,
	models.SectionFooter:       renderFooter,
}

// Render produces the markup for one section. The only error path is an
// unknown section type.
func Render(t models.SectionType, rc RenderContext) (string, error) {
	fn, ok := renderers[t]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, t)
	}
	return fn(rc), nil
}

// RenderComponent renders a component with its own id, variant, props,
// and styles.
func RenderComponent(c *models.Component, export bool) (string, error) {
	return Render(c.Type, RenderContext{
		ID:      c.ID,
		Variant: c.Variant,
		Props:   c.Props,
		Styles:  c.Styles,
		Export:  export,
	})
}
