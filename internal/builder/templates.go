// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// templates.go defines the named page presets. Applying a preset replaces
// the whole component sequence; each entry gets a freshly generated id so
// repeated applications never reuse ids.
package builder

import (
	"sort"

	"landpress/internal/models"
)

// templatePreset describes one named page layout: the section sequence,
// per-index variant overrides (empty means the default variant), the
// per-index glassmorphism toggle, and an optional forced theme.
type templatePreset struct {
	Sections      []models.SectionType
	Variants      []string
	Glassmorphism []bool
	Theme         *models.Theme
}

// fallbackTemplate is applied when an unknown preset name is requested.
const fallbackTemplate = "SaaS Startup"

var templatePresets = map[string]templatePreset{
	"SaaS Startup": {
		Sections: []models.SectionType{
			models.SectionHeader, models.SectionHero, models.SectionFeatures,
			models.SectionPricing, models.SectionTestimonials, models.SectionFAQ,
			models.SectionCTA, models.SectionFooter,
		},
		Variants:      []string{"", "v1", "v1", "", "", "", "", ""},
		Glassmorphism: []bool{true, true, true, true, true, true, true, true},
	},
	"Corporate Professional": {
		Sections: []models.SectionType{
			models.SectionHeader, models.SectionHero, models.SectionFeatures,
			models.SectionTestimonials, models.SectionCTA, models.SectionFooter,
		},
		Variants:      []string{"", "v2", "", "", "", ""},
		Glassmorphism: []bool{false, false, false, false, false, false},
	},
	"Creative Agency": {
		Sections: []models.SectionType{
			models.SectionHeader, models.SectionHero, models.SectionFeatures,
			models.SectionTestimonials, models.SectionFAQ, models.SectionFooter,
		},
		Variants:      []string{"", "v1", "v1", "", "", ""},
		Glassmorphism: []bool{false, true, true, true, true, false},
	},
	"E-Commerce Store": {
		Sections: []models.SectionType{
			models.SectionHeader, models.SectionHero, models.SectionFeatures,
			models.SectionPricing, models.SectionTestimonials, models.SectionCTA,
			models.SectionFooter,
		},
		Variants:      []string{"", "v2", "v1", "", "", "", ""},
		Glassmorphism: []bool{false, false, false, true, false, false, false},
	},
	"Educational Platform": {
		Sections: []models.SectionType{
			models.SectionHeader, models.SectionHero, models.SectionFeatures,
			models.SectionPricing, models.SectionFAQ, models.SectionTestimonials,
			models.SectionCTA, models.SectionFooter,
		},
		Variants:      []string{"", "v1", "v1", "", "", "", "", ""},
		Glassmorphism: []bool{false, false, false, false, true, true, false, false},
	},
	"Landing Page Minimal": {
		Sections: []models.SectionType{
			models.SectionHeader, models.SectionHero, models.SectionFeatures,
			models.SectionCTA, models.SectionFooter,
		},
		Variants:      []string{"", "v2", "v1", "", ""},
		Glassmorphism: []bool{false, false, false, false, false},
	},
	"Premium Showcase": {
		Sections: []models.SectionType{
			models.SectionHeader, models.SectionHero, models.SectionFeatures,
			models.SectionPricing, models.SectionTestimonials, models.SectionFAQ,
			models.SectionCTA, models.SectionFooter,
		},
		Variants:      []string{"", "v1", "v1", "", "", "", "", ""},
		Glassmorphism: []bool{true, true, true, true, true, true, true, true},
	},
	"Dark Mode SaaS": {
		Sections: []models.SectionType{
			models.SectionHeader, models.SectionHero, models.SectionFeatures,
			models.SectionTestimonials, models.SectionPricing, models.SectionContact,
			models.SectionCTA, models.SectionFooter,
		},
		Variants: []string{
			"pixels", "pixels", "pixels", "pixels", "pixels", "pixels", "pixels", "pixels",
		},
		// Glass handled inside the pixels variant styling.
		Glassmorphism: []bool{false, false, false, false, false, false, false, false},
		Theme: &models.Theme{
			Mode:           models.ThemeModeDark,
			PrimaryColor:   "#db2777",
			SecondaryColor: "#020617",
			FontFamily:     "Space Grotesk",
		},
	},
}

// TemplateNames returns the available preset names for the editor palette.
func TemplateNames() []string {
	names := make([]string, 0, len(templatePresets))
	for name := range templatePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
