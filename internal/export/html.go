// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package export renders a Layout into self-contained artifacts: a single
// standalone HTML document, a zip archive bundling it with static assets,
// and the raw pretty-printed JSON. HTML generation is a deterministic pure
// function of the layout — no randomness and no wall-clock content.
package export

import (
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"strconv"
	"strings"

	"landpress/internal/models"
	"landpress/internal/registry"
	"landpress/internal/slug"
)

// GenerateStandaloneHTML renders the layout to a complete HTML document.
// Sections render in component order; a section whose type is unknown
// degrades to a visible placeholder comment instead of aborting the page.
func GenerateStandaloneHTML(layout *models.Layout) string {
	var sections strings.Builder
	for _, c := range layout.Components {
		markup, err := registry.RenderComponent(c, true)
		if err != nil {
			slog.Warn("export: section render failed, emitting placeholder",
				"type", c.Type, "id", c.ID, "error", err)
			sections.WriteString(`<section class="px-6 py-12 text-center opacity-50"><!-- unrenderable section: ` + html.EscapeString(string(c.Type)) + ` --></section>`)
			sections.WriteString("\n")
			continue
		}
		sections.WriteString(markup)
		sections.WriteString("\n")
	}

	primaryRGB := hexToRGB(layout.Theme.PrimaryColor, "59 130 246")
	secondaryRGB := hexToRGB(layout.Theme.SecondaryColor, "99 102 241")

	background, foreground := "#ffffff", "#0f172a"
	if layout.Theme.Mode == models.ThemeModeDark {
		background, foreground = "#0f172a", "#f8fafc"
	}

	title := layout.SEO.Title
	if title == "" {
		title = layout.Name
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	sb.WriteString("<meta charset=\"UTF-8\">\n")
	sb.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	sb.WriteString(`<meta name="description" content="` + html.EscapeString(layout.SEO.Description) + "\">\n")
	// og:image is omitted entirely when unset — never an empty tag.
	if layout.SEO.OGImage != "" {
		sb.WriteString(`<meta property="og:image" content="` + html.EscapeString(layout.SEO.OGImage) + "\">\n")
	}
	sb.WriteString("<script src=\"https://cdn.tailwindcss.com\"></script>\n")
	sb.WriteString("<script>\n")
	sb.WriteString("tailwind.config = {theme: {extend: {colors: {primary: 'rgb(var(--primary) / <alpha-value>)', secondary: 'rgb(var(--secondary) / <alpha-value>)'}, fontFamily: {sans: ['" + jsEscape(layout.Theme.FontFamily) + "', 'sans-serif']}}}};\n")
	sb.WriteString("</script>\n")
	// Font name spaces become '+' in the stylesheet URL but stay literal in CSS.
	sb.WriteString(`<link href="https://fonts.googleapis.com/css2?family=` + fontURLName(layout.Theme.FontFamily) + `:wght@400;500;600;700;800;900&display=swap" rel="stylesheet">` + "\n")
	sb.WriteString("<style>\n")
	sb.WriteString(":root { --primary: " + primaryRGB + "; --secondary: " + secondaryRGB + "; }\n")
	sb.WriteString("body { font-family: '" + cssEscape(layout.Theme.FontFamily) + "', sans-serif; background-color: " + background + "; color: " + foreground + "; }\n")
	sb.WriteString("</style>\n</head>\n<body>\n<div id=\"root\">\n")
	sb.WriteString(sections.String())
	sb.WriteString("</div>\n<script>\n")
	sb.WriteString(runtimeScript)
	sb.WriteString("\n</script>\n</body>\n</html>\n")
	return sb.String()
}

// ExportJSON returns the layout verbatim as pretty-printed JSON, the shape
// accepted back by import.
func ExportJSON(layout *models.Layout) ([]byte, error) {
	data, err := json.MarshalIndent(layout, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("export json: %w", err)
	}
	return data, nil
}

// Filename derives the download filename from the layout name: lowercase,
// spaces to hyphens, .html extension.
func Filename(layout *models.Layout) string {
	name := slug.Generate(layout.Name)
	if name == "" {
		name = "landing-page"
	}
	return name + ".html"
}

// hexToRGB converts "#rrggbb" to a space-separated RGB triple so theme
// colors compose with Tailwind's alpha-value syntax. Falls back for
// malformed input.
func hexToRGB(hex, fallback string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return fallback
	}
	var parts [3]string
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return fallback
		}
		parts[i] = strconv.FormatUint(v, 10)
	}
	return parts[0] + " " + parts[1] + " " + parts[2]
}

// fontURLName encodes a font family for the Google Fonts stylesheet URL.
func fontURLName(family string) string {
	return strings.ReplaceAll(family, " ", "+")
}

// cssEscape guards the font family inside a single-quoted CSS string.
func cssEscape(s string) string {
	return strings.NewReplacer(`\`, ``, `'`, ``).Replace(s)
}

// jsEscape guards the font family inside a single-quoted JS string.
func jsEscape(s string) string {
	return strings.NewReplacer(`\`, ``, `'`, ``).Replace(s)
}

// runtimeScript is the fixed presentational script embedded in every
// export. It strips leftover editing markers and wires the FAQ accordion
// and mobile nav through data attributes only — the exported page has no
// dependency on the editor at runtime.
const runtimeScript = `document.addEventListener('DOMContentLoaded', function () {
  // Remove any editable-region markers left in the markup.
  document.querySelectorAll('[contenteditable]').forEach(function (el) {
    el.removeAttribute('contenteditable');
  });
  document.querySelectorAll('[data-editable]').forEach(function (el) {
    el.removeAttribute('data-editable');
  });

  // FAQ accordion: one open item at a time.
  var faqItems = document.querySelectorAll('[data-faq-item]');
  faqItems.forEach(function (item, index) {
    var button = item.querySelector('[data-faq-button]');
    var content = item.querySelector('[data-faq-content]');
    var icon = item.querySelector('[data-faq-icon]');
    if (!button || !content) return;

    button.addEventListener('click', function () {
      var isClosed = content.classList.contains('max-h-0');

      faqItems.forEach(function (other, otherIndex) {
        if (otherIndex === index) return;
        var otherContent = other.querySelector('[data-faq-content]');
        var otherIcon = other.querySelector('[data-faq-icon]');
        if (otherContent) {
          otherContent.classList.add('max-h-0', 'opacity-0');
          otherContent.classList.remove('max-h-[500px]', 'opacity-100');
        }
        if (otherIcon) otherIcon.classList.remove('rotate-180');
        other.classList.remove('border-primary/50');
      });

      if (isClosed) {
        content.classList.remove('max-h-0', 'opacity-0');
        content.classList.add('max-h-[500px]', 'opacity-100');
        if (icon) icon.classList.add('rotate-180');
        item.classList.add('border-primary/50');
      } else {
        content.classList.add('max-h-0', 'opacity-0');
        content.classList.remove('max-h-[500px]', 'opacity-100');
        if (icon) icon.classList.remove('rotate-180');
        item.classList.remove('border-primary/50');
      }
    });
  });

  // Mobile navigation toggle.
  var menuBtn = document.querySelector('[data-mobile-menu-btn]');
  var menu = document.querySelector('[data-mobile-menu]');
  if (menuBtn && menu) {
    menuBtn.addEventListener('click', function () {
      menu.classList.toggle('hidden');
    });
  }
});`
