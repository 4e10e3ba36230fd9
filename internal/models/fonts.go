// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// GoogleFonts lists the web font families the theme editor offers. The
// exporter builds a Google Fonts stylesheet URL from the selected name.
var GoogleFonts = []string{
	"Inter",
	"Outfit",
	"Space Grotesk",
	"Plus Jakarta Sans",
	"Bricolage Grotesque",
	"Playfair Display",
	"Montserrat",
	"Poppins",
	"Roboto",
	"Lora",
	"Sora",
}

// KnownFont reports whether name is a recognized font family.
func KnownFont(name string) bool {
	for _, f := range GoogleFonts {
		if f == name {
			return true
		}
	}
	return false
}
