// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// sections.go holds the HTML renderers for the nine section types. Markup
// is emitted directly with strings.Builder; all user-supplied text goes
// through esc. Interactive behavior (FAQ accordion, mobile nav) is wired
// by attribute selectors only, so the exported page needs no editor code.
package registry

import (
	"fmt"
	"strings"
)

func renderHeader(rc RenderContext) string {
	var sb strings.Builder
	sb.WriteString(`<header data-section="` + esc(rc.ID) + `" class="` + sectionClass(rc, "sticky top-0 z-50 border-b border-black/5 bg-white/80 backdrop-blur dark:bg-slate-900/80") + `">`)
	sb.WriteString(`<nav class="mx-auto flex max-w-6xl items-center justify-between px-6 py-4">`)

	if logoImage := propString(rc.Props, "logoImage", ""); logoImage != "" {
		sb.WriteString(`<img src="` + esc(logoImage) + `" alt="logo" class="h-8">`)
	} else {
		sb.WriteString(`<span class="text-xl font-bold"` + editable(rc, "logo") + `>` + esc(propString(rc.Props, "logo", "landpress")) + `</span>`)
	}

	sb.WriteString(`<div class="hidden items-center gap-8 md:flex">`)
	for _, link := range propItems(rc.Props, "links") {
		sb.WriteString(`<a href="` + esc(propString(link, "href", "#")) + `" class="text-sm font-medium hover:text-primary">` + esc(propString(link, "label", "")) + `</a>`)
	}
	sb.WriteString(`<a href="#" class="rounded-lg bg-primary px-4 py-2 text-sm font-semibold text-white hover:bg-primary/90"` + editable(rc, "cta") + `>` + esc(propString(rc.Props, "cta", "Sign Up")) + `</a>`)
	sb.WriteString(`</div>`)

	// Mobile toggle; the export runtime script flips the hidden class.
	sb.WriteString(`<button data-mobile-menu-btn class="md:hidden" aria-label="Toggle menu">`)
	sb.WriteString(`<span class="block h-0.5 w-6 bg-current"></span><span class="mt-1.5 block h-0.5 w-6 bg-current"></span><span class="mt-1.5 block h-0.5 w-6 bg-current"></span>`)
	sb.WriteString(`</button>`)
	sb.WriteString(`</nav>`)

	sb.WriteString(`<div data-mobile-menu class="hidden border-t border-black/5 px-6 py-4 md:hidden">`)
	for _, link := range propItems(rc.Props, "links") {
		sb.WriteString(`<a href="` + esc(propString(link, "href", "#")) + `" class="block py-2 text-sm font-medium">` + esc(propString(link, "label", "")) + `</a>`)
	}
	sb.WriteString(`</div>`)
	sb.WriteString(`</header>`)
	return sb.String()
}

func renderHero(rc RenderContext) string {
	centered := rc.Variant == "v2" || propBool(rc.Props, "centered")

	var sb strings.Builder
	sb.WriteString(`<section data-section="` + esc(rc.ID) + `" class="` + sectionClass(rc, "px-6 py-24") + `">`)
	if centered {
		sb.WriteString(`<div class="mx-auto max-w-3xl text-center">`)
	} else {
		sb.WriteString(`<div class="mx-auto grid max-w-6xl items-center gap-12 md:grid-cols-2">`)
		sb.WriteString(`<div>`)
	}

	sb.WriteString(`<h1 class="text-4xl font-extrabold tracking-tight md:text-6xl"` + editable(rc, "title") + `>` + esc(propString(rc.Props, "title", "")) + `</h1>`)
	sb.WriteString(`<p class="mt-6 text-lg opacity-80"` + editable(rc, "subtitle") + `>` + esc(propString(rc.Props, "subtitle", "")) + `</p>`)
	sb.WriteString(`<a href="#" class="mt-8 inline-block rounded-xl bg-primary px-8 py-3 font-semibold text-white shadow-lg shadow-primary/25 hover:bg-primary/90"` + editable(rc, "buttonText") + `>` + esc(propString(rc.Props, "buttonText", "Get Started")) + `</a>`)

	if centered {
		sb.WriteString(`</div>`)
	} else {
		sb.WriteString(`</div>`)
		if image := propString(rc.Props, "image", ""); image != "" {
			sb.WriteString(`<img src="` + esc(image) + `" alt="" class="rounded-2xl shadow-2xl">`)
		}
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</section>`)
	return sb.String()
}

func renderFeatures(rc RenderContext) string {
	var sb strings.Builder
	sb.WriteString(`<section data-section="` + esc(rc.ID) + `" class="` + sectionClass(rc, "px-6 py-20") + `">`)
	sb.WriteString(`<div class="mx-auto max-w-6xl">`)
	sb.WriteString(`<h2 class="text-center text-3xl font-bold md:text-4xl"` + editable(rc, "title") + `>` + esc(propString(rc.Props, "title", "")) + `</h2>`)
	sb.WriteString(`<div class="mt-12 grid gap-8 md:grid-cols-3">`)
	for i, item := range propItems(rc.Props, "items") {
		sb.WriteString(`<div class="rounded-2xl border border-black/5 p-8 shadow-sm">`)
		sb.WriteString(`<div class="flex h-10 w-10 items-center justify-center rounded-lg bg-primary/10 font-bold text-primary">` + esc(propString(item, "icon", "")) + `</div>`)
		sb.WriteString(`<h3 class="mt-4 text-lg font-semibold"` + editable(rc, fmt.Sprintf("items.%d.title", i)) + `>` + esc(propString(item, "title", "")) + `</h3>`)
		sb.WriteString(`<p class="mt-2 text-sm opacity-70"` + editable(rc, fmt.Sprintf("items.%d.content", i)) + `>` + esc(propString(item, "content", "")) + `</p>`)
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div></div></section>`)
	return sb.String()
}

func renderPricing(rc RenderContext) string {
	var sb strings.Builder
	sb.WriteString(`<section data-section="` + esc(rc.ID) + `" class="` + sectionClass(rc, "px-6 py-20") + `">`)
	sb.WriteString(`<div class="mx-auto max-w-5xl">`)
	sb.WriteString(`<h2 class="text-center text-3xl font-bold md:text-4xl"` + editable(rc, "title") + `>` + esc(propString(rc.Props, "title", "")) + `</h2>`)
	sb.WriteString(`<div class="mt-12 grid gap-8 md:grid-cols-2">`)
	for i, plan := range propItems(rc.Props, "items") {
		popular := propBool(plan, "popular")
		card := "rounded-2xl border p-8"
		if popular {
			card += " border-primary shadow-xl shadow-primary/10"
		} else {
			card += " border-black/10"
		}
		sb.WriteString(`<div class="` + card + `">`)
		if popular {
			sb.WriteString(`<span class="rounded-full bg-primary px-3 py-1 text-xs font-semibold text-white">` + esc(propString(plan, "popularLabel", "Most Popular")) + `</span>`)
		}
		sb.WriteString(`<h3 class="mt-2 text-lg font-semibold"` + editable(rc, fmt.Sprintf("items.%d.name", i)) + `>` + esc(propString(plan, "name", "")) + `</h3>`)
		sb.WriteString(`<p class="mt-4 text-4xl font-extrabold"` + editable(rc, fmt.Sprintf("items.%d.price", i)) + `>` + esc(propString(plan, "price", "")) + `<span class="text-base font-normal opacity-60">/mo</span></p>`)
		sb.WriteString(`<ul class="mt-6 space-y-3 text-sm">`)
		for _, feature := range propStrings(plan, "features") {
			sb.WriteString(`<li class="flex items-center gap-2"><span class="text-primary">&#10003;</span>` + esc(feature) + `</li>`)
		}
		sb.WriteString(`</ul>`)
		sb.WriteString(`<a href="#" class="mt-8 block rounded-lg bg-primary py-2.5 text-center font-semibold text-white hover:bg-primary/90">` + esc(propString(plan, "buttonText", "Choose Plan")) + `</a>`)
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div></div></section>`)
	return sb.String()
}

func renderTestimonials(rc RenderContext) string {
	var sb strings.Builder
	sb.WriteString(`<section data-section="` + esc(rc.ID) + `" class="` + sectionClass(rc, "px-6 py-20") + `">`)
	sb.WriteString(`<div class="mx-auto max-w-5xl">`)
	sb.WriteString(`<h2 class="text-center text-3xl font-bold md:text-4xl"` + editable(rc, "title") + `>` + esc(propString(rc.Props, "title", "")) + `</h2>`)
	sb.WriteString(`<div class="mt-12 grid gap-8 md:grid-cols-2">`)
	for i, t := range propItems(rc.Props, "items") {
		sb.WriteString(`<figure class="rounded-2xl border border-black/5 p-8 shadow-sm">`)
		sb.WriteString(`<blockquote class="text-lg"` + editable(rc, fmt.Sprintf("items.%d.quote", i)) + `>&ldquo;` + esc(propString(t, "quote", "")) + `&rdquo;</blockquote>`)
		sb.WriteString(`<figcaption class="mt-6 flex items-center gap-3">`)
		if avatar := propString(t, "avatar", ""); avatar != "" {
			sb.WriteString(`<img src="` + esc(avatar) + `" alt="" class="h-10 w-10 rounded-full">`)
		}
		sb.WriteString(`<div><div class="font-semibold">` + esc(propString(t, "name", "")) + `</div>`)
		sb.WriteString(`<div class="text-sm opacity-60">` + esc(propString(t, "role", "")) + `</div></div>`)
		sb.WriteString(`</figcaption></figure>`)
	}
	sb.WriteString(`</div></div></section>`)
	return sb.String()
}

func renderFAQ(rc RenderContext) string {
	var sb strings.Builder
	sb.WriteString(`<section data-section="` + esc(rc.ID) + `" class="` + sectionClass(rc, "px-6 py-20") + `">`)
	sb.WriteString(`<div class="mx-auto max-w-3xl">`)
	sb.WriteString(`<h2 class="text-center text-3xl font-bold md:text-4xl"` + editable(rc, "title") + `>` + esc(propString(rc.Props, "title", "")) + `</h2>`)
	sb.WriteString(`<div class="mt-10 space-y-4">`)
	for i, item := range propItems(rc.Props, "items") {
		// data-faq-* attributes drive the export accordion script.
		sb.WriteString(`<div data-faq-item class="overflow-hidden rounded-xl border border-black/10">`)
		sb.WriteString(`<button data-faq-button class="flex w-full items-center justify-between px-6 py-5 text-left font-semibold">`)
		sb.WriteString(`<span` + editable(rc, fmt.Sprintf("items.%d.question", i)) + `>` + esc(propString(item, "question", "")) + `</span>`)
		sb.WriteString(`<span data-faq-icon class="flex h-7 w-7 items-center justify-center rounded-full bg-background transition-transform">&#8595;</span>`)
		sb.WriteString(`</button>`)
		sb.WriteString(`<div data-faq-content class="max-h-0 overflow-hidden opacity-0 transition-all">`)
		sb.WriteString(`<p class="px-6 pb-5 text-sm opacity-80"` + editable(rc, fmt.Sprintf("items.%d.answer", i)) + `>` + esc(propString(item, "answer", "")) + `</p>`)
		sb.WriteString(`</div></div>`)
	}
	sb.WriteString(`</div></div></section>`)
	return sb.String()
}

func renderCTA(rc RenderContext) string {
	var sb strings.Builder
	sb.WriteString(`<section data-section="` + esc(rc.ID) + `" class="` + sectionClass(rc, "px-6 py-24") + `">`)
	sb.WriteString(`<div class="mx-auto max-w-3xl rounded-3xl bg-gradient-to-br from-primary to-secondary p-12 text-center text-white">`)
	sb.WriteString(`<h2 class="text-3xl font-bold md:text-4xl"` + editable(rc, "title") + `>` + esc(propString(rc.Props, "title", "")) + `</h2>`)
	sb.WriteString(`<p class="mt-4 text-lg opacity-90"` + editable(rc, "subtitle") + `>` + esc(propString(rc.Props, "subtitle", "")) + `</p>`)
	sb.WriteString(`<a href="#" class="mt-8 inline-block rounded-xl bg-white px-8 py-3 font-semibold text-primary hover:bg-white/90"` + editable(rc, "buttonText") + `>` + esc(propString(rc.Props, "buttonText", "Get Started")) + `</a>`)
	sb.WriteString(`</div></section>`)
	return sb.String()
}

func renderContact(rc RenderContext) string {
	var sb strings.Builder
	sb.WriteString(`<section data-section="` + esc(rc.ID) + `" class="` + sectionClass(rc, "px-6 py-20") + `">`)
	sb.WriteString(`<div class="mx-auto max-w-xl">`)
	sb.WriteString(`<h2 class="text-center text-3xl font-bold md:text-4xl"` + editable(rc, "title") + `>` + esc(propString(rc.Props, "title", "Get in touch")) + `</h2>`)
	sb.WriteString(`<p class="mt-4 text-center opacity-70"` + editable(rc, "subtitle") + `>` + esc(propString(rc.Props, "subtitle", "We usually reply within one business day.")) + `</p>`)
	sb.WriteString(`<form class="mt-10 space-y-4">`)
	sb.WriteString(`<input type="text" placeholder="Your name" class="w-full rounded-lg border border-black/10 px-4 py-3">`)
	sb.WriteString(`<input type="email" placeholder="Email address" class="w-full rounded-lg border border-black/10 px-4 py-3">`)
	sb.WriteString(`<textarea placeholder="Message" rows="4" class="w-full rounded-lg border border-black/10 px-4 py-3"></textarea>`)
	sb.WriteString(`<button type="submit" class="w-full rounded-lg bg-primary py-3 font-semibold text-white hover:bg-primary/90">` + esc(propString(rc.Props, "buttonText", "Send Message")) + `</button>`)
	sb.WriteString(`</form></div></section>`)
	return sb.String()
}

func renderFooter(rc RenderContext) string {
	var sb strings.Builder
	sb.WriteString(`<footer data-section="` + esc(rc.ID) + `" class="` + sectionClass(rc, "border-t border-black/5 px-6 py-12") + `">`)
	sb.WriteString(`<div class="mx-auto flex max-w-6xl flex-col items-center justify-between gap-6 md:flex-row">`)
	if logo := propString(rc.Props, "footerLogoImage", ""); logo != "" {
		sb.WriteString(`<img src="` + esc(logo) + `" alt="logo" class="h-8">`)
	}
	sb.WriteString(`<p class="text-sm opacity-60"` + editable(rc, "content") + `>` + esc(propString(rc.Props, "content", "")) + `</p>`)
	sb.WriteString(`<div class="flex gap-6">`)
	for _, link := range propItems(rc.Props, "links") {
		sb.WriteString(`<a href="` + esc(propString(link, "href", "#")) + `" class="text-sm opacity-60 hover:opacity-100">` + esc(propString(link, "label", "")) + `</a>`)
	}
	sb.WriteString(`</div>`)
	sb.WriteString(`<div class="flex gap-4">`)
	for _, social := range propItems(rc.Props, "socials") {
		sb.WriteString(`<a href="` + esc(propString(social, "url", "#")) + `" aria-label="` + esc(propString(social, "platform", "")) + `" class="opacity-60 hover:opacity-100">` + esc(propString(social, "platform", "")) + `</a>`)
	}
	sb.WriteString(`</div></div></footer>`)
	return sb.String()
}
