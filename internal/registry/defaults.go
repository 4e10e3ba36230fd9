// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package registry

import (
	"landpress/internal/models"
)

// DefaultVariant is the variant assigned to newly added components.
const DefaultVariant = "v1"

// DefaultProps returns a fresh, writable default props map for the given
// section type and variant. An unknown variant falls back to the type's
// variant-agnostic defaults; an unknown type yields an empty map. It never
// fails — callers rely on this when switching variants and when resetting
// a component.
func DefaultProps(t models.SectionType, variant string) map[string]any {
	switch t {
	case models.SectionHeader:
		return map[string]any{
			"logo":      "landpress",
			"logoImage": "",
			"links": []any{
				map[string]any{"label": "Features", "href": "#"},
				map[string]any{"label": "Pricing", "href": "#"},
				map[string]any{"label": "About", "href": "#"},
			},
			"cta": "Sign Up",
		}
	case models.SectionHero:
		if variant == "v2" {
			return map[string]any{
				"title":      "Centered Growth Strategy",
				"subtitle":   "Focus on what matters most. Our platform scales with your ambition.",
				"buttonText": "Start Free Trial",
				"centered":   true,
			}
		}
		return map[string]any{
			"title":      "Craft Your Perfect Landing Page",
			"subtitle":   "Build high-converting pages in minutes with our intuitive drag-and-drop builder.",
			"buttonText": "Get Started",
			"image":      "https://images.unsplash.com/photo-1460925895917-afdab827c52f?auto=format&fit=crop&w=800&q=80",
		}
	case models.SectionFeatures:
		return map[string]any{
			"title": "Everything you need to scale",
			"items": []any{
				map[string]any{"title": "Lightning Fast", "content": "Optimized performance for maximum conversion rates.", "icon": "Zap"},
				map[string]any{"title": "Secure by Design", "content": "Enterprise-grade security built into every block.", "icon": "Shield"},
				map[string]any{"title": "Always Syncing", "content": "Your data is always up to date across all devices.", "icon": "RefreshCw"},
			},
		}
	case models.SectionPricing:
		return map[string]any{
			"title": "Flexible plans for teams of all sizes",
			"items": []any{
				map[string]any{
					"name": "Starter", "price": "$0",
					"features":   []any{"3 Projects", "Basic Analytics", "Community Support"},
					"buttonText": "Get Started",
				},
				map[string]any{
					"name": "Professional", "price": "$49",
					"features":   []any{"Unlimited Projects", "Advanced Analytics", "Priority Support", "Custom Domains"},
					"buttonText": "Upgrade Now", "popular": true,
				},
			},
		}
	case models.SectionTestimonials:
		return map[string]any{
			"title": "Trusted by world-class teams",
			"items": []any{
				map[string]any{"name": "Alex Rivera", "role": "Founder @ TechFlow", "quote": "The best builder we have ever used. Period.", "avatar": "https://i.pravatar.cc/150?u=alex"},
				map[string]any{"name": "Sarah Chen", "role": "Marketing Lead", "quote": "Our conversion rate jumped 40% in two weeks.", "avatar": "https://i.pravatar.cc/150?u=sarah"},
			},
		}
	case models.SectionFAQ:
		return map[string]any{
			"title": "Frequently Asked Questions",
			"items": []any{
				map[string]any{"question": "Is there a free trial?", "answer": "Yes! You can start with our free plan and upgrade anytime."},
				map[string]any{"question": "Can I export my code?", "answer": "Absolutely. We provide a clean, production-ready static site."},
				map[string]any{"question": "Do you offer custom domains?", "answer": "Yes, custom domain mapping is available on our Professional plan."},
			},
		}
	case models.SectionCTA:
		return map[string]any{
			"title":      "Ready to transform your workflow?",
			"subtitle":   "Join over 10,000 creators and start building today.",
			"buttonText": "Get Started for Free",
		}
	case models.SectionFooter:
		return map[string]any{
			"content":         "© 2026 landpress. Built with love for creators.",
			"footerLogoImage": "",
			"links": []any{
				map[string]any{"label": "Privacy", "href": "#"},
				map[string]any{"label": "Terms", "href": "#"},
				map[string]any{"label": "Cloud", "href": "#"},
			},
			"socials": []any{
				map[string]any{"platform": "twitter", "url": "https://twitter.com"},
				map[string]any{"platform": "github", "url": "https://github.com"},
				map[string]any{"platform": "linkedin", "url": "https://linkedin.com"},
				map[string]any{"platform": "instagram", "url": "https://instagram.com"},
			},
		}
	default:
		// Contact and any future type default to an empty bag; renderers
		// fall back to per-field defaults.
		return map[string]any{}
	}
}
