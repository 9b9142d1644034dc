// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package landing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"blueprintos/internal/models"
)

// TextGenerator is the slice of the AI registry the generator needs.
type TextGenerator interface {
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Generator turns a coach's free-text business description into a
// complete, schema-valid landing page configuration. Generate never
// fails: when the external text-generation call is unavailable, errors,
// or returns an unusable document, the deterministic fallback answers
// instead.
type Generator struct {
	llm TextGenerator // nil means fallback-only
}

// NewGenerator creates a generator backed by the given text generator.
// Passing nil disables the external path entirely.
func NewGenerator(llm TextGenerator) *Generator {
	return &Generator{llm: llm}
}

// systemPromptTemplate is the fixed instruction sent to the external
// API. Only hero, about and how_it_works are ever requested; the
// remaining sections are completed locally with fixed defaults.
const systemPromptTemplate = `You are an expert landing page copywriter specializing in coaching businesses.
Convert the user's coaching description into a structured landing page configuration.

Extract:
1. A compelling headline (5-10 words, benefit-focused)
2. A subheadline (15-25 words, explaining the transformation)
3. Primary CTA text (2-4 words, action-oriented)
4. Secondary CTA text (2-4 words)
5. About section (title, 2-3 sentence description, 3 bullet points)
6. How it works (3 steps with titles and descriptions)
7. Suggest appropriate icon names from lucide-react

Tone: %s
Niche: %s

Return valid JSON matching this structure:
{
  "hero": {
    "headline": "string",
    "subheadline": "string",
    "cta_primary_text": "string",
    "cta_secondary_text": "string",
    "background_style": "gradient"
  },
  "about": {
    "title": "string",
    "description": "string",
    "bullet_points": ["string", "string", "string"],
    "image_placement": "right"
  },
  "how_it_works": {
    "title": "How It Works",
    "steps": [
      {"title": "string", "description": "string", "icon_name": "Calendar"},
      {"title": "string", "description": "string", "icon_name": "BookOpen"},
      {"title": "string", "description": "string", "icon_name": "TrendingUp"}
    ]
  },
  "sections_enabled": ["hero", "about", "how_it_works", "testimonials", "pricing", "cta"]
}`

// generatedDocument is the schema the external API is constrained to.
// Testimonials, pricing display and theme are never requested from it.
type generatedDocument struct {
	Hero            *models.HeroConfig       `json:"hero"`
	About           *models.AboutConfig      `json:"about"`
	HowItWorks      *models.HowItWorksConfig `json:"how_it_works"`
	SectionsEnabled []string                 `json:"sections_enabled"`
}

// Generate produces a complete landing page configuration from a
// business description, an optional niche and an optional tone.
func (g *Generator) Generate(ctx context.Context, prompt string, niche Niche, tone string) models.LandingPageConfig {
	if g.llm == nil {
		slog.Warn("text-generation API not configured, using fallback template")
		return Fallback(prompt, niche)
	}

	if tone == "" {
		tone = "professional and motivational"
	}
	nicheLabel := "general coaching"
	if niche != "" {
		nicheLabel = string(niche)
	}
	systemPrompt := fmt.Sprintf(systemPromptTemplate, tone, nicheLabel)

	raw, err := g.llm.GenerateJSON(ctx, systemPrompt, prompt)
	if err != nil {
		slog.Error("landing page generation failed, using fallback", "error", err)
		return Fallback(prompt, niche)
	}

	var doc generatedDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		slog.Error("generated config is not valid JSON, using fallback", "error", err)
		return Fallback(prompt, niche)
	}
	if doc.Hero == nil || doc.About == nil || doc.HowItWorks == nil {
		slog.Error("generated config missing required sections, using fallback")
		return Fallback(prompt, niche)
	}

	// Complete the partial document: testimonials, pricing display and
	// theme always come from the fixed defaults, never the model.
	defaults := models.DefaultLandingPageConfig()
	cfg := models.LandingPageConfig{
		Hero:            doc.Hero,
		About:           doc.About,
		HowItWorks:      doc.HowItWorks,
		Testimonials:    defaults.Testimonials,
		PricingDisplay:  defaults.PricingDisplay,
		Theme:           defaults.Theme,
		SectionsEnabled: doc.SectionsEnabled,
		OverrideFields:  map[string]string{},
	}
	if len(cfg.SectionsEnabled) == 0 {
		cfg.SectionsEnabled = models.CanonicalSectionOrder()
	}
	return cfg
}

// fallbackDescriptionLimit caps how much of the coach's own prompt is
// reused as the about description.
const fallbackDescriptionLimit = 200

// fallbackDescription is used when the prompt is too short to reuse.
const fallbackDescription = "Experience transformation through proven coaching methodologies tailored to your unique goals."

// Fallback builds the deterministic configuration used when no external
// API is available. Same (prompt, niche) in, same document out: the
// about description is the first 200 characters of the prompt when the
// prompt exceeds 50 characters, otherwise a fixed sentence; a recognized
// niche overrides only the hero section from the static table.
func Fallback(prompt string, niche Niche) models.LandingPageConfig {
	description := fallbackDescription
	if len(prompt) > 50 {
		description = prompt
		// Truncate on rune boundaries so multibyte prompts never leave
		// an invalid UTF-8 tail in the description.
		if runes := []rune(description); len(runes) > fallbackDescriptionLimit {
			description = string(runes[:fallbackDescriptionLimit])
		}
	}

	rotation := true
	cfg := models.LandingPageConfig{
		Hero: &models.HeroConfig{
			Headline:         "Transform Your Life",
			Subheadline:      "Elite coaching for high performers ready to level up",
			CTAPrimaryText:   "Get Started",
			CTASecondaryText: "Learn More",
			BackgroundStyle:  "gradient",
		},
		About: &models.AboutConfig{
			Title:       "About Your Coach",
			Description: description,
			BulletPoints: []string{
				"Personalized coaching plans",
				"Weekly 1:1 sessions",
				"Progress tracking and accountability",
			},
			ImagePlacement: models.ImageRight,
		},
		HowItWorks: &models.HowItWorksConfig{
			Title: "How It Works",
			Steps: []models.HowItWorksStep{
				{Title: "Book Your Call", Description: "Schedule a discovery session to discuss your goals and challenges", IconName: "Calendar"},
				{Title: "Get Your Plan", Description: "Receive a personalized coaching roadmap designed for you", IconName: "BookOpen"},
				{Title: "Transform", Description: "Execute with guidance, support, and accountability", IconName: "TrendingUp"},
			},
		},
		Testimonials: &models.TestimonialsConfig{
			Layout:          models.LayoutSlider,
			MaxVisible:      3,
			RotationEnabled: &rotation,
		},
		PricingDisplay: &models.PricingConfig{
			LayoutStyle:    models.PricingCards,
			ShowComparison: false,
		},
		Theme: &models.ThemeConfig{
			PrimaryColor:   "#3B82F6",
			SecondaryColor: "#8B5CF6",
			FontPairing:    "inter",
			ButtonStyle:    "rounded",
		},
		SectionsEnabled: models.CanonicalSectionOrder(),
		OverrideFields:  map[string]string{},
	}

	if hero, ok := nicheHeroes[niche]; ok {
		h := hero
		cfg.Hero = &h
	}

	return cfg
}
