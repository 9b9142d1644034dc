// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package landing

import (
	"log/slog"

	"blueprintos/internal/markdown"
	"blueprintos/internal/models"
)

// Hardcoded last-resort copy. These sit at the bottom of the three-level
// fallback chain: explicit section config → workspace branding field →
// these constants.
const (
	defaultHeroHeadline     = "Transform Your Life"
	defaultHeroSubheadline  = "Elite coaching for high performers ready to level up"
	defaultHeroCTAPrimary   = "Get Started"
	defaultHeroCTASecondary = "Learn More"
	defaultCTASubtext       = "Your transformation starts with a single decision. Get started today."
	ctaHeadline             = "Ready to Transform?"
	ctaButtonText           = "Start Your Journey"
)

// Page is the fully composed landing page: the resolved theme plus the
// ordered, visibility-filtered sections. Theme travels as data with the
// page; nothing mutates a shared document root.
type Page struct {
	WorkspaceID   string    `json:"workspace_id"`
	WorkspaceName string    `json:"workspace_name"`
	Theme         Theme     `json:"theme"`
	Sections      []Section `json:"sections"`
}

// Theme is the resolved page theme: configuration colors over workspace
// branding colors.
type Theme struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontPairing    string `json:"font_pairing"`
	ButtonStyle    string `json:"button_style"`
}

// Section is one renderable page section. Kind names the section; the
// matching payload pointer is set, the rest are nil.
type Section struct {
	Kind         string               `json:"kind"`
	Hero         *HeroSection         `json:"hero,omitempty"`
	About        *AboutSection        `json:"about,omitempty"`
	HowItWorks   *HowItWorksSection   `json:"how_it_works,omitempty"`
	Testimonials *TestimonialsSection `json:"testimonials,omitempty"`
	Pricing      *PricingSection      `json:"pricing,omitempty"`
	CTA          *CTASection          `json:"cta,omitempty"`
}

// HeroSection is the composed hero view model.
type HeroSection struct {
	WorkspaceName    string  `json:"workspace_name"`
	LogoURL          *string `json:"logo_url,omitempty"`
	Headline         string  `json:"headline"`
	Subheadline      string  `json:"subheadline"`
	CTAPrimaryText   string  `json:"cta_primary_text"`
	CTASecondaryText string  `json:"cta_secondary_text"`
	BackgroundStyle  string  `json:"background_style"`
	HeroImageURL     string  `json:"hero_image_url,omitempty"`
}

// AboutSection is the composed about view model. DescriptionHTML is the
// markdown-rendered description.
type AboutSection struct {
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	DescriptionHTML string                `json:"description_html"`
	BulletPoints    []string              `json:"bullet_points"`
	ImagePlacement  models.ImagePlacement `json:"image_placement"`
}

// HowItWorksSection is the composed process-overview view model.
type HowItWorksSection struct {
	Title string                  `json:"title"`
	Steps []models.HowItWorksStep `json:"steps"`
}

// TestimonialsSection carries the approved testimonials plus layout.
type TestimonialsSection struct {
	Layout          models.TestimonialLayout `json:"layout"`
	MaxVisible      int                      `json:"max_visible"`
	RotationEnabled bool                     `json:"rotation_enabled"`
	Items           []models.Testimonial     `json:"items"`
}

// PricingSection carries the active tiers plus layout.
type PricingSection struct {
	LayoutStyle    models.PricingLayout `json:"layout_style"`
	ShowComparison bool                 `json:"show_comparison"`
	HighlightTier  string               `json:"highlight_tier,omitempty"`
	Tiers          []models.PricingTier `json:"tiers"`
}

// CTASection is the composed closing call-to-action.
type CTASection struct {
	Headline   string `json:"headline"`
	Subtext    string `json:"subtext"`
	ButtonText string `json:"button_text"`
}

// Compose builds the ordered section list for a workspace's public page.
// The stored configuration is merged section-granularly with the built-in
// defaults, then sections_enabled is walked in its stored order:
// unrecognized keys are skipped, testimonials and pricing additionally
// require non-empty live content, everything else renders whenever listed.
func Compose(ws *models.Workspace, tiers []models.PricingTier, testimonials []models.Testimonial) Page {
	cfg := models.Merge(ws.LandingPageConfig, models.DefaultLandingPageConfig())

	page := Page{
		WorkspaceID:   ws.ID.String(),
		WorkspaceName: ws.Name,
		Theme:         resolveTheme(ws, cfg.Theme),
	}

	for _, key := range cfg.SectionsEnabled {
		if !models.KnownSection(key) {
			continue
		}
		switch key {
		case models.SectionHero:
			page.Sections = append(page.Sections, Section{
				Kind: key,
				Hero: composeHero(ws, cfg.Hero),
			})
		case models.SectionAbout:
			page.Sections = append(page.Sections, Section{
				Kind:  key,
				About: composeAbout(ws, cfg.About),
			})
		case models.SectionHowItWorks:
			page.Sections = append(page.Sections, Section{
				Kind: key,
				HowItWorks: &HowItWorksSection{
					Title: cfg.HowItWorks.Title,
					Steps: cfg.HowItWorks.Steps,
				},
			})
		case models.SectionTestimonials:
			if len(testimonials) == 0 {
				continue
			}
			page.Sections = append(page.Sections, Section{
				Kind: key,
				Testimonials: &TestimonialsSection{
					Layout:          cfg.Testimonials.Layout,
					MaxVisible:      maxVisible(cfg.Testimonials.MaxVisible),
					RotationEnabled: cfg.Testimonials.Rotates(),
					Items:           testimonials,
				},
			})
		case models.SectionPricing:
			if len(tiers) == 0 {
				continue
			}
			page.Sections = append(page.Sections, Section{
				Kind: key,
				Pricing: &PricingSection{
					LayoutStyle:    cfg.PricingDisplay.LayoutStyle,
					ShowComparison: cfg.PricingDisplay.ShowComparison,
					HighlightTier:  cfg.PricingDisplay.HighlightTier,
					Tiers:          tiers,
				},
			})
		case models.SectionCTA:
			page.Sections = append(page.Sections, Section{
				Kind: key,
				CTA:  composeCTA(ws),
			})
		}
	}

	return page
}

// composeHero applies the hero fallback chains. Subheadline falls back
// to the workspace tagline, then to the hardcoded default; headline and
// the two CTA labels have no branding tier, so a partial stored hero
// section still renders with the hardcoded copy rather than blanks.
func composeHero(ws *models.Workspace, hero *models.HeroConfig) *HeroSection {
	headline := hero.Headline
	if headline == "" {
		headline = defaultHeroHeadline
	}

	subheadline := hero.Subheadline
	if subheadline == "" {
		subheadline = ws.Tagline
	}
	if subheadline == "" {
		subheadline = defaultHeroSubheadline
	}

	ctaPrimary := hero.CTAPrimaryText
	if ctaPrimary == "" {
		ctaPrimary = defaultHeroCTAPrimary
	}
	ctaSecondary := hero.CTASecondaryText
	if ctaSecondary == "" {
		ctaSecondary = defaultHeroCTASecondary
	}

	return &HeroSection{
		WorkspaceName:    ws.Name,
		LogoURL:          ws.LogoURL,
		Headline:         headline,
		Subheadline:      subheadline,
		CTAPrimaryText:   ctaPrimary,
		CTASecondaryText: ctaSecondary,
		BackgroundStyle:  hero.BackgroundStyle,
		HeroImageURL:     hero.HeroImageURL,
	}
}

// composeAbout applies the about fallback chain: config description,
// then the workspace about text.
func composeAbout(ws *models.Workspace, about *models.AboutConfig) *AboutSection {
	description := about.Description
	if description == "" {
		description = ws.AboutText
	}

	html, err := markdown.ToHTML(description)
	if err != nil {
		slog.Warn("about description markdown render failed", "error", err)
		html = description
	}

	return &AboutSection{
		Title:           about.Title,
		Description:     description,
		DescriptionHTML: html,
		BulletPoints:    about.BulletPoints,
		ImagePlacement:  about.ImagePlacement,
	}
}

// composeCTA builds the closing section. Subtext falls back from the
// workspace tagline to the hardcoded default.
func composeCTA(ws *models.Workspace) *CTASection {
	subtext := ws.Tagline
	if subtext == "" {
		subtext = defaultCTASubtext
	}
	return &CTASection{
		Headline:   ctaHeadline,
		Subtext:    subtext,
		ButtonText: ctaButtonText,
	}
}

// resolveTheme merges configuration theme values over workspace branding.
func resolveTheme(ws *models.Workspace, theme *models.ThemeConfig) Theme {
	resolved := Theme{
		PrimaryColor:   ws.PrimaryColor,
		SecondaryColor: ws.SecondaryColor,
	}
	if theme != nil {
		if theme.PrimaryColor != "" {
			resolved.PrimaryColor = theme.PrimaryColor
		}
		if theme.SecondaryColor != "" {
			resolved.SecondaryColor = theme.SecondaryColor
		}
		resolved.FontPairing = theme.FontPairing
		resolved.ButtonStyle = theme.ButtonStyle
	}
	return resolved
}

func maxVisible(n int) int {
	if n < 1 {
		return 3
	}
	return n
}
