// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Section keys recognized by the renderer. sections_enabled entries
// outside this set are ignored.
const (
	SectionHero         = "hero"
	SectionAbout        = "about"
	SectionHowItWorks   = "how_it_works"
	SectionTestimonials = "testimonials"
	SectionPricing      = "pricing"
	SectionCTA          = "cta"
)

// CanonicalSectionOrder is the default sections_enabled value when the
// stored document omits the list.
func CanonicalSectionOrder() []string {
	return []string{
		SectionHero, SectionAbout, SectionHowItWorks,
		SectionTestimonials, SectionPricing, SectionCTA,
	}
}

// KnownSection reports whether key belongs to the fixed section set.
func KnownSection(key string) bool {
	switch key {
	case SectionHero, SectionAbout, SectionHowItWorks,
		SectionTestimonials, SectionPricing, SectionCTA:
		return true
	}
	return false
}

// ImagePlacement positions the about section's image.
type ImagePlacement string

const (
	ImageLeft  ImagePlacement = "left"
	ImageRight ImagePlacement = "right"
	ImageNone  ImagePlacement = "none"
)

// TestimonialLayout selects how approved testimonials are displayed.
type TestimonialLayout string

const (
	LayoutSlider TestimonialLayout = "slider"
	LayoutGrid   TestimonialLayout = "grid"
	LayoutSingle TestimonialLayout = "single"
)

// PricingLayout selects the pricing section's presentation.
type PricingLayout string

const (
	PricingCards  PricingLayout = "cards"
	PricingTable  PricingLayout = "table"
	PricingSimple PricingLayout = "simple"
)

// LandingPageConfig is the versionless document stored on the workspace
// row. Every section is optional: a nil section means "use the built-in
// default for that section", while omission from SectionsEnabled is what
// actually hides a section. Stored as JSONB; evolution is additive-only.
type LandingPageConfig struct {
	Hero            *HeroConfig         `json:"hero,omitempty"`
	About           *AboutConfig        `json:"about,omitempty"`
	HowItWorks      *HowItWorksConfig   `json:"how_it_works,omitempty"`
	Testimonials    *TestimonialsConfig `json:"testimonials,omitempty"`
	PricingDisplay  *PricingConfig      `json:"pricing_display,omitempty"`
	Theme           *ThemeConfig        `json:"theme,omitempty"`
	SectionsEnabled []string            `json:"sections_enabled"`
	OverrideFields  map[string]string   `json:"override_fields,omitempty"`
}

// HeroConfig configures the top-of-page hero section.
type HeroConfig struct {
	Headline         string `json:"headline"`
	Subheadline      string `json:"subheadline"`
	CTAPrimaryText   string `json:"cta_primary_text"`
	CTASecondaryText string `json:"cta_secondary_text"`
	BackgroundStyle  string `json:"background_style"`
	HeroImageURL     string `json:"hero_image_url,omitempty"`
}

// AboutConfig configures the coach bio section.
type AboutConfig struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	BulletPoints   []string       `json:"bullet_points"`
	ImagePlacement ImagePlacement `json:"image_placement"`
}

// HowItWorksStep is a single numbered step in the how-it-works section.
type HowItWorksStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IconName    string `json:"icon_name"`
}

// HowItWorksConfig configures the process-overview section.
type HowItWorksConfig struct {
	Title string           `json:"title"`
	Steps []HowItWorksStep `json:"steps"`
}

// TestimonialsConfig configures testimonial presentation.
// RotationEnabled is a pointer so that "absent" defaults to true.
type TestimonialsConfig struct {
	Layout          TestimonialLayout `json:"layout"`
	MaxVisible      int               `json:"max_visible"`
	RotationEnabled *bool             `json:"rotation_enabled,omitempty"`
}

// Rotates reports whether slider rotation is on. Absent means enabled.
func (c *TestimonialsConfig) Rotates() bool {
	return c.RotationEnabled == nil || *c.RotationEnabled
}

// PricingConfig configures the pricing section.
type PricingConfig struct {
	LayoutStyle    PricingLayout `json:"layout_style"`
	ShowComparison bool          `json:"show_comparison"`
	HighlightTier  string        `json:"highlight_tier,omitempty"`
}

// ThemeConfig carries the page theme as data. Theme is never applied as a
// global side effect; the composer returns it with the page and the
// presentation layer threads it through its render tree.
type ThemeConfig struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontPairing    string `json:"font_pairing"`
	ButtonStyle    string `json:"button_style"`
}

// Merge resolves the effective configuration used at render time.
// Resolution is section-granular: a section present in stored replaces the
// whole default section, even if only partially populated; missing keys
// inside a stored section are NOT backfilled from defaults. A section
// absent from stored falls back to the full default section.
func Merge(stored, defaults LandingPageConfig) LandingPageConfig {
	out := stored

	if out.Hero == nil {
		out.Hero = defaults.Hero
	}
	if out.About == nil {
		out.About = defaults.About
	}
	if out.HowItWorks == nil {
		out.HowItWorks = defaults.HowItWorks
	}
	if out.Testimonials == nil {
		out.Testimonials = defaults.Testimonials
	}
	if out.PricingDisplay == nil {
		out.PricingDisplay = defaults.PricingDisplay
	}
	if out.Theme == nil {
		out.Theme = defaults.Theme
	}
	// Only an absent list falls back to the defaults. An explicitly
	// stored empty list means the coach hid every section.
	if out.SectionsEnabled == nil {
		out.SectionsEnabled = defaults.SectionsEnabled
	}
	return out
}

// DefaultLandingPageConfig returns the complete built-in document every
// workspace starts with. Generated configurations overwrite sections of
// this; the renderer falls back to it section by section.
func DefaultLandingPageConfig() LandingPageConfig {
	rotation := true
	return LandingPageConfig{
		Hero: &HeroConfig{
			Headline:         "Transform Your Life",
			Subheadline:      "Elite coaching for high performers ready to level up",
			CTAPrimaryText:   "Start Your Journey",
			CTASecondaryText: "Learn More",
			BackgroundStyle:  "gradient",
		},
		About: &AboutConfig{
			Title:       "About Your Coach",
			Description: "Experience transformation through proven coaching methodologies.",
			BulletPoints: []string{
				"Personalized coaching plans",
				"Weekly 1:1 sessions",
				"Progress tracking and accountability",
			},
			ImagePlacement: ImageRight,
		},
		HowItWorks: &HowItWorksConfig{
			Title: "How It Works",
			Steps: []HowItWorksStep{
				{Title: "Book Your Call", Description: "Schedule a discovery session to discuss your goals", IconName: "Calendar"},
				{Title: "Get Your Plan", Description: "Receive a personalized coaching roadmap", IconName: "BookOpen"},
				{Title: "Transform", Description: "Execute with guidance and accountability", IconName: "TrendingUp"},
			},
		},
		Testimonials: &TestimonialsConfig{
			Layout:          LayoutSlider,
			MaxVisible:      3,
			RotationEnabled: &rotation,
		},
		PricingDisplay: &PricingConfig{
			LayoutStyle:    PricingCards,
			ShowComparison: false,
		},
		Theme: &ThemeConfig{
			PrimaryColor:   "#3B82F6",
			SecondaryColor: "#8B5CF6",
			FontPairing:    "inter",
			ButtonStyle:    "rounded",
		},
		SectionsEnabled: CanonicalSectionOrder(),
	}
}
