// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package landing implements the tenant landing page core: the content
// generation engine (external LLM call with a deterministic fallback),
// the section composition pipeline, and the testimonial rotator.
package landing

import "blueprintos/internal/models"

// Niche is a recognized coaching category. An unrecognized niche is not
// an error; the generation fallback simply keeps the generic hero.
type Niche string

const (
	NicheFitness       Niche = "fitness"
	NicheBusiness      Niche = "business"
	NicheMindset       Niche = "mindset"
	NicheCareer        Niche = "career"
	NicheRelationships Niche = "relationships"
	NicheTrauma        Niche = "trauma"
	NicheSpirituality  Niche = "spirituality"
	NicheLife          Niche = "life"
	NicheExecutive     Niche = "executive"
	NicheHealth        Niche = "health"
)

// PromptTemplates offers a fill-in starting point per niche for the
// landing page builder UI.
var PromptTemplates = map[Niche]string{
	NicheFitness:       "I help [target audience] achieve [fitness goals] through [training method]",
	NicheBusiness:      "I help [business owners/entrepreneurs] grow [revenue/scale] through [strategy]",
	NicheMindset:       "I help [professionals/individuals] overcome [limiting beliefs] through [transformation approach]",
	NicheCareer:        "I help [professionals] transition to [career goals] through [method]",
	NicheRelationships: "I help [couples/individuals] build [relationship outcome] through [coaching style]",
	NicheTrauma:        "I help [trauma survivors] heal from [specific trauma] through [healing modality]",
	NicheSpirituality:  "I help [seekers] connect with [spiritual goal] through [practice]",
	NicheLife:          "I help [demographic] navigate [life transition] through [coaching approach]",
	NicheExecutive:     "I help [executives/leaders] achieve [leadership goal] through [executive coaching method]",
	NicheHealth:        "I help [health-conscious individuals] improve [health outcome] through [wellness approach]",
}

// Tones accepted by the generation prompt builder.
var Tones = []string{
	"professional", "motivational", "conversational",
	"clinical", "spiritual", "empowering",
}

// nicheHeroes overrides only the hero section in the deterministic
// fallback. One entry per recognized niche; the table is fixed and the
// copy is part of the fallback contract, not placeholder text.
var nicheHeroes = map[Niche]models.HeroConfig{
	NicheFitness: {
		Headline:         "Transform Your Fitness Journey",
		Subheadline:      "Achieve your goals with personalized training and expert guidance",
		CTAPrimaryText:   "Start Training",
		CTASecondaryText: "View Programs",
		BackgroundStyle:  "gradient",
	},
	NicheBusiness: {
		Headline:         "Scale Your Business with Confidence",
		Subheadline:      "Strategic coaching for entrepreneurs ready to break through plateaus",
		CTAPrimaryText:   "Book Strategy Call",
		CTASecondaryText: "Learn More",
		BackgroundStyle:  "gradient",
	},
	NicheMindset: {
		Headline:         "Unlock Your Limitless Potential",
		Subheadline:      "Transform limiting beliefs into unstoppable momentum",
		CTAPrimaryText:   "Begin Transformation",
		CTASecondaryText: "How It Works",
		BackgroundStyle:  "gradient",
	},
	NicheCareer: {
		Headline:         "Navigate Your Career Transition",
		Subheadline:      "Expert guidance to land your dream role and advance your career",
		CTAPrimaryText:   "Start Your Journey",
		CTASecondaryText: "View Success Stories",
		BackgroundStyle:  "gradient",
	},
	NicheRelationships: {
		Headline:         "Build Deeper Connections",
		Subheadline:      "Transform your relationships through communication and understanding",
		CTAPrimaryText:   "Get Started",
		CTASecondaryText: "Learn Our Method",
		BackgroundStyle:  "gradient",
	},
	NicheTrauma: {
		Headline:         "Healing Is Possible",
		Subheadline:      "Compassionate, trauma-informed support for your healing journey",
		CTAPrimaryText:   "Begin Healing",
		CTASecondaryText: "About Our Approach",
		BackgroundStyle:  "gradient",
	},
	NicheSpirituality: {
		Headline:         "Awaken Your Spiritual Path",
		Subheadline:      "Discover deeper meaning and connection in your life",
		CTAPrimaryText:   "Start Your Practice",
		CTASecondaryText: "Explore",
		BackgroundStyle:  "gradient",
	},
	NicheLife: {
		Headline:         "Navigate Life's Transitions",
		Subheadline:      "Expert coaching for the moments that matter most",
		CTAPrimaryText:   "Book Your Session",
		CTASecondaryText: "Learn More",
		BackgroundStyle:  "gradient",
	},
	NicheExecutive: {
		Headline:         "Lead with Impact",
		Subheadline:      "Executive coaching for leaders driving organizational transformation",
		CTAPrimaryText:   "Schedule Consultation",
		CTASecondaryText: "Our Approach",
		BackgroundStyle:  "gradient",
	},
	NicheHealth: {
		Headline:         "Optimize Your Wellbeing",
		Subheadline:      "Holistic health coaching for sustainable lifestyle transformation",
		CTAPrimaryText:   "Start Your Plan",
		CTASecondaryText: "View Programs",
		BackgroundStyle:  "gradient",
	},
}

// KnownNiche reports whether n is one of the ten recognized niches.
func KnownNiche(n Niche) bool {
	_, ok := nicheHeroes[n]
	return ok
}
