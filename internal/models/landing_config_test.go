// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"reflect"
	"testing"
)

func TestMergeSectionGranular(t *testing.T) {
	defaults := DefaultLandingPageConfig()
	stored := LandingPageConfig{
		Hero: &HeroConfig{Headline: "Custom Headline"},
	}

	merged := Merge(stored, defaults)

	if merged.Hero.Headline != "Custom Headline" {
		t.Errorf("hero headline = %q, want the stored value", merged.Hero.Headline)
	}
	// A stored section replaces the whole default section: missing keys
	// inside it stay zero rather than being backfilled.
	if merged.Hero.Subheadline != "" {
		t.Errorf("hero subheadline = %q, want empty (no per-field backfill)", merged.Hero.Subheadline)
	}
	if merged.Hero.CTAPrimaryText != "" {
		t.Errorf("hero cta = %q, want empty (no per-field backfill)", merged.Hero.CTAPrimaryText)
	}

	// Sections absent from stored fall back to the full default section.
	if !reflect.DeepEqual(merged.About, defaults.About) {
		t.Error("about section should be the default when absent from stored")
	}
	if !reflect.DeepEqual(merged.Theme, defaults.Theme) {
		t.Error("theme should be the default when absent from stored")
	}
}

func TestMergeSectionsEnabled(t *testing.T) {
	defaults := DefaultLandingPageConfig()

	stored := LandingPageConfig{SectionsEnabled: []string{SectionHero, SectionCTA}}
	merged := Merge(stored, defaults)
	if !reflect.DeepEqual(merged.SectionsEnabled, []string{SectionHero, SectionCTA}) {
		t.Errorf("sections_enabled = %v, want the stored order", merged.SectionsEnabled)
	}

	merged = Merge(LandingPageConfig{}, defaults)
	if !reflect.DeepEqual(merged.SectionsEnabled, CanonicalSectionOrder()) {
		t.Errorf("absent sections_enabled = %v, want canonical order", merged.SectionsEnabled)
	}

	// An explicitly stored empty list hides every section; it must not
	// fall back to the defaults the way an absent list does.
	merged = Merge(LandingPageConfig{SectionsEnabled: []string{}}, defaults)
	if merged.SectionsEnabled == nil || len(merged.SectionsEnabled) != 0 {
		t.Errorf("stored empty sections_enabled = %v, want empty", merged.SectionsEnabled)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	defaults := DefaultLandingPageConfig()
	stored := LandingPageConfig{Hero: &HeroConfig{Headline: "X"}}

	Merge(stored, defaults)

	if defaults.Hero.Headline != "Transform Your Life" {
		t.Error("Merge mutated the defaults document")
	}
	if stored.About != nil {
		t.Error("Merge mutated the stored document")
	}
}

func TestRotates(t *testing.T) {
	var cfg TestimonialsConfig
	if !cfg.Rotates() {
		t.Error("absent rotation_enabled should mean enabled")
	}

	off := false
	cfg.RotationEnabled = &off
	if cfg.Rotates() {
		t.Error("explicit rotation_enabled=false should disable rotation")
	}

	on := true
	cfg.RotationEnabled = &on
	if !cfg.Rotates() {
		t.Error("explicit rotation_enabled=true should enable rotation")
	}
}

func TestDefaultLandingPageConfig(t *testing.T) {
	cfg := DefaultLandingPageConfig()

	if cfg.Hero.CTAPrimaryText != "Start Your Journey" {
		t.Errorf("default hero cta = %q", cfg.Hero.CTAPrimaryText)
	}
	if cfg.Theme.PrimaryColor != "#3B82F6" || cfg.Theme.SecondaryColor != "#8B5CF6" {
		t.Errorf("default theme colors = %s/%s", cfg.Theme.PrimaryColor, cfg.Theme.SecondaryColor)
	}
	if len(cfg.HowItWorks.Steps) != 3 {
		t.Errorf("default how_it_works has %d steps, want 3", len(cfg.HowItWorks.Steps))
	}
	if !cfg.Testimonials.Rotates() {
		t.Error("default testimonials should rotate")
	}
	if !reflect.DeepEqual(cfg.SectionsEnabled, CanonicalSectionOrder()) {
		t.Errorf("default sections_enabled = %v", cfg.SectionsEnabled)
	}
}

func TestKnownSection(t *testing.T) {
	for _, key := range CanonicalSectionOrder() {
		if !KnownSection(key) {
			t.Errorf("KnownSection(%q) = false", key)
		}
	}
	for _, key := range []string{"", "video", "Hero", "faq"} {
		if KnownSection(key) {
			t.Errorf("KnownSection(%q) = true", key)
		}
	}
}
