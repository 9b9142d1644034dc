// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation limits for branding and content fields.
const (
	maxWorkspaceNameLen = 200
	maxTaglineLen       = 300
	maxAboutTextLen     = 10_000
	maxTierNameLen      = 200
	maxFeatureLen       = 300
	maxTestimonialLen   = 5_000
	maxClientNameLen    = 200
	maxPromptLen        = 2_000
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validateBranding checks the coach-editable branding fields and
// returns the first error found, or "".
func validateBranding(name, tagline, aboutText *string, primaryColor, secondaryColor *string) string {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return "Workspace name cannot be empty."
		}
		if utf8.RuneCountInString(trimmed) > maxWorkspaceNameLen {
			return "Workspace name is too long (max 200 characters)."
		}
	}
	if tagline != nil && utf8.RuneCountInString(*tagline) > maxTaglineLen {
		return "Tagline is too long (max 300 characters)."
	}
	if aboutText != nil && utf8.RuneCountInString(*aboutText) > maxAboutTextLen {
		return "About text is too long (max 10,000 characters)."
	}
	if primaryColor != nil && !hexColor.MatchString(*primaryColor) {
		return "Primary color must be a hex value like #3B82F6."
	}
	if secondaryColor != nil && !hexColor.MatchString(*secondaryColor) {
		return "Secondary color must be a hex value like #8B5CF6."
	}
	return ""
}

// validateTier checks pricing tier inputs and returns the first error found.
func validateTier(name string, price float64, durationWeeks int, features []string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Tier name is required."
	}
	if utf8.RuneCountInString(name) > maxTierNameLen {
		return "Tier name is too long (max 200 characters)."
	}
	if price < 0 {
		return "Price cannot be negative."
	}
	if durationWeeks < 1 {
		return "Duration must be at least one week."
	}
	for _, f := range features {
		if utf8.RuneCountInString(f) > maxFeatureLen {
			return "Feature entries are too long (max 300 characters)."
		}
	}
	return ""
}

// validateGeneratePrompt checks the landing page generation prompt.
func validateGeneratePrompt(prompt string) string {
	if strings.TrimSpace(prompt) == "" {
		return "Describe your coaching business so we can generate your page."
	}
	if utf8.RuneCountInString(prompt) > maxPromptLen {
		return "Prompt is too long (max 2,000 characters)."
	}
	return ""
}
