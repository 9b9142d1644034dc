// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives URL-safe subdomain slugs from free-text business
// names.
package slug

import (
	"math/rand"
	"regexp"
	"strings"
)

// maxLen bounds a generated slug; DNS labels stay well under 63 bytes
// even after the random suffix is appended.
const maxLen = 30

// nonSlug matches every maximal run of characters outside [a-z0-9].
var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Make creates a URL-safe slug from the given name. It is total and
// deterministic: lowercase, collapse non-alphanumeric runs to a single
// hyphen, trim hyphens, truncate to 30 characters. Empty input yields
// an empty slug. Example: "Acme Coaching!" → "acme-coaching".
func Make(name string) string {
	s := strings.ToLower(name)
	s = nonSlug.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxLen {
		s = strings.TrimRight(s[:maxLen], "-")
	}
	return s
}

// WithSuffix returns Make(name) with a random 4-character suffix
// appended. Provisioning uses this instead of trusting an availability
// check: concurrent signups for the same name get distinct slugs, and
// the database unique constraint remains the final arbiter.
func WithSuffix(name string) string {
	b := make([]byte, 4)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	base := Make(name)
	if base == "" {
		return string(b)
	}
	return base + "-" + string(b)
}
