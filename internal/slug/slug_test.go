// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import (
	"regexp"
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Acme Coaching", "acme-coaching"},
		{"punctuation collapses", "Acme  &  Co. Coaching!", "acme-co-coaching"},
		{"uppercase", "FITLIFE", "fitlife"},
		{"leading trailing junk", "  --Peak Performance--  ", "peak-performance"},
		{"unicode stripped", "café côté", "caf-c-t"},
		{"digits kept", "Coach 360", "coach-360"},
		{"empty", "", ""},
		{"only junk", "!!! ???", ""},
		{"hyphen runs collapse", "a---b___c", "a-b-c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.input); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMakeTruncates(t *testing.T) {
	long := strings.Repeat("abcde ", 20)
	got := Make(long)
	if len(got) > 30 {
		t.Errorf("Make produced %d characters, want at most 30", len(got))
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("Make left a trailing hyphen after truncation: %q", got)
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{"Acme Coaching", "FITLIFE 360", "a---b"}
	for _, in := range inputs {
		once := Make(in)
		if twice := Make(once); twice != once {
			t.Errorf("Make(Make(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestWithSuffix(t *testing.T) {
	pattern := regexp.MustCompile(`^acme-coaching-[a-z0-9]{4}$`)
	got := WithSuffix("Acme Coaching")
	if !pattern.MatchString(got) {
		t.Errorf("WithSuffix = %q, want to match %s", got, pattern)
	}

	// Empty bases still get a usable slug.
	bare := WithSuffix("!!!")
	if !regexp.MustCompile(`^[a-z0-9]{4}$`).MatchString(bare) {
		t.Errorf("WithSuffix on empty base = %q, want 4 random characters", bare)
	}
}

func TestWithSuffixDistinct(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[WithSuffix("Acme Coaching")] = true
	}
	if len(seen) < 2 {
		t.Error("WithSuffix produced identical slugs across 20 calls")
	}
}
