// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package landing

import "sync"

// DefaultRotationInterval is the presentation timer period, in
// milliseconds, a slider advances on.
const DefaultRotationInterval = 5000

// Rotator tracks which testimonial a slider currently displays. The
// advance is pure modular arithmetic so the index sequence is exact and
// deterministic: for three items, 0, 1, 2, 0, 1, 2. Safe for concurrent
// use.
type Rotator struct {
	mu    sync.Mutex
	index int
	count int
}

// NewRotator creates a rotator over count items, starting at index 0.
func NewRotator(count int) *Rotator {
	if count < 0 {
		count = 0
	}
	return &Rotator{count: count}
}

// Index returns the currently displayed index.
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Advance moves to the next item, wrapping modulo the item count, and
// returns the new index. With fewer than two items it stays at 0.
func (r *Rotator) Advance() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count < 2 {
		return r.index
	}
	r.index = (r.index + 1) % r.count
	return r.index
}

// Set jumps to a specific index, as when a viewer clicks a dot control.
// Out-of-range values are ignored.
func (r *Rotator) Set(i int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i >= 0 && i < r.count {
		r.index = i
	}
}

// ShouldRotate reports whether a section's slider actually advances:
// slider layout, rotation enabled, and more than one testimonial.
func ShouldRotate(s *TestimonialsSection) bool {
	return s != nil && s.Layout == "slider" && s.RotationEnabled && len(s.Items) > 1
}
