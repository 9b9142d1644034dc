// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PricingTier is a coach's offer package. Only active tiers are shown
// publicly; OrderIndex controls display order. At most one tier per
// workspace carries IsFeatured; the store enforces the singleton when
// a tier is marked featured.
type PricingTier struct {
	ID            uuid.UUID `json:"id"`
	WorkspaceID   uuid.UUID `json:"workspace_id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	DurationWeeks int       `json:"duration_weeks"`
	Features      []string  `json:"features"`
	IsFeatured    bool      `json:"is_featured"`
	OrderIndex    int       `json:"order_index"`
	StripePriceID *string   `json:"stripe_price_id,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// Testimonial is a client quote shown on the landing page. Only approved
// testimonials render publicly; coaches moderate the rest in the admin.
type Testimonial struct {
	ID              uuid.UUID  `json:"id"`
	WorkspaceID     uuid.UUID  `json:"workspace_id"`
	ClientID        *uuid.UUID `json:"client_id,omitempty"`
	ClientName      string     `json:"client_name"`
	ClientTitle     string     `json:"client_title"`
	TestimonialText string     `json:"testimonial_text"`
	Rating          int        `json:"rating"`
	ImageURL        *string    `json:"image_url,omitempty"`
	IsFeatured      bool       `json:"is_featured"`
	IsApproved      bool       `json:"is_approved"`
	CreatedAt       time.Time  `json:"created_at"`
}
