// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"blueprintos/internal/landing"
	"blueprintos/internal/middleware"
	"blueprintos/internal/models"
	"blueprintos/internal/slug"
	"blueprintos/internal/tenant"
)

// TierLister lists the live pricing tiers shown on a landing page.
type TierLister interface {
	ListActiveByWorkspace(workspaceID uuid.UUID) ([]models.PricingTier, error)
}

// TestimonialLister lists the approved testimonials shown on a landing page.
type TestimonialLister interface {
	ListApprovedByWorkspace(workspaceID uuid.UUID) ([]models.Testimonial, error)
}

// SubdomainChecker answers advisory availability queries.
type SubdomainChecker interface {
	SubdomainAvailable(subdomain string) (bool, error)
}

// Public groups the tenant-facing handlers: the composed landing page
// document and the subdomain availability check used by the signup form.
type Public struct {
	tiers        TierLister
	testimonials TestimonialLister
	checker      SubdomainChecker
}

// NewPublic creates the public handler group.
func NewPublic(tiers TierLister, testimonials TestimonialLister, checker SubdomainChecker) *Public {
	return &Public{tiers: tiers, testimonials: testimonials, checker: checker}
}

// Landing returns the composed landing page document for the workspace
// the request's hostname resolved to. Unknown hosts get a 404 so the
// edge can serve the generic marketing experience instead.
func (p *Public) Landing(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())
	if ws == nil {
		writeError(w, http.StatusNotFound, "No workspace for this domain.")
		return
	}

	tiers, err := p.tiers.ListActiveByWorkspace(ws.ID)
	if err != nil {
		slog.Error("list pricing tiers failed", "workspace", ws.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load landing page.")
		return
	}

	testimonials, err := p.testimonials.ListApprovedByWorkspace(ws.ID)
	if err != nil {
		slog.Error("list testimonials failed", "workspace", ws.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load landing page.")
		return
	}

	page := landing.Compose(ws, tiers, testimonials)
	writeJSON(w, http.StatusOK, page)
}

// subdomainCheckResponse is the availability answer for the signup form.
// The result is advisory: allocation still races, and the unique index
// plus suffix retry settle the final outcome.
type subdomainCheckResponse struct {
	Subdomain string `json:"subdomain"`
	Available bool   `json:"available"`
}

// SubdomainCheck slugifies the requested name and reports whether the
// resulting subdomain is currently free.
func (p *Public) SubdomainCheck(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeError(w, http.StatusBadRequest, "Query parameter 'name' is required.")
		return
	}

	sub := slug.Make(name)
	if sub == "" {
		writeError(w, http.StatusBadRequest, "Name contains no usable characters.")
		return
	}

	if tenant.Reserved(sub) {
		writeJSON(w, http.StatusOK, subdomainCheckResponse{Subdomain: sub, Available: false})
		return
	}

	available, err := p.checker.SubdomainAvailable(sub)
	if err != nil {
		slog.Error("subdomain availability check failed", "subdomain", sub, "error", err)
		writeError(w, http.StatusInternalServerError, "Availability check failed.")
		return
	}

	writeJSON(w, http.StatusOK, subdomainCheckResponse{Subdomain: sub, Available: available})
}
