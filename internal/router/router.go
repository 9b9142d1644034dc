// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// BlueprintOS server. The tenant resolution middleware runs only on the
// public landing route; the API routes are hostname-agnostic.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"blueprintos/internal/handlers"
	"blueprintos/internal/middleware"
)

// Signup endpoints get a tighter rate limit than the rest of the API.
const (
	signupRateLimit  = 10
	signupRateWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(resolver middleware.WorkspaceResolver, public *handlers.Public, signup *handlers.Signup, admin *handlers.Admin) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check, no tenant resolution.
	r.Get("/health", healthHandler)

	// Public tenant surface, resolved from the request hostname.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Tenant(resolver))
		r.Get("/landing", public.Landing)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/subdomain/check", public.SubdomainCheck)

		// Signup and recovery are unauthenticated and rate limited.
		r.Group(func(r chi.Router) {
			limiter := middleware.NewRateLimiter(signupRateLimit, signupRateWindow)
			r.Use(limiter.Middleware)
			r.Post("/signup", signup.Create)
			r.Post("/admin/recovery", signup.Recover)
		})

		// Coach workspace management.
		r.Route("/workspaces/{id}", func(r chi.Router) {
			r.Get("/", admin.GetWorkspace)
			r.Patch("/branding", admin.UpdateBranding)
			r.Put("/landing-config", admin.UpdateLandingConfig)
			r.Post("/onboarding", admin.CompleteOnboardingStep)
			r.Post("/generate", admin.Generate)
			r.Get("/plan", admin.GetPlan)
			r.Post("/logo", admin.UploadLogo)

			r.Route("/tiers", func(r chi.Router) {
				r.Get("/", admin.ListTiers)
				r.Post("/", admin.CreateTier)
				r.Put("/{tierID}", admin.UpdateTier)
				r.Delete("/{tierID}", admin.DeleteTier)
			})

			r.Route("/testimonials", func(r chi.Router) {
				r.Get("/", admin.ListTestimonials)
				r.Post("/", admin.CreateTestimonial)
				r.Put("/{testimonialID}/approval", admin.SetTestimonialApproval)
				r.Delete("/{testimonialID}", admin.DeleteTestimonial)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
