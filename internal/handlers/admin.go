// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"blueprintos/internal/cache"
	"blueprintos/internal/landing"
	"blueprintos/internal/models"
	"blueprintos/internal/storage"
	"blueprintos/internal/store"
)

// maxLogoBytes caps logo uploads.
const maxLogoBytes = 5 << 20 // 5 MiB

// Admin groups the coach-facing workspace management endpoints:
// branding, landing configuration, AI generation, pricing tiers,
// testimonials and onboarding progress.
type Admin struct {
	workspaces    *store.WorkspaceStore
	tiers         *store.PricingTierStore
	testimonials  *store.TestimonialStore
	subscriptions *store.SubscriptionStore
	features      *store.FeatureStore
	prompts       *store.PromptStore
	generator     *landing.Generator
	wsCache       *cache.WorkspaceCache
	storageClient *storage.Client
}

// NewAdmin creates the admin handler group. storageClient may be nil
// when S3 is not configured; logo uploads then return 503.
func NewAdmin(
	workspaces *store.WorkspaceStore,
	tiers *store.PricingTierStore,
	testimonials *store.TestimonialStore,
	subscriptions *store.SubscriptionStore,
	features *store.FeatureStore,
	prompts *store.PromptStore,
	generator *landing.Generator,
	wsCache *cache.WorkspaceCache,
	storageClient *storage.Client,
) *Admin {
	return &Admin{
		workspaces:    workspaces,
		tiers:         tiers,
		testimonials:  testimonials,
		subscriptions: subscriptions,
		features:      features,
		prompts:       prompts,
		generator:     generator,
		wsCache:       wsCache,
		storageClient: storageClient,
	}
}

// workspaceID parses the {id} route parameter. Writes a 400 and
// returns false on a malformed ID.
func workspaceID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid workspace ID.")
		return uuid.Nil, false
	}
	return id, true
}

// loadWorkspace fetches the workspace or writes a 404.
func (a *Admin) loadWorkspace(w http.ResponseWriter, id uuid.UUID) (*models.Workspace, bool) {
	ws, err := a.workspaces.FindByID(id)
	if err != nil {
		slog.Error("workspace lookup failed", "workspace", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Workspace lookup failed.")
		return nil, false
	}
	if ws == nil {
		writeError(w, http.StatusNotFound, "Workspace not found.")
		return nil, false
	}
	return ws, true
}

// invalidate drops the workspace's cached hostname entries so the next
// public request sees fresh data.
func (a *Admin) invalidate(r *http.Request, ws *models.Workspace) {
	if a.wsCache != nil {
		a.wsCache.Invalidate(r.Context(), ws)
	}
}

// --- Workspace ---

// GetWorkspace returns the full workspace record.
func (a *Admin) GetWorkspace(w http.ResponseWriter, r *http.Request) {
	id, ok := workspaceID(w, r)
	if !ok {
		return
	}
	ws, ok := a.loadWorkspace(w, id)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ws)
}

// brandingRequest carries the partial branding update. Absent fields
// are left unchanged.
type brandingRequest struct {
	Name           *string `json:"name,omitempty"`
	Tagline        *string `json:"tagline,omitempty"`
	AboutText      *string `json:"about_text,omitempty"`
	PrimaryColor   *string `json:"primary_color,omitempty"`
	SecondaryColor *string `json:"secondary_color,omitempty"`
	CustomDomain   *string `json:"custom_domain,omitempty"`
}

// UpdateBranding applies a partial branding update and returns the
// updated workspace. A custom domain already claimed by another
// workspace maps to 409.
func (a *Admin) UpdateBranding(w http.ResponseWriter, r *http.Request) {
	id, ok := workspaceID(w, r)
	if !ok {
		return
	}

	var req brandingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateBranding(req.Name, req.Tagline, req.AboutText, req.PrimaryColor, req.SecondaryColor); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	// Invalidate under the old hostnames before a custom domain change.
	old, ok := a.loadWorkspace(w, id)
	if !ok {
		return
	}

	ws, err := a.workspaces.UpdateBranding(id, store.BrandingUpdate{
		Name:           req.Name,
		Tagline:        req.Tagline,
		AboutText:      req.AboutText,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		CustomDomain:   req.CustomDomain,
	})
	if errors.Is(err, store.ErrCustomDomainTaken) {
		writeError(w, http.StatusConflict, "That custom domain is already in use.")
		return
	}
	if err != nil {
		slog.Error("branding update failed", "workspace", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Branding update failed.")
		return
	}
	if ws == nil {
		writeError(w, http.StatusNotFound, "Workspace not found.")
		return
	}

	a.invalidate(r, old)
	a.invalidate(r, ws)
	writeJSON(w, http.StatusOK, ws)
}

// UpdateLandingConfig replaces the stored landing page configuration
// document. Sections absent from the document keep falling through to
// platform defaults at composition time.
func (a *Admin) UpdateLandingConfig(w http.ResponseWriter, r *http.Request) {
	id, ok := workspaceID(w, r)
	if !ok {
		return
	}
	ws, ok := a.loadWorkspace(w, id)
	if !ok {
		return
	}

	var cfg models.LandingPageConfig
	if err := decodeJSON(w, r, &cfg); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.workspaces.UpdateLandingConfig(id, cfg); err != nil {
		slog.Error("landing config update failed", "workspace", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Landing config update failed.")
		return
	}

	a.invalidate(r, ws)
	writeJSON(w, http.StatusOK, map[string]any{"workspace_id": id, "landing_page_config": cfg})
}

// onboardingRequest names the wizard step being completed (1-6).
type onboardingRequest struct {
	Step int `json:"step"`
}

// CompleteOnboardingStep marks a wizard step done. Steps are monotonic
// and never reset.
func (a *Admin) CompleteOnboardingStep(w http.ResponseWriter, r *http.Request) {
	id, ok := workspaceID(w, r)
	if !ok {
		return
	}

	var req onboardingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.workspaces.CompleteOnboardingStep(id, req.Step); err != nil {
		if req.Step < 1 || req.Step > 6 {
			writeError(w, http.StatusBadRequest, "Onboarding step must be between 1 and 6.")
			return
		}
		slog.Error("onboarding step update failed", "workspace", id, "step", req.Step, "error", err)
		writeError(w, http.StatusInternalServerError, "Onboarding update failed.")
		return
	}

	ws, ok := a.loadWorkspace(w, id)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ws.OnboardingSteps)
}

// --- AI generation ---

// generateRequest describes the coach's business for page generation.
type generateRequest struct {
	Prompt string `json:"prompt"`
	Niche  string `json:"niche"`
	Tone   string `json:"tone"`
}

// generateResponse returns the produced configuration and the credit
// balance after the run.
type generateResponse struct {
	Config           models.LandingPageConfig `json:"config"`
	CreditsRemaining int                      `json:"credits_remaining"`
}

// Generate runs the landing page content engine for a workspace. Each
// run consumes one AI generation credit; an exhausted balance maps to
// 402. The produced configuration is persisted as the active prompt
// record and applied to the workspace in the same transaction.
func (a *Admin) Generate(w http.ResponseWriter, r *http.Request) {
	id, ok := workspaceID(w, r)
	if !ok {
		return
	}
	ws, ok := a.loadWorkspace(w, id)
	if !ok {
		return
	}

	var req generateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateGeneratePrompt(req.Prompt); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	remaining, consumed, err := a.features.ConsumeGenerationCredit(id)
	if err != nil {
		slog.Error("credit consumption failed", "workspace", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Generation failed.")
		return
	}
	if !consumed {
		writeError(w, http.StatusPaymentRequired, "No AI generation credits remaining.")
		return
	}

	cfg := a.generator.Generate(r.Context(), req.Prompt, landing.Niche(req.Niche), req.Tone)

	if _, err := a.prompts.SaveGenerated(id, req.Prompt, cfg); err != nil {
		slog.Error("saving generated config failed", "workspace", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Generation failed.")
		return
	}

	a.invalidate(r, ws)
	writeJSON(w, http.StatusOK, generateResponse{Config: cfg, CreditsRemaining: remaining})
}

// GetPlan returns the workspace's subscription and feature limits.
func (a *Admin) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := workspaceID(w, r)
	if !ok {
		return
	}

	sub, err := a.subscriptions.FindByWorkspace(id)
	if err != nil {
		slog.Error("subscription lookup failed", "workspace", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Plan lookup failed.")
		return
	}
	feats, err := a.features.FindByWorkspace(id)
	if err != nil {
		slog.Error("features lookup failed", "workspace", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Plan lookup failed.")
		return
	}
	if sub == nil && feats == nil {
		writeError(w, http.StatusNotFound, "No plan for this workspace.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"subscription": sub,
		"features":     feats,
	})
}

// --- Pricing tiers ---

// tierRequest carries pricing tier create/update fields.
type tierRequest struct {
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	Currency      string   `json:"currency"`
	DurationWeeks int      `json:"duration_weeks"`
	Features      []string `json:"features"`
	IsFeatured    bool     `json:"is_featured"`
	OrderIndex    int      `json:"order_index"`
	IsActive      bool     `json:"is_active"`
}

// ListTiers returns all of the workspace's active pricing tiers in
// display order.
func (a *Admin) ListTiers(w http.ResponseWriter, r *http.Request) {
	id, ok := workspaceID(w, r)
	if !ok {
		return
	}
	tiers, err := a.tiers.ListActiveByWorkspace(id)
	if err != nil {
		slog.Error("list tiers failed", "workspace", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list pricing tiers.")
		return
	}
	writeJSON(w, http.StatusOK, tiers)
}

// CreateTier adds a pricing tier. Marking it featured clears the flag
// on every other tier of the workspace.
func (a *Admin) CreateTier(w http.ResponseWriter, r *http.Request) {
	id, ok := workspaceID(w, r)
	if !ok {
		return
	}
	ws, ok := a.loadWorkspace(w, id)
	if !ok {
		return
	}

	var req tierRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateTier(req.Name, req.Price, req.DurationWeeks, req.Features); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	created, err := a.tiers.Create(&models.PricingTier{
		WorkspaceID:   id,
		Name:          req.Name,
		Price:         req.Price,
		Currency:      currency,
		DurationWeeks: req.DurationWeeks,
		Features:      req.Features,
		IsFeatured:    req.IsFeatured,
		OrderIndex:    req.OrderIndex,
		IsActive:      true,
	})
	if err != nil {
		slog.Error("create tier failed", "workspace", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create pricing tier.")
		return
	}

	a.invalidate(r, ws)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateTier replaces a pricing tier's fields.
func (a *Admin) UpdateTier(w http.ResponseWriter, r *http.Request) {
	id, ok := workspaceID(w, r)
	if !ok {
		return
	}
	tierID, err := uuid.Parse(chi.URLParam(r, "tierID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid tier ID.")
		return
	}
	ws, ok := a.loadWorkspace(w, id)
	if !ok {
		return
	}

	var req tierRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateTier(req.Name, req.Price, req.DurationWeeks, req.Features); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	tier := &models.PricingTier{
		ID:            tierID,
		WorkspaceID:   id,
		Name:          req.Name,
		Price:         req.Price,
		Currency:      req.Currency,
		DurationWeeks: req.DurationWeeks,
		Features:      req.Features,
		IsFeatured:    req.IsFeatured,
		OrderIndex:    req.OrderIndex,
		IsActive:      req.IsActive,
	}
	if err := a.tiers.Update(tier); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Pricing tier not found.")
			return
		}
		slog.Error("update tier failed", "tier", tierID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update pricing tier.")
		return
	}

	a.invalidate(r, ws)
	writeJSON(w, http.StatusOK, tier)
}

// DeleteTier removes a pricing tier permanently.
func (a *Admin) DeleteTier(w http.ResponseWriter, r *http.Request) {
	id, ok := workspaceID(w, r)
	if !ok {
		return
	}
	tierID, err := uuid.Parse(chi.URLParam(r, "tierID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid tier ID.")
		return
	}
	ws, ok := a.loadWorkspace(w, id)
	if !ok {
		return
	}

	if err := a.tiers.Delete(tierID); err != nil {
		slog.Error("delete tier failed", "tier", tierID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete pricing tier.")
		return
	}

	a.invalidate(r, ws)
	w.WriteHeader(http.StatusNoContent)
}

// --- Testimonials ---

// testimonialRequest carries manual testimonial entry fields.
type testimonialRequest struct {
	ClientName      string  `json:"client_name"`
	ClientTitle     string  `json:"client_title"`
	TestimonialText string  `json:"testimonial_text"`
	Rating          int     `json:"rating"`
	ImageURL        *string `json:"image_url,omitempty"`
	IsFeatured      bool    `json:"is_featured"`
	IsApproved      bool    `json:"is_approved"`
}

// ListTestimonials returns every testimonial of the workspace for the
// moderation view, approved or not.
func (a *Admin) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	id, ok := workspaceID(w, r)
	if !ok {
		return
	}
	items, err := a.testimonials.ListByWorkspace(id)
	if err != nil {
		slog.Error("list testimonials failed", "workspace", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list testimonials.")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateTestimonial adds a coach-entered testimonial.
func (a *Admin) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := workspaceID(w, r)
	if !ok {
		return
	}
	ws, ok := a.loadWorkspace(w, id)
	if !ok {
		return
	}

	var req testimonialRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ClientName == "" || req.TestimonialText == "" {
		writeError(w, http.StatusBadRequest, "Client name and testimonial text are required.")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeError(w, http.StatusBadRequest, "Rating must be between 1 and 5.")
		return
	}

	created, err := a.testimonials.Create(&models.Testimonial{
		WorkspaceID:     id,
		ClientName:      req.ClientName,
		ClientTitle:     req.ClientTitle,
		TestimonialText: req.TestimonialText,
		Rating:          req.Rating,
		ImageURL:        req.ImageURL,
		IsFeatured:      req.IsFeatured,
		IsApproved:      req.IsApproved,
	})
	if err != nil {
		slog.Error("create testimonial failed", "workspace", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create testimonial.")
		return
	}

	a.invalidate(r, ws)
	writeJSON(w, http.StatusCreated, created)
}

// approvalRequest flips a testimonial's approval flag.
type approvalRequest struct {
	Approved bool `json:"approved"`
}

// SetTestimonialApproval approves or unapproves a testimonial.
func (a *Admin) SetTestimonialApproval(w http.ResponseWriter, r *http.Request) {
	id, ok := workspaceID(w, r)
	if !ok {
		return
	}
	testimonialID, err := uuid.Parse(chi.URLParam(r, "testimonialID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid testimonial ID.")
		return
	}
	ws, ok := a.loadWorkspace(w, id)
	if !ok {
		return
	}

	var req approvalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.testimonials.SetApproved(testimonialID, req.Approved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Testimonial not found.")
			return
		}
		slog.Error("testimonial approval failed", "testimonial", testimonialID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update testimonial.")
		return
	}

	a.invalidate(r, ws)
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTestimonial removes a testimonial.
func (a *Admin) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := workspaceID(w, r)
	if !ok {
		return
	}
	testimonialID, err := uuid.Parse(chi.URLParam(r, "testimonialID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid testimonial ID.")
		return
	}
	ws, ok := a.loadWorkspace(w, id)
	if !ok {
		return
	}

	if err := a.testimonials.Delete(testimonialID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Testimonial not found.")
			return
		}
		slog.Error("delete testimonial failed", "testimonial", testimonialID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete testimonial.")
		return
	}

	a.invalidate(r, ws)
	w.WriteHeader(http.StatusNoContent)
}

// --- Logo upload ---

// UploadLogo stores a workspace logo in object storage and records its
// public URL on the workspace.
func (a *Admin) UploadLogo(w http.ResponseWriter, r *http.Request) {
	id, ok := workspaceID(w, r)
	if !ok {
		return
	}
	ws, ok := a.loadWorkspace(w, id)
	if !ok {
		return
	}

	if a.storageClient == nil {
		writeError(w, http.StatusServiceUnavailable, "Object storage is not configured.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxLogoBytes)
	if err := r.ParseMultipartForm(maxLogoBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Logo upload must be multipart form data under 5 MiB.")
		return
	}
	file, header, err := r.FormFile("logo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Form field 'logo' is required.")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	switch contentType {
	case "image/png", "image/jpeg", "image/webp", "image/svg+xml":
	default:
		writeError(w, http.StatusUnsupportedMediaType, "Logo must be PNG, JPEG, WebP or SVG.")
		return
	}

	url, err := a.storageClient.UploadLogo(r.Context(), id.String(), contentType, file, header.Size)
	if err != nil {
		slog.Error("logo upload failed", "workspace", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Logo upload failed.")
		return
	}

	updated, err := a.workspaces.UpdateBranding(id, store.BrandingUpdate{LogoURL: &url})
	if err != nil || updated == nil {
		slog.Error("logo url update failed", "workspace", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Logo upload failed.")
		return
	}

	a.invalidate(r, ws)
	writeJSON(w, http.StatusOK, map[string]string{"logo_url": url})
}
