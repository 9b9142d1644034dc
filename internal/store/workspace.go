// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements the PostgreSQL persistence layer. Stores
// return (nil, nil) for lookup misses; only infrastructure failures are
// surfaced as errors.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"blueprintos/internal/models"
)

// Allocation conflicts: the database unique constraints are the final
// arbiter for subdomains and custom domains. Callers treat these as
// retryable naming collisions, not infrastructure failures.
var (
	ErrSubdomainTaken    = errors.New("subdomain is already taken")
	ErrCustomDomainTaken = errors.New("custom domain is already taken")
)

const workspaceColumns = `id, name, subdomain, custom_domain, owner_id, logo_url,
	primary_color, secondary_color, tagline, about_text,
	landing_page_config, onboarding_steps, stripe_account_id,
	is_active, created_at, updated_at`

// WorkspaceStore handles all workspace (tenant) database operations.
type WorkspaceStore struct {
	db *sql.DB
}

// NewWorkspaceStore creates a new WorkspaceStore with the given database connection.
func NewWorkspaceStore(db *sql.DB) *WorkspaceStore {
	return &WorkspaceStore{db: db}
}

// scanWorkspace reads a workspace row, decoding the two JSONB documents.
func scanWorkspace(row interface{ Scan(...any) error }) (*models.Workspace, error) {
	ws := &models.Workspace{}
	var configRaw, stepsRaw []byte
	err := row.Scan(
		&ws.ID, &ws.Name, &ws.Subdomain, &ws.CustomDomain, &ws.OwnerID, &ws.LogoURL,
		&ws.PrimaryColor, &ws.SecondaryColor, &ws.Tagline, &ws.AboutText,
		&configRaw, &stepsRaw, &ws.StripeAccountID,
		&ws.IsActive, &ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(configRaw) > 0 {
		if err := json.Unmarshal(configRaw, &ws.LandingPageConfig); err != nil {
			return nil, fmt.Errorf("decode landing_page_config: %w", err)
		}
	}
	if len(stepsRaw) > 0 {
		if err := json.Unmarshal(stepsRaw, &ws.OnboardingSteps); err != nil {
			return nil, fmt.Errorf("decode onboarding_steps: %w", err)
		}
	}
	return ws, nil
}

// Create inserts a new workspace. The landing page configuration starts
// as the full built-in default document. Unique violations map to
// ErrSubdomainTaken / ErrCustomDomainTaken.
func (s *WorkspaceStore) Create(ws *models.Workspace) (*models.Workspace, error) {
	if ws.LandingPageConfig.SectionsEnabled == nil {
		ws.LandingPageConfig = models.DefaultLandingPageConfig()
	}
	configRaw, err := json.Marshal(ws.LandingPageConfig)
	if err != nil {
		return nil, fmt.Errorf("encode landing_page_config: %w", err)
	}
	stepsRaw, err := json.Marshal(ws.OnboardingSteps)
	if err != nil {
		return nil, fmt.Errorf("encode onboarding_steps: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO workspaces (name, subdomain, custom_domain, owner_id, logo_url,
		                        primary_color, secondary_color, tagline, about_text,
		                        landing_page_config, onboarding_steps, is_active)
		VALUES ($1, $2, $3, $4, $5,
		        COALESCE(NULLIF($6, ''), '#3B82F6'), COALESCE(NULLIF($7, ''), '#8B5CF6'), $8, $9,
		        $10, $11, $12)
		RETURNING `+workspaceColumns,
		ws.Name, ws.Subdomain, ws.CustomDomain, ws.OwnerID, ws.LogoURL,
		ws.PrimaryColor, ws.SecondaryColor, ws.Tagline, ws.AboutText,
		configRaw, stepsRaw, ws.IsActive,
	)
	created, err := scanWorkspace(row)
	if err != nil {
		return nil, wrapAllocationConflict("create workspace", err)
	}
	return created, nil
}

// FindByID retrieves a workspace by its UUID. Returns nil if not found.
func (s *WorkspaceStore) FindByID(id uuid.UUID) (*models.Workspace, error) {
	row := s.db.QueryRow(`SELECT `+workspaceColumns+` FROM workspaces WHERE id = $1`, id)
	ws, err := scanWorkspace(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find workspace by id: %w", err)
	}
	return ws, nil
}

// FindActiveBySubdomain retrieves an active workspace by subdomain.
// Both sides compare lower-cased. Returns nil if not found.
func (s *WorkspaceStore) FindActiveBySubdomain(subdomain string) (*models.Workspace, error) {
	row := s.db.QueryRow(`
		SELECT `+workspaceColumns+`
		FROM workspaces
		WHERE LOWER(subdomain) = LOWER($1) AND is_active = true
	`, subdomain)
	ws, err := scanWorkspace(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find workspace by subdomain: %w", err)
	}
	return ws, nil
}

// FindActiveByCustomDomain retrieves an active workspace by its custom
// domain. Returns nil if not found.
func (s *WorkspaceStore) FindActiveByCustomDomain(domain string) (*models.Workspace, error) {
	row := s.db.QueryRow(`
		SELECT `+workspaceColumns+`
		FROM workspaces
		WHERE LOWER(custom_domain) = LOWER($1) AND is_active = true
	`, domain)
	ws, err := scanWorkspace(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find workspace by custom domain: %w", err)
	}
	return ws, nil
}

// SubdomainAvailable reports whether no workspace row holds the exact
// subdomain. Advisory only: concurrent signups can still collide between
// this check and Create, which is why provisioning appends a random
// suffix and the unique constraint backs the write.
func (s *WorkspaceStore) SubdomainAvailable(subdomain string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM workspaces WHERE subdomain = $1)`, subdomain,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check subdomain availability: %w", err)
	}
	return !exists, nil
}

// BrandingUpdate carries the coach-editable branding fields. Nil fields
// are left unchanged.
type BrandingUpdate struct {
	Name           *string
	LogoURL        *string
	PrimaryColor   *string
	SecondaryColor *string
	Tagline        *string
	AboutText      *string
	CustomDomain   *string
}

// UpdateBranding applies a partial branding update to a workspace.
func (s *WorkspaceStore) UpdateBranding(id uuid.UUID, upd BrandingUpdate) (*models.Workspace, error) {
	row := s.db.QueryRow(`
		UPDATE workspaces SET
			name            = COALESCE($1, name),
			logo_url        = COALESCE($2, logo_url),
			primary_color   = COALESCE($3, primary_color),
			secondary_color = COALESCE($4, secondary_color),
			tagline         = COALESCE($5, tagline),
			about_text      = COALESCE($6, about_text),
			custom_domain   = COALESCE($7, custom_domain),
			updated_at      = NOW()
		WHERE id = $8
		RETURNING `+workspaceColumns,
		upd.Name, upd.LogoURL, upd.PrimaryColor, upd.SecondaryColor,
		upd.Tagline, upd.AboutText, upd.CustomDomain, id,
	)
	ws, err := scanWorkspace(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapAllocationConflict("update branding", err)
	}
	return ws, nil
}

// UpdateLandingConfig overwrites the stored landing page configuration.
func (s *WorkspaceStore) UpdateLandingConfig(id uuid.UUID, cfg models.LandingPageConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode landing_page_config: %w", err)
	}
	_, err = s.db.Exec(`
		UPDATE workspaces SET landing_page_config = $1, updated_at = NOW() WHERE id = $2
	`, raw, id)
	if err != nil {
		return fmt.Errorf("update landing config: %w", err)
	}
	return nil
}

// CompleteOnboardingStep marks one of the six wizard steps done. Steps
// are monotonic: this can only flip a step to true, never back.
func (s *WorkspaceStore) CompleteOnboardingStep(id uuid.UUID, step int) error {
	if step < 1 || step > 6 {
		return fmt.Errorf("onboarding step out of range: %d", step)
	}
	key := fmt.Sprintf("step%d", step)
	_, err := s.db.Exec(`
		UPDATE workspaces
		SET onboarding_steps = jsonb_set(onboarding_steps, $1, 'true'::jsonb),
		    updated_at = NOW()
		WHERE id = $2
	`, "{"+key+"}", id)
	if err != nil {
		return fmt.Errorf("complete onboarding step: %w", err)
	}
	return nil
}

// wrapAllocationConflict maps PostgreSQL unique violations on the
// workspace naming columns to the sentinel conflict errors.
func wrapAllocationConflict(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "custom_domain") {
			return ErrCustomDomainTaken
		}
		return ErrSubdomainTaken
	}
	return fmt.Errorf("%s: %w", op, err)
}
