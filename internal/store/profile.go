// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"blueprintos/internal/models"
)

const profileColumns = `id, role, full_name, avatar_url, bio, timezone, phone,
	onboarding_completed, workspace_id, created_at, updated_at`

// ProfileStore handles profile database operations. Profile IDs are the
// identity provider's user IDs, not locally generated.
type ProfileStore struct {
	db *sql.DB
}

// NewProfileStore creates a new ProfileStore with the given database connection.
func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// Create inserts a profile row for a provisioned identity.
func (s *ProfileStore) Create(p *models.Profile) (*models.Profile, error) {
	result := &models.Profile{}
	err := s.db.QueryRow(`
		INSERT INTO profiles (id, role, full_name, workspace_id, onboarding_completed, timezone)
		VALUES ($1, $2, $3, $4, $5, COALESCE(NULLIF($6, ''), 'UTC'))
		RETURNING `+profileColumns,
		p.ID, p.Role, p.FullName, p.WorkspaceID, p.OnboardingCompleted, p.Timezone,
	).Scan(
		&result.ID, &result.Role, &result.FullName, &result.AvatarURL, &result.Bio,
		&result.Timezone, &result.Phone, &result.OnboardingCompleted, &result.WorkspaceID,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return result, nil
}

// FindByID retrieves a profile by identity user ID. Returns nil if not found.
func (s *ProfileStore) FindByID(id uuid.UUID) (*models.Profile, error) {
	p := &models.Profile{}
	err := s.db.QueryRow(`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id).Scan(
		&p.ID, &p.Role, &p.FullName, &p.AvatarURL, &p.Bio,
		&p.Timezone, &p.Phone, &p.OnboardingCompleted, &p.WorkspaceID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find profile by id: %w", err)
	}
	return p, nil
}
