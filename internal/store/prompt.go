// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"blueprintos/internal/models"
)

// PromptStore handles the audit trail of landing page generations.
type PromptStore struct {
	db *sql.DB
}

// NewPromptStore creates a new PromptStore with the given database connection.
func NewPromptStore(db *sql.DB) *PromptStore {
	return &PromptStore{db: db}
}

// SaveGenerated records a generation and makes it the workspace's live
// configuration, all in one transaction: prior active audit rows are
// deactivated (never deleted), the new row is inserted active, and the
// config is written onto the workspace. At most one active generation
// per workspace holds afterwards.
func (s *PromptStore) SaveGenerated(workspaceID uuid.UUID, promptText string, cfg models.LandingPageConfig) (*models.LandingPagePrompt, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode generated config: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("save generation begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`UPDATE landing_page_prompts SET is_active = false WHERE workspace_id = $1 AND is_active = true`,
		workspaceID,
	); err != nil {
		return nil, fmt.Errorf("deactivate prior generations: %w", err)
	}

	p := &models.LandingPagePrompt{}
	var cfgRaw []byte
	err = tx.QueryRow(`
		INSERT INTO landing_page_prompts (workspace_id, prompt_text, generated_config, is_active)
		VALUES ($1, $2, $3, true)
		RETURNING id, workspace_id, prompt_text, generated_config, is_active, created_at
	`, workspaceID, promptText, raw).Scan(
		&p.ID, &p.WorkspaceID, &p.PromptText, &cfgRaw, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert generation: %w", err)
	}
	if err := json.Unmarshal(cfgRaw, &p.GeneratedConfig); err != nil {
		return nil, fmt.Errorf("decode generated config: %w", err)
	}

	if _, err := tx.Exec(
		`UPDATE workspaces SET landing_page_config = $1, updated_at = NOW() WHERE id = $2`,
		raw, workspaceID,
	); err != nil {
		return nil, fmt.Errorf("apply generated config: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("save generation commit: %w", err)
	}
	return p, nil
}

// ActiveByWorkspace returns the workspace's active generation, or nil.
func (s *PromptStore) ActiveByWorkspace(workspaceID uuid.UUID) (*models.LandingPagePrompt, error) {
	p := &models.LandingPagePrompt{}
	var cfgRaw []byte
	err := s.db.QueryRow(`
		SELECT id, workspace_id, prompt_text, generated_config, is_active, created_at
		FROM landing_page_prompts
		WHERE workspace_id = $1 AND is_active = true
		ORDER BY created_at DESC
		LIMIT 1
	`, workspaceID).Scan(
		&p.ID, &p.WorkspaceID, &p.PromptText, &cfgRaw, &p.IsActive, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find active generation: %w", err)
	}
	if err := json.Unmarshal(cfgRaw, &p.GeneratedConfig); err != nil {
		return nil, fmt.Errorf("decode generated config: %w", err)
	}
	return p, nil
}
