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

const tierColumns = `id, workspace_id, name, price, currency, duration_weeks,
	features, is_featured, order_index, stripe_price_id, is_active, created_at`

// PricingTierStore handles pricing tier database operations.
type PricingTierStore struct {
	db *sql.DB
}

// NewPricingTierStore creates a new PricingTierStore with the given database connection.
func NewPricingTierStore(db *sql.DB) *PricingTierStore {
	return &PricingTierStore{db: db}
}

func scanTier(row interface{ Scan(...any) error }) (*models.PricingTier, error) {
	t := &models.PricingTier{}
	var featuresRaw []byte
	err := row.Scan(
		&t.ID, &t.WorkspaceID, &t.Name, &t.Price, &t.Currency, &t.DurationWeeks,
		&featuresRaw, &t.IsFeatured, &t.OrderIndex, &t.StripePriceID, &t.IsActive, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(featuresRaw) > 0 {
		if err := json.Unmarshal(featuresRaw, &t.Features); err != nil {
			return nil, fmt.Errorf("decode tier features: %w", err)
		}
	}
	return t, nil
}

// ListActiveByWorkspace returns the workspace's active tiers in display
// order. This is the "live content" the composer receives.
func (s *PricingTierStore) ListActiveByWorkspace(workspaceID uuid.UUID) ([]models.PricingTier, error) {
	rows, err := s.db.Query(`
		SELECT `+tierColumns+`
		FROM pricing_tiers
		WHERE workspace_id = $1 AND is_active = true
		ORDER BY order_index
	`, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list active tiers: %w", err)
	}
	defer rows.Close()

	var tiers []models.PricingTier
	for rows.Next() {
		t, err := scanTier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tier: %w", err)
		}
		tiers = append(tiers, *t)
	}
	return tiers, rows.Err()
}

// Create inserts a new tier. A tier created featured displaces any
// previously featured tier in the same workspace.
func (s *PricingTierStore) Create(t *models.PricingTier) (*models.PricingTier, error) {
	featuresRaw, err := json.Marshal(t.Features)
	if err != nil {
		return nil, fmt.Errorf("encode tier features: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create tier begin: %w", err)
	}
	defer tx.Rollback()

	if t.IsFeatured {
		if _, err := tx.Exec(
			`UPDATE pricing_tiers SET is_featured = false WHERE workspace_id = $1`,
			t.WorkspaceID,
		); err != nil {
			return nil, fmt.Errorf("clear featured tier: %w", err)
		}
	}

	row := tx.QueryRow(`
		INSERT INTO pricing_tiers (workspace_id, name, price, currency, duration_weeks,
		                           features, is_featured, order_index, is_active)
		VALUES ($1, $2, $3, COALESCE(NULLIF($4, ''), 'USD'), $5, $6, $7, $8, $9)
		RETURNING `+tierColumns,
		t.WorkspaceID, t.Name, t.Price, t.Currency, t.DurationWeeks,
		featuresRaw, t.IsFeatured, t.OrderIndex, t.IsActive,
	)
	created, err := scanTier(row)
	if err != nil {
		return nil, fmt.Errorf("create tier: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create tier commit: %w", err)
	}
	return created, nil
}

// Update modifies an existing tier. Marking the tier featured clears the
// flag on the workspace's other tiers in the same transaction, keeping
// the "most popular" display a singleton.
func (s *PricingTierStore) Update(t *models.PricingTier) error {
	featuresRaw, err := json.Marshal(t.Features)
	if err != nil {
		return fmt.Errorf("encode tier features: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("update tier begin: %w", err)
	}
	defer tx.Rollback()

	if t.IsFeatured {
		if _, err := tx.Exec(
			`UPDATE pricing_tiers SET is_featured = false WHERE workspace_id = $1 AND id <> $2`,
			t.WorkspaceID, t.ID,
		); err != nil {
			return fmt.Errorf("clear featured tier: %w", err)
		}
	}

	res, err := tx.Exec(`
		UPDATE pricing_tiers SET
			name = $1, price = $2, currency = $3, duration_weeks = $4,
			features = $5, is_featured = $6, order_index = $7, is_active = $8
		WHERE id = $9
	`, t.Name, t.Price, t.Currency, t.DurationWeeks,
		featuresRaw, t.IsFeatured, t.OrderIndex, t.IsActive, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update tier: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

// Delete removes a tier permanently. Soft hiding goes through is_active.
func (s *PricingTierStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM pricing_tiers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tier: %w", err)
	}
	return nil
}
