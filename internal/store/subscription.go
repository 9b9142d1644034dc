// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blueprintos/internal/models"
)

// SubscriptionStore handles workspace subscription and feature-flag rows.
type SubscriptionStore struct {
	db *sql.DB
}

// NewSubscriptionStore creates a new SubscriptionStore with the given database connection.
func NewSubscriptionStore(db *sql.DB) *SubscriptionStore {
	return &SubscriptionStore{db: db}
}

// CreateTrial inserts the starter subscription a fresh workspace gets:
// trialing status with a 14-day trial window.
func (s *SubscriptionStore) CreateTrial(workspaceID uuid.UUID) error {
	trialEndsAt := time.Now().Add(models.TrialPeriod)
	_, err := s.db.Exec(`
		INSERT INTO workspace_subscriptions (workspace_id, plan_tier, status, trial_ends_at)
		VALUES ($1, $2, $3, $4)
	`, workspaceID, models.PlanStarter, models.SubscriptionTrialing, trialEndsAt)
	if err != nil {
		return fmt.Errorf("create trial subscription: %w", err)
	}
	return nil
}

// FindByWorkspace retrieves the workspace's subscription record.
// Returns nil if not found.
func (s *SubscriptionStore) FindByWorkspace(workspaceID uuid.UUID) (*models.WorkspaceSubscription, error) {
	sub := &models.WorkspaceSubscription{}
	err := s.db.QueryRow(`
		SELECT id, workspace_id, plan_tier, stripe_subscription_id, status,
		       billing_cycle, mrr, trial_ends_at, current_period_start,
		       current_period_end, created_at, updated_at
		FROM workspace_subscriptions
		WHERE workspace_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, workspaceID).Scan(
		&sub.ID, &sub.WorkspaceID, &sub.PlanTier, &sub.StripeSubscriptionID, &sub.Status,
		&sub.BillingCycle, &sub.MRR, &sub.TrialEndsAt, &sub.CurrentPeriodStart,
		&sub.CurrentPeriodEnd, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find subscription: %w", err)
	}
	return sub, nil
}

// FeatureStore handles the per-workspace limit and flag rows.
type FeatureStore struct {
	db *sql.DB
}

// NewFeatureStore creates a new FeatureStore with the given database connection.
func NewFeatureStore(db *sql.DB) *FeatureStore {
	return &FeatureStore{db: db}
}

// CreateStarter inserts the fixed starter limits for a new workspace.
func (s *FeatureStore) CreateStarter(workspaceID uuid.UUID) error {
	f := models.StarterFeatures(workspaceID)
	_, err := s.db.Exec(`
		INSERT INTO workspace_features (workspace_id, max_clients, custom_domain_enabled,
		                                white_label_enabled, api_access_enabled,
		                                team_members_enabled, ai_generation_credits)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, f.WorkspaceID, f.MaxClients, f.CustomDomainEnabled,
		f.WhiteLabelEnabled, f.APIAccessEnabled, f.TeamMembersEnabled, f.AIGenerationCredits)
	if err != nil {
		return fmt.Errorf("create workspace features: %w", err)
	}
	return nil
}

// FindByWorkspace retrieves the workspace's feature record. Returns nil
// if not found.
func (s *FeatureStore) FindByWorkspace(workspaceID uuid.UUID) (*models.WorkspaceFeatures, error) {
	f := &models.WorkspaceFeatures{}
	err := s.db.QueryRow(`
		SELECT id, workspace_id, max_clients, custom_domain_enabled, white_label_enabled,
		       api_access_enabled, team_members_enabled, ai_generation_credits, created_at
		FROM workspace_features
		WHERE workspace_id = $1
	`, workspaceID).Scan(
		&f.ID, &f.WorkspaceID, &f.MaxClients, &f.CustomDomainEnabled, &f.WhiteLabelEnabled,
		&f.APIAccessEnabled, &f.TeamMembersEnabled, &f.AIGenerationCredits, &f.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find workspace features: %w", err)
	}
	return f, nil
}

// ConsumeGenerationCredit decrements the workspace's AI credit balance
// if any remain. Returns the remaining balance and whether a credit was
// actually consumed.
func (s *FeatureStore) ConsumeGenerationCredit(workspaceID uuid.UUID) (int, bool, error) {
	var remaining int
	err := s.db.QueryRow(`
		UPDATE workspace_features
		SET ai_generation_credits = ai_generation_credits - 1
		WHERE workspace_id = $1 AND ai_generation_credits > 0
		RETURNING ai_generation_credits
	`, workspaceID).Scan(&remaining)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("consume generation credit: %w", err)
	}
	return remaining, true, nil
}
