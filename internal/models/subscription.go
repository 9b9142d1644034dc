// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PlanTier is the billing plan attached to a workspace subscription.
type PlanTier string

const (
	PlanStarter    PlanTier = "starter"
	PlanPro        PlanTier = "pro"
	PlanEnterprise PlanTier = "enterprise"
)

// SubscriptionStatus follows the usual billing lifecycle. New workspaces
// start trialing with a 14-day window.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPastDue   SubscriptionStatus = "past_due"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionTrialing  SubscriptionStatus = "trialing"
)

// TrialPeriod is how long a fresh workspace stays in trialing.
const TrialPeriod = 14 * 24 * time.Hour

// WorkspaceSubscription is the billing record created at provisioning
// step 3. Payment processing itself is delegated to the external
// processor; Stripe identifiers are stored but never acted on here.
type WorkspaceSubscription struct {
	ID                   uuid.UUID          `json:"id"`
	WorkspaceID          uuid.UUID          `json:"workspace_id"`
	PlanTier             PlanTier           `json:"plan_tier"`
	StripeSubscriptionID *string            `json:"stripe_subscription_id,omitempty"`
	Status               SubscriptionStatus `json:"status"`
	BillingCycle         string             `json:"billing_cycle"`
	MRR                  float64            `json:"mrr"`
	TrialEndsAt          *time.Time         `json:"trial_ends_at,omitempty"`
	CurrentPeriodStart   *time.Time         `json:"current_period_start,omitempty"`
	CurrentPeriodEnd     *time.Time         `json:"current_period_end,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

// WorkspaceFeatures holds the per-workspace limits and flags created at
// provisioning step 4 with the fixed starter values.
type WorkspaceFeatures struct {
	ID                  uuid.UUID `json:"id"`
	WorkspaceID         uuid.UUID `json:"workspace_id"`
	MaxClients          int       `json:"max_clients"`
	CustomDomainEnabled bool      `json:"custom_domain_enabled"`
	WhiteLabelEnabled   bool      `json:"white_label_enabled"`
	APIAccessEnabled    bool      `json:"api_access_enabled"`
	TeamMembersEnabled  bool      `json:"team_members_enabled"`
	AIGenerationCredits int       `json:"ai_generation_credits"`
	CreatedAt           time.Time `json:"created_at"`
}

// StarterFeatures returns the fixed limits every new workspace receives.
func StarterFeatures(workspaceID uuid.UUID) WorkspaceFeatures {
	return WorkspaceFeatures{
		WorkspaceID:         workspaceID,
		MaxClients:          10,
		AIGenerationCredits: 10,
	}
}

// LandingPagePrompt is the audit row written for every saved generation.
// At most one row per workspace is active; prior active rows are
// deactivated, never deleted.
type LandingPagePrompt struct {
	ID              uuid.UUID         `json:"id"`
	WorkspaceID     uuid.UUID         `json:"workspace_id"`
	PromptText      string            `json:"prompt_text"`
	GeneratedConfig LandingPageConfig `json:"generated_config"`
	IsActive        bool              `json:"is_active"`
	CreatedAt       time.Time         `json:"created_at"`
}
