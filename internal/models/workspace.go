// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the domain types shared across the BlueprintOS
// core: workspaces (tenants), landing page configuration, pricing tiers,
// testimonials, profiles and subscription records.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Workspace is a coach's branded tenant: a subdomain, optional custom
// domain, branding fields and the landing page configuration document.
// Workspaces are created exactly once during provisioning and are never
// hard-deleted; IsActive gates hostname resolution.
type Workspace struct {
	ID                uuid.UUID         `json:"id"`
	Name              string            `json:"name"`
	Subdomain         string            `json:"subdomain"`
	CustomDomain      *string           `json:"custom_domain,omitempty"`
	OwnerID           *uuid.UUID        `json:"owner_id,omitempty"`
	LogoURL           *string           `json:"logo_url,omitempty"`
	PrimaryColor      string            `json:"primary_color"`
	SecondaryColor    string            `json:"secondary_color"`
	Tagline           string            `json:"tagline"`
	AboutText         string            `json:"about_text"`
	LandingPageConfig LandingPageConfig `json:"landing_page_config"`
	OnboardingSteps   OnboardingSteps   `json:"onboarding_steps"`
	StripeAccountID   *string           `json:"stripe_account_id,omitempty"`
	IsActive          bool              `json:"is_active"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// OnboardingSteps tracks the six wizard steps a coach completes after
// signup. Steps only ever move false → true; there is no reset path.
type OnboardingSteps struct {
	Step1 bool `json:"step1"`
	Step2 bool `json:"step2"`
	Step3 bool `json:"step3"`
	Step4 bool `json:"step4"`
	Step5 bool `json:"step5"`
	Step6 bool `json:"step6"`
}

// Completed returns the number of finished onboarding steps.
func (s OnboardingSteps) Completed() int {
	n := 0
	for _, done := range []bool{s.Step1, s.Step2, s.Step3, s.Step4, s.Step5, s.Step6} {
		if done {
			n++
		}
	}
	return n
}

// Role identifies the kind of account a profile belongs to.
type Role string

const (
	RoleCoach      Role = "coach"
	RoleClient     Role = "client"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// Valid reports whether the role is one the signup endpoint accepts.
func (r Role) Valid() bool {
	return r == RoleCoach || r == RoleClient
}

// Profile links an identity-provider user to a workspace. Client profiles
// have a nil WorkspaceID until they are attached to a coach's workspace.
type Profile struct {
	ID                  uuid.UUID  `json:"id"`
	Role                Role       `json:"role"`
	FullName            string     `json:"full_name"`
	AvatarURL           *string    `json:"avatar_url,omitempty"`
	Bio                 string     `json:"bio"`
	Timezone            string     `json:"timezone"`
	Phone               *string    `json:"phone,omitempty"`
	OnboardingCompleted bool       `json:"onboarding_completed"`
	WorkspaceID         *uuid.UUID `json:"workspace_id,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
