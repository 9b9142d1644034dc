// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package provision implements the multi-step account creation workflow:
// identity, workspace, subscription, feature flags, profile. The only
// compensated step is identity creation; a workspace or profile failure
// deletes the identity and reports which step failed. Subscription and
// feature-flag failures are logged and tolerated.
package provision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"blueprintos/internal/identity"
	"blueprintos/internal/models"
	"blueprintos/internal/slug"
)

// Error codes returned in SignupResult.ErrorCode.
const (
	CodeMissingFields        = "MISSING_FIELDS"
	CodeMissingWorkspaceName = "MISSING_WORKSPACE_NAME"
	CodeAuthCreationFailed   = "AUTH_CREATION_FAILED"
	CodeSetupFailed          = "SETUP_FAILED"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeProductionDisabled   = "PRODUCTION_DISABLED"
)

// Step names identifying where a signup failed.
const (
	StepValidation = "validation"
	StepAuthUser   = "auth_user"
	StepWorkspace  = "workspace"
	StepProfile    = "profile"
)

// SignupRequest is the inbound signup payload.
type SignupRequest struct {
	Email         string      `json:"email"`
	Password      string      `json:"password"`
	FullName      string      `json:"fullName"`
	Role          models.Role `json:"role"`
	WorkspaceName string      `json:"workspaceName,omitempty"`
}

// SignupResult is the structured outcome of a signup attempt. On failure
// Step names the provisioning step that failed.
type SignupResult struct {
	Success     bool       `json:"success"`
	UserID      *uuid.UUID `json:"userId,omitempty"`
	WorkspaceID *uuid.UUID `json:"workspaceId,omitempty"`
	ProfileID   *uuid.UUID `json:"profileId,omitempty"`
	Error       string     `json:"error,omitempty"`
	ErrorCode   string     `json:"errorCode,omitempty"`
	Step        string     `json:"step,omitempty"`
}

// RecoveryResult is the outcome of an admin recovery run.
type RecoveryResult struct {
	Success          bool       `json:"success"`
	Message          string     `json:"message"`
	ProfileCreated   bool       `json:"profileCreated,omitempty"`
	WorkspaceCreated bool       `json:"workspaceCreated,omitempty"`
	ProfileID        *uuid.UUID `json:"profileId,omitempty"`
	WorkspaceID      *uuid.UUID `json:"workspaceId,omitempty"`
	Error            string     `json:"error,omitempty"`
}

// WorkspaceCreator is the slice of the workspace store provisioning needs.
type WorkspaceCreator interface {
	Create(ws *models.Workspace) (*models.Workspace, error)
}

// SubscriptionCreator creates the trial subscription row.
type SubscriptionCreator interface {
	CreateTrial(workspaceID uuid.UUID) error
}

// FeatureCreator creates the starter feature-flag row.
type FeatureCreator interface {
	CreateStarter(workspaceID uuid.UUID) error
}

// ProfileRepository creates and looks up profile rows.
type ProfileRepository interface {
	Create(p *models.Profile) (*models.Profile, error)
	FindByID(id uuid.UUID) (*models.Profile, error)
}

// Provisioner orchestrates the signup and recovery workflows.
type Provisioner struct {
	idp           identity.Provider
	workspaces    WorkspaceCreator
	subscriptions SubscriptionCreator
	features      FeatureCreator
	profiles      ProfileRepository
	allowRecovery bool
}

// New creates a provisioner. allowRecovery gates the admin recovery
// path, which must stay off in production.
func New(idp identity.Provider, workspaces WorkspaceCreator, subscriptions SubscriptionCreator, features FeatureCreator, profiles ProfileRepository, allowRecovery bool) *Provisioner {
	return &Provisioner{
		idp:           idp,
		workspaces:    workspaces,
		subscriptions: subscriptions,
		features:      features,
		profiles:      profiles,
		allowRecovery: allowRecovery,
	}
}

// Signup runs the five-step creation workflow. Validation failures
// reject before any write. After identity creation, a workspace or
// profile failure deletes the identity and reports the failing step;
// rows written by intermediate steps are not compensated.
func (p *Provisioner) Signup(ctx context.Context, req SignupRequest) SignupResult {
	if req.Email == "" || req.Password == "" || req.FullName == "" || !req.Role.Valid() {
		return SignupResult{
			Success:   false,
			Error:     "Missing required fields",
			ErrorCode: CodeMissingFields,
		}
	}
	if req.Role == models.RoleCoach && strings.TrimSpace(req.WorkspaceName) == "" {
		return SignupResult{
			Success:   false,
			Error:     "Workspace name required for coach accounts",
			ErrorCode: CodeMissingWorkspaceName,
			Step:      StepValidation,
		}
	}

	if p.idp == nil {
		return SignupResult{
			Success:   false,
			Error:     "Identity provider not configured",
			ErrorCode: CodeAuthCreationFailed,
			Step:      StepAuthUser,
		}
	}

	slog.Info("signup started", "email", req.Email, "role", req.Role)

	// Step 1: identity. This is the only step with a compensating action.
	user, err := p.idp.CreateUser(ctx, req.Email, req.Password, identity.Metadata{
		FullName: req.FullName,
		Role:     string(req.Role),
	})
	if err != nil {
		slog.Error("identity creation failed", "email", req.Email, "error", err)
		msg := "Failed to create user"
		if errors.Is(err, identity.ErrDuplicateEmail) {
			msg = "Email already registered"
		}
		return SignupResult{
			Success:   false,
			Error:     msg,
			ErrorCode: CodeAuthCreationFailed,
			Step:      StepAuthUser,
		}
	}
	userID := user.ID

	var workspaceID *uuid.UUID

	// Steps 2-4 apply to coaches only; clients go straight to a profile
	// with no workspace.
	if req.Role == models.RoleCoach {
		ws, err := p.workspaces.Create(&models.Workspace{
			Name:      req.WorkspaceName,
			Subdomain: slug.WithSuffix(req.WorkspaceName),
			OwnerID:   &userID,
			IsActive:  true,
		})
		if err != nil {
			return p.rollback(ctx, userID, StepWorkspace, fmt.Errorf("workspace creation failed: %w", err))
		}
		workspaceID = &ws.ID
		slog.Info("workspace created", "workspace", ws.ID, "subdomain", ws.Subdomain)

		if err := p.subscriptions.CreateTrial(ws.ID); err != nil {
			slog.Error("subscription creation failed", "workspace", ws.ID, "error", err)
		}
		if err := p.features.CreateStarter(ws.ID); err != nil {
			slog.Error("features creation failed", "workspace", ws.ID, "error", err)
		}
	}

	profile, err := p.profiles.Create(&models.Profile{
		ID:                  userID,
		Role:                req.Role,
		FullName:            req.FullName,
		WorkspaceID:         workspaceID,
		OnboardingCompleted: req.Role == models.RoleClient,
	})
	if err != nil {
		return p.rollback(ctx, userID, StepProfile, fmt.Errorf("profile creation failed: %w", err))
	}

	slog.Info("signup complete", "email", req.Email, "user", userID)
	return SignupResult{
		Success:     true,
		UserID:      &userID,
		WorkspaceID: workspaceID,
		ProfileID:   &profile.ID,
	}
}

// rollback deletes the created identity and reports the failing step.
// Rollback failures are logged; the signup is already failed either way.
func (p *Provisioner) rollback(ctx context.Context, userID uuid.UUID, step string, cause error) SignupResult {
	slog.Error("signup setup failed, rolling back identity", "user", userID, "step", step, "error", cause)

	if err := p.idp.DeleteUser(ctx, userID); err != nil {
		slog.Error("identity rollback failed", "user", userID, "error", err)
	} else {
		slog.Info("identity rolled back", "user", userID)
	}

	return SignupResult{
		Success:   false,
		Error:     cause.Error(),
		ErrorCode: CodeSetupFailed,
		Step:      step,
	}
}

// Recover rebuilds a missing profile (and workspace, for coaches) from
// identity metadata. Idempotent when the profile already exists. Only
// available outside production.
func (p *Provisioner) Recover(ctx context.Context, userID uuid.UUID) RecoveryResult {
	if !p.allowRecovery {
		return RecoveryResult{
			Success: false,
			Message: "This endpoint is only available in development/staging",
			Error:   CodeProductionDisabled,
		}
	}
	if p.idp == nil {
		return RecoveryResult{
			Success: false,
			Message: "Identity provider not configured",
			Error:   CodeSetupFailed,
		}
	}

	user, err := p.idp.GetUser(ctx, userID)
	if err != nil {
		slog.Error("recovery: identity lookup failed", "user", userID, "error", err)
		return RecoveryResult{
			Success: false,
			Message: "Auth user not found",
			Error:   CodeUserNotFound,
		}
	}

	existing, err := p.profiles.FindByID(userID)
	if err != nil {
		slog.Error("recovery: profile lookup failed", "user", userID, "error", err)
		return RecoveryResult{Success: false, Message: err.Error(), Error: CodeSetupFailed}
	}
	if existing != nil {
		return RecoveryResult{
			Success:        true,
			Message:        "Profile already exists",
			ProfileCreated: false,
			ProfileID:      &existing.ID,
			WorkspaceID:    existing.WorkspaceID,
		}
	}

	fullName := user.Metadata.FullName
	if fullName == "" {
		if at := strings.Index(user.Email, "@"); at > 0 {
			fullName = user.Email[:at]
		} else {
			fullName = "User"
		}
	}
	role := models.Role(user.Metadata.Role)
	if role == "" {
		role = models.RoleCoach
	}

	var workspaceID *uuid.UUID
	workspaceCreated := false

	if role == models.RoleCoach {
		name := fullName + "'s Workspace"
		ws, err := p.workspaces.Create(&models.Workspace{
			Name:      name,
			Subdomain: slug.WithSuffix(name),
			OwnerID:   &userID,
			IsActive:  true,
		})
		if err != nil {
			slog.Error("recovery: workspace creation failed", "user", userID, "error", err)
			return RecoveryResult{Success: false, Message: err.Error(), Error: CodeSetupFailed}
		}
		workspaceID = &ws.ID
		workspaceCreated = true

		if err := p.subscriptions.CreateTrial(ws.ID); err != nil {
			slog.Error("recovery: subscription creation failed", "workspace", ws.ID, "error", err)
		}
		if err := p.features.CreateStarter(ws.ID); err != nil {
			slog.Error("recovery: features creation failed", "workspace", ws.ID, "error", err)
		}
	}

	profile, err := p.profiles.Create(&models.Profile{
		ID:                  userID,
		Role:                role,
		FullName:            fullName,
		WorkspaceID:         workspaceID,
		OnboardingCompleted: role == models.RoleClient,
	})
	if err != nil {
		slog.Error("recovery: profile creation failed", "user", userID, "error", err)
		return RecoveryResult{Success: false, Message: err.Error(), Error: CodeSetupFailed}
	}

	return RecoveryResult{
		Success:          true,
		Message:          "Profile created successfully",
		ProfileCreated:   true,
		WorkspaceCreated: workspaceCreated,
		ProfileID:        &profile.ID,
		WorkspaceID:      workspaceID,
	}
}
