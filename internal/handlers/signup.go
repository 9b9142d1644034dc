// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"blueprintos/internal/provision"
)

// Provisioner is the workflow slice the signup handlers call into.
type Provisioner interface {
	Signup(ctx context.Context, req provision.SignupRequest) provision.SignupResult
	Recover(ctx context.Context, userID uuid.UUID) provision.RecoveryResult
}

// Signup groups the account provisioning endpoints.
type Signup struct {
	provisioner Provisioner
}

// NewSignup creates the signup handler group.
func NewSignup(p Provisioner) *Signup {
	return &Signup{provisioner: p}
}

// Create runs the signup workflow and returns the structured result.
// Validation failures map to 400, identity failures to 422, and
// failures after identity creation to 500; the body always carries the
// full result including the failing step.
func (s *Signup) Create(w http.ResponseWriter, r *http.Request) {
	var req provision.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.provisioner.Signup(r.Context(), req)
	writeJSON(w, signupStatus(result), result)
}

// signupStatus maps a signup result to an HTTP status code.
func signupStatus(res provision.SignupResult) int {
	if res.Success {
		return http.StatusCreated
	}
	switch res.ErrorCode {
	case provision.CodeMissingFields, provision.CodeMissingWorkspaceName:
		return http.StatusBadRequest
	case provision.CodeAuthCreationFailed:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// recoveryRequest is the admin recovery payload.
type recoveryRequest struct {
	UserID uuid.UUID `json:"userId"`
}

// Recover rebuilds a missing profile (and workspace for coaches) from
// identity data. The workflow itself refuses to run outside
// development and staging; that refusal surfaces here as a 403.
func (s *Signup) Recover(w http.ResponseWriter, r *http.Request) {
	var req recoveryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserID == uuid.Nil {
		writeErrorCode(w, http.StatusBadRequest, "userId is required", provision.CodeMissingFields)
		return
	}

	result := s.provisioner.Recover(r.Context(), req.UserID)
	writeJSON(w, recoveryStatus(result), result)
}

// recoveryStatus maps a recovery result to an HTTP status code.
func recoveryStatus(res provision.RecoveryResult) int {
	if res.Success {
		return http.StatusOK
	}
	switch res.Error {
	case provision.CodeProductionDisabled:
		return http.StatusForbidden
	case provision.CodeUserNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
