// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"blueprintos/internal/provision"
)

type fakeProvisioner struct {
	signupResult   provision.SignupResult
	recoveryResult provision.RecoveryResult
	gotSignup      *provision.SignupRequest
	gotRecoverID   uuid.UUID
}

func (f *fakeProvisioner) Signup(ctx context.Context, req provision.SignupRequest) provision.SignupResult {
	f.gotSignup = &req
	return f.signupResult
}

func (f *fakeProvisioner) Recover(ctx context.Context, userID uuid.UUID) provision.RecoveryResult {
	f.gotRecoverID = userID
	return f.recoveryResult
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSignupCreateStatusMapping(t *testing.T) {
	userID := uuid.New()
	tests := []struct {
		name   string
		result provision.SignupResult
		want   int
	}{
		{"success", provision.SignupResult{Success: true, UserID: &userID}, http.StatusCreated},
		{"missing fields", provision.SignupResult{ErrorCode: provision.CodeMissingFields}, http.StatusBadRequest},
		{"missing workspace name", provision.SignupResult{ErrorCode: provision.CodeMissingWorkspaceName}, http.StatusBadRequest},
		{"duplicate email", provision.SignupResult{ErrorCode: provision.CodeAuthCreationFailed}, http.StatusUnprocessableEntity},
		{"setup failed", provision.SignupResult{ErrorCode: provision.CodeSetupFailed, Step: provision.StepWorkspace}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeProvisioner{signupResult: tt.result}
			s := NewSignup(fake)

			rec := postJSON(t, s.Create, `{"email":"casey@example.com","password":"hunter22","fullName":"Casey","role":"coach","workspaceName":"Casey Coaching"}`)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body.String())
			}

			var got provision.SignupResult
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Success != tt.result.Success || got.ErrorCode != tt.result.ErrorCode {
				t.Errorf("body = %+v, want %+v", got, tt.result)
			}
		})
	}
}

func TestSignupCreatePassesRequest(t *testing.T) {
	fake := &fakeProvisioner{signupResult: provision.SignupResult{Success: true}}
	s := NewSignup(fake)

	postJSON(t, s.Create, `{"email":"casey@example.com","password":"hunter22","fullName":"Casey Jones","role":"coach","workspaceName":"Casey Coaching"}`)

	if fake.gotSignup == nil {
		t.Fatal("provisioner not called")
	}
	if fake.gotSignup.Email != "casey@example.com" || fake.gotSignup.WorkspaceName != "Casey Coaching" {
		t.Errorf("request = %+v", fake.gotSignup)
	}
}

func TestSignupCreateBadJSON(t *testing.T) {
	s := NewSignup(&fakeProvisioner{})
	rec := postJSON(t, s.Create, `{"email":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSignupCreateUnknownField(t *testing.T) {
	s := NewSignup(&fakeProvisioner{})
	rec := postJSON(t, s.Create, `{"email":"a@b.c","isAdmin":true}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRecoverStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		result provision.RecoveryResult
		want   int
	}{
		{"success", provision.RecoveryResult{Success: true, Message: "recovered"}, http.StatusOK},
		{"disabled", provision.RecoveryResult{Error: provision.CodeProductionDisabled}, http.StatusForbidden},
		{"unknown user", provision.RecoveryResult{Error: provision.CodeUserNotFound}, http.StatusNotFound},
		{"setup failed", provision.RecoveryResult{Error: provision.CodeSetupFailed}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeProvisioner{recoveryResult: tt.result}
			s := NewSignup(fake)

			rec := postJSON(t, s.Recover, `{"userId":"`+uuid.NewString()+`"}`)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestRecoverRequiresUserID(t *testing.T) {
	fake := &fakeProvisioner{}
	s := NewSignup(fake)

	rec := postJSON(t, s.Recover, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if fake.gotRecoverID != uuid.Nil {
		t.Error("provisioner should not be called without a userId")
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != provision.CodeMissingFields {
		t.Errorf("code = %q, want %q", body.Code, provision.CodeMissingFields)
	}
}
