// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestNewClientUnconfigured(t *testing.T) {
	if NewClient("", "key") != nil {
		t.Error("empty base URL should yield a nil client")
	}
	if NewClient("http://auth.local", "") != nil {
		t.Error("empty service key should yield a nil client")
	}
}

func TestCreateUser(t *testing.T) {
	userID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/admin/users" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer service-key" {
			t.Errorf("authorization = %q", got)
		}

		var req struct {
			Email        string   `json:"email"`
			EmailConfirm bool     `json:"email_confirm"`
			UserMetadata Metadata `json:"user_metadata"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if !req.EmailConfirm {
			t.Error("users should be created pre-confirmed")
		}
		if req.UserMetadata.FullName != "Casey Coach" {
			t.Errorf("metadata full name = %q", req.UserMetadata.FullName)
		}

		json.NewEncoder(w).Encode(User{ID: userID, Email: req.Email, Metadata: req.UserMetadata})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service-key")
	user, err := c.CreateUser(context.Background(), "coach@example.com", "pw", Metadata{
		FullName: "Casey Coach",
		Role:     "coach",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.ID != userID || user.Email != "coach@example.com" {
		t.Errorf("user = %+v", user)
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	for _, status := range []int{http.StatusUnprocessableEntity, http.StatusConflict} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))
		c := NewClient(srv.URL, "k")
		_, err := c.CreateUser(context.Background(), "dup@example.com", "pw", Metadata{})
		srv.Close()
		if !errors.Is(err, ErrDuplicateEmail) {
			t.Errorf("status %d: err = %v, want ErrDuplicateEmail", status, err)
		}
	}
}

func TestGetUserNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	if _, err := c.GetUser(context.Background(), uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestDeleteUserIdempotent(t *testing.T) {
	// 404 on delete is success: the compensation path may run twice.
	for _, status := range []int{http.StatusOK, http.StatusNoContent, http.StatusNotFound} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))
		c := NewClient(srv.URL, "k")
		err := c.DeleteUser(context.Background(), uuid.New())
		srv.Close()
		if err != nil {
			t.Errorf("status %d: DeleteUser = %v, want nil", status, err)
		}
	}
}

func TestDeleteUserServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	if err := c.DeleteUser(context.Background(), uuid.New()); err == nil {
		t.Error("DeleteUser should surface server errors")
	}
}
