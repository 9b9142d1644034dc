// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package identity wraps the external identity provider's admin API.
// Sessions, sign-in and token handling stay entirely with the provider;
// the core only creates, fetches and deletes users during provisioning.
package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Metadata is the application data attached to an identity at creation.
type Metadata struct {
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// User is the identity tuple the provider hands back.
type User struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Metadata Metadata  `json:"user_metadata"`
}

// ErrUserNotFound is returned by GetUser for unknown IDs.
var ErrUserNotFound = errors.New("identity: user not found")

// ErrDuplicateEmail is returned when an email is already registered.
// Signup is deliberately not idempotent: resubmitting the same email
// fails here, at the first provisioning step.
var ErrDuplicateEmail = errors.New("identity: email already registered")

// Provider is the admin surface of the external identity service.
type Provider interface {
	// CreateUser registers a confirmed user with the given metadata.
	CreateUser(ctx context.Context, email, password string, meta Metadata) (*User, error)

	// GetUser fetches a user by ID. Returns ErrUserNotFound for unknown IDs.
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)

	// DeleteUser removes a user. Used as the provisioning compensation step.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
