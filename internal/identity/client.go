// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client talks to a GoTrue-compatible auth admin API using a service
// role key. All calls are server-to-server; the key never reaches a
// browser.
type Client struct {
	baseURL    string
	serviceKey string
	client     *http.Client
}

// NewClient creates an identity admin client. Returns nil if the base
// URL or key is empty, letting development run without a provider.
func NewClient(baseURL, serviceKey string) *Client {
	if baseURL == "" || serviceKey == "" {
		return nil
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

type createUserRequest struct {
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	EmailConfirm bool     `json:"email_confirm"`
	UserMetadata Metadata `json:"user_metadata"`
}

// CreateUser registers a confirmed user with the given metadata.
func (c *Client) CreateUser(ctx context.Context, email, password string, meta Metadata) (*User, error) {
	body := createUserRequest{
		Email:        email,
		Password:     password,
		EmailConfirm: true,
		UserMetadata: meta,
	}

	var user User
	status, err := c.do(ctx, http.MethodPost, "/admin/users", body, &user)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusUnprocessableEntity || status == http.StatusConflict:
		return nil, ErrDuplicateEmail
	case status != http.StatusOK && status != http.StatusCreated:
		return nil, fmt.Errorf("identity create user: status %d", status)
	}
	return &user, nil
}

// GetUser fetches a user by ID.
func (c *Client) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	status, err := c.do(ctx, http.MethodGet, "/admin/users/"+id.String(), nil, &user)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusNotFound:
		return nil, ErrUserNotFound
	case status != http.StatusOK:
		return nil, fmt.Errorf("identity get user: status %d", status)
	}
	return &user, nil
}

// DeleteUser removes a user. Deleting an already-deleted user is not an
// error, which keeps compensation idempotent.
func (c *Client) DeleteUser(ctx context.Context, id uuid.UUID) error {
	status, err := c.do(ctx, http.MethodDelete, "/admin/users/"+id.String(), nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent && status != http.StatusNotFound {
		return fmt.Errorf("identity delete user: status %d", status)
	}
	return nil
}

// do performs one authenticated round trip, decoding the response into
// out when provided. Non-2xx statuses are returned for the caller to map.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("identity marshal: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("identity request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("identity http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("identity read body: %w", err)
	}

	if out != nil && resp.StatusCode < 300 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp.StatusCode, fmt.Errorf("identity unmarshal: %w", err)
		}
	}
	return resp.StatusCode, nil
}
