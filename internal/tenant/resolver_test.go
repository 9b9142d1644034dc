// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package tenant

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"blueprintos/internal/models"
)

// fakeFinder serves canned workspaces keyed by custom domain and subdomain.
type fakeFinder struct {
	byDomain    map[string]*models.Workspace
	bySubdomain map[string]*models.Workspace
	err         error

	domainLookups    int
	subdomainLookups int
}

func (f *fakeFinder) FindActiveByCustomDomain(domain string) (*models.Workspace, error) {
	f.domainLookups++
	if f.err != nil {
		return nil, f.err
	}
	return f.byDomain[domain], nil
}

func (f *fakeFinder) FindActiveBySubdomain(subdomain string) (*models.Workspace, error) {
	f.subdomainLookups++
	if f.err != nil {
		return nil, f.err
	}
	return f.bySubdomain[subdomain], nil
}

func testWorkspace(name string) *models.Workspace {
	return &models.Workspace{ID: uuid.New(), Name: name, IsActive: true}
}

func TestResolveCustomDomainWins(t *testing.T) {
	// "coach.example.com" is both a registered custom domain and a
	// hostname whose first label matches another workspace's subdomain.
	// The custom domain owner must win.
	domainOwner := testWorkspace("Domain Owner")
	subOwner := testWorkspace("Subdomain Owner")
	finder := &fakeFinder{
		byDomain:    map[string]*models.Workspace{"coach.example.com": domainOwner},
		bySubdomain: map[string]*models.Workspace{"coach": subOwner},
	}

	got := NewResolver(finder).Resolve(context.Background(), "coach.example.com")
	if got != domainOwner {
		t.Fatalf("Resolve returned %+v, want the custom domain owner", got)
	}
	if finder.subdomainLookups != 0 {
		t.Error("subdomain lookup ran even though the custom domain matched")
	}
}

func TestResolveSubdomain(t *testing.T) {
	ws := testWorkspace("Fit Life")
	finder := &fakeFinder{
		bySubdomain: map[string]*models.Workspace{"fitlife": ws},
	}
	r := NewResolver(finder)

	if got := r.Resolve(context.Background(), "fitlife.blueprintos.com"); got != ws {
		t.Fatalf("Resolve = %+v, want the subdomain workspace", got)
	}
	// Port and case do not affect resolution.
	if got := r.Resolve(context.Background(), "FitLife.BlueprintOS.com:8080"); got != ws {
		t.Fatalf("Resolve with port and mixed case = %+v, want the subdomain workspace", got)
	}
}

func TestResolveMisses(t *testing.T) {
	finder := &fakeFinder{
		bySubdomain: map[string]*models.Workspace{
			"www": testWorkspace("should never match"),
			"app": testWorkspace("should never match"),
		},
	}
	r := NewResolver(finder)

	tests := []struct {
		name string
		host string
	}{
		{"bare domain", "blueprintos.com"},
		{"single label", "localhost"},
		{"reserved www", "www.blueprintos.com"},
		{"reserved app", "app.blueprintos.com"},
		{"reserved admin", "admin.blueprintos.com"},
		{"unknown subdomain", "ghost.blueprintos.com"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(context.Background(), tt.host); got != nil {
				t.Errorf("Resolve(%q) = %+v, want nil", tt.host, got)
			}
		})
	}
}

func TestResolveLookupErrorDegradesToMiss(t *testing.T) {
	finder := &fakeFinder{err: errors.New("connection refused")}
	if got := NewResolver(finder).Resolve(context.Background(), "fit.blueprintos.com"); got != nil {
		t.Fatalf("Resolve with failing store = %+v, want nil", got)
	}
}

func TestSubdomainFromHost(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"fit.blueprintos.com", "fit"},
		{"blueprintos.com", ""},
		{"localhost", ""},
		{"www.blueprintos.com", ""},
		{"deep.fit.blueprintos.com", "deep"},
	}
	for _, tt := range tests {
		if got := SubdomainFromHost(tt.host); got != tt.want {
			t.Errorf("SubdomainFromHost(%q) = %q, want %q", tt.host, got, tt.want)
		}
	}
}

func TestReserved(t *testing.T) {
	for _, sub := range []string{"www", "app", "admin", "WWW"} {
		if !Reserved(sub) {
			t.Errorf("Reserved(%q) = false, want true", sub)
		}
	}
	if Reserved("fitlife") {
		t.Error("Reserved(\"fitlife\") = true, want false")
	}
}

// fakeCache records gets and sets for the cached resolver tests.
type fakeCache struct {
	entries map[string]*models.Workspace
	sets    int
}

func (c *fakeCache) Get(_ context.Context, hostname string) *models.Workspace {
	return c.entries[hostname]
}

func (c *fakeCache) Set(_ context.Context, hostname string, ws *models.Workspace) {
	c.sets++
	c.entries[hostname] = ws
}

func TestCachedResolver(t *testing.T) {
	ws := testWorkspace("Fit Life")
	finder := &fakeFinder{
		bySubdomain: map[string]*models.Workspace{"fitlife": ws},
	}
	cache := &fakeCache{entries: map[string]*models.Workspace{}}
	r := NewCachedResolver(NewResolver(finder), cache)

	ctx := context.Background()
	if got := r.Resolve(ctx, "fitlife.blueprintos.com"); got != ws {
		t.Fatalf("first Resolve = %+v, want workspace", got)
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}

	lookupsBefore := finder.domainLookups + finder.subdomainLookups
	if got := r.Resolve(ctx, "FITLIFE.blueprintos.com:443"); got != ws {
		t.Fatalf("second Resolve = %+v, want workspace", got)
	}
	if after := finder.domainLookups + finder.subdomainLookups; after != lookupsBefore {
		t.Error("cache hit still queried the store")
	}

	// Misses are not cached.
	r.Resolve(ctx, "ghost.blueprintos.com")
	if cache.sets != 1 {
		t.Errorf("cache sets after miss = %d, want 1", cache.sets)
	}
}
