// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package tenant resolves inbound hostnames to workspace records.
// Resolution is a pure lookup with no side effects; a hostname that maps
// to no workspace is a valid miss that drives the generic landing
// experience, never an error.
package tenant

import (
	"context"
	"log/slog"
	"net"
	"strings"

	"blueprintos/internal/models"
)

// Reserved first labels that never resolve to a workspace.
var reservedSubdomains = map[string]bool{
	"www":   true,
	"app":   true,
	"admin": true,
}

// WorkspaceFinder is the slice of the workspace store the resolver needs.
type WorkspaceFinder interface {
	FindActiveByCustomDomain(domain string) (*models.Workspace, error)
	FindActiveBySubdomain(subdomain string) (*models.Workspace, error)
}

// Resolver maps hostnames to active workspaces: custom-domain match
// first, then first-label subdomain match.
type Resolver struct {
	finder WorkspaceFinder
}

// NewResolver creates a resolver over the given workspace finder.
func NewResolver(finder WorkspaceFinder) *Resolver {
	return &Resolver{finder: finder}
}

// Resolve returns the active workspace for a hostname, or nil when none
// matches. Lookup failures are logged and degrade to a miss so the
// public surface can fall back to the generic experience.
func (r *Resolver) Resolve(ctx context.Context, hostname string) *models.Workspace {
	hostname = NormalizeHost(hostname)
	if hostname == "" {
		return nil
	}

	// Custom domain always wins over a coincidental subdomain match.
	ws, err := r.finder.FindActiveByCustomDomain(hostname)
	if err != nil {
		slog.Error("custom domain lookup failed", "hostname", hostname, "error", err)
		return nil
	}
	if ws != nil {
		return ws
	}

	sub := SubdomainFromHost(hostname)
	if sub == "" {
		return nil
	}

	ws, err = r.finder.FindActiveBySubdomain(sub)
	if err != nil {
		slog.Error("subdomain lookup failed", "subdomain", sub, "error", err)
		return nil
	}
	return ws
}

// SubdomainFromHost extracts the candidate subdomain from a hostname.
// Fewer than three labels means a bare domain or single-level host and
// yields no candidate; reserved labels never resolve.
func SubdomainFromHost(hostname string) string {
	parts := strings.Split(hostname, ".")
	if len(parts) < 3 {
		return ""
	}
	sub := parts[0]
	if reservedSubdomains[sub] {
		return ""
	}
	return sub
}

// Reserved reports whether a first label is reserved for the platform
// itself and can never be allocated or resolved.
func Reserved(subdomain string) bool {
	return reservedSubdomains[strings.ToLower(subdomain)]
}

// NormalizeHost lower-cases a hostname and strips any port.
func NormalizeHost(hostname string) string {
	if host, _, err := net.SplitHostPort(hostname); err == nil {
		hostname = host
	}
	return strings.ToLower(strings.TrimSpace(hostname))
}
