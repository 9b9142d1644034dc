// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// workspace.go provides a Valkey-backed cache of resolved workspace
// records. A freshly provisioned workspace may not be visible to a
// lookup immediately; the short TTL keeps stale entries bounded while
// branding and config edits invalidate affected hostnames explicitly.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"blueprintos/internal/models"
)

const (
	// workspaceKeyPrefix is the Valkey key prefix for cached workspaces.
	workspaceKeyPrefix = "workspace:host:"

	// DefaultWorkspaceTTL is how long a resolved workspace stays cached.
	DefaultWorkspaceTTL = 60 * time.Second
)

// WorkspaceCache caches hostname → workspace resolutions. Misses are
// never cached; only positive resolutions are stored. baseDomain is the
// platform domain subdomains hang off, needed to rebuild a workspace's
// hostname on invalidation.
type WorkspaceCache struct {
	client     *redis.Client
	baseDomain string
	ttl        time.Duration
}

// NewWorkspaceCache creates a workspace cache backed by the given Valkey client.
func NewWorkspaceCache(client *redis.Client, baseDomain string, ttl time.Duration) *WorkspaceCache {
	if ttl == 0 {
		ttl = DefaultWorkspaceTTL
	}
	return &WorkspaceCache{client: client, baseDomain: baseDomain, ttl: ttl}
}

// Get retrieves a cached workspace for a hostname. Returns nil on miss.
func (c *WorkspaceCache) Get(ctx context.Context, hostname string) *models.Workspace {
	val, err := c.client.Get(ctx, workspaceKeyPrefix+hostname).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		slog.Warn("workspace cache get error", "hostname", hostname, "error", err)
		return nil
	}

	var ws models.Workspace
	if err := json.Unmarshal(val, &ws); err != nil {
		slog.Warn("workspace cache decode error", "hostname", hostname, "error", err)
		return nil
	}
	slog.Debug("workspace cache hit", "hostname", hostname)
	return &ws
}

// Set stores a resolved workspace for a hostname with the configured TTL.
func (c *WorkspaceCache) Set(ctx context.Context, hostname string, ws *models.Workspace) {
	val, err := json.Marshal(ws)
	if err != nil {
		slog.Warn("workspace cache encode error", "hostname", hostname, "error", err)
		return
	}
	if err := c.client.Set(ctx, workspaceKeyPrefix+hostname, val, c.ttl).Err(); err != nil {
		slog.Warn("workspace cache set error", "hostname", hostname, "error", err)
	}
}

// Invalidate drops the cached resolutions for a workspace's hostnames.
// Called after branding or configuration writes.
func (c *WorkspaceCache) Invalidate(ctx context.Context, ws *models.Workspace) {
	keys := []string{workspaceKeyPrefix + ws.Subdomain + "." + c.baseDomain}
	if ws.CustomDomain != nil && *ws.CustomDomain != "" {
		keys = append(keys, workspaceKeyPrefix+*ws.CustomDomain)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("workspace cache invalidate error", "workspace", ws.ID, "error", err)
	}
}
