// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package tenant

import (
	"context"

	"blueprintos/internal/models"
)

// Cache is the hostname-keyed workspace cache the resolver consults
// before hitting the database. Misses are not cached.
type Cache interface {
	Get(ctx context.Context, hostname string) *models.Workspace
	Set(ctx context.Context, hostname string, ws *models.Workspace)
}

// CachedResolver wraps a Resolver with a read-through cache. Reserved
// and malformed hostnames short-circuit in the inner resolver without
// touching the cache.
type CachedResolver struct {
	inner *Resolver
	cache Cache
}

// NewCachedResolver wraps resolver with cache. A nil cache disables
// caching and every lookup goes to the resolver.
func NewCachedResolver(resolver *Resolver, cache Cache) *CachedResolver {
	return &CachedResolver{inner: resolver, cache: cache}
}

// Resolve returns the workspace for hostname, consulting the cache
// first. Like Resolver.Resolve it never errors; unknown hosts map to nil.
func (c *CachedResolver) Resolve(ctx context.Context, hostname string) *models.Workspace {
	host := NormalizeHost(hostname)
	if c.cache != nil {
		if ws := c.cache.Get(ctx, host); ws != nil {
			return ws
		}
	}

	ws := c.inner.Resolve(ctx, host)
	if ws != nil && c.cache != nil {
		c.cache.Set(ctx, host, ws)
	}
	return ws
}
