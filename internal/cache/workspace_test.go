// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"blueprintos/internal/models"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, workspaceKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestWorkspaceCacheRoundTrip(t *testing.T) {
	client := testValkeyClient(t)
	c := NewWorkspaceCache(client, "blueprintos.test", time.Minute)
	ctx := context.Background()

	ws := &models.Workspace{
		ID:        uuid.New(),
		Name:      "Cached Coaching",
		Subdomain: "cached",
		IsActive:  true,
	}
	host := "cached.blueprintos.test"

	if got := c.Get(ctx, host); got != nil {
		t.Fatalf("unexpected cache hit before set: %+v", got)
	}

	c.Set(ctx, host, ws)
	got := c.Get(ctx, host)
	if got == nil {
		t.Fatal("cache miss after set")
	}
	if got.ID != ws.ID || got.Subdomain != ws.Subdomain {
		t.Errorf("cached workspace = %+v, want %+v", got, ws)
	}
}

func TestWorkspaceCacheInvalidate(t *testing.T) {
	client := testValkeyClient(t)
	c := NewWorkspaceCache(client, "blueprintos.test", time.Minute)
	ctx := context.Background()

	domain := "coach.example.org"
	ws := &models.Workspace{
		ID:           uuid.New(),
		Name:         "Invalidate Coaching",
		Subdomain:    "invalidate",
		CustomDomain: &domain,
		IsActive:     true,
	}

	c.Set(ctx, "invalidate.blueprintos.test", ws)
	c.Set(ctx, domain, ws)

	c.Invalidate(ctx, ws)

	if got := c.Get(ctx, "invalidate.blueprintos.test"); got != nil {
		t.Error("subdomain hostname still cached after invalidate")
	}
	if got := c.Get(ctx, domain); got != nil {
		t.Error("custom domain still cached after invalidate")
	}
}

func TestWorkspaceCacheTTL(t *testing.T) {
	client := testValkeyClient(t)
	c := NewWorkspaceCache(client, "blueprintos.test", time.Second)
	ctx := context.Background()

	ws := &models.Workspace{ID: uuid.New(), Subdomain: "ttl"}
	c.Set(ctx, "ttl.blueprintos.test", ws)

	ttl, err := client.TTL(ctx, workspaceKeyPrefix+"ttl.blueprintos.test").Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > time.Second {
		t.Errorf("ttl = %v, want (0, 1s]", ttl)
	}
}

func TestNewWorkspaceCacheDefaultTTL(t *testing.T) {
	c := NewWorkspaceCache(nil, "blueprintos.test", 0)
	if c.ttl != DefaultWorkspaceTTL {
		t.Errorf("ttl = %v, want %v", c.ttl, DefaultWorkspaceTTL)
	}
}
