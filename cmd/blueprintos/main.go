// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the BlueprintOS server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blueprintos/internal/ai"
	"blueprintos/internal/cache"
	"blueprintos/internal/config"
	"blueprintos/internal/database"
	"blueprintos/internal/handlers"
	"blueprintos/internal/identity"
	"blueprintos/internal/landing"
	"blueprintos/internal/provision"
	"blueprintos/internal/router"
	"blueprintos/internal/storage"
	"blueprintos/internal/store"
	"blueprintos/internal/tenant"
)

func main() {
	// Structured logger: JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"base_domain", cfg.BaseDomain,
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize data stores.
	workspaceStore := store.NewWorkspaceStore(db)
	tierStore := store.NewPricingTierStore(db)
	testimonialStore := store.NewTestimonialStore(db)
	subscriptionStore := store.NewSubscriptionStore(db)
	featureStore := store.NewFeatureStore(db)
	profileStore := store.NewProfileStore(db)
	promptStore := store.NewPromptStore(db)

	// Hostname resolution with a Valkey read-through cache in front.
	wsCache := cache.NewWorkspaceCache(valkeyClient, cfg.BaseDomain, cache.DefaultWorkspaceTTL)
	resolver := tenant.NewCachedResolver(tenant.NewResolver(workspaceStore), wsCache)

	// Connect to S3-compatible object storage (optional; logo uploads
	// are disabled without it).
	var storageClient *storage.Client
	if cfg.S3Endpoint != "" && cfg.S3AccessKey != "" {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, logo uploads disabled")
	}

	// Initialize the AI provider registry with all configured providers.
	aiRegistry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"openai":  {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL},
		"claude":  {APIKey: cfg.ClaudeKey, Model: cfg.ClaudeModel, BaseURL: cfg.ClaudeBaseURL},
		"mistral": {APIKey: cfg.MistralKey, Model: cfg.MistralModel, BaseURL: cfg.MistralBaseURL},
	})

	slog.Info("ai providers initialized",
		"active", aiRegistry.ActiveName(),
		"available", aiRegistry.Available(),
	)

	// The content generator falls back to deterministic copy when no
	// provider is configured or the call fails.
	var generator *landing.Generator
	if len(aiRegistry.Available()) > 0 {
		generator = landing.NewGenerator(aiRegistry)
	} else {
		generator = landing.NewGenerator(nil)
		slog.Warn("no ai provider configured, generation uses fallback content only")
	}

	// External identity provider admin client.
	var idp identity.Provider
	if client := identity.NewClient(cfg.IdentityBaseURL, cfg.IdentityServiceKey); client != nil {
		idp = client
	} else {
		slog.Warn("identity provider not configured, signup disabled")
	}

	provisioner := provision.New(
		idp, workspaceStore, subscriptionStore, featureStore, profileStore,
		cfg.AllowsRecovery(),
	)

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(tierStore, testimonialStore, workspaceStore)
	signupHandlers := handlers.NewSignup(provisioner)
	adminHandlers := handlers.NewAdmin(
		workspaceStore, tierStore, testimonialStore, subscriptionStore,
		featureStore, promptStore, generator, wsCache, storageClient,
	)

	// Set up the Chi router with all middleware and routes.
	r := router.New(resolver, publicHandlers, signupHandlers, adminHandlers)

	// Create the HTTP server with sensible timeouts.
	// WriteTimeout must accommodate the generation endpoint, which waits
	// on an LLM response (typically 10-30s).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
