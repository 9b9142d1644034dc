// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.BaseDomain != "blueprintos.com" {
		t.Errorf("BaseDomain = %q", cfg.BaseDomain)
	}
	if !cfg.IsDev() {
		t.Error("IsDev should be true in development")
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
}

func TestLoadProductionRequiresSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("POSTGRES_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Fatal("production with default DB password should fail")
	}

	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	t.Setenv("IDENTITY_BASE_URL", "")
	t.Setenv("IDENTITY_SERVICE_KEY", "")
	if _, err := Load(); err == nil {
		t.Fatal("production without identity settings should fail")
	}

	t.Setenv("IDENTITY_BASE_URL", "https://auth.internal")
	t.Setenv("IDENTITY_SERVICE_KEY", "service-key")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IsDev() {
		t.Error("IsDev should be false in production")
	}
}

func TestDSN(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_USER", "svc")
	t.Setenv("POSTGRES_PASSWORD", "pw")
	t.Setenv("POSTGRES_DB", "coaching")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := "postgres://svc:pw@db.internal:5433/coaching?sslmode=disable"
	if cfg.DSN() != want {
		t.Errorf("DSN = %q, want %q", cfg.DSN(), want)
	}
}

func TestAllowsRecovery(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"development", true},
		{"staging", true},
		{"production", false},
		{"testing", false},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			c := &Config{Env: tt.env}
			if got := c.AllowsRecovery(); got != tt.want {
				t.Errorf("AllowsRecovery(%s) = %v, want %v", tt.env, got, tt.want)
			}
		})
	}
}
