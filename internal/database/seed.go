package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"blueprintos/internal/models"
)

// Seed populates the database with initial development data: a demo
// coach workspace resolvable at demo.<base-domain>, one active pricing
// tier and one approved testimonial so the public landing page has live
// content to compose. No-op if any workspace already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM workspaces").Scan(&count); err != nil {
		return fmt.Errorf("seed check workspaces: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	cfg, err := json.Marshal(models.DefaultLandingPageConfig())
	if err != nil {
		return fmt.Errorf("seed marshal config: %w", err)
	}

	var workspaceID string
	err = db.QueryRow(`
		INSERT INTO workspaces (name, subdomain, tagline, about_text, landing_page_config, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		RETURNING id
	`, "Demo Coaching", "demo",
		"Coaching that meets you where you are",
		"Over a decade of experience helping clients reach their goals.",
		cfg,
	).Scan(&workspaceID)
	if err != nil {
		return fmt.Errorf("seed insert workspace: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO pricing_tiers (workspace_id, name, price, duration_weeks, features, is_featured, order_index, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true)
	`, workspaceID, "Foundations", 499, 8,
		`["Weekly 1:1 sessions","Email support","Progress reviews"]`, true, 0)
	if err != nil {
		return fmt.Errorf("seed insert pricing tier: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO testimonials (workspace_id, client_name, client_title, testimonial_text, rating, is_approved)
		VALUES ($1, $2, $3, $4, 5, true)
	`, workspaceID, "Jamie R.", "Founder", "Working together changed how I run my business.")
	if err != nil {
		return fmt.Errorf("seed insert testimonial: %w", err)
	}

	slog.Info("database seeded with demo workspace", "subdomain", "demo")
	return nil
}
