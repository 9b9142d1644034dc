// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"github.com/google/uuid"

	"blueprintos/internal/models"
)

func TestSaveGeneratedActivatesAndApplies(t *testing.T) {
	db := testDB(t)
	ws := createTestWorkspace(t, db, "prompt-save")
	s := NewPromptStore(db)

	first := models.LandingPageConfig{
		SectionsEnabled: []string{models.SectionHero},
		Hero:            &models.HeroConfig{Headline: "First Draft"},
	}
	if _, err := s.SaveGenerated(ws.ID, "coach for runners", first); err != nil {
		t.Fatalf("SaveGenerated first: %v", err)
	}

	second := models.LandingPageConfig{
		SectionsEnabled: []string{models.SectionHero, models.SectionCTA},
		Hero:            &models.HeroConfig{Headline: "Second Draft"},
	}
	saved, err := s.SaveGenerated(ws.ID, "coach for trail runners", second)
	if err != nil {
		t.Fatalf("SaveGenerated second: %v", err)
	}
	if !saved.IsActive {
		t.Error("saved generation should be active")
	}

	// Only the latest generation stays active; prior rows are audit history.
	active, err := s.ActiveByWorkspace(ws.ID)
	if err != nil {
		t.Fatalf("ActiveByWorkspace: %v", err)
	}
	if active == nil || active.ID != saved.ID {
		t.Fatalf("active generation = %+v, want %s", active, saved.ID)
	}
	if active.GeneratedConfig.Hero.Headline != "Second Draft" {
		t.Errorf("active config headline = %q", active.GeneratedConfig.Hero.Headline)
	}

	var total, activeCount int
	if err := db.QueryRow(
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active) FROM landing_page_prompts WHERE workspace_id = $1`,
		ws.ID,
	).Scan(&total, &activeCount); err != nil {
		t.Fatalf("count generations: %v", err)
	}
	if total != 2 || activeCount != 1 {
		t.Errorf("generations = %d total / %d active, want 2/1", total, activeCount)
	}

	// The workspace's live configuration is the generated one.
	got, err := NewWorkspaceStore(db).FindByID(ws.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.LandingPageConfig.Hero.Headline != "Second Draft" {
		t.Errorf("workspace config headline = %q", got.LandingPageConfig.Hero.Headline)
	}
}

func TestActiveByWorkspaceMissing(t *testing.T) {
	db := testDB(t)
	s := NewPromptStore(db)

	p, err := s.ActiveByWorkspace(uuid.New())
	if err != nil {
		t.Fatalf("ActiveByWorkspace: %v", err)
	}
	if p != nil {
		t.Errorf("generation for unknown workspace = %+v", p)
	}
}
