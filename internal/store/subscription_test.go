// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"blueprintos/internal/models"
)

func TestSubscriptionTrial(t *testing.T) {
	db := testDB(t)
	ws := createTestWorkspace(t, db, "sub-trial")
	s := NewSubscriptionStore(db)

	if err := s.CreateTrial(ws.ID); err != nil {
		t.Fatalf("CreateTrial: %v", err)
	}

	sub, err := s.FindByWorkspace(ws.ID)
	if err != nil {
		t.Fatalf("FindByWorkspace: %v", err)
	}
	if sub == nil {
		t.Fatal("subscription not found")
	}
	if sub.PlanTier != models.PlanStarter || sub.Status != models.SubscriptionTrialing {
		t.Errorf("subscription = %s/%s, want starter/trialing", sub.PlanTier, sub.Status)
	}
	if sub.TrialEndsAt == nil {
		t.Fatal("trial_ends_at not set")
	}
	remaining := time.Until(*sub.TrialEndsAt)
	if remaining < 13*24*time.Hour || remaining > models.TrialPeriod {
		t.Errorf("trial window = %v, want about 14 days", remaining)
	}
}

func TestSubscriptionMissing(t *testing.T) {
	db := testDB(t)
	s := NewSubscriptionStore(db)

	sub, err := s.FindByWorkspace(uuid.New())
	if err != nil {
		t.Fatalf("FindByWorkspace: %v", err)
	}
	if sub != nil {
		t.Errorf("subscription for unknown workspace = %+v", sub)
	}
}

func TestFeaturesStarterAndCredits(t *testing.T) {
	db := testDB(t)
	ws := createTestWorkspace(t, db, "feat-credits")
	s := NewFeatureStore(db)

	if err := s.CreateStarter(ws.ID); err != nil {
		t.Fatalf("CreateStarter: %v", err)
	}

	f, err := s.FindByWorkspace(ws.ID)
	if err != nil {
		t.Fatalf("FindByWorkspace: %v", err)
	}
	if f == nil {
		t.Fatal("features not found")
	}
	want := models.StarterFeatures(ws.ID)
	if f.MaxClients != want.MaxClients || f.AIGenerationCredits != want.AIGenerationCredits {
		t.Errorf("features = %+v, want starter limits %+v", f, want)
	}

	// Burn every credit, then confirm the balance floors at zero.
	for i := want.AIGenerationCredits - 1; i >= 0; i-- {
		remaining, consumed, err := s.ConsumeGenerationCredit(ws.ID)
		if err != nil {
			t.Fatalf("ConsumeGenerationCredit: %v", err)
		}
		if !consumed || remaining != i {
			t.Fatalf("consume = (%d, %v), want (%d, true)", remaining, consumed, i)
		}
	}

	remaining, consumed, err := s.ConsumeGenerationCredit(ws.ID)
	if err != nil {
		t.Fatalf("ConsumeGenerationCredit exhausted: %v", err)
	}
	if consumed || remaining != 0 {
		t.Errorf("exhausted consume = (%d, %v), want (0, false)", remaining, consumed)
	}
}

func TestConsumeCreditUnknownWorkspace(t *testing.T) {
	db := testDB(t)
	s := NewFeatureStore(db)

	_, consumed, err := s.ConsumeGenerationCredit(uuid.New())
	if err != nil {
		t.Fatalf("ConsumeGenerationCredit: %v", err)
	}
	if consumed {
		t.Error("credit consumed for unknown workspace")
	}
}
