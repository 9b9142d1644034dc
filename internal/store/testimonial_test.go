// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"

	"blueprintos/internal/models"
)

func TestTestimonialModeration(t *testing.T) {
	db := testDB(t)
	ws := createTestWorkspace(t, db, "testi-mod")
	s := NewTestimonialStore(db)

	pending, err := s.Create(&models.Testimonial{
		WorkspaceID:     ws.ID,
		ClientName:      "Jordan P.",
		TestimonialText: "Changed how I run my week.",
		Rating:          5,
	})
	if err != nil {
		t.Fatalf("Create pending: %v", err)
	}
	approved, err := s.Create(&models.Testimonial{
		WorkspaceID:     ws.ID,
		ClientName:      "Sam R.",
		ClientTitle:     "Founder",
		TestimonialText: "Worth every session.",
		Rating:          4,
		IsApproved:      true,
	})
	if err != nil {
		t.Fatalf("Create approved: %v", err)
	}

	// The public list only carries approved rows.
	public, err := s.ListApprovedByWorkspace(ws.ID)
	if err != nil {
		t.Fatalf("ListApprovedByWorkspace: %v", err)
	}
	if len(public) != 1 || public[0].ID != approved.ID {
		t.Errorf("approved list = %+v", public)
	}

	// The admin list carries everything.
	all, err := s.ListByWorkspace(ws.ID)
	if err != nil {
		t.Fatalf("ListByWorkspace: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin list = %d rows, want 2", len(all))
	}

	if err := s.SetApproved(pending.ID, true); err != nil {
		t.Fatalf("SetApproved: %v", err)
	}
	public, err = s.ListApprovedByWorkspace(ws.ID)
	if err != nil {
		t.Fatalf("ListApprovedByWorkspace after approval: %v", err)
	}
	if len(public) != 2 {
		t.Errorf("approved list after approval = %d rows, want 2", len(public))
	}
}

func TestTestimonialMissingRows(t *testing.T) {
	db := testDB(t)
	s := NewTestimonialStore(db)

	if err := s.SetApproved(uuid.New(), true); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("SetApproved missing = %v, want sql.ErrNoRows", err)
	}
	if err := s.Delete(uuid.New()); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Delete missing = %v, want sql.ErrNoRows", err)
	}
}

func TestTestimonialDelete(t *testing.T) {
	db := testDB(t)
	ws := createTestWorkspace(t, db, "testi-del")
	s := NewTestimonialStore(db)

	created, err := s.Create(&models.Testimonial{
		WorkspaceID:     ws.ID,
		ClientName:      "Alex T.",
		TestimonialText: "Great experience.",
		Rating:          5,
		IsApproved:      true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	all, err := s.ListByWorkspace(ws.ID)
	if err != nil {
		t.Fatalf("ListByWorkspace: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("rows after delete = %d", len(all))
	}
}
