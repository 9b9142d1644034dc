// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"blueprintos/internal/models"
)

const testimonialColumns = `id, workspace_id, client_id, client_name, client_title,
	testimonial_text, rating, image_url, is_featured, is_approved, created_at`

// TestimonialStore handles testimonial database operations. The public
// page only ever sees approved rows; coaches manage the rest through
// the admin surface.
type TestimonialStore struct {
	db *sql.DB
}

// NewTestimonialStore creates a new TestimonialStore with the given database connection.
func NewTestimonialStore(db *sql.DB) *TestimonialStore {
	return &TestimonialStore{db: db}
}

func scanTestimonial(row interface{ Scan(...any) error }) (*models.Testimonial, error) {
	var t models.Testimonial
	err := row.Scan(
		&t.ID, &t.WorkspaceID, &t.ClientID, &t.ClientName, &t.ClientTitle,
		&t.TestimonialText, &t.Rating, &t.ImageURL, &t.IsFeatured, &t.IsApproved, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListApprovedByWorkspace returns the workspace's approved testimonials,
// newest first. Unapproved rows never reach the public page.
func (s *TestimonialStore) ListApprovedByWorkspace(workspaceID uuid.UUID) ([]models.Testimonial, error) {
	return s.list(workspaceID, true)
}

// ListByWorkspace returns all of the workspace's testimonials for the
// admin moderation view, newest first.
func (s *TestimonialStore) ListByWorkspace(workspaceID uuid.UUID) ([]models.Testimonial, error) {
	return s.list(workspaceID, false)
}

func (s *TestimonialStore) list(workspaceID uuid.UUID, approvedOnly bool) ([]models.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE workspace_id = $1`
	if approvedOnly {
		query += ` AND is_approved = true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	var items []models.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// Create inserts a testimonial. New rows start unapproved unless the
// coach entered them directly through the admin surface.
func (s *TestimonialStore) Create(t *models.Testimonial) (*models.Testimonial, error) {
	row := s.db.QueryRow(`
		INSERT INTO testimonials (workspace_id, client_id, client_name, client_title,
			testimonial_text, rating, image_url, is_featured, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+testimonialColumns,
		t.WorkspaceID, t.ClientID, t.ClientName, t.ClientTitle,
		t.TestimonialText, t.Rating, t.ImageURL, t.IsFeatured, t.IsApproved,
	)
	created, err := scanTestimonial(row)
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return created, nil
}

// SetApproved flips a testimonial's approval flag.
func (s *TestimonialStore) SetApproved(id uuid.UUID, approved bool) error {
	res, err := s.db.Exec(`UPDATE testimonials SET is_approved = $1 WHERE id = $2`, approved, id)
	if err != nil {
		return fmt.Errorf("set testimonial approval: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a testimonial.
func (s *TestimonialStore) Delete(id uuid.UUID) error {
	res, err := s.db.Exec(`DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
