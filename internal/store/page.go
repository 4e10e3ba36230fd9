// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store holds the database access layer. PageStore persists
// published landing pages: the exported HTML keyed by slug.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PublishedPage is one published landing page: a slug and the exported
// standalone HTML, plus the source layout id for traceability.
type PublishedPage struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	HTML        string    `json:"-"`
	LayoutID    string    `json:"layout_id"`
	PublishedAt time.Time `json:"published_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PageStore handles published-page database operations.
type PageStore struct {
	db *sql.DB
}

// NewPageStore creates a new PageStore with the given database connection.
func NewPageStore(db *sql.DB) *PageStore {
	return &PageStore{db: db}
}

// Upsert inserts or replaces the published page for a slug. Publishing the
// same slug again overwrites the stored HTML (last writer wins).
func (s *PageStore) Upsert(p *PublishedPage) (*PublishedPage, error) {
	result := &PublishedPage{}
	err := s.db.QueryRow(`
		INSERT INTO published_pages (slug, title, html, layout_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (slug) DO UPDATE SET
			title = EXCLUDED.title,
			html = EXCLUDED.html,
			layout_id = EXCLUDED.layout_id,
			updated_at = NOW()
		RETURNING id, slug, title, html, layout_id, published_at, updated_at
	`, p.Slug, p.Title, p.HTML, p.LayoutID).Scan(
		&result.ID, &result.Slug, &result.Title, &result.HTML,
		&result.LayoutID, &result.PublishedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert published page: %w", err)
	}
	return result, nil
}

// FindBySlug retrieves a published page by its slug. Returns nil if not found.
func (s *PageStore) FindBySlug(slug string) (*PublishedPage, error) {
	p := &PublishedPage{}
	err := s.db.QueryRow(`
		SELECT id, slug, title, html, layout_id, published_at, updated_at
		FROM published_pages WHERE slug = $1
	`, slug).Scan(
		&p.ID, &p.Slug, &p.Title, &p.HTML, &p.LayoutID, &p.PublishedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find published page: %w", err)
	}
	return p, nil
}

// List returns all published pages without their HTML bodies, newest first.
func (s *PageStore) List() ([]PublishedPage, error) {
	rows, err := s.db.Query(`
		SELECT id, slug, title, layout_id, published_at, updated_at
		FROM published_pages
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list published pages: %w", err)
	}
	defer rows.Close()

	var pages []PublishedPage
	for rows.Next() {
		var p PublishedPage
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.LayoutID, &p.PublishedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan published page: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// Delete removes a published page by slug.
func (s *PageStore) Delete(slug string) error {
	_, err := s.db.Exec(`DELETE FROM published_pages WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("delete published page: %w", err)
	}
	return nil
}
