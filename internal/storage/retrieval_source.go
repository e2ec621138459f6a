package storage

import (
	"context"
	"database/sql"
	"fmt"

	"emotiva-math/internal/retrieval"
)

// MaterialSource bridges the materials table to the retrieval index.
// It implements retrieval.MaterialSource and enforces the boundary
// invariant that only materials with extractable text enter the chunker.
type MaterialSource struct {
	db *sql.DB
}

// NewMaterialSource creates a new MaterialSource.
func NewMaterialSource(db *sql.DB) *MaterialSource {
	return &MaterialSource{db: db}
}

// ListAll returns every material with non-blank text, ordered by ID so the
// index's chunk order is deterministic across reloads.
func (s *MaterialSource) ListAll(ctx context.Context) ([]retrieval.Material, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, topic, level, author, full_text
		 FROM materials WHERE TRIM(full_text) != '' ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query materials: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var materials []retrieval.Material
	for rows.Next() {
		var m retrieval.Material
		if err := rows.Scan(&m.ID, &m.Title, &m.Topic, &m.Level, &m.Author, &m.FullText); err != nil {
			return nil, fmt.Errorf("failed to scan material: %w", err)
		}
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return materials, nil
}
