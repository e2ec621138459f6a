package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_material_store.go -package=mocks emotiva-math/internal/storage MaterialStore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// MaterialStore defines the interface for material storage operations.
type MaterialStore interface {
	// Create inserts a new material and sets its ID.
	Create(ctx context.Context, m *MaterialRecord) error
	// GetByID gets a material by ID. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id int) (*MaterialRecord, error)
	// Update updates a material's editable fields.
	Update(ctx context.Context, m *MaterialRecord) error
	// Delete removes a material. Returns ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int) error
	// List returns materials, newest first, optionally filtered by topic
	// and level (case-insensitive).
	List(ctx context.Context, topic, level string) ([]MaterialRecord, error)
	// Search returns materials whose title or text contains the keyword,
	// newest first, with the same optional filters as List.
	Search(ctx context.Context, keyword, topic, level string) ([]MaterialRecord, error)
}

// MaterialRepo provides methods for material operations.
// It implements the MaterialStore interface.
type MaterialRepo struct {
	db *sql.DB
}

// NewMaterialRepo creates a new MaterialRepo.
func NewMaterialRepo(db *sql.DB) *MaterialRepo {
	return &MaterialRepo{db: db}
}

const materialColumns = "id, title, topic, full_text, file_path, file_name, file_type, level, author, created_at, updated_at"

// Create inserts a new material and sets its ID.
// Topic and level are stored lowercase so filters stay consistent.
func (r *MaterialRepo) Create(ctx context.Context, m *MaterialRecord) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO materials (title, topic, full_text, file_path, file_name, file_type, level, author)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Title, strings.ToLower(m.Topic), m.FullText,
		nullable(m.FilePath), nullable(m.FileName), nullable(m.FileType),
		strings.ToLower(m.Level), m.Author,
	)
	if err != nil {
		return fmt.Errorf("failed to insert material: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted material id: %w", err)
	}
	m.ID = int(id)
	m.Topic = strings.ToLower(m.Topic)
	m.Level = strings.ToLower(m.Level)
	return nil
}

// GetByID gets a material by ID. Returns ErrNotFound if not found.
func (r *MaterialRepo) GetByID(ctx context.Context, id int) (*MaterialRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+materialColumns+" FROM materials WHERE id = ?", id)

	m, err := scanMaterial(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query material: %w", err)
	}
	return m, nil
}

// Update updates a material's editable fields.
func (r *MaterialRepo) Update(ctx context.Context, m *MaterialRecord) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE materials SET title = ?, topic = ?, full_text = ?, file_path = ?,
		 file_name = ?, file_type = ?, level = ?, author = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		m.Title, strings.ToLower(m.Topic), m.FullText,
		nullable(m.FilePath), nullable(m.FileName), nullable(m.FileType),
		strings.ToLower(m.Level), m.Author, m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update material: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a material. Returns ErrNotFound if it does not exist.
func (r *MaterialRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM materials WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns materials, newest first, optionally filtered by topic and level.
func (r *MaterialRepo) List(ctx context.Context, topic, level string) ([]MaterialRecord, error) {
	return r.query(ctx, "", topic, level)
}

// Search returns materials whose title or text contains the keyword.
func (r *MaterialRepo) Search(ctx context.Context, keyword, topic, level string) ([]MaterialRecord, error) {
	return r.query(ctx, keyword, topic, level)
}

func (r *MaterialRepo) query(ctx context.Context, keyword, topic, level string) ([]MaterialRecord, error) {
	query := "SELECT " + materialColumns + " FROM materials WHERE 1=1"
	var args []any

	if keyword != "" {
		query += " AND (title LIKE ? OR full_text LIKE ?)"
		pattern := "%" + keyword + "%"
		args = append(args, pattern, pattern)
	}
	if topic != "" {
		query += " AND topic = ?"
		args = append(args, strings.ToLower(topic))
	}
	if level != "" {
		query += " AND level = ?"
		args = append(args, strings.ToLower(level))
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query materials: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var materials []MaterialRecord
	for rows.Next() {
		m, err := scanMaterial(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan material: %w", err)
		}
		materials = append(materials, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return materials, nil
}

func scanMaterial(scan func(dest ...any) error) (*MaterialRecord, error) {
	var m MaterialRecord
	var filePath, fileName, fileType sql.NullString
	var createdAtStr, updatedAtStr string

	err := scan(&m.ID, &m.Title, &m.Topic, &m.FullText, &filePath, &fileName,
		&fileType, &m.Level, &m.Author, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, err
	}

	m.FilePath = filePath.String
	m.FileName = fileName.String
	m.FileType = fileType.String
	if m.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	if m.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
	}
	return &m, nil
}
