package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// EmotionStore defines the interface for emotion log storage operations.
type EmotionStore interface {
	// Insert inserts a new emotion log entry and sets its ID.
	Insert(ctx context.Context, e *EmotionRecord) error
	// ListByUser returns a user's emotion logs, newest first, at most limit
	// entries (no limit if limit <= 0).
	ListByUser(ctx context.Context, userID, limit int) ([]EmotionRecord, error)
	// LatestByUser returns a user's most recent emotion, or "" if none logged.
	LatestByUser(ctx context.Context, userID int) (string, error)
}

// EmotionRepo provides methods for emotion log operations.
// It implements the EmotionStore interface.
type EmotionRepo struct {
	db *sql.DB
}

// NewEmotionRepo creates a new EmotionRepo.
func NewEmotionRepo(db *sql.DB) *EmotionRepo {
	return &EmotionRepo{db: db}
}

// Insert inserts a new emotion log entry and sets its ID.
func (r *EmotionRepo) Insert(ctx context.Context, e *EmotionRecord) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO emotions (user_id, emotion, context) VALUES (?, ?, ?)",
		e.UserID, e.Emotion, nullable(e.Context),
	)
	if err != nil {
		return fmt.Errorf("failed to insert emotion: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted emotion id: %w", err)
	}
	e.ID = int(id)
	return nil
}

// ListByUser returns a user's emotion logs, newest first.
func (r *EmotionRepo) ListByUser(ctx context.Context, userID, limit int) ([]EmotionRecord, error) {
	query := `SELECT id, user_id, emotion, context, logged_at FROM emotions
		 WHERE user_id = ? ORDER BY logged_at DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query emotions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var emotions []EmotionRecord
	for rows.Next() {
		var e EmotionRecord
		var context sql.NullString
		var loggedAtStr string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Emotion, &context, &loggedAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan emotion: %w", err)
		}
		e.Context = context.String
		if e.LoggedAt, err = parseTimestamp(loggedAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse logged_at timestamp: %w", err)
		}
		emotions = append(emotions, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return emotions, nil
}

// LatestByUser returns a user's most recent emotion, or "" if none logged.
func (r *EmotionRepo) LatestByUser(ctx context.Context, userID int) (string, error) {
	var emotion string
	err := r.db.QueryRowContext(ctx,
		"SELECT emotion FROM emotions WHERE user_id = ? ORDER BY logged_at DESC, id DESC LIMIT 1",
		userID,
	).Scan(&emotion)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query latest emotion: %w", err)
	}
	return emotion, nil
}
