package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// LearningLogStore defines the interface for learning activity storage.
type LearningLogStore interface {
	// Insert inserts a new learning log entry and sets its ID.
	Insert(ctx context.Context, l *LearningLogRecord) error
	// ListByUser returns a user's learning logs, newest first.
	ListByUser(ctx context.Context, userID, limit int) ([]LearningLogRecord, error)
	// RecentScores returns a user's most recent scored activity results,
	// newest first, for difficulty adjustment.
	RecentScores(ctx context.Context, userID, limit int) ([]int, error)
}

// LearningLogRepo provides methods for learning log operations.
// It implements the LearningLogStore interface.
type LearningLogRepo struct {
	db *sql.DB
}

// NewLearningLogRepo creates a new LearningLogRepo.
func NewLearningLogRepo(db *sql.DB) *LearningLogRepo {
	return &LearningLogRepo{db: db}
}

// Insert inserts a new learning log entry and sets its ID.
func (r *LearningLogRepo) Insert(ctx context.Context, l *LearningLogRecord) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO learning_logs (user_id, topic, activity_type, score, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		l.UserID, l.Topic, l.ActivityType, l.Score, l.DurationSecs,
	)
	if err != nil {
		return fmt.Errorf("failed to insert learning log: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted learning log id: %w", err)
	}
	l.ID = int(id)
	return nil
}

// ListByUser returns a user's learning logs, newest first.
func (r *LearningLogRepo) ListByUser(ctx context.Context, userID, limit int) ([]LearningLogRecord, error) {
	query := `SELECT id, user_id, topic, activity_type, score, duration_secs, logged_at
		 FROM learning_logs WHERE user_id = ? ORDER BY logged_at DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query learning logs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var logs []LearningLogRecord
	for rows.Next() {
		var l LearningLogRecord
		var loggedAtStr string
		if err := rows.Scan(&l.ID, &l.UserID, &l.Topic, &l.ActivityType,
			&l.Score, &l.DurationSecs, &loggedAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan learning log: %w", err)
		}
		if l.LoggedAt, err = parseTimestamp(loggedAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse logged_at timestamp: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return logs, nil
}

// RecentScores returns a user's most recent quiz and practice scores,
// newest first. Plain study entries carry no meaningful score and are
// excluded.
func (r *LearningLogRepo) RecentScores(ctx context.Context, userID, limit int) ([]int, error) {
	if limit <= 0 {
		limit = 3
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT score FROM learning_logs
		 WHERE user_id = ? AND activity_type IN ('quiz', 'practice')
		 ORDER BY logged_at DESC, id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent scores: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var scores []int
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return scores, nil
}
