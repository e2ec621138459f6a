package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// QuizStore defines the interface for quiz storage operations.
type QuizStore interface {
	// InsertQuestions inserts generated questions in one transaction,
	// setting each record's ID.
	InsertQuestions(ctx context.Context, questions []QuizQuestionRecord) ([]QuizQuestionRecord, error)
	// GetQuestion gets a question by ID. Returns ErrNotFound if not found.
	GetQuestion(ctx context.Context, id int) (*QuizQuestionRecord, error)
	// InsertAttempt inserts a completed quiz attempt and sets its ID.
	InsertAttempt(ctx context.Context, a *QuizAttemptRecord) error
	// ListAttemptsByUser returns a user's quiz attempts, newest first.
	ListAttemptsByUser(ctx context.Context, userID int) ([]QuizAttemptRecord, error)
}

// QuizRepo provides methods for quiz operations.
// It implements the QuizStore interface.
type QuizRepo struct {
	db *sql.DB
}

// NewQuizRepo creates a new QuizRepo.
func NewQuizRepo(db *sql.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// InsertQuestions inserts generated questions in one transaction.
func (r *QuizRepo) InsertQuestions(ctx context.Context, questions []QuizQuestionRecord) ([]QuizQuestionRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	inserted := make([]QuizQuestionRecord, 0, len(questions))
	for _, q := range questions {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO quiz_questions (topic, level, question, option_a, option_b, option_c, option_d, correct_option, explanation)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			q.Topic, q.Level, q.Question, q.OptionA, q.OptionB, q.OptionC, q.OptionD,
			q.CorrectOption, nullable(q.Explanation),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert quiz question: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get inserted question id: %w", err)
		}
		q.ID = int(id)
		inserted = append(inserted, q)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit quiz questions: %w", err)
	}
	return inserted, nil
}

// GetQuestion gets a question by ID. Returns ErrNotFound if not found.
func (r *QuizRepo) GetQuestion(ctx context.Context, id int) (*QuizQuestionRecord, error) {
	var q QuizQuestionRecord
	var explanation sql.NullString
	var createdAtStr string

	err := r.db.QueryRowContext(ctx,
		`SELECT id, topic, level, question, option_a, option_b, option_c, option_d, correct_option, explanation, created_at
		 FROM quiz_questions WHERE id = ?`, id,
	).Scan(&q.ID, &q.Topic, &q.Level, &q.Question, &q.OptionA, &q.OptionB,
		&q.OptionC, &q.OptionD, &q.CorrectOption, &explanation, &createdAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query quiz question: %w", err)
	}

	q.Explanation = explanation.String
	if q.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	return &q, nil
}

// InsertAttempt inserts a completed quiz attempt and sets its ID.
func (r *QuizRepo) InsertAttempt(ctx context.Context, a *QuizAttemptRecord) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO quiz_attempts (user_id, topic, level, total_questions, correct, wrong, score, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.UserID, a.Topic, a.Level, a.TotalQuestions, a.Correct, a.Wrong, a.Score, a.DurationSecs,
	)
	if err != nil {
		return fmt.Errorf("failed to insert quiz attempt: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted attempt id: %w", err)
	}
	a.ID = int(id)
	return nil
}

// ListAttemptsByUser returns a user's quiz attempts, newest first.
func (r *QuizRepo) ListAttemptsByUser(ctx context.Context, userID int) ([]QuizAttemptRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, topic, level, total_questions, correct, wrong, score, duration_secs, completed_at
		 FROM quiz_attempts WHERE user_id = ? ORDER BY completed_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query quiz attempts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var attempts []QuizAttemptRecord
	for rows.Next() {
		var a QuizAttemptRecord
		var completedAtStr string
		if err := rows.Scan(&a.ID, &a.UserID, &a.Topic, &a.Level, &a.TotalQuestions,
			&a.Correct, &a.Wrong, &a.Score, &a.DurationSecs, &completedAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan quiz attempt: %w", err)
		}
		if a.CompletedAt, err = parseTimestamp(completedAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse completed_at timestamp: %w", err)
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return attempts, nil
}
