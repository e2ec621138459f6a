package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_user_store.go -package=mocks emotiva-math/internal/storage UserStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserStore defines the interface for user storage operations.
type UserStore interface {
	// Create inserts a new user and sets its ID.
	// Returns ErrDuplicateEmail if the email is already taken.
	Create(ctx context.Context, user *UserRecord) error
	// GetByEmail gets a user by email. Returns ErrNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*UserRecord, error)
	// GetByID gets a user by ID. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id int) (*UserRecord, error)
	// Update updates a user's profile fields (name, learning style, level).
	Update(ctx context.Context, user *UserRecord) error
}

// UserRepo provides methods for user operations.
// It implements the UserStore interface.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new user and sets its ID.
func (r *UserRepo) Create(ctx context.Context, user *UserRecord) error {
	if _, err := r.GetByEmail(ctx, user.Email); err == nil {
		return ErrDuplicateEmail
	} else if err != ErrNotFound {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, email, password_hash, role, learning_style, level)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.Name, user.Email, user.PasswordHash, user.Role,
		nullable(user.LearningStyle), user.Level,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted user id: %w", err)
	}
	user.ID = int(id)
	return nil
}

// GetByEmail gets a user by email. Returns ErrNotFound if not found.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*UserRecord, error) {
	return r.getWhere(ctx, "email = ?", email)
}

// GetByID gets a user by ID. Returns ErrNotFound if not found.
func (r *UserRepo) GetByID(ctx context.Context, id int) (*UserRecord, error) {
	return r.getWhere(ctx, "id = ?", id)
}

func (r *UserRepo) getWhere(ctx context.Context, where string, arg any) (*UserRecord, error) {
	var user UserRecord
	var learningStyle sql.NullString
	var createdAtStr, updatedAtStr string

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, role, learning_style, level, created_at, updated_at
		 FROM users WHERE `+where, arg,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role,
		&learningStyle, &user.Level, &createdAtStr, &updatedAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	user.LearningStyle = learningStyle.String
	if user.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	if user.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
	}
	return &user, nil
}

// Update updates a user's profile fields (name, learning style, level).
func (r *UserRepo) Update(ctx context.Context, user *UserRecord) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = ?, learning_style = ?, level = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		user.Name, nullable(user.LearningStyle), user.Level, user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
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

// nullable maps an empty string to NULL for optional text columns.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
