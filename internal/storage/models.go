package storage

import "time"

// UserRecord represents a user account with its learning profile.
type UserRecord struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	PasswordHash  string    `json:"-"`
	Role          string    `json:"role"`           // "teacher" or "student"
	LearningStyle string    `json:"learning_style"` // visual, auditory, kinesthetic (students only)
	Level         string    `json:"level"`          // beginner, intermediate, advanced
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MaterialRecord represents a unit of teacher-authored subject content.
// FullText holds the extracted plain text; file uploads keep their
// bookkeeping alongside it.
type MaterialRecord struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Topic     string    `json:"topic"`
	FullText  string    `json:"full_text"`
	FilePath  string    `json:"file_path,omitempty"`
	FileName  string    `json:"file_name,omitempty"`
	FileType  string    `json:"file_type,omitempty"`
	Level     string    `json:"level"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmotionRecord represents one self-reported emotion log entry.
type EmotionRecord struct {
	ID       int       `json:"id"`
	UserID   int       `json:"user_id"`
	Emotion  string    `json:"emotion"` // anxious, confused, neutral, confident
	Context  string    `json:"context,omitempty"`
	LoggedAt time.Time `json:"logged_at"`
}

// LearningLogRecord represents one learning activity entry.
type LearningLogRecord struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	Topic        string    `json:"topic"`
	ActivityType string    `json:"activity_type"` // study, practice, quiz
	Score        int       `json:"score"`
	DurationSecs int       `json:"duration_secs"`
	LoggedAt     time.Time `json:"logged_at"`
}

// QuizQuestionRecord represents one generated multiple-choice question.
type QuizQuestionRecord struct {
	ID            int       `json:"id"`
	Topic         string    `json:"topic"`
	Level         string    `json:"level"`
	Question      string    `json:"question"`
	OptionA       string    `json:"option_a"`
	OptionB       string    `json:"option_b"`
	OptionC       string    `json:"option_c"`
	OptionD       string    `json:"option_d"`
	CorrectOption string    `json:"correct_option,omitempty"` // A, B, C or D
	Explanation   string    `json:"explanation,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuizAttemptRecord represents one completed quiz attempt.
type QuizAttemptRecord struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	Topic          string    `json:"topic"`
	Level          string    `json:"level"`
	TotalQuestions int       `json:"total_questions"`
	Correct        int       `json:"correct"`
	Wrong          int       `json:"wrong"`
	Score          float64   `json:"score"` // 0-100
	DurationSecs   int       `json:"duration_secs"`
	CompletedAt    time.Time `json:"completed_at"`
}

// parseTimestamp parses a SQLite DATETIME column value.
func parseTimestamp(value string) (time.Time, error) {
	ts, err := time.Parse("2006-01-02 15:04:05", value)
	if err == nil {
		return ts, nil
	}
	// SQLite might use a different format depending on how the value was written
	return time.Parse(time.RFC3339, value)
}
