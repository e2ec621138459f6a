package storage

import (
	"context"
	"errors"
	"testing"
)

func TestQuizRepoInsertAndGetQuestions(t *testing.T) {
	db := testDB(t)
	repo := NewQuizRepo(db)
	ctx := context.Background()

	questions := []QuizQuestionRecord{
		{
			Topic:         "cube",
			Level:         "beginner",
			Question:      "How many faces does a cube have?",
			OptionA:       "4",
			OptionB:       "6",
			OptionC:       "8",
			OptionD:       "12",
			CorrectOption: "B",
			Explanation:   "A cube has six square faces.",
		},
		{
			Topic:         "cube",
			Level:         "beginner",
			Question:      "What is the volume of a cube with side 2?",
			OptionA:       "4",
			OptionB:       "6",
			OptionC:       "8",
			OptionD:       "16",
			CorrectOption: "C",
		},
	}

	inserted, err := repo.InsertQuestions(ctx, questions)
	if err != nil {
		t.Fatalf("InsertQuestions() error = %v", err)
	}
	if len(inserted) != 2 {
		t.Fatalf("InsertQuestions() returned %d records, want 2", len(inserted))
	}
	for i, q := range inserted {
		if q.ID == 0 {
			t.Errorf("inserted[%d] has no ID", i)
		}
	}

	got, err := repo.GetQuestion(ctx, inserted[0].ID)
	if err != nil {
		t.Fatalf("GetQuestion() error = %v", err)
	}
	if got.CorrectOption != "B" || got.Explanation != "A cube has six square faces." {
		t.Errorf("GetQuestion() = %+v", got)
	}

	// Second question was stored with a null explanation.
	second, err := repo.GetQuestion(ctx, inserted[1].ID)
	if err != nil {
		t.Fatalf("GetQuestion() error = %v", err)
	}
	if second.Explanation != "" {
		t.Errorf("GetQuestion() explanation = %q, want empty", second.Explanation)
	}

	if _, err := repo.GetQuestion(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetQuestion(missing) error = %v, want ErrNotFound", err)
	}
}

func TestQuizRepoAttempts(t *testing.T) {
	db := testDB(t)
	repo := NewQuizRepo(db)
	ctx := context.Background()
	userID := seedUser(t, db, "quiz@example.com")

	attempts := []QuizAttemptRecord{
		{UserID: userID, Topic: "cube", Level: "beginner", TotalQuestions: 5, Correct: 3, Wrong: 2, Score: 60, DurationSecs: 180},
		{UserID: userID, Topic: "cube", Level: "beginner", TotalQuestions: 5, Correct: 5, Wrong: 0, Score: 100, DurationSecs: 150},
	}
	for i := range attempts {
		if err := repo.InsertAttempt(ctx, &attempts[i]); err != nil {
			t.Fatalf("InsertAttempt() error = %v", err)
		}
		if attempts[i].ID == 0 {
			t.Fatal("InsertAttempt() did not set ID")
		}
	}

	got, err := repo.ListAttemptsByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListAttemptsByUser() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListAttemptsByUser() returned %d attempts, want 2", len(got))
	}
	if got[0].Score != 100 {
		t.Errorf("ListAttemptsByUser() first score = %v, want 100 (newest first)", got[0].Score)
	}
	if got[0].CompletedAt.IsZero() {
		t.Error("ListAttemptsByUser() completed_at not populated")
	}

	none, err := repo.ListAttemptsByUser(ctx, 9999)
	if err != nil {
		t.Fatalf("ListAttemptsByUser(missing user) error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("ListAttemptsByUser(missing user) = %+v, want empty", none)
	}
}
