package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"emotiva-math/internal/engine"
	"emotiva-math/internal/storage"
)

// QuizService generates and grades quizzes.
type QuizService interface {
	GenerateQuiz(ctx context.Context, req engine.QuizRequest) ([]storage.QuizQuestionRecord, error)
	SubmitQuiz(ctx context.Context, sub engine.QuizSubmission) (engine.QuizResult, error)
}

// QuizHandler serves quiz generation, submission and history.
type QuizHandler struct {
	quizzes  QuizService
	attempts storage.QuizStore
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizzes QuizService, attempts storage.QuizStore) *QuizHandler {
	return &QuizHandler{quizzes: quizzes, attempts: attempts}
}

// questionView hides the correct answer while a quiz is in progress.
type questionView struct {
	ID       int    `json:"id"`
	Topic    string `json:"topic"`
	Level    string `json:"level"`
	Question string `json:"question"`
	OptionA  string `json:"option_a"`
	OptionB  string `json:"option_b"`
	OptionC  string `json:"option_c"`
	OptionD  string `json:"option_d"`
}

// Generate creates a new quiz for a topic.
func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req engine.QuizRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	questions, err := h.quizzes.GenerateQuiz(r.Context(), req)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	views := make([]questionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, questionView{
			ID:       q.ID,
			Topic:    q.Topic,
			Level:    q.Level,
			Question: q.Question,
			OptionA:  q.OptionA,
			OptionB:  q.OptionB,
			OptionC:  q.OptionC,
			OptionD:  q.OptionD,
		})
	}
	respond(w, http.StatusCreated, "quiz generated", views)
}

// Submit grades a completed quiz.
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var sub engine.QuizSubmission
	if err := decodeJSON(r, &sub); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if sub.UserID <= 0 {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	result, err := h.quizzes.SubmitQuiz(r.Context(), sub)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respond(w, http.StatusOK, "quiz graded", result)
}

// Attempts returns a user's quiz history, newest first.
func (h *QuizHandler) Attempts(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	attempts, err := h.attempts.ListAttemptsByUser(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list attempts")
		return
	}
	if attempts == nil {
		attempts = []storage.QuizAttemptRecord{}
	}
	respond(w, http.StatusOK, "", attempts)
}
