package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"emotiva-math/internal/engine"
	"emotiva-math/internal/storage"
	storage_mocks "emotiva-math/internal/storage/mocks"
)

// stubQuizService returns canned questions and results.
type stubQuizService struct {
	questions   []storage.QuizQuestionRecord
	result      engine.QuizResult
	generateErr error
	submitErr   error
}

func (s *stubQuizService) GenerateQuiz(ctx context.Context, req engine.QuizRequest) ([]storage.QuizQuestionRecord, error) {
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	return s.questions, nil
}

func (s *stubQuizService) SubmitQuiz(ctx context.Context, sub engine.QuizSubmission) (engine.QuizResult, error) {
	if s.submitErr != nil {
		return engine.QuizResult{}, s.submitErr
	}
	return s.result, nil
}

func TestQuizHandler_GenerateHidesAnswers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := &stubQuizService{
		questions: []storage.QuizQuestionRecord{
			{
				ID:            1,
				Topic:         "cube",
				Level:         "beginner",
				Question:      "What is the volume of a cube with side 3?",
				OptionA:       "9",
				OptionB:       "27",
				OptionC:       "18",
				OptionD:       "81",
				CorrectOption: "B",
				Explanation:   "Volume is side cubed, 3^3 = 27.",
			},
		},
	}
	handler := NewQuizHandler(service, storage_mocks.NewMockQuizStore(ctrl))

	req := postJSON(t, "/api/quiz/generate", engine.QuizRequest{Topic: "cube"})
	w := httptest.NewRecorder()
	handler.Generate(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Generate() status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
	}
	body := w.Body.Bytes()
	if bytes.Contains(body, []byte("correct_option")) {
		t.Error("Generate() response leaks correct_option")
	}
	if bytes.Contains(body, []byte("explanation")) {
		t.Error("Generate() response leaks explanation")
	}
	if !bytes.Contains(body, []byte("What is the volume of a cube with side 3?")) {
		t.Error("Generate() response missing question text")
	}
}

func TestQuizHandler_GenerateErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "no material", err: engine.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "llm disabled", err: engine.ErrExternalService, wantStatus: http.StatusBadGateway},
		{name: "bad topic", err: &engine.ValidationError{Field: "topic", Message: "unknown topic"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := NewQuizHandler(&stubQuizService{generateErr: tt.err}, storage_mocks.NewMockQuizStore(ctrl))

			w := httptest.NewRecorder()
			handler.Generate(w, postJSON(t, "/api/quiz/generate", engine.QuizRequest{Topic: "cube"}))

			if w.Code != tt.wantStatus {
				t.Errorf("Generate() status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestQuizHandler_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := &stubQuizService{
		result: engine.QuizResult{
			AttemptID:      4,
			TotalQuestions: 2,
			Correct:        1,
			Wrong:          1,
			Score:          50,
		},
	}
	handler := NewQuizHandler(service, storage_mocks.NewMockQuizStore(ctrl))

	sub := engine.QuizSubmission{
		UserID: 1,
		Topic:  "cube",
		Answers: []engine.QuizAnswer{
			{QuestionID: 1, Answer: "B"},
			{QuestionID: 2, Answer: "A"},
		},
	}
	w := httptest.NewRecorder()
	handler.Submit(w, postJSON(t, "/api/quiz/submit", sub))

	if w.Code != http.StatusOK {
		t.Fatalf("Submit() status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"attempt_id":4`)) {
		t.Errorf("Submit() response missing attempt id, body %s", w.Body.String())
	}
}

func TestQuizHandler_SubmitRequiresUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewQuizHandler(&stubQuizService{}, storage_mocks.NewMockQuizStore(ctrl))

	w := httptest.NewRecorder()
	handler.Submit(w, postJSON(t, "/api/quiz/submit", engine.QuizSubmission{Topic: "cube"}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Submit() status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestQuizHandler_Attempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storage_mocks.NewMockQuizStore(ctrl)
	mockStore.EXPECT().ListAttemptsByUser(gomock.Any(), 3).Return([]storage.QuizAttemptRecord{
		{ID: 2, UserID: 3, Topic: "cube", Score: 100},
		{ID: 1, UserID: 3, Topic: "cube", Score: 50},
	}, nil)

	handler := NewQuizHandler(&stubQuizService{}, mockStore)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/quiz/attempts/3", nil), "userID", "3")
	w := httptest.NewRecorder()
	handler.Attempts(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Attempts() status = %d, want %d", w.Code, http.StatusOK)
	}
}
