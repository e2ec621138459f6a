package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"emotiva-math/internal/contextutil"
	"emotiva-math/internal/retrieval"
	"emotiva-math/internal/storage"
)

const (
	defaultQuizCount = 3
	maxQuizCount     = 10
)

// QuizRequest asks for generated quiz questions.
type QuizRequest struct {
	Topic string `json:"topic"`
	Level string `json:"level,omitempty"`
	Count int    `json:"count,omitempty"`
}

// quizItem is the JSON shape the LLM is asked to produce.
type quizItem struct {
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option"`
	Explanation   string `json:"explanation"`
}

// GenerateQuiz creates and persists multiple-choice questions grounded
// in retrieved teacher material.
func (e *Engine) GenerateQuiz(ctx context.Context, req QuizRequest) ([]storage.QuizQuestionRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	topic := strings.ToLower(strings.TrimSpace(req.Topic))
	if !ValidTopic(topic) {
		return nil, &ValidationError{Field: "topic", Message: "unknown topic"}
	}
	level := strings.ToLower(req.Level)
	if level == "" {
		level = LevelBeginner
	}
	if !ValidLevel(level) {
		return nil, &ValidationError{Field: "level", Message: "unknown level"}
	}
	count := req.Count
	if count <= 0 {
		count = defaultQuizCount
	}
	if count > maxQuizCount {
		count = maxQuizCount
	}

	if e.chat == nil {
		return nil, fmt.Errorf("%w: llm is disabled", ErrExternalService)
	}

	chunks, err := e.retriever.Retrieve(ctx, retrieval.Query{
		Text:  topic,
		Topic: topic,
		Level: level,
		TopK:  count,
	})
	if err != nil {
		return nil, fmt.Errorf("retrieval failed: %w", err)
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: no teacher material for topic %s", ErrNotFound, topic)
	}

	prompt := buildQuizPrompt(topic, level, count, chunks)
	raw, err := e.chat.ChatWithSystem(ctx, tutorSystemPrompt, prompt)
	if err != nil {
		logger.ErrorContext(ctx, "llm quiz generation failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	items, err := parseQuizItems(raw)
	if err != nil {
		logger.ErrorContext(ctx, "malformed quiz response", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	if len(items) > count {
		items = items[:count]
	}

	records := make([]storage.QuizQuestionRecord, 0, len(items))
	for _, item := range items {
		records = append(records, storage.QuizQuestionRecord{
			Topic:         topic,
			Level:         level,
			Question:      item.Question,
			OptionA:       item.OptionA,
			OptionB:       item.OptionB,
			OptionC:       item.OptionC,
			OptionD:       item.OptionD,
			CorrectOption: strings.ToUpper(item.CorrectOption),
			Explanation:   item.Explanation,
		})
	}

	inserted, err := e.quizzes.InsertQuestions(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("failed to store quiz questions: %w", err)
	}
	logger.InfoContext(ctx, "quiz generated", "topic", topic, "level", level, "questions", len(inserted))
	return inserted, nil
}

// parseQuizItems decodes the LLM's JSON array, tolerating a markdown
// code fence around it, and validates every question.
func parseQuizItems(raw string) ([]quizItem, error) {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	var items []quizItem
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("quiz response is not a JSON array: %w", err)
	}
	if len(items) == 0 {
		return nil, errors.New("quiz response contains no questions")
	}

	for i, item := range items {
		if strings.TrimSpace(item.Question) == "" {
			return nil, fmt.Errorf("question %d has no text", i+1)
		}
		if item.OptionA == "" || item.OptionB == "" || item.OptionC == "" || item.OptionD == "" {
			return nil, fmt.Errorf("question %d is missing options", i+1)
		}
		correct := strings.ToUpper(item.CorrectOption)
		if correct != "A" && correct != "B" && correct != "C" && correct != "D" {
			return nil, fmt.Errorf("question %d has invalid correct option %q", i+1, item.CorrectOption)
		}
	}
	return items, nil
}

// QuizAnswer is one submitted answer.
type QuizAnswer struct {
	QuestionID int    `json:"question_id"`
	Answer     string `json:"answer"`
}

// QuizSubmission is a completed quiz.
type QuizSubmission struct {
	UserID       int          `json:"user_id"`
	Topic        string       `json:"topic"`
	Level        string       `json:"level"`
	Answers      []QuizAnswer `json:"answers"`
	DurationSecs int          `json:"duration_secs"`
}

// QuizAnswerResult reports grading for one question.
type QuizAnswerResult struct {
	QuestionID    int    `json:"question_id"`
	Correct       bool   `json:"correct"`
	CorrectOption string `json:"correct_option"`
	Explanation   string `json:"explanation,omitempty"`
}

// QuizResult is the graded outcome of a submission.
type QuizResult struct {
	AttemptID      int                `json:"attempt_id"`
	TotalQuestions int                `json:"total_questions"`
	Correct        int                `json:"correct"`
	Wrong          int                `json:"wrong"`
	Score          float64            `json:"score"`
	Answers        []QuizAnswerResult `json:"answers"`
}

// SubmitQuiz grades a submission, stores the attempt and logs it as a
// quiz activity so future difficulty adjustment sees the result.
func (e *Engine) SubmitQuiz(ctx context.Context, sub QuizSubmission) (QuizResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if len(sub.Answers) == 0 {
		return QuizResult{}, &ValidationError{Field: "answers", Message: "no answers submitted"}
	}
	topic := strings.ToLower(strings.TrimSpace(sub.Topic))
	if !ValidTopic(topic) {
		return QuizResult{}, &ValidationError{Field: "topic", Message: "unknown topic"}
	}
	if _, err := e.users.GetByID(ctx, sub.UserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return QuizResult{}, fmt.Errorf("%w: user %d", ErrNotFound, sub.UserID)
		}
		return QuizResult{}, fmt.Errorf("failed to load user: %w", err)
	}

	result := QuizResult{
		TotalQuestions: len(sub.Answers),
		Answers:        make([]QuizAnswerResult, 0, len(sub.Answers)),
	}
	for _, answer := range sub.Answers {
		question, err := e.quizzes.GetQuestion(ctx, answer.QuestionID)
		if errors.Is(err, storage.ErrNotFound) {
			return QuizResult{}, fmt.Errorf("%w: question %d", ErrNotFound, answer.QuestionID)
		}
		if err != nil {
			return QuizResult{}, fmt.Errorf("failed to load question: %w", err)
		}

		correct := strings.EqualFold(answer.Answer, question.CorrectOption)
		if correct {
			result.Correct++
		} else {
			result.Wrong++
		}
		result.Answers = append(result.Answers, QuizAnswerResult{
			QuestionID:    question.ID,
			Correct:       correct,
			CorrectOption: question.CorrectOption,
			Explanation:   question.Explanation,
		})
	}
	result.Score = float64(result.Correct) / float64(result.TotalQuestions) * 100

	attempt := storage.QuizAttemptRecord{
		UserID:         sub.UserID,
		Topic:          topic,
		Level:          strings.ToLower(sub.Level),
		TotalQuestions: result.TotalQuestions,
		Correct:        result.Correct,
		Wrong:          result.Wrong,
		Score:          result.Score,
		DurationSecs:   sub.DurationSecs,
	}
	if err := e.quizzes.InsertAttempt(ctx, &attempt); err != nil {
		return QuizResult{}, fmt.Errorf("failed to store quiz attempt: %w", err)
	}
	result.AttemptID = attempt.ID

	log := storage.LearningLogRecord{
		UserID:       sub.UserID,
		Topic:        topic,
		ActivityType: "quiz",
		Score:        int(result.Score + 0.5),
		DurationSecs: sub.DurationSecs,
	}
	if err := e.logs.Insert(ctx, &log); err != nil {
		return QuizResult{}, fmt.Errorf("failed to log quiz activity: %w", err)
	}

	logger.InfoContext(ctx, "quiz submitted",
		"user_id", sub.UserID,
		"topic", topic,
		"score", result.Score,
	)
	return result, nil
}
