// Package engine produces adaptive learning content: it combines the
// student profile, logged emotions and recent results to pick a working
// difficulty, grounds explanations in retrieved teacher material, and
// generates quizzes.
package engine

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_retriever.go -package=mocks emotiva-math/internal/engine Retriever
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_client.go -package=mocks emotiva-math/internal/engine ChatClient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"emotiva-math/internal/contextutil"
	"emotiva-math/internal/retrieval"
	"emotiva-math/internal/storage"
)

// Retriever selects relevant teacher-material chunks for a query.
type Retriever interface {
	Retrieve(ctx context.Context, q retrieval.Query) ([]retrieval.ScoredChunk, error)
}

// ChatClient generates text from a system and user prompt.
type ChatClient interface {
	ChatWithSystem(ctx context.Context, system, message string) (string, error)
}

// Engine implements the adaptive content and quiz flows.
type Engine struct {
	retriever Retriever
	chat      ChatClient // nil when the LLM is disabled
	users     storage.UserStore
	emotions  storage.EmotionStore
	logs      storage.LearningLogStore
	quizzes   storage.QuizStore
}

// New creates an Engine. A nil chat client switches explanation
// generation to the rule-based fallback.
func New(
	retriever Retriever,
	chat ChatClient,
	users storage.UserStore,
	emotions storage.EmotionStore,
	logs storage.LearningLogStore,
	quizzes storage.QuizStore,
) *Engine {
	return &Engine{
		retriever: retriever,
		chat:      chat,
		users:     users,
		emotions:  emotions,
		logs:      logs,
		quizzes:   quizzes,
	}
}

// ContentRequest asks for adaptive study content.
type ContentRequest struct {
	UserID  int    `json:"user_id"`
	Topic   string `json:"topic"`
	Emotion string `json:"emotion,omitempty"` // overrides the latest logged emotion
	Query   string `json:"query,omitempty"`   // free-form question, defaults to "explain <topic>"
}

// SourceRef cites one piece of teacher material used for an answer.
type SourceRef struct {
	Title  string  `json:"title"`
	Topic  string  `json:"topic"`
	Level  string  `json:"level"`
	Author string  `json:"author"`
	Score  float64 `json:"score"`
}

// ContentResponse is the adaptive content produced for a student.
type ContentResponse struct {
	Topic          string      `json:"topic"`
	Level          string      `json:"level"`
	Emotion        string      `json:"emotion"`
	Content        string      `json:"content"`
	Grounded       bool        `json:"grounded"`
	Sources        []SourceRef `json:"sources"`
	Motivation     string      `json:"motivation"`
	StudyTip       string      `json:"study_tip"`
	Recommendation string      `json:"recommendation"`
}

// GenerateContent builds adaptive study content for one student and topic.
// When retrieval finds no teacher material the engine declines rather
// than answering from nothing.
func (e *Engine) GenerateContent(ctx context.Context, req ContentRequest) (ContentResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	topic := strings.ToLower(strings.TrimSpace(req.Topic))
	if !ValidTopic(topic) {
		return ContentResponse{}, &ValidationError{Field: "topic", Message: "unknown topic"}
	}
	if req.Emotion != "" && !ValidEmotion(req.Emotion) {
		return ContentResponse{}, &ValidationError{Field: "emotion", Message: "unknown emotion"}
	}

	user, err := e.users.GetByID(ctx, req.UserID)
	if errors.Is(err, storage.ErrNotFound) {
		return ContentResponse{}, fmt.Errorf("%w: user %d", ErrNotFound, req.UserID)
	}
	if err != nil {
		return ContentResponse{}, fmt.Errorf("failed to load user: %w", err)
	}

	emotion := strings.ToLower(req.Emotion)
	if emotion == "" {
		emotion, err = e.emotions.LatestByUser(ctx, req.UserID)
		if err != nil {
			return ContentResponse{}, fmt.Errorf("failed to load latest emotion: %w", err)
		}
	}
	if emotion == "" {
		emotion = "neutral"
	}

	scores, err := e.logs.RecentScores(ctx, req.UserID, 3)
	if err != nil {
		return ContentResponse{}, fmt.Errorf("failed to load recent scores: %w", err)
	}

	level := AdjustDifficulty(user.Level, emotion, scores)
	logger.InfoContext(ctx, "generating adaptive content",
		"user_id", req.UserID,
		"topic", topic,
		"emotion", emotion,
		"base_level", user.Level,
		"working_level", level,
	)

	queryText := req.Query
	if strings.TrimSpace(queryText) == "" {
		queryText = topic
	}
	chunks, err := e.retriever.Retrieve(ctx, retrieval.Query{
		Text:  queryText,
		Topic: topic,
		Level: level,
	})
	if err != nil {
		return ContentResponse{}, fmt.Errorf("retrieval failed: %w", err)
	}

	resp := ContentResponse{
		Topic:          topic,
		Level:          level,
		Emotion:        emotion,
		Sources:        sourceRefs(chunks),
		Motivation:     motivationFor(emotion),
		StudyTip:       studyTip(user.LearningStyle),
		Recommendation: recommendation(topic, scores),
	}

	if len(chunks) == 0 {
		logger.InfoContext(ctx, "no teacher material for topic", "topic", topic)
		resp.Grounded = false
		resp.Content = fmt.Sprintf(
			"No teacher material is available for %s yet. Ask your teacher to upload it, or pick another topic.",
			topic)
		return resp, nil
	}

	resp.Grounded = true
	if e.chat == nil {
		resp.Content = ruleBasedExplanation(topic, level, chunks)
		return resp, nil
	}

	prompt := buildExplanationPrompt(topic, level, user.LearningStyle, emotion, req.Query, chunks)
	content, err := e.chat.ChatWithSystem(ctx, tutorSystemPrompt, prompt)
	if err != nil {
		logger.ErrorContext(ctx, "llm content generation failed", "error", err)
		return ContentResponse{}, fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	resp.Content = content
	return resp, nil
}

// ruleBasedExplanation is the LLM-free rendition: the retrieved material
// verbatim, plus the topic formulas.
func ruleBasedExplanation(topic, level string, chunks []retrieval.ScoredChunk) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Study material for %s (%s level):\n\n", topic, level))
	for _, chunk := range chunks {
		b.WriteString(fmt.Sprintf("From \"%s\" by %s:\n%s\n\n", chunk.Metadata.Title, chunk.Metadata.Author, chunk.Text))
	}
	if formula := Formula(topic); formula != "" {
		b.WriteString("Key formulas: " + formula)
	}
	return strings.TrimSpace(b.String())
}

func sourceRefs(chunks []retrieval.ScoredChunk) []SourceRef {
	refs := make([]SourceRef, 0, len(chunks))
	for _, chunk := range chunks {
		refs = append(refs, SourceRef{
			Title:  chunk.Metadata.Title,
			Topic:  chunk.Metadata.Topic,
			Level:  chunk.Metadata.Level,
			Author: chunk.Metadata.Author,
			Score:  chunk.Score,
		})
	}
	return refs
}

// recommendation suggests what to do after this session based on the
// student's recent scores.
func recommendation(topic string, scores []int) string {
	next := NextTopic(topic)
	if len(scores) == 0 {
		return fmt.Sprintf("Try a short quiz on %s to see where you stand.", topic)
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	avg := float64(sum) / float64(len(scores))
	if avg >= 80 && next != "" {
		return fmt.Sprintf("Your recent scores are strong. You are ready to move on to %s.", next)
	}
	return fmt.Sprintf("Keep practicing %s before moving on.", topic)
}
