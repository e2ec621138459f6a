package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"emotiva-math/internal/storage"
)

var validActivityTypes = map[string]bool{
	"study":    true,
	"practice": true,
	"quiz":     true,
}

// LearningLogHandler records and lists learning activity.
type LearningLogHandler struct {
	logs storage.LearningLogStore
}

// NewLearningLogHandler creates a new LearningLogHandler.
func NewLearningLogHandler(logs storage.LearningLogStore) *LearningLogHandler {
	return &LearningLogHandler{logs: logs}
}

// LearningLogRequest is the payload for logging an activity.
type LearningLogRequest struct {
	UserID       int    `json:"user_id"`
	Topic        string `json:"topic"`
	ActivityType string `json:"activity_type"`
	Score        int    `json:"score,omitempty"`
	DurationSecs int    `json:"duration_secs,omitempty"`
}

// Create logs one learning activity entry.
func (h *LearningLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req LearningLogRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID <= 0 {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		respondError(w, http.StatusBadRequest, "topic is required")
		return
	}
	activity := strings.ToLower(req.ActivityType)
	if !validActivityTypes[activity] {
		respondError(w, http.StatusBadRequest, "activity_type must be study, practice or quiz")
		return
	}
	if req.Score < 0 || req.Score > 100 {
		respondError(w, http.StatusBadRequest, "score must be between 0 and 100")
		return
	}

	record := &storage.LearningLogRecord{
		UserID:       req.UserID,
		Topic:        strings.ToLower(req.Topic),
		ActivityType: activity,
		Score:        req.Score,
		DurationSecs: req.DurationSecs,
	}
	if err := h.logs.Insert(r.Context(), record); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to log activity")
		return
	}
	respond(w, http.StatusCreated, "activity logged", record)
}

// ListByUser returns a user's learning history, newest first.
func (h *LearningLogHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	records, err := h.logs.ListByUser(r.Context(), userID, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list activities")
		return
	}
	if records == nil {
		records = []storage.LearningLogRecord{}
	}
	respond(w, http.StatusOK, "", records)
}
