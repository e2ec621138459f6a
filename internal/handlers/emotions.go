package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"emotiva-math/internal/engine"
	"emotiva-math/internal/storage"
)

// EmotionHandler records and lists self-reported emotions.
type EmotionHandler struct {
	emotions storage.EmotionStore
}

// NewEmotionHandler creates a new EmotionHandler.
func NewEmotionHandler(emotions storage.EmotionStore) *EmotionHandler {
	return &EmotionHandler{emotions: emotions}
}

// EmotionRequest is the payload for logging an emotion.
type EmotionRequest struct {
	UserID  int    `json:"user_id"`
	Emotion string `json:"emotion"`
	Context string `json:"context,omitempty"`
}

// Create logs one emotion entry.
func (h *EmotionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req EmotionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID <= 0 {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if !engine.ValidEmotion(req.Emotion) {
		respondError(w, http.StatusBadRequest, "emotion must be anxious, confused, neutral or confident")
		return
	}

	record := &storage.EmotionRecord{
		UserID:  req.UserID,
		Emotion: strings.ToLower(req.Emotion),
		Context: req.Context,
	}
	if err := h.emotions.Insert(r.Context(), record); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to log emotion")
		return
	}
	respond(w, http.StatusCreated, "emotion logged", record)
}

// ListByUser returns a user's emotion history, newest first.
func (h *EmotionHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	records, err := h.emotions.ListByUser(r.Context(), userID, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list emotions")
		return
	}
	if records == nil {
		records = []storage.EmotionRecord{}
	}
	respond(w, http.StatusOK, "", records)
}
