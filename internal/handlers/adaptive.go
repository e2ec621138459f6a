package handlers

import (
	"context"
	"net/http"

	"emotiva-math/internal/engine"
)

// ContentGenerator produces adaptive study content.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req engine.ContentRequest) (engine.ContentResponse, error)
}

// AdaptiveHandler serves adaptive content requests.
type AdaptiveHandler struct {
	engine ContentGenerator
}

// NewAdaptiveHandler creates a new AdaptiveHandler.
func NewAdaptiveHandler(generator ContentGenerator) *AdaptiveHandler {
	return &AdaptiveHandler{engine: generator}
}

// Content generates adaptive study content for a student and topic.
func (h *AdaptiveHandler) Content(w http.ResponseWriter, r *http.Request) {
	var req engine.ContentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID <= 0 {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if req.Topic == "" {
		respondError(w, http.StatusBadRequest, "topic is required")
		return
	}

	resp, err := h.engine.GenerateContent(r.Context(), req)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respond(w, http.StatusOK, "", resp)
}
