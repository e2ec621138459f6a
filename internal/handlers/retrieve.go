package handlers

import (
	"context"
	"net/http"
	"strings"

	"emotiva-math/internal/retrieval"
)

// Retriever selects relevant teacher-material chunks for a query.
type Retriever interface {
	Retrieve(ctx context.Context, q retrieval.Query) ([]retrieval.ScoredChunk, error)
}

// RetrievalHandler exposes the context selector directly, as an
// inspection aid for teachers and moderators.
type RetrievalHandler struct {
	retriever Retriever
}

// NewRetrievalHandler creates a new RetrievalHandler.
func NewRetrievalHandler(retriever Retriever) *RetrievalHandler {
	return &RetrievalHandler{retriever: retriever}
}

// RetrieveRequest is the payload for a direct retrieval query.
type RetrieveRequest struct {
	Query string `json:"query"`
	Topic string `json:"topic,omitempty"`
	Level string `json:"level,omitempty"`
	TopK  int    `json:"top_k,omitempty"`
}

// Query runs the retrieval pipeline and returns ranked chunks.
func (h *RetrievalHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req RetrieveRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		respondError(w, http.StatusBadRequest, "query is required")
		return
	}
	if req.TopK < 0 {
		respondError(w, http.StatusBadRequest, "top_k must not be negative")
		return
	}

	chunks, err := h.retriever.Retrieve(r.Context(), retrieval.Query{
		Text:  req.Query,
		Topic: req.Topic,
		Level: req.Level,
		TopK:  req.TopK,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "retrieval failed")
		return
	}
	respond(w, http.StatusOK, "", chunks)
}
