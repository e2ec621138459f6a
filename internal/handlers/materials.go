package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"emotiva-math/internal/contextutil"
	"emotiva-math/internal/extract"
	"emotiva-math/internal/storage"
)

// maxUploadBytes caps material uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// Reloader rebuilds the retrieval index after material changes.
type Reloader interface {
	Reload(ctx context.Context) error
}

// MaterialHandler handles teacher material CRUD, search and uploads.
type MaterialHandler struct {
	materials storage.MaterialStore
	extractor *extract.Extractor
	reloader  Reloader
	uploadDir string
}

// NewMaterialHandler creates a new MaterialHandler.
func NewMaterialHandler(materials storage.MaterialStore, extractor *extract.Extractor, reloader Reloader, uploadDir string) *MaterialHandler {
	return &MaterialHandler{
		materials: materials,
		extractor: extractor,
		reloader:  reloader,
		uploadDir: uploadDir,
	}
}

// MaterialRequest is the JSON payload for creating or updating a material.
type MaterialRequest struct {
	Title    string `json:"title"`
	Topic    string `json:"topic"`
	FullText string `json:"full_text"`
	Level    string `json:"level"`
	Author   string `json:"author"`
}

func (req *MaterialRequest) validate() string {
	if strings.TrimSpace(req.Title) == "" {
		return "title is required"
	}
	if strings.TrimSpace(req.Topic) == "" {
		return "topic is required"
	}
	if strings.TrimSpace(req.Level) == "" {
		return "level is required"
	}
	return ""
}

// List returns materials, optionally filtered by topic and level.
func (h *MaterialHandler) List(w http.ResponseWriter, r *http.Request) {
	materials, err := h.materials.List(r.Context(), r.URL.Query().Get("topic"), r.URL.Query().Get("level"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list materials")
		return
	}
	if materials == nil {
		materials = []storage.MaterialRecord{}
	}
	respond(w, http.StatusOK, "", materials)
}

// Search returns materials matching a keyword.
func (h *MaterialHandler) Search(w http.ResponseWriter, r *http.Request) {
	keyword := strings.TrimSpace(r.URL.Query().Get("q"))
	if keyword == "" {
		respondError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	materials, err := h.materials.Search(r.Context(), keyword, r.URL.Query().Get("topic"), r.URL.Query().Get("level"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to search materials")
		return
	}
	if materials == nil {
		materials = []storage.MaterialRecord{}
	}
	respond(w, http.StatusOK, "", materials)
}

// Get returns one material by ID.
func (h *MaterialHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid material id")
		return
	}

	material, err := h.materials.GetByID(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		respondError(w, http.StatusNotFound, "material not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load material")
		return
	}
	respond(w, http.StatusOK, "", material)
}

// Create stores a new material. It accepts a JSON body, or a multipart
// form with a file field whose text is extracted before storage.
func (h *MaterialHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var record *storage.MaterialRecord
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		rec, errMsg := h.materialFromUpload(r)
		if errMsg != "" {
			respondError(w, http.StatusBadRequest, errMsg)
			return
		}
		record = rec
	} else {
		var req MaterialRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := req.validate(); msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}
		if strings.TrimSpace(req.FullText) == "" {
			respondError(w, http.StatusBadRequest, "full_text is required")
			return
		}
		record = &storage.MaterialRecord{
			Title:    req.Title,
			Topic:    req.Topic,
			FullText: req.FullText,
			Level:    req.Level,
			Author:   req.Author,
		}
	}

	if err := h.materials.Create(ctx, record); err != nil {
		logger.ErrorContext(ctx, "failed to create material", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create material")
		return
	}

	h.reloadIndex(r)
	logger.InfoContext(ctx, "material created", "material_id", record.ID, "topic", record.Topic)
	respond(w, http.StatusCreated, "material created", record)
}

// materialFromUpload reads a multipart form, saves the file under a
// generated name, and extracts its text. Returns an error message for
// client mistakes.
func (h *MaterialHandler) materialFromUpload(r *http.Request) (*storage.MaterialRecord, string) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, "invalid multipart form"
	}

	req := MaterialRequest{
		Title:  r.FormValue("title"),
		Topic:  r.FormValue("topic"),
		Level:  r.FormValue("level"),
		Author: r.FormValue("author"),
	}
	if msg := req.validate(); msg != "" {
		return nil, msg
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "file field is required"
	}
	defer func() {
		_ = file.Close()
	}()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return nil, "failed to read uploaded file"
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	text, err := h.extractor.Text(content, ext)
	if errors.Is(err, extract.ErrUnsupportedType) {
		return nil, fmt.Sprintf("unsupported file type %s, expected one of %s",
			ext, strings.Join(extract.SupportedExtensions(), ", "))
	}
	if errors.Is(err, extract.ErrNoText) {
		return nil, "uploaded file contains no extractable text"
	}
	if err != nil {
		logger.ErrorContext(ctx, "extraction failed", "file", header.Filename, "error", err)
		return nil, "failed to extract text from file"
	}

	storedName := uuid.NewString() + ext
	storedPath := filepath.Join(h.uploadDir, storedName)
	if err := os.MkdirAll(h.uploadDir, 0o755); err == nil {
		if err := os.WriteFile(storedPath, content, 0o644); err != nil {
			logger.WarnContext(ctx, "failed to keep uploaded file", "path", storedPath, "error", err)
			storedPath = ""
		}
	} else {
		logger.WarnContext(ctx, "failed to create upload dir", "dir", h.uploadDir, "error", err)
		storedPath = ""
	}

	return &storage.MaterialRecord{
		Title:    req.Title,
		Topic:    req.Topic,
		FullText: text,
		FilePath: storedPath,
		FileName: header.Filename,
		FileType: strings.TrimPrefix(ext, "."),
		Level:    req.Level,
		Author:   req.Author,
	}, ""
}

// Update replaces a material's editable fields.
func (h *MaterialHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid material id")
		return
	}

	var req MaterialRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	record, err := h.materials.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		respondError(w, http.StatusNotFound, "material not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load material")
		return
	}

	record.Title = req.Title
	record.Topic = req.Topic
	record.Level = req.Level
	record.Author = req.Author
	if strings.TrimSpace(req.FullText) != "" {
		record.FullText = req.FullText
	}

	if err := h.materials.Update(ctx, record); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update material")
		return
	}

	h.reloadIndex(r)
	respond(w, http.StatusOK, "material updated", record)
}

// Delete removes a material.
func (h *MaterialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid material id")
		return
	}

	if err := h.materials.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "material not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to delete material")
		return
	}

	h.reloadIndex(r)
	respond(w, http.StatusOK, "material deleted", nil)
}

// reloadIndex refreshes the retrieval cache after a write. A failed
// reload is logged, not surfaced: the service keeps serving the
// previous cache.
func (h *MaterialHandler) reloadIndex(r *http.Request) {
	ctx := r.Context()
	if err := h.reloader.Reload(ctx); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "index reload failed", "error", err)
	}
}
