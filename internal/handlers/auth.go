package handlers

import (
	"errors"
	"net/http"
	"strings"

	"emotiva-math/internal/auth"
	"emotiva-math/internal/contextutil"
	"emotiva-math/internal/engine"
	"emotiva-math/internal/storage"
)

// AuthHandler handles registration, login and profile lookups.
type AuthHandler struct {
	users  storage.UserStore
	tokens *auth.TokenIssuer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users storage.UserStore, tokens *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	LearningStyle string `json:"learning_style,omitempty"`
	Level         string `json:"level,omitempty"`
}

// authResponse carries the issued token and the user profile.
type authResponse struct {
	Token string              `json:"token"`
	User  *storage.UserRecord `json:"user"`
}

// Register creates a new account and returns a token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := auth.ValidateEmail(req.Email); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := auth.ValidatePasswordStrength(req.Password); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	role := strings.ToLower(req.Role)
	if role == "" {
		role = "student"
	}
	if role != "student" && role != "teacher" {
		respondError(w, http.StatusBadRequest, "role must be student or teacher")
		return
	}

	level := strings.ToLower(req.Level)
	if level == "" {
		level = engine.LevelBeginner
	}
	if !engine.ValidLevel(level) {
		respondError(w, http.StatusBadRequest, "level must be beginner, intermediate or advanced")
		return
	}

	style := strings.ToLower(req.LearningStyle)
	switch style {
	case "", "visual", "auditory", "kinesthetic":
	default:
		respondError(w, http.StatusBadRequest, "learning_style must be visual, auditory or kinesthetic")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.ErrorContext(ctx, "failed to hash password", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	user := &storage.UserRecord{
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:  hash,
		Role:          role,
		LearningStyle: style,
		Level:         level,
	}
	if err := h.users.Create(ctx, user); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			respondError(w, http.StatusConflict, "email already registered")
			return
		}
		logger.ErrorContext(ctx, "failed to create user", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Role)
	if err != nil {
		logger.ErrorContext(ctx, "failed to issue token", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	logger.InfoContext(ctx, "user registered", "user_id", user.ID, "role", user.Role)
	respond(w, http.StatusCreated, "registered", authResponse{Token: token, User: user})
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and returns a token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, storage.ErrNotFound) {
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to load user", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrWrongPassword) {
			respondError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		logger.ErrorContext(ctx, "failed to check password", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Role)
	if err != nil {
		logger.ErrorContext(ctx, "failed to issue token", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	logger.InfoContext(ctx, "user logged in", "user_id", user.ID)
	respond(w, http.StatusOK, "logged in", authResponse{Token: token, User: user})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	user, err := h.users.GetByID(ctx, claims.UserID)
	if errors.Is(err, storage.ErrNotFound) {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respond(w, http.StatusOK, "", user)
}
