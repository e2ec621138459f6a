package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"strings"

	"emotiva-math/internal/auth"
	"emotiva-math/internal/config"
	"emotiva-math/internal/engine"
	"emotiva-math/internal/extract"
	"emotiva-math/internal/http"
	"emotiva-math/internal/llm"
	"emotiva-math/internal/retrieval"
	"emotiva-math/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	userRepo := storage.NewUserRepo(db)
	materialRepo := storage.NewMaterialRepo(db)
	emotionRepo := storage.NewEmotionRepo(db)
	logRepo := storage.NewLearningLogRepo(db)
	quizRepo := storage.NewQuizRepo(db)

	// Build the retrieval pipeline over stored materials
	index := retrieval.NewIndex(storage.NewMaterialSource(db), retrieval.NewChunker(cfg.ChunkSize))
	retriever := retrieval.NewService(index, cfg.RetrievalTopK)

	// Create LLM client (external service layer); nil disables it
	var chat engine.ChatClient
	if cfg.UseLLM {
		chat = llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
		slog.Info("LLM enabled", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModel)
	} else {
		slog.Info("LLM disabled, using rule-based content")
	}

	adaptiveEngine := engine.New(retriever, chat, userRepo, emotionRepo, logRepo, quizRepo)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)

	deps := &http.Deps{
		Users:     userRepo,
		Materials: materialRepo,
		Emotions:  emotionRepo,
		Logs:      logRepo,
		Quizzes:   quizRepo,
		Tokens:    tokens,
		Extractor: extract.New(),
		Retriever: retriever,
		Reloader:  index,
		Adaptive:  adaptiveEngine,
		Quiz:      adaptiveEngine,
		UploadDir: cfg.UploadDir,
	}
	router := http.NewRouter(deps)

	// Warm the retrieval index after the router is ready
	go func() {
		warmCtx := context.Background()
		if err := index.Reload(warmCtx); err != nil {
			slog.Error("Initial index load failed", "error", err)
		} else {
			slog.Info("Retrieval index warmed")
		}
	}()

	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
