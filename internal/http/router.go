// Package http wires the API routes and middleware stack.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"emotiva-math/internal/auth"
	"emotiva-math/internal/extract"
	"emotiva-math/internal/handlers"
	"emotiva-math/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Users     storage.UserStore
	Materials storage.MaterialStore
	Emotions  storage.EmotionStore
	Logs      storage.LearningLogStore
	Quizzes   storage.QuizStore

	Tokens    *auth.TokenIssuer
	Extractor *extract.Extractor
	Retriever handlers.Retriever
	Reloader  handlers.Reloader
	Adaptive  handlers.ContentGenerator
	Quiz      handlers.QuizService

	UploadDir string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	authHandler := handlers.NewAuthHandler(deps.Users, deps.Tokens)
	materialHandler := handlers.NewMaterialHandler(deps.Materials, deps.Extractor, deps.Reloader, deps.UploadDir)
	emotionHandler := handlers.NewEmotionHandler(deps.Emotions)
	logHandler := handlers.NewLearningLogHandler(deps.Logs)
	adaptiveHandler := handlers.NewAdaptiveHandler(deps.Adaptive)
	quizHandler := handlers.NewQuizHandler(deps.Quiz, deps.Quizzes)
	retrievalHandler := handlers.NewRetrievalHandler(deps.Retriever)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Everything below requires a valid token.
		r.Group(func(r chi.Router) {
			r.Use(deps.Tokens.RequireAuth)

			r.Get("/auth/me", authHandler.Me)

			r.Get("/materials", materialHandler.List)
			r.Get("/materials/search", materialHandler.Search)
			r.Get("/materials/{id}", materialHandler.Get)

			// Material writes are teacher-only.
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole("teacher"))
				r.Post("/materials", materialHandler.Create)
				r.Put("/materials/{id}", materialHandler.Update)
				r.Delete("/materials/{id}", materialHandler.Delete)
			})

			r.Post("/emotions", emotionHandler.Create)
			r.Get("/emotions/{userID}", emotionHandler.ListByUser)

			r.Post("/learning-logs", logHandler.Create)
			r.Get("/learning-logs/{userID}", logHandler.ListByUser)

			r.Post("/adaptive/content", adaptiveHandler.Content)

			r.Post("/quiz/generate", quizHandler.Generate)
			r.Post("/quiz/submit", quizHandler.Submit)
			r.Get("/quiz/attempts/{userID}", quizHandler.Attempts)

			r.Post("/retrieval/query", retrievalHandler.Query)
		})
	})

	return r
}
