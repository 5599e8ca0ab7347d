package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	apiMiddleware "github.com/pathwise/pathwise-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler, profileHandler, courseHandler, generationHandler := app.handlers()
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Standalone questionnaire profiles (public)
		r.Post("/profiles", profileHandler.Create)
		r.Get("/profiles/{id}", profileHandler.Get)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/profiles/me", profileHandler.GetMe)
			r.Put("/profiles/me", profileHandler.UpdateMe)

			// Course reads
			r.Get("/courses", courseHandler.ListMine)
			r.Get("/courses/{id}", courseHandler.GetCourse)
			r.Get("/modules/{id}", courseHandler.GetModule)
			r.Get("/lessons/{id}", courseHandler.GetLesson)

			// Generation operations
			r.Post("/ai/tools-practices", generationHandler.ToolsPractices)
			r.Post("/ai/generate-course", generationHandler.GenerateCourse)
			r.Post("/ai/generate-module", generationHandler.GenerateModule)
			r.Post("/ai/generate-lessons", generationHandler.GenerateLessons)
			r.Post("/ai/develop-lesson", generationHandler.DevelopLesson)
			r.Post("/ai/generate-summary", generationHandler.GenerateSummary)
			r.Post("/ai/run-pipeline", generationHandler.RunPipeline)

			// Content growth and tutoring
			r.Post("/lessons/{id}/continue", generationHandler.ContinueLesson)
			r.Post("/modules/{id}/chat", generationHandler.Chat)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
