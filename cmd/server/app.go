package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/pathwise/pathwise-api/internal/api"
	"github.com/pathwise/pathwise-api/internal/config"
	"github.com/pathwise/pathwise-api/internal/generation"
	"github.com/pathwise/pathwise-api/internal/llm"
	"github.com/pathwise/pathwise-api/internal/platform/postgres"
	"github.com/pathwise/pathwise-api/internal/service"
	"github.com/pathwise/pathwise-api/internal/service/auth"
	"github.com/pathwise/pathwise-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// wiring and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	profileStore       store.ProfileStore
	courseStore        store.CourseStore
	bestPracticesStore store.BestPracticesStore
	moduleStore        store.ModuleStore
	lessonStore        store.LessonStore
	quizStore          store.QuizStore

	// Services
	jwtService     auth.JWTService
	authService    *service.AuthService
	profileService *service.ProfileService
	courseService  *service.CourseService

	// Generation pipeline
	generator    *generation.Service
	orchestrator *generation.Orchestrator
	continuer    *generation.Continuer
}

// newApplication wires stores, services and the generation pipeline from the
// loaded configuration and an open database connection.
func newApplication(cfg *config.Config, db *sql.DB, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.profileStore = postgres.NewPostgresProfileStore(db, logger)
	app.courseStore = postgres.NewPostgresCourseStore(db, logger)
	app.bestPracticesStore = postgres.NewPostgresBestPracticesStore(db, logger)
	app.moduleStore = postgres.NewPostgresModuleStore(db, logger)
	app.lessonStore = postgres.NewPostgresLessonStore(db, logger)
	app.quizStore = postgres.NewPostgresQuizStore(db, logger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	app.jwtService = jwtService

	verifier := auth.NewBcryptVerifier()
	app.authService = service.NewAuthService(app.profileStore, jwtService, verifier, verifier, logger)
	app.profileService = service.NewProfileService(app.profileStore, logger)
	app.courseService = service.NewCourseService(
		app.courseStore,
		app.bestPracticesStore,
		app.moduleStore,
		app.lessonStore,
		app.quizStore,
		logger,
	)

	selector := generation.NewProviderSelector(cfg.LLM, logger)
	executor := llm.NewExecutor(cfg.LLM, logger)
	app.generator = generation.NewService(selector, executor, logger)
	app.orchestrator = generation.NewOrchestrator(
		app.generator,
		app.profileStore,
		app.courseStore,
		app.bestPracticesStore,
		app.moduleStore,
		app.lessonStore,
		app.quizStore,
		logger,
	)
	app.continuer = generation.NewContinuer(
		app.generator,
		app.courseStore,
		app.moduleStore,
		app.lessonStore,
		logger,
	)

	return app, nil
}

// handlers builds the API handlers from the application's services.
func (app *application) handlers() (*api.AuthHandler, *api.ProfileHandler, *api.CourseHandler, *api.GenerationHandler) {
	return api.NewAuthHandler(app.authService),
		api.NewProfileHandler(app.profileService),
		api.NewCourseHandler(app.courseService),
		api.NewGenerationHandler(
			app.generator,
			app.orchestrator,
			app.continuer,
			app.profileService,
			app.courseService,
		)
}

// serve runs the HTTP server until the context is cancelled, then shuts down
// gracefully.
func (app *application) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("HTTP server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info("shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	app.logger.Info("server stopped")
	return nil
}
