package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pathwise/pathwise-api/internal/domain"
	"github.com/pathwise/pathwise-api/internal/platform/logger"
	"github.com/pathwise/pathwise-api/internal/store"
)

// PostgresLessonStore implements the store.LessonStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLessonStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLessonStore creates a new PostgreSQL implementation of the
// LessonStore interface. If logger is nil, a default logger will be used.
func NewPostgresLessonStore(db store.DBTX, logger *slog.Logger) *PostgresLessonStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLessonStore{
		db:     db,
		logger: logger.With(slog.String("component", "lesson_store")),
	}
}

// Ensure PostgresLessonStore implements store.LessonStore interface
var _ store.LessonStore = (*PostgresLessonStore)(nil)

// Create implements store.LessonStore.Create
// Returns store.ErrInvalidEntity if the owning module does not exist or the
// (module, order index) pair is already taken.
func (s *PostgresLessonStore) Create(ctx context.Context, lesson *domain.Lesson) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := lesson.Validate(); err != nil {
		log.Warn("lesson validation failed during create",
			slog.String("error", err.Error()),
			slog.String("lesson_id", lesson.ID.String()))
		return err
	}

	query := `
		INSERT INTO lessons (id, module_id, title, content, order_index, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		lesson.ID,
		lesson.ModuleID,
		lesson.Title,
		lesson.Content,
		lesson.OrderIndex,
		lesson.CreatedAt,
		lesson.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: module with ID %s not found",
				store.ErrInvalidEntity, lesson.ModuleID)
		}
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: order index %d already taken in module %s",
				store.ErrInvalidEntity, lesson.OrderIndex, lesson.ModuleID)
		}
		log.Error("failed to create lesson",
			slog.String("error", err.Error()),
			slog.String("lesson_id", lesson.ID.String()))
		return MapError(err)
	}

	log.Info("lesson created successfully",
		slog.String("lesson_id", lesson.ID.String()),
		slog.String("module_id", lesson.ModuleID.String()),
		slog.Int("order_index", lesson.OrderIndex))
	return nil
}

// GetByID implements store.LessonStore.GetByID
// Returns store.ErrLessonNotFound if the lesson does not exist.
func (s *PostgresLessonStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, module_id, title, content, order_index, created_at, updated_at
		FROM lessons
		WHERE id = $1
	`

	var lesson domain.Lesson
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&lesson.ID,
		&lesson.ModuleID,
		&lesson.Title,
		&lesson.Content,
		&lesson.OrderIndex,
		&lesson.CreatedAt,
		&lesson.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("lesson not found", slog.String("lesson_id", id.String()))
			return nil, store.ErrLessonNotFound
		}
		log.Error("failed to get lesson by ID",
			slog.String("error", err.Error()),
			slog.String("lesson_id", id.String()))
		return nil, err
	}

	return &lesson, nil
}

// FindByModule implements store.LessonStore.FindByModule
// Lessons are returned in curriculum order. Returns an empty slice if the
// module has none.
func (s *PostgresLessonStore) FindByModule(ctx context.Context, moduleID uuid.UUID) ([]*domain.Lesson, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, module_id, title, content, order_index, created_at, updated_at
		FROM lessons
		WHERE module_id = $1
		ORDER BY order_index ASC
	`

	rows, err := s.db.QueryContext(ctx, query, moduleID)
	if err != nil {
		log.Error("failed to query lessons by module",
			slog.String("error", err.Error()),
			slog.String("module_id", moduleID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var lessons []*domain.Lesson
	for rows.Next() {
		var lesson domain.Lesson
		err := rows.Scan(
			&lesson.ID,
			&lesson.ModuleID,
			&lesson.Title,
			&lesson.Content,
			&lesson.OrderIndex,
			&lesson.CreatedAt,
			&lesson.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan lesson row", slog.String("error", err.Error()))
			return nil, err
		}
		lessons = append(lessons, &lesson)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if lessons == nil {
		lessons = []*domain.Lesson{}
	}
	return lessons, nil
}

// UpdateContent implements store.LessonStore.UpdateContent
// Returns store.ErrLessonNotFound if the lesson does not exist.
func (s *PostgresLessonStore) UpdateContent(ctx context.Context, id uuid.UUID, content string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE lessons
		SET content = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := s.db.ExecContext(ctx, query, content, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to update lesson content",
			slog.String("error", err.Error()),
			slog.String("lesson_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "lesson"); err != nil {
		return store.ErrLessonNotFound
	}

	log.Info("lesson content updated",
		slog.String("lesson_id", id.String()))
	return nil
}
