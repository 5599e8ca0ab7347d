package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pathwise/pathwise-api/internal/domain"
	"github.com/pathwise/pathwise-api/internal/platform/logger"
	"github.com/pathwise/pathwise-api/internal/store"
)

// PostgresCourseStore implements the store.CourseStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCourseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCourseStore creates a new PostgreSQL implementation of the
// CourseStore interface. If logger is nil, a default logger will be used.
func NewPostgresCourseStore(db store.DBTX, logger *slog.Logger) *PostgresCourseStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCourseStore{
		db:     db,
		logger: logger.With(slog.String("component", "course_store")),
	}
}

// Ensure PostgresCourseStore implements store.CourseStore interface
var _ store.CourseStore = (*PostgresCourseStore)(nil)

// Create implements store.CourseStore.Create
// Returns store.ErrInvalidEntity if the owning profile does not exist.
func (s *PostgresCourseStore) Create(ctx context.Context, course *domain.Course) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := course.Validate(); err != nil {
		log.Warn("course validation failed during create",
			slog.String("error", err.Error()),
			slog.String("course_id", course.ID.String()))
		return err
	}

	rawTools, err := json.Marshal(course.RawAITools)
	if err != nil {
		return fmt.Errorf("failed to marshal ai tools: %w", err)
	}
	rawPractices, err := json.Marshal(course.RawBestPractices)
	if err != nil {
		return fmt.Errorf("failed to marshal best practices: %w", err)
	}

	query := `
		INSERT INTO courses (id, user_id, title, raw_ai_tools, raw_best_practices,
			summary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULL, $6, $7)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		course.ID,
		course.UserID,
		course.Title,
		rawTools,
		rawPractices,
		course.CreatedAt,
		course.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during course creation",
				slog.String("course_id", course.ID.String()),
				slog.String("user_id", course.UserID.String()))
			return fmt.Errorf("%w: profile with ID %s not found",
				store.ErrInvalidEntity, course.UserID)
		}
		log.Error("failed to create course",
			slog.String("error", err.Error()),
			slog.String("course_id", course.ID.String()))
		return MapError(err)
	}

	log.Info("course created successfully",
		slog.String("course_id", course.ID.String()),
		slog.String("user_id", course.UserID.String()))
	return nil
}

// GetByID implements store.CourseStore.GetByID
// Returns store.ErrCourseNotFound if the course does not exist.
func (s *PostgresCourseStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, raw_ai_tools, raw_best_practices,
			summary, created_at, updated_at
		FROM courses
		WHERE id = $1
	`

	course, err := scanCourse(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("course not found", slog.String("course_id", id.String()))
			return nil, store.ErrCourseNotFound
		}
		log.Error("failed to get course by ID",
			slog.String("error", err.Error()),
			slog.String("course_id", id.String()))
		return nil, err
	}

	return course, nil
}

// FindByUser implements store.CourseStore.FindByUser
// Returns an empty slice if the profile has no courses.
func (s *PostgresCourseStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Course, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, raw_ai_tools, raw_best_practices,
			summary, created_at, updated_at
		FROM courses
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query courses by user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var courses []*domain.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			log.Error("failed to scan course row", slog.String("error", err.Error()))
			return nil, err
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if courses == nil {
		courses = []*domain.Course{}
	}
	return courses, nil
}

// UpdateSummary implements store.CourseStore.UpdateSummary
// Returns store.ErrCourseNotFound if the course does not exist.
func (s *PostgresCourseStore) UpdateSummary(
	ctx context.Context,
	id uuid.UUID,
	summary *domain.CourseSummary,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	encoded, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	query := `
		UPDATE courses
		SET summary = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := s.db.ExecContext(ctx, query, encoded, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to update course summary",
			slog.String("error", err.Error()),
			slog.String("course_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "course"); err != nil {
		return store.ErrCourseNotFound
	}

	log.Info("course summary updated",
		slog.String("course_id", id.String()))
	return nil
}

// scanCourse reads one course row, decoding the JSON-encoded tool list,
// practice list and nullable summary.
func scanCourse(row rowScanner) (*domain.Course, error) {
	var course domain.Course
	var rawTools, rawPractices []byte
	var summary []byte

	err := row.Scan(
		&course.ID,
		&course.UserID,
		&course.Title,
		&rawTools,
		&rawPractices,
		&summary,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(rawTools, &course.RawAITools); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ai tools: %w", err)
	}
	if err := json.Unmarshal(rawPractices, &course.RawBestPractices); err != nil {
		return nil, fmt.Errorf("failed to unmarshal best practices: %w", err)
	}
	if len(summary) > 0 {
		course.Summary = &domain.CourseSummary{}
		if err := json.Unmarshal(summary, course.Summary); err != nil {
			return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
		}
	}

	return &course, nil
}
