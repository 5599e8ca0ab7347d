package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pathwise/pathwise-api/internal/domain"
	"github.com/pathwise/pathwise-api/internal/platform/logger"
	"github.com/pathwise/pathwise-api/internal/store"
)

// PostgresBestPracticesStore implements the store.BestPracticesStore
// interface using a PostgreSQL database as the storage backend.
type PostgresBestPracticesStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBestPracticesStore creates a new PostgreSQL implementation of
// the BestPracticesStore interface. If logger is nil, a default logger will
// be used.
func NewPostgresBestPracticesStore(db store.DBTX, logger *slog.Logger) *PostgresBestPracticesStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBestPracticesStore{
		db:     db,
		logger: logger.With(slog.String("component", "best_practices_store")),
	}
}

// Ensure PostgresBestPracticesStore implements store.BestPracticesStore interface
var _ store.BestPracticesStore = (*PostgresBestPracticesStore)(nil)

// Create implements store.BestPracticesStore.Create
// Returns store.ErrInvalidEntity if the owning course does not exist and
// store.ErrDuplicate if the course already has a record.
func (s *PostgresBestPracticesStore) Create(ctx context.Context, bp *domain.BestPractices) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := bp.Validate(); err != nil {
		log.Warn("best practices validation failed during create",
			slog.String("error", err.Error()),
			slog.String("course_id", bp.CourseID.String()))
		return err
	}

	items, err := json.Marshal(bp.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal best practice items: %w", err)
	}

	query := `
		INSERT INTO best_practices (id, course_id, items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = s.db.ExecContext(ctx, query, bp.ID, bp.CourseID, items, bp.CreatedAt, bp.UpdatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: course with ID %s not found",
				store.ErrInvalidEntity, bp.CourseID)
		}
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: course %s already has best practices",
				store.ErrDuplicate, bp.CourseID)
		}
		log.Error("failed to create best practices",
			slog.String("error", err.Error()),
			slog.String("course_id", bp.CourseID.String()))
		return MapError(err)
	}

	log.Info("best practices created",
		slog.String("course_id", bp.CourseID.String()),
		slog.Int("item_count", len(bp.Items)))
	return nil
}

// GetByCourse implements store.BestPracticesStore.GetByCourse
// Returns store.ErrNotFound if the course has no record.
func (s *PostgresBestPracticesStore) GetByCourse(
	ctx context.Context,
	courseID uuid.UUID,
) (*domain.BestPractices, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, course_id, items, created_at, updated_at
		FROM best_practices
		WHERE course_id = $1
	`

	var bp domain.BestPractices
	var items []byte
	err := s.db.QueryRowContext(ctx, query, courseID).Scan(
		&bp.ID,
		&bp.CourseID,
		&items,
		&bp.CreatedAt,
		&bp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("best practices not found",
				slog.String("course_id", courseID.String()))
			return nil, fmt.Errorf("%w: best practices for course %s", store.ErrNotFound, courseID)
		}
		log.Error("failed to get best practices",
			slog.String("error", err.Error()),
			slog.String("course_id", courseID.String()))
		return nil, err
	}

	if err := json.Unmarshal(items, &bp.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal best practice items: %w", err)
	}

	return &bp, nil
}
