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

// PostgresModuleStore implements the store.ModuleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresModuleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresModuleStore creates a new PostgreSQL implementation of the
// ModuleStore interface. If logger is nil, a default logger will be used.
func NewPostgresModuleStore(db store.DBTX, logger *slog.Logger) *PostgresModuleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresModuleStore{
		db:     db,
		logger: logger.With(slog.String("component", "module_store")),
	}
}

// Ensure PostgresModuleStore implements store.ModuleStore interface
var _ store.ModuleStore = (*PostgresModuleStore)(nil)

// Create implements store.ModuleStore.Create
// Returns store.ErrInvalidEntity if the owning course does not exist or the
// (course, order index) pair is already taken.
func (s *PostgresModuleStore) Create(ctx context.Context, module *domain.Module) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := module.Validate(); err != nil {
		log.Warn("module validation failed during create",
			slog.String("error", err.Error()),
			slog.String("module_id", module.ID.String()))
		return err
	}

	objectives, err := json.Marshal(module.Objectives)
	if err != nil {
		return fmt.Errorf("failed to marshal objectives: %w", err)
	}

	query := `
		INSERT INTO modules (id, course_id, title, description, objectives,
			chatbot_context, order_index, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		module.ID,
		module.CourseID,
		module.Title,
		module.Description,
		objectives,
		module.ChatbotContext,
		module.OrderIndex,
		module.CreatedAt,
		module.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: course with ID %s not found",
				store.ErrInvalidEntity, module.CourseID)
		}
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: order index %d already taken in course %s",
				store.ErrInvalidEntity, module.OrderIndex, module.CourseID)
		}
		log.Error("failed to create module",
			slog.String("error", err.Error()),
			slog.String("module_id", module.ID.String()))
		return MapError(err)
	}

	log.Info("module created successfully",
		slog.String("module_id", module.ID.String()),
		slog.String("course_id", module.CourseID.String()),
		slog.Int("order_index", module.OrderIndex))
	return nil
}

// GetByID implements store.ModuleStore.GetByID
// Returns store.ErrModuleNotFound if the module does not exist.
func (s *PostgresModuleStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Module, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, course_id, title, description, objectives,
			chatbot_context, order_index, created_at, updated_at
		FROM modules
		WHERE id = $1
	`

	module, err := scanModule(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("module not found", slog.String("module_id", id.String()))
			return nil, store.ErrModuleNotFound
		}
		log.Error("failed to get module by ID",
			slog.String("error", err.Error()),
			slog.String("module_id", id.String()))
		return nil, err
	}

	return module, nil
}

// FindByCourse implements store.ModuleStore.FindByCourse
// Modules are returned in curriculum order. Returns an empty slice if the
// course has none.
func (s *PostgresModuleStore) FindByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.Module, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, course_id, title, description, objectives,
			chatbot_context, order_index, created_at, updated_at
		FROM modules
		WHERE course_id = $1
		ORDER BY order_index ASC
	`

	rows, err := s.db.QueryContext(ctx, query, courseID)
	if err != nil {
		log.Error("failed to query modules by course",
			slog.String("error", err.Error()),
			slog.String("course_id", courseID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var modules []*domain.Module
	for rows.Next() {
		module, err := scanModule(rows)
		if err != nil {
			log.Error("failed to scan module row", slog.String("error", err.Error()))
			return nil, err
		}
		modules = append(modules, module)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if modules == nil {
		modules = []*domain.Module{}
	}
	return modules, nil
}

// CountByCourse implements store.ModuleStore.CountByCourse
func (s *PostgresModuleStore) CountByCourse(ctx context.Context, courseID uuid.UUID) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	query := `SELECT COUNT(*) FROM modules WHERE course_id = $1`
	if err := s.db.QueryRowContext(ctx, query, courseID).Scan(&count); err != nil {
		log.Error("failed to count modules",
			slog.String("error", err.Error()),
			slog.String("course_id", courseID.String()))
		return 0, err
	}
	return count, nil
}

// scanModule reads one module row, decoding the JSON-encoded objective list.
func scanModule(row rowScanner) (*domain.Module, error) {
	var module domain.Module
	var objectives []byte

	err := row.Scan(
		&module.ID,
		&module.CourseID,
		&module.Title,
		&module.Description,
		&objectives,
		&module.ChatbotContext,
		&module.OrderIndex,
		&module.CreatedAt,
		&module.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(objectives, &module.Objectives); err != nil {
		return nil, fmt.Errorf("failed to unmarshal objectives: %w", err)
	}

	return &module, nil
}
