package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pathwise/pathwise-api/internal/domain"
	"github.com/pathwise/pathwise-api/internal/platform/logger"
	"github.com/pathwise/pathwise-api/internal/store"
)

// PostgresQuizStore implements the store.QuizStore interface
// using a PostgreSQL database as the storage backend.
type PostgresQuizStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresQuizStore creates a new PostgreSQL implementation of the
// QuizStore interface. If logger is nil, a default logger will be used.
func NewPostgresQuizStore(db store.DBTX, logger *slog.Logger) *PostgresQuizStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresQuizStore{
		db:     db,
		logger: logger.With(slog.String("component", "quiz_store")),
	}
}

// Ensure PostgresQuizStore implements store.QuizStore interface
var _ store.QuizStore = (*PostgresQuizStore)(nil)

// Create implements store.QuizStore.Create
// Returns store.ErrInvalidEntity if the owning module does not exist.
func (s *PostgresQuizStore) Create(ctx context.Context, item *domain.QuizItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("quiz item validation failed during create",
			slog.String("error", err.Error()),
			slog.String("quiz_item_id", item.ID.String()))
		return err
	}

	options, err := json.Marshal(item.Options)
	if err != nil {
		return fmt.Errorf("failed to marshal quiz options: %w", err)
	}

	query := `
		INSERT INTO quiz_items (id, module_id, question, options, answer,
			order_index, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		item.ID,
		item.ModuleID,
		item.Question,
		options,
		item.Answer,
		item.OrderIndex,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: module with ID %s not found",
				store.ErrInvalidEntity, item.ModuleID)
		}
		log.Error("failed to create quiz item",
			slog.String("error", err.Error()),
			slog.String("quiz_item_id", item.ID.String()))
		return MapError(err)
	}

	log.Debug("quiz item created",
		slog.String("quiz_item_id", item.ID.String()),
		slog.String("module_id", item.ModuleID.String()))
	return nil
}

// FindByModule implements store.QuizStore.FindByModule
// Quiz items are returned in question order. Returns an empty slice if the
// module has none.
func (s *PostgresQuizStore) FindByModule(ctx context.Context, moduleID uuid.UUID) ([]*domain.QuizItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, module_id, question, options, answer, order_index, created_at, updated_at
		FROM quiz_items
		WHERE module_id = $1
		ORDER BY order_index ASC
	`

	rows, err := s.db.QueryContext(ctx, query, moduleID)
	if err != nil {
		log.Error("failed to query quiz items by module",
			slog.String("error", err.Error()),
			slog.String("module_id", moduleID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var items []*domain.QuizItem
	for rows.Next() {
		var item domain.QuizItem
		var options []byte
		err := rows.Scan(
			&item.ID,
			&item.ModuleID,
			&item.Question,
			&options,
			&item.Answer,
			&item.OrderIndex,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan quiz item row", slog.String("error", err.Error()))
			return nil, err
		}
		if err := json.Unmarshal(options, &item.Options); err != nil {
			return nil, fmt.Errorf("failed to unmarshal quiz options: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if items == nil {
		items = []*domain.QuizItem{}
	}
	return items, nil
}
