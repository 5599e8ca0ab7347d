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

// PostgresProfileStore implements the store.ProfileStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProfileStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProfileStore creates a new PostgreSQL implementation of the
// ProfileStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresProfileStore(db store.DBTX, logger *slog.Logger) *PostgresProfileStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProfileStore{
		db:     db,
		logger: logger.With(slog.String("component", "profile_store")),
	}
}

// Ensure PostgresProfileStore implements store.ProfileStore interface
var _ store.ProfileStore = (*PostgresProfileStore)(nil)

// Create implements store.ProfileStore.Create
// It saves a new profile to the database, handling domain validation.
// Returns store.ErrEmailExists if the email is already registered.
func (s *PostgresProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := profile.Validate(); err != nil {
		log.Warn("profile validation failed during create",
			slog.String("error", err.Error()),
			slog.String("profile_id", profile.ID.String()))
		return err
	}

	toolsUsed, err := json.Marshal(profile.ToolsUsed)
	if err != nil {
		return fmt.Errorf("failed to marshal tools used: %w", err)
	}

	query := `
		INSERT INTO profiles (id, email, hashed_password, job, sector, ai_level,
			tools_used, work_style, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		profile.ID,
		nullableString(profile.Email),
		nullableString(profile.HashedPassword),
		profile.Job,
		profile.Sector,
		profile.AILevel,
		toolsUsed,
		profile.WorkStyle,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate email during profile creation",
				slog.String("profile_id", profile.ID.String()))
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}
		log.Error("failed to create profile",
			slog.String("error", err.Error()),
			slog.String("profile_id", profile.ID.String()))
		return MapError(err)
	}

	log.Info("profile created successfully",
		slog.String("profile_id", profile.ID.String()))
	return nil
}

// GetByID implements store.ProfileStore.GetByID
// Returns store.ErrProfileNotFound if the profile does not exist.
func (s *PostgresProfileStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, hashed_password, job, sector, ai_level,
			tools_used, work_style, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	profile, err := s.scanProfile(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("profile not found", slog.String("profile_id", id.String()))
			return nil, store.ErrProfileNotFound
		}
		log.Error("failed to get profile by ID",
			slog.String("error", err.Error()),
			slog.String("profile_id", id.String()))
		return nil, err
	}

	return profile, nil
}

// GetByEmail implements store.ProfileStore.GetByEmail
// Returns store.ErrProfileNotFound if no profile has that email.
func (s *PostgresProfileStore) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, hashed_password, job, sector, ai_level,
			tools_used, work_style, created_at, updated_at
		FROM profiles
		WHERE email = $1
	`

	profile, err := s.scanProfile(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("profile not found by email")
			return nil, store.ErrProfileNotFound
		}
		log.Error("failed to get profile by email",
			slog.String("error", err.Error()))
		return nil, err
	}

	return profile, nil
}

// Update implements store.ProfileStore.Update
// Returns store.ErrProfileNotFound if the profile does not exist.
func (s *PostgresProfileStore) Update(ctx context.Context, profile *domain.Profile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := profile.Validate(); err != nil {
		log.Warn("profile validation failed during update",
			slog.String("error", err.Error()),
			slog.String("profile_id", profile.ID.String()))
		return err
	}

	toolsUsed, err := json.Marshal(profile.ToolsUsed)
	if err != nil {
		return fmt.Errorf("failed to marshal tools used: %w", err)
	}

	query := `
		UPDATE profiles
		SET job = $1, sector = $2, ai_level = $3, tools_used = $4,
			work_style = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		profile.Job,
		profile.Sector,
		profile.AILevel,
		toolsUsed,
		profile.WorkStyle,
		profile.UpdatedAt,
		profile.ID,
	)
	if err != nil {
		log.Error("failed to update profile",
			slog.String("error", err.Error()),
			slog.String("profile_id", profile.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "profile"); err != nil {
		return store.ErrProfileNotFound
	}

	log.Info("profile updated successfully",
		slog.String("profile_id", profile.ID.String()))
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanProfile reads one profile row, decoding the nullable credential columns
// and the JSON-encoded tool list.
func (s *PostgresProfileStore) scanProfile(row rowScanner) (*domain.Profile, error) {
	var profile domain.Profile
	var email, hashedPassword sql.NullString
	var toolsUsed []byte

	err := row.Scan(
		&profile.ID,
		&email,
		&hashedPassword,
		&profile.Job,
		&profile.Sector,
		&profile.AILevel,
		&toolsUsed,
		&profile.WorkStyle,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.Email = email.String
	profile.HashedPassword = hashedPassword.String
	if err := json.Unmarshal(toolsUsed, &profile.ToolsUsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tools used: %w", err)
	}

	return &profile, nil
}

// nullableString maps an empty string to SQL NULL.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
