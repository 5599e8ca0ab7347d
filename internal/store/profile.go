package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/pathwise/pathwise-api/internal/domain"
)

// ProfileStore defines the interface for profile data persistence.
type ProfileStore interface {
	// Create saves a new profile to the store.
	// Returns ErrEmailExists if the profile's email is already in use.
	Create(ctx context.Context, profile *domain.Profile) error

	// GetByID retrieves a profile by its unique ID.
	// Returns ErrProfileNotFound if the profile does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)

	// GetByEmail retrieves a profile by its email address.
	// Returns ErrProfileNotFound if no profile has that email.
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)

	// Update saves changes to an existing profile.
	// Returns ErrProfileNotFound if the profile does not exist.
	Update(ctx context.Context, profile *domain.Profile) error
}
