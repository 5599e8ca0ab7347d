package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/pathwise/pathwise-api/internal/domain"
)

// CourseStore defines the interface for course data persistence.
type CourseStore interface {
	// Create saves a new course to the store.
	// Returns ErrInvalidEntity if the owning profile does not exist.
	Create(ctx context.Context, course *domain.Course) error

	// GetByID retrieves a course by its unique ID.
	// Returns ErrCourseNotFound if the course does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)

	// FindByUser retrieves all courses belonging to the given profile,
	// newest first. Returns an empty slice if the profile has none.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Course, error)

	// UpdateSummary sets the course's structured summary. A re-run of the
	// summary stage overwrites any previous value.
	// Returns ErrCourseNotFound if the course does not exist.
	UpdateSummary(ctx context.Context, id uuid.UUID, summary *domain.CourseSummary) error
}

// BestPracticesStore defines the interface for best-practices persistence.
type BestPracticesStore interface {
	// Create saves a new best-practices record for a course.
	// Returns ErrInvalidEntity if the owning course does not exist and
	// ErrDuplicate if the course already has a record.
	Create(ctx context.Context, bp *domain.BestPractices) error

	// GetByCourse retrieves the best-practices record for a course.
	// Returns ErrNotFound if the course has none.
	GetByCourse(ctx context.Context, courseID uuid.UUID) (*domain.BestPractices, error)
}
