package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/pathwise/pathwise-api/internal/domain"
)

// ModuleStore defines the interface for module data persistence.
// Order indices are assigned by callers; implementations enforce the
// per-course uniqueness constraint.
type ModuleStore interface {
	// Create saves a new module to the store.
	// Returns ErrInvalidEntity if the owning course does not exist or the
	// (course, order index) pair is already taken.
	Create(ctx context.Context, module *domain.Module) error

	// GetByID retrieves a module by its unique ID.
	// Returns ErrModuleNotFound if the module does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Module, error)

	// FindByCourse retrieves all modules of a course ordered by order index.
	// Returns an empty slice if the course has none.
	FindByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.Module, error)

	// CountByCourse returns the number of modules attached to a course.
	CountByCourse(ctx context.Context, courseID uuid.UUID) (int, error)
}

// LessonStore defines the interface for lesson data persistence.
type LessonStore interface {
	// Create saves a new lesson to the store.
	// Returns ErrInvalidEntity if the owning module does not exist or the
	// (module, order index) pair is already taken.
	Create(ctx context.Context, lesson *domain.Lesson) error

	// GetByID retrieves a lesson by its unique ID.
	// Returns ErrLessonNotFound if the lesson does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)

	// FindByModule retrieves all lessons of a module ordered by order index.
	// Returns an empty slice if the module has none.
	FindByModule(ctx context.Context, moduleID uuid.UUID) ([]*domain.Lesson, error)

	// UpdateContent replaces a lesson's content.
	// Returns ErrLessonNotFound if the lesson does not exist.
	UpdateContent(ctx context.Context, id uuid.UUID, content string) error
}

// QuizStore defines the interface for quiz item persistence.
type QuizStore interface {
	// Create saves a new quiz item to the store.
	// Returns ErrInvalidEntity if the owning module does not exist.
	Create(ctx context.Context, item *domain.QuizItem) error

	// FindByModule retrieves all quiz items of a module ordered by order index.
	// Returns an empty slice if the module has none.
	FindByModule(ctx context.Context, moduleID uuid.UUID) ([]*domain.QuizItem, error)
}
