package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Lesson-specific validation errors
var (
	// ErrLessonIDEmpty is returned when a lesson ID is empty or nil.
	ErrLessonIDEmpty = errors.New("lesson ID cannot be empty")

	// ErrLessonModuleIDEmpty is returned when a lesson's module ID is empty or nil.
	ErrLessonModuleIDEmpty = errors.New("lesson module ID cannot be empty")

	// ErrLessonTitleEmpty is returned when a lesson's title is empty.
	ErrLessonTitleEmpty = errors.New("lesson title cannot be empty")
)

// Lesson represents one lesson of a module. Content is either plain text
// (as produced by the module-expansion stage) or a serialized LessonContent
// structure; persistence treats it opaquely and only the continuation engine
// interprets it.
type Lesson struct {
	ID         uuid.UUID `json:"id"`
	ModuleID   uuid.UUID `json:"module_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewLesson creates a new Lesson within the given module at the given order
// index. Returns an error if validation fails.
func NewLesson(moduleID uuid.UUID, title, content string, orderIndex int) (*Lesson, error) {
	lesson := &Lesson{
		ID:         uuid.New(),
		ModuleID:   moduleID,
		Title:      title,
		Content:    content,
		OrderIndex: orderIndex,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	if err := lesson.Validate(); err != nil {
		return nil, err
	}

	return lesson, nil
}

// Validate checks if the Lesson has valid data.
func (l *Lesson) Validate() error {
	if l.ID == uuid.Nil {
		return ErrLessonIDEmpty
	}
	if l.ModuleID == uuid.Nil {
		return ErrLessonModuleIDEmpty
	}
	if l.Title == "" {
		return ErrLessonTitleEmpty
	}
	if l.OrderIndex < 0 {
		return ErrOrderIndexNegative
	}
	return nil
}

// UpdateContent replaces the lesson's content and bumps the update timestamp.
func (l *Lesson) UpdateContent(content string) {
	l.Content = content
	l.UpdatedAt = time.Now().UTC()
}
