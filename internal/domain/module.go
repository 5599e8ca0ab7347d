package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Module-specific validation errors
var (
	// ErrModuleIDEmpty is returned when a module ID is empty or nil.
	ErrModuleIDEmpty = errors.New("module ID cannot be empty")

	// ErrModuleCourseIDEmpty is returned when a module's course ID is empty or nil.
	ErrModuleCourseIDEmpty = errors.New("module course ID cannot be empty")

	// ErrModuleTitleEmpty is returned when a module's title is empty.
	ErrModuleTitleEmpty = errors.New("module title cannot be empty")

	// ErrOrderIndexNegative is returned when an order index is negative.
	ErrOrderIndexNegative = errors.New("order index cannot be negative")
)

// Module represents one module of a course. OrderIndex is the module's
// zero-based position within its course; indices are assigned contiguously in
// creation order and never reordered.
type Module struct {
	ID          uuid.UUID `json:"id"`
	CourseID    uuid.UUID `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Objectives  []string  `json:"objectives"`
	// ChatbotContext is the system prompt priming the module's tutor chat.
	// It may itself be a serialized structure; it is stored opaquely.
	ChatbotContext string    `json:"chatbot_context"`
	OrderIndex     int       `json:"order_index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewModule creates a new Module within the given course at the given order
// index. Returns an error if validation fails.
func NewModule(
	courseID uuid.UUID,
	title, description string,
	objectives []string,
	chatbotContext string,
	orderIndex int,
) (*Module, error) {
	if objectives == nil {
		objectives = []string{}
	}

	module := &Module{
		ID:             uuid.New(),
		CourseID:       courseID,
		Title:          title,
		Description:    description,
		Objectives:     objectives,
		ChatbotContext: chatbotContext,
		OrderIndex:     orderIndex,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	if err := module.Validate(); err != nil {
		return nil, err
	}

	return module, nil
}

// Validate checks if the Module has valid data.
func (m *Module) Validate() error {
	if m.ID == uuid.Nil {
		return ErrModuleIDEmpty
	}
	if m.CourseID == uuid.Nil {
		return ErrModuleCourseIDEmpty
	}
	if m.Title == "" {
		return ErrModuleTitleEmpty
	}
	if m.OrderIndex < 0 {
		return ErrOrderIndexNegative
	}
	return nil
}
