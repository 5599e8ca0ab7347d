package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Quiz-specific validation errors
var (
	// ErrQuizIDEmpty is returned when a quiz item ID is empty or nil.
	ErrQuizIDEmpty = errors.New("quiz item ID cannot be empty")

	// ErrQuizModuleIDEmpty is returned when a quiz item's module ID is empty or nil.
	ErrQuizModuleIDEmpty = errors.New("quiz item module ID cannot be empty")

	// ErrQuizQuestionEmpty is returned when a quiz item's question is empty.
	ErrQuizQuestionEmpty = errors.New("quiz question cannot be empty")

	// ErrQuizOptionsEmpty is returned when a quiz item has no options.
	ErrQuizOptionsEmpty = errors.New("quiz options cannot be empty")

	// ErrQuizAnswerNotInOptions is returned when a quiz item's answer is not
	// one of its options.
	ErrQuizAnswerNotInOptions = errors.New("quiz answer must be one of the options")
)

// QuizItem represents one question of a module's quiz. The answer must be a
// member of the ordered option list.
type QuizItem struct {
	ID         uuid.UUID `json:"id"`
	ModuleID   uuid.UUID `json:"module_id"`
	Question   string    `json:"question"`
	Options    []string  `json:"options"`
	Answer     string    `json:"answer"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewQuizItem creates a new QuizItem within the given module at the given
// order index. Returns an error if validation fails, in particular when the
// answer is not one of the options.
func NewQuizItem(
	moduleID uuid.UUID,
	question string,
	options []string,
	answer string,
	orderIndex int,
) (*QuizItem, error) {
	item := &QuizItem{
		ID:         uuid.New(),
		ModuleID:   moduleID,
		Question:   question,
		Options:    options,
		Answer:     answer,
		OrderIndex: orderIndex,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the QuizItem has valid data.
func (q *QuizItem) Validate() error {
	if q.ID == uuid.Nil {
		return ErrQuizIDEmpty
	}
	if q.ModuleID == uuid.Nil {
		return ErrQuizModuleIDEmpty
	}
	if q.Question == "" {
		return ErrQuizQuestionEmpty
	}
	if len(q.Options) == 0 {
		return ErrQuizOptionsEmpty
	}
	if q.OrderIndex < 0 {
		return ErrOrderIndexNegative
	}
	for _, opt := range q.Options {
		if opt == q.Answer {
			return nil
		}
	}
	return ErrQuizAnswerNotInOptions
}
