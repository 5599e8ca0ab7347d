package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// BestPractices validation errors
var (
	// ErrBestPracticesIDEmpty is returned when a best-practices record ID is empty or nil.
	ErrBestPracticesIDEmpty = errors.New("best practices ID cannot be empty")

	// ErrBestPracticesCourseIDEmpty is returned when the owning course ID is empty or nil.
	ErrBestPracticesCourseIDEmpty = errors.New("best practices course ID cannot be empty")
)

// BestPractices is the ordered list of recommended practices attached to a
// course by the final pipeline stage. A course owns at most one record.
type BestPractices struct {
	ID        uuid.UUID `json:"id"`
	CourseID  uuid.UUID `json:"course_id"`
	Items     []string  `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBestPractices creates a new BestPractices record for the given course.
func NewBestPractices(courseID uuid.UUID, items []string) (*BestPractices, error) {
	if items == nil {
		items = []string{}
	}

	bp := &BestPractices{
		ID:        uuid.New(),
		CourseID:  courseID,
		Items:     items,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := bp.Validate(); err != nil {
		return nil, err
	}

	return bp, nil
}

// Validate checks if the BestPractices record has valid data.
func (b *BestPractices) Validate() error {
	if b.ID == uuid.Nil {
		return ErrBestPracticesIDEmpty
	}
	if b.CourseID == uuid.Nil {
		return ErrBestPracticesCourseIDEmpty
	}
	return nil
}
