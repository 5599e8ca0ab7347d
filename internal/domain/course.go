package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Course-specific validation errors
var (
	// ErrCourseIDEmpty is returned when a course ID is empty or nil.
	ErrCourseIDEmpty = errors.New("course ID cannot be empty")

	// ErrCourseUserIDEmpty is returned when a course's user ID is empty or nil.
	ErrCourseUserIDEmpty = errors.New("course user ID cannot be empty")

	// ErrCourseTitleEmpty is returned when a course's title is empty.
	ErrCourseTitleEmpty = errors.New("course title cannot be empty")
)

// AITool is one recommended tool from the tools/practices generation stage.
type AITool struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	UseCase  string `json:"use_case"`
}

// CourseSummary is the structured summary produced by the final pipeline
// stage. It stays nil until that stage has run; a successful re-run
// overwrites it.
type CourseSummary struct {
	Summary         string   `json:"summary"`
	SkillsGained    []string `json:"skills_gained"`
	CertificateText string   `json:"certificate_text"`
}

// Course represents one generated training course belonging to a profile.
// The raw tool and best-practices lists are the stage-1 output the course was
// built from, kept verbatim for traceability.
type Course struct {
	ID               uuid.UUID      `json:"id"`
	UserID           uuid.UUID      `json:"user_id"`
	Title            string         `json:"title"`
	RawAITools       []AITool       `json:"raw_ai_tools"`
	RawBestPractices []string       `json:"raw_best_practices"`
	Summary          *CourseSummary `json:"summary,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// NewCourse creates a new Course for the given user.
// It generates a new UUID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewCourse(userID uuid.UUID, title string, rawTools []AITool, rawPractices []string) (*Course, error) {
	if rawTools == nil {
		rawTools = []AITool{}
	}
	if rawPractices == nil {
		rawPractices = []string{}
	}

	course := &Course{
		ID:               uuid.New(),
		UserID:           userID,
		Title:            title,
		RawAITools:       rawTools,
		RawBestPractices: rawPractices,
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}

	if err := course.Validate(); err != nil {
		return nil, err
	}

	return course, nil
}

// Validate checks if the Course has valid data.
// A course must have a title before any module is attached to it.
func (c *Course) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCourseIDEmpty
	}
	if c.UserID == uuid.Nil {
		return ErrCourseUserIDEmpty
	}
	if c.Title == "" {
		return ErrCourseTitleEmpty
	}
	return nil
}
