package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Profile-specific validation errors
var (
	// ErrProfileIDEmpty is returned when a profile ID is empty or nil.
	ErrProfileIDEmpty = errors.New("profile ID cannot be empty")

	// ErrProfileJobEmpty is returned when a profile's job is empty.
	ErrProfileJobEmpty = errors.New("profile job cannot be empty")

	// ErrProfileSectorEmpty is returned when a profile's sector is empty.
	ErrProfileSectorEmpty = errors.New("profile sector cannot be empty")

	// ErrProfileAILevelEmpty is returned when a profile's AI proficiency level is empty.
	ErrProfileAILevelEmpty = errors.New("profile ai level cannot be empty")
)

// Profile represents a user of the system together with the questionnaire
// answers the generation pipeline personalizes a course from. Email and
// HashedPassword are only set for profiles created through registration;
// profiles created directly through the profile endpoint carry neither.
type Profile struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email,omitempty"`
	HashedPassword string    `json:"-"`
	Job            string    `json:"job"`
	Sector         string    `json:"sector"`
	AILevel        string    `json:"ai_level"`
	ToolsUsed      []string  `json:"tools_used"`
	WorkStyle      string    `json:"work_style"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewProfile creates a new Profile with the given questionnaire answers.
// It generates a new UUID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewProfile(job, sector, aiLevel string, toolsUsed []string, workStyle string) (*Profile, error) {
	if toolsUsed == nil {
		toolsUsed = []string{}
	}

	profile := &Profile{
		ID:        uuid.New(),
		Job:       job,
		Sector:    sector,
		AILevel:   aiLevel,
		ToolsUsed: toolsUsed,
		WorkStyle: workStyle,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return profile, nil
}

// Validate checks if the Profile has valid data.
// Returns an error if any field fails validation.
func (p *Profile) Validate() error {
	if p.ID == uuid.Nil {
		return ErrProfileIDEmpty
	}
	if p.Job == "" {
		return ErrProfileJobEmpty
	}
	if p.Sector == "" {
		return ErrProfileSectorEmpty
	}
	if p.AILevel == "" {
		return ErrProfileAILevelEmpty
	}
	return nil
}
