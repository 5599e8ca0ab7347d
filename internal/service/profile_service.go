package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pathwise/pathwise-api/internal/domain"
	"github.com/pathwise/pathwise-api/internal/platform/logger"
	"github.com/pathwise/pathwise-api/internal/store"
)

// ProfileInput carries the questionnaire answers a course is personalized
// from.
type ProfileInput struct {
	Job       string
	Sector    string
	AILevel   string
	ToolsUsed []string
	WorkStyle string
}

// ProfileService manages questionnaire profiles.
type ProfileService struct {
	profiles store.ProfileStore
	logger   *slog.Logger
}

// NewProfileService creates a ProfileService.
// If log is nil, the default logger is used.
func NewProfileService(profiles store.ProfileStore, log *slog.Logger) *ProfileService {
	if profiles == nil {
		panic("profiles store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ProfileService{
		profiles: profiles,
		logger:   log.With(slog.String("component", "profile_service")),
	}
}

// Create creates a standalone profile from questionnaire answers. Profiles
// created this way carry no credentials.
func (s *ProfileService) Create(ctx context.Context, input ProfileInput) (*domain.Profile, error) {
	profile, err := domain.NewProfile(input.Job, input.Sector, input.AILevel, input.ToolsUsed, input.WorkStyle)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Get retrieves a profile by ID.
// Returns store.ErrProfileNotFound if it does not exist.
func (s *ProfileService) Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

// Update replaces the questionnaire answers of an existing profile.
// Returns store.ErrProfileNotFound if it does not exist.
func (s *ProfileService) Update(ctx context.Context, id uuid.UUID, input ProfileInput) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile.Job = input.Job
	profile.Sector = input.Sector
	profile.AILevel = input.AILevel
	profile.ToolsUsed = input.ToolsUsed
	if profile.ToolsUsed == nil {
		profile.ToolsUsed = []string{}
	}
	profile.WorkStyle = input.WorkStyle
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}

	log.Info("profile questionnaire updated", slog.String("profile_id", id.String()))
	return profile, nil
}
