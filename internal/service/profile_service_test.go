package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pathwise/pathwise-api/internal/domain"
	"github.com/pathwise/pathwise-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileServiceCreate(t *testing.T) {
	t.Parallel()
	profiles := newMemProfileStore()
	svc := NewProfileService(profiles, nil)
	ctx := context.Background()

	t.Run("valid questionnaire", func(t *testing.T) {
		profile, err := svc.Create(ctx, ProfileInput{
			Job:       "Designer",
			Sector:    "Media",
			AILevel:   "beginner",
			ToolsUsed: []string{"Figma"},
			WorkStyle: "visual",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, profile.ID)
		assert.Empty(t, profile.Email, "questionnaire profiles carry no credentials")

		stored, err := profiles.GetByID(ctx, profile.ID)
		require.NoError(t, err)
		assert.Equal(t, "Designer", stored.Job)
	})

	t.Run("missing answers rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, ProfileInput{Sector: "Media", AILevel: "beginner"})
		assert.ErrorIs(t, err, domain.ErrProfileJobEmpty)
	})
}

func TestProfileServiceUpdate(t *testing.T) {
	t.Parallel()
	profiles := newMemProfileStore()
	svc := NewProfileService(profiles, nil)
	ctx := context.Background()

	profile, err := svc.Create(ctx, ProfileInput{Job: "Designer", Sector: "Media", AILevel: "beginner"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, profile.ID, ProfileInput{
		Job:     "Art director",
		Sector:  "Media",
		AILevel: "intermediate",
	})
	require.NoError(t, err)
	assert.Equal(t, "Art director", updated.Job)
	assert.Equal(t, "intermediate", updated.AILevel)
	assert.NotNil(t, updated.ToolsUsed, "tools list normalizes to an empty slice")

	t.Run("unknown profile", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.New(), ProfileInput{Job: "X", Sector: "Y", AILevel: "beginner"})
		assert.ErrorIs(t, err, store.ErrProfileNotFound)
	})
}
