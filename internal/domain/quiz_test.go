package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuizItem(t *testing.T) {
	t.Parallel()
	moduleID := uuid.New()

	t.Run("valid item", func(t *testing.T) {
		t.Parallel()
		item, err := NewQuizItem(moduleID, "Which tool fits research?", []string{"Perplexity", "Figma"}, "Perplexity", 0)
		require.NoError(t, err)
		assert.Equal(t, moduleID, item.ModuleID)
		assert.NotEqual(t, uuid.Nil, item.ID)
	})

	t.Run("answer outside options", func(t *testing.T) {
		t.Parallel()
		_, err := NewQuizItem(moduleID, "Which tool fits research?", []string{"Perplexity", "Figma"}, "Photoshop", 0)
		assert.ErrorIs(t, err, ErrQuizAnswerNotInOptions)
	})

	t.Run("empty question", func(t *testing.T) {
		t.Parallel()
		_, err := NewQuizItem(moduleID, "", []string{"a"}, "a", 0)
		assert.ErrorIs(t, err, ErrQuizQuestionEmpty)
	})

	t.Run("no options", func(t *testing.T) {
		t.Parallel()
		_, err := NewQuizItem(moduleID, "Question?", nil, "a", 0)
		assert.ErrorIs(t, err, ErrQuizOptionsEmpty)
	})

	t.Run("negative order index", func(t *testing.T) {
		t.Parallel()
		_, err := NewQuizItem(moduleID, "Question?", []string{"a"}, "a", -1)
		assert.ErrorIs(t, err, ErrOrderIndexNegative)
	})

	t.Run("nil module", func(t *testing.T) {
		t.Parallel()
		_, err := NewQuizItem(uuid.Nil, "Question?", []string{"a"}, "a", 0)
		assert.ErrorIs(t, err, ErrQuizModuleIDEmpty)
	})
}
