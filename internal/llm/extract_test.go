package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	t.Run("bare object passes through", func(t *testing.T) {
		t.Parallel()
		obj, err := ExtractJSON(`{"title":"Intro"}`)
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"Intro"}`, string(obj))
	})

	t.Run("prose-wrapped object is recovered", func(t *testing.T) {
		t.Parallel()
		raw := "Sure, here is the JSON you asked for:\n```json\n{\"title\":\"Intro\"}\n```\nLet me know if you need more."
		obj, err := ExtractJSON(raw)
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"Intro"}`, string(obj))
	})

	t.Run("nested objects keep the full span", func(t *testing.T) {
		t.Parallel()
		raw := `prefix {"outer":{"inner":[1,2,3]}} suffix`
		obj, err := ExtractJSON(raw)
		require.NoError(t, err)
		assert.JSONEq(t, `{"outer":{"inner":[1,2,3]}}`, string(obj))
	})

	t.Run("no opening brace fails", func(t *testing.T) {
		t.Parallel()
		_, err := ExtractJSON("there is no json here")
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("closing brace before opening brace fails", func(t *testing.T) {
		t.Parallel()
		_, err := ExtractJSON("} oops {")
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("truncated object fails", func(t *testing.T) {
		t.Parallel()
		_, err := ExtractJSON(`{"title":"Intro","sections":[{"type":"text"}`)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("span that is not an object fails", func(t *testing.T) {
		t.Parallel()
		_, err := ExtractJSON(`{"a":1} trailing garbage }`)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("empty object is valid", func(t *testing.T) {
		t.Parallel()
		obj, err := ExtractJSON("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", string(obj))
	})
}
