package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLessonContent(t *testing.T) {
	t.Parallel()

	t.Run("structured document round-trips", func(t *testing.T) {
		t.Parallel()
		raw := `{"schema_version":1,"title":"Intro","sections":[{"type":"text","text":"Body"}],"meta":{"continuations":2}}`
		content, err := ParseLessonContent(raw)
		require.NoError(t, err)
		assert.Equal(t, "Intro", content.Title)
		require.Len(t, content.Sections, 1)
		assert.Equal(t, SectionTypeText, content.Sections[0].Type)
		assert.Equal(t, 2, content.Meta.Continuations)
	})

	t.Run("missing schema version defaults to current", func(t *testing.T) {
		t.Parallel()
		content, err := ParseLessonContent(`{"sections":[{"type":"text","text":"Body"}]}`)
		require.NoError(t, err)
		assert.Equal(t, ContentSchemaVersion, content.SchemaVersion)
	})

	t.Run("missing meta defaults to zero continuations", func(t *testing.T) {
		t.Parallel()
		content, err := ParseLessonContent(`{"sections":[{"type":"text","text":"Body"}]}`)
		require.NoError(t, err)
		assert.Zero(t, content.Meta.Continuations)
	})

	t.Run("plain text is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := ParseLessonContent("Just an overview paragraph.")
		assert.ErrorIs(t, err, ErrContentNoSections)
	})

	t.Run("json without sections is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := ParseLessonContent(`{"title":"Intro"}`)
		assert.ErrorIs(t, err, ErrContentNoSections)
	})

	t.Run("invalid json is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := ParseLessonContent(`{"sections":[`)
		assert.ErrorIs(t, err, ErrContentNoSections)
	})
}

func TestWrapPlainText(t *testing.T) {
	t.Parallel()
	content := WrapPlainText("An overview of the topic.")

	assert.Equal(t, ContentSchemaVersion, content.SchemaVersion)
	require.Len(t, content.Sections, 1)
	assert.Equal(t, SectionTypeText, content.Sections[0].Type)
	assert.Equal(t, "An overview of the topic.", content.Sections[0].Text)
	assert.Zero(t, content.Meta.Continuations)
}

func TestLessonContentSerializeRoundTrip(t *testing.T) {
	t.Parallel()
	content := &LessonContent{
		Title: "Intro",
		Sections: []Section{
			{Type: SectionTypeText, Heading: "Overview", Text: "Body"},
			{Type: SectionTypeList, Items: []string{"a", "b"}},
			{Type: SectionTypeCode, Language: "python", Code: "print(1)"},
			{Type: SectionTypeCallout, Variant: CalloutWarning, Text: "Careful"},
		},
		References: []string{"https://example.com/"},
		Quiz:       []QuizContent{{Question: "Q", Options: []string{"a", "b"}, Answer: "a"}},
		Meta:       ContentMeta{Continuations: 3},
	}

	raw, err := content.Serialize()
	require.NoError(t, err)
	assert.Equal(t, ContentSchemaVersion, content.SchemaVersion, "serialize backfills the version")

	parsed, err := ParseLessonContent(raw)
	require.NoError(t, err)
	assert.Equal(t, content.Title, parsed.Title)
	assert.Equal(t, content.Sections, parsed.Sections)
	assert.Equal(t, content.References, parsed.References)
	assert.Equal(t, content.Quiz, parsed.Quiz)
	assert.Equal(t, 3, parsed.Meta.Continuations)
}

func TestSectionValidate(t *testing.T) {
	t.Parallel()

	for _, typ := range []string{SectionTypeText, SectionTypeList, SectionTypeCode, SectionTypeCallout} {
		s := Section{Type: typ}
		assert.NoError(t, s.Validate())
	}

	s := Section{Type: "table"}
	assert.ErrorIs(t, s.Validate(), ErrSectionTypeUnknown)
}
