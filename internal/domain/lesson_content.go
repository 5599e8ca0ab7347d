package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Section types composing a lesson's structured content.
const (
	SectionTypeText    = "text"
	SectionTypeList    = "list"
	SectionTypeCode    = "code"
	SectionTypeCallout = "callout"
)

// Callout variants.
const (
	CalloutTip     = "tip"
	CalloutWarning = "warning"
	CalloutNote    = "note"
)

// ContentSchemaVersion is the current version of the serialized lesson
// content structure.
const ContentSchemaVersion = 1

// Section content validation errors
var (
	// ErrSectionTypeUnknown is returned when a section carries an unrecognized type tag.
	ErrSectionTypeUnknown = errors.New("unknown section type")

	// ErrContentNoSections is returned when parsed content lacks a sections array.
	ErrContentNoSections = errors.New("lesson content has no sections")
)

// Section is one typed content block of a lesson. The Type field selects the
// variant; the remaining fields are populated per variant:
//
//	text:    Text (Heading optional)
//	list:    Items (Heading optional)
//	code:    Language, Code (Heading optional)
//	callout: Variant (tip|warning|note), Text (Heading optional)
type Section struct {
	Type     string   `json:"type"`
	Heading  string   `json:"heading,omitempty"`
	Text     string   `json:"text,omitempty"`
	Items    []string `json:"items,omitempty"`
	Language string   `json:"language,omitempty"`
	Code     string   `json:"code,omitempty"`
	Variant  string   `json:"variant,omitempty"`
}

// Validate checks the section's type tag.
func (s *Section) Validate() error {
	switch s.Type {
	case SectionTypeText, SectionTypeList, SectionTypeCode, SectionTypeCallout:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrSectionTypeUnknown, s.Type)
	}
}

// ContentMeta carries bookkeeping for the continuation engine. A missing
// meta object deserializes to a zero Continuations counter.
type ContentMeta struct {
	Continuations int `json:"continuations"`
}

// QuizContent is an inline quiz question inside developed lesson content.
// Unlike persisted QuizItem rows these are embedded in the content blob.
type QuizContent struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// LessonContent is the structured form of Lesson.Content. It is stored as a
// schema-versioned JSON document so the continuation engine never has to
// guess at the shape it wrote previously.
type LessonContent struct {
	SchemaVersion int           `json:"schema_version"`
	Title         string        `json:"title,omitempty"`
	Sections      []Section     `json:"sections"`
	References    []string      `json:"references,omitempty"`
	Quiz          []QuizContent `json:"quiz,omitempty"`
	Meta          ContentMeta   `json:"meta"`
}

// ParseLessonContent parses raw lesson content into its structured form.
// Returns ErrContentNoSections if the raw text is not JSON carrying a
// sections array; callers wrap such content via WrapPlainText instead.
func ParseLessonContent(raw string) (*LessonContent, error) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, ErrContentNoSections
	}

	var content LessonContent
	if err := json.Unmarshal([]byte(trimmed), &content); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentNoSections, err)
	}
	if content.Sections == nil {
		return nil, ErrContentNoSections
	}
	if content.SchemaVersion == 0 {
		content.SchemaVersion = ContentSchemaVersion
	}
	return &content, nil
}

// WrapPlainText converts unstructured lesson content into a single-section
// structured document, preserving the original text verbatim.
func WrapPlainText(raw string) *LessonContent {
	return &LessonContent{
		SchemaVersion: ContentSchemaVersion,
		Sections: []Section{{
			Type:    SectionTypeText,
			Heading: "Initial content",
			Text:    raw,
		}},
	}
}

// Serialize renders the content back to the string stored in Lesson.Content.
func (c *LessonContent) Serialize() (string, error) {
	if c.SchemaVersion == 0 {
		c.SchemaVersion = ContentSchemaVersion
	}
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to serialize lesson content: %w", err)
	}
	return string(data), nil
}
