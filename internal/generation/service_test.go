package generation

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/pathwise/pathwise-api/internal/config"
	"github.com/pathwise/pathwise-api/internal/domain"
	"github.com/pathwise/pathwise-api/internal/generation/prompts"
	"github.com/pathwise/pathwise-api/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockService wires a Service that always serves from the deterministic
// mock provider, running the full executor and extraction path.
func newMockService() *Service {
	cfg := config.LLMConfig{Mode: config.ModeMock, TimeoutMs: 2000, MaxRetries: 1}
	return NewService(NewProviderSelector(cfg, nil), llm.NewExecutor(cfg, nil), nil)
}

func serviceTestProfile() *domain.Profile {
	return &domain.Profile{
		ID:        uuid.New(),
		Job:       "Data analyst",
		Sector:    "Finance",
		AILevel:   "intermediate",
		ToolsUsed: []string{"Excel"},
		WorkStyle: "independent",
	}
}

func TestServiceToolsPractices(t *testing.T) {
	t.Parallel()
	svc := newMockService()

	result, err := svc.ToolsPractices(context.Background(), serviceTestProfile())
	require.NoError(t, err)
	assert.Len(t, result.AITools, 3)
	assert.Len(t, result.BestPractices, 5)
}

func TestServiceCourseOutline(t *testing.T) {
	t.Parallel()
	svc := newMockService()
	profile := serviceTestProfile()

	result, err := svc.CourseOutline(context.Background(), profile, nil)
	require.NoError(t, err)
	assert.Contains(t, result.Title, profile.Job)
	assert.Len(t, result.Modules, 3)
}

func TestServiceExpandModule(t *testing.T) {
	t.Parallel()
	svc := newMockService()
	stub := prompts.ModuleStub{Title: "AI fundamentals", Description: "Basics"}

	result, err := svc.ExpandModule(context.Background(), stub)
	require.NoError(t, err)
	assert.Equal(t, stub.Title, result.Title)
	assert.NotEmpty(t, result.Lessons)
	assert.NotEmpty(t, result.Quiz)
	assert.Contains(t, result.ChatbotContextString(), stub.Title)
}

func TestServiceGenerateLessons(t *testing.T) {
	t.Parallel()
	svc := newMockService()

	lessons, err := svc.GenerateLessons(context.Background(), prompts.ModuleStub{Title: "AI fundamentals"})
	require.NoError(t, err)
	require.NotEmpty(t, lessons)
	for _, l := range lessons {
		assert.NotEmpty(t, l.Title)
		assert.NotEmpty(t, l.Content)
	}
}

func TestServiceDevelopLesson(t *testing.T) {
	t.Parallel()
	svc := newMockService()
	input := prompts.LessonContext{
		Title:       "Introduction",
		ModuleTitle: "AI fundamentals",
		CourseTitle: "AI learning path",
	}

	content, err := svc.DevelopLesson(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, domain.ContentSchemaVersion, content.SchemaVersion)
	assert.Equal(t, input.Title, content.Title)
	assert.NotEmpty(t, content.Sections)
	for _, s := range content.Sections {
		assert.NoError(t, s.Validate())
	}
}

func TestServiceSummary(t *testing.T) {
	t.Parallel()
	svc := newMockService()

	summary, err := svc.Summary(context.Background(), "AI learning path", []prompts.ModuleStub{{Title: "Basics"}})
	require.NoError(t, err)
	assert.Contains(t, summary.Summary, "AI learning path")
	assert.NotEmpty(t, summary.SkillsGained)
	assert.NotEmpty(t, summary.CertificateText)
}

func TestServiceChat(t *testing.T) {
	t.Parallel()
	svc := newMockService()

	reply, err := svc.Chat(context.Background(), "You are a tutor.", "What is a prompt?")
	require.NoError(t, err)
	assert.NotEmpty(t, reply)
}

func TestChatbotContextString(t *testing.T) {
	t.Parallel()

	t.Run("string value is unquoted", func(t *testing.T) {
		t.Parallel()
		r := ModuleExpansionResult{ChatbotContext: json.RawMessage(`"You are a tutor."`)}
		assert.Equal(t, "You are a tutor.", r.ChatbotContextString())
	})

	t.Run("object value keeps its serialized form", func(t *testing.T) {
		t.Parallel()
		r := ModuleExpansionResult{ChatbotContext: json.RawMessage(`{"role":"tutor"}`)}
		assert.Equal(t, `{"role":"tutor"}`, r.ChatbotContextString())
	})

	t.Run("absent value is empty", func(t *testing.T) {
		t.Parallel()
		var r ModuleExpansionResult
		assert.Empty(t, r.ChatbotContextString())
	})
}
