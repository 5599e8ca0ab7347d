package prompts

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/pathwise/pathwise-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *domain.Profile {
	return &domain.Profile{
		ID:        uuid.New(),
		Job:       "Product manager",
		Sector:    "Software",
		AILevel:   "beginner",
		ToolsUsed: []string{"ChatGPT"},
		WorkStyle: "collaborative",
	}
}

func testStub() ModuleStub {
	return ModuleStub{
		Title:       "AI fundamentals",
		Description: "Understand the basics",
		Objectives:  []string{"Key concepts", "Concrete cases"},
	}
}

func TestToolsPracticesMockSchema(t *testing.T) {
	t.Parallel()
	p := ToolsPractices(testProfile())

	require.NotEmpty(t, p.System)
	assert.Contains(t, p.User, "Product manager")

	var result struct {
		AITools       []domain.AITool `json:"ai_tools"`
		BestPractices []string        `json:"best_practices"`
	}
	require.NoError(t, json.Unmarshal([]byte(p.Mock), &result))
	assert.Len(t, result.AITools, 3)
	assert.Len(t, result.BestPractices, 5)
	for _, tool := range result.AITools {
		assert.NotEmpty(t, tool.Name)
		assert.NotEmpty(t, tool.Category)
		assert.NotEmpty(t, tool.UseCase)
	}
}

func TestCourseOutlineMockSchema(t *testing.T) {
	t.Parallel()
	profile := testProfile()
	tools := []domain.AITool{{Name: "ChatGPT", Category: "Assistant", UseCase: "Drafting"}}
	p := CourseOutline(profile, tools)

	var result struct {
		Title   string       `json:"title"`
		Modules []ModuleStub `json:"modules"`
	}
	require.NoError(t, json.Unmarshal([]byte(p.Mock), &result))
	assert.Contains(t, result.Title, profile.Job)
	require.Len(t, result.Modules, 3)
	for _, m := range result.Modules {
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.Description)
		assert.NotEmpty(t, m.Objectives)
	}
}

func TestModuleExpansionMockSchema(t *testing.T) {
	t.Parallel()
	stub := testStub()
	p := ModuleExpansion(stub)

	var result struct {
		Title          string     `json:"title"`
		Lessons        []LessonStub `json:"lessons"`
		Quiz           []QuizStub   `json:"quiz"`
		ChatbotContext string       `json:"chatbot_context"`
	}
	require.NoError(t, json.Unmarshal([]byte(p.Mock), &result))
	assert.Equal(t, stub.Title, result.Title)
	assert.NotEmpty(t, result.Lessons)
	assert.Contains(t, result.ChatbotContext, stub.Title)

	require.NotEmpty(t, result.Quiz)
	for _, q := range result.Quiz {
		assert.Contains(t, q.Options, q.Answer, "quiz answer must be one of the options")
	}
}

func TestLessonBatchMockSchema(t *testing.T) {
	t.Parallel()
	p := LessonBatch(testStub())

	var result struct {
		Lessons []LessonStub `json:"lessons"`
	}
	require.NoError(t, json.Unmarshal([]byte(p.Mock), &result))
	require.NotEmpty(t, result.Lessons)
	for _, l := range result.Lessons {
		assert.NotEmpty(t, l.Title)
		assert.NotEmpty(t, l.Content)
	}
}

func TestLessonDevelopmentMockSchema(t *testing.T) {
	t.Parallel()
	input := LessonContext{
		Title:       "Introduction",
		ModuleTitle: "AI fundamentals",
		Description: "Understand the basics",
		Objectives:  []string{"Key concepts"},
		CourseTitle: "AI learning path",
	}
	p := LessonDevelopment(input)

	var result struct {
		ContentJSON struct {
			Title      string           `json:"title"`
			Sections   []domain.Section `json:"sections"`
			References []string         `json:"references"`
			Quiz       []QuizStub       `json:"quiz"`
		} `json:"content_json"`
	}
	require.NoError(t, json.Unmarshal([]byte(p.Mock), &result))
	assert.Equal(t, input.Title, result.ContentJSON.Title)
	require.NotEmpty(t, result.ContentJSON.Sections)
	for i, s := range result.ContentJSON.Sections {
		assert.NoError(t, s.Validate(), "section %d", i)
	}

	// Course context is surfaced as the leading callout when known.
	first := result.ContentJSON.Sections[0]
	assert.Equal(t, domain.SectionTypeCallout, first.Type)
	assert.Contains(t, first.Text, input.CourseTitle)
}

func TestLessonDevelopmentWithoutCourseContext(t *testing.T) {
	t.Parallel()
	p := LessonDevelopment(LessonContext{Title: "Introduction", ModuleTitle: "AI fundamentals"})

	var result struct {
		ContentJSON struct {
			Sections []domain.Section `json:"sections"`
		} `json:"content_json"`
	}
	require.NoError(t, json.Unmarshal([]byte(p.Mock), &result))
	require.NotEmpty(t, result.ContentJSON.Sections)
	assert.Equal(t, domain.SectionTypeText, result.ContentJSON.Sections[0].Type)
}

func TestSummaryMockSchema(t *testing.T) {
	t.Parallel()
	modules := []ModuleStub{testStub(), {Title: "Advanced prompting"}}
	p := Summary("AI learning path", modules)

	var result struct {
		Summary         string   `json:"summary"`
		SkillsGained    []string `json:"skills_gained"`
		CertificateText string   `json:"certificate_text"`
	}
	require.NoError(t, json.Unmarshal([]byte(p.Mock), &result))
	assert.Contains(t, result.Summary, "AI learning path")
	assert.NotEmpty(t, result.SkillsGained)
	assert.NotEmpty(t, result.CertificateText)
}

func TestChatPrompt(t *testing.T) {
	t.Parallel()

	t.Run("stored context becomes the system prompt", func(t *testing.T) {
		t.Parallel()
		p := Chat("You are a tutor for AI fundamentals.", "What is a prompt?")
		assert.Equal(t, "You are a tutor for AI fundamentals.", p.System)
		assert.Contains(t, p.User, "What is a prompt?")

		var result struct {
			Reply string `json:"reply"`
		}
		require.NoError(t, json.Unmarshal([]byte(p.Mock), &result))
		assert.NotEmpty(t, result.Reply)
	})

	t.Run("empty context falls back to a generic tutor", func(t *testing.T) {
		t.Parallel()
		p := Chat("", "What is a prompt?")
		assert.NotEmpty(t, p.System)
	})
}

func TestMocksAreDeterministic(t *testing.T) {
	t.Parallel()
	profile := testProfile()
	stub := testStub()

	assert.Equal(t, ToolsPractices(profile).Mock, ToolsPractices(profile).Mock)
	assert.Equal(t, CourseOutline(profile, nil).Mock, CourseOutline(profile, nil).Mock)
	assert.Equal(t, ModuleExpansion(stub).Mock, ModuleExpansion(stub).Mock)
	assert.Equal(t, Summary("Course", nil).Mock, Summary("Course", nil).Mock)
}
