package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pathwise/pathwise-api/internal/domain"
	"github.com/pathwise/pathwise-api/internal/generation/prompts"
	"github.com/pathwise/pathwise-api/internal/llm"
	"github.com/pathwise/pathwise-api/internal/platform/logger"
)

// ToolsPracticesResult is the parsed output of the tools/practices stage.
type ToolsPracticesResult struct {
	AITools       []domain.AITool `json:"ai_tools"`
	BestPractices []string        `json:"best_practices"`
}

// CourseOutlineResult is the parsed output of the course-outline stage.
type CourseOutlineResult struct {
	Title   string               `json:"title"`
	Modules []prompts.ModuleStub `json:"modules"`
}

// ModuleExpansionResult is the parsed output of the module-expansion stage.
// ChatbotContext is kept raw because providers return it either as a string
// or as a nested object.
type ModuleExpansionResult struct {
	Title          string               `json:"title"`
	Lessons        []prompts.LessonStub `json:"lessons"`
	Quiz           []prompts.QuizStub   `json:"quiz"`
	ChatbotContext json.RawMessage      `json:"chatbot_context"`
}

// ChatbotContextString normalizes the chatbot context to a string: a JSON
// string is unquoted, any other shape is kept as its serialized form.
func (r *ModuleExpansionResult) ChatbotContextString() string {
	if len(r.ChatbotContext) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(r.ChatbotContext, &s); err == nil {
		return s
	}
	return string(r.ChatbotContext)
}

// Service runs the typed generation operations. Every operation follows the
// same path: build the prompt, pick the mock or a freshly resolved live
// provider, run the call through the resilient executor, recover the JSON
// object from the raw response and decode it into the stage's result type.
type Service struct {
	selector *ProviderSelector
	executor *llm.Executor
	logger   *slog.Logger
}

// NewService creates a generation Service.
// If log is nil, the default logger is used.
func NewService(selector *ProviderSelector, executor *llm.Executor, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		selector: selector,
		executor: executor,
		logger:   log.With(slog.String("component", "generation_service")),
	}
}

// complete runs one prompt through the selected provider and the executor and
// returns the extracted JSON object. The mock payload travels the exact same
// path as live responses, so the executor and extractor are exercised in
// every mode.
func (s *Service) complete(ctx context.Context, prompt prompts.Prompt) (json.RawMessage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var provider llm.Provider
	if s.selector.UseMock() {
		log.Debug("serving generation from mock provider")
		provider = llm.NewMockProvider(prompt.Mock)
	} else {
		resolved, err := s.selector.Resolve(ctx)
		if err != nil {
			return nil, err
		}
		provider = resolved
	}

	raw, err := s.executor.Execute(ctx, func(ctx context.Context) (string, error) {
		return provider.CompleteJSON(ctx, prompt.System, prompt.User)
	})
	if err != nil {
		return nil, err
	}

	return llm.ExtractJSON(raw)
}

// completeInto runs the prompt and decodes the extracted object into out.
func (s *Service) completeInto(ctx context.Context, prompt prompts.Prompt, out any) error {
	obj, err := s.complete(ctx, prompt)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(obj, out); err != nil {
		return fmt.Errorf("%w: %v", llm.ErrMalformedResponse, err)
	}
	return nil
}

// ToolsPractices generates recommended AI tools and best practices for a
// profile.
func (s *Service) ToolsPractices(ctx context.Context, profile *domain.Profile) (*ToolsPracticesResult, error) {
	var result ToolsPracticesResult
	if err := s.completeInto(ctx, prompts.ToolsPractices(profile), &result); err != nil {
		return nil, fmt.Errorf("tools/practices generation failed: %w", err)
	}
	return &result, nil
}

// CourseOutline generates a course title and module outline from the profile
// and the previously generated tool list.
func (s *Service) CourseOutline(
	ctx context.Context,
	profile *domain.Profile,
	tools []domain.AITool,
) (*CourseOutlineResult, error) {
	var result CourseOutlineResult
	if err := s.completeInto(ctx, prompts.CourseOutline(profile, tools), &result); err != nil {
		return nil, fmt.Errorf("course outline generation failed: %w", err)
	}
	if result.Title == "" {
		return nil, fmt.Errorf("course outline generation failed: %w: missing title", llm.ErrMalformedResponse)
	}
	return &result, nil
}

// ExpandModule generates the lessons, quiz and chatbot context for one
// outline module.
func (s *Service) ExpandModule(ctx context.Context, stub prompts.ModuleStub) (*ModuleExpansionResult, error) {
	var result ModuleExpansionResult
	if err := s.completeInto(ctx, prompts.ModuleExpansion(stub), &result); err != nil {
		return nil, fmt.Errorf("module expansion failed: %w", err)
	}
	return &result, nil
}

// GenerateLessons generates an additional batch of lessons for a module.
func (s *Service) GenerateLessons(ctx context.Context, stub prompts.ModuleStub) ([]prompts.LessonStub, error) {
	var result struct {
		Lessons []prompts.LessonStub `json:"lessons"`
	}
	if err := s.completeInto(ctx, prompts.LessonBatch(stub), &result); err != nil {
		return nil, fmt.Errorf("lesson generation failed: %w", err)
	}
	return result.Lessons, nil
}

// lessonPayload mirrors the structured content a provider returns for one
// developed lesson.
type lessonPayload struct {
	Title      string               `json:"title"`
	Sections   []domain.Section     `json:"sections"`
	References []string             `json:"references"`
	Quiz       []domain.QuizContent `json:"quiz"`
}

// DevelopLesson generates structured sectioned content for one lesson.
// Providers wrap the content under a content_json key; some return the
// sections at the top level, and both shapes are accepted.
func (s *Service) DevelopLesson(ctx context.Context, input prompts.LessonContext) (*domain.LessonContent, error) {
	var result struct {
		ContentJSON *lessonPayload `json:"content_json"`
		lessonPayload
	}
	if err := s.completeInto(ctx, prompts.LessonDevelopment(input), &result); err != nil {
		return nil, fmt.Errorf("lesson development failed: %w", err)
	}

	payload := result.ContentJSON
	if payload == nil {
		payload = &result.lessonPayload
	}
	if len(payload.Sections) == 0 {
		return nil, fmt.Errorf("lesson development failed: %w: no sections", llm.ErrMalformedResponse)
	}

	for i := range payload.Sections {
		if err := payload.Sections[i].Validate(); err != nil {
			return nil, fmt.Errorf("lesson development failed: %w: %v", llm.ErrMalformedResponse, err)
		}
	}

	title := payload.Title
	if title == "" {
		title = input.Title
	}

	return &domain.LessonContent{
		SchemaVersion: domain.ContentSchemaVersion,
		Title:         title,
		Sections:      payload.Sections,
		References:    payload.References,
		Quiz:          payload.Quiz,
	}, nil
}

// Summary generates the course summary, skills gained and certificate text.
func (s *Service) Summary(
	ctx context.Context,
	courseTitle string,
	modules []prompts.ModuleStub,
) (*domain.CourseSummary, error) {
	var result domain.CourseSummary
	if err := s.completeInto(ctx, prompts.Summary(courseTitle, modules), &result); err != nil {
		return nil, fmt.Errorf("summary generation failed: %w", err)
	}
	return &result, nil
}

// Chat answers one tutoring message in the scope of a module's chatbot
// context.
func (s *Service) Chat(ctx context.Context, chatbotContext, message string) (string, error) {
	var result struct {
		Reply string `json:"reply"`
	}
	if err := s.completeInto(ctx, prompts.Chat(chatbotContext, message), &result); err != nil {
		return "", fmt.Errorf("chat generation failed: %w", err)
	}
	return result.Reply, nil
}
