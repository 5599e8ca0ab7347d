package generation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pathwise/pathwise-api/internal/domain"
	"github.com/pathwise/pathwise-api/internal/generation/prompts"
	"github.com/pathwise/pathwise-api/internal/platform/logger"
	"github.com/pathwise/pathwise-api/internal/store"
)

// Orchestrator runs the full course-generation pipeline for one user and
// persists each stage's output as it completes. Modules are expanded
// strictly in outline order so their order indices reflect the generated
// curriculum.
type Orchestrator struct {
	generator     *Service
	profiles      store.ProfileStore
	courses       store.CourseStore
	bestPractices store.BestPracticesStore
	modules       store.ModuleStore
	lessons       store.LessonStore
	quizzes       store.QuizStore
	logger        *slog.Logger
}

// NewOrchestrator creates a pipeline orchestrator over the given generator
// and stores. If log is nil, the default logger is used.
func NewOrchestrator(
	generator *Service,
	profiles store.ProfileStore,
	courses store.CourseStore,
	bestPractices store.BestPracticesStore,
	modules store.ModuleStore,
	lessons store.LessonStore,
	quizzes store.QuizStore,
	log *slog.Logger,
) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{
		generator:     generator,
		profiles:      profiles,
		courses:       courses,
		bestPractices: bestPractices,
		modules:       modules,
		lessons:       lessons,
		quizzes:       quizzes,
		logger:        log.With(slog.String("component", "pipeline_orchestrator")),
	}
}

// RunPipeline generates a complete course for the given user and returns the
// new course's ID.
//
// The pipeline has four stages: tools/practices, course outline, sequential
// module expansion, and summary. The course row is created as soon as the
// outline exists, carrying the raw stage-1 output; modules, lessons and quiz
// items are persisted per expansion with contiguous zero-based order
// indices; the summary and the best-practices record land last. A failure
// mid-pipeline leaves earlier stages' rows in place.
//
// Returns store.ErrProfileNotFound if the user has no profile.
func (o *Orchestrator) RunPipeline(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	log := logger.FromContextOrDefault(ctx, o.logger).With(slog.String("user_id", userID.String()))

	profile, err := o.profiles.GetByID(ctx, userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to load profile: %w", err)
	}

	log.Info("course pipeline started")

	toolsPractices, err := o.generator.ToolsPractices(ctx, profile)
	if err != nil {
		return uuid.Nil, err
	}
	log.Info("tools and practices generated",
		slog.Int("tool_count", len(toolsPractices.AITools)),
		slog.Int("practice_count", len(toolsPractices.BestPractices)))

	outline, err := o.generator.CourseOutline(ctx, profile, toolsPractices.AITools)
	if err != nil {
		return uuid.Nil, err
	}

	course, err := domain.NewCourse(userID, outline.Title, toolsPractices.AITools, toolsPractices.BestPractices)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid generated course: %w", err)
	}
	if err := o.courses.Create(ctx, course); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save course: %w", err)
	}
	log = log.With(slog.String("course_id", course.ID.String()))
	log.Info("course outline persisted",
		slog.String("title", course.Title),
		slog.Int("module_count", len(outline.Modules)))

	for i, stub := range outline.Modules {
		if err := o.expandAndPersistModule(ctx, course.ID, stub, i); err != nil {
			return uuid.Nil, err
		}
	}

	summary, err := o.generator.Summary(ctx, outline.Title, outline.Modules)
	if err != nil {
		return uuid.Nil, err
	}
	if err := o.courses.UpdateSummary(ctx, course.ID, summary); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save course summary: %w", err)
	}

	bp, err := domain.NewBestPractices(course.ID, toolsPractices.BestPractices)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid best practices record: %w", err)
	}
	if err := o.bestPractices.Create(ctx, bp); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save best practices: %w", err)
	}

	log.Info("course pipeline completed")
	return course.ID, nil
}

// expandAndPersistModule runs stage 3 for one outline module and persists the
// module with its lessons and quiz. Quiz entries whose answer is not among
// their options are dropped rather than failing the pipeline.
func (o *Orchestrator) expandAndPersistModule(
	ctx context.Context,
	courseID uuid.UUID,
	stub prompts.ModuleStub,
	orderIndex int,
) error {
	log := logger.FromContextOrDefault(ctx, o.logger)

	expansion, err := o.generator.ExpandModule(ctx, stub)
	if err != nil {
		return err
	}

	title := expansion.Title
	if title == "" {
		title = stub.Title
	}

	module, err := domain.NewModule(
		courseID, title, stub.Description, stub.Objectives,
		expansion.ChatbotContextString(), orderIndex,
	)
	if err != nil {
		return fmt.Errorf("invalid generated module: %w", err)
	}
	if err := o.modules.Create(ctx, module); err != nil {
		return fmt.Errorf("failed to save module: %w", err)
	}

	for j, lessonStub := range expansion.Lessons {
		lesson, err := domain.NewLesson(module.ID, lessonStub.Title, lessonStub.Content, j)
		if err != nil {
			return fmt.Errorf("invalid generated lesson: %w", err)
		}
		if err := o.lessons.Create(ctx, lesson); err != nil {
			return fmt.Errorf("failed to save lesson: %w", err)
		}
	}

	quizIndex := 0
	for _, quizStub := range expansion.Quiz {
		item, err := domain.NewQuizItem(module.ID, quizStub.Question, quizStub.Options, quizStub.Answer, quizIndex)
		if err != nil {
			log.Warn("dropping invalid quiz item",
				slog.String("module_id", module.ID.String()),
				slog.String("error", err.Error()))
			continue
		}
		if err := o.quizzes.Create(ctx, item); err != nil {
			return fmt.Errorf("failed to save quiz item: %w", err)
		}
		quizIndex++
	}

	log.Info("module expanded",
		slog.String("module_id", module.ID.String()),
		slog.Int("order_index", orderIndex),
		slog.Int("lesson_count", len(expansion.Lessons)),
		slog.Int("quiz_count", quizIndex))
	return nil
}
