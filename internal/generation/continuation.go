package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pathwise/pathwise-api/internal/domain"
	"github.com/pathwise/pathwise-api/internal/generation/prompts"
	"github.com/pathwise/pathwise-api/internal/platform/logger"
	"github.com/pathwise/pathwise-api/internal/store"
)

// maxContinuations caps how many times a lesson's content can be extended.
const maxContinuations = 10

// ErrContinuationLimit is returned when a lesson has already been extended
// maxContinuations times. The limit is checked before any provider call.
var ErrContinuationLimit = errors.New("lesson continuation limit reached")

// Continuer is the lesson continuation engine. A continuation appends newly
// generated sections after a numbered divider; existing sections are never
// modified or removed, so repeated continuations read as a growing document.
//
// Continuations are not serialized: two concurrent requests for the same
// lesson both pass the limit check and the later write wins. The cap bounds
// the damage.
type Continuer struct {
	generator *Service
	courses   store.CourseStore
	modules   store.ModuleStore
	lessons   store.LessonStore
	logger    *slog.Logger
}

// NewContinuer creates a continuation engine over the given generator and
// stores. If log is nil, the default logger is used.
func NewContinuer(
	generator *Service,
	courses store.CourseStore,
	modules store.ModuleStore,
	lessons store.LessonStore,
	log *slog.Logger,
) *Continuer {
	if log == nil {
		log = slog.Default()
	}
	return &Continuer{
		generator: generator,
		courses:   courses,
		modules:   modules,
		lessons:   lessons,
		logger:    log.With(slog.String("component", "lesson_continuer")),
	}
}

// ContinueLesson extends the given lesson with freshly generated sections and
// returns the lesson's updated structured content.
//
// Plain-text content from the expansion stage is first wrapped into a
// single-section document so the appended sections have a stable base. The
// continuation counter in the content's meta block increments by exactly one
// per successful call.
//
// Returns store.ErrLessonNotFound if the lesson does not exist and
// ErrContinuationLimit if the lesson is already at the cap.
func (c *Continuer) ContinueLesson(ctx context.Context, lessonID uuid.UUID) (*domain.LessonContent, error) {
	log := logger.FromContextOrDefault(ctx, c.logger).With(slog.String("lesson_id", lessonID.String()))

	lesson, err := c.lessons.GetByID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lesson: %w", err)
	}

	content, err := domain.ParseLessonContent(lesson.Content)
	if err != nil {
		if !errors.Is(err, domain.ErrContentNoSections) {
			return nil, err
		}
		content = domain.WrapPlainText(lesson.Content)
	}

	if content.Meta.Continuations >= maxContinuations {
		return nil, fmt.Errorf("%w (%d)", ErrContinuationLimit, content.Meta.Continuations)
	}

	module, err := c.modules.GetByID(ctx, lesson.ModuleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load module: %w", err)
	}
	course, err := c.courses.GetByID(ctx, module.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load course: %w", err)
	}

	generated, err := c.generator.DevelopLesson(ctx, prompts.LessonContext{
		Title:       lesson.Title,
		ModuleTitle: module.Title,
		Description: module.Description,
		Objectives:  module.Objectives,
		CourseTitle: course.Title,
	})
	if err != nil {
		return nil, err
	}

	n := content.Meta.Continuations + 1
	content.Sections = append(content.Sections, domain.Section{
		Type:    domain.SectionTypeCallout,
		Variant: domain.CalloutNote,
		Text:    fmt.Sprintf("Continuation %d", n),
	})
	content.Sections = append(content.Sections, generated.Sections...)
	content.References = appendMissing(content.References, generated.References)
	content.Quiz = append(content.Quiz, generated.Quiz...)
	content.Meta.Continuations = n
	if content.Title == "" {
		content.Title = generated.Title
	}

	serialized, err := content.Serialize()
	if err != nil {
		return nil, err
	}
	if err := c.lessons.UpdateContent(ctx, lesson.ID, serialized); err != nil {
		return nil, fmt.Errorf("failed to save continued lesson: %w", err)
	}

	log.Info("lesson continued",
		slog.Int("continuations", n),
		slog.Int("section_count", len(content.Sections)))
	return content, nil
}

// appendMissing appends the entries of extra that are not already present.
func appendMissing(base, extra []string) []string {
	for _, candidate := range extra {
		seen := false
		for _, existing := range base {
			if existing == candidate {
				seen = true
				break
			}
		}
		if !seen {
			base = append(base, candidate)
		}
	}
	return base
}
