package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pathwise/pathwise-api/internal/domain"
	"github.com/pathwise/pathwise-api/internal/store"
)

// CourseDetail aggregates one course with its modules and best-practices
// record for a single read.
type CourseDetail struct {
	Course        *domain.Course
	Modules       []*domain.Module
	BestPractices *domain.BestPractices // nil when the pipeline has not finished
}

// ModuleDetail aggregates one module with its ordered lessons and quiz.
type ModuleDetail struct {
	Module  *domain.Module
	Lessons []*domain.Lesson
	Quiz    []*domain.QuizItem
}

// CourseService serves read access to generated courses and their content.
type CourseService struct {
	courses       store.CourseStore
	bestPractices store.BestPracticesStore
	modules       store.ModuleStore
	lessons       store.LessonStore
	quizzes       store.QuizStore
	logger        *slog.Logger
}

// NewCourseService creates a CourseService.
// If log is nil, the default logger is used.
func NewCourseService(
	courses store.CourseStore,
	bestPractices store.BestPracticesStore,
	modules store.ModuleStore,
	lessons store.LessonStore,
	quizzes store.QuizStore,
	log *slog.Logger,
) *CourseService {
	if courses == nil || bestPractices == nil || modules == nil || lessons == nil || quizzes == nil {
		panic("course service dependencies cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &CourseService{
		courses:       courses,
		bestPractices: bestPractices,
		modules:       modules,
		lessons:       lessons,
		quizzes:       quizzes,
		logger:        log.With(slog.String("component", "course_service")),
	}
}

// ListByUser retrieves all courses of a profile, newest first.
func (s *CourseService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Course, error) {
	return s.courses.FindByUser(ctx, userID)
}

// GetCourse retrieves a course together with its ordered modules and, when
// present, its best-practices record.
// Returns store.ErrCourseNotFound if the course does not exist.
func (s *CourseService) GetCourse(ctx context.Context, id uuid.UUID) (*CourseDetail, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	modules, err := s.modules.FindByCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	bp, err := s.bestPractices.GetByCourse(ctx, id)
	if err != nil {
		// Absence is normal for a course whose pipeline is still running.
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		bp = nil
	}

	return &CourseDetail{
		Course:        course,
		Modules:       modules,
		BestPractices: bp,
	}, nil
}

// GetModule retrieves a module together with its ordered lessons and quiz.
// Returns store.ErrModuleNotFound if the module does not exist.
func (s *CourseService) GetModule(ctx context.Context, id uuid.UUID) (*ModuleDetail, error) {
	module, err := s.modules.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lessons, err := s.lessons.FindByModule(ctx, id)
	if err != nil {
		return nil, err
	}

	quiz, err := s.quizzes.FindByModule(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ModuleDetail{
		Module:  module,
		Lessons: lessons,
		Quiz:    quiz,
	}, nil
}

// GetLesson retrieves a single lesson.
// Returns store.ErrLessonNotFound if the lesson does not exist.
func (s *CourseService) GetLesson(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	return s.lessons.GetByID(ctx, id)
}
