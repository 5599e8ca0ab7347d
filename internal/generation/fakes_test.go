package generation

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/pathwise/pathwise-api/internal/domain"
	"github.com/pathwise/pathwise-api/internal/store"
)

// fakeStores is an in-memory implementation of the persistence interfaces,
// shared by the orchestrator and continuation tests.
type fakeStores struct {
	mu            sync.Mutex
	profiles      map[uuid.UUID]*domain.Profile
	courses       map[uuid.UUID]*domain.Course
	bestPractices map[uuid.UUID]*domain.BestPractices
	modules       map[uuid.UUID]*domain.Module
	lessons       map[uuid.UUID]*domain.Lesson
	quizItems     map[uuid.UUID]*domain.QuizItem
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		profiles:      make(map[uuid.UUID]*domain.Profile),
		courses:       make(map[uuid.UUID]*domain.Course),
		bestPractices: make(map[uuid.UUID]*domain.BestPractices),
		modules:       make(map[uuid.UUID]*domain.Module),
		lessons:       make(map[uuid.UUID]*domain.Lesson),
		quizItems:     make(map[uuid.UUID]*domain.QuizItem),
	}
}

type fakeProfileStore struct{ s *fakeStores }

func (f *fakeProfileStore) Create(_ context.Context, p *domain.Profile) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.profiles[p.ID] = p
	return nil
}

func (f *fakeProfileStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Profile, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	p, ok := f.s.profiles[id]
	if !ok {
		return nil, store.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileStore) GetByEmail(_ context.Context, email string) (*domain.Profile, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, p := range f.s.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, store.ErrProfileNotFound
}

func (f *fakeProfileStore) Update(_ context.Context, p *domain.Profile) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.profiles[p.ID]; !ok {
		return store.ErrProfileNotFound
	}
	f.s.profiles[p.ID] = p
	return nil
}

type fakeCourseStore struct{ s *fakeStores }

func (f *fakeCourseStore) Create(_ context.Context, c *domain.Course) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.courses[c.ID] = c
	return nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Course, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	c, ok := f.s.courses[id]
	if !ok {
		return nil, store.ErrCourseNotFound
	}
	return c, nil
}

func (f *fakeCourseStore) FindByUser(_ context.Context, userID uuid.UUID) ([]*domain.Course, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := []*domain.Course{}
	for _, c := range f.s.courses {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) UpdateSummary(_ context.Context, id uuid.UUID, summary *domain.CourseSummary) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	c, ok := f.s.courses[id]
	if !ok {
		return store.ErrCourseNotFound
	}
	c.Summary = summary
	return nil
}

type fakeBestPracticesStore struct{ s *fakeStores }

func (f *fakeBestPracticesStore) Create(_ context.Context, bp *domain.BestPractices) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, existing := range f.s.bestPractices {
		if existing.CourseID == bp.CourseID {
			return store.ErrDuplicate
		}
	}
	f.s.bestPractices[bp.ID] = bp
	return nil
}

func (f *fakeBestPracticesStore) GetByCourse(_ context.Context, courseID uuid.UUID) (*domain.BestPractices, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, bp := range f.s.bestPractices {
		if bp.CourseID == courseID {
			return bp, nil
		}
	}
	return nil, store.ErrNotFound
}

type fakeModuleStore struct{ s *fakeStores }

func (f *fakeModuleStore) Create(_ context.Context, m *domain.Module) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, existing := range f.s.modules {
		if existing.CourseID == m.CourseID && existing.OrderIndex == m.OrderIndex {
			return store.ErrInvalidEntity
		}
	}
	f.s.modules[m.ID] = m
	return nil
}

func (f *fakeModuleStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Module, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	m, ok := f.s.modules[id]
	if !ok {
		return nil, store.ErrModuleNotFound
	}
	return m, nil
}

func (f *fakeModuleStore) FindByCourse(_ context.Context, courseID uuid.UUID) ([]*domain.Module, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := []*domain.Module{}
	for _, m := range f.s.modules {
		if m.CourseID == courseID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (f *fakeModuleStore) CountByCourse(_ context.Context, courseID uuid.UUID) (int, error) {
	modules, _ := f.FindByCourse(context.Background(), courseID)
	return len(modules), nil
}

type fakeLessonStore struct{ s *fakeStores }

func (f *fakeLessonStore) Create(_ context.Context, l *domain.Lesson) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, existing := range f.s.lessons {
		if existing.ModuleID == l.ModuleID && existing.OrderIndex == l.OrderIndex {
			return store.ErrInvalidEntity
		}
	}
	f.s.lessons[l.ID] = l
	return nil
}

func (f *fakeLessonStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Lesson, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	l, ok := f.s.lessons[id]
	if !ok {
		return nil, store.ErrLessonNotFound
	}
	return l, nil
}

func (f *fakeLessonStore) FindByModule(_ context.Context, moduleID uuid.UUID) ([]*domain.Lesson, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := []*domain.Lesson{}
	for _, l := range f.s.lessons {
		if l.ModuleID == moduleID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (f *fakeLessonStore) UpdateContent(_ context.Context, id uuid.UUID, content string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	l, ok := f.s.lessons[id]
	if !ok {
		return store.ErrLessonNotFound
	}
	l.Content = content
	return nil
}

type fakeQuizStore struct{ s *fakeStores }

func (f *fakeQuizStore) Create(_ context.Context, item *domain.QuizItem) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.quizItems[item.ID] = item
	return nil
}

func (f *fakeQuizStore) FindByModule(_ context.Context, moduleID uuid.UUID) ([]*domain.QuizItem, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := []*domain.QuizItem{}
	for _, item := range f.s.quizItems {
		if item.ModuleID == moduleID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

// Ensure the fakes satisfy the store interfaces.
var (
	_ store.ProfileStore       = (*fakeProfileStore)(nil)
	_ store.CourseStore        = (*fakeCourseStore)(nil)
	_ store.BestPracticesStore = (*fakeBestPracticesStore)(nil)
	_ store.ModuleStore        = (*fakeModuleStore)(nil)
	_ store.LessonStore        = (*fakeLessonStore)(nil)
	_ store.QuizStore          = (*fakeQuizStore)(nil)
)
