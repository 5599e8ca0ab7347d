package api

import (
	"net/http"

	"github.com/pathwise/pathwise-api/internal/api/shared"
	"github.com/pathwise/pathwise-api/internal/service"
)

// CourseHandler handles course, module and lesson read requests.
type CourseHandler struct {
	courseService *service.CourseService
}

// NewCourseHandler creates a new CourseHandler with the given dependencies.
func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
	}
}

// ListMine handles GET /courses for the authenticated user.
func (h *CourseHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	courses, err := h.courseService.ListByUser(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, courses)
}

// GetCourse handles GET /courses/{id}.
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.courseService.GetCourse(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CourseDetailResponse{
		Course:        detail.Course,
		Modules:       detail.Modules,
		BestPractices: detail.BestPractices,
	})
}

// GetModule handles GET /modules/{id}.
func (h *CourseHandler) GetModule(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.courseService.GetModule(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ModuleDetailResponse{
		Module:  detail.Module,
		Lessons: detail.Lessons,
		Quiz:    detail.Quiz,
	})
}

// GetLesson handles GET /lessons/{id}.
func (h *CourseHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	lesson, err := h.courseService.GetLesson(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lesson)
}
