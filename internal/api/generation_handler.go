package api

import (
	"net/http"

	"github.com/pathwise/pathwise-api/internal/api/shared"
	"github.com/pathwise/pathwise-api/internal/generation"
	"github.com/pathwise/pathwise-api/internal/generation/prompts"
	"github.com/pathwise/pathwise-api/internal/service"
)

// GenerationHandler handles the AI generation endpoints: the standalone
// generation operations, the full course pipeline, lesson continuation and
// module chat.
type GenerationHandler struct {
	generator      *generation.Service
	orchestrator   *generation.Orchestrator
	continuer      *generation.Continuer
	profileService *service.ProfileService
	courseService  *service.CourseService
}

// NewGenerationHandler creates a new GenerationHandler with the given
// dependencies.
func NewGenerationHandler(
	generator *generation.Service,
	orchestrator *generation.Orchestrator,
	continuer *generation.Continuer,
	profileService *service.ProfileService,
	courseService *service.CourseService,
) *GenerationHandler {
	return &GenerationHandler{
		generator:      generator,
		orchestrator:   orchestrator,
		continuer:      continuer,
		profileService: profileService,
		courseService:  courseService,
	}
}

// ToolsPractices handles POST /ai/tools-practices. It generates the tool and
// practice recommendations for a stored profile without persisting anything.
func (h *GenerationHandler) ToolsPractices(w http.ResponseWriter, r *http.Request) {
	var req GenerateForProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	profile, err := h.profileService.Get(r.Context(), req.ProfileID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	result, err := h.generator.ToolsPractices(r.Context(), profile)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GenerateCourse handles POST /ai/generate-course. It generates a course
// outline for a stored profile; when the request carries no tool list the
// tools/practices stage runs first.
func (h *GenerationHandler) GenerateCourse(w http.ResponseWriter, r *http.Request) {
	var req GenerateCourseRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	profile, err := h.profileService.Get(r.Context(), req.ProfileID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	tools := req.AITools
	if len(tools) == 0 {
		tp, err := h.generator.ToolsPractices(r.Context(), profile)
		if err != nil {
			HandleServiceError(w, r, err)
			return
		}
		tools = tp.AITools
	}

	outline, err := h.generator.CourseOutline(r.Context(), profile, tools)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, outline)
}

// GenerateModule handles POST /ai/generate-module. It expands one module
// stub into lessons, a quiz and a chatbot context.
func (h *GenerationHandler) GenerateModule(w http.ResponseWriter, r *http.Request) {
	stub, ok := h.decodeModuleStub(w, r)
	if !ok {
		return
	}

	expansion, err := h.generator.ExpandModule(r.Context(), stub)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, expansion)
}

// GenerateLessons handles POST /ai/generate-lessons. It generates an
// additional lesson batch for a module stub.
func (h *GenerationHandler) GenerateLessons(w http.ResponseWriter, r *http.Request) {
	stub, ok := h.decodeModuleStub(w, r)
	if !ok {
		return
	}

	lessons, err := h.generator.GenerateLessons(r.Context(), stub)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{"lessons": lessons})
}

// DevelopLesson handles POST /ai/develop-lesson. It generates structured
// content for one lesson without persisting it.
func (h *GenerationHandler) DevelopLesson(w http.ResponseWriter, r *http.Request) {
	var req DevelopLessonRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	content, err := h.generator.DevelopLesson(r.Context(), prompts.LessonContext{
		Title:       req.Title,
		ModuleTitle: req.ModuleTitle,
		Description: req.Description,
		Objectives:  req.Objectives,
		CourseTitle: req.CourseTitle,
	})
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, content)
}

// GenerateSummary handles POST /ai/generate-summary.
func (h *GenerationHandler) GenerateSummary(w http.ResponseWriter, r *http.Request) {
	var req GenerateSummaryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	summary, err := h.generator.Summary(r.Context(), req.Title, req.Modules)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}

// RunPipeline handles POST /ai/run-pipeline. It runs the full generation
// pipeline for the authenticated user and returns the new course ID.
func (h *GenerationHandler) RunPipeline(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	courseID, err := h.orchestrator.RunPipeline(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, PipelineResponse{CourseID: courseID})
}

// ContinueLesson handles POST /lessons/{id}/continue.
func (h *GenerationHandler) ContinueLesson(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	content, err := h.continuer.ContinueLesson(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, content)
}

// Chat handles POST /modules/{id}/chat. The module's stored chatbot context
// primes the tutoring exchange.
func (h *GenerationHandler) Chat(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req ChatRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	detail, err := h.courseService.GetModule(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	reply, err := h.generator.Chat(r.Context(), detail.Module.ChatbotContext, req.Message)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ChatResponse{Reply: reply})
}

// decodeModuleStub decodes and validates the shared module-stub request
// body, writing the error response on failure.
func (h *GenerationHandler) decodeModuleStub(
	w http.ResponseWriter,
	r *http.Request,
) (prompts.ModuleStub, bool) {
	var req ModuleStubRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return prompts.ModuleStub{}, false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return prompts.ModuleStub{}, false
	}

	return prompts.ModuleStub{
		Title:       req.Title,
		Description: req.Description,
		Objectives:  req.Objectives,
	}, true
}
