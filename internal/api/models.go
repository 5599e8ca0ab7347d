package api

import (
	"github.com/google/uuid"
	"github.com/pathwise/pathwise-api/internal/domain"
	"github.com/pathwise/pathwise-api/internal/generation/prompts"
)

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the request body for user login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the response body for successful authentication.
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Token  string    `json:"token"`
}

// ProfileRequest is the request body for creating or updating a
// questionnaire profile.
type ProfileRequest struct {
	Job       string   `json:"job"        validate:"required"`
	Sector    string   `json:"sector"     validate:"required"`
	AILevel   string   `json:"ai_level"   validate:"required"`
	ToolsUsed []string `json:"tools_used"`
	WorkStyle string   `json:"work_style"`
}

// GenerateForProfileRequest names the profile a standalone generation
// operation runs against.
type GenerateForProfileRequest struct {
	ProfileID uuid.UUID `json:"profile_id" validate:"required"`
}

// GenerateCourseRequest is the request body for the course-outline
// generation endpoint. Tools may be omitted, in which case the outline is
// generated from the profile alone.
type GenerateCourseRequest struct {
	ProfileID uuid.UUID       `json:"profile_id" validate:"required"`
	AITools   []domain.AITool `json:"ai_tools"`
}

// ModuleStubRequest is the request body for module-scoped generation
// endpoints.
type ModuleStubRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description"`
	Objectives  []string `json:"objectives"`
}

// DevelopLessonRequest is the request body for the lesson-development
// endpoint.
type DevelopLessonRequest struct {
	Title       string   `json:"title"        validate:"required"`
	ModuleTitle string   `json:"module_title"`
	Description string   `json:"description"`
	Objectives  []string `json:"objectives"`
	CourseTitle string   `json:"course_title"`
}

// GenerateSummaryRequest is the request body for the summary endpoint.
type GenerateSummaryRequest struct {
	Title   string               `json:"title" validate:"required"`
	Modules []prompts.ModuleStub `json:"modules"`
}

// PipelineResponse is the response body for a completed pipeline run.
type PipelineResponse struct {
	CourseID uuid.UUID `json:"course_id"`
}

// ChatRequest is the request body for the module chat endpoint.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse is the response body for the module chat endpoint.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// CourseDetailResponse is the response body for a course read.
type CourseDetailResponse struct {
	Course        *domain.Course        `json:"course"`
	Modules       []*domain.Module      `json:"modules"`
	BestPractices *domain.BestPractices `json:"best_practices,omitempty"`
}

// ModuleDetailResponse is the response body for a module read.
type ModuleDetailResponse struct {
	Module  *domain.Module     `json:"module"`
	Lessons []*domain.Lesson   `json:"lessons"`
	Quiz    []*domain.QuizItem `json:"quiz"`
}
