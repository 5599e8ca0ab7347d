// Package prompts contains the pure prompt generators of the generation
// pipeline. Each generator maps domain input to a (system, user) prompt pair
// plus a deterministic mock payload matching the expected response schema;
// the mock payload is what the pipeline consumes when the provider selector
// resolves to the network-free mock variant.
package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pathwise/pathwise-api/internal/domain"
)

// Prompt is the output of one prompt generator.
type Prompt struct {
	// System is the system prompt establishing the JSON-only contract.
	System string
	// User is the task prompt carrying the serialized domain input.
	User string
	// Mock is a deterministic payload matching the generator's response
	// schema, used verbatim in mock mode.
	Mock string
}

// ModuleStub is one module entry of a generated course outline, and the
// input to the module-expansion and lesson-batch generators.
type ModuleStub struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Objectives  []string `json:"objectives"`
}

// LessonStub is one lesson entry of a module expansion or lesson batch.
type LessonStub struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// QuizStub is one quiz entry of a module expansion.
type QuizStub struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// LessonContext is the input to the lesson-development generator: the lesson
// plus enough surrounding module/course context to develop it coherently.
type LessonContext struct {
	Title       string
	ModuleTitle string
	Description string
	Objectives  []string
	CourseTitle string
}

// mustJSON serializes a value for embedding into a prompt. Prompt inputs are
// plain structs and slices; marshaling them cannot fail.
func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("prompt input not serializable: %v", err))
	}
	return string(data)
}

// ToolsPractices generates the stage-1 prompt: recommended AI tools and best
// practices for a profile.
//
// Expected response schema:
//
//	{ ai_tools: [{name, category, use_case}], best_practices: string[] }
func ToolsPractices(profile *domain.Profile) Prompt {
	input := map[string]any{
		"job":        profile.Job,
		"sector":     profile.Sector,
		"ai_level":   profile.AILevel,
		"tools_used": profile.ToolsUsed,
		"work_style": profile.WorkStyle,
	}

	mock := map[string]any{
		"ai_tools": []domain.AITool{
			{Name: "ChatGPT", Category: "Assistant", UseCase: "Drafting and ideation"},
			{Name: "Perplexity", Category: "Research", UseCase: "Information retrieval and synthesis"},
			{Name: "Midjourney", Category: "Visual creation", UseCase: "Image generation"},
		},
		"best_practices": []string{
			"Verify sources and factual accuracy",
			"Never include sensitive data in prompts",
			"Document prompts that work well",
			"Measure impact before rolling out",
			"Train teams on responsible usage",
		},
	}

	return Prompt{
		System: "You are an assistant that must respond strictly with a JSON object, no prose.",
		User: "Generate AI tools and best practices for a user profile. " +
			"Return JSON: { ai_tools: [{ name, category, use_case }], best_practices: string[] }. " +
			"Profile: " + mustJSON(input),
		Mock: mustJSON(mock),
	}
}

// CourseOutline generates the stage-2 prompt: a course title and module
// outline derived from the profile and the stage-1 tool list.
//
// Expected response schema:
//
//	{ title, modules: [{title, description, objectives: string[]}] }
func CourseOutline(profile *domain.Profile, tools []domain.AITool) Prompt {
	mock := map[string]any{
		"title": fmt.Sprintf("AI learning path for %s", profile.Job),
		"modules": []ModuleStub{
			{
				Title:       "AI fundamentals",
				Description: "Understand the basics and common use cases",
				Objectives:  []string{"Key concepts", "Concrete cases", "Good practices"},
			},
			{
				Title:       "AI tools for everyday work",
				Description: "Automate and improve productivity",
				Objectives:  []string{"Assistants", "Automation", "Quality"},
			},
			{
				Title:       "Advanced prompting",
				Description: "Techniques for reliable results",
				Objectives:  []string{"Structure prompts", "Evaluate answers", "Iterate"},
			},
		},
	}

	return Prompt{
		System: "You must respond strictly with a JSON object. No extra text.",
		User: "Generate a course overview title and modules based on tools. " +
			"Return JSON { title, modules: [{ title, description, objectives: string[] }] }. " +
			"Profile: " + mustJSON(map[string]string{"job": profile.Job, "sector": profile.Sector}) +
			". Tools: " + mustJSON(tools),
		Mock: mustJSON(mock),
	}
}

// ModuleExpansion generates the stage-3 prompt: lessons, a quiz and a
// chatbot context for one outline module.
//
// Expected response schema:
//
//	{ title, lessons: [{title, content}], quiz: [{question, options, answer}], chatbot_context }
func ModuleExpansion(stub ModuleStub) Prompt {
	mock := map[string]any{
		"title": stub.Title,
		"lessons": []LessonStub{
			{Title: "Introduction", Content: fmt.Sprintf("Overview of the module: %s", stub.Title)},
			{Title: "Case study", Content: "Practical examples and demonstrations"},
			{Title: "Hands-on practice", Content: "Guided exercises to build skills"},
		},
		"quiz": []QuizStub{
			{
				Question: "What is a good use of LLMs?",
				Options:  []string{"Automate everything", "Improve productivity", "Replace humans", "Ignore accuracy"},
				Answer:   "Improve productivity",
			},
			{
				Question: "What should be avoided?",
				Options:  []string{"Sensitive data", "Documenting prompts", "Measuring impact", "Training teams"},
				Answer:   "Sensitive data",
			},
			{
				Question: "Which tool fits research tasks?",
				Options:  []string{"Perplexity", "Midjourney", "Photoshop", "Figma"},
				Answer:   "Perplexity",
			},
		},
		"chatbot_context": fmt.Sprintf(
			"You are an AI tutor specialized in the module %q. Answer concisely and helpfully.", stub.Title),
	}

	return Prompt{
		System: "Respond strictly with JSON only.",
		User: "Expand a module into lessons and a quiz. " +
			"Return JSON { title, lessons: [{title,content}], quiz: [{question,options,answer}], chatbot_context }. " +
			"Module: " + mustJSON(stub),
		Mock: mustJSON(mock),
	}
}

// LessonBatch generates the auxiliary prompt extending a module with
// additional lessons.
//
// Expected response schema:
//
//	{ lessons: [{title, content}] }
func LessonBatch(stub ModuleStub) Prompt {
	mock := map[string]any{
		"lessons": []LessonStub{
			{
				Title:   fmt.Sprintf("New concepts: %s", stub.Title),
				Content: "Key concepts explored in depth with concrete applications.",
			},
			{
				Title:   "Guided workshop",
				Content: "Practical steps to reinforce understanding.",
			},
		},
	}

	return Prompt{
		System: "Respond strictly with JSON only.",
		User: "Generate pedagogical lessons for a module. " +
			"Return JSON { lessons: [{title,content}] }. " +
			"Module: " + mustJSON(stub),
		Mock: mustJSON(mock),
	}
}

// LessonDevelopment generates the prompt turning one lesson into structured
// sectioned content, used by both the develop-lesson endpoint and the
// continuation engine.
//
// Expected response schema:
//
//	{ content_json: { title, sections: Section[], references?: string[], quiz?: QuizItem[] } }
func LessonDevelopment(input LessonContext) Prompt {
	sections := []domain.Section{}
	if input.CourseTitle != "" {
		sections = append(sections, domain.Section{
			Type:    domain.SectionTypeCallout,
			Variant: domain.CalloutNote,
			Heading: "Course context",
			Text:    fmt.Sprintf("Part of the course: %s", input.CourseTitle),
		})
	}
	sections = append(sections,
		domain.Section{
			Type:    domain.SectionTypeText,
			Heading: "Overview",
			Text:    fmt.Sprintf("Build a strong foundation for %q within %s.", input.Title, input.ModuleTitle),
		},
		domain.Section{
			Type:    domain.SectionTypeList,
			Heading: "What you will learn",
			Items: []string{
				"Core ideas and terminology",
				"How the topic applies to day-to-day work",
				"Common pitfalls and how to avoid them",
			},
		},
		domain.Section{
			Type:    domain.SectionTypeList,
			Heading: "Practical steps",
			Items: []string{
				"Start from a small, measurable goal",
				"Draft a first version with an assistant",
				"Review, correct and document the result",
				"Iterate with feedback",
			},
		},
		domain.Section{
			Type:    domain.SectionTypeCallout,
			Variant: domain.CalloutWarning,
			Text:    "Validate generated output before relying on it.",
		},
		domain.Section{
			Type:     domain.SectionTypeCode,
			Heading:  "Example",
			Language: "python",
			Code:     "result = assistant.ask(prompt)\nprint(result)",
		},
		domain.Section{
			Type:    domain.SectionTypeText,
			Heading: "Next",
			Text:    "Continue with the next lesson of the module.",
		},
	)

	mock := map[string]any{
		"content_json": map[string]any{
			"title":      input.Title,
			"sections":   sections,
			"references": []string{"https://ollama.com/", "https://scikit-learn.org/"},
			"quiz": []QuizStub{
				{
					Question: "What should you do before relying on generated output?",
					Options:  []string{"Validate it", "Publish it", "Ignore it", "Delete it"},
					Answer:   "Validate it",
				},
			},
		},
	}

	return Prompt{
		System: "Respond strictly with JSON only.",
		User: "Develop a lesson as structured JSON. " +
			`Return JSON { content_json: { title: string, sections: Array< ` +
			`{ type: "text", heading?: string, text: string } | ` +
			`{ type: "list", heading?: string, items: string[] } | ` +
			`{ type: "code", heading?: string, language: string, code: string } | ` +
			`{ type: "callout", variant: "tip" | "warning" | "note", text: string } >, ` +
			`references?: string[], quiz?: Array<{ question: string, options: string[], answer: string }> } }.` +
			"\nLesson title: " + input.Title +
			". Module: " + input.ModuleTitle +
			". Course: " + input.CourseTitle +
			". Description: " + input.Description +
			". Objectives: " + strings.Join(input.Objectives, ", "),
		Mock: mustJSON(mock),
	}
}

// Summary generates the stage-4 prompt: a course summary, skills gained and
// certificate text.
//
// Expected response schema:
//
//	{ summary, skills_gained: string[], certificate_text }
func Summary(courseTitle string, modules []ModuleStub) Prompt {
	mock := map[string]any{
		"summary": fmt.Sprintf(
			"The course %q covers %d modules of AI tools and practices.", courseTitle, len(modules)),
		"skills_gained": []string{"Prompting", "AI awareness", "Automation", "Critical thinking"},
		"certificate_text": "Congratulations on completing this AI learning path. " +
			"You have built solid foundations and responsible practices.",
	}

	return Prompt{
		System: "Return a strict JSON object only.",
		User: "Summarize a course and list skills gained and a short certificate text. " +
			"Return JSON { summary, skills_gained: string[], certificate_text }. " +
			"Course: " + mustJSON(map[string]any{"title": courseTitle, "modules": modules}),
		Mock: mustJSON(mock),
	}
}

// Chat generates the tutoring prompt for a module-scoped chat exchange. The
// stored chatbot context becomes the system prompt; an empty context falls
// back to a generic tutor.
//
// Expected response schema:
//
//	{ reply: string }
func Chat(chatbotContext, message string) Prompt {
	system := chatbotContext
	if system == "" {
		system = "You are a helpful tutor. Answer concisely."
	}

	mock := map[string]string{
		"reply": fmt.Sprintf("Here is a short answer to your question: %s", message),
	}

	return Prompt{
		System: system,
		User: "Respond to the user's message. Return JSON { reply: string }. " +
			"User message: " + message,
		Mock: mustJSON(mock),
	}
}
