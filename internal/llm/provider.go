package llm

import "context"

// Provider is the capability every model backend variant implements: a
// single JSON-oriented completion over a system and a user prompt.
//
// Implementations return text intended to parse as JSON, best-effort; the
// caller always re-validates via ExtractJSON. Transport failures surface as
// *ProviderError; JSON-parse failures are never caught or reinterpreted by
// providers.
type Provider interface {
	// CompleteJSON sends the two prompts to the backend and returns the raw
	// response text. The call may suspend for network I/O.
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Name constants for the provider variants, used in ProviderError.Provider.
const (
	NameOpenAI     = "openai"
	NameGoogle     = "google"
	NamePerplexity = "perplexity"
	NameOllama     = "ollama"
	NameMock       = "mock"
)
