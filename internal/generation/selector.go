package generation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pathwise/pathwise-api/internal/config"
	"github.com/pathwise/pathwise-api/internal/llm"
	"github.com/pathwise/pathwise-api/internal/llm/google"
	"github.com/pathwise/pathwise-api/internal/llm/ollama"
	"github.com/pathwise/pathwise-api/internal/llm/openai"
)

// ErrNoProvider is returned by Resolve when configuration names no live
// provider. Callers normally consult UseMock first, which reports true in
// that situation.
var ErrNoProvider = errors.New("no model provider configured")

// ProviderSelector decides per call whether generation runs against the
// deterministic mock backend or a live provider, and constructs the live
// variant on demand. Clients are built fresh for every call so configuration
// is re-read and no connection state leaks between requests.
type ProviderSelector struct {
	cfg    config.LLMConfig
	logger *slog.Logger
}

// NewProviderSelector creates a selector over the given LLM configuration.
// If log is nil, the default logger is used.
func NewProviderSelector(cfg config.LLMConfig, log *slog.Logger) *ProviderSelector {
	if log == nil {
		log = slog.Default()
	}
	return &ProviderSelector{
		cfg:    cfg,
		logger: log.With(slog.String("component", "provider_selector")),
	}
}

// UseMock reports whether the mock backend must serve the next call. That is
// the case when mock mode is set explicitly, when no provider is configured,
// or when the configured provider's credential is absent. The local-runtime
// provider needs no credential and is exempt from the last rule.
func (s *ProviderSelector) UseMock() bool {
	if s.cfg.Mode == config.ModeMock {
		return true
	}
	switch s.cfg.Provider {
	case config.ProviderOpenAI:
		return s.cfg.OpenAIAPIKey == ""
	case config.ProviderGoogle:
		return s.cfg.GoogleAPIKey == ""
	case config.ProviderPerplexity:
		return s.cfg.PerplexityAPIKey == ""
	case config.ProviderOllama:
		return false
	default:
		return true
	}
}

// Resolve constructs the configured live provider variant. Each call returns
// a fresh client.
func (s *ProviderSelector) Resolve(ctx context.Context) (llm.Provider, error) {
	switch s.cfg.Provider {
	case config.ProviderOpenAI:
		return openai.NewClient(s.cfg.OpenAIAPIKey, s.cfg.Model)
	case config.ProviderGoogle:
		return google.NewClient(ctx, s.cfg.GoogleAPIKey, s.cfg.Model)
	case config.ProviderPerplexity:
		return openai.NewPerplexityClient(s.cfg.PerplexityAPIKey, s.cfg.Model)
	case config.ProviderOllama:
		return ollama.NewClient(s.cfg.OllamaBaseURL, s.cfg.Model)
	default:
		return nil, ErrNoProvider
	}
}
