package config

// Config holds all application configuration.
// It is constructed once at process start and threaded explicitly into the
// components that need it; nothing reads configuration ad hoc at call time.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// LLM provider names recognized by the selector. The order of this list is the
// fixed selection precedence when resolving a configured provider.
const (
	ProviderOpenAI     = "openai"
	ProviderGoogle     = "google"
	ProviderPerplexity = "perplexity"
	ProviderOllama     = "ollama"
)

// LLM operating modes.
const (
	ModeMock = "mock"
	ModeLive = "live"
)

// LLMConfig contains all model-provider integration settings.
type LLMConfig struct {
	// Mode selects between the deterministic mock backend and live providers.
	// Mock mode never performs network I/O.
	Mode string `mapstructure:"mode" validate:"required,oneof=mock live"`

	// Provider names the active variant (openai, google, perplexity, ollama).
	// Empty means no provider is configured and the mock backend is used.
	Provider string `mapstructure:"provider" validate:"omitempty,oneof=openai google perplexity ollama"`

	// Model is the provider-specific model identifier. Empty selects each
	// provider's default.
	Model string `mapstructure:"model"`

	OpenAIAPIKey     string `mapstructure:"openai_api_key"`
	GoogleAPIKey     string `mapstructure:"google_api_key"`
	PerplexityAPIKey string `mapstructure:"perplexity_api_key"`

	// OllamaBaseURL is the base URL of the local Ollama runtime.
	OllamaBaseURL string `mapstructure:"ollama_base_url"`

	// TimeoutMs is the per-attempt budget for one provider call, in milliseconds.
	TimeoutMs int `mapstructure:"timeout_ms" validate:"required,gt=0"`

	// MaxRetries is the number of additional attempts after the first failure.
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0"`
}
