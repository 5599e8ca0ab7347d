package generation

import (
	"context"
	"testing"

	"github.com/pathwise/pathwise-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderSelectorUseMock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.LLMConfig
		want bool
	}{
		{
			name: "explicit mock mode",
			cfg:  config.LLMConfig{Mode: config.ModeMock, Provider: config.ProviderOpenAI, OpenAIAPIKey: "sk-test"},
			want: true,
		},
		{
			name: "live openai without key",
			cfg:  config.LLMConfig{Mode: config.ModeLive, Provider: config.ProviderOpenAI},
			want: true,
		},
		{
			name: "live openai with key",
			cfg:  config.LLMConfig{Mode: config.ModeLive, Provider: config.ProviderOpenAI, OpenAIAPIKey: "sk-test"},
			want: false,
		},
		{
			name: "live google without key",
			cfg:  config.LLMConfig{Mode: config.ModeLive, Provider: config.ProviderGoogle},
			want: true,
		},
		{
			name: "live perplexity without key",
			cfg:  config.LLMConfig{Mode: config.ModeLive, Provider: config.ProviderPerplexity},
			want: true,
		},
		{
			name: "live ollama needs no credential",
			cfg:  config.LLMConfig{Mode: config.ModeLive, Provider: config.ProviderOllama},
			want: false,
		},
		{
			name: "live with no provider configured",
			cfg:  config.LLMConfig{Mode: config.ModeLive},
			want: true,
		},
		{
			name: "live with unknown provider",
			cfg:  config.LLMConfig{Mode: config.ModeLive, Provider: "bedrock"},
			want: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := NewProviderSelector(tc.cfg, nil)
			assert.Equal(t, tc.want, s.UseMock())
		})
	}
}

func TestProviderSelectorResolve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("no provider configured", func(t *testing.T) {
		t.Parallel()
		s := NewProviderSelector(config.LLMConfig{Mode: config.ModeLive}, nil)
		_, err := s.Resolve(ctx)
		assert.ErrorIs(t, err, ErrNoProvider)
	})

	t.Run("ollama resolves without credentials", func(t *testing.T) {
		t.Parallel()
		s := NewProviderSelector(config.LLMConfig{
			Mode:          config.ModeLive,
			Provider:      config.ProviderOllama,
			OllamaBaseURL: "http://localhost:11434",
			Model:         "llama3",
		}, nil)

		p, err := s.Resolve(ctx)
		require.NoError(t, err)
		require.NotNil(t, p)
	})

	t.Run("clients are built fresh per call", func(t *testing.T) {
		t.Parallel()
		s := NewProviderSelector(config.LLMConfig{
			Mode:         config.ModeLive,
			Provider:     config.ProviderOpenAI,
			OpenAIAPIKey: "sk-test",
			Model:        "gpt-4o-mini",
		}, nil)

		first, err := s.Resolve(ctx)
		require.NoError(t, err)
		second, err := s.Resolve(ctx)
		require.NoError(t, err)
		assert.NotSame(t, first, second)
	})
}
