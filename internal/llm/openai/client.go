// Package openai implements the llm.Provider capability for OpenAI-protocol
// chat-completion backends. The same client serves both the OpenAI variant
// and the Perplexity variant, which speaks the identical wire protocol from
// a different base URL.
package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/pathwise/pathwise-api/internal/llm"
	openai "github.com/sashabaranov/go-openai"
)

// Default model identifiers when configuration names none.
const (
	DefaultOpenAIModel     = "gpt-4o-mini"
	DefaultPerplexityModel = "pplx-70b-online"
)

// perplexityBaseURL is the fixed host for the Perplexity variant.
const perplexityBaseURL = "https://api.perplexity.ai"

// Client implements llm.Provider over an OpenAI-protocol chat endpoint.
type Client struct {
	client *openai.Client
	model  string
	name   string
	// jsonMode requests the enforced-JSON response format. Perplexity does
	// not support it, so only the OpenAI variant sets it.
	jsonMode bool
}

// Ensure Client implements the llm.Provider interface.
var _ llm.Provider = (*Client)(nil)

// NewClient creates the OpenAI provider variant.
// Returns an error if apiKey is empty. An empty model selects the default.
func NewClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &Client{
		client:   openai.NewClient(apiKey),
		model:    model,
		name:     llm.NameOpenAI,
		jsonMode: true,
	}, nil
}

// NewPerplexityClient creates the Perplexity provider variant: the same chat
// protocol against api.perplexity.ai, without the JSON response format.
func NewPerplexityClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("perplexity api key is required")
	}
	if model == "" {
		model = DefaultPerplexityModel
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = perplexityBaseURL

	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		name:   llm.NamePerplexity,
	}, nil
}

// CompleteJSON implements llm.Provider. It sends a two-message exchange
// (system + user) with deterministic sampling and returns the first choice's
// content verbatim.
func (c *Client) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		// The client omits a literal zero temperature from the request body;
		// the smallest positive value keeps sampling deterministic.
		Temperature: 1e-8,
	}
	if c.jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", llm.NewProviderError(c.name, apiErr.HTTPStatusCode, apiErr.Message, err)
		}
		return "", llm.NewProviderError(c.name, 0, "", err)
	}

	if len(resp.Choices) == 0 {
		return "{}", nil
	}
	return resp.Choices[0].Message.Content, nil
}
