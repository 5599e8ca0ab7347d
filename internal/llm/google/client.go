// Package google implements the llm.Provider capability using Google's
// structured-generation API. Unlike the chat variants it issues a single-turn
// request with a system instruction and a declared JSON output mode.
package google

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pathwise/pathwise-api/internal/llm"
	"google.golang.org/genai"
)

// DefaultModel is used when configuration names no model. The 1.5 models
// accept AI Studio API keys; 2.5 models typically require OAuth via Vertex.
const DefaultModel = "gemini-1.5-flash"

// Client implements llm.Provider over the Google generative API.
type Client struct {
	client *genai.Client
	model  string
}

// Ensure Client implements the llm.Provider interface.
var _ llm.Provider = (*Client)(nil)

// NewClient creates the Google provider variant with key-based credentials.
// Returns an error if apiKey is empty or client construction fails.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google api key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create google client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// CompleteJSON implements llm.Provider. The system prompt becomes the system
// instruction; the user prompt is the single content turn. The response MIME
// type is declared as JSON and sampling is deterministic.
//
// Returns llm.ErrAuthRequiresOAuth when the backend rejects key-based
// credentials or when the configured model is one known to require OAuth.
func (c *Client) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(userPrompt), cfg)
	if err != nil {
		if oauthErr := c.classifyAuthError(err); oauthErr != nil {
			return "", oauthErr
		}
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", llm.NewProviderError(llm.NameGoogle, apiErr.Code, apiErr.Message, err)
		}
		return "", llm.NewProviderError(llm.NameGoogle, 0, "", err)
	}

	text := resp.Text()
	if text == "" {
		return "{}", nil
	}
	return text, nil
}

// classifyAuthError maps credential-class rejections to ErrAuthRequiresOAuth.
// A 401, an explicit "API keys are not supported" message, or any failure
// while a 2.5-family model is configured all indicate the key/OAuth mismatch.
func (c *Client) classifyAuthError(err error) error {
	msg := err.Error()
	var apiErr genai.APIError
	code := 0
	if errors.As(err, &apiErr) {
		code = apiErr.Code
	}

	if code == 401 ||
		strings.Contains(msg, "API keys are not supported") ||
		strings.Contains(msg, "CREDENTIALS_MISSING") ||
		strings.Contains(strings.ToLower(c.model), "gemini-2.5") {
		return fmt.Errorf("%w (model %q)", llm.ErrAuthRequiresOAuth, c.model)
	}
	return nil
}
