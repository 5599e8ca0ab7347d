// Package ollama implements the llm.Provider capability for a local Ollama
// runtime. It prefers the chat endpoint and falls back to the single-prompt
// generate endpoint on runtimes old enough not to serve chat.
package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
	"github.com/pathwise/pathwise-api/internal/llm"
)

// DefaultModel is used when configuration names no model.
const DefaultModel = "llama3.1"

// formatJSON asks the runtime for structured JSON output.
var formatJSON = json.RawMessage(`"json"`)

// Client implements llm.Provider over the Ollama HTTP API.
type Client struct {
	client *api.Client
	model  string
}

// Ensure Client implements the llm.Provider interface.
var _ llm.Provider = (*Client)(nil)

// NewClient creates the local-runtime provider variant. baseURL defaults to
// http://localhost:11434 when empty; no credential is required.
func NewClient(baseURL, model string) (*Client, error) {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = DefaultModel
	}

	parsed, err := parseHost(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama base url: %w", err)
	}

	return &Client{
		client: api.NewClient(parsed, http.DefaultClient),
		model:  model,
	}, nil
}

// parseHost parses a host string into a URL, assuming http when no scheme
// is given.
func parseHost(host string) (*url.URL, error) {
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return url.Parse(host)
}

// CompleteJSON implements llm.Provider. It first attempts the chat endpoint;
// if that endpoint reports not-found the runtime predates chat support, and
// the call is re-issued against the generate endpoint with the system and
// user text concatenated. Any other non-success status is fatal.
func (c *Client) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	content, err := c.chat(ctx, systemPrompt, userPrompt)
	if err == nil {
		return content, nil
	}

	var statusErr api.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode == http.StatusNotFound {
			return c.generate(ctx, systemPrompt, userPrompt)
		}
		return "", llm.NewProviderError(llm.NameOllama, statusErr.StatusCode, statusErr.ErrorMessage, err)
	}
	return "", llm.NewProviderError(llm.NameOllama, 0, "", err)
}

// chat calls the chat endpoint with a system and a user message.
func (c *Client) chat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model: c.model,
		Messages: []api.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream: &stream,
		Format: formatJSON,
	}

	var content strings.Builder
	err := c.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		content.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", err
	}
	if content.Len() == 0 {
		return "{}", nil
	}
	return content.String(), nil
}

// generate re-issues the request against the single-prompt completion
// endpoint, concatenating system and user text.
func (c *Client) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	stream := false
	req := &api.GenerateRequest{
		Model:  c.model,
		Prompt: systemPrompt + "\n\n" + userPrompt,
		System: systemPrompt,
		Stream: &stream,
		Format: formatJSON,
	}

	var content strings.Builder
	err := c.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		content.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		var statusErr api.StatusError
		if errors.As(err, &statusErr) {
			return "", llm.NewProviderError(llm.NameOllama, statusErr.StatusCode, statusErr.ErrorMessage, err)
		}
		return "", llm.NewProviderError(llm.NameOllama, 0, "", err)
	}
	if content.Len() == 0 {
		return "{}", nil
	}
	return content.String(), nil
}
