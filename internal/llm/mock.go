package llm

import "context"

// MockProvider is the deterministic, network-free provider variant. It
// returns a fixed payload supplied at construction; each prompt generator
// provides a payload matching its own response schema.
type MockProvider struct {
	payload string
}

// NewMockProvider creates a MockProvider returning the given payload.
func NewMockProvider(payload string) *MockProvider {
	return &MockProvider{payload: payload}
}

// Ensure MockProvider implements the Provider interface.
var _ Provider = (*MockProvider)(nil)

// CompleteJSON returns the fixed payload without performing any I/O.
func (p *MockProvider) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return p.payload, nil
}
