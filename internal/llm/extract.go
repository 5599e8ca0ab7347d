package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON recovers a JSON object from a raw, possibly prose-wrapped model
// response. It takes the span from the first '{' to the last '}' (inclusive)
// and parses it. Model backends wrap JSON in prose or markdown fences often
// enough that this is the cheapest robust recovery.
//
// Returns ErrMalformedResponse if the string contains no '{', if the last
// '}' does not follow the first '{', or if the span is not a syntactically
// valid JSON object.
func ExtractJSON(raw string) (json.RawMessage, error) {
	start := strings.Index(raw, "{")
	if start < 0 {
		return nil, fmt.Errorf("%w: no JSON object found", ErrMalformedResponse)
	}
	end := strings.LastIndex(raw, "}")
	if end <= start {
		return nil, fmt.Errorf("%w: unbalanced braces", ErrMalformedResponse)
	}

	span := raw[start : end+1]

	// Parse into a map to require an object, not just any JSON value.
	var obj map[string]any
	if err := json.Unmarshal([]byte(span), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return json.RawMessage(span), nil
}
