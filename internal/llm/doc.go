// Package llm defines the provider-neutral surface for talking to model
// backends: the Provider capability, the shared error taxonomy, the tolerant
// JSON extractor and the resilient executor that wraps every provider call
// with a timeout and bounded retry.
//
// Concrete provider variants live in the openai, google and ollama
// subpackages; the deterministic mock lives here since it needs no transport.
package llm
