// Package provider defines the boundary to external LLM text-generation APIs
// and the two concrete clients behind it: a generate-content style client
// (Gemini) and a chat-completion style client (OpenAI-compatible).
//
// The proxy treats every upstream problem the same way: a non-2xx response, a
// malformed envelope with no generated text, and a transport failure are all
// one failure class surfaced as a ProviderError.
package provider

import (
	"context"
	"fmt"
)

// GenerationRequest carries one prompt and its generation parameters.
type GenerationRequest struct {
	Prompt          string
	Temperature     float32
	MaxOutputTokens int32
}

// Generator is the single abstraction over both provider styles. Generate
// returns the provider's text continuation for the prompt.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// ProviderError is an upstream failure with an HTTP-like status.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("provider error (status %d): %s", e.Status, e.Message)
	}
	return "provider error: " + e.Message
}
