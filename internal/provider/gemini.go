package provider

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// Gemini Model IDs
//
// | Model Name             | API Model ID           | Use Case                      |
// |------------------------|------------------------|-------------------------------|
// | Gemini 2.5 Pro         | gemini-2.5-pro         | Stable, high-reasoning tasks  |
// | Gemini 2.5 Flash       | gemini-2.5-flash       | Stable, balanced performance  |
// | Gemini 2.5 Flash-Lite  | gemini-2.5-flash-lite  | High-throughput, lowest cost  |
const (
	// ModelGemini25Pro is stable, for high-reasoning tasks.
	ModelGemini25Pro = "gemini-2.5-pro"

	// ModelGemini25Flash is stable, balanced performance.
	ModelGemini25Flash = "gemini-2.5-flash"

	// ModelGemini25FlashLite is for high-throughput, lowest cost.
	ModelGemini25FlashLite = "gemini-2.5-flash-lite"
)

// DefaultGeminiModel is the default model for stylist generations. Outfit
// batches and chat replies need speed more than deep reasoning.
const DefaultGeminiModel = ModelGemini25Flash

// GeminiModelName returns the Gemini model to use, resolved from the
// STYLIST_MODEL environment variable, defaulting to DefaultGeminiModel.
func GeminiModelName() string {
	if env := os.Getenv("STYLIST_MODEL"); env != "" {
		return env
	}
	return DefaultGeminiModel
}

// GeminiClient is the generate-content style provider.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini provider client for the given API key.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: GeminiModelName()}, nil
}

// Generate sends the prompt to Gemini and returns the response text.
func (c *GeminiClient) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: req.MaxOutputTokens,
	}
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: req.Prompt}}},
	}

	log.Debug().
		Str("model", c.model).
		Int("prompt_length", len(req.Prompt)).
		Int32("max_output_tokens", req.MaxOutputTokens).
		Msg("Starting Gemini API call")

	callStart := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	duration := time.Since(callStart)
	if err != nil {
		log.Error().Err(err).Dur("duration", duration).Msg("Gemini call failed")
		return "", &ProviderError{Message: err.Error()}
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", &ProviderError{Message: "empty response from Gemini API"}
	}

	text := resp.Text()
	if text == "" {
		return "", &ProviderError{Message: "no generated text in Gemini response"}
	}

	log.Debug().
		Int("response_length", len(text)).
		Dur("duration", duration).
		Msg("Gemini API response received")
	return text, nil
}
