// Package stylist orchestrates the three-stage recommendation pipeline:
// prompt builder -> provider -> normalizer. It owns no state and performs a
// single blocking provider call per operation; every other stage is pure.
package stylist

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/avelez/ai-stylist-backend/internal/normalize"
	"github.com/avelez/ai-stylist-backend/internal/prompt"
	"github.com/avelez/ai-stylist-backend/internal/provider"
)

// Service runs stylist operations against one provider.
type Service struct {
	gen provider.Generator
}

// NewService creates a Service backed by the given generator.
func NewService(gen provider.Generator) *Service {
	return &Service{gen: gen}
}

func (s *Service) generate(ctx context.Context, req prompt.Request) (string, error) {
	built := prompt.Build(req)

	callStart := time.Now()
	raw, err := s.gen.Generate(ctx, provider.GenerationRequest{
		Prompt:          built.Text,
		Temperature:     built.Temperature,
		MaxOutputTokens: built.MaxOutputTokens,
	})
	if err != nil {
		log.Error().Err(err).Str("action", string(req.Action)).Msg("Provider call failed")
		return "", err
	}

	log.Debug().
		Str("action", string(req.Action)).
		Int("response_length", len(raw)).
		Dur("duration", time.Since(callStart)).
		Msg("Provider call complete")
	return raw, nil
}

// Recommendations generates a batch of outfit recommendations. The returned
// slice is always non-empty on success; degraded reports whether the
// normalizer fell back to a synthetic record.
func (s *Service) Recommendations(ctx context.Context, fields prompt.Fields) ([]normalize.OutfitRecommendation, bool, error) {
	raw, err := s.generate(ctx, prompt.Request{Action: prompt.ActionRecommendations, Fields: fields})
	if err != nil {
		return nil, false, err
	}
	recs, degraded := normalize.Recommendations(raw, fields.Occasion)
	if degraded {
		log.Warn().Int("raw_length", len(raw)).Msg("Recommendations response degraded to fallback record")
	}
	return recs, degraded, nil
}

// Chat generates a conversational stylist reply.
func (s *Service) Chat(ctx context.Context, fields prompt.Fields) (string, error) {
	raw, err := s.generate(ctx, prompt.Request{Action: prompt.ActionChat, Fields: fields})
	if err != nil {
		return "", err
	}
	return normalize.Message(raw), nil
}

// Caption generates a short social caption for an outfit description.
func (s *Service) Caption(ctx context.Context, fields prompt.Fields) (string, error) {
	raw, err := s.generate(ctx, prompt.Request{Action: prompt.ActionCaption, Fields: fields})
	if err != nil {
		return "", err
	}
	return normalize.Message(raw), nil
}

// StyleSuggestion generates the three-section structured suggestion.
func (s *Service) StyleSuggestion(ctx context.Context, fields prompt.Fields) (normalize.StyleSuggestion, bool, error) {
	raw, err := s.generate(ctx, prompt.Request{Action: prompt.ActionStyleSuggestion, Fields: fields})
	if err != nil {
		return normalize.StyleSuggestion{}, false, err
	}
	suggestion, degraded := normalize.Suggestion(raw)
	if degraded {
		log.Warn().Int("raw_length", len(raw)).Msg("Style suggestion degraded to raw text")
	}
	return suggestion, degraded, nil
}

// QuickResponse generates a short plain-text answer to a free-form question.
func (s *Service) QuickResponse(ctx context.Context, fields prompt.Fields) (string, error) {
	raw, err := s.generate(ctx, prompt.Request{Action: prompt.ActionQuickResponse, Fields: fields})
	if err != nil {
		return "", err
	}
	return normalize.Message(raw), nil
}
