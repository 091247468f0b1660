package api

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/avelez/ai-stylist-backend/internal/normalize"
	"github.com/avelez/ai-stylist-backend/internal/prompt"
	"github.com/avelez/ai-stylist-backend/internal/provider"
	"github.com/avelez/ai-stylist-backend/internal/stylist"
)

// OpenAIKeyEnv is the environment variable holding the chat-completion
// provider credential.
const OpenAIKeyEnv = "OPENAI_API_KEY"

// stylistRequest is the stylist prompt request envelope.
type stylistRequest struct {
	Prompt string `json:"prompt"`
	Type   string `json:"type"`
}

type stylistResponse struct {
	// Result is a string for caption and quick-response, and a
	// normalize.StyleSuggestion for style-suggestion.
	Result interface{} `json:"result"`
}

// StylistHandler serves the stylist prompt proxy (caption, style-suggestion,
// quick-response) against the chat-completion provider.
type StylistHandler struct {
	// NewGenerator builds the provider client for one request. Overridable
	// in tests; defaults to the OpenAI-compatible client.
	NewGenerator func(apiKey string) provider.Generator
}

// NewStylistHandler creates the stylist prompt handler backed by the
// OpenAI-compatible chat-completion client.
func NewStylistHandler() *StylistHandler {
	return &StylistHandler{
		NewGenerator: func(apiKey string) provider.Generator {
			return provider.NewOpenAIClient(apiKey)
		},
	}
}

func (h *StylistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req stylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	action := prompt.Action(req.Type)
	switch action {
	case prompt.ActionCaption, prompt.ActionStyleSuggestion, prompt.ActionQuickResponse:
	default:
		httpError(w, http.StatusBadRequest, "unsupported type: "+req.Type)
		return
	}

	apiKey := os.Getenv(OpenAIKeyEnv)
	if apiKey == "" {
		httpError(w, http.StatusInternalServerError, "OpenAI API key not configured")
		return
	}

	svc := stylist.NewService(h.NewGenerator(apiKey))

	var result interface{}
	var err error
	switch action {
	case prompt.ActionCaption:
		result, err = svc.Caption(r.Context(), prompt.Fields{OutfitDescription: req.Prompt})
	case prompt.ActionStyleSuggestion:
		var s normalize.StyleSuggestion
		s, _, err = svc.StyleSuggestion(r.Context(), prompt.Fields{Message: req.Prompt})
		result = s
	case prompt.ActionQuickResponse:
		result, err = svc.QuickResponse(r.Context(), prompt.Fields{Message: req.Prompt})
	}
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, stylistResponse{Result: result})
}
