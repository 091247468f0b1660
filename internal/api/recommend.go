package api

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/avelez/ai-stylist-backend/internal/prompt"
	"github.com/avelez/ai-stylist-backend/internal/provider"
	"github.com/avelez/ai-stylist-backend/internal/stylist"
)

// GeminiKeyEnv is the environment variable holding the Gemini credential.
const GeminiKeyEnv = "GEMINI_API_KEY"

// recommendRequest is the request envelope. The field names differ from the
// stylist endpoint's (formData/action vs prompt/type); the asymmetry is kept
// because the two are deployed as independent functions.
type recommendRequest struct {
	Action   string        `json:"action"`
	FormData prompt.Fields `json:"formData"`
}

type chatResponse struct {
	Message          string `json:"message"`
	IsRecommendation bool   `json:"isRecommendation"`
}

// RecommendHandler serves the style-recommendations/chat proxy.
//
// The upstream credential is checked per request rather than at cold start so
// a missing key is a deterministic 500 with a descriptive message, never a
// crash loop or a silent no-op.
type RecommendHandler struct {
	// NewGenerator builds the provider client for one request. Overridable
	// in tests; defaults to the Gemini client.
	NewGenerator func(ctx context.Context, apiKey string) (provider.Generator, error)
}

// NewRecommendHandler creates the recommendations/chat handler backed by Gemini.
func NewRecommendHandler() *RecommendHandler {
	return &RecommendHandler{
		NewGenerator: func(ctx context.Context, apiKey string) (provider.Generator, error) {
			return provider.NewGeminiClient(ctx, apiKey)
		},
	}
}

func (h *RecommendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	action := prompt.Action(req.Action)
	if action != prompt.ActionRecommendations && action != prompt.ActionChat {
		httpError(w, http.StatusBadRequest, "unsupported action: "+req.Action)
		return
	}

	apiKey := os.Getenv(GeminiKeyEnv)
	if apiKey == "" {
		httpError(w, http.StatusInternalServerError, "Gemini API key not configured")
		return
	}

	gen, err := h.NewGenerator(r.Context(), apiKey)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "failed to initialize AI client", err.Error())
		return
	}
	svc := stylist.NewService(gen)

	switch action {
	case prompt.ActionRecommendations:
		recs, degraded, err := svc.Recommendations(r.Context(), req.FormData)
		if err != nil {
			httpError(w, http.StatusInternalServerError, err.Error())
			return
		}
		log.Info().
			Int("count", len(recs)).
			Bool("degraded", degraded).
			Str("occasion", req.FormData.Occasion).
			Msg("Recommendations generated")
		respondJSON(w, http.StatusOK, recs)

	case prompt.ActionChat:
		message, err := svc.Chat(r.Context(), req.FormData)
		if err != nil {
			httpError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, chatResponse{Message: message})
	}
}
