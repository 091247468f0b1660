package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avelez/ai-stylist-backend/internal/provider"
)

func newStylistHandler(gen *stubGenerator) *StylistHandler {
	return &StylistHandler{
		NewGenerator: func(_ string) provider.Generator { return gen },
	}
}

func TestStylist_Caption(t *testing.T) {
	t.Setenv(OpenAIKeyEnv, "test-key")
	h := newStylistHandler(&stubGenerator{response: "Sunset fits only. #ootd #style #linen"})

	req := httptest.NewRequest(http.MethodPost, "/api/style/assist",
		strings.NewReader(`{"prompt":"linen co-ord on the boardwalk","type":"caption"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var body struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if !strings.Contains(body.Result, "#ootd") {
		t.Errorf("got %q", body.Result)
	}
}

func TestStylist_StyleSuggestionStructured(t *testing.T) {
	t.Setenv(OpenAIKeyEnv, "test-key")
	h := newStylistHandler(&stubGenerator{
		response: "```json\n{\"outfitSuggestion\":\"navy suit\",\"accessories\":[\"tie\"],\"colorPalette\":[\"navy\",\"white\"]}\n```",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/style/assist",
		strings.NewReader(`{"prompt":"something for a summer wedding","type":"style-suggestion"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body struct {
		Result struct {
			OutfitSuggestion string   `json:"outfitSuggestion"`
			Accessories      []string `json:"accessories"`
			ColorPalette     []string `json:"colorPalette"`
		} `json:"result"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if body.Result.OutfitSuggestion != "navy suit" || len(body.Result.ColorPalette) != 2 {
		t.Errorf("got %+v", body.Result)
	}
}

func TestStylist_StyleSuggestionProseFallback(t *testing.T) {
	t.Setenv(OpenAIKeyEnv, "test-key")
	raw := "A navy suit with brown loafers would be perfect."
	h := newStylistHandler(&stubGenerator{response: raw})

	req := httptest.NewRequest(http.MethodPost, "/api/style/assist",
		strings.NewReader(`{"prompt":"wedding guest look","type":"style-suggestion"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for degraded suggestion, got %d", rr.Code)
	}
	var body struct {
		Result struct {
			OutfitSuggestion string   `json:"outfitSuggestion"`
			Accessories      []string `json:"accessories"`
			ColorPalette     []string `json:"colorPalette"`
		} `json:"result"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if body.Result.OutfitSuggestion != raw {
		t.Errorf("raw text must become the suggestion, got %q", body.Result.OutfitSuggestion)
	}
	if body.Result.Accessories == nil || body.Result.ColorPalette == nil {
		t.Error("three-key contract violated")
	}
}

func TestStylist_MissingCredential(t *testing.T) {
	t.Setenv(OpenAIKeyEnv, "")
	gen := &stubGenerator{response: "unused"}
	h := newStylistHandler(gen)

	req := httptest.NewRequest(http.MethodPost, "/api/style/assist",
		strings.NewReader(`{"prompt":"x","type":"quick-response"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	var body map[string]string
	json.Unmarshal(rr.Body.Bytes(), &body)
	if body["error"] != "OpenAI API key not configured" {
		t.Errorf("unexpected error message: %q", body["error"])
	}
	if gen.calls != 0 {
		t.Error("no upstream call may be attempted without a credential")
	}
}

func TestStylist_CORSPreflight(t *testing.T) {
	h := newStylistHandler(&stubGenerator{})

	req := httptest.NewRequest(http.MethodOptions, "/api/style/assist", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Error("preflight response must have no body")
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("preflight must carry Access-Control-Allow-Origin: *")
	}
}

func TestStylist_UnsupportedType(t *testing.T) {
	t.Setenv(OpenAIKeyEnv, "test-key")
	h := newStylistHandler(&stubGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/api/style/assist",
		strings.NewReader(`{"prompt":"x","type":"recommendations"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
