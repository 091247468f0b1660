package lookclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/avelez/ai-stylist-backend/internal/normalize"
	"github.com/avelez/ai-stylist-backend/internal/prompt"
)

// wireBatch builds a proxy response whose styleMatch values become the view
// models' occasion-appropriateness scores.
func wireBatch(confidences, styleMatches []int) []normalize.OutfitRecommendation {
	recs := make([]normalize.OutfitRecommendation, len(confidences))
	for i := range confidences {
		recs[i] = normalize.OutfitRecommendation{
			ID:         string(rune('a' + i)),
			Title:      "Look",
			Items:      []string{"item"},
			Confidence: confidences[i], StyleMatch: styleMatches[i],
			Occasion: "formal",
		}
	}
	return recs
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestFetchRecommendations_FormalFilterAndSort(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(wireBatch(
			[]int{70, 95, 60, 88, 91},
			[]int{98, 89, 90, 94, 88},
		))
	})

	recs := c.FetchRecommendations(context.Background(), prompt.Fields{Occasion: "formal"})

	if len(recs) != 5 {
		t.Fatalf("all five are above the cutoff, got %d", len(recs))
	}
	for _, r := range recs {
		if r.OccasionAppropriateness <= 85 {
			t.Errorf("formal filter leak: %+v", r)
		}
	}
	if !sort.SliceIsSorted(recs, func(i, j int) bool { return recs[i].MatchScore > recs[j].MatchScore }) {
		t.Errorf("not sorted by descending match score: %+v", recs)
	}
}

func TestFetchRecommendations_FormalFilterDiscards(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(wireBatch(
			[]int{90, 80, 70},
			[]int{95, 60, 85}, // 60 and 85 are at or below the cutoff
		))
	})

	recs := c.FetchRecommendations(context.Background(), prompt.Fields{Occasion: "formal"})
	if len(recs) != 1 {
		t.Fatalf("expected only 1 formal-appropriate record, got %d", len(recs))
	}
	if recs[0].OccasionAppropriateness != 95 {
		t.Errorf("wrong record kept: %+v", recs[0])
	}
}

func TestFetchRecommendations_NoFilterForCasual(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(wireBatch([]int{50, 99}, []int{10, 20}))
	})

	recs := c.FetchRecommendations(context.Background(), prompt.Fields{Occasion: "casual"})
	if len(recs) != 2 {
		t.Fatalf("non-formal occasions must not filter, got %d", len(recs))
	}
	if recs[0].MatchScore != 99 {
		t.Errorf("not sorted: %+v", recs)
	}
}

func TestFetchRecommendations_FallbackOnProxyError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	})

	recs := c.FetchRecommendations(context.Background(), prompt.Fields{})
	if len(recs) == 0 {
		t.Fatal("fallback catalog must be non-empty")
	}
	if recs[0].ID != "fallback-1" {
		t.Errorf("expected static fallback records sorted by score, got %+v", recs[0])
	}
}

func TestFetchRecommendations_FallbackOffline(t *testing.T) {
	// Point at a closed server to simulate the network being down.
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	recs := NewClient(url).FetchRecommendations(context.Background(), prompt.Fields{})
	if len(recs) == 0 {
		t.Fatal("offline fetch must still return the fallback catalog")
	}
}

func TestChat_ErrorsSurface(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"provider down"}`, http.StatusInternalServerError)
	})

	if _, err := c.Chat(context.Background(), "hello", prompt.Fields{}); err == nil {
		t.Fatal("chat errors must propagate to the caller")
	}
}

func TestChat_ReturnsMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req proxyRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Action != "chat" || req.FormData.Message != "hello" {
			t.Errorf("unexpected proxy request: %+v", req)
		}
		json.NewEncoder(w).Encode(map[string]any{"message": "Hi! Linen for summer."})
	})

	msg, err := c.Chat(context.Background(), "hello", prompt.Fields{Gender: "male"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Hi! Linen for summer." {
		t.Errorf("got %q", msg)
	}
}
