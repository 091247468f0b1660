// Package lookclient is the application-side client of the recommendation
// proxy. It shapes proxy responses into view models and guarantees the caller
// always receives a non-empty, sorted recommendation list, even fully
// offline: transport failures on the recommendations flow are absorbed and
// replaced with the static fallback catalog. Chat failures DO surface, so the
// UI can notify the user and roll back optimistic state.
package lookclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/avelez/ai-stylist-backend/internal/normalize"
	"github.com/avelez/ai-stylist-backend/internal/prompt"
)

// formalCutoff is the minimum occasion-appropriateness kept when the
// requested occasion is formal.
const formalCutoff = 85

// Recommendation is the view model the UI renders. Scores map from the wire
// record: MatchScore carries the provider's confidence and
// OccasionAppropriateness its style match.
type Recommendation struct {
	ID                      string   `json:"id"`
	Title                   string   `json:"title"`
	Description             string   `json:"description"`
	Items                   []string `json:"items"`
	StylingTips             string   `json:"stylingTips"`
	MatchScore              int      `json:"matchScore"`
	OccasionAppropriateness int      `json:"occasionAppropriateness"`
	Occasion                string   `json:"occasion"`
}

// Client calls the recommendation proxy endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a proxy client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type proxyRequest struct {
	Action   string        `json:"action"`
	FormData prompt.Fields `json:"formData"`
}

// FetchRecommendations returns a filtered, sorted recommendation list for
// the given form data. It never fails: any transport or proxy error yields
// the static fallback catalog instead. No retry is attempted; the user
// re-triggers the action manually.
func (c *Client) FetchRecommendations(ctx context.Context, form prompt.Fields) []Recommendation {
	recs, err := c.fetch(ctx, form)
	if err != nil {
		log.Warn().Err(err).Msg("Recommendation fetch failed, serving fallback catalog")
		recs = FallbackRecommendations()
	}
	return shapeResults(recs, form.Occasion)
}

func (c *Client) fetch(ctx context.Context, form prompt.Fields) ([]Recommendation, error) {
	body, err := json.Marshal(proxyRequest{Action: "recommendations", FormData: form})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/style/recommend", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("proxy status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var wire []normalize.OutfitRecommendation
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, err
	}
	if len(wire) == 0 {
		return nil, fmt.Errorf("empty recommendation batch")
	}

	recs := make([]Recommendation, 0, len(wire))
	for _, w := range wire {
		recs = append(recs, Recommendation{
			ID:                      w.ID,
			Title:                   w.Title,
			Description:             w.Description,
			Items:                   w.Items,
			StylingTips:             w.StylingTips,
			MatchScore:              w.Confidence,
			OccasionAppropriateness: w.StyleMatch,
			Occasion:                w.Occasion,
		})
	}
	return recs, nil
}

// shapeResults applies the formal-occasion filter and sorts by descending
// match score. Filtering before sorting keeps the list non-empty check
// meaningful: if the filter removes everything the unfiltered sorted list is
// returned instead.
func shapeResults(recs []Recommendation, occasion string) []Recommendation {
	if strings.EqualFold(occasion, "formal") {
		filtered := make([]Recommendation, 0, len(recs))
		for _, r := range recs {
			if r.OccasionAppropriateness > formalCutoff {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) > 0 {
			recs = filtered
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})
	return recs
}

type chatProxyResponse struct {
	Message string `json:"message"`
}

// Chat sends a chat message through the proxy. Unlike the recommendations
// flow, errors are returned to the caller.
func (c *Client) Chat(ctx context.Context, message string, profile prompt.Fields) (string, error) {
	profile.Message = message
	body, err := json.Marshal(proxyRequest{Action: "chat", FormData: profile})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/style/recommend", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("proxy status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out chatProxyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Message, nil
}
