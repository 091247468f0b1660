package normalize

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/avelez/ai-stylist-backend/internal/jsonutil"
)

// Degraded-fallback score values used when the provider's recommendations
// text cannot be parsed as JSON. The single synthetic record keeps the
// response a schema-valid, non-empty array.
const (
	fallbackConfidence    = 85
	fallbackBodyTypeMatch = 85
	fallbackColorHarmony  = 80
	fallbackStyleMatch    = 90
)

// Recommendations parses raw provider text into a batch of outfit
// recommendations. occasion is the request's occasion field, used to default
// the per-record occasion when the provider omits it (or "General" when the
// request had none either).
//
// The returned slice is never empty and the function never fails; degraded
// reports whether the deterministic fallback was used instead of a parsed
// provider batch.
func Recommendations(raw, occasion string) (recs []OutfitRecommendation, degraded bool) {
	if occasion == "" {
		occasion = "General"
	}

	parsed, err := jsonutil.ParseJSON[[]OutfitRecommendation](raw)
	if err != nil || len(parsed) == 0 {
		log.Debug().Err(err).Int("raw_length", len(raw)).Msg("Recommendations did not parse, building degraded record")
		return []OutfitRecommendation{degradedRecommendation(raw, occasion)}, true
	}

	for i := range parsed {
		if parsed[i].ID == "" {
			parsed[i].ID = strconv.Itoa(i + 1)
		}
		if parsed[i].Occasion == "" {
			parsed[i].Occasion = occasion
		}
		if parsed[i].Items == nil {
			parsed[i].Items = []string{}
		}
	}
	return parsed, false
}

// degradedRecommendation wraps unparseable provider prose as a single
// schema-valid record. The raw text becomes the description, so the advice
// the provider actually gave is still shown to the user.
func degradedRecommendation(raw, occasion string) OutfitRecommendation {
	return OutfitRecommendation{
		ID:            "1",
		Title:         "Style Recommendation",
		Description:   raw,
		Items:         []string{"See description"},
		Explanation:   "Generated from your style profile.",
		StylingTips:   "Ask the stylist for more detail on any piece.",
		Confidence:    fallbackConfidence,
		BodyTypeMatch: fallbackBodyTypeMatch,
		ColorHarmony:  fallbackColorHarmony,
		StyleMatch:    fallbackStyleMatch,
		Occasion:      occasion,
	}
}

// Suggestion parses raw provider text into the three-key style suggestion.
// Parse order: fenced payload, then the whole trimmed text, then the fallback
// that carries the raw prose as the suggestion itself. Never fails.
func Suggestion(raw string) (s StyleSuggestion, degraded bool) {
	parsed, err := jsonutil.ParseJSON[StyleSuggestion](raw)
	if err != nil || parsed.OutfitSuggestion == "" {
		log.Debug().Err(err).Int("raw_length", len(raw)).Msg("Style suggestion did not parse, using raw text")
		return StyleSuggestion{
			OutfitSuggestion: strings.TrimSpace(raw),
			Accessories:      []string{},
			ColorPalette:     []string{},
		}, true
	}
	if parsed.Accessories == nil {
		parsed.Accessories = []string{}
	}
	if parsed.ColorPalette == nil {
		parsed.ColorPalette = []string{}
	}
	return parsed, false
}

// Message wraps raw provider text verbatim for the conversational actions
// (chat, caption, quick-response). No parsing is attempted.
func Message(raw string) string {
	return strings.TrimSpace(raw)
}
