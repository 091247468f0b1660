// Package normalize converts raw provider text into guaranteed response
// shapes. The output type is fully determined by the requested action, and a
// result is never empty: unparseable provider text is absorbed into a
// deterministic degraded substitute rather than surfaced as an error. That
// guarantee is what lets clients render without defensive null checks.
package normalize

// OutfitRecommendation is one outfit in a recommendations batch.
//
// Numeric scores are provider output passed through verbatim: no clamping to
// [0,100], no rounding.
type OutfitRecommendation struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
	Explanation string   `json:"explanation"`
	StylingTips string   `json:"stylingTips"`

	Confidence    int `json:"confidence"`
	BodyTypeMatch int `json:"bodyTypeMatch"`
	ColorHarmony  int `json:"colorHarmony"`
	StyleMatch    int `json:"styleMatch"`

	Occasion string `json:"occasion"`
}

// StyleSuggestion is the three-section structured result for the
// style-suggestion action. The normalizer guarantees all three keys are
// present even when the provider's text does not parse as JSON.
type StyleSuggestion struct {
	OutfitSuggestion string   `json:"outfitSuggestion"`
	Accessories      []string `json:"accessories"`
	ColorPalette     []string `json:"colorPalette"`
}
