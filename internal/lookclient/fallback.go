package lookclient

// FallbackRecommendations returns the static catalog served when the proxy is
// unreachable. The copies are deliberately occasion-neutral so they read
// sensibly for any questionnaire answers.
func FallbackRecommendations() []Recommendation {
	return []Recommendation{
		{
			ID:          "fallback-1",
			Title:       "Effortless Smart Casual",
			Description: "A navy unstructured blazer over a white tee with tapered chinos and minimal white sneakers.",
			Items:       []string{"Navy blazer", "White tee", "Tapered chinos", "White sneakers"},
			StylingTips: "Cuff the chinos to show a sliver of ankle.",
			MatchScore:  90, OccasionAppropriateness: 92, Occasion: "General",
		},
		{
			ID:          "fallback-2",
			Title:       "Monochrome Layers",
			Description: "All-black layered look: fine-knit turtleneck, cropped wool trousers, and Chelsea boots.",
			Items:       []string{"Black turtleneck", "Wool trousers", "Chelsea boots"},
			StylingTips: "Vary textures so the single color reads as depth, not flatness.",
			MatchScore:  88, OccasionAppropriateness: 90, Occasion: "General",
		},
		{
			ID:          "fallback-3",
			Title:       "Weekend Denim",
			Description: "Mid-wash straight-leg jeans with a striped breton top and white low-tops.",
			Items:       []string{"Straight-leg jeans", "Breton top", "Low-top sneakers"},
			StylingTips: "A half-tuck keeps the silhouette relaxed but intentional.",
			MatchScore:  86, OccasionAppropriateness: 80, Occasion: "General",
		},
		{
			ID:          "fallback-4",
			Title:       "Soft Neutral Knit",
			Description: "Cream oversized knit over pleated beige trousers with tonal loafers.",
			Items:       []string{"Cream knit", "Pleated trousers", "Suede loafers"},
			StylingTips: "Stay within two shades of the same neutral for the tonal effect.",
			MatchScore:  84, OccasionAppropriateness: 88, Occasion: "General",
		},
		{
			ID:          "fallback-5",
			Title:       "Elevated Athleisure",
			Description: "Matching zip-through track jacket and joggers with a fresh pair of retro runners.",
			Items:       []string{"Track jacket", "Joggers", "Retro runners"},
			StylingTips: "Keep everything else minimal so the set does the talking.",
			MatchScore:  82, OccasionAppropriateness: 70, Occasion: "General",
		},
	}
}
