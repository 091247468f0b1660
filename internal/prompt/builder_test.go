package prompt

import (
	"strings"
	"testing"
)

func TestBuild_AllActionsProduceText(t *testing.T) {
	for _, action := range []Action{
		ActionRecommendations, ActionChat, ActionCaption,
		ActionStyleSuggestion, ActionQuickResponse,
	} {
		b := Build(Request{Action: action})
		if b.Text == "" {
			t.Errorf("%s: empty prompt text", action)
		}
		if b.MaxOutputTokens == 0 {
			t.Errorf("%s: max output tokens not set", action)
		}
		if b.Temperature == 0 {
			t.Errorf("%s: temperature not set", action)
		}
	}
}

// With any subset of fields omitted, the rendered prompt must contain no
// empty interpolation slot: no doubled punctuation and no dangling
// "attending ," style fragments.
func TestBuild_DefaultSubstitutionCompleteness(t *testing.T) {
	cases := []Fields{
		{},
		{Gender: "female"},
		{Occasion: "wedding"},
		{Gender: "male", BodyType: "athletic", StylePreference: "streetwear"},
		{ColorPreferences: []string{"navy", "cream"}},
		{Destination: "Lisbon", Budget: "$200"},
	}

	for _, action := range []Action{
		ActionRecommendations, ActionChat, ActionCaption,
		ActionStyleSuggestion, ActionQuickResponse,
	} {
		for i, fields := range cases {
			text := Build(Request{Action: action, Fields: fields}).Text
			for _, bad := range []string{", ,", ",,", " , ", "attending .", "attending ,", ": .", ": ,", "  "} {
				if strings.Contains(text, bad) {
					t.Errorf("%s case %d: prompt contains empty slot %q:\n%s", action, i, bad, text)
				}
			}
		}
	}
}

func TestBuild_RecommendationsInterpolation(t *testing.T) {
	b := Build(Request{
		Action: ActionRecommendations,
		Fields: Fields{
			Gender:           "female",
			BodyType:         "pear",
			StylePreference:  "minimalist",
			Occasion:         "a gallery opening",
			Destination:      "Berlin",
			Budget:           "$300",
			ColorPreferences: []string{"black", "white", "olive"},
		},
	})

	for _, want := range []string{"female", "pear", "minimalist", "a gallery opening", "Berlin", "$300", "black, white, olive"} {
		if !strings.Contains(b.Text, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if !strings.Contains(b.Text, "only valid JSON") {
		t.Error("recommendations prompt must request only valid JSON")
	}
	if b.MaxOutputTokens != 2000 {
		t.Errorf("expected 2000 max tokens for recommendations, got %d", b.MaxOutputTokens)
	}
}

func TestBuild_DefaultsAppearWhenOmitted(t *testing.T) {
	text := Build(Request{Action: ActionRecommendations}).Text
	for _, want := range []string{"someone", "a casual gathering", "Not specified"} {
		if !strings.Contains(text, want) {
			t.Errorf("prompt missing neutral default %q", want)
		}
	}
}

func TestBuild_ChatCarriesMessage(t *testing.T) {
	b := Build(Request{
		Action: ActionChat,
		Fields: Fields{Message: "what should I wear to a beach wedding?"},
	})
	if !strings.Contains(b.Text, "what should I wear to a beach wedding?") {
		t.Error("chat prompt missing user message")
	}
	if strings.Contains(b.Text, "valid JSON") {
		t.Error("chat prompt must not request JSON")
	}
	if b.MaxOutputTokens != 500 {
		t.Errorf("expected 500 max tokens for chat, got %d", b.MaxOutputTokens)
	}
}

func TestAction_Valid(t *testing.T) {
	if !ActionCaption.Valid() {
		t.Error("caption should be valid")
	}
	if Action("outfit").Valid() {
		t.Error("unknown action should be invalid")
	}
}
