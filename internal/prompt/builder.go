package prompt

import (
	"strings"
	"text/template"

	"github.com/avelez/ai-stylist-backend/internal/assets"
)

// Neutral placeholder text for absent fields. The templates always receive a
// non-empty value for every slot, so the rendered prompt never contains an
// empty interpolation (no "attending ," degradation of provider output).
const (
	defaultGender   = "someone"
	defaultOccasion = "a casual gathering"
	notSpecified    = "Not specified"
)

var templates = map[Action]*template.Template{
	ActionRecommendations: template.Must(template.New("recommendations").Parse(assets.RecommendationsPrompt)),
	ActionChat:            template.Must(template.New("chat").Parse(assets.ChatPrompt)),
	ActionCaption:         template.Must(template.New("caption").Parse(assets.CaptionPrompt)),
	ActionStyleSuggestion: template.Must(template.New("style-suggestion").Parse(assets.StyleSuggestionPrompt)),
	ActionQuickResponse:   template.Must(template.New("quick-response").Parse(assets.QuickResponsePrompt)),
}

// templateData is the fully-defaulted view of Fields handed to the templates.
type templateData struct {
	Gender            string
	BodyType          string
	StylePreference   string
	Occasion          string
	Destination       string
	Budget            string
	Colors            string
	Message           string
	OutfitDescription string
	Style             string
}

func defaulted(f Fields) templateData {
	colors := notSpecified
	if len(f.ColorPreferences) > 0 {
		colors = strings.Join(f.ColorPreferences, ", ")
	}
	return templateData{
		Gender:            orDefault(f.Gender, defaultGender),
		BodyType:          orDefault(f.BodyType, notSpecified),
		StylePreference:   orDefault(f.StylePreference, notSpecified),
		Occasion:          orDefault(f.Occasion, defaultOccasion),
		Destination:       orDefault(f.Destination, notSpecified),
		Budget:            orDefault(f.Budget, notSpecified),
		Colors:            colors,
		Message:           orDefault(strings.TrimSpace(f.Message), "Hello"),
		OutfitDescription: orDefault(strings.TrimSpace(f.OutfitDescription), "an outfit"),
		Style:             orDefault(f.Style, notSpecified),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Build renders the prompt for the given request and returns it together with
// the action's generation parameters. Build never fails: the templates are
// parsed at init and execute over pure string data, and an unknown action
// renders the chat template.
//
// Token budgets per action: recommendations is highest because five full
// records are requested; chat and quick-response are conversational; caption
// is a couple of sentences.
func Build(req Request) Built {
	action := req.Action
	if !action.Valid() {
		action = ActionChat
	}
	data := defaulted(req.Fields)

	var sb strings.Builder
	// Execute cannot fail here: templateData is a flat struct of strings and
	// strings.Builder writes never error.
	templates[action].Execute(&sb, data)

	b := Built{Text: sb.String()}
	switch action {
	case ActionRecommendations:
		b.Temperature = 0.7
		b.MaxOutputTokens = 2000
	case ActionChat:
		b.Temperature = 0.7
		b.MaxOutputTokens = 500
	case ActionStyleSuggestion:
		b.Temperature = 0.7
		b.MaxOutputTokens = 600
	case ActionQuickResponse:
		b.Temperature = 0.7
		b.MaxOutputTokens = 300
	case ActionCaption:
		b.Temperature = 0.8
		b.MaxOutputTokens = 200
	}
	return b
}
