// Package prompt maps structured style requests to provider prompts and
// generation parameters. Building a prompt is a total function: absent fields
// degrade to neutral placeholder text, never to an error or an empty
// interpolation slot.
package prompt

// Action selects both the prompt template and the response shape the
// normalizer will guarantee. The two are never decoupled.
type Action string

const (
	ActionRecommendations Action = "recommendations"
	ActionChat            Action = "chat"
	ActionCaption         Action = "caption"
	ActionStyleSuggestion Action = "style-suggestion"
	ActionQuickResponse   Action = "quick-response"
)

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	switch a {
	case ActionRecommendations, ActionChat, ActionCaption, ActionStyleSuggestion, ActionQuickResponse:
		return true
	}
	return false
}

// Fields is the open set of user-supplied request fields. No key is required;
// the builder substitutes placeholders for anything the chosen action's
// template interpolates but the request omits.
type Fields struct {
	Gender            string   `json:"gender,omitempty"`
	BodyType          string   `json:"bodyType,omitempty"`
	StylePreference   string   `json:"stylePreference,omitempty"`
	Occasion          string   `json:"occasion,omitempty"`
	Destination       string   `json:"destination,omitempty"`
	Budget            string   `json:"budget,omitempty"`
	ColorPreferences  []string `json:"colorPreferences,omitempty"`
	Message           string   `json:"message,omitempty"`
	OutfitDescription string   `json:"outfitDescription,omitempty"`
	Style             string   `json:"style,omitempty"`
}

// Request pairs an action with its fields.
type Request struct {
	Action Action
	Fields Fields
}

// Built is the prompt text plus generation parameters for one provider call.
type Built struct {
	Text            string
	Temperature     float32
	MaxOutputTokens int32
}
