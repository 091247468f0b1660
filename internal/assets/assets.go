// Package assets provides embedded static assets for the application.
//
// Prompt templates are stored as text files under prompts/ and embedded at
// compile time, so prompt wording can be reviewed and edited without touching
// Go code.
package assets

import (
	_ "embed"
)

// RecommendationsPrompt asks the provider for a batch of five outfit
// recommendations as a JSON array. The instruction text itself specifies the
// required record shape.
//
//go:embed prompts/recommendations.txt
var RecommendationsPrompt string

// ChatPrompt frames a conversational stylist reply around the client's
// message and known profile fields. No JSON is requested.
//
//go:embed prompts/chat.txt
var ChatPrompt string

// CaptionPrompt asks for a short social caption with 3-5 hashtags.
//
//go:embed prompts/caption.txt
var CaptionPrompt string

// StyleSuggestionPrompt asks for a structured JSON object with exactly three
// named sections (outfit suggestion, accessories, color palette).
//
//go:embed prompts/style-suggestion.txt
var StyleSuggestionPrompt string

// QuickResponsePrompt asks for a sub-150-word plain-text answer.
//
//go:embed prompts/quick-response.txt
var QuickResponsePrompt string
