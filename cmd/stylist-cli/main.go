// Package main provides a command-line client for the stylist pipeline.
// It runs the same prompt builder, provider call, and normalizer the HTTP
// endpoints use, printing the result to stdout. Handy for trying prompt
// changes without deploying.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/avelez/ai-stylist-backend/internal/logging"
	"github.com/avelez/ai-stylist-backend/internal/prompt"
	"github.com/avelez/ai-stylist-backend/internal/provider"
	"github.com/avelez/ai-stylist-backend/internal/stylist"
)

// CLI flags
var (
	actionFlag      string
	genderFlag      string
	bodyTypeFlag    string
	styleFlag       string
	occasionFlag    string
	destinationFlag string
	budgetFlag      string
	colorsFlag      []string
	messageFlag     string
	outfitFlag      string
	modelFlag       string
	timeoutFlag     time.Duration
)

// rootCmd is the main Cobra command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "stylist-cli",
	Short: "AI outfit recommendations and styling advice",
	Long: `Stylist CLI generates outfit recommendations, styling chat replies,
captions, structured style suggestions, and quick answers using the same
pipeline the backend endpoints run.

Requires GEMINI_API_KEY in the environment.

Examples:
  stylist-cli --action recommendations --gender woman --occasion "beach wedding"
  stylist-cli -a chat -M "What shoes go with a navy suit?"
  stylist-cli -a caption --outfit "White linen shirt with beige chinos"
  stylist-cli -a style-suggestion -M "Office party, want to stand out a little"
  stylist-cli -a quick-response -M "Can I wear brown shoes with black pants?"`,
	Run: runMain,
}

func init() {
	rootCmd.Flags().StringVarP(&actionFlag, "action", "a", string(prompt.ActionRecommendations), "Action to run (recommendations, chat, caption, style-suggestion, quick-response)")
	rootCmd.Flags().StringVar(&genderFlag, "gender", "", "Gender the outfits are for")
	rootCmd.Flags().StringVar(&bodyTypeFlag, "body-type", "", "Body type")
	rootCmd.Flags().StringVar(&styleFlag, "style", "", "Style preference (e.g., minimalist, streetwear)")
	rootCmd.Flags().StringVar(&occasionFlag, "occasion", "", "Occasion (e.g., formal, casual, beach wedding)")
	rootCmd.Flags().StringVar(&destinationFlag, "destination", "", "Destination or setting")
	rootCmd.Flags().StringVar(&budgetFlag, "budget", "", "Budget range")
	rootCmd.Flags().StringSliceVar(&colorsFlag, "colors", nil, "Preferred colors (comma-separated)")
	rootCmd.Flags().StringVarP(&messageFlag, "message", "M", "", "Message or question (chat, style-suggestion, quick-response)")
	rootCmd.Flags().StringVar(&outfitFlag, "outfit", "", "Outfit description (caption)")
	rootCmd.Flags().StringVarP(&modelFlag, "model", "m", provider.DefaultGeminiModel, "Gemini model to use")
	rootCmd.Flags().DurationVar(&timeoutFlag, "timeout", 60*time.Second, "Provider call timeout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runMain is the main execution logic called by Cobra.
func runMain(cmd *cobra.Command, args []string) {
	logging.Init()

	action := prompt.Action(actionFlag)
	if !action.Valid() {
		log.Fatal().Str("action", actionFlag).Msg("Unknown action")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal().Msg("GEMINI_API_KEY environment variable is required")
	}

	if modelFlag != "" {
		os.Setenv("STYLIST_MODEL", modelFlag)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeoutFlag)
	defer cancel()

	client, err := provider.NewGeminiClient(ctx, apiKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Gemini client")
	}
	svc := stylist.NewService(client)

	fields := prompt.Fields{
		Gender:            genderFlag,
		BodyType:          bodyTypeFlag,
		StylePreference:   styleFlag,
		Occasion:          occasionFlag,
		Destination:       destinationFlag,
		Budget:            budgetFlag,
		ColorPreferences:  colorsFlag,
		Message:           messageFlag,
		OutfitDescription: outfitFlag,
	}

	switch action {
	case prompt.ActionRecommendations:
		recs, degraded, err := svc.Recommendations(ctx, fields)
		if err != nil {
			log.Fatal().Err(err).Msg("Recommendation request failed")
		}
		if degraded {
			log.Warn().Msg("Response was not structured; showing fallback record")
		}
		printJSON(recs)

	case prompt.ActionChat:
		reply, err := svc.Chat(ctx, fields)
		if err != nil {
			log.Fatal().Err(err).Msg("Chat request failed")
		}
		fmt.Println(reply)

	case prompt.ActionCaption:
		caption, err := svc.Caption(ctx, fields)
		if err != nil {
			log.Fatal().Err(err).Msg("Caption request failed")
		}
		fmt.Println(caption)

	case prompt.ActionStyleSuggestion:
		suggestion, degraded, err := svc.StyleSuggestion(ctx, fields)
		if err != nil {
			log.Fatal().Err(err).Msg("Style suggestion request failed")
		}
		if degraded {
			log.Warn().Msg("Response was not structured; showing raw text in outfitSuggestion")
		}
		printJSON(suggestion)

	case prompt.ActionQuickResponse:
		answer, err := svc.QuickResponse(ctx, fields)
		if err != nil {
			log.Fatal().Err(err).Msg("Quick response request failed")
		}
		fmt.Println(answer)
	}
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode result")
	}
	fmt.Println(string(out))
}
