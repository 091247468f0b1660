// Package main provides a local server composing the full stylist backend:
// both AI proxy endpoints, lookbook persistence, and presigned upload URLs.
// Useful for development and for single-host deployments without Lambda.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/avelez/ai-stylist-backend/internal/api"
	"github.com/avelez/ai-stylist-backend/internal/lambdaboot"
	"github.com/avelez/ai-stylist-backend/internal/logging"
	"github.com/avelez/ai-stylist-backend/internal/provider"
	"github.com/avelez/ai-stylist-backend/internal/store"
)

// CLI flags
var (
	portFlag  int
	modelFlag string
)

// AWS-backed features, nil/zero when not configured.
var (
	lookbook *store.LookbookStore
	uploads  lambdaboot.S3Clients
)

var rootCmd = &cobra.Command{
	Use:   "stylist-web",
	Short: "Local server for the AI stylist backend",
	Long: `Stylist Web starts a local HTTP server exposing the full stylist
backend: outfit recommendations, chat, captions, style suggestions, quick
responses, plus lookbook persistence and image upload URLs when AWS
resources are configured.

Examples:
  stylist-web
  stylist-web --port 9090
  stylist-web --model gemini-2.5-pro`,
	Run: runMain,
}

func init() {
	rootCmd.Flags().IntVar(&portFlag, "port", 8080, "Port to listen on")
	rootCmd.Flags().StringVarP(&modelFlag, "model", "m", provider.DefaultGeminiModel, "Gemini model to use")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMain(cmd *cobra.Command, args []string) {
	logging.Init()

	if modelFlag != "" {
		os.Setenv("STYLIST_MODEL", modelFlag)
	}

	if os.Getenv(api.GeminiKeyEnv) == "" {
		log.Warn().Str("envVar", api.GeminiKeyEnv).Msg("Gemini key not set; /api/style/recommend will return errors")
	}
	if os.Getenv(api.OpenAIKeyEnv) == "" {
		log.Warn().Str("envVar", api.OpenAIKeyEnv).Msg("OpenAI key not set; /api/stylist/prompt will return errors")
	}

	// Lookbook and uploads need AWS credentials. Skip both when neither
	// resource is named so the proxy endpoints work standalone.
	if os.Getenv("LOOKBOOK_TABLE_NAME") != "" || os.Getenv("UPLOAD_BUCKET_NAME") != "" {
		aws := lambdaboot.InitAWS()
		lookbook = lambdaboot.InitLookbookOptional(aws.Config, "LOOKBOOK_TABLE_NAME")
		if os.Getenv("UPLOAD_BUCKET_NAME") != "" {
			uploads = lambdaboot.InitS3(aws.Config, "UPLOAD_BUCKET_NAME")
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth)
	mux.Handle("/api/style/recommend", api.NewRecommendHandler())
	mux.Handle("/api/stylist/prompt", api.NewStylistHandler())
	mux.HandleFunc("/api/lookbook", handleLookbook)
	mux.HandleFunc("/api/lookbook/", handleLookbookItem)
	mux.HandleFunc("/api/upload-url", handleUploadURL)

	handler := api.WithLogging(withCORS(mux))

	addr := fmt.Sprintf(":%d", portFlag)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}()

	log.Info().Int("port", portFlag).
		Bool("lookbook", lookbook != nil).
		Bool("uploads", uploads.Presigner != nil).
		Msg("Starting web server")
	fmt.Printf("\n  AI Stylist backend: http://localhost:%d\n\n", portFlag)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "ai-stylist-backend",
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
