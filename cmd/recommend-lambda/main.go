// Package main provides the Lambda entry point for the style
// recommendations and chat proxy.
//
// The function is stateless: each POST runs the prompt builder, one blocking
// Gemini call, and the normalizer, then responds. No retries, no caching, no
// persistence.
//
// Endpoints:
//
//	POST    /api/style/recommend — generate outfit recommendations or a chat reply
//	OPTIONS /api/style/recommend — CORS preflight
//	GET     /api/health          — health check
package main

import (
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/rs/zerolog/log"

	"github.com/avelez/ai-stylist-backend/internal/api"
	"github.com/avelez/ai-stylist-backend/internal/lambdaboot"
	"github.com/avelez/ai-stylist-backend/internal/logging"
	"github.com/avelez/ai-stylist-backend/internal/provider"
)

var coldStart = true

func init() {
	initStart := time.Now()
	logging.Init()

	aws := lambdaboot.InitAWS()
	lambdaboot.LoadGeminiKey(aws.SSM)

	lambdaboot.StartupLog("recommend-lambda", initStart).
		Provider("gemini", provider.GeminiModelName()).
		SSMParam("geminiApiKey", logging.EnvOrDefault("SSM_GEMINI_KEY_PARAM", "/ai-stylist/prod/gemini-api-key")).
		Log()
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func main() {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth)
	mux.Handle("/api/style/recommend", api.NewRecommendHandler())

	handler := api.WithMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if coldStart {
			coldStart = false
			log.Info().Str("function", "recommend-lambda").Msg("First invocation")
		}
		mux.ServeHTTP(w, r)
	}))

	adapter := httpadapter.NewV2(handler)
	lambda.Start(adapter.ProxyWithContext)
}
