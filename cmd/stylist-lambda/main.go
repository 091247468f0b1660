// Package main provides the Lambda entry point for the stylist prompt
// proxy: captions, structured style suggestions, and quick replies backed
// by an OpenAI-compatible chat-completions API.
//
// Endpoints:
//
//	POST    /api/stylist/prompt — run a caption, style-suggestion, or quick-response prompt
//	OPTIONS /api/stylist/prompt — CORS preflight
//	GET     /api/health         — health check
package main

import (
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/avelez/ai-stylist-backend/internal/api"
	"github.com/avelez/ai-stylist-backend/internal/lambdaboot"
	"github.com/avelez/ai-stylist-backend/internal/logging"
)

func init() {
	initStart := time.Now()
	logging.Init()

	aws := lambdaboot.InitAWS()
	lambdaboot.LoadOpenAIKey(aws.SSM)

	lambdaboot.StartupLog("stylist-lambda", initStart).
		Provider("openai", logging.EnvOrDefault("OPENAI_MODEL", "gpt-4o-mini")).
		SSMParam("openaiApiKey", logging.EnvOrDefault("SSM_OPENAI_KEY_PARAM", "/ai-stylist/prod/openai-api-key")).
		Config("openaiBaseUrl", logging.EnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com")).
		Log()
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func main() {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth)
	mux.Handle("/api/stylist/prompt", api.NewStylistHandler())

	adapter := httpadapter.NewV2(api.WithMetrics(mux))
	lambda.Start(adapter.ProxyWithContext)
}
