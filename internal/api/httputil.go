// Package api implements the two recommendation proxy endpoints: the
// style-recommendations/chat handler and the stylist-prompt handler. Both run
// the same three-stage pipeline (prompt builder -> provider -> normalizer)
// and expose permissive CORS so any browser origin may call them.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// httpError sends a flat {error} JSON response. The clientMsg is returned to
// the caller; optional internalDetails are logged server-side but never sent,
// so provider payloads and stack traces stay out of browser consoles.
func httpError(w http.ResponseWriter, status int, clientMsg string, internalDetails ...string) {
	if len(internalDetails) > 0 {
		log.Error().
			Int("status", status).
			Str("clientMsg", clientMsg).
			Strs("internalDetails", internalDetails).
			Msg("HTTP error with internal details")
	}
	respondJSON(w, status, map[string]string{"error": clientMsg})
}

// setCORS applies the permissive CORS headers both proxy endpoints carry on
// every response, including errors and preflights.
func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}
