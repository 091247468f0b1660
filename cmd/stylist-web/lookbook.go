package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/avelez/ai-stylist-backend/internal/store"
)

// saveLookRequest is the body for POST /api/lookbook.
type saveLookRequest struct {
	UserID      string   `json:"userId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
	Occasion    string   `json:"occasion"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}

// POST /api/lookbook — save a look
// GET  /api/lookbook?userId=... — list a user's saved looks
func handleLookbook(w http.ResponseWriter, r *http.Request) {
	if lookbook == nil {
		httpError(w, http.StatusServiceUnavailable, "lookbook is not configured")
		return
	}

	switch r.Method {
	case http.MethodPost:
		var req saveLookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.UserID == "" || req.Title == "" {
			httpError(w, http.StatusBadRequest, "userId and title are required")
			return
		}

		look := &store.SavedLook{
			UserID:      req.UserID,
			LookID:      uuid.NewString(),
			Title:       req.Title,
			Description: req.Description,
			Items:       req.Items,
			Occasion:    req.Occasion,
			ImageURL:    req.ImageURL,
		}
		if err := lookbook.PutSavedLook(r.Context(), look); err != nil {
			log.Error().Err(err).Str("userId", req.UserID).Msg("Failed to save look")
			httpError(w, http.StatusInternalServerError, "failed to save look")
			return
		}
		respondJSON(w, http.StatusCreated, look)

	case http.MethodGet:
		userID := r.URL.Query().Get("userId")
		if userID == "" {
			httpError(w, http.StatusBadRequest, "userId is required")
			return
		}
		looks, err := lookbook.ListSavedLooks(r.Context(), userID)
		if err != nil {
			log.Error().Err(err).Str("userId", userID).Msg("Failed to list looks")
			httpError(w, http.StatusInternalServerError, "failed to list looks")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"looks": looks})

	default:
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// DELETE /api/lookbook/{lookId}?userId=...
func handleLookbookItem(w http.ResponseWriter, r *http.Request) {
	if lookbook == nil {
		httpError(w, http.StatusServiceUnavailable, "lookbook is not configured")
		return
	}
	if r.Method != http.MethodDelete {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	lookID := strings.TrimPrefix(r.URL.Path, "/api/lookbook/")
	userID := r.URL.Query().Get("userId")
	if lookID == "" || strings.Contains(lookID, "/") || userID == "" {
		httpError(w, http.StatusBadRequest, "userId and lookId are required")
		return
	}

	if err := lookbook.DeleteSavedLook(r.Context(), userID, lookID); err != nil {
		log.Error().Err(err).Str("userId", userID).Str("lookId", lookID).Msg("Failed to delete look")
		httpError(w, http.StatusInternalServerError, "failed to delete look")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
