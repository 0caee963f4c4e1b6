package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/betbot/betsuggest/internal/suggest"
	"github.com/betbot/betsuggest/pkg/logger"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "up",
		"message": "365scores AI-Betting server is running",
	})
}

func (s *Server) handleGameSuggestions(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(pathParam(r, "userId"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId is required as a path parameter")
		return
	}

	q := suggest.Query{
		EntityID:   r.URL.Query().Get("entityId"),
		EntityType: r.URL.Query().Get("entityType"),
		Lang:       r.URL.Query().Get("lang"),
	}

	data, err := s.cfg.Suggestions.GameSuggestions(r.Context(), userID, q)
	if err != nil {
		logger.Errorf("games-bets-suggestions failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    data,
	})
}

type generateSuggestionsRequest struct {
	UserID  string         `json:"userId"`
	Filters map[string]any `json:"filters"`
}

func (s *Server) handleGenerateSuggestions(w http.ResponseWriter, r *http.Request) {
	var req generateSuggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeError(w, http.StatusBadRequest, "userId is required in the request body")
		return
	}

	data, err := s.cfg.Suggestions.GenerateSuggestions(r.Context(), req.UserID, req.Filters)
	if err != nil {
		logger.Errorf("generate-suggestions failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Betting suggestions generated successfully",
		"data":    data,
	})
}
