package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fortuna/rinkside/internal/service"
	"github.com/fortuna/rinkside/internal/stats"
	"github.com/fortuna/rinkside/internal/store"
	"github.com/gorilla/mux"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	db             *store.Database
	statsService   *service.StatsService
	gamesService   *service.GamesService
	playersService *service.PlayersService
	refreshService *service.RefreshService
}

// NewHandler creates a new handler
func NewHandler(db *store.Database, statsService *service.StatsService, gamesService *service.GamesService, playersService *service.PlayersService, refreshService *service.RefreshService) *Handler {
	return &Handler{
		db:             db,
		statsService:   statsService,
		gamesService:   gamesService,
		playersService: playersService,
		refreshService: refreshService,
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	code := http.StatusOK
	if err := h.db.HealthCheck(); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	respondJSON(w, code, map[string]string{
		"status":  status,
		"service": "rinkside",
		"version": "1.0.0",
	})
}

// GetTeamSummary returns the season record and all player rows
func (h *Handler) GetTeamSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.statsService.GetSeasonSummary(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute season summary", err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// GetTeamGameLog returns all games with computed results, newest first
func (h *Handler) GetTeamGameLog(w http.ResponseWriter, r *http.Request) {
	games, err := h.gamesService.ListGames(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch games", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
		"count": len(games),
	})
}

// GetPlayers returns the player reference table
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	position := r.URL.Query().Get("position")

	players, err := h.playersService.ListPlayers(r.Context(), position)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch players", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"players": players,
		"count":   len(players),
	})
}

// GetPlayerStats returns a player's season totals
func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID := vars["playerID"]

	row, err := h.playersService.GetSeasonStats(r.Context(), playerID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Player not found", err)
		return
	}

	respondJSON(w, http.StatusOK, row)
}

// GetPlayerGameLog returns a player's per-game stat lines
func (h *Handler) GetPlayerGameLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID := vars["playerID"]

	entries, err := h.playersService.GetGameLog(r.Context(), playerID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Player not found", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": entries,
		"count": len(entries),
	})
}

// GetGames returns all games with computed results
func (h *Handler) GetGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gamesService.ListGames(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch games", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
		"count": len(games),
	})
}

// GetGame returns a specific game by ID
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["gameID"]

	game, err := h.gamesService.GetGame(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Game not found", err)
		return
	}

	respondJSON(w, http.StatusOK, game)
}

// GetGameBoxScore returns the box score for a game
func (h *Handler) GetGameBoxScore(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["gameID"]

	boxScore, err := h.gamesService.GetBoxScore(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Box score not found", err)
		return
	}

	if position := r.URL.Query().Get("position"); position != "" {
		filtered := boxScore.PlayerLines[:0]
		for _, line := range boxScore.PlayerLines {
			if line.Player.Position == position {
				filtered = append(filtered, line)
			}
		}
		boxScore.PlayerLines = filtered
	}

	respondJSON(w, http.StatusOK, boxScore)
}

// GetGameTimeline returns the game's events in chronological order
func (h *Handler) GetGameTimeline(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["gameID"]

	timeline, err := h.gamesService.GetTimeline(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Game not found", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"events": timeline,
		"count":  len(timeline),
	})
}

// GetLeaderboard returns the top players by category
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = stats.CategoryPoints
	}
	position := r.URL.Query().Get("position")

	limitStr := r.URL.Query().Get("limit")
	limit := 10 // default
	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	rows, err := h.statsService.GetLeaderboard(r.Context(), category, position, limit)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to build leaderboard", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"players":  rows,
		"count":    len(rows),
	})
}

// GetGoalies returns netminding stats for every goalie
func (h *Handler) GetGoalies(w http.ResponseWriter, r *http.Request) {
	summary, err := h.statsService.GetSeasonSummary(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute season summary", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"goalies": summary.Goalies,
		"count":   len(summary.Goalies),
	})
}

// TriggerRefresh runs the ingest pipeline on demand
func (h *Handler) TriggerRefresh(w http.ResponseWriter, r *http.Request) {
	if h.refreshService == nil {
		respondError(w, http.StatusServiceUnavailable, "Refresh not configured", nil)
		return
	}

	result, err := h.refreshService.Refresh(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "Refresh failed", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
