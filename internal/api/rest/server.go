package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(port string, handler *Handler) *Server {
	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Team
	api.HandleFunc("/team/summary", handler.GetTeamSummary).Methods("GET")
	api.HandleFunc("/team/gamelog", handler.GetTeamGameLog).Methods("GET")

	// Players
	api.HandleFunc("/players", handler.GetPlayers).Methods("GET")
	api.HandleFunc("/players/{playerID}/stats", handler.GetPlayerStats).Methods("GET")
	api.HandleFunc("/players/{playerID}/gamelog", handler.GetPlayerGameLog).Methods("GET")

	// Games
	api.HandleFunc("/games", handler.GetGames).Methods("GET")
	api.HandleFunc("/games/{gameID}", handler.GetGame).Methods("GET")
	api.HandleFunc("/games/{gameID}/boxscore", handler.GetGameBoxScore).Methods("GET")
	api.HandleFunc("/games/{gameID}/timeline", handler.GetGameTimeline).Methods("GET")

	// Aggregates
	api.HandleFunc("/leaderboards", handler.GetLeaderboard).Methods("GET")
	api.HandleFunc("/goalies", handler.GetGoalies).Methods("GET")

	// Ingest
	api.HandleFunc("/refresh", handler.TriggerRefresh).Methods("POST")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
