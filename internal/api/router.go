package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/courtlog/courtlog/internal/api/handler"
	"github.com/courtlog/courtlog/internal/api/middleware"
	"github.com/courtlog/courtlog/internal/metrics"
	"github.com/courtlog/courtlog/internal/services/roster"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	RosterService *roster.Service
	Metrics       *metrics.Metrics
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	rosterHandler := handler.NewRosterHandler(cfg.RosterService)
	statsHandler := handler.NewStatsHandler(cfg.RosterService)

	if reg := cfg.Metrics.Registry(); reg != nil {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	// Roster-wide operations
	api.HandleFunc("/roster", rosterHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/roster", rosterHandler.ResetAll).Methods(http.MethodDelete)
	api.HandleFunc("/roster/defaults", rosterHandler.LoadDefaults).Methods(http.MethodPost)

	// Player operations
	api.HandleFunc("/players", rosterHandler.CreatePlayer).Methods(http.MethodPost)
	api.HandleFunc("/players/{name}", rosterHandler.GetPlayer).Methods(http.MethodGet)
	api.HandleFunc("/players/{name}", rosterHandler.DeletePlayer).Methods(http.MethodDelete)

	// Match operations
	api.HandleFunc("/players/{name}/matches", rosterHandler.AddMatch).Methods(http.MethodPost)
	api.HandleFunc("/players/{name}/matches", rosterHandler.ResetPlayerStats).Methods(http.MethodDelete)
	api.HandleFunc("/players/{name}/matches/{id}", rosterHandler.UpdateMatch).Methods(http.MethodPut)
	api.HandleFunc("/players/{name}/matches/{id}", rosterHandler.DeleteMatch).Methods(http.MethodDelete)

	// Aggregates
	api.HandleFunc("/players/{name}/stats", statsHandler.GetStats).Methods(http.MethodGet)
	api.HandleFunc("/players/{name}/series", statsHandler.GetSeries).Methods(http.MethodGet)

	return r
}
