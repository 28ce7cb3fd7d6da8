package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/courtlog/courtlog/internal/api/response"
	"github.com/courtlog/courtlog/internal/model"
	"github.com/courtlog/courtlog/internal/services/roster"
	"github.com/courtlog/courtlog/internal/services/stats"
)

// StatsHandler handles aggregate and time-series endpoints
type StatsHandler struct {
	roster *roster.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(rosterService *roster.Service) *StatsHandler {
	return &StatsHandler{roster: rosterService}
}

// GetStats handles GET /api/v1/players/{name}/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	matches, err := h.roster.Matches(name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, stats.Compute(matches))
}

// GetSeries handles GET /api/v1/players/{name}/series
func (h *StatsHandler) GetSeries(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	matches, err := h.roster.Matches(name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Series{
		Name:   model.TrimName(name),
		Points: stats.PointsSeries(matches),
	})
}
