package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/courtlog/courtlog/internal/api/apierr"
	"github.com/courtlog/courtlog/internal/api/request"
	"github.com/courtlog/courtlog/internal/api/response"
	"github.com/courtlog/courtlog/internal/model"
	"github.com/courtlog/courtlog/internal/services/roster"
	"github.com/courtlog/courtlog/internal/services/stats"
)

// Load-defaults modes
const (
	DefaultsModeReplace = "replace"
	DefaultsModeMerge   = "merge"
)

// RosterHandler handles roster and match endpoints
type RosterHandler struct {
	roster *roster.Service
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(rosterService *roster.Service) *RosterHandler {
	return &RosterHandler{roster: rosterService}
}

// List handles GET /api/v1/roster
func (h *RosterHandler) List(w http.ResponseWriter, r *http.Request) {
	snapshot := h.roster.Snapshot()

	out := response.Roster{Players: []response.RosterEntry{}}
	for _, name := range snapshot.PlayerNames() {
		matches := snapshot[name]
		out.Players = append(out.Players, response.RosterEntry{
			Name:       name,
			MatchCount: len(matches),
			Stats:      stats.Compute(matches),
		})
	}

	response.JSON(w, http.StatusOK, out)
}

// CreatePlayer handles POST /api/v1/players
func (h *RosterHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	name, err := h.roster.AddPlayer(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(name, nil))
}

// GetPlayer handles GET /api/v1/players/{name}
func (h *RosterHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	matches, err := h.roster.Matches(name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(model.TrimName(name), matches))
}

// DeletePlayer handles DELETE /api/v1/players/{name}
func (h *RosterHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.roster.DeletePlayer(r.Context(), name); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// AddMatch handles POST /api/v1/players/{name}/matches
func (h *RosterHandler) AddMatch(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req request.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	match, err := h.roster.AddMatch(r.Context(), name, req.Date, req.Points, req.Rebounds, req.Assists)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MatchFromModel(match))
}

// UpdateMatch handles PUT /api/v1/players/{name}/matches/{id}
func (h *RosterHandler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name, id := vars["name"], vars["id"]

	var req request.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	match, err := h.roster.UpdateMatch(r.Context(), name, model.MatchID(id), req.Date, req.Points, req.Rebounds, req.Assists)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(match))
}

// DeleteMatch handles DELETE /api/v1/players/{name}/matches/{id}
func (h *RosterHandler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.roster.DeleteMatch(r.Context(), vars["name"], model.MatchID(vars["id"])); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// ResetPlayerStats handles DELETE /api/v1/players/{name}/matches
func (h *RosterHandler) ResetPlayerStats(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.roster.ResetPlayerStats(r.Context(), name); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// ResetAll handles DELETE /api/v1/roster
func (h *RosterHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	if err := h.roster.ResetAll(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// LoadDefaults handles POST /api/v1/roster/defaults
func (h *RosterHandler) LoadDefaults(w http.ResponseWriter, r *http.Request) {
	var req request.LoadDefaultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	var err error
	switch req.Mode {
	case DefaultsModeReplace:
		err = h.roster.LoadDefaultsReplace(r.Context())
	case DefaultsModeMerge:
		err = h.roster.LoadDefaultsMerge(r.Context())
	default:
		WriteError(w, apierr.NewInvalidRequestError("Mode must be 'replace' or 'merge'"))
		return
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	h.List(w, r)
}
