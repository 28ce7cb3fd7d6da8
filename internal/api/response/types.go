package response

import (
	"github.com/courtlog/courtlog/internal/model"
	"github.com/courtlog/courtlog/internal/services/stats"
)

// Match represents a match in API responses
type Match struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Points   int    `json:"points"`
	Rebounds int    `json:"rebounds"`
	Assists  int    `json:"assists"`
}

// MatchFromModel converts a model.Match to a response Match
func MatchFromModel(m model.Match) Match {
	return Match{
		ID:       string(m.ID),
		Date:     m.Date,
		Points:   m.Points,
		Rebounds: m.Rebounds,
		Assists:  m.Assists,
	}
}

// MatchesFromModel converts a match list, preserving order
func MatchesFromModel(matches []model.Match) []Match {
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		out = append(out, MatchFromModel(m))
	}
	return out
}

// Player represents a player with their history and aggregates
type Player struct {
	Name    string        `json:"name"`
	Matches []Match       `json:"matches"`
	Stats   stats.Summary `json:"stats"`
}

// PlayerFromModel builds a Player response from a sorted match list
func PlayerFromModel(name string, matches []model.Match) Player {
	return Player{
		Name:    name,
		Matches: MatchesFromModel(matches),
		Stats:   stats.Compute(matches),
	}
}

// RosterEntry is one row of the roster listing
type RosterEntry struct {
	Name       string        `json:"name"`
	MatchCount int           `json:"match_count"`
	Stats      stats.Summary `json:"stats"`
}

// Roster is the full roster listing, ordered by name
type Roster struct {
	Players []RosterEntry `json:"players"`
}

// Series is a player's scoring time series
type Series struct {
	Name   string              `json:"name"`
	Points []stats.SeriesPoint `json:"points"`
}

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}
