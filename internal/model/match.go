package model

import "time"

// MatchID uniquely identifies a match within a player's history
type MatchID string

// DateLayout is the calendar-date format used throughout the system.
// ISO dates compare lexicographically in chronological order, so match
// lists can be sorted on the raw string.
const DateLayout = "2006-01-02"

// Match is one recorded game for a player. The JSON shape is the
// persistence format: it must stay stable across releases.
type Match struct {
	ID       MatchID `json:"id"`
	Date     string  `json:"date"`
	Points   int     `json:"points"`
	Rebounds int     `json:"rebounds"`
	Assists  int     `json:"assists"`
}

// ParseDate validates a calendar date in YYYY-MM-DD form.
// Returns ErrInvalidDate for empty or unparseable input.
func ParseDate(s string) (string, error) {
	if s == "" {
		return "", ErrInvalidDate
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", ErrInvalidDate
	}
	// Normalize so "2024-1-5" style input never leaks into storage
	return t.Format(DateLayout), nil
}
