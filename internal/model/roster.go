package model

import (
	"sort"
	"strings"
)

// Roster is the full player-name-to-match-history mapping. Keys are
// non-empty trimmed names; each match list is kept sorted ascending by
// date. This is also the persisted snapshot shape.
type Roster map[string][]Match

// DefaultPlayerNames is the built-in bootstrap roster, used when no
// snapshot exists or when the defaults are loaded explicitly.
var DefaultPlayerNames = []string{
	"Alex", "Ben", "Clara", "Dana", "Emil", "Fiona",
}

// NewRoster creates an empty roster
func NewRoster() Roster {
	return make(Roster)
}

// Clone returns a deep copy. Mutations are applied to a clone and only
// swapped in once the snapshot save succeeds.
func (r Roster) Clone() Roster {
	out := make(Roster, len(r))
	for name, matches := range r {
		list := make([]Match, len(matches))
		copy(list, matches)
		out[name] = list
	}
	return out
}

// PlayerNames returns all player names sorted ascending
func (r Roster) PlayerNames() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SortMatches orders a match list ascending by date. The sort is stable
// so same-date matches keep their insertion order.
func SortMatches(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date < matches[j].Date
	})
}

// TrimName normalizes a player name for use as a roster key
func TrimName(name string) string {
	return strings.TrimSpace(name)
}
