package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case Roster:
		o.printRoster(v)
	case Match:
		o.printMatch(v)
	case Stats:
		o.printStats(v)
	case Series:
		o.printSeries(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s\n", p.Name)
	o.printStatsLine(p.Stats)
	if len(p.Matches) == 0 {
		fmt.Println("No matches recorded.")
		return
	}
	fmt.Printf("%-38s %-12s %7s %9s %8s\n", "ID", "DATE", "POINTS", "REBOUNDS", "ASSISTS")
	for _, m := range p.Matches {
		fmt.Printf("%-38s %-12s %7d %9d %8d\n", m.ID, m.Date, m.Points, m.Rebounds, m.Assists)
	}
}

func (o *Output) printRoster(r Roster) {
	if len(r.Players) == 0 {
		fmt.Println("Roster is empty.")
		return
	}
	fmt.Printf("%-20s %7s %7s %9s %8s %6s\n", "NAME", "MATCHES", "PTS", "REB", "AST", "TREND")
	for _, p := range r.Players {
		fmt.Printf("%-20s %7d %7.1f %9.1f %8.1f %6s\n",
			p.Name, p.MatchCount, p.Stats.AvgPoints, p.Stats.AvgRebounds, p.Stats.AvgAssists, p.Stats.Trend)
	}
}

func (o *Output) printMatch(m Match) {
	fmt.Printf("Match %s on %s: %d pts, %d reb, %d ast\n",
		m.ID, m.Date, m.Points, m.Rebounds, m.Assists)
}

func (o *Output) printStats(s Stats) {
	o.printStatsLine(s)
}

func (o *Output) printStatsLine(s Stats) {
	fmt.Printf("Averages: %.1f pts, %.1f reb, %.1f ast (trend %s)\n",
		s.AvgPoints, s.AvgRebounds, s.AvgAssists, s.Trend)
}

func (o *Output) printSeries(s Series) {
	fmt.Printf("Scoring series for %s:\n", s.Name)
	for _, p := range s.Points {
		fmt.Printf("  %s  %d\n", p.Date, p.Points)
	}
}

// Match response type (matches API)
type Match struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Points   int    `json:"points"`
	Rebounds int    `json:"rebounds"`
	Assists  int    `json:"assists"`
}

// Stats response type
type Stats struct {
	AvgPoints   float64 `json:"avg_points"`
	AvgRebounds float64 `json:"avg_rebounds"`
	AvgAssists  float64 `json:"avg_assists"`
	Trend       string  `json:"trend"`
}

// Player response type
type Player struct {
	Name    string  `json:"name"`
	Matches []Match `json:"matches"`
	Stats   Stats   `json:"stats"`
}

// RosterEntry response type
type RosterEntry struct {
	Name       string `json:"name"`
	MatchCount int    `json:"match_count"`
	Stats      Stats  `json:"stats"`
}

// Roster response type
type Roster struct {
	Players []RosterEntry `json:"players"`
}

// SeriesPoint response type
type SeriesPoint struct {
	Date   string `json:"date"`
	Points int    `json:"points"`
}

// Series response type
type Series struct {
	Name   string        `json:"name"`
	Points []SeriesPoint `json:"points"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}
