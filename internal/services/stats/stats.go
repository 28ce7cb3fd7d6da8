package stats

import (
	"math"

	"github.com/courtlog/courtlog/internal/model"
)

// Trend classifies a player's recent form from the two most recent
// matches by date
type Trend string

const (
	TrendUp   Trend = "UP"
	TrendDown Trend = "DOWN"
	TrendNone Trend = "NONE"
)

// Summary holds per-player aggregate metrics over a match history
type Summary struct {
	AvgPoints   float64 `json:"avg_points"`
	AvgRebounds float64 `json:"avg_rebounds"`
	AvgAssists  float64 `json:"avg_assists"`
	Trend       Trend   `json:"trend"`
}

// SeriesPoint is one entry of a player's scoring time series
type SeriesPoint struct {
	Date   string `json:"date"`
	Points int    `json:"points"`
}

// Compute calculates aggregate metrics over a date-sorted match list.
// Averages are arithmetic means rounded to one decimal; an empty list
// yields zero averages and TrendNone.
func Compute(matches []model.Match) Summary {
	if len(matches) == 0 {
		return Summary{Trend: TrendNone}
	}

	var points, rebounds, assists int
	for _, m := range matches {
		points += m.Points
		rebounds += m.Rebounds
		assists += m.Assists
	}

	n := float64(len(matches))
	return Summary{
		AvgPoints:   round1(float64(points) / n),
		AvgRebounds: round1(float64(rebounds) / n),
		AvgAssists:  round1(float64(assists) / n),
		Trend:       trend(matches),
	}
}

// trend compares the two chronologically last matches. Equal points
// count as UP: holding the level is not a decline.
func trend(matches []model.Match) Trend {
	if len(matches) < 2 {
		return TrendNone
	}
	last := matches[len(matches)-1]
	prior := matches[len(matches)-2]
	if last.Points >= prior.Points {
		return TrendUp
	}
	return TrendDown
}

// PointsSeries extracts the date/points time series consumed by chart
// rendering. Input order is preserved.
func PointsSeries(matches []model.Match) []SeriesPoint {
	series := make([]SeriesPoint, 0, len(matches))
	for _, m := range matches {
		series = append(series, SeriesPoint{Date: m.Date, Points: m.Points})
	}
	return series
}

// round1 rounds half away from zero to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
