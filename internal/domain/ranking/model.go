package ranking

import (
	"math"
	"time"
)

// Method names one of the three ranking formulas.
type Method string

const (
	// MethodComprehensive is the weighted power score blending record,
	// scoring, differential, momentum and consistency.
	MethodComprehensive Method = "comprehensive"

	// MethodOberon is the Oberon Mt. power rating: 60% average score,
	// 20% high/low midpoint, 20% win percentage. Reported on its own raw
	// scale rather than normalized against the league.
	MethodOberon Method = "oberon"

	// MethodValueIndex is the team value index: points-for over
	// points-against scaled by win percentage.
	MethodValueIndex Method = "value_index"
)

// Metrics holds the derived per-team quantities every formula reads.
type Metrics struct {
	GamesPlayed       int     `json:"games_played"`
	WinPct            float64 `json:"win_pct"`
	AvgPointsFor      float64 `json:"avg_points_for"`
	AvgPointsAgainst  float64 `json:"avg_points_against"`
	PointDifferential float64 `json:"point_differential"`
	HighScore         float64 `json:"high_score"`
	LowScore          float64 `json:"low_score"`
	Consistency       float64 `json:"consistency"`
	RecentForm        float64 `json:"recent_form"`

	// FormString renders the recent results newest-last, e.g. "WLW".
	// Empty when no games have been played.
	FormString string `json:"form_string"`
}

// Normalized holds the league-max-normalized components that feed the
// comprehensive score, kept so the presentation layer can show a breakdown.
type Normalized struct {
	WinPct            float64 `json:"win_pct"`
	AvgPointsFor      float64 `json:"avg_points_for"`
	PointDifferential float64 `json:"point_differential"`
	RecentForm        float64 `json:"recent_form"`
	Consistency       float64 `json:"consistency"`
}

// TeamRating is one team's entry in a ranked list.
type TeamRating struct {
	Rank     int     `json:"rank"`
	TeamID   string  `json:"team_id"`
	TeamName string  `json:"team_name"`
	Record   string  `json:"record"`
	Score    float64 `json:"score"`

	Metrics    Metrics    `json:"metrics"`
	Normalized Normalized `json:"normalized"`
}

// Rankings holds the three independently ordered lists produced from one
// league snapshot.
type Rankings struct {
	Comprehensive []TeamRating `json:"comprehensive"`
	Oberon        []TeamRating `json:"oberon"`
	ValueIndex    []TeamRating `json:"value_index"`
}

// Snapshot wraps computed rankings with league context for callers.
type Snapshot struct {
	LeagueID    string    `json:"league_id"`
	LeagueName  string    `json:"league_name"`
	Week        int       `json:"week"`
	GeneratedAt time.Time `json:"generated_at"`
	Rankings    Rankings  `json:"rankings"`
}

// Weights configures the comprehensive power score. The five weights must
// sum to 1.0.
type Weights struct {
	WinPct            float64 `json:"win_pct"`
	AvgPointsFor      float64 `json:"avg_points_for"`
	PointDifferential float64 `json:"point_differential"`
	RecentForm        float64 `json:"recent_form"`
	Consistency       float64 `json:"consistency"`
}

// Sum returns the total of the five weights.
func (w Weights) Sum() float64 {
	return w.WinPct + w.AvgPointsFor + w.PointDifferential + w.RecentForm + w.Consistency
}

// Valid reports whether the weights sum to 1.0 within tolerance.
func (w Weights) Valid() bool {
	return math.Abs(w.Sum()-1.0) < 1e-9
}

// OberonWeights configures the Oberon Mt. rating components.
type OberonWeights struct {
	AvgScore float64 `json:"avg_score"`
	HighLow  float64 `json:"high_low"`
	WinPct   float64 `json:"win_pct"`
}

// Criteria is the full, immutable configuration for one engine instance.
// Weight sets are passed in rather than hardcoded so they stay swappable.
type Criteria struct {
	Weights         Weights       `json:"weights"`
	Oberon          OberonWeights `json:"oberon"`
	RecentFormGames int           `json:"recent_form_games"`
}

// DefaultCriteria returns the standard weight configuration.
func DefaultCriteria() Criteria {
	return Criteria{
		Weights: Weights{
			WinPct:            0.30,
			AvgPointsFor:      0.25,
			PointDifferential: 0.20,
			RecentForm:        0.15,
			Consistency:       0.10,
		},
		Oberon: OberonWeights{
			AvgScore: 0.60,
			HighLow:  0.20,
			WinPct:   0.20,
		},
		RecentFormGames: 3,
	}
}
