package league

import (
	"fmt"
	"time"
)

// Platform identifies the fantasy provider a league lives on.
type Platform string

const (
	PlatformSleeper Platform = "sleeper"
	PlatformESPN    Platform = "espn"
	PlatformYahoo   Platform = "yahoo"
)

// TeamSeasonStats holds one team's season-to-date statistics, normalized
// from whichever platform the league lives on.
type TeamSeasonStats struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`

	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`

	// PointsFor and PointsAgainst hold per-week scores in chronological
	// order. They always have equal length for a given team; length may
	// differ across teams when bye handling differs.
	PointsFor     []float64 `json:"points_for"`
	PointsAgainst []float64 `json:"points_against"`
}

// GamesPlayed returns the number of games the team has completed.
func (t TeamSeasonStats) GamesPlayed() int {
	return t.Wins + t.Losses + t.Ties
}

// Record renders the team's record as "W-L" or "W-L-T" when ties exist.
func (t TeamSeasonStats) Record() string {
	if t.Ties > 0 {
		return fmt.Sprintf("%d-%d-%d", t.Wins, t.Losses, t.Ties)
	}
	return fmt.Sprintf("%d-%d", t.Wins, t.Losses)
}

// MatchupResult is one head-to-head result inside a week.
type MatchupResult struct {
	MatchupID  string  `json:"matchup_id"`
	Week       int     `json:"week"`
	WinnerName string  `json:"winner_name"`
	WinnerPts  float64 `json:"winner_pts"`
	LoserName  string  `json:"loser_name"`
	LoserPts   float64 `json:"loser_pts"`
	Tie        bool    `json:"tie"`
}

// Margin returns the winner's margin of victory.
func (m MatchupResult) Margin() float64 {
	return m.WinnerPts - m.LoserPts
}

// Snapshot is one point-in-time view of a league: every team's season stats
// plus the most recent week's matchups. It is rebuilt on every fetch and
// never mutated.
type Snapshot struct {
	Platform  Platform          `json:"platform"`
	LeagueID  string            `json:"league_id"`
	Name      string            `json:"name"`
	Week      int               `json:"week"`
	Teams     []TeamSeasonStats `json:"teams"`
	Matchups  []MatchupResult   `json:"matchups"`
	FetchedAt time.Time         `json:"fetched_at"`
}
