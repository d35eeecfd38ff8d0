package espn

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/JoshFink/commish/internal/domain/league"
)

// FetchSeason pulls the league once and folds its schedule into season
// stats through the given week. ESPN returns the full schedule in one
// response, so unlike Sleeper there is no per-week fetch loop.
func (c *Client) FetchSeason(ctx context.Context, leagueID string, year, throughWeek int, creds Credentials) (*league.Snapshot, error) {
	resp, err := c.GetLeague(ctx, leagueID, year, creds)
	if err != nil {
		return nil, fmt.Errorf("fetch league %s: %w", leagueID, err)
	}
	if len(resp.Teams) == 0 {
		return nil, league.ErrLeagueNotFound
	}

	stats := make(map[int]*league.TeamSeasonStats, len(resp.Teams))
	for _, t := range resp.Teams {
		name := t.Name
		if name == "" {
			name = "Team " + t.Abbreviation
		}
		stats[t.ID] = &league.TeamSeasonStats{
			TeamID:   strconv.Itoa(t.ID),
			TeamName: name,
		}
	}

	var lastWeek []league.MatchupResult
	for week := 1; week <= throughWeek; week++ {
		results := c.scoreWeek(resp.Schedule, week, stats)
		if len(results) > 0 {
			lastWeek = results
		}
	}

	teams := make([]league.TeamSeasonStats, 0, len(stats))
	for _, s := range stats {
		teams = append(teams, *s)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].TeamID < teams[j].TeamID })

	return &league.Snapshot{
		Platform:  league.PlatformESPN,
		LeagueID:  leagueID,
		Name:      resp.Settings.Name,
		Week:      throughWeek,
		Teams:     teams,
		Matchups:  lastWeek,
		FetchedAt: time.Now(),
	}, nil
}

// scoreWeek applies one matchup period's completed games to the running
// stats. Unplayed games score 0-0 on both sides and are skipped.
func (c *Client) scoreWeek(schedule []Match, week int, stats map[int]*league.TeamSeasonStats) []league.MatchupResult {
	var results []league.MatchupResult
	for _, m := range schedule {
		if m.MatchupPeriodID != week {
			continue
		}
		// A 0-0 line means the game has not kicked off. A genuine 0-0
		// tie is indistinguishable from that and gets dropped too; real
		// fantasy lineups never score exactly zero on both sides.
		if m.Home.TotalPoints == 0 && m.Away.TotalPoints == 0 {
			continue
		}
		home, away := stats[m.Home.TeamID], stats[m.Away.TeamID]
		if home == nil || away == nil {
			continue
		}

		home.PointsFor = append(home.PointsFor, m.Home.TotalPoints)
		home.PointsAgainst = append(home.PointsAgainst, m.Away.TotalPoints)
		away.PointsFor = append(away.PointsFor, m.Away.TotalPoints)
		away.PointsAgainst = append(away.PointsAgainst, m.Home.TotalPoints)

		result := league.MatchupResult{MatchupID: strconv.Itoa(m.ID), Week: week}
		switch {
		case m.Home.TotalPoints > m.Away.TotalPoints:
			home.Wins++
			away.Losses++
			result.WinnerName, result.WinnerPts = home.TeamName, m.Home.TotalPoints
			result.LoserName, result.LoserPts = away.TeamName, m.Away.TotalPoints
		case m.Away.TotalPoints > m.Home.TotalPoints:
			away.Wins++
			home.Losses++
			result.WinnerName, result.WinnerPts = away.TeamName, m.Away.TotalPoints
			result.LoserName, result.LoserPts = home.TeamName, m.Home.TotalPoints
		default:
			home.Ties++
			away.Ties++
			result.Tie = true
			result.WinnerName, result.WinnerPts = home.TeamName, m.Home.TotalPoints
			result.LoserName, result.LoserPts = away.TeamName, m.Away.TotalPoints
		}
		results = append(results, result)
	}
	return results
}
