package yahoo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JoshFink/commish/internal/domain/league"
)

// FetchSeason assembles season stats through the given week. Standings
// provide the team roster and names; records and per-game point sequences
// both replay from the weekly scoreboards so a historical week's snapshot
// stays internally consistent. Requires Authorize to have been called.
func (c *Client) FetchSeason(ctx context.Context, leagueKey string, throughWeek int) (*league.Snapshot, error) {
	standings, err := c.GetStandings(ctx, leagueKey)
	if err != nil {
		return nil, fmt.Errorf("fetch standings %s: %w", leagueKey, err)
	}
	if len(standings.Standings.Teams) == 0 {
		return nil, league.ErrLeagueNotFound
	}

	stats := make(map[string]*league.TeamSeasonStats, len(standings.Standings.Teams))
	for _, t := range standings.Standings.Teams {
		stats[t.TeamKey] = &league.TeamSeasonStats{
			TeamID:   t.TeamKey,
			TeamName: t.Name,
		}
	}

	var lastWeek []league.MatchupResult
	for week := 1; week <= throughWeek; week++ {
		board, err := c.GetScoreboard(ctx, leagueKey, week)
		if err != nil {
			log.Warn().Err(err).Int("week", week).Str("league", leagueKey).
				Msg("failed to fetch scoreboard, skipping week")
			continue
		}
		results := scoreWeek(board.Scoreboard, week, stats)
		if len(results) > 0 {
			lastWeek = results
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}

	teams := make([]league.TeamSeasonStats, 0, len(stats))
	for _, s := range stats {
		teams = append(teams, *s)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].TeamID < teams[j].TeamID })

	return &league.Snapshot{
		Platform:  league.PlatformYahoo,
		LeagueID:  leagueKey,
		Name:      standings.Name,
		Week:      throughWeek,
		Teams:     teams,
		Matchups:  lastWeek,
		FetchedAt: time.Now(),
	}, nil
}

// scoreWeek folds one week's completed matchups into the records and point
// sequences.
func scoreWeek(board scoreboard, week int, stats map[string]*league.TeamSeasonStats) []league.MatchupResult {
	var results []league.MatchupResult
	for i, m := range board.Matchups {
		if m.Status != "postevent" || len(m.Teams) != 2 {
			continue
		}
		a, b := m.Teams[0], m.Teams[1]
		sa, sb := stats[a.TeamKey], stats[b.TeamKey]
		if sa == nil || sb == nil {
			continue
		}

		sa.PointsFor = append(sa.PointsFor, a.Points.Total)
		sa.PointsAgainst = append(sa.PointsAgainst, b.Points.Total)
		sb.PointsFor = append(sb.PointsFor, b.Points.Total)
		sb.PointsAgainst = append(sb.PointsAgainst, a.Points.Total)

		result := league.MatchupResult{
			MatchupID: fmt.Sprintf("%d-%d", week, i+1),
			Week:      week,
		}
		switch {
		case a.Points.Total > b.Points.Total:
			sa.Wins++
			sb.Losses++
			result.WinnerName, result.WinnerPts = a.Name, a.Points.Total
			result.LoserName, result.LoserPts = b.Name, b.Points.Total
		case b.Points.Total > a.Points.Total:
			sb.Wins++
			sa.Losses++
			result.WinnerName, result.WinnerPts = b.Name, b.Points.Total
			result.LoserName, result.LoserPts = a.Name, a.Points.Total
		default:
			sa.Ties++
			sb.Ties++
			result.Tie = true
			result.WinnerName, result.WinnerPts = a.Name, a.Points.Total
			result.LoserName, result.LoserPts = b.Name, b.Points.Total
		}
		results = append(results, result)
	}
	return results
}
