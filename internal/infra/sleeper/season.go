package sleeper

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JoshFink/commish/internal/domain/league"
)

// FetchSeason builds a league snapshot through the given week by replaying
// every week's matchups. Weeks that fail to fetch are skipped so a partial
// season still produces usable stats.
func (c *Client) FetchSeason(ctx context.Context, leagueID string, throughWeek int) (*league.Snapshot, error) {
	lg, err := c.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("fetch league: %w", err)
	}
	rosters, err := c.GetRosters(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("fetch rosters: %w", err)
	}
	if len(rosters) == 0 {
		return nil, league.ErrLeagueNotFound
	}
	users, err := c.GetUsers(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	names := teamNames(rosters, users)

	acc := make(map[int]*league.TeamSeasonStats, len(rosters))
	for _, r := range rosters {
		acc[r.RosterID] = &league.TeamSeasonStats{
			TeamID:   fmt.Sprintf("%d", r.RosterID),
			TeamName: names[r.RosterID],
		}
	}

	var lastWeek []league.MatchupResult
	for week := 1; week <= throughWeek; week++ {
		matchups, err := c.GetMatchups(ctx, leagueID, week)
		if err != nil {
			log.Warn().Err(err).Int("week", week).Msg("Skipping week, matchup fetch failed")
			continue
		}

		results := scoreWeek(week, matchups, names, acc)
		if len(results) > 0 {
			lastWeek = results
		}

		// Be polite to the public API between weekly calls.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}

	teams := make([]league.TeamSeasonStats, 0, len(acc))
	for _, t := range acc {
		teams = append(teams, *t)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].TeamID < teams[j].TeamID })

	return &league.Snapshot{
		Platform:  league.PlatformSleeper,
		LeagueID:  leagueID,
		Name:      lg.Name,
		Week:      throughWeek,
		Teams:     teams,
		Matchups:  lastWeek,
		FetchedAt: time.Now(),
	}, nil
}

// scoreWeek folds one week's matchups into the per-team accumulators and
// returns the head-to-head results for that week.
func scoreWeek(week int, matchups []Matchup, names map[int]string, acc map[int]*league.TeamSeasonStats) []league.MatchupResult {
	byID := make(map[int][]Matchup)
	for _, m := range matchups {
		if m.MatchupID == 0 {
			continue // bye or median week entry
		}
		byID[m.MatchupID] = append(byID[m.MatchupID], m)
	}

	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var results []league.MatchupResult
	for _, id := range ids {
		pair := byID[id]
		if len(pair) != 2 {
			continue
		}
		a, b := pair[0], pair[1]
		if a.Points < b.Points {
			a, b = b, a
		}

		winner, loser := acc[a.RosterID], acc[b.RosterID]
		if winner == nil || loser == nil {
			continue
		}

		winner.PointsFor = append(winner.PointsFor, a.Points)
		winner.PointsAgainst = append(winner.PointsAgainst, b.Points)
		loser.PointsFor = append(loser.PointsFor, b.Points)
		loser.PointsAgainst = append(loser.PointsAgainst, a.Points)

		tie := a.Points == b.Points
		if tie {
			winner.Ties++
			loser.Ties++
		} else {
			winner.Wins++
			loser.Losses++
		}

		results = append(results, league.MatchupResult{
			MatchupID:  strconv.Itoa(id),
			Week:       week,
			WinnerName: names[a.RosterID],
			WinnerPts:  a.Points,
			LoserName:  names[b.RosterID],
			LoserPts:   b.Points,
			Tie:        tie,
		})
	}
	return results
}

// teamNames maps roster IDs to display names: the owner's custom team name
// when set, then their display name, then a fallback.
func teamNames(rosters []Roster, users []User) map[int]string {
	byUser := make(map[string]User, len(users))
	for _, u := range users {
		byUser[u.UserID] = u
	}

	names := make(map[int]string, len(rosters))
	for _, r := range rosters {
		u, ok := byUser[r.OwnerID]
		switch {
		case ok && u.Metadata.TeamName != "":
			names[r.RosterID] = u.Metadata.TeamName
		case ok && u.DisplayName != "":
			names[r.RosterID] = fmt.Sprintf("Team %s", u.DisplayName)
		default:
			names[r.RosterID] = fmt.Sprintf("Team %d", r.RosterID)
		}
	}
	return names
}
