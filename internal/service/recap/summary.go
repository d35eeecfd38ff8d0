// Package recap builds weekly recap prompts from league data and streams
// persona-styled writeups from the LLM.
package recap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/JoshFink/commish/internal/domain/league"
)

// BuildSummary folds a league snapshot into the plain-text stat sheet the
// LLM riffs on. Deterministic so the same snapshot always yields the same
// prompt.
func BuildSummary(snap *league.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🏆 WEEK %d FANTASY RECAP\n", snap.Week)
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	if top, pts, ok := topPerformer(snap.Matchups); ok {
		b.WriteString("⭐ TOP PERFORMER\n")
		fmt.Fprintf(&b, "%s with %.2f points\n\n", top, pts)
	}

	standings := standingsOrder(snap.Teams)
	if len(standings) >= 3 {
		b.WriteString("📊 LEAGUE STANDINGS - TOP 3\n")
		medals := []string{"🥇", "🥈", "🥉"}
		for i := 0; i < 3; i++ {
			t := standings[i]
			fmt.Fprintf(&b, "%s %s - %.2f points (%dW-%dL)\n",
				medals[i], t.TeamName, totalPoints(t), t.Wins, t.Losses)
		}
		b.WriteString("\n")
	}

	if len(snap.Matchups) > 0 {
		fmt.Fprintf(&b, "🏈 ALL MATCHUPS - WEEK %d\n", snap.Week)
		for _, m := range snap.Matchups {
			if m.Tie {
				fmt.Fprintf(&b, "• %s (%.2f) tied %s (%.2f)\n",
					m.WinnerName, m.WinnerPts, m.LoserName, m.LoserPts)
				continue
			}
			fmt.Fprintf(&b, "• %s (%.2f) defeated %s (%.2f) by %.2f points\n",
				m.WinnerName, m.WinnerPts, m.LoserName, m.LoserPts, m.Margin())
		}
		b.WriteString("\n")

		b.WriteString("📈 WEEK STATS\n")
		if blowout, ok := extremeMatchup(snap.Matchups, true); ok {
			fmt.Fprintf(&b, "💥 Biggest Blowout: %s vs %s (Point Differential: %.2f)\n",
				blowout.WinnerName, blowout.LoserName, blowout.Margin())
		}
		if closest, ok := extremeMatchup(snap.Matchups, false); ok {
			fmt.Fprintf(&b, "⚡ Closest Match: %s vs %s (Point Differential: %.2f)\n",
				closest.WinnerName, closest.LoserName, closest.Margin())
		}
	}

	if name, streak := hottestStreak(snap.Teams); streak > 0 {
		fmt.Fprintf(&b, "🔥 Hottest Streak: %s with a %d game win streak\n", name, streak)
	}

	return strings.TrimRight(b.String(), "\n")
}

// topPerformer finds the single highest score across the week's matchups.
func topPerformer(matchups []league.MatchupResult) (string, float64, bool) {
	if len(matchups) == 0 {
		return "", 0, false
	}
	name, best := "", -1.0
	for _, m := range matchups {
		if m.WinnerPts > best {
			name, best = m.WinnerName, m.WinnerPts
		}
		if m.LoserPts > best {
			name, best = m.LoserName, m.LoserPts
		}
	}
	return name, best, true
}

// standingsOrder sorts by wins, then total points for, then name.
func standingsOrder(teams []league.TeamSeasonStats) []league.TeamSeasonStats {
	out := make([]league.TeamSeasonStats, len(teams))
	copy(out, teams)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		pi, pj := totalPoints(out[i]), totalPoints(out[j])
		if pi != pj {
			return pi > pj
		}
		return out[i].TeamName < out[j].TeamName
	})
	return out
}

func totalPoints(t league.TeamSeasonStats) float64 {
	var sum float64
	for _, p := range t.PointsFor {
		sum += p
	}
	return sum
}

// extremeMatchup picks the decided game with the largest (or smallest)
// margin. Ties are excluded: a 0-margin tie is not a "closest game".
func extremeMatchup(matchups []league.MatchupResult, largest bool) (league.MatchupResult, bool) {
	var pick league.MatchupResult
	found := false
	for _, m := range matchups {
		if m.Tie {
			continue
		}
		if !found || (largest && m.Margin() > pick.Margin()) || (!largest && m.Margin() < pick.Margin()) {
			pick, found = m, true
		}
	}
	return pick, found
}

// hottestStreak finds the team with the longest run of wins counting back
// from its most recent game.
func hottestStreak(teams []league.TeamSeasonStats) (string, int) {
	name, best := "", 0
	for _, t := range teams {
		streak := 0
		n := len(t.PointsFor)
		if len(t.PointsAgainst) < n {
			n = len(t.PointsAgainst)
		}
		for i := n - 1; i >= 0; i-- {
			if t.PointsFor[i] <= t.PointsAgainst[i] {
				break
			}
			streak++
		}
		if streak > best || (streak == best && streak > 0 && t.TeamName < name) {
			name, best = t.TeamName, streak
		}
	}
	return name, best
}
