// Package ranking implements the statistical power-ranking engine. Given one
// league snapshot it produces three independently ordered ranked lists; the
// computation is a pure function of its input.
package ranking

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/JoshFink/commish/internal/domain/league"
	"github.com/JoshFink/commish/internal/domain/ranking"
)

// Engine computes power rankings for one league snapshot at a time. It holds
// no mutable state, so a single instance is safe for concurrent use.
type Engine struct {
	criteria ranking.Criteria
}

// New creates an engine with the given criteria. The comprehensive weights
// must sum to 1.0.
func New(criteria ranking.Criteria) (*Engine, error) {
	if !criteria.Weights.Valid() {
		return nil, fmt.Errorf("%w: weights sum to %.6f, want 1.0",
			ranking.ErrInvalidCriteria, criteria.Weights.Sum())
	}
	if criteria.RecentFormGames < 1 {
		return nil, fmt.Errorf("%w: recent form window must be at least 1",
			ranking.ErrInvalidCriteria)
	}
	return &Engine{criteria: criteria}, nil
}

// Compute produces all three ranked lists for the given team set. Every input
// team appears exactly once in each list with rank positions 1..N. Identical
// input always yields identical output.
func (e *Engine) Compute(teams []league.TeamSeasonStats) (*ranking.Rankings, error) {
	if err := validate(teams); err != nil {
		return nil, err
	}

	entries := make([]entry, len(teams))
	for i, t := range teams {
		entries[i] = entry{
			team:    t,
			metrics: deriveMetrics(t, e.criteria.RecentFormGames),
		}
	}

	normalize(entries)

	for i := range entries {
		entries[i].comprehensive = e.comprehensiveScore(entries[i].normalized)
		entries[i].oberon = e.oberonRating(entries[i].metrics)
		entries[i].valueIndex = teamValueIndex(entries[i].metrics)
	}

	return &ranking.Rankings{
		Comprehensive: rank(entries, func(en entry) float64 { return en.comprehensive }),
		Oberon:        rank(entries, func(en entry) float64 { return en.oberon }),
		ValueIndex:    rank(entries, func(en entry) float64 { return en.valueIndex }),
	}, nil
}

// entry carries one team through the computation.
type entry struct {
	team       league.TeamSeasonStats
	metrics    ranking.Metrics
	normalized ranking.Normalized

	comprehensive float64
	oberon        float64
	valueIndex    float64
}

func validate(teams []league.TeamSeasonStats) error {
	if len(teams) == 0 {
		return fmt.Errorf("%w: empty team set", ranking.ErrInvalidInput)
	}
	for _, t := range teams {
		if len(t.PointsFor) != len(t.PointsAgainst) {
			return fmt.Errorf("%w: team %s has %d points-for weeks but %d points-against",
				ranking.ErrInvalidInput, t.TeamID, len(t.PointsFor), len(t.PointsAgainst))
		}
		if t.Wins < 0 || t.Losses < 0 || t.Ties < 0 {
			return fmt.Errorf("%w: team %s has a negative record count",
				ranking.ErrInvalidInput, t.TeamID)
		}
	}
	return nil
}

// deriveMetrics computes the shared per-team quantities once; all three
// formulas read from the result. Teams with no games produce zeroed metrics
// rather than failing.
func deriveMetrics(t league.TeamSeasonStats, formGames int) ranking.Metrics {
	m := ranking.Metrics{GamesPlayed: t.GamesPlayed()}

	if m.GamesPlayed > 0 {
		m.WinPct = (float64(t.Wins) + 0.5*float64(t.Ties)) / float64(m.GamesPlayed)
	}

	m.AvgPointsFor = mean(t.PointsFor)
	m.AvgPointsAgainst = mean(t.PointsAgainst)
	m.PointDifferential = m.AvgPointsFor - m.AvgPointsAgainst

	if len(t.PointsFor) > 0 {
		m.HighScore = maxOf(t.PointsFor)
		m.LowScore = minOf(t.PointsFor)
	}

	// Consistency is the inverse coefficient of variation: steadier scoring
	// yields a value closer to 1.
	if m.AvgPointsFor > 0 {
		m.Consistency = 1 / (1 + stdev(t.PointsFor)/m.AvgPointsFor)
	}

	m.RecentForm, m.FormString = recentForm(t, m, formGames)

	return m
}

// recentForm computes win percentage over the most recent formGames games,
// inferring weekly results from the score sequences. With no games played it
// falls back to the overall win percentage.
func recentForm(t league.TeamSeasonStats, m ranking.Metrics, formGames int) (float64, string) {
	window := formGames
	if m.GamesPlayed < window {
		window = m.GamesPlayed
	}
	if len(t.PointsFor) < window {
		window = len(t.PointsFor)
	}
	if window < 1 {
		return m.WinPct, ""
	}

	var wins float64
	var form strings.Builder
	for i := len(t.PointsFor) - window; i < len(t.PointsFor); i++ {
		switch {
		case t.PointsFor[i] > t.PointsAgainst[i]:
			wins++
			form.WriteByte('W')
		case t.PointsFor[i] < t.PointsAgainst[i]:
			form.WriteByte('L')
		default:
			wins += 0.5
			form.WriteByte('T')
		}
	}
	return wins / float64(window), form.String()
}

// normalize rescales each comprehensive component against the league-wide
// maximum so no single metric dominates on absolute magnitude. A league
// maximum of zero (or below) zeroes that component for every team.
func normalize(entries []entry) {
	var maxWinPct, maxAvgFor, maxDiff, maxForm, maxConsistency float64
	for _, en := range entries {
		maxWinPct = math.Max(maxWinPct, en.metrics.WinPct)
		maxAvgFor = math.Max(maxAvgFor, en.metrics.AvgPointsFor)
		maxDiff = math.Max(maxDiff, en.metrics.PointDifferential)
		maxForm = math.Max(maxForm, en.metrics.RecentForm)
		maxConsistency = math.Max(maxConsistency, en.metrics.Consistency)
	}

	div := func(v, max float64) float64 {
		if max <= 0 {
			return 0
		}
		return v / max
	}

	for i := range entries {
		m := entries[i].metrics
		entries[i].normalized = ranking.Normalized{
			WinPct:            div(m.WinPct, maxWinPct),
			AvgPointsFor:      div(m.AvgPointsFor, maxAvgFor),
			PointDifferential: div(m.PointDifferential, maxDiff),
			RecentForm:        div(m.RecentForm, maxForm),
			Consistency:       div(m.Consistency, maxConsistency),
		}
	}
}

// comprehensiveScore blends the normalized components under the configured
// weights.
func (e *Engine) comprehensiveScore(n ranking.Normalized) float64 {
	w := e.criteria.Weights
	return w.WinPct*n.WinPct +
		w.AvgPointsFor*n.AvgPointsFor +
		w.PointDifferential*n.PointDifferential +
		w.RecentForm*n.RecentForm +
		w.Consistency*n.Consistency
}

// oberonRating is reported as a raw magnitude on its own scale; it is not
// normalized against league maxima.
func (e *Engine) oberonRating(m ranking.Metrics) float64 {
	w := e.criteria.Oberon
	return w.AvgScore*m.AvgPointsFor +
		w.HighLow*((m.HighScore+m.LowScore)/2) +
		w.WinPct*(m.WinPct*100)
}

// teamValueIndex is (avg points for / avg points against) * win pct. When a
// team has allowed zero points the ratio degenerates; treat it as 1 so the
// index stays finite and monotone in points scored.
func teamValueIndex(m ranking.Metrics) float64 {
	if m.AvgPointsAgainst == 0 {
		return m.AvgPointsFor * m.WinPct
	}
	return (m.AvgPointsFor / m.AvgPointsAgainst) * m.WinPct
}

// rank orders entries descending by the given score, breaking ties by win
// percentage, then average points for, then team name ascending.
func rank(entries []entry, score func(entry) float64) []ranking.TeamRating {
	ordered := make([]entry, len(entries))
	copy(ordered, entries)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if score(a) != score(b) {
			return score(a) > score(b)
		}
		if a.metrics.WinPct != b.metrics.WinPct {
			return a.metrics.WinPct > b.metrics.WinPct
		}
		if a.metrics.AvgPointsFor != b.metrics.AvgPointsFor {
			return a.metrics.AvgPointsFor > b.metrics.AvgPointsFor
		}
		return a.team.TeamName < b.team.TeamName
	})

	out := make([]ranking.TeamRating, len(ordered))
	for i, en := range ordered {
		out[i] = ranking.TeamRating{
			Rank:       i + 1,
			TeamID:     en.team.TeamID,
			TeamName:   en.team.TeamName,
			Record:     en.team.Record(),
			Score:      score(en),
			Metrics:    en.metrics,
			Normalized: en.normalized,
		}
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdev is the sample standard deviation; zero for fewer than two samples.
func stdev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}

func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func minOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}
