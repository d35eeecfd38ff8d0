package ranking

import (
	"fmt"
	"strings"

	"github.com/JoshFink/commish/internal/domain/ranking"
)

// TableRow is one flattened line of the table view, ready for a compact
// dashboard grid.
type TableRow struct {
	Rank       string `json:"rank"`
	Team       string `json:"team"`
	Record     string `json:"record"`
	PowerScore string `json:"power_score"`
	AvgPoints  string `json:"avg_points"`
	PointDiff  string `json:"point_diff"`
	WinPct     string `json:"win_pct"`
	HighScore  string `json:"high_score"`
	LowScore   string `json:"low_score"`
}

// TableRows flattens the comprehensive ranking into display rows.
func TableRows(r ranking.Rankings) []TableRow {
	rows := make([]TableRow, 0, len(r.Comprehensive))
	for _, t := range r.Comprehensive {
		rows = append(rows, TableRow{
			Rank:       fmt.Sprintf("#%d", t.Rank),
			Team:       t.TeamName,
			Record:     t.Record,
			PowerScore: fmt.Sprintf("%.3f", t.Score),
			AvgPoints:  fmt.Sprintf("%.1f", t.Metrics.AvgPointsFor),
			PointDiff:  fmt.Sprintf("%+.1f", t.Metrics.PointDifferential),
			WinPct:     fmt.Sprintf("%.1f%%", t.Metrics.WinPct*100),
			HighScore:  fmt.Sprintf("%.1f", t.Metrics.HighScore),
			LowScore:   fmt.Sprintf("%.1f", t.Metrics.LowScore),
		})
	}
	return rows
}

// ListView renders the full rankings as a text block for the detailed list
// display and the CLI.
func ListView(r ranking.Rankings, week int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🏆 POWER RANKINGS - AFTER WEEK %d\n", week)
	b.WriteString(strings.Repeat("=", 60))
	b.WriteString("\n\n")

	for _, t := range r.Comprehensive {
		form := t.Metrics.FormString
		if form == "" {
			form = "N/A"
		}
		fmt.Fprintf(&b, "#%d %s (%s)\n", t.Rank, t.TeamName, t.Record)
		fmt.Fprintf(&b, "   Power Score: %.3f\n", t.Score)
		fmt.Fprintf(&b, "   Avg Points: %.1f | Point Diff: %+.1f\n",
			t.Metrics.AvgPointsFor, t.Metrics.PointDifferential)
		fmt.Fprintf(&b, "   Win %%: %.1f%% | Recent: %s (%.1f%%)\n",
			t.Metrics.WinPct*100, form, t.Metrics.RecentForm*100)
		fmt.Fprintf(&b, "   High: %.1f | Low: %.1f\n\n",
			t.Metrics.HighScore, t.Metrics.LowScore)
	}

	b.WriteString("RANKING METHODOLOGY:\n")
	b.WriteString("Power Score Breakdown:\n")
	b.WriteString("• 30% Win Percentage (managerial skill)\n")
	b.WriteString("• 25% Scoring Average (offensive production)\n")
	b.WriteString("• 20% Point Differential (dominance)\n")
	b.WriteString("• 15% Recent Form (momentum)\n")
	b.WriteString("• 10% Consistency (reliability)\n\n")

	b.WriteString("ALTERNATIVE RANKINGS:\n\n")

	b.WriteString("Oberon Mt. Power Rating (60% Avg Score, 20% High/Low, 20% Win %):\n")
	for _, t := range topN(r.Oberon, 5) {
		fmt.Fprintf(&b, "  %d. %s: %.2f\n", t.Rank, t.TeamName, t.Score)
	}
	b.WriteString("\n")

	b.WriteString("Team Value Index (Points For/Against * Win %):\n")
	for _, t := range topN(r.ValueIndex, 5) {
		fmt.Fprintf(&b, "  %d. %s: %.3f\n", t.Rank, t.TeamName, t.Score)
	}

	return b.String()
}

func topN(ratings []ranking.TeamRating, n int) []ranking.TeamRating {
	if len(ratings) < n {
		return ratings
	}
	return ratings[:n]
}
