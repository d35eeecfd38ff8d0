package ranking

import (
	"strings"
	"testing"
)

func TestListViewRendersEveryTeam(t *testing.T) {
	eng := newTestEngine(t)
	r, err := eng.Compute(threeTeamLeague())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	out := ListView(*r, 3)

	for _, name := range []string{"Team A", "Team B", "Team C"} {
		if !strings.Contains(out, name) {
			t.Errorf("list view missing %s", name)
		}
	}
	if !strings.Contains(out, "AFTER WEEK 3") {
		t.Error("list view missing week header")
	}
	if !strings.Contains(out, "Oberon Mt. Power Rating") {
		t.Error("list view missing alternative rankings section")
	}
}

func TestTableRows(t *testing.T) {
	eng := newTestEngine(t)
	r, err := eng.Compute(threeTeamLeague())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	rows := TableRows(*r)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0].Rank != "#1" {
		t.Errorf("first row rank = %s, want #1", rows[0].Rank)
	}
	if rows[0].Team != "Team A" {
		t.Errorf("first row team = %s, want Team A", rows[0].Team)
	}
	// Undefeated team renders as 100.0%.
	if rows[0].WinPct != "100.0%" {
		t.Errorf("first row win pct = %s, want 100.0%%", rows[0].WinPct)
	}
}
