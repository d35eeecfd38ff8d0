package recap

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoshFink/commish/internal/domain/league"
	"github.com/JoshFink/commish/internal/llm"
)

func testSnapshot() *league.Snapshot {
	return &league.Snapshot{
		Platform: league.PlatformSleeper,
		LeagueID: "123",
		Name:     "Test League",
		Week:     2,
		Teams: []league.TeamSeasonStats{
			{TeamID: "1", TeamName: "Alpha Squad", Wins: 2, Losses: 0,
				PointsFor: []float64{120.5, 130.0}, PointsAgainst: []float64{90.0, 95.0}},
			{TeamID: "2", TeamName: "Bravo Bunch", Wins: 1, Losses: 1,
				PointsFor: []float64{110.0, 95.0}, PointsAgainst: []float64{100.0, 130.0}},
			{TeamID: "3", TeamName: "Charlie Crew", Wins: 0, Losses: 2,
				PointsFor: []float64{90.0, 100.0}, PointsAgainst: []float64{110.0, 102.0}},
		},
		Matchups: []league.MatchupResult{
			{MatchupID: "1", Week: 2, WinnerName: "Alpha Squad", WinnerPts: 130.0,
				LoserName: "Bravo Bunch", LoserPts: 95.0},
			{MatchupID: "2", Week: 2, WinnerName: "Delta Dogs", WinnerPts: 102.0,
				LoserName: "Charlie Crew", LoserPts: 100.0},
		},
	}
}

func TestBuildSummary(t *testing.T) {
	summary := BuildSummary(testSnapshot())

	assert.Contains(t, summary, "WEEK 2 FANTASY RECAP")
	assert.Contains(t, summary, "Alpha Squad with 130.00 points")
	assert.Contains(t, summary, "LEAGUE STANDINGS - TOP 3")
	assert.Contains(t, summary, "🥇 Alpha Squad")
	assert.Contains(t, summary, "Alpha Squad (130.00) defeated Bravo Bunch (95.00) by 35.00 points")
	assert.Contains(t, summary, "Biggest Blowout: Alpha Squad vs Bravo Bunch")
	assert.Contains(t, summary, "Closest Match: Delta Dogs vs Charlie Crew")
	assert.Contains(t, summary, "Hottest Streak: Alpha Squad with a 2 game win streak")
}

func TestBuildSummaryDeterministic(t *testing.T) {
	a := BuildSummary(testSnapshot())
	b := BuildSummary(testSnapshot())
	assert.Equal(t, a, b)
}

func TestBuildSummaryEmptyWeek(t *testing.T) {
	snap := testSnapshot()
	snap.Matchups = nil
	summary := BuildSummary(snap)
	assert.NotContains(t, summary, "ALL MATCHUPS")
	assert.Contains(t, summary, "LEAGUE STANDINGS")
}

func TestBuildPromptFormats(t *testing.T) {
	classic := BuildPrompt(FormatClassic, "a grumpy pirate", 7, "stats here")
	assert.Contains(t, classic, "a grumpy pirate")
	assert.Contains(t, classic, "800-1200 words")
	assert.Contains(t, classic, "level 7/10")
	assert.True(t, strings.HasSuffix(classic, "stats here"))

	detailed := BuildPrompt(FormatDetailed, "a grumpy pirate", 3, "stats here")
	assert.Contains(t, detailed, "1500-2500 words")
	assert.Contains(t, detailed, "trash talk level 3")
	assert.True(t, strings.HasSuffix(detailed, "stats here"))
}

type fakeSource struct {
	snap *league.Snapshot
	err  error
}

func (f *fakeSource) FetchSeason(_ context.Context, _ league.Platform, _ string, _ int) (*league.Snapshot, error) {
	return f.snap, f.err
}

type fakeCompleter struct {
	moderateErr error
	chunks      []string
	prompt      string
}

func (f *fakeCompleter) Moderate(_ context.Context, _ string) error { return f.moderateErr }

func (f *fakeCompleter) StreamCompletion(_ context.Context, model, prompt string, onDelta func(string) error) (llm.Cost, error) {
	f.prompt = prompt
	for _, c := range f.chunks {
		if err := onDelta(c); err != nil {
			return llm.Cost{}, err
		}
	}
	return llm.Cost{Model: model, PromptTokens: 100, CompletionTokens: 200, TotalTokens: 300}, nil
}

func validRequest() Request {
	return Request{
		Platform:       league.PlatformSleeper,
		LeagueID:       "123",
		Week:           2,
		Persona:        "a grumpy pirate",
		TrashTalkLevel: 5,
		Model:          "gpt-4o-mini",
		Format:         FormatClassic,
	}
}

func TestGenerateStreamsAndReportsCost(t *testing.T) {
	completer := &fakeCompleter{chunks: []string{"Ahoy ", "mateys!"}}
	svc := NewService(&fakeSource{snap: testSnapshot()}, completer)

	var got strings.Builder
	result, err := svc.Generate(context.Background(), validRequest(), func(s string) error {
		got.WriteString(s)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "Ahoy mateys!", got.String())
	assert.Equal(t, "Test League", result.LeagueName)
	assert.Equal(t, 2, result.Week)
	assert.Equal(t, 300, result.Cost.TotalTokens)
	assert.Contains(t, completer.prompt, "a grumpy pirate")
	assert.Contains(t, completer.prompt, "WEEK 2 FANTASY RECAP")
}

func TestGenerateRejectsFlaggedPersona(t *testing.T) {
	completer := &fakeCompleter{moderateErr: llm.ErrContentFlagged}
	svc := NewService(&fakeSource{snap: testSnapshot()}, completer)

	_, err := svc.Generate(context.Background(), validRequest(), func(string) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrContentFlagged)
}

func TestGeneratePropagatesFetchError(t *testing.T) {
	svc := NewService(&fakeSource{err: league.ErrLeagueNotFound}, &fakeCompleter{})
	_, err := svc.Generate(context.Background(), validRequest(), func(string) error { return nil })
	assert.ErrorIs(t, err, league.ErrLeagueNotFound)
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		wantOK bool
	}{
		{"valid", func(r *Request) {}, true},
		{"defaults applied", func(r *Request) { r.TrashTalkLevel = 0; r.Format = "" }, true},
		{"missing league", func(r *Request) { r.LeagueID = "" }, false},
		{"bad week", func(r *Request) { r.Week = 0 }, false},
		{"missing persona", func(r *Request) { r.Persona = "" }, false},
		{"level too high", func(r *Request) { r.TrashTalkLevel = 11 }, false},
		{"unknown format", func(r *Request) { r.Format = "Epic" }, false},
		{"unknown model", func(r *Request) { r.Model = "gpt-99" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidRequest)
			}
		})
	}
}
