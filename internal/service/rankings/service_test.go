package rankings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoshFink/commish/internal/domain/league"
	"github.com/JoshFink/commish/internal/domain/ranking"
	rankingengine "github.com/JoshFink/commish/internal/ranking"
)

type fakeSource struct {
	snap  *league.Snapshot
	err   error
	calls int
}

func (f *fakeSource) FetchSeason(_ context.Context, _ league.Platform, _ string, _ int) (*league.Snapshot, error) {
	f.calls++
	return f.snap, f.err
}

func testSnapshot() *league.Snapshot {
	return &league.Snapshot{
		Platform: league.PlatformSleeper,
		LeagueID: "123",
		Name:     "Test League",
		Week:     3,
		Teams: []league.TeamSeasonStats{
			{TeamID: "1", TeamName: "Alpha", Wins: 3, Losses: 0,
				PointsFor: []float64{100, 110, 120}, PointsAgainst: []float64{90, 95, 85}},
			{TeamID: "2", TeamName: "Bravo", Wins: 1, Losses: 2,
				PointsFor: []float64{95, 88, 102}, PointsAgainst: []float64{100, 110, 98}},
			{TeamID: "3", TeamName: "Charlie", Wins: 2, Losses: 1,
				PointsFor: []float64{105, 99, 91}, PointsAgainst: []float64{95, 88, 120}},
		},
	}
}

func newTestService(t *testing.T, source SnapshotSource) *Service {
	t.Helper()
	engine, err := rankingengine.New(ranking.DefaultCriteria())
	require.NoError(t, err)
	return NewService(source, engine)
}

func TestGenerateAndLatest(t *testing.T) {
	source := &fakeSource{snap: testSnapshot()}
	svc := newTestService(t, source)

	snap, err := svc.Generate(context.Background(), league.PlatformSleeper, "123", 3)
	require.NoError(t, err)

	assert.Equal(t, "Test League", snap.LeagueName)
	assert.Equal(t, 3, snap.Week)
	assert.Len(t, snap.Rankings.Comprehensive, 3)
	assert.Equal(t, "Alpha", snap.Rankings.Comprehensive[0].TeamName)

	cached, ok := svc.Latest(league.PlatformSleeper, "123")
	require.True(t, ok)
	assert.Same(t, snap, cached)

	_, ok = svc.Latest(league.PlatformESPN, "123")
	assert.False(t, ok, "cache must be keyed by platform too")
}

func TestGeneratePropagatesFetchError(t *testing.T) {
	svc := newTestService(t, &fakeSource{err: league.ErrLeagueNotFound})
	_, err := svc.Generate(context.Background(), league.PlatformSleeper, "123", 3)
	assert.ErrorIs(t, err, league.ErrLeagueNotFound)
}

func TestGenerateRejectsEmptyLeague(t *testing.T) {
	svc := newTestService(t, &fakeSource{snap: &league.Snapshot{Name: "Empty", Week: 1}})
	_, err := svc.Generate(context.Background(), league.PlatformSleeper, "123", 1)
	assert.ErrorIs(t, err, ranking.ErrInvalidInput)
}

func TestLatestMissing(t *testing.T) {
	svc := newTestService(t, &fakeSource{})
	_, ok := svc.Latest(league.PlatformSleeper, "nope")
	assert.False(t, ok)
}
