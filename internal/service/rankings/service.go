// Package rankings computes power rankings from fetched league data and
// caches the latest snapshot per league.
package rankings

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JoshFink/commish/internal/domain/league"
	"github.com/JoshFink/commish/internal/domain/ranking"
	rankingengine "github.com/JoshFink/commish/internal/ranking"
)

// SnapshotSource provides season data for a league.
type SnapshotSource interface {
	FetchSeason(ctx context.Context, platform league.Platform, leagueID string, throughWeek int) (*league.Snapshot, error)
}

// Service generates and caches power rankings
type Service struct {
	source SnapshotSource
	engine *rankingengine.Engine

	mu     sync.RWMutex
	latest map[string]*ranking.Snapshot
}

// NewService creates a new rankings service.
func NewService(source SnapshotSource, engine *rankingengine.Engine) *Service {
	return &Service{
		source: source,
		engine: engine,
		latest: make(map[string]*ranking.Snapshot),
	}
}

func cacheKey(platform league.Platform, leagueID string) string {
	return string(platform) + ":" + leagueID
}

// Generate fetches season data through the given week, runs the ranking
// engine, and records the result as the league's latest snapshot.
func (s *Service) Generate(ctx context.Context, platform league.Platform, leagueID string, throughWeek int) (*ranking.Snapshot, error) {
	seasonData, err := s.source.FetchSeason(ctx, platform, leagueID, throughWeek)
	if err != nil {
		return nil, fmt.Errorf("fetch league data: %w", err)
	}

	rankings, err := s.engine.Compute(seasonData.Teams)
	if err != nil {
		return nil, fmt.Errorf("compute rankings: %w", err)
	}

	snap := &ranking.Snapshot{
		LeagueID:    leagueID,
		LeagueName:  seasonData.Name,
		Week:        seasonData.Week,
		GeneratedAt: time.Now(),
		Rankings:    *rankings,
	}

	s.mu.Lock()
	s.latest[cacheKey(platform, leagueID)] = snap
	s.mu.Unlock()

	log.Info().
		Str("platform", string(platform)).
		Str("league", leagueID).
		Int("week", seasonData.Week).
		Int("teams", len(seasonData.Teams)).
		Msg("rankings generated")

	return snap, nil
}

// Latest returns the most recently generated snapshot for a league, if
// one exists.
func (s *Service) Latest(platform league.Platform, leagueID string) (*ranking.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.latest[cacheKey(platform, leagueID)]
	return snap, ok
}
