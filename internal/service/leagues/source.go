// Package leagues dispatches season fetches to the right platform client.
package leagues

import (
	"context"

	"github.com/JoshFink/commish/internal/domain/league"
	"github.com/JoshFink/commish/internal/infra/espn"
	"github.com/JoshFink/commish/internal/infra/sleeper"
	"github.com/JoshFink/commish/internal/infra/yahoo"
	"github.com/JoshFink/commish/internal/observability"
)

// Source fans a fetch out to the platform-specific client. Clients left
// nil make their platform unsupported, so deployments can run with only
// the platforms they have credentials for.
type Source struct {
	sleeper   *sleeper.Client
	espn      *espn.Client
	espnCreds espn.Credentials
	yahoo     *yahoo.Client
	year      int
	metrics   *observability.Metrics
}

// NewSource creates a league source. year is the fantasy season year used
// for ESPN requests.
func NewSource(sleeperClient *sleeper.Client, espnClient *espn.Client, espnCreds espn.Credentials, yahooClient *yahoo.Client, year int) *Source {
	return &Source{
		sleeper:   sleeperClient,
		espn:      espnClient,
		espnCreds: espnCreds,
		yahoo:     yahooClient,
		year:      year,
	}
}

// WithMetrics enables per-platform fetch metrics.
func (s *Source) WithMetrics(m *observability.Metrics) *Source {
	s.metrics = m
	return s
}

// FetchSeason pulls season stats through the given week from whichever
// platform hosts the league.
func (s *Source) FetchSeason(ctx context.Context, platform league.Platform, leagueID string, throughWeek int) (*league.Snapshot, error) {
	snap, err := s.fetch(ctx, platform, leagueID, throughWeek)
	s.metrics.VendorRequest(string(platform), err == nil)
	return snap, err
}

func (s *Source) fetch(ctx context.Context, platform league.Platform, leagueID string, throughWeek int) (*league.Snapshot, error) {
	switch platform {
	case league.PlatformSleeper:
		if s.sleeper == nil {
			return nil, league.ErrUnsupportedPlatform
		}
		return s.sleeper.FetchSeason(ctx, leagueID, throughWeek)
	case league.PlatformESPN:
		if s.espn == nil {
			return nil, league.ErrUnsupportedPlatform
		}
		return s.espn.FetchSeason(ctx, leagueID, s.year, throughWeek, s.espnCreds)
	case league.PlatformYahoo:
		if s.yahoo == nil {
			return nil, league.ErrUnsupportedPlatform
		}
		return s.yahoo.FetchSeason(ctx, leagueID, throughWeek)
	default:
		return nil, league.ErrUnsupportedPlatform
	}
}
