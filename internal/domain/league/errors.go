package league

import "errors"

var (
	// ErrLeagueNotFound the platform reported no league for the given ID
	ErrLeagueNotFound = errors.New("league not found")

	// ErrNoMatchups no matchup data exists for the requested week
	ErrNoMatchups = errors.New("no matchups for week")

	// ErrUnsupportedPlatform the platform has no fetch client
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)
