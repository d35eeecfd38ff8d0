package recap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JoshFink/commish/internal/domain/league"
	"github.com/JoshFink/commish/internal/llm"
)

// ErrInvalidRequest wraps request validation failures.
var ErrInvalidRequest = errors.New("invalid recap request")

// SnapshotSource provides season data for a league.
type SnapshotSource interface {
	FetchSeason(ctx context.Context, platform league.Platform, leagueID string, throughWeek int) (*league.Snapshot, error)
}

// Completer streams LLM completions and screens personas.
type Completer interface {
	Moderate(ctx context.Context, text string) error
	StreamCompletion(ctx context.Context, model, prompt string, onDelta func(string) error) (llm.Cost, error)
}

// Service generates weekly recaps
type Service struct {
	source    SnapshotSource
	completer Completer
}

// NewService creates a new recap service.
func NewService(source SnapshotSource, completer Completer) *Service {
	return &Service{source: source, completer: completer}
}

// Request describes one recap generation.
type Request struct {
	Platform       league.Platform `json:"platform"`
	LeagueID       string          `json:"league_id"`
	Week           int             `json:"week"`
	Persona        string          `json:"persona"`
	TrashTalkLevel int             `json:"trash_talk_level"`
	Model          string          `json:"model"`
	Format         Format          `json:"format"`
}

// Validate checks the request and applies defaults.
func (r *Request) Validate() error {
	if r.LeagueID == "" {
		return fmt.Errorf("%w: league_id is required", ErrInvalidRequest)
	}
	if r.Week < 1 {
		return fmt.Errorf("%w: week must be at least 1", ErrInvalidRequest)
	}
	if r.Persona == "" {
		return fmt.Errorf("%w: persona is required", ErrInvalidRequest)
	}
	if r.TrashTalkLevel == 0 {
		r.TrashTalkLevel = 5
	}
	if r.TrashTalkLevel < 1 || r.TrashTalkLevel > 10 {
		return fmt.Errorf("%w: trash_talk_level must be between 1 and 10", ErrInvalidRequest)
	}
	if r.Format == "" {
		r.Format = FormatClassic
	}
	if !ValidFormat(r.Format) {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidRequest, r.Format)
	}
	if !llm.ValidModel(r.Model) {
		return fmt.Errorf("%w: unknown model %q", ErrInvalidRequest, r.Model)
	}
	return nil
}

// Result carries the generation metadata. The text itself goes through
// onDelta as it streams.
type Result struct {
	LeagueName string   `json:"league_name"`
	Week       int      `json:"week"`
	Cost       llm.Cost `json:"cost"`
	Elapsed    string   `json:"elapsed"`
}

// Generate fetches league data, moderates the persona, and streams the
// recap through onDelta.
func (s *Service) Generate(ctx context.Context, req Request, onDelta func(string) error) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.completer.Moderate(ctx, req.Persona); err != nil {
		return nil, fmt.Errorf("persona rejected: %w", err)
	}

	snap, err := s.source.FetchSeason(ctx, req.Platform, req.LeagueID, req.Week)
	if err != nil {
		return nil, fmt.Errorf("fetch league data: %w", err)
	}

	summary := BuildSummary(snap)
	prompt := BuildPrompt(req.Format, req.Persona, req.TrashTalkLevel, summary)

	start := time.Now()
	cost, err := s.completer.StreamCompletion(ctx, req.Model, prompt, onDelta)
	if err != nil {
		return nil, fmt.Errorf("generate recap: %w", err)
	}

	log.Info().
		Str("league", req.LeagueID).
		Int("week", req.Week).
		Str("model", req.Model).
		Int("total_tokens", cost.TotalTokens).
		Str("total_cost", cost.TotalCost.StringFixed(6)).
		Dur("elapsed", time.Since(start)).
		Msg("recap generated")

	return &Result{
		LeagueName: snap.Name,
		Week:       snap.Week,
		Cost:       cost,
		Elapsed:    time.Since(start).Round(time.Millisecond).String(),
	}, nil
}
