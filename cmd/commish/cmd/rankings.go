package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/JoshFink/commish/internal/domain/league"
	"github.com/JoshFink/commish/internal/domain/ranking"
	"github.com/JoshFink/commish/internal/infra/espn"
	"github.com/JoshFink/commish/internal/infra/sleeper"
	"github.com/JoshFink/commish/internal/infra/yahoo"
	"github.com/JoshFink/commish/internal/pkg/schedule"
	rankingengine "github.com/JoshFink/commish/internal/ranking"
	"github.com/JoshFink/commish/internal/service/leagues"
	"github.com/JoshFink/commish/internal/service/rankings"
)

var (
	rankingsPlatform string
	rankingsLeague   string
	rankingsWeek     int
)

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Print power rankings for a league",
	RunE:  runRankings,
}

func init() {
	rankingsCmd.Flags().StringVar(&rankingsPlatform, "platform", "sleeper", "platform (sleeper, espn, yahoo)")
	rankingsCmd.Flags().StringVar(&rankingsLeague, "league", "", "league ID")
	rankingsCmd.Flags().IntVar(&rankingsWeek, "week", 0, "week to rank through (default: most recent completed)")
	rankingsCmd.MarkFlagRequired("league")
}

func runRankings(cmd *cobra.Command, args []string) error {
	week := rankingsWeek
	if week == 0 {
		week = schedule.MostRecentCompletedWeek(time.Now())
	}
	if week < 1 {
		return fmt.Errorf("no completed weeks yet this season, pass --week explicitly")
	}

	source := leagues.NewSource(
		sleeper.NewClient(cfg.Sleeper.BaseURL),
		espn.NewClient(cfg.ESPN.BaseURL),
		espn.Credentials{SWID: cfg.ESPN.SWID, EspnS2: cfg.ESPN.EspnS2},
		yahoo.NewClient(cfg.Yahoo.BaseURL, cfg.Yahoo.ClientID, cfg.Yahoo.ClientSecret, cfg.Yahoo.RedirectURL),
		cfg.ESPN.Year,
	)

	engine, err := rankingengine.New(ranking.DefaultCriteria())
	if err != nil {
		return fmt.Errorf("build ranking engine: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	snap, err := rankings.NewService(source, engine).
		Generate(ctx, league.Platform(rankingsPlatform), rankingsLeague, week)
	if err != nil {
		return err
	}

	fmt.Println(rankingengine.ListView(snap.Rankings, snap.Week))
	return nil
}
