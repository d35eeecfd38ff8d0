// Package cmd - commish CLI commands
package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/JoshFink/commish/internal/pkg/config"
	"github.com/JoshFink/commish/internal/pkg/logger"
)

const (
	serviceName    = "commish"
	serviceVersion = "1.0.0"
)

var (
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "commish",
	Short: "Fantasy football power rankings and AI recap dashboard",
	Long: `Commish - Fantasy football power rankings and AI recap dashboard

Commands:
    serve       Start the API server
    rankings    Print power rankings for a league
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rankingsCmd)
}

// initConfig loads .env configuration and sets up the logger.
func initConfig() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}

	if err := logger.Init(logger.Config{
		Level:          level,
		Format:         cfg.Logging.Format,
		FileEnabled:    cfg.Logging.FileEnabled,
		FilePath:       cfg.Logging.FilePath,
		RotationSize:   cfg.Logging.RotationSize,
		RetentionDays:  cfg.Logging.RetentionDays,
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
	}); err != nil {
		return err
	}

	log.Debug().Msg("configuration loaded")
	return nil
}
