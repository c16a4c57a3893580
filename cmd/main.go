package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"automark/internal/config"
	"automark/internal/config/configs"
)

var rootCmd = &cobra.Command{
	Use:   "automark",
	Short: "Marketing campaign orchestrator",
	Long: `automark launches, pauses and monitors marketing campaigns across
Google Ads, Meta Ads, LinkedIn Ads and email.

Configuration is read from the environment (and a .env file when present).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, tokenCmd, executeCmd, pauseCmd, syncCmd)
}

// main is the entry point of the automark binary.
func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads configuration and builds the structured logger from it.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, err
	}
	return cfg, newLogger(cfg.Log), nil
}

func newLogger(cfg configs.Logger) *slog.Logger {
	var handler slog.Handler
	level := cfg.SlogLevel()
	switch cfg.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}
