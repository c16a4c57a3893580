package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	httpadapter "automark/internal/adapter/http"
	"automark/internal/adapter/postgres"
	"automark/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return err
		}
		logger.Info("migrations applied successfully")
		return nil
	},
}

var seedUser string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert a demo campaign with two weeks of performance",
	RunE: func(cmd *cobra.Command, _ []string) error {
		userID := uuid.New()
		if seedUser != "" {
			var err error
			if userID, err = uuid.Parse(seedUser); err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}
		}
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
		if err != nil {
			return err
		}
		defer pool.Close()

		c, err := db.Seed(cmd.Context(), postgres.NewCampaignRepository(pool), userID, time.Now())
		if err != nil {
			return err
		}
		logger.Info("seeded demo campaign",
			slog.String("campaign_id", c.ID.String()),
			slog.String("user_id", userID.String()),
		)
		return nil
	},
}

var tokenTTL time.Duration

var tokenCmd = &cobra.Command{
	Use:   "token [user-id]",
	Short: "Print a bearer token for a user, for local development",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Auth.JWTSecret == "" {
			return errors.New("AUTH_JWT_SECRET is not set")
		}
		token, err := httpadapter.SignToken([]byte(cfg.Auth.JWTSecret), userID, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedUser, "user", "", "owner user id (random when empty)")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
}
