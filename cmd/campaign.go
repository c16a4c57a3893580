package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"automark/internal/core/domain"
)

var executeCmd = &cobra.Command{
	Use:   "execute [campaign-id]",
	Short: "Launch a campaign on its channels",
	Args:  cobra.ExactArgs(1),
	RunE: withCampaign(func(cmd *cobra.Command, a *app, id uuid.UUID) (any, error) {
		results, err := a.usecase.ExecuteCampaign(cmd.Context(), id)
		if err != nil && !errors.Is(err, domain.ErrNoChannelSucceeded) {
			return nil, err
		}
		out := map[string]any{
			"success":   err == nil,
			"activated": domain.CountSucceeded(results),
			"result":    results,
		}
		return out, err
	}),
}

var pauseCmd = &cobra.Command{
	Use:   "pause [campaign-id]",
	Short: "Pause a campaign on its channels",
	Args:  cobra.ExactArgs(1),
	RunE: withCampaign(func(cmd *cobra.Command, a *app, id uuid.UUID) (any, error) {
		results, err := a.usecase.PauseCampaign(cmd.Context(), id)
		if err != nil {
			return nil, err
		}
		return map[string]any{"success": true, "result": results}, nil
	}),
}

var syncCmd = &cobra.Command{
	Use:   "sync [campaign-id]",
	Short: "Pull performance metrics for a campaign",
	Args:  cobra.ExactArgs(1),
	RunE: withCampaign(func(cmd *cobra.Command, a *app, id uuid.UUID) (any, error) {
		records, err := a.usecase.SyncPerformanceData(cmd.Context(), id)
		if err != nil {
			return nil, err
		}
		return map[string]any{"success": true, "records": records}, nil
	}),
}

// withCampaign wires the app, parses the campaign id argument and prints
// the operation output as JSON. Output is printed even when the operation
// also returns an error.
func withCampaign(op func(cmd *cobra.Command, a *app, id uuid.UUID) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid campaign id %q: %w", args[0], err)
		}
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		out, opErr := op(cmd, a, id)
		if out != nil {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err = enc.Encode(out); err != nil {
				return err
			}
		}
		return opErr
	}
}
