package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	var player string
	var all, yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset a player's stats or the entire roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (player != "") {
				return fmt.Errorf("specify exactly one of --player or --all")
			}
			if !yes {
				return fmt.Errorf("reset is irreversible; re-run with --yes to confirm")
			}

			out := NewOutput(cfg.Output)

			if all {
				if err := client.Delete("/api/v1/roster"); err != nil {
					return err
				}
				out.PrintMessage("Roster cleared and persisted snapshot purged")
				return nil
			}

			if err := client.Delete(PlayerPath(player, "matches")); err != nil {
				return err
			}
			out.PrintMessage(fmt.Sprintf("Cleared match history for %q", player))
			return nil
		},
	}

	cmd.Flags().StringVar(&player, "player", "", "Reset only this player's match history")
	cmd.Flags().BoolVar(&all, "all", false, "Reset the entire roster")
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")

	return cmd
}

func newDefaultsCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Load the built-in default roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"mode": mode}
			var result Roster

			if err := client.Post("/api/v1/roster/defaults", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "merge", "Load mode: replace discards the current roster, merge adds only missing names")

	return cmd
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult

			if err := client.Get("/api/v1/health", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
