package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// matchBody builds the request body for add/edit. Count flags are sent
// as given; the server's parse-or-zero policy handles bad input.
func matchBody(date, points, rebounds, assists string) map[string]string {
	return map[string]string{
		"date":     date,
		"points":   points,
		"rebounds": rebounds,
		"assists":  assists,
	}
}

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match recording commands",
	}

	cmd.AddCommand(newMatchAddCmd())
	cmd.AddCommand(newMatchEditCmd())
	cmd.AddCommand(newMatchRemoveCmd())

	return cmd
}

func newMatchAddCmd() *cobra.Command {
	var date, points, rebounds, assists string

	cmd := &cobra.Command{
		Use:   "add <player>",
		Short: "Record a match for a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			path := PlayerPath(args[0], "matches")
			if err := client.Post(path, matchBody(date, points, rebounds, assists), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Match date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&points, "points", "", "Points scored")
	cmd.Flags().StringVar(&rebounds, "rebounds", "", "Rebounds")
	cmd.Flags().StringVar(&assists, "assists", "", "Assists")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newMatchEditCmd() *cobra.Command {
	var date, points, rebounds, assists string

	cmd := &cobra.Command{
		Use:   "edit <player> <match-id>",
		Short: "Edit a recorded match",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			path := PlayerPath(args[0], "matches", args[1])
			if err := client.Put(path, matchBody(date, points, rebounds, assists), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Match date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&points, "points", "", "Points scored")
	cmd.Flags().StringVar(&rebounds, "rebounds", "", "Rebounds")
	cmd.Flags().StringVar(&assists, "assists", "", "Assists")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newMatchRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <player> <match-id>",
		Short: "Remove a recorded match",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(PlayerPath(args[0], "matches", args[1])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Removed match %s for %q", args[1], args[0]))
			return nil
		},
	}
}
