package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameOpenCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameCloseCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	var at, location, markdown string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new game (admin), archiving the current one",
		RunE: func(cmd *cobra.Command, args []string) error {
			scheduledAt, err := time.Parse(time.RFC3339, at)
			if err != nil {
				return fmt.Errorf("--at must be an RFC 3339 timestamp: %w", err)
			}

			req := map[string]string{
				"scheduledAt": scheduledAt.Format(time.RFC3339),
				"location":    location,
				"markdown":    markdown,
			}
			var result Game

			if err := client.Post("/api/v1/admin/game", req, &result); err != nil {
				return err
			}

			NewOutputTo(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Kick-off time, e.g. 2024-01-06T10:00:00Z (required)")
	cmd.Flags().StringVar(&location, "location", "", "Where the game is played (required)")
	cmd.Flags().StringVar(&markdown, "markdown", "", "Free-form notes shown with the game")
	_ = cmd.MarkFlagRequired("at")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}

func newGameOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Show the game currently open for attendance",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get("/api/v1/game/open", &result); err != nil {
				return err
			}

			NewOutputTo(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game-id>",
		Short: "Show a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get(fmt.Sprintf("/api/v1/game/%s", args[0]), &result); err != nil {
				return err
			}

			NewOutputTo(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}
}

func newGameCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close [game-id]",
		Short: "Close a game once teams are published (admin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := resolveGameID(args)
			if err != nil {
				return err
			}

			var result Game
			if err := client.Post(fmt.Sprintf("/api/v1/admin/game/%s/close", gameID), nil, &result); err != nil {
				return err
			}

			NewOutputTo(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}
}

// resolveGameID returns the game id argument, or the open game's id when none is given
func resolveGameID(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	var open Game
	if err := client.Get("/api/v1/game/open", &open); err != nil {
		return "", fmt.Errorf("no game id given and no open game: %w", err)
	}
	return open.ID, nil
}
