package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guest",
		Short: "Guest commands",
	}

	cmd.AddCommand(newGuestAddCmd())
	cmd.AddCommand(newGuestRemoveCmd())
	cmd.AddCommand(newGuestEditCmd())

	return cmd
}

type guestFlags struct {
	name      string
	rating    int
	primary   string
	secondary string
}

func (f *guestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Guest display name (required)")
	cmd.Flags().IntVar(&f.rating, "rating", 5, "Skill rating from 1 to 10")
	cmd.Flags().StringVar(&f.primary, "primary", "", "Primary position: GK, DEF, MID or ATT (required)")
	cmd.Flags().StringVar(&f.secondary, "secondary", "", "Secondary position")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("primary")
}

func (f *guestFlags) body() map[string]any {
	return map[string]any{
		"displayName":       f.name,
		"rating":            f.rating,
		"primaryPosition":   f.primary,
		"secondaryPosition": f.secondary,
	}
}

func newGuestAddCmd() *cobra.Command {
	var (
		flags  guestFlags
		gameID string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Bring a guest to a game you are attending",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID(optionalArg(gameID))
			if err != nil {
				return err
			}

			var result Roster
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/guests", id), flags.body(), &result); err != nil {
				return err
			}

			NewOutputTo(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&gameID, "game", "", "Game id (defaults to the open game)")

	return cmd
}

func newGuestRemoveCmd() *cobra.Command {
	var gameID string

	cmd := &cobra.Command{
		Use:   "remove <guest-id>",
		Short: "Remove a guest you invited (admins may remove any guest)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID(optionalArg(gameID))
			if err != nil {
				return err
			}

			var result Roster
			if err := client.Delete(fmt.Sprintf("/api/v1/games/%s/guests/%s", id, args[0]), &result); err != nil {
				return err
			}

			NewOutputTo(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game id (defaults to the open game)")

	return cmd
}

func newGuestEditCmd() *cobra.Command {
	var flags guestFlags

	cmd := &cobra.Command{
		Use:   "edit <guest-id>",
		Short: "Correct a guest's details (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Guest
			if err := client.Put(fmt.Sprintf("/api/v1/admin/guests/%s", args[0]), flags.body(), &result); err != nil {
				return err
			}

			NewOutputTo(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
