package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var attendanceActions = []string{"CONFIRMED", "WAITING", "OUT", "LATE_CONFIRMED"}

func newAttendanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "attendance",
		Aliases: []string{"att"},
		Short:   "Attendance and roster commands",
	}

	cmd.AddCommand(newAttendanceRosterCmd())
	cmd.AddCommand(newAttendanceSetCmd())
	cmd.AddCommand(newAttendanceMeCmd())

	return cmd
}

func newAttendanceRosterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roster [game-id]",
		Short: "Show who is playing (defaults to the open game)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := resolveGameID(args)
			if err != nil {
				return err
			}

			var result Roster
			if err := client.Get(fmt.Sprintf("/api/v1/game/%s/attendance", gameID), &result); err != nil {
				return err
			}

			NewOutputTo(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}
}

func newAttendanceSetCmd() *cobra.Command {
	var gameID string

	cmd := &cobra.Command{
		Use:       "set <action>",
		Short:     "Register attendance: CONFIRMED, WAITING, OUT or LATE_CONFIRMED",
		Args:      cobra.ExactArgs(1),
		ValidArgs: attendanceActions,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID(optionalArg(gameID))
			if err != nil {
				return err
			}

			req := map[string]string{"action": strings.ToUpper(args[0])}
			var result AttendanceResult

			if err := client.Post(fmt.Sprintf("/api/v1/game/%s/attendance", id), req, &result); err != nil {
				return err
			}

			NewOutputTo(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game id (defaults to the open game)")

	return cmd
}

func newAttendanceMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me [game-id]",
		Short: "Show your attendance for a game",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := resolveGameID(args)
			if err != nil {
				return err
			}

			var result Attendance
			if err := client.Get(fmt.Sprintf("/api/v1/game/%s/attendance/me", gameID), &result); err != nil {
				return err
			}

			NewOutputTo(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}
}

func optionalArg(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
