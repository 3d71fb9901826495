package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wellquest/internal/ui"
)

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rows, err := svc.Leaderboard(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Leaderboard"))
			for _, row := range rows {
				line := fmt.Sprintf("%d. %s — %d xp", row.Rank, row.Name, row.XP)
				if row.You {
					line = ui.SelectedRow.Render(line + "  ← you")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	return cmd
}
