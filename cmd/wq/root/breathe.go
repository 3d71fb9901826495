package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wellquest/internal/engine"
	"wellquest/internal/tui"
	"wellquest/internal/ui"
)

func newBreatheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breathe",
		Short: "Run the bubble-breath mini-game",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			elapsed, err := tui.RunBreathing(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s You breathed for %s.\n", ui.IconBubble, elapsed)

			// Stopping the game counts as completing the mini-game quest.
			res, err := svc.CompleteQuest(ctx, engine.MiniGameQuest)
			if err != nil {
				return err
			}
			printCompleteResult(cmd, res)
			return nil
		},
	}

	return cmd
}
