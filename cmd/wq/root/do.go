package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wellquest/internal/engine"
	"wellquest/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <quest_id>",
		Short: "Complete a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest_id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteByID(ctx, args[0])
			if err != nil {
				return err
			}
			printCompleteResult(cmd, res)
			return nil
		},
	}

	return cmd
}

func printCompleteResult(cmd *cobra.Command, res *engine.CompleteResult) {
	out := cmd.OutOrStdout()
	if res.AlreadyDone {
		fmt.Fprintf(out, "%s %q already completed today.\n", ui.Warn.Render(ui.IconWarn), res.Title)
		return
	}
	fmt.Fprintf(out, "%s +%d XP! Quest completed: %s\n", ui.Good.Render(ui.IconDone), res.XPGained, res.Title)
	if res.LevelUp {
		fmt.Fprintf(out, "%s %s Level %d → %d\n", ui.IconBolt, ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
	}
	for _, b := range res.NewBadges {
		fmt.Fprintf(out, "%s New badge: %s\n", ui.IconBadge, ui.Gold.Render(b))
	}
}
