package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wellquest/internal/engine"
	"wellquest/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quests",
		Short: "List today's quests and suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.States().Load(ctx)
			if err != nil {
				return err
			}
			done := map[string]bool{}
			for _, id := range st.CompletedOn(svc.Today()) {
				done[id] = true
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Daily Quests"))
			for _, q := range svc.Catalog().Quests {
				fmt.Fprintln(out, questLine(q, done[q.ID], false))
			}

			suggested, err := svc.Suggestions(ctx)
			if err != nil {
				return err
			}
			if len(suggested) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Suggested for your mood"))
				for _, q := range suggested {
					fmt.Fprintln(out, questLine(q, done[q.ID], true))
				}
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render("complete one with: wq do <id>"))
			return nil
		},
	}

	return cmd
}

func questLine(q engine.Quest, done bool, suggested bool) string {
	mark := "[ ]"
	if done {
		mark = ui.Good.Render("[x]")
	}
	line := fmt.Sprintf("%s %s %s %s", mark, ui.Key.Render(q.ID), q.Title, ui.Muted.Render(fmt.Sprintf("(+%d xp, #%s)", q.XP, q.Tag)))
	if suggested {
		line += " " + ui.Gold.Render("★")
	}
	return line
}
