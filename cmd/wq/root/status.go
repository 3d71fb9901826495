package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wellquest/internal/engine"
	"wellquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, badges and avatars",
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
			level := engine.LevelFromXP(st.XP)
			toNext := engine.XPToNextLevel(st.XP)
			out := cmd.OutOrStdout()

			avatarEmoji := ""
			if a := svc.Catalog().Avatar(st.SelectedAvatar); a != nil {
				avatarEmoji = a.Emoji + " "
			}

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Progress"))
			fmt.Fprintln(out, ui.LabelValue("Player", avatarEmoji+st.DisplayName))
			fmt.Fprintln(out, ui.LabelValue("Level", level))
			fmt.Fprintln(out, ui.LabelValue("Total XP", fmt.Sprintf("%d (%d to next) %s", st.XP, toNext,
				ui.ProgressBar(engine.LevelProgress(st.XP), engine.XPPerLevel, 24))))
			fmt.Fprintln(out, ui.LabelValue("Weekly goal", fmt.Sprintf("%d%% of %d %s", st.WeeklyProgress, engine.WeeklyTarget,
				ui.ProgressBar(st.WeeklyProgress, engine.WeeklyTarget, 24))))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconBadge+" Badges"))
			for _, b := range engine.BadgeCatalog(st) {
				if b.Earned {
					fmt.Fprintf(out, "- %s %s %s\n", b.Icon, ui.Gold.Render(b.Name), ui.Muted.Render(b.Description))
				} else {
					fmt.Fprintf(out, "- %s\n", ui.Muted.Render("🔒 "+b.Name+" — "+b.Description))
				}
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("🧑 Avatars"))
			for _, a := range svc.Catalog().Avatars {
				switch {
				case a.ID == st.SelectedAvatar:
					fmt.Fprintf(out, "- %s %s %s\n", a.Emoji, ui.Key.Render(a.Name), ui.Good.Render("(selected)"))
				case a.MinLevel <= level:
					fmt.Fprintf(out, "- %s %s\n", a.Emoji, a.Name)
				default:
					fmt.Fprintf(out, "- %s\n", ui.Muted.Render(fmt.Sprintf("🔒 %s (level %d)", a.Name, a.MinLevel)))
				}
			}
			return nil
		},
	}

	return cmd
}
