package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wellquest/internal/engine"
	"wellquest/internal/ui"
)

func newAvatarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avatar [avatar_id]",
		Short: "Select an avatar, or list them",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one avatar_id")
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

			out := cmd.OutOrStdout()

			if len(args) == 1 {
				a, err := svc.SetAvatar(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s You are now %s %s\n", ui.Good.Render(ui.IconDone), a.Emoji, ui.Key.Render(a.Name))
				return nil
			}

			st, err := svc.States().Load(ctx)
			if err != nil {
				return err
			}
			level := engine.LevelFromXP(st.XP)
			fmt.Fprintln(out, ui.Heading("🧑", "Avatars"))
			for _, a := range svc.Catalog().Avatars {
				switch {
				case a.ID == st.SelectedAvatar:
					fmt.Fprintf(out, "- %s %s %s\n", a.Emoji, ui.Key.Render(a.ID), ui.Good.Render("(selected)"))
				case a.MinLevel <= level:
					fmt.Fprintf(out, "- %s %s\n", a.Emoji, a.ID)
				default:
					fmt.Fprintf(out, "- %s\n", ui.Muted.Render(fmt.Sprintf("🔒 %s (level %d)", a.ID, a.MinLevel)))
				}
			}
			return nil
		},
	}

	return cmd
}
