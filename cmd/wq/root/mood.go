package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"wellquest/internal/engine"
	"wellquest/internal/ui"
)

func newMoodCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "mood [1-5]",
		Short: "Log today's mood, or show the recent trend",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one rating")
			}
			if len(args) == 1 {
				if _, err := strconv.Atoi(args[0]); err != nil {
					return errors.New("rating must be a number from 1 to 5")
				}
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
				rating, _ := strconv.Atoi(args[0])
				recorded, err := svc.LogMood(ctx, rating, note)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s Logged mood as %d %s\n", ui.Good.Render(ui.IconDone), recorded, ui.MoodFace(recorded))
			}

			st, err := svc.States().Load(ctx)
			if err != nil {
				return err
			}
			avg := engine.RecentAverage(st.MoodLog, engine.MoodWindow)
			band := engine.BandForAverage(avg)
			today := engine.MoodOn(st.MoodLog, svc.Today())
			fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%d %s", today, ui.MoodFace(today))))
			fmt.Fprintln(out, ui.LabelValue("Recent average", fmt.Sprintf("%.1f over last %d entries (%s band)", avg, engine.MoodWindow, band)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&note, "note", "m", "", "Optional note to store with the rating")

	return cmd
}
