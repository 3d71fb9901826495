package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wellquest/internal/ui"
)

const Version = "0.1.0"

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "wq",
	Short:         "WellQuest — local-first wellness quest tracker",
	Long:          "WellQuest turns small self-care activities into quests: earn XP, level up, unlock avatars, log your mood and collect badges. Everything stays on your machine.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "wellquest.toml", "path to config")

	rootCmd.AddCommand(
		newQuestsCmd(),
		newDoCmd(),
		newMoodCmd(),
		newStatusCmd(),
		newLeaderboardCmd(),
		newAvatarCmd(),
		newNameCmd(),
		newBoardCmd(),
		newBreatheCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
