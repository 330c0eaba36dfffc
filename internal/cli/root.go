package cli

import (
	"github.com/spf13/cobra"

	"github.com/kfstorm/sound-break/config"
	"github.com/kfstorm/sound-break/internal/app"
	"github.com/kfstorm/sound-break/internal/version"
)

type Dependencies struct {
	App    *app.App
	Config *config.Config
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "soundbreak",
		Short: "Pause music when a meeting starts, resume when it ends",
		Long:  "A tool that watches for meeting processes (Lark, Zoom, Teams, ...) and automatically pauses the active music player when a meeting starts, resuming it when the meeting ends.",
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(NewStartCmd(deps))
	rootCmd.AddCommand(NewStatusCmd(deps))
	rootCmd.AddCommand(NewWatchCmd(deps))
	rootCmd.AddCommand(NewAppsCmd(deps))
	rootCmd.AddCommand(NewMusicCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}
