package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kfstorm/sound-break/internal/domain/monitor"
	"github.com/kfstorm/sound-break/internal/output"
)

func NewMusicCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "music",
		Short: "Manually control music playback",
	}

	cmd.AddCommand(newMusicActionCmd(deps, monitor.ActionPause, "pause", "Pause the active music player"))
	cmd.AddCommand(newMusicActionCmd(deps, monitor.ActionPlay, "play", "Resume the active music player"))

	return cmd
}

func newMusicActionCmd(deps *Dependencies, action monitor.Action, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			msg, err := deps.App.Engine.ManualControl(action)
			if err != nil {
				return err
			}
			formatter.Success(msg)
			return nil
		},
	}
}
