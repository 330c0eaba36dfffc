package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kfstorm/sound-break/internal/domain/monitor"
	"github.com/kfstorm/sound-break/internal/output"
)

func NewStatusCmd(deps *Dependencies) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show current meeting and music state",
		Long:  "Probe the watched processes and the active music player once and print the result. Issues no pause/resume commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			meeting := deps.App.Detector.Detect(deps.Config.ProcessNames)

			music, err := deps.App.Media.Status()
			if err != nil {
				// Playback state is best-effort; an unreachable player
				// still leaves the meeting report useful.
				music = monitor.MusicStatus{}
			}

			if asJSON {
				status := monitor.Status{
					LastCheck:     time.Now(),
					MeetingStatus: meeting,
					MusicStatus:   music,
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(status)
			}

			formatter := output.NewFormatter(os.Stdout)
			formatter.MeetingLine(meeting.InMeeting)
			for _, app := range meeting.ActiveApps {
				formatter.AppLine(app.Name, app.IsRunning)
			}
			fmt.Fprintln(os.Stdout)
			formatter.MusicLine(music.IsPlaying, music.PlayerName, music.TrackInfo)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print status as JSON")

	return cmd
}
