package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kfstorm/sound-break/internal/ui"
)

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the monitor with a live status view",
		Long:  "Start monitoring and show a live terminal view of meeting and music state, with keys for toggling the monitor and manual playback control.",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := deps.App.Engine
			engine.Start()
			defer engine.Stop()

			p := tea.NewProgram(ui.NewWatchModel(engine), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	return cmd
}
