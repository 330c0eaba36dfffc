package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kfstorm/sound-break/internal/output"
)

func NewStartCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the meeting monitor in the foreground",
		Long:  "Start the monitoring loop: watched processes are probed every poll interval, music is paused when a meeting starts and resumed when it ends. Runs until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			engine := deps.App.Engine
			engine.Start()
			formatter.MonitoringStarted(engine.WatchConfig(), deps.Config.PollInterval)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			<-sigCh

			engine.Stop()
			formatter.MonitoringStopped()
			return nil
		},
	}

	return cmd
}
