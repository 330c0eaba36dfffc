package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kfstorm/sound-break/internal/output"
)

func NewAppsCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apps",
		Short: "Manage the watched meeting processes",
	}

	cmd.AddCommand(newAppsListCmd(deps))
	cmd.AddCommand(newAppsAddCmd(deps))
	cmd.AddCommand(newAppsRemoveCmd(deps))

	return cmd
}

func newAppsListCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List watched process names",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			names := deps.Config.ProcessNames
			if len(names) == 0 {
				formatter.Info("No processes watched — meetings are never detected")
				return nil
			}

			formatter.WatchListHeader(len(names))
			for _, name := range names {
				formatter.WatchListItem(name)
			}
			return nil
		},
	}
}

func newAppsAddCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME...",
		Short: "Add process names to the watch list",
		Long:  "Add one or more exact process names to the watch list. Use `pgrep -l <partial>` while the meeting app is running to find the exact name.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			engine := deps.App.Engine
			engine.SetWatchConfig(append(deps.Config.ProcessNames, args...))
			deps.Config.ProcessNames = engine.WatchConfig()

			if err := deps.Config.Save(); err != nil {
				return err
			}

			formatter.Success("Watching " + strings.Join(deps.Config.ProcessNames, ", "))
			return nil
		},
	}
}

func newAppsRemoveCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME...",
		Short: "Remove process names from the watch list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			drop := make(map[string]bool, len(args))
			for _, name := range args {
				drop[strings.TrimSpace(name)] = true
			}

			var kept []string
			for _, name := range deps.Config.ProcessNames {
				if !drop[name] {
					kept = append(kept, name)
				}
			}
			deps.Config.ProcessNames = kept
			deps.App.Engine.SetWatchConfig(kept)

			if err := deps.Config.Save(); err != nil {
				return err
			}

			if len(kept) == 0 {
				formatter.Warning("Watch list is now empty — meetings will never be detected")
				return nil
			}
			formatter.Success("Watching " + strings.Join(kept, ", "))
			return nil
		},
	}
}
