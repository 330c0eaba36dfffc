package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kfstorm/sound-break/config"
	"github.com/kfstorm/sound-break/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			ok := true

			if err := deps.App.Probe.CheckPgrep(); err != nil {
				f.SetupCheck("pgrep", false, err.Error())
				ok = false
			} else {
				f.SetupCheck("pgrep", true, "installed")
			}

			if err := deps.App.Media.CheckOsascript(); err != nil {
				f.SetupCheck("osascript", false, err.Error()+" (macOS only)")
				ok = false
			} else {
				f.SetupCheck("osascript", true, "installed")
			}

			if path, err := config.FilePath(); err == nil {
				f.SetupCheck("Config file", true, path)
			} else {
				f.SetupCheck("Config file", false, err.Error())
				ok = false
			}

			if len(deps.Config.ProcessNames) == 0 {
				f.SetupCheck("Watched processes", false, "none configured — add with 'soundbreak apps add'")
			} else {
				f.SetupCheck("Watched processes", true, strings.Join(deps.Config.ProcessNames, ", "))
			}

			if ok {
				f.Success("\nAll prerequisites met. Ready to monitor!")
			} else {
				f.Warning("\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}
