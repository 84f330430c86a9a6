package cli

import (
	"github.com/saucesteals/silk/internal/cli/cliutil"
	derrors "github.com/saucesteals/silk/internal/errors"
	"github.com/saucesteals/silk/internal/infra/logger"
	"github.com/saucesteals/silk/internal/infra/workspace"
	"github.com/saucesteals/silk/internal/ports"
	"github.com/spf13/cobra"
)

var (
	appsAll        bool
	appsActivate   int
	appsHide       int
	appsUnhide     int
	appsTerminate  int
	appsForceQuit  bool
	appsLaunchPath string
	appsLaunchOpen string
)

// AppsCmd lists and controls running applications.
var AppsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List and control running applications",
	Long: `Without flags, list running applications with a regular activation
policy (pid, name, bundle id, frontmost, hidden). Flags activate, hide,
terminate or launch applications instead.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		workspaceAPI := workspace.New(logger.Get())

		switch {
		case appsActivate > 0:
			return workspaceAPI.Activate(appsActivate)

		case appsHide > 0:
			return workspaceAPI.Hide(appsHide)

		case appsUnhide > 0:
			return workspaceAPI.Unhide(appsUnhide)

		case appsTerminate > 0:
			return workspaceAPI.Terminate(appsTerminate, appsForceQuit)

		case appsLaunchPath != "":
			return workspaceAPI.Launch(ports.LaunchOptions{
				BundlePath: appsLaunchPath,
				OpenTarget: appsLaunchOpen,
			})
		}

		apps := workspaceAPI.RunningApplications()
		if apps == nil {
			return derrors.New(derrors.CodeInternal, "could not enumerate running applications")
		}

		if !appsAll {
			regular := apps[:0]
			for _, app := range apps {
				if app.Regular {
					regular = append(regular, app)
				}
			}
			apps = regular
		}

		return cliutil.PrintJSON(apps)
	},
}

func init() {
	AppsCmd.Flags().BoolVar(&appsAll, "all", false, "Include background-only processes")
	AppsCmd.Flags().IntVar(&appsActivate, "activate", 0, "Bring the application with this pid frontmost")
	AppsCmd.Flags().IntVar(&appsHide, "hide", 0, "Hide the application with this pid")
	AppsCmd.Flags().IntVar(&appsUnhide, "unhide", 0, "Unhide the application with this pid")
	AppsCmd.Flags().IntVar(&appsTerminate, "terminate", 0, "Quit the application with this pid")
	AppsCmd.Flags().BoolVar(&appsForceQuit, "force", false, "Force-terminate instead of graceful quit")
	AppsCmd.Flags().StringVar(&appsLaunchPath, "launch", "", "Launch the application bundle at this path")
	AppsCmd.Flags().StringVar(&appsLaunchOpen, "open", "", "File or URL to open with the launched application")
	RootCmd.AddCommand(AppsCmd)
}
