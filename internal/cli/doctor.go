package cli

import (
	"github.com/saucesteals/silk/internal/cli/cliutil"
	"github.com/saucesteals/silk/internal/config"
	derrors "github.com/saucesteals/silk/internal/errors"
	"github.com/saucesteals/silk/internal/infra/accessibility"
	"github.com/saucesteals/silk/internal/infra/bridge"
	"github.com/saucesteals/silk/internal/infra/logger"
	"github.com/saucesteals/silk/internal/infra/screen"
	"github.com/spf13/cobra"
)

var doctorPrompt bool

// doctorReport is the environment check result.
type doctorReport struct {
	AccessibilityTrusted bool   `json:"accessibility_trusted"`
	ScreenRecording      bool   `json:"screen_recording"`
	DisplayAttached      bool   `json:"display_attached"`
	PrimaryHeight        int    `json:"primary_height,omitempty"`
	ConfigValid          bool   `json:"config_valid"`
	ConfigError          string `json:"config_error,omitempty"`
	AccessibilityHint    string `json:"accessibility_hint,omitempty"`
	ScreenRecordingHint  string `json:"screen_recording_hint,omitempty"`
}

// DoctorCmd checks the permissions and environment silk depends on.
var DoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check permissions and environment",
	RunE: func(_ *cobra.Command, _ []string) error {
		log := logger.Get()

		report := doctorReport{}

		client := accessibility.NewClient(log)
		report.AccessibilityTrusted = client.Trusted(doctorPrompt)
		if !report.AccessibilityTrusted {
			report.AccessibilityHint = derrors.AccessibilitySettingsHint
		}

		screenAPI := screen.New(log)
		report.ScreenRecording = screenAPI.RecordingGranted()
		if !report.ScreenRecording {
			report.ScreenRecordingHint = derrors.ScreenRecordingSettingsHint
		}

		_, report.DisplayAttached = screenAPI.MainDisplayBounds()
		report.PrimaryHeight = bridge.PrimaryDisplayHeight()

		report.ConfigValid = true
		if _, err := config.Load(configPath); err != nil {
			report.ConfigValid = false
			report.ConfigError = err.Error()
		}

		return cliutil.PrintJSON(report)
	},
}

func init() {
	DoctorCmd.Flags().BoolVar(&doctorPrompt, "prompt", false, "Ask the OS to show the accessibility grant dialog")
	RootCmd.AddCommand(DoctorCmd)
}
