package cli

import (
	"fmt"
	"os"

	"github.com/saucesteals/silk/internal/config"
	"github.com/saucesteals/silk/internal/infra/bridge"
	"github.com/saucesteals/silk/internal/infra/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	// Version is set via ldflags at build time.
	Version = "dev"
	// GitCommit is set via ldflags at build time.
	GitCommit = "unknown"
	// BuildDate is set via ldflags at build time.
	BuildDate = "unknown"
)

// RootCmd is the silk command tree root.
var RootCmd = &cobra.Command{
	Use:   "silk",
	Short: "Silk - accessibility-driven desktop automation for macOS",
	Long: `Silk drives the desktop by describing UI elements instead of screen
coordinates: it resolves element queries against the accessibility tree,
scrolls targets into view, and delivers trusted input events with humanized
pointer trajectories.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		level := cfg.Logging.Level
		if logLevel != "" {
			level = logLevel
		}

		if initErr := logger.Init(
			level,
			cfg.Logging.File,
			cfg.Logging.Structured,
			cfg.Logging.DisableFileLogging,
			cfg.Logging.MaxFileSizeMB,
			cfg.Logging.MaxBackups,
			cfg.Logging.MaxAgeDays,
		); initErr != nil {
			return initErr
		}

		config.SetGlobal(cfg)
		bridge.InitializeLogger(logger.Get())

		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Close()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.SetVersionTemplate(
		fmt.Sprintf(
			"Silk version %s\nGit commit: %s\nBuild date: %s\n",
			Version,
			GitCommit,
			BuildDate,
		),
	)

	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
}
