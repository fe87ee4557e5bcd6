package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/techangelx/gradewiz/internal/config"
	"github.com/techangelx/gradewiz/internal/grade"
	"github.com/techangelx/gradewiz/internal/logger"
	"github.com/techangelx/gradewiz/internal/tui/theme"
)

const (
	logoText1 = "█▀▀ █▀█ ▄▀█ █▀▄ █▀▀ █ █ █ █ ▀█"
	logoText2 = "█▄█ █▀▄ █▀█ █▄▀ ██▄ ▀▄▀▄▀ █ █▄"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gradewiz",
	Short: "Calculate a weighted module mark from component weightings and marks",
	Args:  cobra.NoArgs,
	RunE:  runWizard,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

// loadConfig loads configuration with cmd's flags as the top layer and
// points the logger at the configured level and file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	found := config.Exists()
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, err
	}
	if !found {
		logger.Debug("No config file found, using defaults (run 'gradewiz setup' to create one)")
	}
	logger.Debug("Config loaded: max_components=%d rounding=%s", cfg.MaxComponents, cfg.Rounding)
	return cfg, nil
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

GradeWiz walks you through a module's components: how many there are, the
percentage weighting of each, and the mark earned in each. It then shows the
weighted module mark.

Run without a subcommand to start the interactive wizard, or use 'calc' to
compute a mark straight from the command line.`

	rootCmd.PersistentFlags().Int("max-components", grade.DefaultMaxComponents, "Maximum number of components")
	rootCmd.PersistentFlags().String("rounding", grade.RoundHalfUp.String(), "Display rounding: half-up or half-even")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(aboutCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(mcpCmd)
}
