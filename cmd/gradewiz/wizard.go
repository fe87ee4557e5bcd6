package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/techangelx/gradewiz/internal/grade"
	"github.com/techangelx/gradewiz/internal/logger"
	"github.com/techangelx/gradewiz/internal/tui/wizard"
)

// runWizard runs the interactive wizard and prints the confirmed result.
func runWizard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	outcome, err := wizard.Run(cfg)
	if errors.Is(err, wizard.ErrCancelled) {
		logger.Debug("Wizard cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), grade.Summary(outcome.Formatted, outcome.Weights))
	return nil
}
