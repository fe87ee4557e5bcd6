package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/techangelx/gradewiz/internal/tui/about"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show information about GradeWiz",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), about.Render(80))
		return nil
	},
}
