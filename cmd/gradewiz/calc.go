package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/techangelx/gradewiz/internal/grade"
	"github.com/techangelx/gradewiz/internal/logger"
	"gopkg.in/yaml.v3"
)

var calcFlags struct {
	weights string
	marks   string
	format  string
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate a module mark without the wizard",
	Long: `Calculate a module mark from comma-separated weightings and marks.

The number of components is taken from --weights. Inputs are validated
exactly as in the wizard.

Example:
  gradewiz calc --weights 60,40 --marks 80,90`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVarP(&calcFlags.weights, "weights", "w", "", "Comma-separated percentage weightings (must sum to 100)")
	calcCmd.Flags().StringVarP(&calcFlags.marks, "marks", "m", "", "Comma-separated component marks")
	calcCmd.Flags().StringVarP(&calcFlags.format, "format", "o", "text", "Output format: text or yaml")
}

// calcOutput is the yaml form of a calculation.
type calcOutput struct {
	Total         string    `yaml:"total"`
	Contributions []string  `yaml:"contributions"`
	Weights       []float64 `yaml:"weights"`
	Marks         []float64 `yaml:"marks"`
}

func runCalc(cmd *cobra.Command, args []string) error {
	if calcFlags.format != "text" && calcFlags.format != "yaml" {
		return fmt.Errorf("invalid format %q: must be text or yaml", calcFlags.format)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	result, err := grade.Calculate(
		splitList(calcFlags.weights),
		splitList(calcFlags.marks),
		grade.WithMaxComponents(cfg.MaxComponents),
	)
	if err != nil {
		logger.Debug("calc rejected: %v", err)
		if grade.IsValidation(err) {
			return errors.New(grade.UserMessage(err))
		}
		return err
	}

	return writeResult(cmd.OutOrStdout(), result, cfg.RoundingPolicy(), calcFlags.format)
}

// splitList splits a comma-separated list. An empty string yields no items.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func writeResult(w io.Writer, result grade.Result, policy grade.Rounding, format string) error {
	formatted := result.Format(policy)

	if format == "yaml" {
		data, err := yaml.Marshal(calcOutput{
			Total:         formatted.Total,
			Contributions: formatted.Contributions,
			Weights:       result.Weights,
			Marks:         result.Marks,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	_, err := fmt.Fprintln(w, grade.Summary(formatted, result.Weights))
	return err
}
