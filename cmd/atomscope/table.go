package main

import (
	"github.com/spf13/cobra"

	"github.com/atomscope/atomscope/internal/config"
	"github.com/atomscope/atomscope/internal/periodic"
	"github.com/atomscope/atomscope/internal/report"
)

// NewTableCmd creates the table command.
func NewTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the periodic table",
		Long: `Table prints the 18-column periodic table with the lanthanide and
actinide rows shown separately.

Examples:
  # Print the table as text
  atomscope table

  # Export the occupied cells as JSON
  atomscope table --json -o table.json

  # Markdown table for notes
  atomscope table --markdown`,
		Args: cobra.NoArgs,
		RunE: runTableCmd,
	}

	addReportFlags(cmd)
	return cmd
}

// runTableCmd executes the table command.
func runTableCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyReportFlags(cmd, cfg); err != nil {
		return err
	}

	return runTableWith(cmd, cfg)
}

func runTableWith(cmd *cobra.Command, cfg *config.Config) error {
	return withReport(cmd, cfg, func(w report.Writer) error {
		_, err := w.WriteTable(periodic.Layout())
		return err
	})
}
