package main

import (
	"github.com/spf13/cobra"

	"github.com/atomscope/atomscope/internal/report"
)

// NewElementCmd creates the element command.
func NewElementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "element <number|symbol|name>",
		Short: "Show the structure of one element",
		Long: `Element shows the detail view of one element: mass, category, electron
shells, valence electrons, electron configuration and periodic trends.

Atomic numbers without a table entry (91 and 93-118) are shown as
approximate placeholders.

Examples:
  # By symbol, number or name
  atomscope element Na
  atomscope element 11
  atomscope element sodium

  # Trend text in Vietnamese
  atomscope element O --lang vi

  # Markdown with a shell occupancy chart
  atomscope element Fe --markdown`,
		Args: cobra.ExactArgs(1),
		RunE: runElementCmd,
	}

	cmd.Flags().StringP("lang", "L", "",
		"Language of trend text (en, vi; default from config)")
	addReportFlags(cmd)
	return cmd
}

// runElementCmd executes the element command.
func runElementCmd(cmd *cobra.Command, args []string) error {
	z, err := resolveElement(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyLanguageFlag(cmd, cfg); err != nil {
		return err
	}
	if err := applyReportFlags(cmd, cfg); err != nil {
		return err
	}

	atom := describerFor(cfg).Atom(z)
	return withReport(cmd, cfg, func(w report.Writer) error {
		_, err := w.WriteAtom(atom)
		return err
	})
}
