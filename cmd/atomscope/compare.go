package main

import (
	"github.com/spf13/cobra"

	"github.com/atomscope/atomscope/internal/periodic"
	"github.com/atomscope/atomscope/internal/report"
)

// NewCompareCmd creates the compare command.
// This command shows several elements side by side.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <element> <element> [element...]",
		Short: "Compare elements side by side",
		Long: `Compare shows two or more elements next to each other so their shells,
valence electrons, electronegativity and metallic character can be
contrasted. A typical use is comparing the two partners of a bond.

Examples:
  # The partners of table salt
  atomscope compare Na Cl

  # A whole group
  atomscope compare Li Na K Rb Cs

  # Markdown table
  atomscope compare C Si Ge --markdown`,
		Args: cobra.MinimumNArgs(2),
		RunE: runCompareCmd,
	}

	cmd.Flags().StringP("lang", "L", "",
		"Language of trend text (en, vi; default from config)")
	addReportFlags(cmd)
	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	// Resolve every argument before any output is written.
	numbers := make([]int, 0, len(args))
	for _, arg := range args {
		z, err := resolveElement(arg)
		if err != nil {
			return err
		}
		numbers = append(numbers, z)
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

	d := describerFor(cfg)
	atoms := make([]periodic.Atom, 0, len(numbers))
	for _, z := range numbers {
		atoms = append(atoms, d.Atom(z))
	}

	return withReport(cmd, cfg, func(w report.Writer) error {
		_, err := w.WriteComparison(atoms)
		return err
	})
}
