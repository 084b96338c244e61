package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for atomscope.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "atomscope",
		Short: "Explore atoms, the periodic table and chemical bonding",
		Long: `atomscope is an educational chemistry tool.

It renders the periodic table, shows the electron shells, electron
configuration and periodic trends of every element, and asks Google Gemini
to explain how a substance forms (bond type, Lewis structure, electron and
structural formulas, hydrogen bonding).

The periodic table commands work offline. The analyze command needs a
Gemini API key in GEMINI_API_KEY, API_KEY or the configuration file.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewTableCmd())
	cmd.AddCommand(NewElementCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
