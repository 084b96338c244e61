package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atomscope/atomscope/internal/database"
	"github.com/atomscope/atomscope/internal/pipeline"
	"github.com/atomscope/atomscope/internal/report"
)

// NewHistoryCmd creates the history command.
// This command browses analyses stored in the database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [substance]",
		Short: "Browse stored analyses",
		Long: `History lists the analyses stored by 'atomscope analyze'.

Without arguments every stored analysis is listed, newest first. With a
substance only the analyses of that substance are listed.

Examples:
  # Everything, newest first
  atomscope history

  # Only water
  atomscope history H2O

  # List the distinct substances in the database
  atomscope history --queries

  # Show a stored analysis in full
  atomscope history --id 5 --markdown

  # Remove a stored analysis
  atomscope history --delete 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().BoolP("queries", "q", false,
		"List the distinct substances in the database")
	cmd.Flags().Int64P("id", "i", 0,
		"Show the stored analysis with this ID")
	cmd.Flags().Int64P("delete", "d", 0,
		"Delete the stored analysis with this ID")
	cmd.Flags().IntP("limit", "n", 0,
		"Maximum number of entries to list (0 = no limit)")

	addConfigFlag(cmd)
	addReportFlags(cmd)

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	listQueries, err := flags.GetBool("queries")
	if err != nil {
		return err
	}
	id, err := flags.GetInt64("id")
	if err != nil {
		return err
	}
	deleteID, err := flags.GetInt64("delete")
	if err != nil {
		return err
	}
	limit, err := flags.GetInt("limit")
	if err != nil {
		return err
	}

	// Validate arguments before opening the database
	if id < 0 || deleteID < 0 {
		return errors.New("analysis ID must be positive")
	}
	if id > 0 && deleteID > 0 {
		return errors.New("--id and --delete cannot be used together")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyReportFlags(cmd, cfg); err != nil {
		return err
	}

	opts := database.DefaultOptions()
	opts.CreateIfNotExists = false
	db, err := database.Open(cfg.DBDir, opts)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No stored analyses yet.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nUse 'atomscope analyze <substance>' to create one.")
		return nil
	}
	defer db.Close()

	ctx := cmd.Context()

	switch {
	case deleteID > 0:
		return deleteAnalysis(ctx, cmd, db, deleteID)
	case id > 0:
		a, err := db.GetAnalysisByID(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return fmt.Errorf("no stored analysis with ID %d", id)
		}
		return withReport(cmd, cfg, func(w report.Writer) error {
			_, err := w.WriteAnalysis(a)
			return err
		})
	case listQueries:
		return listStoredQueries(ctx, cmd, db)
	}

	var query string
	if len(args) == 1 {
		query = pipeline.NormalizeQuery(args[0])
	}
	entries, err := db.GetHistory(ctx, query, limit)
	if err != nil {
		return err
	}
	return withReport(cmd, cfg, func(w report.Writer) error {
		_, err := w.WriteHistory(entries)
		return err
	})
}

// listStoredQueries lists every substance that has a stored analysis.
func listStoredQueries(ctx context.Context, cmd *cobra.Command, db *database.AnalysisDB) error {
	queries, err := db.ListQueries(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(queries) == 0 {
		fmt.Fprintln(out, "No stored analyses yet.")
		fmt.Fprintln(out, "\nUse 'atomscope analyze <substance>' to create one.")
		return nil
	}

	fmt.Fprintf(out, "Stored substances (%d):\n\n", len(queries))
	for _, q := range queries {
		fmt.Fprintf(out, "  • %s\n", q)
	}
	fmt.Fprintln(out, "\nUse 'atomscope history <substance>' to see its analyses.")
	return nil
}

// deleteAnalysis removes one stored analysis.
func deleteAnalysis(ctx context.Context, cmd *cobra.Command, db *database.AnalysisDB, id int64) error {
	deleted, err := db.DeleteAnalysis(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("no stored analysis with ID %d", id)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted analysis %d\n", id)
	return nil
}
