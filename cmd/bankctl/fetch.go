package main

import (
	"fmt"

	"codequiz/internal/bank"
	"codequiz/internal/domain"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the sheet and report how its header row was resolved",
	Long:  "Reads the sheet once, resolves the header row against the alias table and prints the column mapping and question count.",
	RunE:  runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	source, err := newSource(ctx)
	if err != nil {
		return err
	}

	grid, err := source.FetchGrid(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.Tab)
	if err != nil {
		return fmt.Errorf("failed to fetch sheet: %w", err)
	}

	questions, headers := bank.BuildQuestions(grid, bank.DefaultAliases.Merge(cfg.Bank.Aliases))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "sheet %s / %s: %d rows\n", cfg.Sheets.SpreadsheetID, cfg.Sheets.Tab, len(grid))
	for _, f := range domain.Fields {
		if col := headers.Column(f); col >= 0 {
			fmt.Fprintf(out, "  %-10s column %d\n", f, col)
		} else {
			fmt.Fprintf(out, "  %-10s (not found)\n", f)
		}
	}
	fmt.Fprintf(out, "%d of %d fields resolved, %d questions\n", headers.Resolved(), len(domain.Fields), len(questions))
	return nil
}
