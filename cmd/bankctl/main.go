// Package main implements bankctl, an operator tool for inspecting the question sheet.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"codequiz/internal/adapter/sheets"
	"codequiz/internal/bank"
	"codequiz/internal/config"
	"codequiz/internal/logger"
	"codequiz/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bankctl",
	Short: "Inspect the code quiz question sheet",
	Long:  "bankctl reads the configured Google Sheet the same way the API server does and prints what the question bank would contain.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if sheetFlag != "" {
			cfg.Sheets.SpreadsheetID = sheetFlag
		}
		if tabFlag != "" {
			cfg.Sheets.Tab = tabFlag
		}
		return logger.Initialize(cfg.Logger)
	},
}

var (
	cfg       *config.Config
	sheetFlag string
	tabFlag   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&sheetFlag, "sheet", "", "Spreadsheet ID (overrides SHEET_ID)")
	rootCmd.PersistentFlags().StringVar(&tabFlag, "tab", "", "Sheet tab name (overrides SHEET_TAB)")
}

// newSource builds the Sheets client from the loaded configuration.
func newSource(ctx context.Context) (*sheets.GoogleSheetsClient, error) {
	client, err := sheets.NewGoogleSheetsClient(ctx, cfg.Sheets)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}
	return client, nil
}

// newQuestionService wires a one-shot bank and service. No mirror is used.
func newQuestionService(ctx context.Context) (service.QuestionService, error) {
	source, err := newSource(ctx)
	if err != nil {
		return nil, err
	}
	b := bank.NewCache(source, bank.Options{
		SheetID:       cfg.Sheets.SpreadsheetID,
		Tab:           cfg.Sheets.Tab,
		TTL:           cfg.Bank.TTL,
		Aliases:       bank.DefaultAliases.Merge(cfg.Bank.Aliases),
		FetchAttempts: cfg.Bank.FetchAttempts,
		RetryBackoff:  cfg.Bank.RetryBackoff,
	})
	return service.NewQuestionService(b), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
