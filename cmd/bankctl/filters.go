package main

import (
	"fmt"

	"codequiz/internal/domain"
	"codequiz/internal/dto"

	"github.com/spf13/cobra"
)

var filtersCmd = &cobra.Command{
	Use:   "filters [difficulty|type]",
	Short: "Print the distinct filter labels found in the sheet",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFilters,
}

func init() {
	rootCmd.AddCommand(filtersCmd)
}

func runFilters(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, err := newQuestionService(ctx)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		field, ok := domain.ParseField(args[0])
		if !ok || (field != domain.FieldDifficulty && field != domain.FieldType) {
			return fmt.Errorf("unsupported field %q: use difficulty or type", args[0])
		}
		values, err := svc.ListDistinctValues(ctx, field)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), dto.DistinctValuesResponse{Field: string(field), Values: values})
	}

	values, err := svc.FilterValues(ctx)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), dto.FiltersResponse{Difficulties: values.Difficulties, Types: values.Types})
}
