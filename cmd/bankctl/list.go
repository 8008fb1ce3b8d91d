package main

import (
	"fmt"

	"codequiz/internal/domain"
	"codequiz/internal/dto"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List questions matching the given filters as JSON",
	RunE:  runList,
}

var (
	listDifficulty string
	listType       string
)

func init() {
	listCmd.Flags().StringVarP(&listDifficulty, "difficulty", "d", domain.FilterAll, "Difficulty label or 'all'")
	listCmd.Flags().StringVarP(&listType, "type", "t", domain.FilterAll, "Type label or 'all'")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	svc, err := newQuestionService(ctx)
	if err != nil {
		return err
	}

	questions, err := svc.ListMatching(ctx, domain.FilterCriteria{Difficulty: listDifficulty, Type: listType}, true)
	if err != nil {
		return fmt.Errorf("failed to list questions: %w", err)
	}
	return writeJSON(cmd.OutOrStdout(), dto.ToQuestionListItems(questions))
}
