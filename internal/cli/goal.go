package cli

import (
	"github.com/spf13/cobra"

	"github.com/Dan9191/finance-service/internal/goals"
	"github.com/Dan9191/finance-service/internal/models"
)

func newGoalCommand() *cobra.Command {
	var contributionsPath, rulesPath string
	var useAbs bool

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Evaluate goal rules against contributor transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var contributions []models.ContributorTransaction
			if err := readJSON(contributionsPath, &contributions); err != nil {
				return err
			}
			var rules []models.GoalRule
			if err := readJSON(rulesPath, &rules); err != nil {
				return err
			}

			summary, err := goals.Evaluate(contributions, rules, useAbs)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), summary)
		},
	}

	cmd.Flags().StringVar(&contributionsPath, "contributions", "", "JSON file of contributor transactions (required)")
	_ = cmd.MarkFlagRequired("contributions")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "JSON file of goal rules (required)")
	_ = cmd.MarkFlagRequired("rules")
	cmd.Flags().BoolVar(&useAbs, "abs", false, "sum absolute amounts")

	return cmd
}
