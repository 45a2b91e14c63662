package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dan9191/finance-service/internal/analytics"
	"github.com/Dan9191/finance-service/internal/category"
	"github.com/Dan9191/finance-service/internal/models"
)

type reportOptions struct {
	rows       string
	categories string
	asOf       string
	period     string
	limit      int
}

type reportInput struct {
	txs   []models.Transaction
	stats models.ResolveStats
	asOf  time.Time
	opts  reportOptions
}

type reportFunc func(in reportInput) (any, error)

var reports = map[string]reportFunc{
	"transactions": func(in reportInput) (any, error) {
		return models.CategorizedTransactions{Status: models.StatusSuccess, Data: in.txs, Meta: in.stats}, nil
	},
	"balance": func(in reportInput) (any, error) {
		return analytics.Balance(in.txs), nil
	},
	"cash-flow": func(in reportInput) (any, error) {
		return analytics.CashFlow(in.txs, in.opts.period)
	},
	"expense": func(in reportInput) (any, error) {
		d := analytics.ExpenseDistribution(in.txs)
		d.Meta.ServiceMeta = &in.stats
		return d, nil
	},
	"income": func(in reportInput) (any, error) {
		d := analytics.IncomeDistribution(in.txs)
		d.Meta.ServiceMeta = &in.stats
		return d, nil
	},
	"anomaly": func(in reportInput) (any, error) {
		return analytics.FindAnomaly(in.txs), nil
	},
	"habits": func(in reportInput) (any, error) {
		return analytics.HabitCosts(in.txs, in.asOf), nil
	},
	"profile": func(in reportInput) (any, error) {
		return analytics.FinancialProfile(in.txs), nil
	},
	"score": func(in reportInput) (any, error) {
		return analytics.LiteracyScore(in.txs), nil
	},
	"forecast": func(in reportInput) (any, error) {
		return analytics.ForecastNextMonth(in.txs, in.asOf), nil
	},
	"forecast-categories": func(in reportInput) (any, error) {
		return analytics.ForecastByCategory(in.txs, in.asOf), nil
	},
	"last-transactions": func(in reportInput) (any, error) {
		if in.opts.limit <= 0 {
			return nil, fmt.Errorf("--limit must be positive")
		}
		return analytics.LastTransactions(in.txs, in.opts.limit), nil
	},
}

func reportKinds() []string {
	kinds := make([]string, 0, len(reports))
	for k := range reports {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func newReportCommand(now func() time.Time) *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:       "report <kind>",
		Short:     "Compute a report over exported transactions",
		Long:      "Normalizes and categorizes exported rows, then prints one report as JSON.\nKinds: " + strings.Join(reportKinds(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: reportKinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, ok := reports[args[0]]
			if !ok {
				return fmt.Errorf("unknown report %q (want one of %s)", args[0], strings.Join(reportKinds(), ", "))
			}

			asOf := now()
			if opts.asOf != "" {
				t, err := time.Parse(models.DateLayout, opts.asOf)
				if err != nil {
					return fmt.Errorf("invalid --as-of %q: %w", opts.asOf, err)
				}
				asOf = t
			}
			if args[0] == "cash-flow" {
				if _, err := analytics.ParsePeriod(opts.period); err != nil {
					return err
				}
			}

			txs, err := loadTransactions(opts.rows)
			if err != nil {
				return err
			}
			cats, err := loadCategories(opts.categories)
			if err != nil {
				return err
			}
			categorized, stats := category.Resolve(txs, cats)

			out, err := run(reportInput{txs: categorized, stats: stats, asOf: asOf, opts: opts})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&opts.rows, "rows", "", "JSON file of raw rows keyed by source slug (required)")
	_ = cmd.MarkFlagRequired("rows")
	cmd.Flags().StringVar(&opts.categories, "categories", "", "JSON file of category definitions")
	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "reference date YYYY-MM-DD for windowed reports (default today)")
	cmd.Flags().StringVar(&opts.period, "period", string(analytics.PeriodMonth), "cash-flow bucket: day, month or year")
	cmd.Flags().IntVar(&opts.limit, "limit", analytics.DefaultRecentLimit, "rows per source for last-transactions")

	return cmd
}
