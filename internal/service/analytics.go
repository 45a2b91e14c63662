package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Dan9191/finance-service/internal/analytics"
	"github.com/Dan9191/finance-service/internal/models"
)

// allCategorized is the common input of every report: all sources, resolved.
func (s *Service) allCategorized(ctx context.Context, userID int64) ([]models.Transaction, models.ResolveStats, error) {
	return s.categorize(ctx, userID, models.Sources())
}

// Balance returns the signed sum over all sources.
func (s *Service) Balance(ctx context.Context, userID int64) (models.Balance, error) {
	txs, _, err := s.allCategorized(ctx, userID)
	if err != nil {
		return models.Balance{}, err
	}
	return analytics.Balance(txs), nil
}

// CashFlow returns income and expense per period. The period is checked
// before anything is loaded.
func (s *Service) CashFlow(ctx context.Context, userID int64, period string) ([]models.CashFlowEntry, error) {
	if _, err := analytics.ParsePeriod(period); err != nil {
		return nil, err
	}
	txs, _, err := s.allCategorized(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.CashFlow(txs, period)
}

// ExpenseDistribution returns the expense donut with resolver meta attached.
func (s *Service) ExpenseDistribution(ctx context.Context, userID int64) (models.ExpenseDistribution, error) {
	txs, stats, err := s.allCategorized(ctx, userID)
	if err != nil {
		return models.ExpenseDistribution{}, err
	}
	d := analytics.ExpenseDistribution(txs)
	d.Meta.ServiceMeta = &stats
	return d, nil
}

// IncomeDistribution returns the income donut with resolver meta attached.
func (s *Service) IncomeDistribution(ctx context.Context, userID int64) (models.IncomeDistribution, error) {
	txs, stats, err := s.allCategorized(ctx, userID)
	if err != nil {
		return models.IncomeDistribution{}, err
	}
	d := analytics.IncomeDistribution(txs)
	d.Meta.ServiceMeta = &stats
	return d, nil
}

// Anomaly returns the most atypical expense.
func (s *Service) Anomaly(ctx context.Context, userID int64) (models.Anomaly, error) {
	txs, _, err := s.allCategorized(ctx, userID)
	if err != nil {
		return models.Anomaly{}, err
	}
	return analytics.FindAnomaly(txs), nil
}

// Habits returns recurring expense categories in the 180 days up to asOf.
func (s *Service) Habits(ctx context.Context, userID int64, asOf time.Time) ([]models.HabitCost, error) {
	txs, _, err := s.allCategorized(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.HabitCosts(txs, asOf), nil
}

// Profile returns the rule-based financial profile.
func (s *Service) Profile(ctx context.Context, userID int64) (models.FinancialProfile, error) {
	txs, _, err := s.allCategorized(ctx, userID)
	if err != nil {
		return models.FinancialProfile{}, err
	}
	return analytics.FinancialProfile(txs), nil
}

// Score returns the financial literacy score.
func (s *Service) Score(ctx context.Context, userID int64) (models.LiteracyScore, error) {
	txs, _, err := s.allCategorized(ctx, userID)
	if err != nil {
		return models.LiteracyScore{}, err
	}
	return analytics.LiteracyScore(txs), nil
}

// Forecast predicts next month's total expense.
func (s *Service) Forecast(ctx context.Context, userID int64, asOf time.Time) (models.ExpenseForecast, error) {
	txs, _, err := s.allCategorized(ctx, userID)
	if err != nil {
		return models.ExpenseForecast{}, err
	}
	return analytics.ForecastNextMonth(txs, asOf), nil
}

// CategoryForecast predicts next month's expense per category.
func (s *Service) CategoryForecast(ctx context.Context, userID int64, asOf time.Time) (models.CategoryForecast, error) {
	txs, _, err := s.allCategorized(ctx, userID)
	if err != nil {
		return models.CategoryForecast{}, err
	}
	return analytics.ForecastByCategory(txs, asOf), nil
}

// LastTransactions returns the newest transactions of each source.
func (s *Service) LastTransactions(ctx context.Context, userID int64, limit int) (map[string][]models.Transaction, error) {
	txs, _, err := s.allCategorized(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.LastTransactions(txs, limit), nil
}

// DigestRecipients lists users that have an email address.
func (s *Service) DigestRecipients(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.ListUsersWithEmail(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return users, nil
}

// Digest builds the monthly summary for one user.
func (s *Service) Digest(ctx context.Context, user models.User, asOf time.Time) (*models.Digest, error) {
	txs, _, err := s.allCategorized(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to build digest for user %d: %w", user.ID, err)
	}
	return &models.Digest{
		Username: user.Username,
		Email:    user.Email,
		AsOf:     models.DateOf(asOf),
		Forecast: analytics.ForecastNextMonth(txs, asOf),
		Anomaly:  analytics.FindAnomaly(txs),
	}, nil
}
