package analytics

import (
	"github.com/Dan9191/finance-service/internal/models"
)

// ExpenseDistribution splits expenses by category, largest first.
func ExpenseDistribution(transactions []models.Transaction) models.ExpenseDistribution {
	shares, total := distribute(transactions, func(amount float64) bool { return amount < 0 })
	return models.ExpenseDistribution{
		Status: models.StatusSuccess,
		Data:   shares,
		Meta: models.ExpenseDistributionMeta{
			TotalExpense: round2(total),
			Categories:   len(shares),
		},
	}
}

// IncomeDistribution splits income by category, largest first.
func IncomeDistribution(transactions []models.Transaction) models.IncomeDistribution {
	shares, total := distribute(transactions, func(amount float64) bool { return amount > 0 })
	return models.IncomeDistribution{
		Status: models.StatusSuccess,
		Data:   shares,
		Meta: models.IncomeDistributionMeta{
			TotalIncome: round2(total),
			Categories:  len(shares),
		},
	}
}

// distribute sums absolute amounts of the selected sign per category. A zero
// total yields an empty, non-nil slice.
func distribute(transactions []models.Transaction, keep func(float64) bool) ([]models.CategoryShare, float64) {
	sums := newOrderedSums()
	var total float64
	for _, tx := range transactions {
		if !keep(tx.CurrencyAmount) {
			continue
		}
		amount := tx.CurrencyAmount
		if amount < 0 {
			amount = -amount
		}
		total += amount
		sums.add(categoryOf(tx), amount)
	}

	if total <= 0 {
		return []models.CategoryShare{}, 0
	}

	shares := make([]models.CategoryShare, 0, len(sums.keys))
	for _, name := range sums.byAmountDesc() {
		amount := sums.sums[name]
		shares = append(shares, models.CategoryShare{
			Category: name,
			Amount:   round2(amount),
			Percent:  round2(amount / total * 100),
		})
	}
	return shares, total
}
