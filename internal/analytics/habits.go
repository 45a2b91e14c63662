package analytics

import (
	"time"

	"github.com/Dan9191/finance-service/internal/models"
)

const (
	habitWindowDays     = 180
	habitMinOccurrences = 2
)

// HabitCosts sums expenses per category over the 180 days ending at asOf and
// keeps the categories seen at least twice, largest first.
func HabitCosts(transactions []models.Transaction, asOf time.Time) []models.HabitCost {
	end := models.DateOf(asOf).Time
	start := end.AddDate(0, 0, -habitWindowDays)

	sums := newOrderedSums()
	for _, tx := range transactions {
		if tx.CurrencyAmount >= 0 || !tx.OperationDate.Valid() {
			continue
		}
		d := tx.OperationDate.Time
		if d.Before(start) || d.After(end) {
			continue
		}
		sums.add(categoryOf(tx), -tx.CurrencyAmount)
	}

	habits := make([]models.HabitCost, 0)
	for _, name := range sums.byAmountDesc() {
		if sums.cnt[name] < habitMinOccurrences {
			continue
		}
		habits = append(habits, models.HabitCost{
			Category:    name,
			Amount:      round2(sums.sums[name]),
			Occurrences: sums.cnt[name],
		})
	}
	return habits
}
