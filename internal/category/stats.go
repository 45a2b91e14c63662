package category

import (
	"strconv"
	"strings"

	"github.com/Dan9191/finance-service/internal/models"
)

// Stats sums the signed amounts of the transactions resolved into categoryName.
func Stats(transactions []models.Transaction, categoryName string) models.CategoryStats {
	var stats models.CategoryStats
	for _, tx := range transactions {
		if tx.Category != categoryName {
			continue
		}
		stats.TransactionsCount++
		stats.AmountSum += tx.CurrencyAmount
	}
	stats.AmountSum = round2(stats.AmountSum)
	return stats
}

// Catalog pairs every category definition with its stats over already
// resolved transactions, preserving catalog order.
func Catalog(categorized []models.Transaction, categories []models.CategoryDefinition) []models.CategoryCatalogEntry {
	byName := make(map[string]models.CategoryStats, len(categories))
	for _, tx := range categorized {
		s := byName[tx.Category]
		s.TransactionsCount++
		s.AmountSum += tx.CurrencyAmount
		byName[tx.Category] = s
	}

	entries := make([]models.CategoryCatalogEntry, 0, len(categories))
	for _, c := range categories {
		s := byName[strings.TrimSpace(c.CategoryName)]
		s.AmountSum = round2(s.AmountSum)
		entries = append(entries, models.CategoryCatalogEntry{
			CategoryDefinition: c,
			Stats:              s,
		})
	}
	return entries
}

// round2 rounds to cents the way the decimal rendering of v does: the exact
// binary value is rounded, and exact halves go to the even cent.
func round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if r == 0 {
		return 0
	}
	return r
}
