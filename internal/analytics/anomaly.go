package analytics

import (
	"sort"

	"github.com/Dan9191/finance-service/internal/models"
)

const (
	minAnomalySample = 3
	tukeyFactor      = 1.5
)

// FindAnomaly returns the single expense that exceeds its category's Tukey
// fence Q3 + 1.5*IQR by the widest margin. Categories with fewer than three
// expenses are not judged. Quartiles are taken at indices int(0.25*(n-1)) and
// int(0.75*(n-1)) of the sorted absolute amounts.
func FindAnomaly(transactions []models.Transaction) models.Anomaly {
	groups := make(map[string][]models.Transaction)
	var order []string
	for _, tx := range transactions {
		if tx.CurrencyAmount >= 0 {
			continue
		}
		name := categoryOf(tx)
		if _, ok := groups[name]; !ok {
			order = append(order, name)
		}
		groups[name] = append(groups[name], tx)
	}

	result := models.Anomaly{Status: false}
	var best float64
	for _, name := range order {
		group := groups[name]
		if len(group) < minAnomalySample {
			continue
		}
		threshold := tukeyThreshold(group)
		for i := range group {
			amount := -group[i].CurrencyAmount
			if amount <= threshold {
				continue
			}
			score := amount - threshold
			if !result.Status || score > best {
				tx := group[i]
				result = models.Anomaly{
					Status:    true,
					Data:      &tx,
					Score:     round2(score),
					Threshold: round2(threshold),
				}
				best = score
			}
		}
	}
	return result
}

func tukeyThreshold(group []models.Transaction) float64 {
	amounts := make([]float64, len(group))
	for i, tx := range group {
		amounts[i] = -tx.CurrencyAmount
	}
	sort.Float64s(amounts)

	n := len(amounts)
	q1 := amounts[int(0.25*float64(n-1))]
	q3 := amounts[int(0.75*float64(n-1))]
	return q3 + tukeyFactor*(q3-q1)
}
