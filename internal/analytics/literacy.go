package analytics

import (
	"math"

	"github.com/Dan9191/finance-service/internal/models"
)

// Literacy tiers, lowest first.
const (
	TierClueless   = "Финансовая бестолочь"
	TierBeginner   = "Новичок в деньгах"
	TierMindful    = "Осознанный тратильщик"
	TierStrategist = "Финансовый стратег"
	TierGenius     = "Финансовый гений"
)

const (
	balanceWeight        = 40
	smallExpenseWeight   = 20
	categorizationWeight = 15
	essentialWeight      = 25
	smallExpenseLimit    = 1000
)

var essentialCategories = map[string]bool{
	"На квартиру":         true,
	"Продукты":            true,
	"Здоровье":            true,
	"Транспорт":           true,
	"Коммунальные услуги": true,
	"Еда":                 true,
}

// LiteracyScore rates spending discipline on a 0-100 scale from four
// sub-scores: balance (40), small expenses (20), categorization (15) and
// essential spending share (25). Sub-scores truncate toward zero and only the
// total is clamped.
func LiteracyScore(transactions []models.Transaction) models.LiteracyScore {
	if len(transactions) == 0 {
		return models.LiteracyScore{Score: 0, Category: TierClueless}
	}

	var income, expense, essential float64
	var expenseCount, smallCount, otherCount int
	for _, tx := range transactions {
		switch {
		case tx.CurrencyAmount > 0:
			income += tx.CurrencyAmount
		case tx.CurrencyAmount < 0:
			amount := -tx.CurrencyAmount
			expense += amount
			expenseCount++
			if amount < smallExpenseLimit {
				smallCount++
			}
			name := categoryOf(tx)
			if name == models.OtherOperations {
				otherCount++
			}
			if essentialCategories[name] {
				essential += amount
			}
		}
	}

	total := balanceScore(income, expense) +
		shareScore(smallExpenseWeight, smallCount, expenseCount) +
		shareScore(categorizationWeight, otherCount, expenseCount) +
		essentialScore(essential, expense)
	total = max(0, min(100, total))

	return models.LiteracyScore{Score: total, Category: literacyTier(total)}
}

func balanceScore(income, expense float64) int {
	if income == 0 {
		return 0
	}
	ratio := expense / income
	switch {
	case ratio <= 0.7:
		return balanceWeight
	case ratio <= 1.0:
		return int(balanceWeight * (1 - (ratio-0.7)/0.3))
	default:
		return max(0, int(balanceWeight*(1/ratio)))
	}
}

// shareScore gives the full weight when no expense is in the penalized group.
func shareScore(weight, penalized, total int) int {
	if total == 0 {
		return weight
	}
	share := math.Min(float64(penalized)/float64(total), 1)
	return int(float64(weight) * (1 - share))
}

func essentialScore(essential, expense float64) int {
	if expense == 0 {
		return 0
	}
	ratio := essential / expense
	switch {
	case ratio >= 0.5 && ratio <= 0.7:
		return essentialWeight
	case ratio < 0.3:
		return int(essentialWeight * (ratio / 0.3))
	case ratio > 0.9:
		return int(essentialWeight * (1 - (ratio-0.7)/0.2))
	default:
		return max(0, int(essentialWeight*(1-math.Abs(ratio-0.6)/0.2)))
	}
}

func literacyTier(score int) string {
	switch {
	case score <= 30:
		return TierClueless
	case score <= 50:
		return TierBeginner
	case score <= 75:
		return TierMindful
	case score <= 90:
		return TierStrategist
	default:
		return TierGenius
	}
}
