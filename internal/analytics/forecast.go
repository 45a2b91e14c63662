package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Dan9191/finance-service/internal/models"
)

const (
	forecastWindowMonths = 6
	smoothingAlpha       = 0.6

	msgNoData         = "Недостаточно данных для прогноза."
	msgNoCategoryData = "Недостаточно данных для прогноза по категориям."
	msgNoExpenses     = "Расходы не обнаружены."
)

// monthlyExpenses sums expenses per month index inside the trailing window
// ending at asOf's month, overall and per category. Categories keep
// first-seen order.
type monthlyExpenses struct {
	total      map[int]float64
	byCategory map[string]map[int]float64
	categories []string
}

func collectMonthly(transactions []models.Transaction, asOf time.Time) monthlyExpenses {
	current := monthIndex(asOf)
	m := monthlyExpenses{
		total:      make(map[int]float64),
		byCategory: make(map[string]map[int]float64),
	}
	for _, tx := range transactions {
		if tx.CurrencyAmount >= 0 || !tx.OperationDate.Valid() {
			continue
		}
		key := monthIndex(tx.OperationDate.Time)
		if key > current || key < current-(forecastWindowMonths-1) {
			continue
		}
		amount := -tx.CurrencyAmount
		m.total[key] += amount

		name := categoryOf(tx)
		months, ok := m.byCategory[name]
		if !ok {
			months = make(map[int]float64)
			m.byCategory[name] = months
			m.categories = append(m.categories, name)
		}
		months[key] += amount
	}
	return m
}

// sortedValues returns the month sums in chronological order.
func sortedValues(months map[int]float64) []float64 {
	keys := make([]int, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	values := make([]float64, len(keys))
	for i, k := range keys {
		values[i] = months[k]
	}
	return values
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// linearNext fits y = a + b*t over t = 0..n-1 by least squares and
// extrapolates to t = n.
func linearNext(y []float64) float64 {
	n := float64(len(y))
	meanT := (n - 1) / 2
	meanY := mean(y)

	var num, den float64
	for i, v := range y {
		dt := float64(i) - meanT
		num += dt * (v - meanY)
		den += dt * dt
	}
	var slope float64
	if den != 0 {
		slope = num / den
	}
	return slope*n + meanY - slope*meanT
}

func monthsWord(n int) string {
	switch {
	case n == 1:
		return "месяц"
	case n >= 2 && n <= 4:
		return "месяца"
	default:
		return "месяцев"
	}
}

// ForecastNextMonth predicts next month's total expense from up to six
// calendar months ending at asOf. One month is repeated, two or three are
// averaged and four or more are extrapolated linearly, floored at zero.
func ForecastNextMonth(transactions []models.Transaction, asOf time.Time) models.ExpenseForecast {
	if len(transactions) == 0 {
		return models.ExpenseForecast{Confidence: ConfidenceLow, Message: msgNoData}
	}

	values := sortedValues(collectMonthly(transactions, asOf).total)
	n := len(values)
	if n == 0 {
		return models.ExpenseForecast{Confidence: ConfidenceLow, Message: msgNoExpenses}
	}

	var forecast float64
	var confidence string
	switch {
	case n == 1:
		forecast, confidence = values[0], ConfidenceLow
	case n <= 3:
		forecast, confidence = mean(values), ConfidenceMedium
	default:
		forecast = math.Max(0, linearNext(values))
		confidence = ConfidenceMedium
		if n >= 5 {
			confidence = ConfidenceHigh
		}
	}

	return models.ExpenseForecast{
		ForecastAmount:  round2(forecast),
		Confidence:      confidence,
		PeriodsAnalyzed: n,
		Message:         fmt.Sprintf("Прогноз основан на данных за %d %s.", n, monthsWord(n)),
	}
}

// ForecastByCategory predicts next month's expense per category over the same
// six-month window. Three or more observed months use exponential smoothing
// seeded with the first month.
func ForecastByCategory(transactions []models.Transaction, asOf time.Time) models.CategoryForecast {
	empty := models.CategoryForecast{
		ForecastByCategory: map[string]float64{},
		Confidence:         ConfidenceLow,
	}
	if len(transactions) == 0 {
		empty.Message = msgNoCategoryData
		return empty
	}

	m := collectMonthly(transactions, asOf)
	if len(m.categories) == 0 {
		empty.Message = msgNoExpenses
		return empty
	}

	result := models.CategoryForecast{ForecastByCategory: make(map[string]float64, len(m.categories))}
	observed := 0
	for _, name := range m.categories {
		values := sortedValues(m.byCategory[name])
		observed += len(values)

		var forecast float64
		switch len(values) {
		case 1:
			forecast = values[0]
		case 2:
			forecast = mean(values)
		default:
			forecast = values[0]
			for _, v := range values[1:] {
				forecast = smoothingAlpha*v + (1-smoothingAlpha)*forecast
			}
		}
		forecast = math.Max(0, round2(forecast))
		result.ForecastByCategory[name] = forecast
		result.TotalForecast += forecast
	}
	result.TotalForecast = round2(result.TotalForecast)

	avg := float64(observed) / float64(len(m.categories))
	switch {
	case avg >= 3:
		result.Confidence = ConfidenceHigh
	case avg >= 2:
		result.Confidence = ConfidenceMedium
	default:
		result.Confidence = ConfidenceLow
	}
	result.Message = fmt.Sprintf("Прогноз по %d категориям. Уровень уверенности: %s.", len(result.ForecastByCategory), result.Confidence)
	return result
}
