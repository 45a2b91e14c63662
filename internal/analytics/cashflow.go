package analytics

import (
	"fmt"
	"sort"

	"github.com/Dan9191/finance-service/internal/models"
)

// Period is a cash-flow bucket size.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod validates a period literal.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case PeriodDay, PeriodMonth, PeriodYear:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedPeriod, s)
}

func (p Period) key(d models.Date) string {
	switch p {
	case PeriodDay:
		return d.Format("2006-01-02")
	case PeriodMonth:
		return d.Format("2006-01")
	default:
		return d.Format("2006")
	}
}

// Balance is the signed sum over every source.
func Balance(transactions []models.Transaction) models.Balance {
	var total float64
	for _, tx := range transactions {
		total += tx.CurrencyAmount
	}
	return models.Balance{Data: round2(total)}
}

// CashFlow groups income, expense and net by calendar bucket, ascending.
// Rows without an operation date are skipped.
func CashFlow(transactions []models.Transaction, period string) ([]models.CashFlowEntry, error) {
	p, err := ParsePeriod(period)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*models.CashFlowEntry)
	for _, tx := range transactions {
		if !tx.OperationDate.Valid() {
			continue
		}
		k := p.key(tx.OperationDate)
		b, ok := buckets[k]
		if !ok {
			b = &models.CashFlowEntry{Period: k}
			buckets[k] = b
		}
		if tx.CurrencyAmount >= 0 {
			b.Income += tx.CurrencyAmount
		} else {
			b.Expense += -tx.CurrencyAmount
		}
		b.Net += tx.CurrencyAmount
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]models.CashFlowEntry, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		out = append(out, models.CashFlowEntry{
			Period:  k,
			Income:  round2(b.Income),
			Expense: round2(b.Expense),
			Net:     round2(b.Net),
		})
	}
	return out, nil
}
