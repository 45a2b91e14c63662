// Package normalizer turns per-source raw rows into canonical transactions.
//
// Malformed fields degrade to their zero value: an unparsable date becomes an
// absent date and an unparsable amount becomes 0. A bad row never aborts a batch.
package normalizer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Dan9191/finance-service/internal/models"
)

// holdMarker is what banks put in the date column of a pending operation.
const holdMarker = "HOLD"

var dateLayouts = []string{
	models.DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02.01.2006",
	"02.01.06",
}

// Normalize converts one raw row from source into a Transaction.
func Normalize(source string, raw models.RawRecord) models.Transaction {
	bankCategory := Text(raw["category"])
	return models.Transaction{
		ID:             Int(raw["id"]),
		UserID:         Int(raw["userID"]),
		Source:         source,
		FileName:       Text(raw["fileName"]),
		OperationDate:  Date(raw["operationDate"]),
		PostingDate:    Date(raw["postingDate"]),
		Code:           Text(raw["code"]),
		BankCategory:   bankCategory,
		Category:       bankCategory,
		Description:    Text(raw["description"]),
		Description2:   Text(raw["description2"]),
		CurrencyAmount: Amount(raw["currencyAmount"]),
		Amount:         Amount(raw["amount"]),
		Status:         Text(raw["status"]),
	}
}

// NormalizeAll normalizes every row of a source.
func NormalizeAll(source string, rows []models.RawRecord) []models.Transaction {
	out := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, Normalize(source, row))
	}
	return out
}

// Text returns v as a trimmed string; nil becomes "".
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case []byte:
		return strings.TrimSpace(string(x))
	case fmt.Stringer:
		return strings.TrimSpace(x.String())
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}

// Int returns v as an int64, or 0 when it is not a whole number.
func Int(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case float64:
		if x == math.Trunc(x) {
			return int64(x)
		}
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
	case string, []byte:
		if n, err := strconv.ParseInt(Text(x), 10, 64); err == nil {
			return n
		}
	}
	return 0
}

// Amount returns v as a float64. Bank formatting (NBSP and space thousands
// separators, decimal comma, leading plus, ruble sign) is tolerated.
// Anything unparsable becomes 0.
func Amount(v any) float64 {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0
		}
		return x
	case float32:
		return Amount(float64(x))
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		return Amount(string(x))
	case decimal.Decimal:
		return x.InexactFloat64()
	case string, []byte:
		d, err := ParseDecimal(Text(x))
		if err != nil {
			return 0
		}
		return d.InexactFloat64()
	}
	return 0
}

// ParseDecimal parses a bank-formatted amount string.
func ParseDecimal(s string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer(
		"\u00a0", "",
		"\u202f", "",
		" ", "",
		"₽", "",
		"+", "",
		",", ".",
	).Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	return decimal.NewFromString(cleaned)
}

// Date returns v as a calendar date; anything unparsable is an absent date.
func Date(v any) models.Date {
	switch x := v.(type) {
	case models.Date:
		return x
	case time.Time:
		if x.IsZero() {
			return models.Date{}
		}
		return models.DateOf(x)
	case *time.Time:
		if x == nil {
			return models.Date{}
		}
		return Date(*x)
	case string, []byte:
		s := Text(x)
		if s == "" || strings.EqualFold(s, holdMarker) {
			return models.Date{}
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return models.DateOf(t)
			}
		}
	}
	return models.Date{}
}
