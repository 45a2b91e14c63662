// Package analytics builds reports over categorized transactions.
//
// Every builder is a pure function of its inputs: nothing is cached and the
// input slice is never modified, so reports may be computed concurrently over
// the same snapshot. Rows with missing dates are skipped by the time-windowed
// reports; an empty input always yields a well-formed empty report.
package analytics

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/Dan9191/finance-service/internal/models"
)

var ErrUnsupportedPeriod = errors.New("unsupported period")

// Confidence labels shared by the forecasts.
const (
	ConfidenceLow    = "низкая"
	ConfidenceMedium = "средняя"
	ConfidenceHigh   = "высокая"
)

// round2 rounds to cents the way the decimal rendering of v does: the exact
// binary value is rounded, and exact halves go to the even cent.
func round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if r == 0 {
		return 0
	}
	return r
}

func categoryOf(tx models.Transaction) string {
	if tx.Category == "" {
		return models.OtherOperations
	}
	return tx.Category
}

// monthIndex maps a date to a running month number so that consecutive
// months differ by one across year boundaries.
func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month())
}

// orderedSums keeps per-key sums in first-seen order so ties sort deterministically.
type orderedSums struct {
	keys []string
	sums map[string]float64
	cnt  map[string]int
}

func newOrderedSums() *orderedSums {
	return &orderedSums{sums: make(map[string]float64), cnt: make(map[string]int)}
}

func (o *orderedSums) add(key string, v float64) {
	if _, ok := o.sums[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.sums[key] += v
	o.cnt[key]++
}

// byAmountDesc returns the keys sorted by sum descending, first-seen order on ties.
func (o *orderedSums) byAmountDesc() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	sort.SliceStable(keys, func(i, j int) bool {
		return o.sums[keys[i]] > o.sums[keys[j]]
	})
	return keys
}
