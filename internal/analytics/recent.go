package analytics

import (
	"sort"

	"github.com/Dan9191/finance-service/internal/models"
)

// DefaultRecentLimit is used when no positive limit is requested.
const DefaultRecentLimit = 10

// LastTransactions returns up to limit most recent transactions per source,
// newest first. Undated rows sort last.
func LastTransactions(transactions []models.Transaction, limit int) map[string][]models.Transaction {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	bySource := make(map[string][]models.Transaction)
	for _, tx := range transactions {
		bySource[tx.Source] = append(bySource[tx.Source], tx)
	}
	for source, txs := range bySource {
		sort.SliceStable(txs, func(i, j int) bool {
			a, b := txs[i].OperationDate, txs[j].OperationDate
			if !a.Valid() || !b.Valid() {
				return a.Valid()
			}
			return a.After(b.Time)
		})
		if len(txs) > limit {
			txs = txs[:limit]
		}
		bySource[source] = txs
	}
	return bySource
}
