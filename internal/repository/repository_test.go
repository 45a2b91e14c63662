package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/finance-service/internal/models"
	"github.com/Dan9191/finance-service/internal/normalizer"
)

func TestLookupSource(t *testing.T) {
	for _, slug := range models.Sources() {
		src, err := lookupSource(slug)
		require.NoError(t, err, slug)
		assert.NotEmpty(t, src.table)
	}

	_, err := lookupSource("sber")
	assert.True(t, errors.Is(err, ErrUnknownSource))
}

func TestSelectQuery_AliasesColumnsToRecordKeys(t *testing.T) {
	q := sourceTables[models.SourceTinkoff].selectQuery()

	assert.Contains(t, q, `operation_date AS "operationDate"`)
	assert.Contains(t, q, `description2 AS "description2"`)
	assert.Contains(t, q, "FROM finance.tinkoff_transactions")
	assert.NotContains(t, q, "status")

	alfa := sourceTables[models.SourceAlfa].selectQuery()
	assert.Contains(t, alfa, `category AS "category"`)
	assert.NotContains(t, alfa, "description2")
}

func TestRawValue_FeedsNormalizer(t *testing.T) {
	rec := models.RawRecord{
		"id":             rawValue(int64(5)),
		"operationDate":  rawValue(time.Date(2025, 3, 1, 0, 0, 0, 0, time.FixedZone("MSK", 3*3600))),
		"currencyAmount": rawValue([]byte("-250.40")),
		"description":    rawValue(nil),
	}

	tx := normalizer.Normalize(models.SourceAlfa, rec)

	assert.Equal(t, int64(5), tx.ID)
	assert.Equal(t, "2025-03-01", tx.OperationDate.String())
	assert.Equal(t, -250.40, tx.CurrencyAmount)
	assert.Empty(t, tx.Description)
}

func TestContributionsQuery_JoinsEverySource(t *testing.T) {
	q := contributionsQuery()
	for _, slug := range models.Sources() {
		assert.Contains(t, q, fmt.Sprintf("gt.transaction_source = '%s'", slug))
		assert.Contains(t, q, sourceTables[slug].table)
	}
	assert.Contains(t, q, "COALESCE(s0.currency_amount::text, s1.currency_amount::text, '')")
}

func TestMapError(t *testing.T) {
	dup := &pq.Error{Code: uniqueViolation, Constraint: "friends_user_id_friend_id_key"}
	assert.True(t, errors.Is(mapError(dup), ErrDuplicate))

	other := &pq.Error{Code: "23503"}
	assert.False(t, errors.Is(mapError(other), ErrDuplicate))
	assert.Equal(t, other, mapError(other))
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "000001_init.up.sql")
	assert.Contains(t, names, "000001_init.down.sql")
}
