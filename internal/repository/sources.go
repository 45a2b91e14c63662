package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dan9191/finance-service/internal/models"
)

// sourceColumn maps a table column to the raw record key the normalizer reads.
type sourceColumn struct {
	column string
	key    string
}

// sourceTable describes where one bank source keeps its rows.
type sourceTable struct {
	table   string
	columns []sourceColumn
}

var commonColumns = []sourceColumn{
	{"id", "id"},
	{"user_id", "userID"},
	{"file_name", "fileName"},
	{"operation_date", "operationDate"},
	{"posting_date", "postingDate"},
	{"description", "description"},
	{"currency_amount", "currencyAmount"},
}

var sourceTables = map[string]sourceTable{
	models.SourceAlfa: {
		table: "finance.alfa_transactions",
		columns: append(append([]sourceColumn{}, commonColumns...),
			sourceColumn{"code", "code"},
			sourceColumn{"category", "category"},
			sourceColumn{"status", "status"},
		),
	},
	models.SourceTinkoff: {
		table: "finance.tinkoff_transactions",
		columns: append(append([]sourceColumn{}, commonColumns...),
			sourceColumn{"description2", "description2"},
			sourceColumn{"amount", "amount"},
		),
	},
}

func lookupSource(slug string) (sourceTable, error) {
	t, ok := sourceTables[slug]
	if !ok {
		return sourceTable{}, fmt.Errorf("%w: %q", ErrUnknownSource, slug)
	}
	return t, nil
}

func (t sourceTable) selectQuery() string {
	cols := make([]string, len(t.columns))
	for i, c := range t.columns {
		cols[i] = fmt.Sprintf(`%s AS "%s"`, c.column, c.key)
	}
	return fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE user_id = $1
		ORDER BY operation_date DESC NULLS LAST, id DESC`, strings.Join(cols, ", "), t.table)
}

// rawValue converts driver values into types the normalizer understands.
func rawValue(v any) any {
	switch x := v.(type) {
	case []byte:
		return string(x)
	default:
		return x
	}
}

// FindTransactions returns a user's rows of one bank source as raw records,
// newest first.
func (r *Repository) FindTransactions(ctx context.Context, slug string, userID int64) ([]models.RawRecord, error) {
	src, err := lookupSource(slug)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, src.selectQuery(), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s transactions: %w", slug, err)
	}
	defer rows.Close()

	var records []models.RawRecord
	for rows.Next() {
		values := make([]any, len(src.columns))
		ptrs := make([]any, len(src.columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan %s transaction: %w", slug, err)
		}
		rec := make(models.RawRecord, len(src.columns))
		for i, c := range src.columns {
			rec[c.key] = rawValue(values[i])
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s transactions: %w", slug, err)
	}
	return records, nil
}

// manualFileName marks rows entered by hand rather than imported from a statement.
const manualFileName = "manual"

// CreateTransaction stores a manually entered transaction and returns its id.
func (r *Repository) CreateTransaction(ctx context.Context, slug string, userID int64, m models.ManualTransaction) (int64, error) {
	src, err := lookupSource(slug)
	if err != nil {
		return 0, err
	}

	var opDate any
	if m.OperationDate.Valid() {
		opDate = m.OperationDate.Time
	}

	var query string
	args := []any{userID, manualFileName, opDate, m.Description, m.CurrencyAmount}
	switch slug {
	case models.SourceTinkoff:
		query = fmt.Sprintf(`
			INSERT INTO %s (user_id, file_name, operation_date, description, currency_amount, amount)
			VALUES ($1, $2, $3, $4, $5, $5)
			RETURNING id`, src.table)
	default:
		query = fmt.Sprintf(`
			INSERT INTO %s (user_id, file_name, operation_date, description, currency_amount)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`, src.table)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create %s transaction: %w", slug, err)
	}
	return id, nil
}

// TransactionExists reports whether the user owns the given row of a source.
func (r *Repository) TransactionExists(ctx context.Context, slug string, id, userID int64) (bool, error) {
	src, err := lookupSource(slug)
	if err != nil {
		return false, err
	}
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1 AND user_id = $2)`, src.table)
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to check %s transaction: %w", slug, err)
	}
	return ok, nil
}
