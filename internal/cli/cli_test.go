package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/finance-service/internal/goals"
	"github.com/Dan9191/finance-service/internal/models"
)

const rowsJSON = `{
  "alfa": [
    {"id": 1, "operationDate": "2025-05-10", "description": "YANDEX TAXI", "currencyAmount": "-300,50", "category": "Транспорт"},
    {"id": 2, "operationDate": "2025-05-15", "description": "Salary", "currencyAmount": 1000}
  ],
  "tinkoff": [
    {"id": 7, "operationDate": "2025-06-01", "description": "Pyaterochka", "currencyAmount": -200}
  ]
}`

const categoriesJSON = `[
  {"id": 1, "categoryName": "Taxi", "categoryConditions": [{"conditionValue": "TAXI", "isExact": false}]}
]`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(func() time.Time { return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC) })
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func fixtures(t *testing.T) (rows, cats string) {
	dir := t.TempDir()
	return writeFile(t, dir, "rows.json", rowsJSON), writeFile(t, dir, "categories.json", categoriesJSON)
}

func TestReport_Transactions(t *testing.T) {
	rows, cats := fixtures(t)
	out, err := run(t, "report", "transactions", "--rows", rows, "--categories", cats)
	require.NoError(t, err)

	var got models.CategorizedTransactions
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Data, 3)
	assert.Equal(t, "Taxi", got.Data[0].Category)
	assert.Equal(t, -300.5, got.Data[0].CurrencyAmount)
	assert.Equal(t, models.OtherOperations, got.Data[1].Category)
	assert.Equal(t, models.SourceTinkoff, got.Data[2].Source)
	assert.Equal(t, 1, got.Meta.MatchedCustom)
	assert.Equal(t, 2, got.Meta.UnmatchedCustom)
}

func TestReport_BalanceAndCashFlow(t *testing.T) {
	rows, cats := fixtures(t)

	out, err := run(t, "report", "balance", "--rows", rows, "--categories", cats)
	require.NoError(t, err)
	var bal models.Balance
	require.NoError(t, json.Unmarshal([]byte(out), &bal))
	assert.Equal(t, 499.5, bal.Data)

	out, err = run(t, "report", "cash-flow", "--rows", rows)
	require.NoError(t, err)
	var flow []models.CashFlowEntry
	require.NoError(t, json.Unmarshal([]byte(out), &flow))
	require.Len(t, flow, 2)
	assert.Equal(t, models.CashFlowEntry{Period: "2025-05", Income: 1000, Expense: 300.5, Net: 699.5}, flow[0])
	assert.Equal(t, "2025-06", flow[1].Period)

	_, err = run(t, "report", "cash-flow", "--rows", rows, "--period", "week")
	assert.Error(t, err)
}

func TestReport_AsOfMovesWindow(t *testing.T) {
	rows, cats := fixtures(t)

	out, err := run(t, "report", "forecast", "--rows", rows, "--categories", cats)
	require.NoError(t, err)
	var f models.ExpenseForecast
	require.NoError(t, json.Unmarshal([]byte(out), &f))
	assert.Positive(t, f.PeriodsAnalyzed)

	out, err = run(t, "report", "forecast", "--rows", rows, "--as-of", "2030-01-01")
	require.NoError(t, err)
	f = models.ExpenseForecast{}
	require.NoError(t, json.Unmarshal([]byte(out), &f))
	assert.Zero(t, f.PeriodsAnalyzed)

	_, err = run(t, "report", "forecast", "--rows", rows, "--as-of", "01.01.2030")
	assert.ErrorContains(t, err, "invalid --as-of")
}

func TestReport_Errors(t *testing.T) {
	rows, _ := fixtures(t)

	_, err := run(t, "report", "nope", "--rows", rows)
	assert.ErrorContains(t, err, "unknown report")

	_, err = run(t, "report", "balance")
	assert.Error(t, err)

	bad := writeFile(t, t.TempDir(), "rows.json", `{"sber": []}`)
	_, err = run(t, "report", "balance", "--rows", bad)
	assert.ErrorContains(t, err, `unknown source "sber"`)

	_, err = run(t, "report", "last-transactions", "--rows", rows, "--limit", "0")
	assert.ErrorContains(t, err, "--limit")
}

func TestGoal(t *testing.T) {
	dir := t.TempDir()
	contributions := writeFile(t, dir, "contributions.json", `[
	  {"userName": "anna", "currencyAmount": "-600"},
	  {"userName": "boris", "currencyAmount": "-400"}
	]`)
	rules := writeFile(t, dir, "rules.json", `[{"goalOperation": ">=", "goalRule": 2000}]`)

	out, err := run(t, "goal", "--contributions", contributions, "--rules", rules, "--abs")
	require.NoError(t, err)

	var s models.GoalSummary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 1000.0, s.CurrentValue)
	assert.Equal(t, 50.0, s.CompletionPercent)
	require.Len(t, s.Contributors, 2)
	assert.Equal(t, 60.0, s.Contributors[0].SharePercent)

	numeric := writeFile(t, dir, "numeric.json", `[
	  {"userName": "anna", "currencyAmount": -600},
	  {"userName": "boris", "currencyAmount": -400.0}
	]`)
	out, err = run(t, "goal", "--contributions", numeric, "--rules", rules, "--abs")
	require.NoError(t, err)
	s = models.GoalSummary{}
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 1000.0, s.CurrentValue)
	assert.Equal(t, 50.0, s.CompletionPercent)

	bad := writeFile(t, dir, "bad.json", `[{"userName": "anna", "currencyAmount": "n/a"}]`)
	_, err = run(t, "goal", "--contributions", bad, "--rules", rules)
	assert.ErrorIs(t, err, goals.ErrInvalidAmount)
}
