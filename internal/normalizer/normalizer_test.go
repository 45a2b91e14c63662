package normalizer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Dan9191/finance-service/internal/models"
)

func TestNormalize_AlfaRow(t *testing.T) {
	raw := models.RawRecord{
		"id":             int64(7),
		"userID":         int64(3),
		"fileName":       "alfa_2025.xlsx",
		"operationDate":  time.Date(2025, 11, 3, 14, 30, 0, 0, time.UTC),
		"postingDate":    "05.11.2025",
		"code":           " 5300448365 ",
		"category":       "Супермаркеты",
		"description":    "PYATEROCHKA 1234",
		"currencyAmount": "-1 234,50",
		"status":         "Выполнен",
	}

	tx := Normalize(models.SourceAlfa, raw)

	assert.Equal(t, int64(7), tx.ID)
	assert.Equal(t, int64(3), tx.UserID)
	assert.Equal(t, "alfa", tx.Source)
	assert.Equal(t, "2025-11-03", tx.OperationDate.String())
	assert.Equal(t, "2025-11-05", tx.PostingDate.String())
	assert.Equal(t, "5300448365", tx.Code)
	assert.Equal(t, "Супермаркеты", tx.BankCategory)
	assert.Equal(t, "Супермаркеты", tx.Category)
	assert.Empty(t, tx.CustomCategory)
	assert.InDelta(t, -1234.50, tx.CurrencyAmount, 1e-9)
}

func TestNormalize_DegradesMalformedFields(t *testing.T) {
	raw := models.RawRecord{
		"operationDate":  "not a date",
		"currencyAmount": "abc",
		"amount":         nil,
	}

	tx := Normalize(models.SourceTinkoff, raw)

	assert.False(t, tx.OperationDate.Valid())
	assert.Equal(t, 0.0, tx.CurrencyAmount)
	assert.Equal(t, 0.0, tx.Amount)
	assert.Empty(t, tx.Category)
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in   any
		want float64
	}{
		{-12.5, -12.5},
		{float32(2.5), 2.5},
		{int64(100), 100},
		{"+1 500,00 ₽", 1500},
		{"-300.25", -300.25},
		{[]byte("42"), 42},
		{json.Number("-7.5"), -7.5},
		{"", 0},
		{nil, 0},
		{struct{}{}, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Amount(tt.in), 1e-9, "Amount(%v)", tt.in)
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"2025-12-01", "2025-12-01"},
		{"01.12.2025", "2025-12-01"},
		{"01.12.25", "2025-12-01"},
		{"2025-12-01 10:11:12", "2025-12-01"},
		{"HOLD", ""},
		{"", ""},
		{nil, ""},
		{42, ""},
		{time.Time{}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Date(tt.in).String(), "Date(%v)", tt.in)
	}
}

func TestNormalizeAll_KeepsOrder(t *testing.T) {
	rows := []models.RawRecord{{"id": 1}, {"id": 2}, {"id": 3}}
	txs := NormalizeAll(models.SourceAlfa, rows)
	assert.Len(t, txs, 3)
	for i, tx := range txs {
		assert.Equal(t, int64(i+1), tx.ID)
	}
}
