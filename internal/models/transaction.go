package models

import (
	"encoding/json"
	"time"
)

// OtherOperations is the category assigned when neither a custom rule nor the bank provided one.
const OtherOperations = "Прочие операции"

// DateLayout is the ISO calendar date layout used on the wire.
const DateLayout = "2006-01-02"

// RawRecord is a loosely typed row as read from a bank source table or an export file.
type RawRecord map[string]any

// Date is a calendar date that may be absent. The zero value means "no date".
type Date struct {
	time.Time
}

// NewDate returns a Date truncated to midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the clock part of t.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Valid reports whether the date is present.
func (d Date) Valid() bool {
	return !d.IsZero()
}

// String formats the date as YYYY-MM-DD, or "" when absent.
func (d Date) String() string {
	if !d.Valid() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON encodes the date as an ISO string or null.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON accepts an ISO date string or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return err
	}
	*d = Date{Time: t}
	return nil
}

// Transaction is the canonical transaction shape shared by every bank source.
// CurrencyAmount is signed: positive is income, negative is expense.
type Transaction struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"userID"`
	Source         string  `json:"source"`
	FileName       string  `json:"fileName,omitempty"`
	OperationDate  Date    `json:"operationDate"`
	PostingDate    Date    `json:"postingDate"`
	Code           string  `json:"code,omitempty"`
	BankCategory   string  `json:"bankCategory,omitempty"`
	CustomCategory string  `json:"customCategory,omitempty"`
	Category       string  `json:"category"`
	Description    string  `json:"description,omitempty"`
	Description2   string  `json:"description2,omitempty"`
	CurrencyAmount float64 `json:"currencyAmount"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status,omitempty"`
}

// MatchField names a free-text transaction field that category rules are tested against.
type MatchField string

const (
	FieldDescription  MatchField = "description"
	FieldDescription2 MatchField = "description2"
	FieldCode         MatchField = "code"
)

// DefaultMatchFields is the field order used when the caller does not pass one.
var DefaultMatchFields = []MatchField{FieldDescription, FieldDescription2, FieldCode}

// Field returns the value of a match field, or "" for an unknown field.
func (t Transaction) Field(f MatchField) string {
	switch f {
	case FieldDescription:
		return t.Description
	case FieldDescription2:
		return t.Description2
	case FieldCode:
		return t.Code
	default:
		return ""
	}
}

// ManualTransaction is a user-entered transaction.
type ManualTransaction struct {
	OperationDate  Date    `json:"operationDate"`
	Description    string  `json:"description"`
	CurrencyAmount float64 `json:"currencyAmount"`
}
