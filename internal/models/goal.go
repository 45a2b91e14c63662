package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Goal is a named target shared by one or more owners.
type Goal struct {
	ID       int64      `json:"id"`
	GoalName string     `json:"goalName"`
	OwnerIDs []int64    `json:"owners"`
	Rules    []GoalRule `json:"rules"`
}

// GoalRule compares the goal's current value against a target.
type GoalRule struct {
	ID            int64           `json:"id,omitempty"`
	GoalOperation string          `json:"goalOperation"`
	GoalRule      decimal.Decimal `json:"goalRule"`
}

// ContributorTransaction is a transaction linked to a goal by a contributing user.
// CurrencyAmount is kept as text so the evaluator can reject malformed values.
type ContributorTransaction struct {
	GoalID            int64  `json:"goalID"`
	TransactionID     int64  `json:"transactionID"`
	TransactionSource string `json:"transactionSource"`
	ContributorUserID int64  `json:"contributorUserID"`
	UserName          string `json:"userName"`
	CurrencyAmount    string `json:"currencyAmount"`
}

// UnmarshalJSON accepts currencyAmount as a JSON string or number and keeps
// its text unchanged.
func (c *ContributorTransaction) UnmarshalJSON(data []byte) error {
	type plain ContributorTransaction
	var aux struct {
		*plain
		CurrencyAmount json.RawMessage `json:"currencyAmount"`
	}
	aux.plain = (*plain)(c)
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	raw := bytes.TrimSpace(aux.CurrencyAmount)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		c.CurrencyAmount = ""
	case raw[0] == '"':
		if err := json.Unmarshal(raw, &c.CurrencyAmount); err != nil {
			return err
		}
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return fmt.Errorf("currencyAmount: %w", err)
		}
		c.CurrencyAmount = n.String()
	}
	return nil
}

// GoalSummary is the evaluated state of a goal.
type GoalSummary struct {
	CurrentValue      float64            `json:"currentValue"`
	TotalContributed  float64            `json:"totalContributed"`
	CompletionRatio   float64            `json:"completionRatio"`
	CompletionPercent float64            `json:"completionPercent"`
	Rules             []RuleScore        `json:"rules"`
	Contributors      []ContributorShare `json:"contributors"`
}

// RuleScore is the score of a single rule. Scored is false for arithmetic operators,
// which do not constrain completion.
type RuleScore struct {
	GoalOperation string  `json:"goalOperation"`
	GoalRule      float64 `json:"goalRule"`
	Score         float64 `json:"score"`
	Scored        bool    `json:"scored"`
}

// ContributorShare is one contributor's part of the goal.
type ContributorShare struct {
	UserName     string  `json:"userName"`
	Amount       float64 `json:"amount"`
	Share        float64 `json:"share"`
	SharePercent float64 `json:"sharePercent"`
}
