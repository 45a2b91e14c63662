// Package goals scores goal rules against the transactions linked to a goal.
//
// All sums and scores are computed on decimals and converted to float64 only
// when the summary is built.
package goals

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Dan9191/finance-service/internal/models"
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrUnknownOperation = errors.New("unknown goal operation")
)

// Operation is a goal rule operator.
type Operation string

const (
	OpAdd Operation = "+"
	OpSub Operation = "-"
	OpMul Operation = "*"
	OpDiv Operation = "/"
	OpEQ  Operation = "=="
	OpNE  Operation = "!="
	OpGT  Operation = ">"
	OpGE  Operation = ">="
	OpLT  Operation = "<"
	OpLE  Operation = "<="
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// ParseOperation validates an operator string. "=" is accepted as "==".
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.TrimSpace(s))
	if op == "=" {
		op = OpEQ
	}
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpEQ, OpNE, OpGT, OpGE, OpLT, OpLE:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// IsComparison reports whether the operator constrains completion.
func (op Operation) IsComparison() bool {
	switch op {
	case OpEQ, OpNE, OpGT, OpGE, OpLT, OpLE:
		return true
	}
	return false
}

// Score rates how well current satisfies "current op target".
// A score of 1 means the rule is met. Arithmetic operators are not scored.
func Score(op Operation, current, target decimal.Decimal) (decimal.Decimal, error) {
	if !op.IsComparison() {
		return decimal.Zero, fmt.Errorf("%w: %q is not a comparison", ErrUnknownOperation, op)
	}

	if target.IsZero() {
		switch op {
		case OpLT, OpLE:
			return one.Sub(current), nil
		case OpGT, OpGE:
			return one.Add(current), nil
		case OpEQ:
			if current.IsZero() {
				return one, nil
			}
			return one.Neg(), nil
		default:
			if !current.IsZero() {
				return one, nil
			}
			return decimal.Zero, nil
		}
	}

	switch op {
	case OpGT, OpGE:
		return current.Div(target), nil
	case OpLT, OpLE:
		if current.LessThanOrEqual(target) {
			return one, nil
		}
		return one.Sub(current.Sub(target).Div(target)), nil
	case OpEQ:
		return one.Sub(current.Sub(target).Abs().Div(target)), nil
	default:
		return current.Sub(target).Abs().Div(target), nil
	}
}

// ParseAmount parses a contributor amount. Empty or malformed values are errors.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// Evaluate computes the goal's current value, per-rule scores, completion and
// contributor breakdown. Completion is the minimum score over comparison rules;
// a goal without comparison rules has zero completion.
func Evaluate(transactions []models.ContributorTransaction, rules []models.GoalRule, useAbsAmounts bool) (*models.GoalSummary, error) {
	current := decimal.Zero
	byUser := make(map[string]decimal.Decimal)
	var order []string

	for _, tx := range transactions {
		amount, err := ParseAmount(tx.CurrencyAmount)
		if err != nil {
			return nil, fmt.Errorf("transaction %s/%d: %w", tx.TransactionSource, tx.TransactionID, err)
		}
		if useAbsAmounts {
			amount = amount.Abs()
		}
		current = current.Add(amount)

		if _, ok := byUser[tx.UserName]; !ok {
			order = append(order, tx.UserName)
		}
		byUser[tx.UserName] = byUser[tx.UserName].Add(amount)
	}

	summary := &models.GoalSummary{
		CurrentValue:     current.InexactFloat64(),
		TotalContributed: current.InexactFloat64(),
		Rules:            make([]models.RuleScore, 0, len(rules)),
		Contributors:     make([]models.ContributorShare, 0, len(order)),
	}

	var completion *decimal.Decimal
	for _, rule := range rules {
		op, err := ParseOperation(rule.GoalOperation)
		if err != nil {
			return nil, err
		}
		rs := models.RuleScore{
			GoalOperation: string(op),
			GoalRule:      rule.GoalRule.InexactFloat64(),
		}
		if op.IsComparison() {
			score, err := Score(op, current, rule.GoalRule)
			if err != nil {
				return nil, err
			}
			rs.Score = score.Round(4).InexactFloat64()
			rs.Scored = true
			if completion == nil || score.LessThan(*completion) {
				completion = &score
			}
		}
		summary.Rules = append(summary.Rules, rs)
	}
	if completion != nil {
		summary.CompletionRatio = completion.Round(4).InexactFloat64()
		summary.CompletionPercent = completion.Mul(hundred).Round(2).InexactFloat64()
	}

	sort.SliceStable(order, func(i, j int) bool {
		return byUser[order[i]].GreaterThan(byUser[order[j]])
	})
	for _, name := range order {
		amount := byUser[name]
		share := decimal.Zero
		if !current.IsZero() {
			share = amount.Div(current)
		}
		summary.Contributors = append(summary.Contributors, models.ContributorShare{
			UserName:     name,
			Amount:       amount.InexactFloat64(),
			Share:        share.Round(4).InexactFloat64(),
			SharePercent: share.Mul(hundred).Round(2).InexactFloat64(),
		})
	}

	return summary, nil
}
