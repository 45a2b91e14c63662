// Package category assigns user-defined categories to normalized transactions.
//
// Categories are scanned in catalog order and rules in their stored order; the
// first rule that matches wins. There is no longest-match or priority scheme.
package category

import (
	"strings"

	"github.com/Dan9191/finance-service/internal/models"
)

// haystackSeparator joins match-field values for substring rules.
const haystackSeparator = " | "

// Resolve categorizes transactions against the catalog. The inputs are not
// modified; a new slice is returned. A match on a category with a blank name
// counts as no match. When matchFields is empty the default
// description, description2, code order is used.
func Resolve(transactions []models.Transaction, categories []models.CategoryDefinition, matchFields ...models.MatchField) ([]models.Transaction, models.ResolveStats) {
	if len(matchFields) == 0 {
		matchFields = models.DefaultMatchFields
	}

	out := make([]models.Transaction, 0, len(transactions))
	matched := 0
	for _, tx := range transactions {
		if name, ok := match(tx, categories, matchFields); ok && name != "" {
			tx.CustomCategory = name
			tx.Category = name
			matched++
		} else {
			tx.CustomCategory = ""
			tx.Category = tx.BankCategory
			if tx.Category == "" {
				tx.Category = models.OtherOperations
			}
		}
		out = append(out, tx)
	}

	fields := make([]models.MatchField, len(matchFields))
	copy(fields, matchFields)
	return out, models.ResolveStats{
		Total:           len(out),
		MatchedCustom:   matched,
		UnmatchedCustom: len(out) - matched,
		MatchFields:     fields,
	}
}

func match(tx models.Transaction, categories []models.CategoryDefinition, matchFields []models.MatchField) (string, bool) {
	values := make([]string, 0, len(matchFields))
	nonEmpty := make([]string, 0, len(matchFields))
	for _, f := range matchFields {
		v := strings.TrimSpace(tx.Field(f))
		values = append(values, v)
		if v != "" {
			nonEmpty = append(nonEmpty, v)
		}
	}
	haystack := strings.Join(nonEmpty, haystackSeparator)

	for _, c := range categories {
		for _, rule := range c.Conditions {
			if ruleMatches(rule, values, haystack) {
				return strings.TrimSpace(c.CategoryName), true
			}
		}
	}
	return "", false
}

func ruleMatches(rule models.ConditionRule, values []string, haystack string) bool {
	needle := strings.TrimSpace(rule.ConditionValue)
	if needle == "" {
		return false
	}
	if !rule.IsExact {
		return strings.Contains(haystack, needle)
	}
	for _, v := range values {
		if v == needle {
			return true
		}
	}
	return false
}
