package models

// ConditionRule is a text pattern tested against a transaction.
// Exact rules compare whole field values; the rest are substring searches.
type ConditionRule struct {
	ID             int64  `json:"id,omitempty"`
	ConditionValue string `json:"conditionValue"`
	IsExact        bool   `json:"isExact"`
}

// CategoryDefinition is a user-defined category with its ordered rules.
type CategoryDefinition struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"userID,omitempty"`
	CategoryName string          `json:"categoryName"`
	Conditions   []ConditionRule `json:"categoryConditions"`
}

// CategoryStats aggregates the transactions resolved into one category.
type CategoryStats struct {
	TransactionsCount int     `json:"transactionsCount"`
	AmountSum         float64 `json:"amountSum"`
}

// CategoryCatalogEntry is a category definition together with its stats.
type CategoryCatalogEntry struct {
	CategoryDefinition
	Stats CategoryStats `json:"stats"`
}

// ConditionUpdate changes an existing rule.
type ConditionUpdate struct {
	ConditionID    int64  `json:"conditionID"`
	ConditionValue string `json:"conditionValue"`
	IsExact        bool   `json:"isExact"`
}

// CategoryUpdate is a partial update of a category; nil fields are left unchanged.
type CategoryUpdate struct {
	CategoryName *string           `json:"categoryName"`
	Conditions   []ConditionUpdate `json:"conditionValues"`
}
