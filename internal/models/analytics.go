package models

// StatusSuccess marks a report that was computed, possibly over no data.
const StatusSuccess = "success"

// Balance is the signed sum of all transactions
type Balance struct {
	Data float64 `json:"data"`
}

// CashFlowEntry represents income and expense for one period bucket
type CashFlowEntry struct {
	Period  string  `json:"period"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// CategoryShare is a category's part of total income or expense
type CategoryShare struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Percent  float64 `json:"percent"`
}

// ExpenseDistribution is the donut structure of expenses by category
type ExpenseDistribution struct {
	Status string                  `json:"status"`
	Data   []CategoryShare         `json:"data"`
	Meta   ExpenseDistributionMeta `json:"meta"`
}

type ExpenseDistributionMeta struct {
	TotalExpense float64       `json:"totalExpense"`
	Categories   int           `json:"categories"`
	ServiceMeta  *ResolveStats `json:"serviceMeta,omitempty"`
}

// IncomeDistribution is the donut structure of income by category
type IncomeDistribution struct {
	Status string                 `json:"status"`
	Data   []CategoryShare        `json:"data"`
	Meta   IncomeDistributionMeta `json:"meta"`
}

type IncomeDistributionMeta struct {
	TotalIncome float64       `json:"totalIncome"`
	Categories  int           `json:"categories"`
	ServiceMeta *ResolveStats `json:"serviceMeta,omitempty"`
}

// ResolveStats describes a categorization pass
type ResolveStats struct {
	Total           int          `json:"total"`
	MatchedCustom   int          `json:"matchedCustom"`
	UnmatchedCustom int          `json:"unmatchedCustom"`
	MatchFields     []MatchField `json:"matchFields"`
}

// CategorizedTransactions is the envelope returned for transaction listings
type CategorizedTransactions struct {
	Status string        `json:"status"`
	Data   []Transaction `json:"data"`
	Meta   ResolveStats  `json:"meta"`
}

// Anomaly holds the single most atypical expense, if any
type Anomaly struct {
	Status    bool         `json:"status"`
	Data      *Transaction `json:"data,omitempty"`
	Score     float64      `json:"score,omitempty"`
	Threshold float64      `json:"threshold,omitempty"`
}

// HabitCost is the trailing-window spend of a recurring expense category
type HabitCost struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Occurrences int     `json:"occurrences"`
}

// FinancialProfile is a descriptive, rule-based profile of a user's spending
type FinancialProfile struct {
	ProfileSummary       string   `json:"profileSummary"`
	SpendingStyle        string   `json:"spendingStyle"`
	RiskLevel            string   `json:"riskLevel"`
	TopCategories        []string `json:"topCategories"`
	IncomeToExpenseRatio float64  `json:"incomeToExpenseRatio"`
	Recommendations      []string `json:"recommendations"`
}

// LiteracyScore is the 0-100 financial literacy index and its tier
type LiteracyScore struct {
	Score    int    `json:"score"`
	Category string `json:"category"`
}

// ExpenseForecast is the next-month total expense forecast
type ExpenseForecast struct {
	ForecastAmount  float64 `json:"forecastAmount"`
	Confidence      string  `json:"confidence"`
	PeriodsAnalyzed int     `json:"periodsAnalyzed"`
	Message         string  `json:"message"`
}

// CategoryForecast is the next-month expense forecast per category
type CategoryForecast struct {
	ForecastByCategory map[string]float64 `json:"forecastByCategory"`
	TotalForecast      float64            `json:"totalForecast"`
	Confidence         string             `json:"confidence"`
	Message            string             `json:"message"`
}

// Digest is the monthly summary mailed to a user
type Digest struct {
	Username string          `json:"username"`
	Email    string          `json:"email"`
	AsOf     Date            `json:"asOf"`
	Forecast ExpenseForecast `json:"forecast"`
	Anomaly  Anomaly         `json:"anomaly"`
}
