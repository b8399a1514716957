package models

// SpendingInsight is a per-category spending summary, fully recomputed from
// the current transaction set whenever it changes. Trend is a static
// threshold label on this snapshot, not a time-series comparison.
type SpendingInsight struct {
	Category          string  `json:"category"`
	TotalSpent        float64 `json:"total_spent"`
	PercentageOfTotal float64 `json:"percentage_of_total"`
	Trend             string  `json:"trend"` // "increasing" or "decreasing"
}

// Subscription is a merchant heuristically scored as a recurring payment
type Subscription struct {
	Merchant        string  `json:"merchant"`
	Amount          float64 `json:"amount"` // mean of the group's amounts
	Frequency       string  `json:"frequency"`
	LastTransaction string  `json:"last_transaction"`
	ConfidenceScore float64 `json:"confidence_score"` // within [0.5, 0.95]
	Category        string  `json:"category"`
}

// AnalyticsSummary is the roll-up served by /api/analytics/summary.
// TopExpenseCategory is null when there are no spending insights.
type AnalyticsSummary struct {
	TotalIncome        float64 `json:"total_income"`
	TotalExpenses      float64 `json:"total_expenses"`
	NetIncome          float64 `json:"net_income"`
	TransactionCount   int     `json:"transaction_count"`
	TopExpenseCategory *string `json:"top_expense_category"`
	GoalsCount         int     `json:"goals_count"`
	SubscriptionsCount int     `json:"subscriptions_count"`
}
