// Package insights aggregates transactions into per-category spending
// summaries. Insights are derived data: fully recomputed from the current
// transaction set on every upload, never incrementally updated.
package insights

import (
	"math"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"finsight/internal/models"
)

// trendThreshold is the share of total spending above which a category is
// labeled "increasing". The label is a snapshot heuristic, not a real
// time-series trend.
const trendThreshold = 20.0

// Generate computes spending insights from the given transactions. The
// second return value is false when the set contains no expenses; callers
// must then leave their prior insights untouched rather than clearing them.
func Generate(transactions []models.Transaction) ([]models.SpendingInsight, bool) {
	expenses := models.NewTransactionSet(transactions).FilterByType(models.Expense)
	if expenses.Len() == 0 {
		return nil, false
	}

	categoryTotals := expenses.CategoryTotals()
	totalExpenses := expenses.SumAmount()

	// Title-case the lowercase aggregation keys for display
	titler := cases.Title(language.English)

	result := make([]models.SpendingInsight, 0, len(categoryTotals))
	for category, total := range categoryTotals {
		var percentage float64
		if totalExpenses > 0 {
			percentage = total / totalExpenses * 100
		}

		trend := "decreasing"
		if percentage > trendThreshold {
			trend = "increasing"
		}

		result = append(result, models.SpendingInsight{
			Category:          titler.String(category),
			TotalSpent:        round2(total),
			PercentageOfTotal: round1(percentage),
			Trend:             trend,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSpent > result[j].TotalSpent
	})

	return result, true
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
