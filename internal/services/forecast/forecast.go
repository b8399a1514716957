// Package forecast projects savings-goal timelines from a goal's amounts
// and the time remaining until its target date.
package forecast

import (
	"fmt"
	"math"
	"strings"
	"time"

	"finsight/internal/models"
)

// likelyProgressThreshold is the progress percentage above which a goal is
// called "likely"; the threshold ignores time remaining.
const likelyProgressThreshold = 30.0

// Project builds the forecast for a goal. Spending insights and
// subscriptions from the latest snapshot feed the recommendation list.
// now is injected so projections are reproducible in tests.
func Project(goal models.Goal, spending []models.SpendingInsight, subscriptions []models.Subscription, now time.Time) models.GoalForecast {
	progress := goal.CurrentAmount / goal.TargetAmount * 100
	remaining := goal.TargetAmount - goal.CurrentAmount

	monthsRemaining := monthsUntil(goal.TargetDate, now)
	monthlyRequired := remaining / float64(monthsRemaining)

	likelihood := "unlikely"
	if progress > likelyProgressThreshold {
		likelihood = "likely"
	}

	recommendations := []string{
		fmt.Sprintf("Save $%.2f per month to reach your goal", monthlyRequired),
	}
	if len(spending) > 0 && spending[0].TotalSpent > 100 {
		recommendations = append(recommendations,
			fmt.Sprintf("Consider reducing %s spending by 20%%", strings.ToLower(spending[0].Category)))
	}
	if len(subscriptions) > 0 {
		recommendations = append(recommendations,
			"Review subscription services for potential savings")
	}

	return models.GoalForecast{
		GoalID:          goal.ID,
		CurrentProgress: round1(progress),
		MonthlyRequired: round2(monthlyRequired),
		Likelihood:      likelihood,
		MonthsRemaining: monthsRemaining,
		Recommendations: recommendations,
	}
}

// monthsUntil converts the calendar days until the target date into whole
// 30-day months, clamped to at least 1. Past dates and dates that fail to
// parse both clamp to 1, so a forecast always renders.
func monthsUntil(targetDate string, now time.Time) int {
	target, err := time.Parse("2006-01-02", targetDate)
	if err != nil {
		return 1
	}

	days := int(math.Floor(target.Sub(now).Hours() / 24))
	months := days / 30
	if months < 1 {
		months = 1
	}
	return months
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
