// Package subscriptions scores merchants for recurring-payment likelihood.
// The detector is a single linear pass with a hand-tuned formula; like
// spending insights, its output is fully regenerated on every upload.
package subscriptions

import (
	"math"
	"strings"

	"finsight/internal/models"
)

// Merchant name fragments that suggest a subscription regardless of how
// many transactions the merchant has (lowercase)
var subscriptionKeywords = []string{
	"netflix", "spotify", "adobe",
	"gym", "fitness", "subscription",
}

const (
	keywordBonus  = 0.3
	minConfidence = 0.5
	maxConfidence = 0.95
)

// Detect groups all transactions (both types) by merchant and emits a
// subscription entry for every eligible group, in first-seen merchant
// order. A group is eligible with two or more transactions, or with a
// keyword match on the merchant name alone.
func Detect(transactions []models.Transaction) []models.Subscription {
	order, groups := models.NewTransactionSet(transactions).GroupByMerchant()

	subscriptions := make([]models.Subscription, 0, len(order))
	for _, merchant := range order {
		group := groups[merchant]
		keywordMatch := containsKeyword(merchant)

		if group.Len() < 2 && !keywordMatch {
			continue
		}

		mean := group.MeanAmount()

		// A zero mean makes the consistency ratio meaningless; treat it
		// as maximally inconsistent so confidence lands on the floor.
		ratio := 1.0
		if mean > 0 {
			ratio = group.StdDevAmount() / mean
		}

		confidence := 1.0 - ratio
		if keywordMatch {
			confidence += keywordBonus
		}
		confidence = math.Min(maxConfidence, math.Max(minConfidence, confidence))

		subscriptions = append(subscriptions, models.Subscription{
			Merchant:        merchant,
			Amount:          round2(mean),
			Frequency:       "monthly", // reported regardless of actual cadence
			LastTransaction: group.MaxDate(),
			ConfidenceScore: round2(confidence),
			Category:        "subscription",
		})
	}

	return subscriptions
}

func containsKeyword(merchant string) bool {
	lower := strings.ToLower(merchant)
	for _, kw := range subscriptionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
