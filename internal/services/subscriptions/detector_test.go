package subscriptions

import (
	"testing"

	"finsight/internal/models"
)

func txn(merchant, date string, amount float64) models.Transaction {
	return models.Transaction{
		Merchant: merchant,
		Date:     date,
		Amount:   amount,
		Type:     models.Expense,
	}
}

func TestDetectKeywordMerchantSingleTransaction(t *testing.T) {
	// One Netflix transaction: keyword-eligible despite the count
	result := Detect([]models.Transaction{txn("Netflix", "2024-01-05", 15)})

	if len(result) != 1 {
		t.Fatalf("got %d subscriptions, want 1", len(result))
	}

	sub := result[0]
	if sub.Merchant != "Netflix" {
		t.Errorf("Merchant = %q, want %q", sub.Merchant, "Netflix")
	}
	if sub.Amount != 15 {
		t.Errorf("Amount = %v, want 15", sub.Amount)
	}
	// Perfect consistency plus the keyword bonus clamps to the ceiling
	if sub.ConfidenceScore != 0.95 {
		t.Errorf("ConfidenceScore = %v, want 0.95", sub.ConfidenceScore)
	}
	if sub.Frequency != "monthly" {
		t.Errorf("Frequency = %q, want %q", sub.Frequency, "monthly")
	}
	if sub.Category != "subscription" {
		t.Errorf("Category = %q, want %q", sub.Category, "subscription")
	}
}

func TestDetectEligibility(t *testing.T) {
	tests := []struct {
		name         string
		transactions []models.Transaction
		wantMerchant []string
	}{
		{
			name:         "single non-keyword merchant is skipped",
			transactions: []models.Transaction{txn("Corner Cafe", "2024-01-05", 8.50)},
			wantMerchant: nil,
		},
		{
			name: "two transactions make any merchant eligible",
			transactions: []models.Transaction{
				txn("Corner Cafe", "2024-01-05", 8.50),
				txn("Corner Cafe", "2024-02-05", 8.50),
			},
			wantMerchant: []string{"Corner Cafe"},
		},
		{
			name: "keyword match is case-insensitive substring",
			transactions: []models.Transaction{
				txn("CITY GYM MEMBERSHIP", "2024-01-05", 40),
			},
			wantMerchant: []string{"CITY GYM MEMBERSHIP"},
		},
		{
			name: "empty and nan merchants are ignored",
			transactions: []models.Transaction{
				txn("", "2024-01-05", 10),
				txn("", "2024-02-05", 10),
				txn("nan", "2024-01-05", 10),
				txn("nan", "2024-02-05", 10),
			},
			wantMerchant: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Detect(tt.transactions)
			if len(result) != len(tt.wantMerchant) {
				t.Fatalf("got %d subscriptions, want %d", len(result), len(tt.wantMerchant))
			}
			for i, want := range tt.wantMerchant {
				if result[i].Merchant != want {
					t.Errorf("subscription %d merchant = %q, want %q", i, result[i].Merchant, want)
				}
			}
		})
	}
}

func TestDetectConfidenceBounds(t *testing.T) {
	tests := []struct {
		name         string
		transactions []models.Transaction
	}{
		{
			name: "identical amounts",
			transactions: []models.Transaction{
				txn("Acme", "2024-01-05", 9.99),
				txn("Acme", "2024-02-05", 9.99),
			},
		},
		{
			name: "wildly varying amounts",
			transactions: []models.Transaction{
				txn("Acme", "2024-01-05", 1),
				txn("Acme", "2024-02-05", 500),
			},
		},
		{
			name: "zero mean drives confidence to the floor",
			transactions: []models.Transaction{
				txn("Acme", "2024-01-05", 0),
				txn("Acme", "2024-02-05", 0),
			},
		},
		{
			name: "keyword bonus on noisy amounts",
			transactions: []models.Transaction{
				txn("Spotify", "2024-01-05", 5),
				txn("Spotify", "2024-02-05", 50),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Detect(tt.transactions)
			if len(result) != 1 {
				t.Fatalf("got %d subscriptions, want 1", len(result))
			}
			score := result[0].ConfidenceScore
			if score < 0.5 || score > 0.95 {
				t.Errorf("ConfidenceScore = %v, want within [0.5, 0.95]", score)
			}
		})
	}
}

func TestDetectZeroMeanHitsFloor(t *testing.T) {
	result := Detect([]models.Transaction{
		txn("Acme", "2024-01-05", 0),
		txn("Acme", "2024-02-05", 0),
	})

	if len(result) != 1 {
		t.Fatalf("got %d subscriptions, want 1", len(result))
	}
	if result[0].ConfidenceScore != 0.5 {
		t.Errorf("ConfidenceScore = %v, want the 0.5 floor", result[0].ConfidenceScore)
	}
}

func TestDetectMeanAmount(t *testing.T) {
	result := Detect([]models.Transaction{
		txn("Acme", "2024-01-05", 10),
		txn("Acme", "2024-02-05", 20),
	})

	if len(result) != 1 {
		t.Fatalf("got %d subscriptions, want 1", len(result))
	}
	if result[0].Amount != 15 {
		t.Errorf("Amount = %v, want the mean 15", result[0].Amount)
	}
}

func TestDetectLastTransactionIsLexicographicMax(t *testing.T) {
	result := Detect([]models.Transaction{
		txn("Netflix", "2024-03-05", 15.99),
		txn("Netflix", "2024-01-05", 15.99),
		txn("Netflix", "2024-02-05", 15.99),
	})

	if len(result) != 1 {
		t.Fatalf("got %d subscriptions, want 1", len(result))
	}
	if result[0].LastTransaction != "2024-03-05" {
		t.Errorf("LastTransaction = %q, want %q", result[0].LastTransaction, "2024-03-05")
	}
}

func TestDetectFirstSeenOrder(t *testing.T) {
	result := Detect([]models.Transaction{
		txn("Spotify", "2024-01-02", 9.99),
		txn("Netflix", "2024-01-05", 15.99),
		txn("Spotify", "2024-02-02", 9.99),
		txn("Netflix", "2024-02-05", 15.99),
	})

	if len(result) != 2 {
		t.Fatalf("got %d subscriptions, want 2", len(result))
	}
	if result[0].Merchant != "Spotify" || result[1].Merchant != "Netflix" {
		t.Errorf("order = [%q, %q], want first-seen [Spotify, Netflix]",
			result[0].Merchant, result[1].Merchant)
	}
}
