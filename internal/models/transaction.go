package models

import (
	"math"
	"sort"
)

// TransactionType indicates whether a transaction is an expense or income
type TransactionType string

const (
	Expense TransactionType = "expense"
	Income  TransactionType = "income"
)

// Transaction is the canonical record built from one spreadsheet row.
// Amount is always non-negative; the sign of the original value lives in Type.
// Date is a best-effort string (ISO-8601 when the source provides it).
type Transaction struct {
	ID          string          `json:"id"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	Date        string          `json:"date"`
	Merchant    string          `json:"merchant"`
}

// TransactionSet wraps a slice with filtering/aggregation methods
type TransactionSet struct {
	Transactions []Transaction
}

// NewTransactionSet creates a new TransactionSet from a slice
func NewTransactionSet(transactions []Transaction) *TransactionSet {
	return &TransactionSet{Transactions: transactions}
}

// Len returns the number of transactions
func (ts *TransactionSet) Len() int {
	return len(ts.Transactions)
}

// FilterByType returns transactions of the specified type
func (ts *TransactionSet) FilterByType(tt TransactionType) *TransactionSet {
	result := &TransactionSet{}
	for _, t := range ts.Transactions {
		if t.Type == tt {
			result.Transactions = append(result.Transactions, t)
		}
	}
	return result
}

// SumAmount returns the sum of all transaction amounts
func (ts *TransactionSet) SumAmount() float64 {
	var sum float64
	for _, t := range ts.Transactions {
		sum += t.Amount
	}
	return sum
}

// CategoryTotals returns a map of category -> total amount
func (ts *TransactionSet) CategoryTotals() map[string]float64 {
	result := make(map[string]float64)
	for _, t := range ts.Transactions {
		result[t.Category] += t.Amount
	}
	return result
}

// GroupByMerchant groups transactions by merchant, preserving the order in
// which each merchant first appears. Empty and "nan" merchants are skipped
// ("nan" is the stringified missing cell some exports carry).
func (ts *TransactionSet) GroupByMerchant() ([]string, map[string]*TransactionSet) {
	var order []string
	groups := make(map[string]*TransactionSet)
	for _, t := range ts.Transactions {
		if t.Merchant == "" || t.Merchant == "nan" {
			continue
		}
		if groups[t.Merchant] == nil {
			groups[t.Merchant] = &TransactionSet{}
			order = append(order, t.Merchant)
		}
		groups[t.Merchant].Transactions = append(groups[t.Merchant].Transactions, t)
	}
	return order, groups
}

// MaxDate returns the lexicographically largest date string in the set.
// Only behaves calendar-correctly for ISO-8601 dates; other formats compare
// as plain strings.
func (ts *TransactionSet) MaxDate() string {
	if len(ts.Transactions) == 0 {
		return ""
	}
	maxDate := ts.Transactions[0].Date
	for _, t := range ts.Transactions[1:] {
		if t.Date > maxDate {
			maxDate = t.Date
		}
	}
	return maxDate
}

// MeanAmount returns the arithmetic mean of amounts, 0 for an empty set
func (ts *TransactionSet) MeanAmount() float64 {
	if len(ts.Transactions) == 0 {
		return 0
	}
	return ts.SumAmount() / float64(len(ts.Transactions))
}

// StdDevAmount returns the population standard deviation of amounts
func (ts *TransactionSet) StdDevAmount() float64 {
	n := len(ts.Transactions)
	if n == 0 {
		return 0
	}
	mean := ts.MeanAmount()
	var sumSq float64
	for _, t := range ts.Transactions {
		d := t.Amount - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n))
}

// Categories returns a sorted list of unique categories
func (ts *TransactionSet) Categories() []string {
	catMap := make(map[string]bool)
	for _, t := range ts.Transactions {
		catMap[t.Category] = true
	}

	cats := make([]string, 0, len(catMap))
	for cat := range catMap {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}
