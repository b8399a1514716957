package store

import (
	"testing"

	"finsight/internal/models"
)

func TestNewSeedsGoals(t *testing.T) {
	s := New()

	goals := s.Goals()
	if len(goals) != 2 {
		t.Fatalf("got %d seeded goals, want 2", len(goals))
	}
	if goals[0].ID != "1" || goals[0].Title != "Emergency Fund" {
		t.Errorf("first goal = %q (%s), want Emergency Fund (1)", goals[0].Title, goals[0].ID)
	}
	if goals[1].ID != "2" || goals[1].Title != "Vacation to Japan" {
		t.Errorf("second goal = %q (%s), want Vacation to Japan (2)", goals[1].Title, goals[1].ID)
	}
}

func TestAddGoalAssignsCountBasedID(t *testing.T) {
	s := New()

	created := s.AddGoal(models.Goal{Title: "New Car", TargetAmount: 20000, TargetDate: "2026-01-01", GoalType: "savings"})
	if created.ID != "3" {
		t.Errorf("ID = %q, want %q", created.ID, "3")
	}

	next := s.AddGoal(models.Goal{Title: "House", TargetAmount: 90000, TargetDate: "2030-01-01", GoalType: "savings"})
	if next.ID != "4" {
		t.Errorf("ID = %q, want %q", next.ID, "4")
	}

	if len(s.Goals()) != 4 {
		t.Errorf("got %d goals, want 4", len(s.Goals()))
	}
}

func TestGoalByID(t *testing.T) {
	s := New()

	if goal, ok := s.GoalByID("2"); !ok || goal.Title != "Vacation to Japan" {
		t.Errorf("GoalByID(2) = %+v, %v", goal, ok)
	}
	if _, ok := s.GoalByID("999"); ok {
		t.Error("GoalByID(999) should not be found")
	}
}

func TestReplaceTransactionsIsFullReplacement(t *testing.T) {
	s := New()

	first := []models.Transaction{
		{ID: "1", Amount: 50, Category: "food", Type: models.Expense, Date: "2024-01-01"},
		{ID: "2", Amount: 20, Category: "transport", Type: models.Expense, Date: "2024-01-02"},
	}
	s.ReplaceTransactions(first, []models.SpendingInsight{{Category: "Food", TotalSpent: 50}}, true, nil)

	second := []models.Transaction{
		{ID: "1", Amount: 99, Category: "rent", Type: models.Expense, Date: "2024-02-01"},
	}
	s.ReplaceTransactions(second, []models.SpendingInsight{{Category: "Rent", TotalSpent: 99}}, true, nil)

	transactions := s.Transactions()
	if len(transactions) != 1 {
		t.Fatalf("got %d transactions after replacement, want 1 (no merge)", len(transactions))
	}
	if transactions[0].Category != "rent" {
		t.Errorf("Category = %q, want %q", transactions[0].Category, "rent")
	}
}

func TestReplaceTransactionsKeepsPriorSpendingWhenEmpty(t *testing.T) {
	s := New()

	expenses := []models.Transaction{
		{ID: "1", Amount: 50, Category: "food", Type: models.Expense, Date: "2024-01-01"},
	}
	s.ReplaceTransactions(expenses, []models.SpendingInsight{{Category: "Food", TotalSpent: 50}}, true, nil)

	// An income-only upload carries no spending snapshot: prior one stays
	incomeOnly := []models.Transaction{
		{ID: "1", Amount: 3000, Category: "income", Type: models.Income, Date: "2024-02-01"},
	}
	s.ReplaceTransactions(incomeOnly, nil, false, nil)

	spending := s.SpendingInsights()
	if len(spending) != 1 || spending[0].Category != "Food" {
		t.Errorf("spending = %+v, want prior Food snapshot preserved", spending)
	}
	if s.TransactionCount() != 1 {
		t.Errorf("TransactionCount = %d, want 1", s.TransactionCount())
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := New()
	s.ReplaceTransactions([]models.Transaction{{ID: "1", Amount: 50}}, nil, false, nil)

	got := s.Transactions()
	got[0].Amount = 999

	if s.Transactions()[0].Amount != 50 {
		t.Error("mutating the returned slice should not affect the store")
	}
}
