// Package store holds the process-wide mutable state: the current
// transaction set, the goals, and the derived insight snapshots. Nothing
// here survives a restart.
//
// A single RWMutex guards everything. That is a deliberate serialization
// point, not a scalability feature: requests mutate and read one shared
// structure, and the lock is what keeps a concurrent upload and read from
// tearing each other.
package store

import (
	"strconv"
	"sync"

	"finsight/internal/models"
)

// Store is the in-memory application state
type Store struct {
	mu            sync.RWMutex
	transactions  []models.Transaction
	goals         []models.Goal
	spending      []models.SpendingInsight
	subscriptions []models.Subscription
}

// New creates a Store seeded with the two starter goals
func New() *Store {
	return &Store{
		goals: []models.Goal{
			{
				ID:            "1",
				Title:         "Emergency Fund",
				TargetAmount:  5000,
				CurrentAmount: 1200,
				TargetDate:    "2024-12-31",
				GoalType:      "savings",
			},
			{
				ID:            "2",
				Title:         "Vacation to Japan",
				TargetAmount:  3000,
				CurrentAmount: 800,
				TargetDate:    "2024-10-15",
				GoalType:      "savings",
			},
		},
	}
}

// ReplaceTransactions swaps in a freshly processed upload: the new
// transaction set replaces the prior one entirely (no merge), together
// with its regenerated subscriptions. Spending insights are replaced only
// when haveSpending is true; an upload with no expenses leaves the prior
// spending snapshot untouched.
func (s *Store) ReplaceTransactions(transactions []models.Transaction, spending []models.SpendingInsight, haveSpending bool, subscriptions []models.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = transactions
	if haveSpending {
		s.spending = spending
	}
	s.subscriptions = subscriptions
}

// Transactions returns a copy of the current transaction set
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Transaction{}, s.transactions...)
}

// TransactionCount returns the size of the current transaction set
func (s *Store) TransactionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions)
}

// SpendingInsights returns a copy of the current spending snapshot
func (s *Store) SpendingInsights() []models.SpendingInsight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SpendingInsight{}, s.spending...)
}

// Subscriptions returns a copy of the current subscription snapshot
func (s *Store) Subscriptions() []models.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Subscription{}, s.subscriptions...)
}

// Goals returns a copy of all goals
func (s *Store) Goals() []models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Goal{}, s.goals...)
}

// GoalByID looks up a goal by its id
func (s *Store) GoalByID(id string) (models.Goal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.goals {
		if g.ID == id {
			return g, true
		}
	}
	return models.Goal{}, false
}

// AddGoal appends a goal, assigning the next count-based id. Ids are not
// collision-safe if goals were ever deleted; they never are in this system.
func (s *Store) AddGoal(goal models.Goal) models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal.ID = strconv.Itoa(len(s.goals) + 1)
	s.goals = append(s.goals, goal)
	return goal
}
