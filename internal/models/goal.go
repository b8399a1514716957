package models

// Goal is a savings goal. Two goals are seeded at startup; more are appended
// via the API. Goals are never mutated or deleted after creation.
type Goal struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	TargetDate    string  `json:"target_date"`
	GoalType      string  `json:"goal_type"`
}

// GoalForecast projects a goal's completion from its amounts and time left
type GoalForecast struct {
	GoalID          string   `json:"goal_id"`
	CurrentProgress float64  `json:"current_progress"`
	MonthlyRequired float64  `json:"monthly_required"`
	Likelihood      string   `json:"likelihood"`
	MonthsRemaining int      `json:"months_remaining"`
	Recommendations []string `json:"recommendations"`
}
