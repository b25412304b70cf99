// Package optimization provides shared data structures for solver results.
package optimization

// Summary captures the result of a prepayment solver run.
type Summary struct {
	TargetMonths    int      `json:"targetMonths"`
	AchievedMonths  int      `json:"achievedMonths"`
	Amount          float64  `json:"amount"`
	FrequencyMonths int      `json:"frequencyMonths"`
	Iterations      int      `json:"iterations"`
	Converged       bool     `json:"converged"`
	Notes           []string `json:"notes,omitempty"`
	AmountDisplay   string   `json:"amountDisplay,omitempty"`
}
