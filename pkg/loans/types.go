package loans

import (
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/constants"
)

// LoanInputs describes a car loan after the down payment has been deducted.
type LoanInputs struct {
	Principal          float64
	AnnualInterestRate float64
	TenureYears        float64
}

// Strategy selects how a prepayment reshapes the loan.
type Strategy string

const (
	// StrategyReduceTenure keeps the installment fixed so prepayments shorten the payoff.
	StrategyReduceTenure Strategy = "reduce_tenure"

	// StrategyReduceEMI keeps the tenure fixed and lowers the installment after each prepayment.
	StrategyReduceEMI Strategy = "reduce_emi"
)

// IsValid reports whether the strategy is one of the supported values.
func (s Strategy) IsValid() bool {
	switch s {
	case StrategyReduceTenure, StrategyReduceEMI:
		return true
	}
	return false
}

// ValidStrategies returns all supported strategies.
func ValidStrategies() []Strategy {
	return []Strategy{StrategyReduceTenure, StrategyReduceEMI}
}

// PrepaymentPlan describes recurring or one-time extra principal payments.
// FrequencyMonths of constants.LumpSumFrequency means a single payment in the
// first month; otherwise the payment lands on every multiple of the frequency.
type PrepaymentPlan struct {
	Amount             float64
	FrequencyMonths    int
	Strategy           Strategy
	PenaltyRatePercent float64
}

// DueThisMonth reports whether the plan schedules a prepayment for the given
// one-based month.
func (p *PrepaymentPlan) DueThisMonth(month int) bool {
	if p == nil || p.Amount <= 0 {
		return false
	}
	if p.FrequencyMonths == constants.LumpSumFrequency {
		return month == 1
	}
	if p.FrequencyMonths < 0 {
		return false
	}
	return month%p.FrequencyMonths == 0
}

// AmortizationStep holds the values for a single simulated month. Values are
// unrounded; presentation layers round for display.
type AmortizationStep struct {
	Month            int     `json:"month"`
	EMIPaid          float64 `json:"emiPaid"`
	Interest         float64 `json:"interest"`
	Principal        float64 `json:"principal"`
	Prepayment       float64 `json:"prepayment,omitempty"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// Summary aggregates a simulated schedule.
type Summary struct {
	FinalTenureMonths   int
	TotalInterestPaid   float64
	TotalEMIPaid        float64
	TotalPrepaymentPaid float64

	// Truncated marks a run stopped by the safety cap or by an installment
	// too small to cover accrued interest. The schedule up to that point is
	// still returned.
	Truncated bool
}
