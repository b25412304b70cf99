// Package adapters provides conversions between configuration structures and
// the calculation packages' input types.
package adapters

import (
	"github.com/srivastava-utkarsh/car-loan-planner/internal/config"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/affordability"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/loans"
)

// LoanToInputs converts a config.LoanConfig to the simulator's input type.
// The principal is the car price less the down payment, clamped at 0.
func LoanToInputs(loan config.LoanConfig) loans.LoanInputs {
	return loans.LoanInputs{
		Principal:          loan.Principal(),
		AnnualInterestRate: loan.InterestRate,
		TenureYears:        loan.TenureYears,
	}
}

// PrepaymentToPlan converts a config.PrepaymentConfig to a simulator plan.
// A nil config yields a nil plan, which the simulator treats as no
// prepayments. An unknown strategy falls back to reducing the tenure.
func PrepaymentToPlan(prepayment *config.PrepaymentConfig) *loans.PrepaymentPlan {
	if prepayment == nil {
		return nil
	}

	strategy := loans.Strategy(prepayment.Strategy)
	if !strategy.IsValid() {
		strategy = loans.StrategyReduceTenure
	}

	return &loans.PrepaymentPlan{
		Amount:             prepayment.Amount,
		FrequencyMonths:    prepayment.FrequencyMonths,
		Strategy:           strategy,
		PenaltyRatePercent: prepayment.PenaltyRatePercent,
	}
}

// AffordabilityToInputs assembles the rule-check inputs from the loan figures,
// the computed installment, and the optional affordability section.
func AffordabilityToInputs(loan config.LoanConfig, emi float64, afford *config.AffordabilityConfig) affordability.Inputs {
	inputs := affordability.Inputs{
		CarPrice:    loan.CarPrice,
		DownPayment: loan.DownPayment,
		TenureYears: loan.TenureYears,
		EMI:         emi,
	}
	if afford != nil {
		inputs.MonthlyFuelCost = afford.FuelCost()
		inputs.IncludeFuel = afford.IncludeFuel
		inputs.MonthlyIncome = afford.MonthlyIncome
	}
	return inputs
}
