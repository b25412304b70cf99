package loans

import (
	"fmt"

	"github.com/srivastava-utkarsh/car-loan-planner/pkg/constants"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/mathutil"
	"go.uber.org/zap"
)

// Simulator generates month-by-month amortization schedules, optionally
// applying a prepayment plan.
type Simulator struct {
	logger *zap.Logger
}

// NewSimulator creates a new simulator instance.
func NewSimulator(logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{logger: logger}
}

// Simulate runs the amortization loop for the loan, applying the plan's
// prepayments when one is given. A nil plan produces the baseline schedule.
//
// Prepayments are subtracted from the balance before the month's interest
// accrues; that ordering matches common bank practice and changing it changes
// the numbers materially. The loop runs until the balance drops to
// constants.PayoffEpsilon or a safety cap of the nominal term plus
// constants.SafetyMarginMonths, whichever comes first, so it terminates even
// when the installment cannot cover accrued interest.
func (s *Simulator) Simulate(inputs LoanInputs, plan *PrepaymentPlan) (Summary, []AmortizationStep) {
	var summary Summary

	nominalMonths := NominalTermMonths(inputs.TenureYears)
	emi := CalculateEMI(inputs.Principal, inputs.AnnualInterestRate, inputs.TenureYears)
	if emi <= 0 {
		s.logger.Debug("degenerate loan inputs, returning empty schedule",
			zap.String("op", "loans.Simulate"),
			zap.Float64("principal", inputs.Principal),
			zap.Float64("rate", inputs.AnnualInterestRate),
			zap.Float64("tenureYears", inputs.TenureYears),
		)
		return summary, nil
	}

	balance := inputs.Principal
	cap := nominalMonths + constants.SafetyMarginMonths
	steps := make([]AmortizationStep, 0, nominalMonths)

	for month := 1; balance > constants.PayoffEpsilon; month++ {
		if month > cap {
			s.logger.Warn(fmt.Sprintf("amortization exceeded %d months, returning partial schedule", cap),
				zap.String("op", "loans.Simulate"),
				zap.Float64("remainingBalance", balance),
			)
			summary.Truncated = true
			break
		}

		prepayment := 0.0
		if plan.DueThisMonth(month) {
			prepayment = mathutil.Min(plan.Amount, balance)
			balance -= prepayment
			summary.TotalPrepaymentPaid += prepayment
			s.logger.Debug(fmt.Sprintf("month %d: applying prepayment %.2f", month, prepayment),
				zap.String("op", "loans.Simulate"),
			)

			if balance <= 0 {
				// The prepayment cleared the loan; record it so the schedule
				// still accounts for every unit of principal.
				balance = 0
				steps = append(steps, AmortizationStep{Month: month, Prepayment: prepayment})
				break
			}

			if plan.Strategy == StrategyReduceEMI {
				remaining := nominalMonths - month + 1
				emi = calculateEMIForTerm(balance, inputs.AnnualInterestRate, remaining)
			}
		}

		interest := CalculateInterestPayment(balance, inputs.AnnualInterestRate)
		if emi-interest <= 0 {
			s.logger.Warn("installment does not cover accrued interest, stopping",
				zap.String("op", "loans.Simulate"),
				zap.Int("month", month),
				zap.Float64("emi", emi),
				zap.Float64("interest", interest),
			)
			summary.Truncated = true
			break
		}

		principal := mathutil.Min(emi-interest, balance)
		emiPaid := emi
		if balance <= principal {
			// Final month; charge exactly what clears the balance.
			emiPaid = balance + interest
			principal = balance
		}
		balance -= principal

		steps = append(steps, AmortizationStep{
			Month:            month,
			EMIPaid:          emiPaid,
			Interest:         interest,
			Principal:        principal,
			Prepayment:       prepayment,
			RemainingBalance: balance,
		})
		summary.TotalInterestPaid += interest
		summary.TotalEMIPaid += emiPaid
	}

	summary.FinalTenureMonths = len(steps)
	return summary, steps
}
