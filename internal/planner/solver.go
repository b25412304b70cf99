package planner

import (
	"fmt"
	"math"

	"github.com/srivastava-utkarsh/car-loan-planner/internal/config"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/format"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/loans"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/optimization"
	"go.uber.org/zap"
)

// SolvePrepaymentForTenure searches for the smallest prepayment amount that
// clears the loan within targetMonths, paying every frequencyMonths (0 for a
// single lump sum). Default tolerance and iteration caps apply.
func (p *Planner) SolvePrepaymentForTenure(inputs loans.LoanInputs, targetMonths, frequencyMonths int) optimization.Summary {
	return p.SolveWithConfig(inputs, config.SolverConfig{
		TargetTenureMonths: targetMonths,
		FrequencyMonths:    frequencyMonths,
	})
}

// SolveWithConfig runs the prepayment search with explicit tolerance and
// iteration caps. The search bisects on the amount between 0 and the full
// principal; a larger prepayment never lengthens the payoff, so the first
// feasible amount found from below is the answer.
func (p *Planner) SolveWithConfig(inputs loans.LoanInputs, directive config.SolverConfig) optimization.Summary {
	directive.Normalize()

	summary := optimization.Summary{
		TargetMonths:    directive.TargetTenureMonths,
		FrequencyMonths: directive.FrequencyMonths,
	}

	emi := loans.CalculateEMI(inputs.Principal, inputs.AnnualInterestRate, inputs.TenureYears)
	if emi <= 0 {
		summary.Notes = append(summary.Notes, "loan inputs do not produce a positive installment")
		return summary
	}

	baselineMonths, baselineOK := p.solveCandidate(inputs, 0, directive)
	if baselineOK {
		summary.AchievedMonths = baselineMonths
		summary.Converged = true
		summary.AmountDisplay = format.Currency(0)
		return summary
	}

	upperMonths, upperOK := p.solveCandidate(inputs, inputs.Principal, directive)
	if !upperOK {
		// Even clearing the whole principal at the first prepayment month
		// misses the target, so no amount can reach it.
		summary.Amount = inputs.Principal
		summary.AchievedMonths = upperMonths
		summary.AmountDisplay = format.Currency(inputs.Principal)
		cadence := "a single lump sum prepayment"
		if directive.FrequencyMonths > 0 {
			cadence = fmt.Sprintf("prepayments every %d months", directive.FrequencyMonths)
		}
		summary.Notes = append(summary.Notes, fmt.Sprintf(
			"unable to reach %d months with %s",
			directive.TargetTenureMonths, cadence,
		))
		return summary
	}

	lower := 0.0
	upper := inputs.Principal
	bestAmount := upper
	bestMonths := upperMonths
	iterations := 0

	for iterations < directive.MaxIterations && math.Abs(upper-lower) > directive.Tolerance {
		mid := lower + (upper-lower)/2
		midMonths, midOK := p.solveCandidate(inputs, mid, directive)
		iterations++
		if midOK {
			bestAmount = mid
			bestMonths = midMonths
			upper = mid
		} else {
			lower = mid
		}
	}

	// Round the recommendation up to whole units; a bigger prepayment cannot
	// miss a target the raw amount met.
	amount := math.Ceil(bestAmount)
	if achieved, ok := p.solveCandidate(inputs, amount, directive); ok {
		bestMonths = achieved
	}

	summary.Amount = amount
	summary.AchievedMonths = bestMonths
	summary.Iterations = iterations
	summary.Converged = true
	summary.AmountDisplay = format.Currency(amount)

	p.logger.Info("solved prepayment amount for target tenure",
		zap.String("op", "planner.SolveWithConfig"),
		zap.Int("targetMonths", summary.TargetMonths),
		zap.Int("achievedMonths", summary.AchievedMonths),
		zap.Float64("amount", summary.Amount),
		zap.Int("frequencyMonths", summary.FrequencyMonths),
		zap.Int("iterations", summary.Iterations),
		zap.Bool("converged", summary.Converged),
	)
	return summary
}

// solveCandidate simulates one candidate amount and reports whether it clears
// the loan within the target.
func (p *Planner) solveCandidate(inputs loans.LoanInputs, amount float64, directive config.SolverConfig) (int, bool) {
	plan := &loans.PrepaymentPlan{
		Amount:          amount,
		FrequencyMonths: directive.FrequencyMonths,
		Strategy:        loans.StrategyReduceTenure,
	}
	summary, _ := p.sim.Simulate(inputs, plan)
	achieved := summary.FinalTenureMonths
	return achieved, achieved > 0 && achieved <= directive.TargetTenureMonths && !summary.Truncated
}
