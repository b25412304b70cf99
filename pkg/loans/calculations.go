// Package loans provides car-loan EMI and amortization calculations.
package loans

import (
	"math"

	"github.com/srivastava-utkarsh/car-loan-planner/pkg/constants"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/mathutil"
)

// CalculateEMI calculates the equated monthly installment for a loan using the
// standard amortization formula. Degenerate inputs yield 0 rather than an
// error; an interactive form fills fields in incrementally and renders a
// placeholder until all of them are set.
func CalculateEMI(principal, annualInterestRate, tenureYears float64) float64 {
	if principal <= 0 || annualInterestRate <= 0 || tenureYears <= 0 {
		return 0
	}
	return calculateEMIForTerm(principal, annualInterestRate, NominalTermMonths(tenureYears))
}

// calculateEMIForTerm computes the installment over an explicit month count.
// The simulator rebases the installment through here after a prepayment under
// the reduce-EMI strategy, which is also where the zero-rate path is reachable.
func calculateEMIForTerm(principal, annualInterestRate float64, termMonths int) float64 {
	if principal <= 0 || annualInterestRate < 0 || termMonths <= 0 {
		return 0
	}
	if annualInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return mathutil.Sanitize(principal / float64(termMonths))
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow((1.00 + periodicInterestRate), float64(termMonths))
	discountFactor := (power - 1.00) / power
	return mathutil.Sanitize(principal * periodicInterestRate / discountFactor)
}

// CalculateInterestPayment calculates the interest accrued on a balance over
// one month.
func CalculateInterestPayment(remainingBalance, annualInterestRate float64) float64 {
	return remainingBalance * annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// NominalTermMonths converts a tenure in years to whole months.
func NominalTermMonths(tenureYears float64) int {
	if tenureYears <= 0 {
		return 0
	}
	return int(math.Round(tenureYears * constants.MonthsPerYear))
}
