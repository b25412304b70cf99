// Package affordability applies the 20/4/10 budgeting rule to a car purchase.
package affordability

import (
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/constants"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/mathutil"
)

// Inputs holds the figures the rule is judged against. The EMI comes from the
// loan calculation; the rest are user-supplied.
type Inputs struct {
	CarPrice        float64
	DownPayment     float64
	TenureYears     float64
	EMI             float64
	MonthlyFuelCost float64
	IncludeFuel     bool
	MonthlyIncome   float64
}

// Verdict reports each leg of the 20/4/10 rule plus the derived percentages.
type Verdict struct {
	DownPaymentOK      bool
	TenureOK           bool
	ExpenseRatioOK     bool
	Overall            bool
	DownPaymentPercent float64
	ExpensePercent     float64
}

// Check applies the 20/4/10 rule: a down payment of at least 20%, a tenure of
// at most 4 years, and total monthly car costs within 10% of income. The
// income leg passes vacuously when income is unknown so a half-filled form
// does not show an over-budget warning.
func Check(in Inputs) Verdict {
	var v Verdict

	if in.CarPrice > 0 {
		v.DownPaymentPercent = mathutil.Sanitize(mathutil.CalculatePercentage(in.DownPayment, in.CarPrice))
		v.DownPaymentOK = v.DownPaymentPercent >= constants.MinDownPaymentPercent
	}

	v.TenureOK = in.TenureYears > 0 && in.TenureYears <= constants.MaxAffordableTenureYears

	totalMonthlyCost := in.EMI
	if in.IncludeFuel {
		totalMonthlyCost += in.MonthlyFuelCost
	}

	if in.MonthlyIncome > 0 {
		v.ExpensePercent = mathutil.Sanitize(mathutil.CalculatePercentage(totalMonthlyCost, in.MonthlyIncome))
		v.ExpenseRatioOK = v.ExpensePercent <= constants.MaxExpenseRatioPercent
	} else {
		v.ExpenseRatioOK = true
	}

	v.Overall = v.DownPaymentOK && v.TenureOK && v.ExpenseRatioOK
	return v
}
