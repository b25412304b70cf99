// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/srivastava-utkarsh/car-loan-planner/pkg/constants"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/loans"
)

// ValidateLoanFigures checks the core loan parameters and returns warnings.
// Degenerate values still evaluate (to zero results), so these are warnings
// rather than errors.
func ValidateLoanFigures(name string, carPrice, downPayment, interestRate, tenureYears float64) []string {
	var warnings []string

	label := name
	if label == "" {
		label = "loan"
	}

	if carPrice <= 0 {
		warnings = append(warnings, fmt.Sprintf("'%s' has no positive car price - calculations will be empty", label))
	}
	if downPayment < 0 {
		warnings = append(warnings, fmt.Sprintf("'%s' has a negative down payment", label))
	}
	if carPrice > 0 && downPayment > carPrice {
		warnings = append(warnings, fmt.Sprintf("'%s' down payment %.2f exceeds car price %.2f - principal clamps to zero",
			label, downPayment, carPrice))
	}
	if interestRate < 0 {
		warnings = append(warnings, fmt.Sprintf("'%s' has a negative interest rate", label))
	}
	if interestRate > constants.MaxInterestRatePercent {
		warnings = append(warnings, fmt.Sprintf("'%s' interest rate %.2f%% exceeds %.0f%% - check for a typo",
			label, interestRate, constants.MaxInterestRatePercent))
	}
	if tenureYears <= 0 {
		warnings = append(warnings, fmt.Sprintf("'%s' has no positive tenure - calculations will be empty", label))
	}
	if tenureYears > constants.MaxTenureYears {
		warnings = append(warnings, fmt.Sprintf("'%s' tenure %.1f years exceeds the %d year cap",
			label, tenureYears, constants.MaxTenureYears))
	}

	return warnings
}

// ValidatePrepayment checks a prepayment scenario against the loan principal
// and returns warnings.
func ValidatePrepayment(scenarioName string, principal, amount float64, frequencyMonths int, strategy string, penaltyRatePercent float64) []string {
	var warnings []string

	label := scenarioName
	if label == "" {
		label = "prepayment"
	}

	if amount < 0 {
		warnings = append(warnings, fmt.Sprintf("scenario '%s' has a negative prepayment amount", label))
	}
	if principal > 0 && amount >= principal {
		warnings = append(warnings, fmt.Sprintf("scenario '%s' prepayment %.2f meets or exceeds the principal %.2f - loan clears in the first prepayment month",
			label, amount, principal))
	}
	if frequencyMonths < 0 {
		warnings = append(warnings, fmt.Sprintf("scenario '%s' has a negative prepayment frequency - no prepayments will apply", label))
	}
	if strategy != "" && !loans.Strategy(strategy).IsValid() {
		warnings = append(warnings, fmt.Sprintf("scenario '%s' has unknown strategy %q - treating as %s",
			label, strategy, loans.StrategyReduceTenure))
	}
	if penaltyRatePercent < 0 {
		warnings = append(warnings, fmt.Sprintf("scenario '%s' has a negative penalty rate - treating as 0", label))
	}
	if penaltyRatePercent > constants.MaxPenaltyRatePercent {
		warnings = append(warnings, fmt.Sprintf("scenario '%s' penalty rate %.2f%% exceeds the typical %.0f%% cap",
			label, penaltyRatePercent, constants.MaxPenaltyRatePercent))
	}

	return warnings
}

// ValidateAffordabilityFigures checks income and running-cost inputs and
// returns warnings.
func ValidateAffordabilityFigures(monthlyIncome, monthlyFuelCost, insuranceAnnual, maintenanceMonthly float64) []string {
	var warnings []string

	if monthlyIncome < 0 {
		warnings = append(warnings, "monthly income is negative - the expense ratio check treats it as unknown")
	}
	if monthlyFuelCost < 0 {
		warnings = append(warnings, "monthly fuel cost is negative")
	}
	if insuranceAnnual < 0 {
		warnings = append(warnings, "annual insurance cost is negative")
	}
	if maintenanceMonthly < 0 {
		warnings = append(warnings, "monthly maintenance cost is negative")
	}

	return warnings
}
