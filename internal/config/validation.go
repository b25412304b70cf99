package config

import (
	"fmt"
	"time"

	"github.com/srivastava-utkarsh/car-loan-planner/pkg/validation"
)

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. The planner still runs with questionable figures; the
// warnings tell the user what to double-check.
func (conf *Configuration) ValidateConfiguration() []string {
	warnings := validation.ValidateLoanFigures(
		conf.Loan.Name,
		conf.Loan.CarPrice,
		conf.Loan.DownPayment,
		conf.Loan.InterestRate,
		conf.Loan.TenureYears,
	)

	principal := conf.Loan.Principal()
	for _, scenario := range conf.Scenarios {
		if !scenario.Active || scenario.Prepayment == nil {
			continue
		}
		warnings = append(warnings, validation.ValidatePrepayment(
			scenario.Name,
			principal,
			scenario.Prepayment.Amount,
			scenario.Prepayment.FrequencyMonths,
			scenario.Prepayment.Strategy,
			scenario.Prepayment.PenaltyRatePercent,
		)...)
	}

	if conf.Affordability != nil {
		warnings = append(warnings, validation.ValidateAffordabilityFigures(
			conf.Affordability.MonthlyIncome,
			conf.Affordability.MonthlyFuelCost,
			conf.Affordability.InsuranceAnnual,
			conf.Affordability.MaintenanceMonthly,
		)...)
	}

	if conf.StartDate != "" {
		if _, err := time.Parse(DateTimeLayout, conf.StartDate); err != nil {
			warnings = append(warnings, fmt.Sprintf("startDate %q does not match the %s layout", conf.StartDate, DateTimeLayout))
		}
	}

	return warnings
}
