// Package output provides utilities for formatting and displaying scenario reports.
package output

import (
	"fmt"
	"strings"

	"github.com/srivastava-utkarsh/car-loan-planner/internal/planner"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/affordability"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/constants"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/finance"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/format"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/optimization"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(reports []planner.ScenarioReport) {
	p := message.NewPrinter(language.English)
	for _, report := range reports {
		result := report.Result
		fmt.Printf("--- Results for scenario %s ---\n", report.Name)
		if result.Strategy != "" {
			fmt.Printf("Strategy: %s\n", result.Strategy)
		}
		payoff := result.PayoffDate
		if payoff == "" {
			payoff = "n/a"
		}
		fmt.Printf("EMI: %s | Payoff: %s (%d months)\n",
			format.Currency(result.EMI), payoff, result.FinalTenureMonths)
		total := format.Currency(result.TotalAmountPaid)
		if result.TotalAmountPaid >= constants.RupeesPerLakh {
			total = fmt.Sprintf("%s (%s)", total, format.Compact(result.TotalAmountPaid))
		}
		fmt.Printf("Interest paid: %s | Total paid: %s\n",
			format.Currency(result.TotalInterestPaid), total)
		if result.TotalPrepaymentPaid > 0 {
			fmt.Printf("Prepayments: %s | Penalty: %s\n",
				format.Currency(result.TotalPrepaymentPaid), format.Currency(result.PenaltyAmount))
			fmt.Printf("Interest saved: %s | Net savings: %s | Months saved: %d\n",
				format.Currency(result.InterestSaved), format.Currency(result.NetSavings), result.MonthsSaved)
		}
		if result.Truncated {
			fmt.Printf("Warning: schedule stopped before the balance cleared\n")
		}
		if report.Solver != nil {
			printSolverSummary(report.Solver)
		}
		fmt.Printf("Month | EMI Paid | Interest | Principal | Prepayment | Balance\n")
		fmt.Printf("_____ | ________ | ________ | _________ | __________ | _______\n")
		for _, step := range result.Schedule {
			_, _ = p.Printf("%d | %.2f | %.2f | %.2f | %.2f | %.2f\n",
				step.Month, step.EMIPaid, step.Interest, step.Principal, step.Prepayment, step.RemainingBalance)
		}
		if len(reports) > 1 {
			fmt.Printf("\n")
		}
	}
}

func printSolverSummary(solver *optimization.Summary) {
	fmt.Printf("Prepayment solver:\n")
	cadence := "as a single payment"
	if solver.FrequencyMonths > 0 {
		cadence = fmt.Sprintf("every %d months", solver.FrequencyMonths)
	}
	if solver.Converged {
		fmt.Printf("  %s %s reaches %d months (target %d) after %d iterations\n",
			solver.AmountDisplay, cadence, solver.AchievedMonths, solver.TargetMonths, solver.Iterations)
	} else {
		fmt.Printf("  no amount %s reaches the %d month target\n", cadence, solver.TargetMonths)
	}
	for _, note := range solver.Notes {
		fmt.Printf("  note: %s\n", note)
	}
}

// AffordabilityFormat prints the 20/4/10 verdict and the monthly running
// costs under it.
func AffordabilityFormat(verdict affordability.Verdict, costs finance.OwnershipCosts) {
	fmt.Printf("--- Affordability (20/4/10 rule) ---\n")
	fmt.Printf("Down payment: %s of price, rule wants at least %.0f%% | %s\n",
		format.Percent(verdict.DownPaymentPercent), constants.MinDownPaymentPercent, ruleMark(verdict.DownPaymentOK))
	fmt.Printf("Tenure within %.0f years | %s\n",
		constants.MaxAffordableTenureYears, ruleMark(verdict.TenureOK))
	fmt.Printf("Car spend: %s of income, rule caps at %.0f%% | %s\n",
		format.Percent(verdict.ExpensePercent), constants.MaxExpenseRatioPercent, ruleMark(verdict.ExpenseRatioOK))
	if verdict.Overall {
		fmt.Printf("Verdict: within budget\n")
	} else {
		fmt.Printf("Verdict: over budget\n")
	}
	fmt.Printf("Monthly outgo: %s (EMI %s | Fuel %s | Insurance %s | Maintenance %s)\n",
		format.Currency(costs.MonthlyOutgo), format.Currency(costs.EMI), format.Currency(costs.Fuel),
		format.Currency(costs.Insurance), format.Currency(costs.Maintenance))
}

func ruleMark(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(reports []planner.ScenarioReport) {
	fmt.Print(CsvString(reports))
}

// CsvString renders the same comma-separated output CsvFormat prints. Each row
// is a month; every report contributes five columns.
func CsvString(reports []planner.ScenarioReport) string {
	if len(reports) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`"month"`)
	maxMonths := 0
	for _, report := range reports {
		for _, column := range []string{"emi", "interest", "principal", "prepayment", "balance"} {
			fmt.Fprintf(&b, `,"%s (%s)"`, column, report.Name)
		}
		if n := len(report.Result.Schedule); n > maxMonths {
			maxMonths = n
		}
	}
	b.WriteString("\n")

	for i := 0; i < maxMonths; i++ {
		fmt.Fprintf(&b, `"%d"`, i+1)
		for _, report := range reports {
			if i < len(report.Result.Schedule) {
				step := report.Result.Schedule[i]
				fmt.Fprintf(&b, `,"%.2f","%.2f","%.2f","%.2f","%.2f"`,
					step.EMIPaid, step.Interest, step.Principal, step.Prepayment, step.RemainingBalance)
			} else {
				b.WriteString(`,"","","","",""`)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
