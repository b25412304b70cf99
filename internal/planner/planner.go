// Package planner evaluates prepayment scenarios against a base loan and
// summarizes what each one saves relative to paying the schedule as issued.
package planner

import (
	"fmt"
	"time"

	"github.com/srivastava-utkarsh/car-loan-planner/pkg/constants"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/datetime"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/loans"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/mathutil"
	"go.uber.org/zap"
)

// SimulationResult summarizes one simulated repayment path. Currency fields
// are rounded to whole units at this boundary; the schedule keeps the raw
// figures for anything downstream that needs to re-aggregate.
type SimulationResult struct {
	Strategy            loans.Strategy           `json:"strategy,omitempty"`
	EMI                 float64                  `json:"emi"`
	FinalTenureMonths   int                      `json:"finalTenureMonths"`
	TotalInterestPaid   float64                  `json:"totalInterestPaid"`
	TotalAmountPaid     float64                  `json:"totalAmountPaid"`
	TotalPrepaymentPaid float64                  `json:"totalPrepaymentPaid"`
	PenaltyAmount       float64                  `json:"penaltyAmount"`
	InterestSaved       float64                  `json:"interestSaved"`
	NetSavings          float64                  `json:"netSavings"`
	MonthsSaved         int                      `json:"monthsSaved"`
	PayoffDate          string                   `json:"payoffDate,omitempty"`
	Truncated           bool                     `json:"truncated,omitempty"`
	Schedule            []loans.AmortizationStep `json:"schedule,omitempty"`
}

// StrategyComparison holds the same prepayment plan evaluated under both
// strategies, with a recommendation.
type StrategyComparison struct {
	ReduceTenure SimulationResult `json:"reduceTenure"`
	ReduceEMI    SimulationResult `json:"reduceEmi"`
	Recommended  loans.Strategy   `json:"recommended"`
}

// Planner evaluates loans and prepayment plans against their baselines.
type Planner struct {
	logger    *zap.Logger
	sim       *loans.Simulator
	startDate string
}

// NewPlanner constructs a Planner. startDate anchors payoff dates in the
// results and may be empty, which skips date projection.
func NewPlanner(logger *zap.Logger, startDate string) (*Planner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if startDate != "" {
		if _, err := time.Parse(constants.DateTimeLayout, startDate); err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
		}
	}
	return &Planner{
		logger:    logger,
		sim:       loans.NewSimulator(logger),
		startDate: startDate,
	}, nil
}

// Evaluate simulates the loan under the given plan and compares it against
// the no-prepayment baseline. A nil plan evaluates the baseline itself.
func (p *Planner) Evaluate(inputs loans.LoanInputs, plan *loans.PrepaymentPlan) SimulationResult {
	baseline, _ := p.sim.Simulate(inputs, nil)
	return p.evaluateAgainstBaseline(inputs, plan, baseline)
}

// CompareStrategies evaluates the plan under both strategies against the same
// baseline. The strategy with the larger net savings wins; a tie keeps the
// tenure reduction because it also frees up months.
func (p *Planner) CompareStrategies(inputs loans.LoanInputs, plan loans.PrepaymentPlan) StrategyComparison {
	baseline, _ := p.sim.Simulate(inputs, nil)

	tenurePlan := plan
	tenurePlan.Strategy = loans.StrategyReduceTenure
	emiPlan := plan
	emiPlan.Strategy = loans.StrategyReduceEMI

	comparison := StrategyComparison{
		ReduceTenure: p.evaluateAgainstBaseline(inputs, &tenurePlan, baseline),
		ReduceEMI:    p.evaluateAgainstBaseline(inputs, &emiPlan, baseline),
	}

	comparison.Recommended = loans.StrategyReduceTenure
	if comparison.ReduceEMI.NetSavings > comparison.ReduceTenure.NetSavings {
		comparison.Recommended = loans.StrategyReduceEMI
	}

	p.logger.Debug(fmt.Sprintf("recommending %s", comparison.Recommended),
		zap.String("op", "planner.CompareStrategies"),
		zap.Float64("tenureNetSavings", comparison.ReduceTenure.NetSavings),
		zap.Float64("emiNetSavings", comparison.ReduceEMI.NetSavings),
	)
	return comparison
}

func (p *Planner) evaluateAgainstBaseline(inputs loans.LoanInputs, plan *loans.PrepaymentPlan, baseline loans.Summary) SimulationResult {
	summary, steps := p.sim.Simulate(inputs, plan)

	nominalMonths := loans.NominalTermMonths(inputs.TenureYears)
	emi := loans.CalculateEMI(inputs.Principal, inputs.AnnualInterestRate, inputs.TenureYears)

	penalty := 0.0
	if plan != nil && plan.PenaltyRatePercent > 0 {
		penalty = mathutil.ApplyPercentage(summary.TotalPrepaymentPaid, plan.PenaltyRatePercent)
	}

	interestSaved := mathutil.Max(0, baseline.TotalInterestPaid-summary.TotalInterestPaid)
	netSavings := mathutil.Max(0, interestSaved-penalty)

	// An empty schedule means the inputs were degenerate, not that the loan
	// cleared instantly, so it saves nothing.
	monthsSaved := 0
	if summary.FinalTenureMonths > 0 {
		monthsSaved = nominalMonths - summary.FinalTenureMonths
		if monthsSaved < 0 {
			monthsSaved = 0
		}
	}

	result := SimulationResult{
		EMI:                 mathutil.RoundUnit(emi),
		FinalTenureMonths:   summary.FinalTenureMonths,
		TotalInterestPaid:   mathutil.RoundUnit(summary.TotalInterestPaid),
		TotalAmountPaid:     mathutil.RoundUnit(summary.TotalEMIPaid + summary.TotalPrepaymentPaid + penalty),
		TotalPrepaymentPaid: mathutil.RoundUnit(summary.TotalPrepaymentPaid),
		PenaltyAmount:       mathutil.RoundUnit(penalty),
		InterestSaved:       mathutil.RoundUnit(interestSaved),
		NetSavings:          mathutil.RoundUnit(netSavings),
		MonthsSaved:         monthsSaved,
		Truncated:           summary.Truncated,
		Schedule:            steps,
	}
	if plan != nil {
		result.Strategy = plan.Strategy
	}
	result.PayoffDate = p.projectPayoffDate(summary.FinalTenureMonths)
	return result
}

func (p *Planner) projectPayoffDate(tenureMonths int) string {
	if p.startDate == "" || tenureMonths <= 0 {
		return ""
	}
	date, err := datetime.ProjectPayoffDate(p.startDate, tenureMonths)
	if err != nil {
		p.logger.Warn("failed to project payoff date",
			zap.String("op", "planner.projectPayoffDate"),
			zap.String("startDate", p.startDate),
			zap.Error(err),
		)
		return ""
	}
	return date
}
