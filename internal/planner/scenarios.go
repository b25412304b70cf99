package planner

import (
	"fmt"
	"time"

	"github.com/srivastava-utkarsh/car-loan-planner/internal/config"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/adapters"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/loans"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/optimization"
	"go.uber.org/zap"
)

// BaselineScenarioName is the report name for the no-prepayment reference run
// that always leads the report list.
const BaselineScenarioName = "baseline"

// ScenarioReport pairs a scenario name with its evaluated outcome. Solver is
// set only for scenarios that asked for a prepayment amount to be solved.
type ScenarioReport struct {
	Name   string                `json:"name"`
	Result SimulationResult      `json:"result"`
	Solver *optimization.Summary `json:"solver,omitempty"`
}

// EvaluateScenarios runs every active scenario in the configuration against
// the configured loan and returns one report per scenario, preceded by the
// baseline run they are all measured against.
func EvaluateScenarios(logger *zap.Logger, conf *config.Configuration) ([]ScenarioReport, error) {
	return EvaluateScenariosWithFixedTime(logger, conf, time.Now())
}

// EvaluateScenariosWithFixedTime is EvaluateScenarios with an injected clock
// for deterministic payoff dates in tests.
func EvaluateScenariosWithFixedTime(logger *zap.Logger, conf *config.Configuration, fixedTime time.Time) ([]ScenarioReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	p, err := NewPlanner(logger, conf.EffectiveStartDateWithFixedTime(fixedTime))
	if err != nil {
		return nil, err
	}
	inputs := adapters.LoanToInputs(conf.Loan)

	reports := make([]ScenarioReport, 0, len(conf.Scenarios)+1)
	baseline := p.Evaluate(inputs, nil)
	reports = append(reports, ScenarioReport{Name: BaselineScenarioName, Result: baseline})

	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "planner.EvaluateScenarios"),
			)
			continue
		}

		report := ScenarioReport{Name: scenario.Name}
		switch {
		case scenario.Solve != nil:
			if err := scenario.Solve.Validate(); err != nil {
				return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
			}
			solved := p.SolveWithConfig(inputs, *scenario.Solve)
			report.Solver = &solved
			report.Result = p.Evaluate(inputs, planFromSolution(scenario, solved))
		case scenario.Prepayment != nil:
			report.Result = p.Evaluate(inputs, adapters.PrepaymentToPlan(scenario.Prepayment))
		default:
			report.Result = baseline
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// planFromSolution turns a solved amount into a runnable plan, carrying over
// the scenario's strategy and penalty rate when it declared them.
func planFromSolution(scenario config.Scenario, solved optimization.Summary) *loans.PrepaymentPlan {
	if solved.Amount <= 0 {
		return nil
	}
	plan := &loans.PrepaymentPlan{
		Amount:          solved.Amount,
		FrequencyMonths: solved.FrequencyMonths,
		Strategy:        loans.StrategyReduceTenure,
	}
	if scenario.Prepayment != nil {
		plan.PenaltyRatePercent = scenario.Prepayment.PenaltyRatePercent
		if s := loans.Strategy(scenario.Prepayment.Strategy); s.IsValid() {
			plan.Strategy = s
		}
	}
	return plan
}
