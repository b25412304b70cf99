package adapters

import (
	"testing"

	"github.com/srivastava-utkarsh/car-loan-planner/internal/config"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/loans"
)

func TestLoanToInputs(t *testing.T) {
	loan := config.LoanConfig{
		Name:         "Family hatchback",
		CarPrice:     1200000,
		DownPayment:  240000,
		InterestRate: 8.0,
		TenureYears:  3,
	}

	inputs := LoanToInputs(loan)

	if inputs.Principal != 960000 {
		t.Errorf("Principal = %v, expected 960000", inputs.Principal)
	}
	if inputs.AnnualInterestRate != 8.0 {
		t.Errorf("AnnualInterestRate = %v, expected 8.0", inputs.AnnualInterestRate)
	}
	if inputs.TenureYears != 3 {
		t.Errorf("TenureYears = %v, expected 3", inputs.TenureYears)
	}
}

func TestLoanToInputsClampsPrincipal(t *testing.T) {
	loan := config.LoanConfig{
		CarPrice:     500000,
		DownPayment:  600000,
		InterestRate: 8.0,
		TenureYears:  3,
	}

	inputs := LoanToInputs(loan)
	if inputs.Principal != 0 {
		t.Errorf("Principal = %v, expected clamp to 0", inputs.Principal)
	}
}

func TestPrepaymentToPlan(t *testing.T) {
	tests := []struct {
		name             string
		prepayment       *config.PrepaymentConfig
		expectNil        bool
		expectedStrategy loans.Strategy
	}{
		{
			name:       "Nil config",
			prepayment: nil,
			expectNil:  true,
		},
		{
			name: "Explicit reduce EMI",
			prepayment: &config.PrepaymentConfig{
				Amount:          10000,
				FrequencyMonths: 1,
				Strategy:        "reduce_emi",
			},
			expectedStrategy: loans.StrategyReduceEMI,
		},
		{
			name: "Empty strategy falls back to reduce tenure",
			prepayment: &config.PrepaymentConfig{
				Amount:          50000,
				FrequencyMonths: 12,
			},
			expectedStrategy: loans.StrategyReduceTenure,
		},
		{
			name: "Unknown strategy falls back to reduce tenure",
			prepayment: &config.PrepaymentConfig{
				Amount:          50000,
				FrequencyMonths: 12,
				Strategy:        "reduce_everything",
			},
			expectedStrategy: loans.StrategyReduceTenure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PrepaymentToPlan(tt.prepayment)

			if tt.expectNil {
				if plan != nil {
					t.Fatalf("expected nil plan, got %+v", plan)
				}
				return
			}
			if plan == nil {
				t.Fatalf("expected a plan, got nil")
			}
			if plan.Amount != tt.prepayment.Amount {
				t.Errorf("Amount = %v, expected %v", plan.Amount, tt.prepayment.Amount)
			}
			if plan.FrequencyMonths != tt.prepayment.FrequencyMonths {
				t.Errorf("FrequencyMonths = %v, expected %v", plan.FrequencyMonths, tt.prepayment.FrequencyMonths)
			}
			if plan.Strategy != tt.expectedStrategy {
				t.Errorf("Strategy = %v, expected %v", plan.Strategy, tt.expectedStrategy)
			}
		})
	}
}

func TestAffordabilityToInputs(t *testing.T) {
	loan := config.LoanConfig{
		CarPrice:     1200000,
		DownPayment:  240000,
		InterestRate: 8.0,
		TenureYears:  3,
	}

	afford := &config.AffordabilityConfig{
		MonthlyIncome:   400000,
		MonthlyFuelCost: 7000,
		IncludeFuel:     true,
	}

	inputs := AffordabilityToInputs(loan, 30083, afford)

	if inputs.CarPrice != 1200000 || inputs.DownPayment != 240000 {
		t.Errorf("loan figures not carried over: %+v", inputs)
	}
	if inputs.EMI != 30083 {
		t.Errorf("EMI = %v, expected 30083", inputs.EMI)
	}
	if inputs.MonthlyFuelCost != 7000 {
		t.Errorf("MonthlyFuelCost = %v, expected 7000", inputs.MonthlyFuelCost)
	}
	if !inputs.IncludeFuel {
		t.Errorf("IncludeFuel should carry over")
	}
	if inputs.MonthlyIncome != 400000 {
		t.Errorf("MonthlyIncome = %v, expected 400000", inputs.MonthlyIncome)
	}
}

func TestAffordabilityToInputsWithoutSection(t *testing.T) {
	loan := config.LoanConfig{
		CarPrice:    1000000,
		DownPayment: 200000,
		TenureYears: 5,
	}

	inputs := AffordabilityToInputs(loan, 16000, nil)

	if inputs.MonthlyIncome != 0 || inputs.MonthlyFuelCost != 0 || inputs.IncludeFuel {
		t.Errorf("missing affordability section should leave zero values, got %+v", inputs)
	}
	if inputs.EMI != 16000 {
		t.Errorf("EMI = %v, expected 16000", inputs.EMI)
	}
}
