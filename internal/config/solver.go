package config

import (
	"fmt"
)

const (
	defaultSolverTolerance     = 1.0
	defaultSolverMaxIterations = 50
)

// SolverConfig asks the planner to search for the prepayment amount that
// clears the loan within a target tenure, instead of fixing the amount.
// A FrequencyMonths of 0 solves for a single lump sum in the first month.
type SolverConfig struct {
	TargetTenureMonths int     `yaml:"targetTenureMonths,omitempty" mapstructure:"targetTenureMonths"`
	FrequencyMonths    int     `yaml:"frequencyMonths,omitempty" mapstructure:"frequencyMonths"`
	Tolerance          float64 `yaml:"tolerance,omitempty" mapstructure:"tolerance"`
	MaxIterations      int     `yaml:"maxIterations,omitempty" mapstructure:"maxIterations"`
}

// Normalize ensures defaults are applied before validation.
func (s *SolverConfig) Normalize() {
	if s == nil {
		return
	}
	if s.Tolerance <= 0 {
		s.Tolerance = defaultSolverTolerance
	}
	if s.MaxIterations <= 0 {
		s.MaxIterations = defaultSolverMaxIterations
	}
}

// Validate returns an error when the solver directive is unsupported.
func (s *SolverConfig) Validate() error {
	if s == nil {
		return fmt.Errorf("solver configuration cannot be nil")
	}

	s.Normalize()

	if s.TargetTenureMonths < 1 {
		return fmt.Errorf("solver target tenure %d must be at least 1 month", s.TargetTenureMonths)
	}
	if s.FrequencyMonths < 0 {
		return fmt.Errorf("solver frequency %d months cannot be negative", s.FrequencyMonths)
	}
	return nil
}
