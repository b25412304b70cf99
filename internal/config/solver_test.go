package config

import "testing"

func TestSolverConfigNormalize(t *testing.T) {
	cfg := &SolverConfig{TargetTenureMonths: 24}
	cfg.Normalize()

	if cfg.Tolerance != defaultSolverTolerance {
		t.Errorf("expected default tolerance %.2f, got %.2f", defaultSolverTolerance, cfg.Tolerance)
	}
	if cfg.MaxIterations != defaultSolverMaxIterations {
		t.Errorf("expected default max iterations %d, got %d", defaultSolverMaxIterations, cfg.MaxIterations)
	}
	if cfg.FrequencyMonths != 0 {
		t.Errorf("lump sum frequency should survive normalization, got %d", cfg.FrequencyMonths)
	}

	cfg = &SolverConfig{TargetTenureMonths: 24, Tolerance: 5, MaxIterations: 10, FrequencyMonths: 3}
	cfg.Normalize()
	if cfg.Tolerance != 5 || cfg.MaxIterations != 10 || cfg.FrequencyMonths != 3 {
		t.Errorf("explicit values should survive normalization, got %+v", cfg)
	}
}

func TestSolverConfigValidate(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       *SolverConfig
		expectErr bool
	}{
		{name: "valid monthly", cfg: &SolverConfig{TargetTenureMonths: 24, FrequencyMonths: 1}, expectErr: false},
		{name: "valid lump sum", cfg: &SolverConfig{TargetTenureMonths: 24}, expectErr: false},
		{name: "zero target", cfg: &SolverConfig{}, expectErr: true},
		{name: "negative target", cfg: &SolverConfig{TargetTenureMonths: -6}, expectErr: true},
		{name: "negative frequency", cfg: &SolverConfig{TargetTenureMonths: 24, FrequencyMonths: -1}, expectErr: true},
		{name: "nil config", cfg: nil, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.expectErr && err == nil {
				t.Fatalf("expected error, got none")
			}
			if !tc.expectErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
