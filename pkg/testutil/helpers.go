// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"

	"github.com/srivastava-utkarsh/car-loan-planner/internal/planner"
)

// FindReport finds a scenario report by name in the reports slice.
// Returns a pointer to the report if found, nil otherwise.
func FindReport(reports []planner.ScenarioReport, name string) *planner.ScenarioReport {
	for i := range reports {
		if reports[i].Name == name {
			return &reports[i]
		}
	}
	return nil
}

// ApproxEqual reports whether two amounts agree within the tolerance.
func ApproxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
