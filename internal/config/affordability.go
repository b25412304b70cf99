package config

import (
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/finance"
)

// AffordabilityConfig carries the inputs for the affordability rule and the
// running-cost breakdown. Fuel spend can be given directly or derived from
// the usage figures.
type AffordabilityConfig struct {
	MonthlyIncome      float64
	MonthlyFuelCost    float64
	KmPerMonth         float64
	KmPerLitre         float64
	FuelPricePerLitre  float64
	IncludeFuel        bool
	InsuranceAnnual    float64
	MaintenanceMonthly float64
}

// FuelCost returns the configured monthly fuel spend, deriving it from the
// usage figures when no explicit amount is set.
func (a *AffordabilityConfig) FuelCost() float64 {
	if a == nil {
		return 0
	}
	if a.MonthlyFuelCost > 0 {
		return a.MonthlyFuelCost
	}
	return finance.MonthlyFuelCost(a.KmPerMonth, a.KmPerLitre, a.FuelPricePerLitre)
}
