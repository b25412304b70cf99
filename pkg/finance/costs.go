// Package finance provides ownership cost calculations for a car purchase.
package finance

import (
	"fmt"

	"github.com/srivastava-utkarsh/car-loan-planner/pkg/constants"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/mathutil"
	"go.uber.org/zap"
)

// MonthlyFuelCost derives a monthly fuel spend from driving habits. All three
// figures must be positive; otherwise the spend is unknown and 0 is returned.
func MonthlyFuelCost(kmPerMonth, kmPerLitre, pricePerLitre float64) float64 {
	kmPerMonth = mathutil.Sanitize(kmPerMonth)
	kmPerLitre = mathutil.Sanitize(kmPerLitre)
	pricePerLitre = mathutil.Sanitize(pricePerLitre)
	if kmPerMonth <= 0 || kmPerLitre <= 0 || pricePerLitre <= 0 {
		return 0
	}
	litresPerMonth := kmPerMonth / kmPerLitre
	return litresPerMonth * pricePerLitre
}

// CostInputs holds the recurring cost components for a car. Insurance is the
// annual premium; the processor prorates it across the year.
type CostInputs struct {
	EMI                float64
	FuelCost           float64
	InsuranceAnnual    float64
	MaintenanceMonthly float64
}

// OwnershipCosts is the monthly cost of keeping the car on the road, broken
// down by component with each component's share of the total.
type OwnershipCosts struct {
	EMI          float64
	Fuel         float64
	Insurance    float64
	Maintenance  float64
	MonthlyOutgo float64

	EMIPercent         float64
	FuelPercent        float64
	InsurancePercent   float64
	MaintenancePercent float64
}

// CostProcessor aggregates recurring ownership costs.
type CostProcessor struct {
	logger *zap.Logger
}

// NewCostProcessor creates a new cost processor with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewCostProcessor(logger *zap.Logger) *CostProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CostProcessor{logger: logger}
}

// MonthlyOwnershipCosts totals the EMI, fuel, prorated insurance, and
// maintenance for one month. Negative or non-finite components count as 0.
func (cp *CostProcessor) MonthlyOwnershipCosts(in CostInputs) OwnershipCosts {
	costs := OwnershipCosts{
		EMI:         clampCost(in.EMI),
		Fuel:        clampCost(in.FuelCost),
		Insurance:   clampCost(in.InsuranceAnnual) / constants.MonthsPerYear,
		Maintenance: clampCost(in.MaintenanceMonthly),
	}
	costs.MonthlyOutgo = costs.EMI + costs.Fuel + costs.Insurance + costs.Maintenance

	costs.EMIPercent = mathutil.CalculatePercentage(costs.EMI, costs.MonthlyOutgo)
	costs.FuelPercent = mathutil.CalculatePercentage(costs.Fuel, costs.MonthlyOutgo)
	costs.InsurancePercent = mathutil.CalculatePercentage(costs.Insurance, costs.MonthlyOutgo)
	costs.MaintenancePercent = mathutil.CalculatePercentage(costs.Maintenance, costs.MonthlyOutgo)

	cp.logger.Debug(fmt.Sprintf("monthly outgo %.2f", costs.MonthlyOutgo),
		zap.String("op", "finance.MonthlyOwnershipCosts"),
		zap.Float64("emi", costs.EMI),
		zap.Float64("fuel", costs.Fuel),
	)
	return costs
}

// Split shows how the all-in cost of the purchase divides between the down
// payment, the financed principal, and the interest charged on it.
type Split struct {
	DownPayment float64
	Principal   float64
	Interest    float64
	Total       float64

	DownPaymentPercent float64
	PrincipalPercent   float64
	InterestPercent    float64
}

// CostSplit computes the percentage distribution of the total purchase cost.
// Negative or non-finite components count as 0; an all-zero purchase yields
// zero percentages.
func CostSplit(principal, totalInterest, downPayment float64) Split {
	split := Split{
		DownPayment: clampCost(downPayment),
		Principal:   clampCost(principal),
		Interest:    clampCost(totalInterest),
	}
	split.Total = split.DownPayment + split.Principal + split.Interest

	split.DownPaymentPercent = mathutil.CalculatePercentage(split.DownPayment, split.Total)
	split.PrincipalPercent = mathutil.CalculatePercentage(split.Principal, split.Total)
	split.InterestPercent = mathutil.CalculatePercentage(split.Interest, split.Total)
	return split
}

func clampCost(val float64) float64 {
	val = mathutil.Sanitize(val)
	if val < 0 {
		return 0
	}
	return val
}
