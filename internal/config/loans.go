// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

// LoanConfig describes the car purchase being financed: the sticker price,
// the cash put down, and the terms for the financed remainder.
type LoanConfig struct {
	Name         string
	CarPrice     float64
	DownPayment  float64
	InterestRate float64
	TenureYears  float64
}

// Principal returns the financed amount after the down payment is deducted.
// A down payment at or above the car price clamps the principal to 0.
func (loan *LoanConfig) Principal() float64 {
	principal := loan.CarPrice - loan.DownPayment
	if principal < 0 {
		return 0
	}
	return principal
}
