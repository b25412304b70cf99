// Package constants provides shared constants for the car-loan-planner application.
package constants

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// MonthlyFrequency is the prepayment frequency for monthly prepayments
	MonthlyFrequency = 1

	// QuarterlyFrequency is the prepayment frequency for quarterly prepayments
	QuarterlyFrequency = 3

	// AnnualFrequency is the prepayment frequency for yearly prepayments
	AnnualFrequency = 12

	// LumpSumFrequency marks a one-time prepayment applied in the first month
	LumpSumFrequency = 0

	// RupeesPerLakh is the scale for compact lakh display
	RupeesPerLakh = 100000.0

	// RupeesPerCrore is the scale for compact crore display
	RupeesPerCrore = 10000000.0
)

// Simulation constants
const (
	// PayoffEpsilon is the remaining balance at which a loan counts as settled
	PayoffEpsilon = 1.0

	// SafetyMarginMonths bounds the simulation beyond the nominal tenure
	SafetyMarginMonths = 12 * 5

	// MaxTenureYears is the longest tenure accepted without a validation warning
	MaxTenureYears = 30

	// MaxInterestRatePercent is the highest annual rate accepted without a warning
	MaxInterestRatePercent = 36.0

	// MaxPenaltyRatePercent is the highest prepayment penalty rate accepted without a warning
	MaxPenaltyRatePercent = 10.0
)

// Affordability rule constants (the 20/4/10 rule)
const (
	// MinDownPaymentPercent is the minimum down payment share of the car price
	MinDownPaymentPercent = 20.0

	// MaxAffordableTenureYears is the longest tenure the rule accepts
	MaxAffordableTenureYears = 4.0

	// MaxExpenseRatioPercent is the ceiling on car costs as a share of income
	MaxExpenseRatioPercent = 10.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the JSON API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024

	// DefaultCacheTTLSeconds is the default lifetime of cached evaluation results
	DefaultCacheTTLSeconds = 300
)

// Validation constants
const (
	// ToleranceForComparison is the tolerance for financial comparisons
	ToleranceForComparison = 1.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)
