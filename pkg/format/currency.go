package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/srivastava-utkarsh/car-loan-planner/pkg/constants"
)

// Currency returns a whole-rupee string with Indian digit grouping
// (e.g., "₹12,34,567" or "-₹1,50,000").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-₹" + formatted
	}
	return "₹" + formatted
}

// NumericCurrency returns a grouped whole-rupee string without a currency
// symbol (e.g., "-12,34,567").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	formatted := formatPositiveCurrency(math.Abs(amount))
	return sign + formatted
}

// Compact abbreviates an amount the way Indian price tags do: "₹9.6L" for
// 9.6 lakh, "₹1.2Cr" for 1.2 crore. Amounts under a lakh keep the full
// grouped form.
func Compact(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	abs := math.Abs(amount)
	switch {
	case abs >= constants.RupeesPerCrore:
		return sign + "₹" + trimTrailingZero(fmt.Sprintf("%.1f", abs/constants.RupeesPerCrore)) + "Cr"
	case abs >= constants.RupeesPerLakh:
		return sign + "₹" + trimTrailingZero(fmt.Sprintf("%.1f", abs/constants.RupeesPerLakh)) + "L"
	default:
		return sign + "₹" + formatPositiveCurrency(abs)
	}
}

// Percent formats a percentage with two decimals, e.g. "9.02%".
func Percent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// formatPositiveCurrency renders a non-negative amount as whole rupees in the
// Indian grouping: the last three digits form one group, everything above
// groups in pairs.
func formatPositiveCurrency(value float64) string {
	intPart := fmt.Sprintf("%.0f", value)
	if len(intPart) <= 3 {
		return intPart
	}

	head := intPart[:len(intPart)-3]
	tail := intPart[len(intPart)-3:]

	var builder strings.Builder
	for i, digit := range head {
		if i > 0 && (len(head)-i)%2 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	builder.WriteByte(',')
	builder.WriteString(tail)
	return builder.String()
}

func trimTrailingZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}
