package format

import (
	"fmt"
	"math"
	"strings"
)

// ManYen returns a monetary string in 万円 with thousands separators
// (e.g., "-1,234.56万円"). All engine figures are denominated in 万円.
func ManYen(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + formatPositiveAmount(math.Abs(amount)) + "万円"
}

// Amount returns a monetary string without the 万円 suffix but with separators.
func Amount(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + formatPositiveAmount(math.Abs(amount))
}

// Area returns a floor-area string with two decimals and the given unit
// (e.g., "102.37 tsubo").
func Area(value float64, unit string) string {
	return fmt.Sprintf("%.2f %s", value, unit)
}

// Percent returns a percentage string with two decimals (e.g., "35.00%").
func Percent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

func formatPositiveAmount(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
