// Package format renders engine quantities as display strings.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/solar-forecast/pkg/constants"
)

// Currency returns a whole-unit currency string with the default symbol and
// thousands separators (e.g., "-₹1,234").
func Currency(amount float64) string {
	return CurrencyWithSymbol(constants.DefaultCurrencySymbol, amount)
}

// CurrencyWithSymbol is Currency with an explicit symbol.
func CurrencyWithSymbol(symbol string, amount float64) string {
	formatted := groupDigits(fmt.Sprintf("%.0f", math.Abs(amount)))
	if amount <= -0.5 {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

// NumericCurrency returns a whole-unit amount without a currency symbol but with separators (e.g., "-1,234").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount <= -0.5 {
		sign = "-"
	}
	return sign + groupDigits(fmt.Sprintf("%.0f", math.Abs(amount)))
}

// Energy renders an annual energy figure in kWh.
func Energy(kwh float64) string {
	return groupDigits(fmt.Sprintf("%.0f", math.Max(kwh, 0))) + " kWh"
}

// Capacity renders an installed capacity in kWp with two decimals.
func Capacity(kw float64) string {
	return fmt.Sprintf("%.2f kWp", kw)
}

// Payback renders a payback year, or a distinct marker when the investment
// is not recovered within the horizon.
func Payback(year *int, horizon int) string {
	if year == nil {
		return fmt.Sprintf("not within %d years", horizon)
	}
	if *year == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", *year)
}

func groupDigits(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}
	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
