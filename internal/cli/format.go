// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatMoney formats a currency value rounded to whole dollars with
// thousands separators.
// e.g., 310000 -> "$310,000", -12345.6 -> "-$12,346"
func FormatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "$0"
	}
	n := int64(math.Round(v))
	if n < 0 {
		return "-$" + FormatNumber(-n)
	}
	return "$" + FormatNumber(n)
}

// FormatMoneyDecimal is FormatMoney for exact amounts.
func FormatMoneyDecimal(d decimal.Decimal) string {
	r := d.Round(0)
	if r.IsNegative() {
		return "-$" + printer.Sprintf("%d", r.Neg().IntPart())
	}
	return "$" + printer.Sprintf("%d", r.IntPart())
}

// FormatMoneyShort formats a currency value in whole thousands.
// e.g., 310000 -> "$310k", 1234567 -> "$1235k", -12000 -> "-$12k"
func FormatMoneyShort(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "$0k"
	}
	k := int64(math.Round(v / 1000))
	if k < 0 {
		return "-$" + strconv.FormatInt(-k, 10) + "k"
	}
	return "$" + strconv.FormatInt(k, 10) + "k"
}

// FormatMoneyShortDecimal is FormatMoneyShort for exact amounts.
func FormatMoneyShortDecimal(d decimal.Decimal) string {
	return FormatMoneyShort(d.InexactFloat64())
}

// FormatGrowth formats a monthly growth percentage with two decimals.
// Negative values that round to zero print as "0.00".
func FormatGrowth(pct float64) string {
	s := fmt.Sprintf("%.2f", pct)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatRate formats an annual rate as a percentage with up to two decimals.
// e.g., 0.08 -> "8%", 0.035 -> "3.5%"
func FormatRate(r float64) string {
	return strconv.FormatFloat(math.Round(r*10000)/100, 'f', -1, 64) + "%"
}
