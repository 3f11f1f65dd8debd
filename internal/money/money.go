// Package money formats prices for display.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders d as US dollars with two decimals and digit grouping, e.g. "$1,249.97".
func Format(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign, d = "-", d.Neg()
	}
	return sign + "$" + printer.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(2)))
}

// Plain renders d with exactly two decimals and no symbol, the form used in logs and the CLI.
func Plain(d decimal.Decimal) string {
	return d.StringFixed(2)
}
