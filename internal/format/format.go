// Package format renders amounts and dates according to the user's
// settings.
package format

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/moneytrack-dev/moneytrack/internal/model"
)

// Symbol returns the currency symbol for a currency code, defaulting to "$"
// for anything unrecognized.
func Symbol(currency string) string {
	switch currency {
	case model.CurrencyINR:
		return "₹"
	case model.CurrencyEUR:
		return "€"
	case model.CurrencyGBP:
		return "£"
	case model.CurrencyUSD:
		return "$"
	}
	return "$"
}

// Amount renders an amount with the settings' currency symbol, thousands
// grouping, and two fixed decimals. The sign is dropped; callers prefix
// "+" or "-" from the transaction type.
func Amount(settings model.Settings, amount decimal.Decimal) string {
	return Symbol(settings.Currency) + group(amount.Abs().StringFixed(2))
}

// Date renders a date in the settings' display format.
func Date(settings model.Settings, d model.Date) string {
	switch settings.DateFormat {
	case model.DateFormatDMY:
		return d.Format("02/01/2006")
	case model.DateFormatISO:
		return d.Format("2006-01-02")
	default:
		return d.Format("01/02/2006")
	}
}

// group inserts comma separators into the integer part of a fixed-decimal
// string.
func group(s string) string {
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
