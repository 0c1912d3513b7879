package model

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders a whole-unit price with thousands separators, e.g.
// "450,000 FCFA". Fractions are rounded away.
func FormatPrice(price decimal.Decimal, currency string) string {
	out := pricePrinter.Sprintf("%d", price.Round(0).IntPart())
	if currency = strings.TrimSpace(currency); currency != "" {
		out += " " + currency
	}
	return out
}
