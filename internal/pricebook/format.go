package pricebook

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every formatted price.
const CurrencySymbol = "$"

const defaultOptionValue = "Default Title"

// VariantLabel joins the meaningful option values with " / ". Empty
// values, "Default Title" and "nan" are skipped.
func VariantLabel(values ...string) string {
	var parts []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || v == defaultOptionValue || strings.EqualFold(v, "nan") {
			continue
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, " / ")
}

// FormatPrice renders a price cell. Missing prices render as zero and
// unparseable ones are returned as-is.
func FormatPrice(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FormatAmount(decimal.Zero)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return raw
	}
	return FormatAmount(d)
}

// FormatAmount renders d with two fraction digits, e.g. "$12.50".
func FormatAmount(d decimal.Decimal) string {
	return CurrencySymbol + d.StringFixed(2)
}
