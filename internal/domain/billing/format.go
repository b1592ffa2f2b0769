package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

const currencySymbol = "₱"

var tolerance = decimal.New(1, -2)

func FormatCurrency(d decimal.Decimal) string {
	return currencySymbol + d.StringFixed(2)
}

// FormatAmount renders the plain two-decimal amount sent to storage.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatRate renders a unit rate with two decimals, or up to four when the rate is finer than
// a centavo (₱50/hour is 0.8333 per minute).
func FormatRate(d decimal.Decimal) string {
	r := d.Round(4)
	if r.Equal(r.Round(2)) {
		return r.StringFixed(2)
	}
	return r.String()
}

// FormatHours renders minutes as hours with one decimal place.
func FormatHours(minutes int) string {
	if minutes <= 0 {
		return "0.0"
	}
	return decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60)).StringFixed(1)
}

// ParseAmount reads a currency string such as "₱1,250.50", dropping anything that is not
// a digit, a dot or a leading minus. Unparseable input reads as zero.
func ParseAmount(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Round2 rounds half away from zero to two decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// HasDiscrepancy compares totals at cent precision with a 0.01 tolerance.
func HasDiscrepancy(calculated decimal.Decimal, stored *decimal.Decimal) bool {
	if stored == nil {
		return false
	}
	return Round2(calculated).Sub(Round2(*stored)).Abs().GreaterThan(tolerance)
}
