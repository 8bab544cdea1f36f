// Package money formats currency-scale amounts for tax documents.
//
// Outputs are byte-exact: they appear verbatim on invoices, so grouping is
// computed over decimal strings instead of floats. Amounts are non-negative
// by contract (the renderer trusts caller-computed totals).
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LocaleIndia selects the Indian 2-3-2 digit grouping (12,34,567.89).
var LocaleIndia = language.MustParse("en-IN")

// Formatter renders amounts with a currency symbol, locale digit grouping
// and exactly two fraction digits.
type Formatter struct {
	Symbol string
	Locale language.Tag
}

// NewINRFormatter is the default formatter for this application.
func NewINRFormatter() Formatter {
	return Formatter{Symbol: "₹", Locale: LocaleIndia}
}

// Format returns the amount with the configured symbol and grouping.
// Rounding to 2 fraction digits is half-away-from-zero (0.005 → 0.01).
func (f Formatter) Format(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, frac, _ := strings.Cut(fixed, ".")
	var grouped string
	if f.Locale == LocaleIndia {
		grouped = groupIndian(intPart)
	} else {
		grouped = groupCLDR(f.Locale, intPart)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return sign + f.Symbol + grouped + "." + frac
}

// groupIndian inserts the 2-3-2 grouping: last three digits form one group,
// the rest is grouped in pairs. "1234567" → "12,34,567".
func groupIndian(s string) string {
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}

// groupCLDR delegates grouping to x/text for non-Indian locales.
// Falls back to plain 3-digit groups if the integer part overflows int64.
func groupCLDR(tag language.Tag, s string) string {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return groupThousands(s)
	}
	return message.NewPrinter(tag).Sprintf("%d", n)
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}
