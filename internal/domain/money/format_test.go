package money_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/tilekart/tilekart-api/internal/domain/money"
)

func TestFormat_IndianGrouping(t *testing.T) {
	f := money.NewINRFormatter()
	cases := []struct {
		in   string
		want string
	}{
		{"0", "₹0.00"},
		{"0.005", "₹0.01"}, // rounds half away from zero
		{"999", "₹999.00"},
		{"1180", "₹1,180.00"},
		{"1234567.89", "₹12,34,567.89"},
		{"99999999.999", "₹10,00,00,000.00"}, // rounds up across the crore boundary
		{"10000000", "₹1,00,00,000.00"},
	}
	for _, tc := range cases {
		got := f.Format(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got, "format of %s", tc.in)
	}
}

// TestFormat_AlwaysTwoDecimals: exactly two characters after the separator,
// whatever the input scale.
func TestFormat_AlwaysTwoDecimals(t *testing.T) {
	f := money.NewINRFormatter()
	for _, in := range []string{"0", "0.005", "1234567.89", "99999999.999", "7", "7.1"} {
		got := f.Format(decimal.RequireFromString(in))
		_, frac, ok := strings.Cut(got, ".")
		assert.True(t, ok, "no decimal separator in %q", got)
		assert.Len(t, frac, 2, "fraction of %q", got)
	}
}

// TestFormat_GenericLocale: non-Indian locales group in plain thousands via
// x/text CLDR data.
func TestFormat_GenericLocale(t *testing.T) {
	f := money.Formatter{Symbol: "$", Locale: language.English}
	got := f.Format(decimal.RequireFromString("1234567.89"))
	assert.Equal(t, "$1,234,567.89", got)
}
