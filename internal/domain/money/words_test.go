package money_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tilekart/tilekart-api/internal/domain/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Exact vectors — these strings are printed verbatim on invoices, so every
// crore/lakh/thousand boundary must match.
// ──────────────────────────────────────────────────────────────────────────────

func TestAmountToWords_ExactVectors(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Zero"},
		{1, "One"},
		{10, "Ten"},
		{13, "Thirteen"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{21, "Twenty One"},
		{100, "One Hundred"},
		{105, "One Hundred Five"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{1018, "One Thousand Eighteen"},
		{100000, "One Lakh"},
		{1000000, "Ten Lakh"},
		{1234567, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
		{1000000000, "One Hundred Crore"},
	}
	for _, tc := range cases {
		got := money.AmountToWords(decimal.NewFromInt(tc.amount))
		assert.Equal(t, tc.want, got, "words for %d", tc.amount)
	}
}

// TestAmountToWords_PaiseIgnored: only the whole-rupee part is converted.
func TestAmountToWords_PaiseIgnored(t *testing.T) {
	got := money.AmountToWords(decimal.RequireFromString("1180.75"))
	assert.Equal(t, "One Thousand One Hundred Eighty", got)
}

// TestAmountToWords_TeensNeverDecomposed: 10-19 must use the single teen
// word, never a tens+ones decomposition like "Ten Nine".
func TestAmountToWords_TeensNeverDecomposed(t *testing.T) {
	for n := int64(10); n <= 19; n++ {
		got := money.AmountToWords(decimal.NewFromInt(n))
		assert.NotContains(t, got, " ", "teen %d must be a single word, got %q", n, got)
	}
}

// TestAmountToWords_NoDoubledSpaces over a spread of awkward values (zero
// hundreds, zero tens, empty middle segments).
func TestAmountToWords_NoDoubledSpaces(t *testing.T) {
	samples := []int64{0, 5, 40, 101, 110, 1001, 10010, 100001, 1000001, 10000001, 20300040}
	for _, n := range samples {
		got := money.AmountToWords(decimal.NewFromInt(n))
		assert.NotContains(t, got, "  ", "doubled space in words for %d: %q", n, got)
		assert.Equal(t, strings.TrimSpace(got), got, "leading/trailing space for %d: %q", n, got)
	}
}
