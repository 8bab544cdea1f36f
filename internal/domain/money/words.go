package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Indian numbering scale.
const (
	crore = 10_000_000
	lakh  = 100_000
)

var onesWords = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// AmountToWords converts the whole-rupee part of an amount to words on the
// Indian scale (Crore/Lakh/Thousand). The paise fraction is ignored; this
// mirrors what the printed "Amount in words" line carries. Returns "Zero"
// for a zero amount.
func AmountToWords(d decimal.Decimal) string {
	rupees := d.IntPart()
	if rupees <= 0 {
		return "Zero"
	}
	return inWords(rupees)
}

func inWords(n int64) string {
	var parts []string
	if n >= crore {
		parts = append(parts, inWords(n/crore), "Crore")
		n %= crore
	}
	if n >= lakh {
		parts = append(parts, underThousand(n/lakh), "Lakh")
		n %= lakh
	}
	if n >= 1000 {
		parts = append(parts, underThousand(n/1000), "Thousand")
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, underThousand(n))
	}
	return strings.Join(parts, " ")
}

// underThousand spells 1-999. Teens stay single words; a zero tens/ones
// component emits no trailing word.
func underThousand(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, onesWords[n/100], "Hundred")
		n %= 100
	}
	switch {
	case n >= 20:
		if n%10 != 0 {
			parts = append(parts, tensWords[n/10], onesWords[n%10])
		} else {
			parts = append(parts, tensWords[n/10])
		}
	case n > 0:
		parts = append(parts, onesWords[n])
	}
	return strings.Join(parts, " ")
}
