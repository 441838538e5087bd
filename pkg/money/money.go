package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 rounds a monetary value to 2 decimal places, half away from zero.
// All stored derived fields (line amounts, GST, totals) go through this so
// that recomputing totals from the same inputs always lands on the same cents.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// FormatINR renders an amount with the rupee sign, Indian digit grouping
// (lakh/crore) and exactly two decimal places. NaN and infinities render as 0.
//
//	FormatINR(1234567.891) == "₹12,34,567.89"
//	FormatINR(-500)        == "-₹500.00"
func FormatINR(v float64) string {
	d := decimal.NewFromFloat(Round2(v))

	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}

	s := d.StringFixed(2)
	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("₹")
	b.WriteString(groupIndian(intPart))
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// groupIndian inserts commas in the Indian numbering pattern: the last three
// digits form one group, every two digits after that form the next.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	head := digits[:n-3]
	tail := digits[n-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)
	return strings.Join(groups, ",")
}
