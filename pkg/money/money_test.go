package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"no rounding needed", 10.55, 10.55},
		{"half rounds away from zero", 2.005, 2.01},
		{"below half rounds down", 2.004, 2.00},
		{"negative half rounds away from zero", -2.005, -2.01},
		{"three nines carry", 99.999, 100.00},
		{"half at odd cent", 2.675, 2.68},
		{"zero", 0, 0},
		{"NaN treated as zero", math.NaN(), 0},
		{"positive infinity treated as zero", math.Inf(1), 0},
		{"negative infinity treated as zero", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Round2(tt.in))
		})
	}
}

func TestRound2Idempotent(t *testing.T) {
	for _, v := range []float64{0, 1.005, 33.333, 99.999, -17.675, 1234567.891} {
		once := Round2(v)
		assert.Equal(t, once, Round2(once), "rounding an already rounded value must not move it")
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "₹0.00"},
		{"sub-thousand", 500, "₹500.00"},
		{"thousand", 1000, "₹1,000.00"},
		{"lakh grouping", 123456.5, "₹1,23,456.50"},
		{"two-decimal rounding", 1234567.891, "₹12,34,567.89"},
		{"crore grouping", 10000000, "₹1,00,00,000.00"},
		{"negative", -500, "-₹500.00"},
		{"NaN renders as zero", math.NaN(), "₹0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINR(tt.in))
		})
	}
}
