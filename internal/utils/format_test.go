package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{50, "$50.00"},
		{49.99, "$49.99"},
		{0, "$0.00"},
		{99.999, "$100.00"},
		{1234.56, "$1,234.56"},
		{1234567.891, "$1,234,567.89"},
		{-5, "-$5.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatPrice(tc.amount), "amount %v", tc.amount)
	}
}

func TestFormatPriceIn(t *testing.T) {
	assert.Equal(t, "$50.00", FormatPriceIn(50, "USD"))
	assert.Equal(t, "£50.00", FormatPriceIn(50, "GBP"))
	assert.Equal(t, "£1,234.56", FormatPriceIn(1234.56, "gbp"))

	eur := FormatPriceIn(99.99, "EUR")
	assert.Contains(t, eur, "€")
	assert.Equal(t, "99,99\u00a0€", eur)
	assert.Equal(t, "1.234,56\u00a0€", FormatPriceIn(1234.56, "EUR"))

	assert.Equal(t, "CA$50.00", FormatPriceIn(50, "CAD"))
	assert.Equal(t, "CA$1,234.56", FormatPriceIn(1234.56, "cad"))
	assert.Equal(t, "$50.00", FormatPriceIn(50, "not-a-currency"))
}

func TestFormatPrice_Currency(t *testing.T) {
	assert.Equal(t, "$12.50", FormatPrice(12.5))
	assert.Equal(t, "£12.50", FormatPrice(12.5, "GBP"))
	assert.Equal(t, "12,50\u00a0€", FormatPrice(12.5, "EUR"))
}

func TestFormatDuration(t *testing.T) {
	cases := map[int]string{
		1:   "1 minutes",
		30:  "30 minutes",
		45:  "45 minutes",
		60:  "1 hour",
		61:  "1h 1m",
		90:  "1h 30m",
		120: "2 hours",
		150: "2h 30m",
		180: "3 hours",
	}
	for minutes, want := range cases {
		assert.Equal(t, want, FormatDuration(minutes), "minutes %d", minutes)
	}
}

func TestRoundPrice(t *testing.T) {
	assert.InDelta(t, 10.13, RoundPrice(10.125), 1e-9)
	assert.InDelta(t, 100.0, RoundPrice(99.999), 1e-9)
	assert.InDelta(t, 42.0, RoundPrice(42), 1e-9)
}
