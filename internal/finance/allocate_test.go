package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAllocateSavings_DefaultPercentage(t *testing.T) {
	got, err := AllocateSavings(decimal.RequireFromString("2500"), decimal.NewFromInt(10))

	assert.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("250")), "got %s", got)
}

func TestAllocateSavings_ExactArithmetic(t *testing.T) {
	cases := []struct {
		income  string
		percent string
		want    string
	}{
		{"100", "10", "10"},
		{"0", "10", "0"},
		{"100", "0", "0"},
		{"100", "100", "100"},
		{"33.33", "10", "3.333"},
		{"1999.99", "7.5", "149.99925"},
	}

	for _, c := range cases {
		got, err := AllocateSavings(decimal.RequireFromString(c.income), decimal.RequireFromString(c.percent))
		assert.NoError(t, err)
		assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
			"allocate(%s, %s) = %s, want %s", c.income, c.percent, got, c.want)
	}
}

func TestAllocateSavings_PercentOutOfRange(t *testing.T) {
	income := decimal.NewFromInt(100)

	_, err := AllocateSavings(income, decimal.RequireFromString("-0.01"))
	assert.ErrorIs(t, err, ErrPercentOutOfRange)

	_, err = AllocateSavings(income, decimal.RequireFromString("100.01"))
	assert.ErrorIs(t, err, ErrPercentOutOfRange)
}
