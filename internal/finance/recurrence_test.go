package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseFrequency(t *testing.T) {
	for _, s := range []string{"daily", "weekly", "monthly", "yearly"} {
		f, err := ParseFrequency(s)
		assert.NoError(t, err)
		assert.Equal(t, Frequency(s), f)
	}

	_, err := ParseFrequency("fortnightly")
	assert.Error(t, err)
}

func TestNextOccurrence_EachFrequency(t *testing.T) {
	start := date(2025, time.January, 15)

	cases := []struct {
		frequency Frequency
		want      time.Time
	}{
		{FrequencyDaily, date(2025, time.January, 16)},
		{FrequencyWeekly, date(2025, time.January, 22)},
		{FrequencyMonthly, date(2025, time.February, 15)},
		{FrequencyYearly, date(2026, time.January, 15)},
	}

	for _, c := range cases {
		got := NextOccurrence(start, c.frequency, nil)
		assert.NotNil(t, got, "frequency %s", c.frequency)
		assert.Equal(t, c.want, *got, "frequency %s", c.frequency)
	}
}

func TestNextOccurrence_MonthEndNormalization(t *testing.T) {
	// AddDate semantics: Jan 31 + 1 month rolls into early March.
	got := NextOccurrence(date(2025, time.January, 31), FrequencyMonthly, nil)
	assert.NotNil(t, got)
	assert.Equal(t, date(2025, time.March, 3), *got)
}

func TestNextOccurrence_NoFrequency(t *testing.T) {
	assert.Nil(t, NextOccurrence(date(2025, time.January, 15), "", nil))
}

func TestNextOccurrence_PastEndDate(t *testing.T) {
	end := date(2025, time.January, 20)

	assert.Nil(t, NextOccurrence(date(2025, time.January, 15), FrequencyWeekly, &end))

	// Landing exactly on the end date still counts as an occurrence.
	got := NextOccurrence(date(2025, time.January, 13), FrequencyWeekly, &end)
	assert.NotNil(t, got)
	assert.Equal(t, end, *got)
}

func TestNextOccurrence_IdempotentAdvance(t *testing.T) {
	// Re-evaluating on its own output advances by exactly one more unit.
	first := NextOccurrence(date(2025, time.March, 1), FrequencyMonthly, nil)
	assert.NotNil(t, first)

	second := NextOccurrence(*first, FrequencyMonthly, nil)
	assert.NotNil(t, second)
	assert.Equal(t, date(2025, time.May, 1), *second)
}
