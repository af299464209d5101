package finance

import (
	"fmt"
	"time"
)

// Frequency is how often a recurring transaction repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// ParseFrequency validates a frequency string from a request body.
func ParseFrequency(s string) (Frequency, error) {
	switch f := Frequency(s); f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return f, nil
	default:
		return "", fmt.Errorf("unknown recurrence frequency %q", s)
	}
}

// NextOccurrence derives the next occurrence of a recurring transaction. It
// is recomputed on demand from the persisted fields and never stored.
//
// Month and year steps use calendar arithmetic, so Jan 31 + 1 month
// normalizes past the end of February the way time.AddDate does. Returns nil
// when frequency is empty or the advanced date would land after end.
func NextOccurrence(date time.Time, frequency Frequency, end *time.Time) *time.Time {
	var next time.Time
	switch frequency {
	case FrequencyDaily:
		next = date.AddDate(0, 0, 1)
	case FrequencyWeekly:
		next = date.AddDate(0, 0, 7)
	case FrequencyMonthly:
		next = date.AddDate(0, 1, 0)
	case FrequencyYearly:
		next = date.AddDate(1, 0, 0)
	default:
		return nil
	}

	if end != nil && next.After(*end) {
		return nil
	}
	return &next
}
