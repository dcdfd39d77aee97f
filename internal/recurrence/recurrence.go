// Package recurrence computes occurrence schedules for recurring expenses.
// All functions are pure calendar-date arithmetic; callers own persistence
// and the at-most-once advancement of a rule's next occurrence.
package recurrence

import "time"

// Frequency is the cadence at which a recurring expense repeats.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// ParseFrequency validates a frequency string.
func ParseFrequency(s string) (Frequency, bool) {
	switch f := Frequency(s); f {
	case Daily, Weekly, Monthly, Yearly:
		return f, true
	}
	return "", false
}

// Next returns the occurrence after anchor for the given frequency.
//
// Monthly and yearly steps use Go's AddDate normalization: when the anchor
// day does not exist in the target month the date rolls forward into the
// following month (Jan 31 + 1 month lands in early March, Feb 29 + 1 year
// lands on Mar 1).
func Next(anchor time.Time, frequency Frequency) time.Time {
	switch frequency {
	case Daily:
		return anchor.AddDate(0, 0, 1)
	case Weekly:
		return anchor.AddDate(0, 0, 7)
	case Monthly:
		return anchor.AddDate(0, 1, 0)
	case Yearly:
		return anchor.AddDate(1, 0, 0)
	}
	return anchor
}

// IsDue reports whether an occurrence should materialize as of the given
// day. Both dates are truncated to midnight: an occurrence is due once its
// calendar day has arrived, and never after the rule's end date.
func IsDue(nextOccurrence time.Time, endDate *time.Time, asOf time.Time) bool {
	occurrence := truncateToDay(nextOccurrence)

	if occurrence.After(truncateToDay(asOf)) {
		return false
	}

	if endDate != nil && occurrence.After(truncateToDay(*endDate)) {
		return false
	}

	return true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
