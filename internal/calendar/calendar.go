// Package calendar defines the weekly cycle boundaries of the household.
//
// A cycle is one week starting on WeekStart. Every function here is pure and
// evaluates the instant in its own location, so callers decide the time zone
// by converting the instant before asking.
package calendar

import (
	"fmt"
	"time"
)

const (
	// WeekStart is the first day of every cycle.
	WeekStart = time.Tuesday
	// RotationDay is the day assignments advance to the next member.
	RotationDay = time.Tuesday
	// QualityCheckDay is the day members rate the previous cycle.
	QualityCheckDay = time.Monday

	keyLayout     = "2006-01-02"
	displayLayout = "Jan 02, 2006"
	daysPerWeek   = 7
)

// CycleKey identifies a cycle by the calendar date of its first day.
type CycleKey string

// ParseCycleKey validates a yyyy-mm-dd date. The date does not have to be a
// cycle start; use Normalize for that.
func ParseCycleKey(s string) (CycleKey, error) {
	t, err := time.Parse(keyLayout, s)
	if err != nil {
		return "", fmt.Errorf("parse cycle key %q: %w", s, err)
	}
	return keyOf(t), nil
}

// Time returns midnight UTC of the key's date.
func (k CycleKey) Time() time.Time {
	t, err := time.Parse(keyLayout, string(k))
	if err != nil {
		return time.Time{}
	}
	return t
}

// String implements fmt.Stringer.
func (k CycleKey) String() string { return string(k) }

// AddWeeks shifts the key by n whole weeks.
func (k CycleKey) AddWeeks(n int) CycleKey {
	return keyOf(k.Time().AddDate(0, 0, n*daysPerWeek))
}

// Normalize maps the key's date onto the start of its cycle.
func (k CycleKey) Normalize() CycleKey {
	return CycleStart(k.Time())
}

// Display formats the key for humans, e.g. "Oct 13, 2026".
func (k CycleKey) Display() string {
	return k.Time().Format(displayLayout)
}

// CycleStart returns the first day of the cycle containing t.
func CycleStart(t time.Time) CycleKey {
	offset := (int(t.Weekday()) - int(WeekStart) + daysPerWeek) % daysPerWeek
	return keyOf(dateOf(t).AddDate(0, 0, -offset))
}

// CycleEnd returns the last day (inclusive) of the cycle containing t.
func CycleEnd(t time.Time) CycleKey {
	return keyOf(CycleStart(t).Time().AddDate(0, 0, daysPerWeek-1))
}

// NextCycleStart returns the first day of the cycle after the one containing t.
func NextCycleStart(t time.Time) CycleKey {
	return CycleStart(t).AddWeeks(1)
}

// PreviousCycleStart returns the first day of the cycle before the one containing t.
func PreviousCycleStart(t time.Time) CycleKey {
	return CycleStart(t).AddWeeks(-1)
}

// IsRotationDay reports whether t falls on the rotation weekday.
func IsRotationDay(t time.Time) bool {
	return t.Weekday() == RotationDay
}

// IsQualityCheckDay reports whether t falls on the quality-check weekday.
// With a Tuesday week start the check day is the last day of a cycle, so the
// cycle being rated is always the one before the check day's cycle.
func IsQualityCheckDay(t time.Time) bool {
	return t.Weekday() == QualityCheckDay
}

// dateOf drops the time of day while keeping the calendar date of t's location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func keyOf(t time.Time) CycleKey {
	return CycleKey(t.Format(keyLayout))
}
