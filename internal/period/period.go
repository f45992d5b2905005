// Package period resolves report periods into calendar date ranges.
//
// A Range holds two calendar dates, both inclusive, expressed as midnight in
// the location of the reference instant they were resolved from.
package period

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind selects a report period.
type Kind int

const (
	// Day is the calendar date of the reference instant.
	Day Kind = iota + 1
	// Week is the Sunday..Saturday week containing the reference instant.
	Week
	// Fortnight is the trailing 15-day window ending on the reference date.
	Fortnight
	// Month runs from the first of the month to the reference date.
	Month
)

// ErrInvalidPeriod is returned for an unknown period selector.
var ErrInvalidPeriod = errors.New("invalid period")

var selectors = map[string]Kind{
	"day":       Day,
	"week":      Week,
	"fortnight": Fortnight,
	"month":     Month,
	"dia":       Day,
	"semana":    Week,
	"quinzena":  Fortnight,
	"mes":       Month,
}

// Parse maps a selector to a Kind. Both the English names and the
// Portuguese ones used by the dashboard client (dia, semana, quinzena, mes)
// are accepted, case-insensitively.
func Parse(s string) (Kind, error) {
	k, ok := selectors[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q (must be one of: day, week, fortnight, month)", ErrInvalidPeriod, s)
	}
	return k, nil
}

// String returns the English selector.
func (k Kind) String() string {
	switch k {
	case Day:
		return "day"
	case Week:
		return "week"
	case Fortnight:
		return "fortnight"
	case Month:
		return "month"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Range is an inclusive span of calendar dates.
type Range struct {
	Start time.Time
	End   time.Time
}

// Resolve returns the range of kind containing ref.
func Resolve(kind Kind, ref time.Time) (Range, error) {
	today := StartOfDay(ref)

	switch kind {
	case Day:
		return Range{Start: today, End: today}, nil
	case Week:
		start := today.AddDate(0, 0, -int(today.Weekday()))
		return Range{Start: start, End: start.AddDate(0, 0, 6)}, nil
	case Fortnight:
		return Range{Start: today.AddDate(0, 0, -14), End: today}, nil
	case Month:
		return Range{Start: firstOfMonth(today), End: today}, nil
	default:
		return Range{}, fmt.Errorf("%w: %s", ErrInvalidPeriod, kind)
	}
}

// Contains reports whether the calendar date of t, read in the range's
// location, lies within [Start, End].
func (r Range) Contains(t time.Time) bool {
	d := StartOfDay(t.In(r.Start.Location()))
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns the number of calendar days in the range, both ends included.
func (r Range) Days() int {
	if r.End.Before(r.Start) {
		return 0
	}
	return daysBetween(r.Start, r.End) + 1
}

// Bounds returns the half-open instant window [from, to) covering the range.
func (r Range) Bounds() (from, to time.Time) {
	return r.Start, r.End.AddDate(0, 0, 1)
}

// String formats the range as "YYYY-MM-DD..YYYY-MM-DD".
func (r Range) String() string {
	return r.Start.Format(time.DateOnly) + ".." + r.End.Format(time.DateOnly)
}

// DaysPassedInMonth counts days from the first of ref's month to ref's date;
// the first of the month is day 1.
func DaysPassedInMonth(ref time.Time) int {
	return ref.Day()
}

// DaysInMonth returns the length of ref's calendar month.
func DaysInMonth(ref time.Time) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location()).Day()
}

// StartOfDay returns midnight of t's calendar date in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days, immune to DST-length days.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
