package report

import (
	"fmt"
	"time"
)

// Range is a symbolic reporting period resolved against a reference day.
type Range string

const (
	RangeDay     Range = "day"
	RangeWeek    Range = "week"
	RangeMonth   Range = "month"
	RangeQuarter Range = "quarter"
	RangeYear    Range = "year"
)

// ParseRange maps a client-supplied token to a Range.
func ParseRange(s string) (Range, error) {
	switch Range(s) {
	case RangeDay, RangeWeek, RangeMonth, RangeQuarter, RangeYear:
		return Range(s), nil
	}
	return "", fmt.Errorf("unknown range %q", s)
}

// Resolve maps a range token and a reference instant to a concrete
// [start, end] window, both inclusive. The start is the first moment
// (00:00:00.000) of the period containing the reference day; the end is
// always the last moment (23:59:59.999) of the reference day itself.
//
// An unrecognized Range is a programming error and panics; user input
// must go through ParseRange first.
func Resolve(rng Range, ref time.Time) (start, end time.Time) {
	loc := ref.Location()
	end = time.Date(ref.Year(), ref.Month(), ref.Day(), 23, 59, 59, 999_000_000, loc)

	switch rng {
	case RangeDay:
		start = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)
	case RangeWeek:
		// Monday-based week: Sunday belongs to the week that started
		// six days earlier.
		back := (int(ref.Weekday()) + 6) % 7
		monday := ref.AddDate(0, 0, -back)
		start = time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, loc)
	case RangeMonth:
		start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
	case RangeQuarter:
		// 3-month blocks: Jan-Mar, Apr-Jun, Jul-Sep, Oct-Dec.
		qm := time.Month((int(ref.Month())-1)/3*3 + 1)
		start = time.Date(ref.Year(), qm, 1, 0, 0, 0, 0, loc)
	case RangeYear:
		start = time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, loc)
	default:
		panic(fmt.Sprintf("report: unknown range %q", rng))
	}
	return start, end
}
