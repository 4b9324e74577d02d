package report

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestResolve_EndIsAlwaysEndOfReferenceDay(t *testing.T) {
	ref := date(2024, time.March, 15)
	want := time.Date(2024, time.March, 15, 23, 59, 59, 999_000_000, time.UTC)

	for _, rng := range []Range{RangeDay, RangeWeek, RangeMonth, RangeQuarter, RangeYear} {
		_, end := Resolve(rng, ref)
		if !end.Equal(want) {
			t.Errorf("Resolve(%s) end = %v, want %v", rng, end, want)
		}
	}
}

func TestResolve_Starts(t *testing.T) {
	tests := []struct {
		name string
		rng  Range
		ref  time.Time
		want time.Time
	}{
		{"day", RangeDay, date(2024, time.March, 15), time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"week from friday", RangeWeek, date(2024, time.March, 15), time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)},
		{"week from monday", RangeWeek, date(2024, time.March, 11), time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)},
		{"month", RangeMonth, date(2024, time.March, 15), time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{"month crossing feb", RangeMonth, date(2024, time.February, 29), time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{"quarter q1", RangeQuarter, date(2024, time.March, 15), time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"quarter q2", RangeQuarter, date(2024, time.April, 1), time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)},
		{"quarter q3", RangeQuarter, date(2024, time.September, 30), time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)},
		{"quarter q4", RangeQuarter, date(2024, time.December, 25), time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{"year", RangeYear, date(2024, time.August, 20), time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		start, _ := Resolve(tt.rng, tt.ref)
		if !start.Equal(tt.want) {
			t.Errorf("%s: Resolve(%s, %v) start = %v, want %v", tt.name, tt.rng, tt.ref, start, tt.want)
		}
	}
}

// A Sunday reference belongs to the week that started the Monday six
// days earlier, not to the following week.
func TestResolve_WeekSundayBelongsToPreviousWeek(t *testing.T) {
	sunday := date(2024, time.March, 17)
	if sunday.Weekday() != time.Sunday {
		t.Fatalf("fixture is not a Sunday: %v", sunday.Weekday())
	}

	start, _ := Resolve(RangeWeek, sunday)
	want := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("week start for Sunday ref = %v, want %v", start, want)
	}
}

func TestResolve_UnknownRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Resolve with unknown range did not panic")
		}
	}()
	Resolve(Range("fortnight"), time.Now())
}

func TestParseRange(t *testing.T) {
	for _, s := range []string{"day", "week", "month", "quarter", "year"} {
		if _, err := ParseRange(s); err != nil {
			t.Errorf("ParseRange(%q) error = %v, want nil", s, err)
		}
	}
	for _, s := range []string{"", "Day", "months", "fortnight"} {
		if _, err := ParseRange(s); err == nil {
			t.Errorf("ParseRange(%q) error = nil, want error", s)
		}
	}
}
