package datelike

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/datetime"
)

func TestResolve(t *testing.T) {
	loc := time.UTC
	want := time.Date(2015, 1, 15, 0, 0, 0, 0, loc)
	cases := []struct {
		name string
		in   Value
	}{
		{"millis", Millis(want.UnixMilli())},
		{"time", Time(want)},
		{"calendar", Calendar(datetime.CalendarDate{Year: 2015, Month: 1, Day: 15})},
		{"ymd", YMD(2015, time.January, 15)},
	}
	for _, tc := range cases {
		got, ok, err := tc.in.Resolve(loc)
		if err != nil || !ok || !got.Equal(want) {
			t.Fatalf("%s: Resolve()=%v,%v,%v want %v", tc.name, got, ok, err, want)
		}
	}
}

func TestResolve_None(t *testing.T) {
	for _, v := range []Value{None, Time(time.Time{})} {
		if _, ok, err := v.Resolve(time.UTC); ok || err != nil {
			t.Fatalf("expected none to resolve to !ok, got ok=%v err=%v", ok, err)
		}
		if !v.IsNone() {
			t.Fatalf("expected IsNone for %v", v)
		}
	}
}

func TestResolve_InvalidCalendarDate(t *testing.T) {
	_, ok, err := YMD(2015, time.February, 29).Resolve(time.UTC)
	var ide *InvalidDateError
	if ok || !errors.As(err, &ide) {
		t.Fatalf("expected InvalidDateError for 2015-02-29, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := YMD(2016, time.February, 29).Resolve(time.UTC); !ok || err != nil {
		t.Fatalf("2016-02-29 is a real day, got ok=%v err=%v", ok, err)
	}
	if ValidCalendarDate(datetime.CalendarDate{Year: 2015, Month: 13, Day: 1}) {
		t.Fatalf("month 13 must be invalid")
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2015-06-01", time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"2015-06-01 14:30", time.Date(2015, 6, 1, 14, 30, 0, 0, time.UTC)},
		{"2015-06", time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"2015", time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"1420070400000", time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2015-06-01T10:00:00Z", time.Date(2015, 6, 1, 10, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		v, err := Parse(tc.in, time.UTC)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		got, ok, err := v.Resolve(time.UTC)
		if err != nil || !ok || !got.Equal(tc.want) {
			t.Fatalf("Parse(%q) resolved to %v,%v,%v want %v", tc.in, got, ok, err, tc.want)
		}
	}
	if v, err := Parse("  ", time.UTC); err != nil || !v.IsNone() {
		t.Fatalf("blank should parse to none, got %v,%v", v, err)
	}
	if _, err := Parse("next tuesday", time.UTC); err == nil {
		t.Fatalf("expected error for free text")
	}
}

func TestFromAny(t *testing.T) {
	v, err := FromAny(float64(1420070400000), time.UTC)
	if err != nil {
		t.Fatalf("FromAny(float64): %v", err)
	}
	got, _, _ := v.Resolve(time.UTC)
	if got.Year() != 2015 {
		t.Fatalf("unexpected year %d", got.Year())
	}
	if _, err := FromAny([]int{1}, time.UTC); err == nil {
		t.Fatalf("expected error for slice input")
	}
}
