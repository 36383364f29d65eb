package dates

import (
	"errors"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysSinceRoundTrip(t *testing.T) {
	tests := []struct {
		day  time.Time
		want int
	}{
		{day(1970, 1, 1), 0},
		{day(1970, 1, 2), 1},
		{day(1969, 12, 31), -1},
		{day(2024, 3, 10), 19792},
	}

	for _, tt := range tests {
		if got := DaysSince(tt.day); got != tt.want {
			t.Fatalf("DaysSince(%s) = %d, want %d", FormatDay(tt.day), got, tt.want)
		}
		if got := FromDays(tt.want); !got.Equal(tt.day) {
			t.Fatalf("FromDays(%d) = %s", tt.want, FormatDay(got))
		}
	}
}

func TestDaysSinceIgnoresLocation(t *testing.T) {
	loc := time.FixedZone("late", 11*3600)
	local := time.Date(2024, 3, 10, 23, 30, 0, 0, loc)
	if got := DaysSince(local); got != 19792 {
		t.Fatalf("DaysSince = %d, want 19792", got)
	}
}

func TestWeeks(t *testing.T) {
	// 1970-01-01 was a Thursday.
	if got := StartOfWeek(Epoch, time.Monday); !got.Equal(day(1969, 12, 29)) {
		t.Fatalf("StartOfWeek(epoch, monday) = %s", FormatDay(got))
	}
	if got := StartOfWeek(Epoch, time.Sunday); !got.Equal(day(1969, 12, 28)) {
		t.Fatalf("StartOfWeek(epoch, sunday) = %s", FormatDay(got))
	}

	if got := WeeksSince(day(1970, 1, 4), time.Monday); got != 0 {
		t.Fatalf("WeeksSince sunday 4th (monday start) = %d, want 0", got)
	}
	if got := WeeksSince(day(1970, 1, 4), time.Sunday); got != 1 {
		t.Fatalf("WeeksSince sunday 4th (sunday start) = %d, want 1", got)
	}
	if got := WeeksSince(day(1969, 12, 20), time.Monday); got != -2 {
		t.Fatalf("WeeksSince before epoch = %d, want -2", got)
	}

	d := day(2024, 6, 13)
	if got := FromWeeks(WeeksSince(d, time.Monday), time.Monday); !got.Equal(day(2024, 6, 10)) {
		t.Fatalf("FromWeeks = %s, want 2024-06-10", FormatDay(got))
	}
}

func TestParseDay(t *testing.T) {
	if _, err := ParseDay("2024-6-1"); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("expected ErrInvalidDay, got %v", err)
	}
	if _, err := ParseDay("2024-02-30"); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("expected ErrInvalidDay, got %v", err)
	}
	d, err := ParseDay("2024-02-29")
	if err != nil || !d.Equal(day(2024, 2, 29)) {
		t.Fatalf("ParseDay = %v, %v", d, err)
	}
}

func TestParse(t *testing.T) {
	now := time.Date(2024, 6, 13, 15, 4, 0, 0, time.Local)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"", day(2024, 6, 13)},
		{"today", day(2024, 6, 13)},
		{"Yesterday", day(2024, 6, 12)},
		{"tomorrow", day(2024, 6, 14)},
		{"+3", day(2024, 6, 16)},
		{"-13", day(2024, 5, 31)},
		{"2023-12-24", day(2023, 12, 24)},
		{"June 1, 2024", day(2024, 6, 1)},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in, now)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.in, err)
		}
		if !got.Equal(tt.want) {
			t.Fatalf("Parse(%q) = %s, want %s", tt.in, FormatDay(got), FormatDay(tt.want))
		}
	}

	if _, err := Parse("not a date", now); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("expected ErrInvalidDay, got %v", err)
	}
}

func TestDayPath(t *testing.T) {
	today := day(2024, 6, 13)
	if p := DayPath(today, today); p != "" {
		t.Fatalf("DayPath(today) = %q", p)
	}
	if p := DayPath(day(2024, 6, 1), today); p != "day/2024-06-01" {
		t.Fatalf("DayPath = %q", p)
	}
}

func TestClock(t *testing.T) {
	if got := Clock(time.Date(2024, 1, 1, 9, 5, 0, 0, time.UTC)); got != " 9:05" {
		t.Fatalf("Clock = %q", got)
	}
	if got := Clock(time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC)); got != "14:30" {
		t.Fatalf("Clock = %q", got)
	}

	h, m, err := ParseClock("07:45")
	if err != nil || h != 7 || m != 45 {
		t.Fatalf("ParseClock = %d, %d, %v", h, m, err)
	}
	if _, _, err := ParseClock("7pm"); err == nil {
		t.Fatalf("expected invalid clock")
	}
}

func TestMonthTitle(t *testing.T) {
	tests := []struct {
		date time.Time
		both bool
		want string
	}{
		{day(2024, 6, 1), false, "June 2024"},
		{day(2024, 6, 1), true, "May / June 2024"},
		{day(2024, 6, 10), true, "June 2024"},
		{day(2024, 12, 30), false, "December 2024"},
		{day(2025, 1, 2), false, "January 2025"},
		{day(2024, 12, 30), true, "December 2024 / January 2025"},
	}

	for _, tt := range tests {
		if got := MonthTitle(tt.date, time.Monday, tt.both); got != tt.want {
			t.Fatalf("MonthTitle(%s, %v) = %q, want %q", FormatDay(tt.date), tt.both, got, tt.want)
		}
	}
}

func TestWeekdays(t *testing.T) {
	got := Weekdays(time.Monday)
	want := []string{"M", "T", "W", "T", "F", "S", "S"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Weekdays = %v", got)
		}
	}
	if Weekdays(time.Sunday)[0] != "S" {
		t.Fatalf("expected sunday first")
	}

	if _, err := ParseWeekday("friday"); err == nil {
		t.Fatalf("expected invalid week start")
	}
}
