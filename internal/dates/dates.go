// Package dates works with civil days. A day is a time.Time at midnight UTC
// carrying the wall-clock date, so day arithmetic never crosses a DST edge.
package dates

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DayLayout is the canonical day identifier.
const DayLayout = "2006-01-02"

// Epoch is the reference origin of day and week offsets.
var Epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

var ErrInvalidDay = errors.New("invalid day")

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Civil returns the day t falls on in its own location.
func Civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Plain drops the location of t keeping the wall clock.
func Plain(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// Today returns the civil day of now.
func Today(now time.Time) time.Time {
	return Civil(now)
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// AddDays moves d by n days.
func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// DaysSince returns the number of days between Epoch and d.
func DaysSince(d time.Time) int {
	return floorDiv(Civil(d).Unix()-Epoch.Unix(), 86400)
}

// FromDays is the inverse of DaysSince.
func FromDays(n int) time.Time {
	return AddDays(Epoch, n)
}

// StartOfWeek returns the first day of the week d belongs to.
func StartOfWeek(d time.Time, first time.Weekday) time.Time {
	d = Civil(d)
	back := (int(d.Weekday()) - int(first) + 7) % 7
	return AddDays(d, -back)
}

// WeeksSince returns the number of weeks between the week of Epoch and the
// week of d.
func WeeksSince(d time.Time, first time.Weekday) int {
	from := DaysSince(StartOfWeek(Epoch, first))
	to := DaysSince(StartOfWeek(d, first))
	return floorDiv(int64(to-from), 7)
}

// FromWeeks returns the first day of the week n weeks after Epoch's week.
func FromWeeks(n int, first time.Weekday) time.Time {
	return AddDays(StartOfWeek(Epoch, first), 7*n)
}

// ParseDay parses a YYYY-MM-DD identifier.
func ParseDay(s string) (time.Time, error) {
	if !dayPattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	d, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return d, nil
}

// FormatDay returns the YYYY-MM-DD identifier of d.
func FormatDay(d time.Time) string {
	return d.Format(DayLayout)
}

// DayPath returns the route of d, empty for today.
func DayPath(d, today time.Time) string {
	if SameDay(d, today) {
		return ""
	}
	return "day/" + FormatDay(d)
}

// Parse resolves user input to a day relative to now. It understands
// today, yesterday, tomorrow, +N and -N day offsets, YYYY-MM-DD, and
// anything dateparse recognises.
func Parse(input string, now time.Time) (time.Time, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	today := Today(now)

	switch s {
	case "", "today":
		return today, nil
	case "yesterday":
		return AddDays(today, -1), nil
	case "tomorrow":
		return AddDays(today, 1), nil
	}

	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		if n, err := strconv.Atoi(s); err == nil {
			return AddDays(today, n), nil
		}
	}

	if dayPattern.MatchString(s) {
		return ParseDay(s)
	}

	t, err := dateparse.ParseIn(input, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDay, input)
	}
	return Civil(t), nil
}

// ParseClock parses HH:MM into hours and minutes.
func ParseClock(s string) (int, int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	return t.Hour(), t.Minute(), nil
}

// At returns day d at the given wall clock time.
func At(d time.Time, hour, min int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, time.UTC)
}

// StartOfDay and EndOfDay bound the wall clock range of d.
func StartOfDay(d time.Time) time.Time {
	return Civil(d)
}

func EndOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, time.UTC)
}

// Clock renders t as HH:MM with a leading zero shown as a space.
func Clock(t time.Time) string {
	s := t.Format("15:04")
	if s[0] == '0' {
		return " " + s[1:]
	}
	return s
}

// MonthTitle names the month and year of d. When both is set and the week
// of d spans two months, both months are named, each with its year when the
// years differ.
func MonthTitle(d time.Time, first time.Weekday, both bool) string {
	start := StartOfWeek(d, first)
	end := AddDays(start, 6)
	if !both || start.Month() == end.Month() {
		return fmt.Sprintf("%s %d", d.Month(), d.Year())
	}
	if start.Year() != end.Year() {
		return fmt.Sprintf("%s %d / %s %d", start.Month(), start.Year(), end.Month(), end.Year())
	}
	return fmt.Sprintf("%s / %s %d", start.Month(), end.Month(), end.Year())
}

// Weekdays returns the narrow weekday names starting at first.
func Weekdays(first time.Weekday) []string {
	out := make([]string, 7)
	for i := range out {
		out[i] = ((first + time.Weekday(i)) % 7).String()[:1]
	}
	return out
}

// ParseWeekday accepts monday or sunday.
func ParseWeekday(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monday", "mon", "":
		return time.Monday, nil
	case "sunday", "sun":
		return time.Sunday, nil
	}
	return time.Monday, fmt.Errorf("invalid week start %q, want monday or sunday", s)
}

func floorDiv(a, b int64) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return int(q)
}
