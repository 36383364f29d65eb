package flags

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/dn/internal/dates"
)

func AddDate(cmd *cobra.Command) {
	cmd.Flags().
		StringP("date", "d", "today", "Day of the note: today, tomorrow, +N, -N, YYYY-MM-DD or a written date.")
}

func HandleDate(cmd *cobra.Command, now time.Time) (time.Time, error) {
	value, err := cmd.Flags().GetString("date")
	if err != nil {
		return time.Time{}, err
	}
	return dates.Parse(value, now)
}

func AddAt(cmd *cobra.Command) {
	cmd.Flags().
		String("at", "", "Start time as HH:MM. Defaults to the current time.")
}

// HandleAt places the --at time on day. Without the flag it uses fallback's
// time of day.
func HandleAt(cmd *cobra.Command, day, fallback time.Time) (time.Time, error) {
	value, err := cmd.Flags().GetString("at")
	if err != nil {
		return time.Time{}, err
	}
	if value == "" {
		return dates.At(day, fallback.Hour(), fallback.Minute()), nil
	}

	hour, min, err := dates.ParseClock(value)
	if err != nil {
		return time.Time{}, err
	}
	return dates.At(day, hour, min), nil
}

func AddUntil(cmd *cobra.Command) {
	cmd.Flags().
		String("until", "", "End time as HH:MM. An end before the start falls on the next day.")
}

// HandleUntil returns the end of a note starting at start, or nil without
// the flag.
func HandleUntil(cmd *cobra.Command, start time.Time) (*time.Time, error) {
	value, err := cmd.Flags().GetString("until")
	if err != nil || value == "" {
		return nil, err
	}

	hour, min, err := dates.ParseClock(value)
	if err != nil {
		return nil, err
	}
	end := dates.At(start, hour, min)
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}
	if end.Equal(start) {
		return nil, fmt.Errorf("--until %s equals the start time", value)
	}
	return &end, nil
}
