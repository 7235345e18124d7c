package service

import (
	"fmt"
	"time"
)

// Window is the published-date range governing which videos a report covers:
// either a preset lookback in days or an explicit start/end pair.
type Window struct {
	Days  int
	Start time.Time
	End   time.Time
}

// presetDays are the lookbacks the dashboard sidebar offers.
var presetDays = map[int]bool{7: true, 30: true, 90: true, 365: true}

// PresetWindow returns a lookback window over the given number of days.
func PresetWindow(days int) (Window, error) {
	if !presetDays[days] {
		return Window{}, fmt.Errorf("period must be one of 7, 30, 90, 365 (got %d)", days)
	}
	return Window{Days: days}, nil
}

// RangeWindow returns an explicit date-range window. End must not precede
// start, and start may not reach further back than two years.
func RangeWindow(start, end time.Time) (Window, error) {
	if end.Before(start) {
		return Window{}, fmt.Errorf("end date must not precede start date")
	}
	if floor := time.Now().AddDate(-2, 0, 0); start.Before(floor) {
		return Window{}, fmt.Errorf("start date must be within the last two years")
	}
	return Window{Start: start, End: end}, nil
}

// PublishedAfter is the inclusive lower bound handed to the provider.
func (w Window) PublishedAfter(now time.Time) time.Time {
	if w.Days > 0 {
		return now.AddDate(0, 0, -w.Days)
	}
	return w.Start
}

// Label names the window for display ("last 30 days", "Jan 02, 2024 to Mar 01, 2024").
func (w Window) Label() string {
	if w.Days > 0 {
		return fmt.Sprintf("last %d days", w.Days)
	}
	return w.Start.Format("Jan 02, 2006") + " to " + w.End.Format("Jan 02, 2006")
}

// EmptyNotice is the informational message shown when the window holds no
// videos. It names the active filter rather than reporting an error.
func (w Window) EmptyNotice() string {
	if w.Days > 0 {
		return fmt.Sprintf("No videos found in the selected time period (last %d days)", w.Days)
	}
	return fmt.Sprintf("No videos found between %s and %s",
		w.Start.Format("Jan 02, 2006"), w.End.Format("Jan 02, 2006"))
}
