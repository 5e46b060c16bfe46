// Package civil works with calendar dates in YYYY-MM-DD form, anchored to the
// Europe/Berlin civil calendar. Dates compare lexicographically.
package civil

import (
	"fmt"
	"regexp"
	"time"
	_ "time/tzdata"
)

const Layout = "2006-01-02"

var (
	isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// Berlin is the reference calendar for every bucket and window.
	Berlin = mustLoadLocation("Europe/Berlin")
)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("can't load location %s: %v", name, err))
	}
	return loc
}

// Valid reports whether s is a YYYY-MM-DD string naming a real calendar day.
func Valid(s string) bool {
	if !isoDate.MatchString(s) {
		return false
	}
	_, err := time.Parse(Layout, s)
	return err == nil
}

// Today returns the Berlin calendar date at instant now.
func Today(now time.Time) string {
	return now.In(Berlin).Format(Layout)
}

// parse reads d as a UTC midnight so day arithmetic never crosses a DST edge.
func parse(d string) (time.Time, bool) {
	t, err := time.Parse(Layout, d)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AddDays shifts d by n days. Invalid input yields "".
func AddDays(d string, n int) string {
	t, ok := parse(d)
	if !ok {
		return ""
	}
	return t.AddDate(0, 0, n).Format(Layout)
}

// MondayOf returns the Monday of the ISO week containing d. Sunday counts as
// day 7, so it maps to the preceding Monday.
func MondayOf(d string) string {
	t, ok := parse(d)
	if !ok {
		return ""
	}
	daysBack := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -daysBack).Format(Layout)
}

// FirstOfMonth returns the first day of d's month.
func FirstOfMonth(d string) string {
	t, ok := parse(d)
	if !ok {
		return ""
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).Format(Layout)
}

// Between reports whether start <= d <= end.
func Between(d, start, end string) bool {
	return d >= start && d <= end
}

// InclusiveRange returns the trailing window of the given number of days
// that ends yesterday: [today-days, today-1].
func InclusiveRange(today string, days int) (string, string, error) {
	if days < 1 {
		return "", "", fmt.Errorf("days must be at least 1, got %d", days)
	}
	if !Valid(today) {
		return "", "", fmt.Errorf("invalid reference date %q", today)
	}
	return AddDays(today, -days), AddDays(today, -1), nil
}
