package timeutil

import "time"

// DateLayout defines the canonical calendar date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateWindow returns the 2*radius+1 calendar dates centered on now's date,
// oldest first. A radius of 0 yields just now's date.
func DateWindow(now time.Time, radius int) []string {
	if radius < 0 {
		radius = 0
	}
	dates := make([]string, 0, 2*radius+1)
	for offset := -radius; offset <= radius; offset++ {
		dates = append(dates, FormatDate(now.AddDate(0, 0, offset)))
	}
	return dates
}
