package util

import "time"

// FormatDateTime formats t in local time as "2006-01-02 15:04".
func FormatDateTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// FormatDateShort formats t in local time as "Jan 02 15:04".
// Zero times render as "-".
func FormatDateShort(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("Jan 02 15:04")
}
