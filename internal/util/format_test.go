package util

import (
	"testing"
	"time"
)

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 0, 0, time.Local)
	if got := FormatDateTime(ts); got != "2024-03-09 14:05" {
		t.Errorf("FormatDateTime() = %q, want %q", got, "2024-03-09 14:05")
	}
}

func TestFormatDateShort(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"zero", time.Time{}, "-"},
		{"afternoon", time.Date(2024, 3, 9, 14, 5, 0, 0, time.Local), "Mar 09 14:05"},
		{"padded day", time.Date(2024, 11, 1, 8, 0, 0, 0, time.Local), "Nov 01 08:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDateShort(tt.in); got != tt.want {
				t.Errorf("FormatDateShort() = %q, want %q", got, tt.want)
			}
		})
	}
}
