package jobs

import (
	"testing"
	"time"
)

func TestCurrentPeriod(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), "2026-Q1"},
		{time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), "2026-Q1"},
		{time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), "2026-Q2"},
		{time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC), "2026-Q3"},
		{time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC), "2026-Q4"},
	}
	for _, tc := range cases {
		if got := CurrentPeriod(tc.date); got != tc.want {
			t.Fatalf("CurrentPeriod(%v) = %q, want %q", tc.date, got, tc.want)
		}
	}
}
