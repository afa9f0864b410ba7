package shared

import (
	"fmt"
	"regexp"
)

var periodPattern = regexp.MustCompile(`^\d{4}-Q[1-4]$`)

// ValidPeriod reports whether value is a review quarter like "2026-Q2".
func ValidPeriod(value string) bool {
	return periodPattern.MatchString(value)
}

func PeriodError(value string) error {
	if ValidPeriod(value) {
		return nil
	}
	return fmt.Errorf("period %q must look like 2026-Q2", value)
}
