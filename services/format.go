package services

import (
	"fmt"
	"strings"
	"time"
)

// FormatGBP formats a float64 amount as pounds sterling with thousands
// grouping and exactly 2 decimal places, e.g. £12,345.67. Negative amounts
// render with a leading minus: -£100.00.
func FormatGBP(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "£" + groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas into an integer string every 3 digits from
// the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}

// ukDateLayout is the fixed day/month/year pattern used throughout the UI.
const ukDateLayout = "02/01/2006"

// FormatUKDate formats a time in UK convention (dd/mm/yyyy).
func FormatUKDate(t time.Time) string {
	return t.Format(ukDateLayout)
}

// ParseUKDate parses a string in either UK (dd/mm/yyyy) or ISO (yyyy-mm-dd)
// form. The zero time and false are returned when neither layout matches.
func ParseUKDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(ukDateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
