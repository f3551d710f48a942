package models

import "time"

// MonthName returns the English month name for 1..12, or "—" otherwise.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return "—"
	}
	return time.Month(month).String()
}

// ValidMonth reports whether m is in 1..12.
func ValidMonth(m int) bool {
	return m >= 1 && m <= 12
}
