package utils

import (
	"time"
)

var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05-07:00",
	time.RFC3339,
}

func IsValidDate(dateStr string) bool {
	if dateStr == "" {
		return false
	}

	for _, format := range dateFormats {
		if _, err := time.Parse(format, dateStr); err == nil {
			return true
		}
	}

	return false
}

// ParseDateFlexible accepts the same formats as IsValidDate. Callers treat a
// false result as "no date" rather than an error.
func ParseDateFlexible(dateStr string) (time.Time, bool) {
	if dateStr == "" {
		return time.Time{}, false
	}

	for _, format := range dateFormats {
		if parsed, err := time.Parse(format, dateStr); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// EndOfDay promotes a date to 23:59:59 so "to" bounds include same-day records.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// WholeMonthsBetween returns the whole-month difference between start and now,
// floored at 0.
func WholeMonthsBetween(start, now time.Time) int {
	if start.IsZero() || now.Before(start) {
		return 0
	}

	months := (now.Year()-start.Year())*12 + int(now.Month()) - int(start.Month())
	if now.Day() < start.Day() {
		months--
	}

	if months < 0 {
		return 0
	}
	return months
}

// CeilDaysUntil returns the number of days from now until target, rounded up.
// Past targets yield negative values.
func CeilDaysUntil(target, now time.Time) int {
	diff := target.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}
