package tracking

import (
	"strings"
	"time"
)

// Source feeds use French day names, manual exports sometimes English ones.
var dayNames = map[string]time.Weekday{
	"lundi":     time.Monday,
	"mardi":     time.Tuesday,
	"mercredi":  time.Wednesday,
	"jeudi":     time.Thursday,
	"vendredi":  time.Friday,
	"samedi":    time.Saturday,
	"dimanche":  time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

func ParseDayName(name string) (time.Weekday, bool) {
	day, ok := dayNames[strings.ToLower(strings.TrimSpace(name))]
	return day, ok
}

// referenceDates are the placeholder dates assigned to régime template rows,
// one fixed date per weekday so that each weekday stays distinguishable and
// parseable. The week of 2025-01-06 starts on a Monday.
var referenceDates = map[time.Weekday]string{
	time.Monday:    "2025-01-06",
	time.Tuesday:   "2025-01-07",
	time.Wednesday: "2025-01-08",
	time.Thursday:  "2025-01-09",
	time.Friday:    "2025-01-10",
	time.Saturday:  "2025-01-11",
	time.Sunday:    "2025-01-12",
}

func ReferenceDate(day time.Weekday) string {
	return referenceDates[day]
}

func IsReferenceDate(date string) bool {
	for _, referenceDate := range referenceDates {
		if date == referenceDate {
			return true
		}
	}

	return false
}

func WeekdayOf(date string) (time.Weekday, error) {
	parsed, err := time.Parse(DateFormat, date)
	if err != nil {
		return time.Sunday, err
	}

	return parsed.Weekday(), nil
}
