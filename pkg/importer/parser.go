package importer

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sinscrit/train-tracking-tool/pkg/tracking"
)

// A data line carries a day-or-date column, a train number and twelve timing
// fields. Shorter lines are noise.
const minColumns = 13

const timingColumns = 12

// ParsedRow is one normalized timetable line. Times are kept raw at this
// stage; "-" and the empty string are treated as "not served" downstream.
type ParsedRow struct {
	Date      string
	TrainID   string
	Times     [timingColumns]string
	DayOfWeek time.Weekday
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// The delimiter is detected per line, tab first, then semicolon, then
// comma. Feeds pasted from spreadsheets routinely mix them.
func splitLine(line string) []string {
	var delimiter string
	switch {
	case strings.Contains(line, "\t"):
		delimiter = "\t"
	case strings.Contains(line, ";"):
		delimiter = ";"
	default:
		delimiter = ","
	}

	columns := strings.Split(line, delimiter)
	for i, column := range columns {
		columns[i] = strings.TrimSpace(column)
	}

	return columns
}

func leadsData(firstColumn string) bool {
	if _, ok := tracking.ParseDayName(firstColumn); ok {
		return true
	}

	return datePattern.MatchString(firstColumn)
}

// ParseTimetable turns loosely formatted tabular text into normalized rows.
// Weekday-led rows are régime templates pinned to their weekday's reference
// date, date-led rows are concrete services, and rows with an empty or
// unrecognized first column continue the most recent weekday or date.
func ParseTimetable(input string) ([]ParsedRow, error) {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	// Anything before the first weekday- or date-led line is header noise.
	start := -1
	for i, line := range lines {
		if columns := splitLine(line); leadsData(columns[0]) {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, &FormatError{Message: "first row must contain a day of week or date"}
	}

	var (
		rows        []ParsedRow
		currentDay  time.Weekday
		haveDay     bool
		currentDate string
	)

	for _, line := range lines[start:] {
		columns := splitLine(line)
		if len(columns) < minColumns {
			log.Debug().Int("columns", len(columns)).Msg("Skipping line with too few columns")
			continue
		}

		first := columns[0]
		var row ParsedRow

		if day, ok := tracking.ParseDayName(first); ok {
			currentDay = day
			haveDay = true
			currentDate = ""
			row = ParsedRow{Date: tracking.ReferenceDate(day), DayOfWeek: day}
		} else if datePattern.MatchString(first) {
			day, err := tracking.WeekdayOf(first)
			if err != nil {
				return nil, &FormatError{Message: fmt.Sprintf("invalid date format: %s. Use YYYY-MM-DD", first)}
			}

			currentDate = first
			haveDay = false
			row = ParsedRow{Date: first, DayOfWeek: day}
		} else {
			// Continuation row: inherits the mode established by the
			// previous weekday- or date-led row.
			switch {
			case currentDate != "":
				day, err := tracking.WeekdayOf(currentDate)
				if err != nil {
					return nil, &FormatError{Message: fmt.Sprintf("invalid date format: %s. Use YYYY-MM-DD", currentDate)}
				}
				row = ParsedRow{Date: currentDate, DayOfWeek: day}
			case haveDay:
				row = ParsedRow{Date: tracking.ReferenceDate(currentDay), DayOfWeek: currentDay}
			default:
				return nil, &FormatError{Message: "first row must contain a day of week or date"}
			}
		}

		row.TrainID = columns[1]
		if row.TrainID == "" {
			log.Debug().Str("date", row.Date).Msg("Skipping line with blank train number")
			continue
		}

		copy(row.Times[:], columns[2:min(len(columns), 2+timingColumns)])
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, &FormatError{Message: "no valid train data found"}
	}

	return rows, nil
}
