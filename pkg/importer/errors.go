package importer

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// FormatError means the input could not be classified at all. Individual
// malformed lines are skipped, not fatal.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

// OutOfRangeError means an imported service is dated outside the target
// period.
type OutOfRangeError struct {
	Date       string
	PeriodName string
	StartDate  string
	EndDate    string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("date %s is outside period %s (%s to %s)", e.Date, e.PeriodName, e.StartDate, e.EndDate)
}

type DateWeekday struct {
	Date string
	Day  time.Weekday
}

// IncompatibleRegimeError lists every imported date whose weekday has no
// régime entry in the target period. All offenders are reported in one go
// rather than failing on the first.
type IncompatibleRegimeError struct {
	Offenders []DateWeekday
}

func (e *IncompatibleRegimeError) Error() string {
	parts := make([]string, len(e.Offenders))
	for i, offender := range e.Offenders {
		parts[i] = fmt.Sprintf("%s (%s)", offender.Date, offender.Day)
	}

	return "the following dates are not compatible with the period's régime schedule: " + strings.Join(parts, ", ")
}

// ErrConfirmationRequired is returned by ApplyMerge when the plan has
// pending conflicts and the caller has not confirmed the overwrite. It is a
// decision point, not a failure: the same plan can be re-applied once
// confirmed.
var ErrConfirmationRequired = errors.New("import has pending conflicts and requires confirmation")
