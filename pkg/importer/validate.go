package importer

import (
	"github.com/sinscrit/train-tracking-tool/pkg/tracking"
)

// ValidatePeriodRange checks that every service is dated inside the target
// period, failing on the first offender.
func ValidatePeriodRange(services []*tracking.Service, period *tracking.Period) error {
	for _, service := range services {
		if !period.ContainsDate(service.Date) {
			return &OutOfRangeError{
				Date:       service.Date,
				PeriodName: period.Name,
				StartDate:  period.StartDate,
				EndDate:    period.EndDate,
			}
		}
	}

	return nil
}

// ValidateRegimeDays checks that every service falls on a weekday with a
// non-empty régime entry. Offenders are collected and reported as one batch
// so the operator can fix the whole feed in a single pass.
func ValidateRegimeDays(services []*tracking.Service, regime tracking.Regime) error {
	var offenders []DateWeekday

	for _, service := range services {
		day, err := service.Weekday()
		if err != nil {
			// Unparseable dates are the range check's problem
			continue
		}

		if !regime.HasDay(day) {
			offenders = append(offenders, DateWeekday{Date: service.Date, Day: day})
		}
	}

	if len(offenders) > 0 {
		return &IncompatibleRegimeError{Offenders: offenders}
	}

	return nil
}
