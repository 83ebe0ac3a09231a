package reports

import (
	"github.com/sinscrit/train-tracking-tool/pkg/tracking"
)

// SystemSummary counts how one downstream system holds up against the
// reference system across a period.
type SystemSummary struct {
	Discrepancies int
	MissingData   int
	NotVisible    int
	Unverified    int
}

type PeriodSummary struct {
	Period     string
	RegimeDays int

	ActualServices int
	BonusTrains    int

	SystemB SystemSummary
	SystemC SystemSummary
}

// Summarize classifies every service of a period. Missing data outranks a
// discrepancy: a system that never received the service is a worse condition
// than one holding different times.
func Summarize(period *tracking.Period) PeriodSummary {
	summary := PeriodSummary{
		Period:         period.Name,
		RegimeDays:     len(period.Regime.Days()),
		ActualServices: len(period.ActualServices),
		BonusTrains:    len(period.BonusTrains),
	}

	services := make([]*tracking.Service, 0, len(period.ActualServices)+len(period.BonusTrains))
	services = append(services, period.ActualServices...)
	services = append(services, period.BonusTrains...)

	for _, service := range services {
		tally(&summary.SystemB, service, tracking.SystemB, service.Verification.SystemBOK)
		tally(&summary.SystemC, service, tracking.SystemC, service.Verification.SystemCOK)
	}

	return summary
}

func tally(target *SystemSummary, service *tracking.Service, id tracking.SystemID, verified bool) {
	record := service.Systems.Get(id)

	if !record.Visible {
		target.NotVisible++
	}
	if !verified {
		target.Unverified++
	}

	switch {
	case service.MissingIn(id):
		target.MissingData++
	case service.DiscrepancyWith(id):
		target.Discrepancies++
	}
}
