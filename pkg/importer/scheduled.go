package importer

import (
	"fmt"

	"github.com/sinscrit/train-tracking-tool/pkg/tracking"
)

// ImportOptions controls whether the downstream systems receive a copy of
// the reference schedule on import. A system that does not gets an empty,
// invisible record until it is populated by hand.
type ImportOptions struct {
	CopyToSystemB bool
	CopyToSystemC bool
}

// BuildImportedServices turns the date-led rows of a combined régime feed
// into dated services. Template rows pinned to reference dates are skipped;
// they belong to the extractor. All three systems start synchronized, the
// same way rolled-out instances do.
func BuildImportedServices(rows []ParsedRow, periodID string) []*tracking.Service {
	var services []*tracking.Service

	for _, row := range rows {
		if tracking.IsReferenceDate(row.Date) {
			continue
		}

		service := datedService(row, periodID, ImportOptions{CopyToSystemB: true, CopyToSystemC: true})
		service.ID = fmt.Sprintf("actual-%s-%s", row.TrainID, row.Date)
		service.TrainInfo.Description = fmt.Sprintf("Train %s", row.TrainID)
		for _, id := range []tracking.SystemID{tracking.SystemReference, tracking.SystemB, tracking.SystemC} {
			service.Systems.Get(id).Status = tracking.StatusAutomaticallyCreated
		}

		services = append(services, service)
	}

	return services
}

// BuildScheduledServices turns date-led rows into manually scheduled
// services for the standalone import path.
func BuildScheduledServices(rows []ParsedRow, periodID string, opts ImportOptions) []*tracking.Service {
	var services []*tracking.Service

	for _, row := range rows {
		if tracking.IsReferenceDate(row.Date) {
			continue
		}

		service := datedService(row, periodID, opts)
		service.ID = fmt.Sprintf("actual-%s-%s", row.TrainID, row.Date)
		service.TrainInfo.Description = fmt.Sprintf("Scheduled train %s", row.TrainID)

		services = append(services, service)
	}

	return services
}

// BuildBonusServices turns date-led rows into bonus trains, additions
// outside the normal weekly pattern.
func BuildBonusServices(rows []ParsedRow, periodID string, opts ImportOptions) []*tracking.Service {
	var services []*tracking.Service

	for _, row := range rows {
		if tracking.IsReferenceDate(row.Date) {
			continue
		}

		service := datedService(row, periodID, opts)
		service.ID = fmt.Sprintf("bonus-%s-%s", row.TrainID, row.Date)
		service.TrainInfo.Description = fmt.Sprintf("Bonus train %s", row.TrainID)

		services = append(services, service)
	}

	return services
}

func datedService(row ParsedRow, periodID string, opts ImportOptions) *tracking.Service {
	service := &tracking.Service{
		Date:     row.Date,
		PeriodID: periodID,
		TrainInfo: tracking.TrainInfo{
			TrainNumber: row.TrainID,
			Crew: tracking.Crew{
				Driver:       tracking.CrewDriverBlue,
				TrainManager: tracking.CrewTrainManagerRed,
			},
		},
		Verification: tracking.Verification{
			SystemBOK: opts.CopyToSystemB,
			SystemCOK: opts.CopyToSystemC,
		},
	}

	service.Systems.Reference = tracking.SystemRecord{
		Status:   tracking.StatusManuallyCreated,
		Visible:  true,
		Schedule: scheduleFromTimes(row.Times),
	}
	service.Systems.SystemB = downstreamRecord(row.Times, opts.CopyToSystemB)
	service.Systems.SystemC = downstreamRecord(row.Times, opts.CopyToSystemC)

	return service
}

func downstreamRecord(times [timingColumns]string, copySchedule bool) tracking.SystemRecord {
	if !copySchedule {
		return tracking.SystemRecord{Status: tracking.StatusNotVisible, Visible: false}
	}

	return tracking.SystemRecord{
		Status:   tracking.StatusManuallyCreated,
		Visible:  true,
		Schedule: scheduleFromTimes(times),
	}
}
