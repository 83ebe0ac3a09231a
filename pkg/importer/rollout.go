package importer

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/sinscrit/train-tracking-tool/pkg/tracking"
)

// Rollout expands a régime onto every calendar date of the inclusive range.
// Dates whose weekday has no régime entry contribute nothing. Every instance
// is an independent deep copy; the régime itself is never mutated.
func Rollout(regime tracking.Regime, startDate string, endDate string, periodID string) ([]*tracking.Service, error) {
	start, err := time.Parse(tracking.DateFormat, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse(tracking.DateFormat, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	var services []*tracking.Service

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		templates := regime[date.Weekday()]
		if len(templates) == 0 {
			continue
		}

		dateString := date.Format(tracking.DateFormat)

		for _, template := range templates {
			service, err := instantiateTemplate(template, dateString, periodID)
			if err != nil {
				return nil, err
			}

			services = append(services, service)
		}
	}

	return services, nil
}

func instantiateTemplate(template *tracking.Service, date string, periodID string) (*tracking.Service, error) {
	var service tracking.Service
	err := copier.CopyWithOption(&service, *template, copier.Option{DeepCopy: true})
	if err != nil {
		return nil, fmt.Errorf("copying template %s: %w", template.ID, err)
	}

	service.ID = fmt.Sprintf("actual-%s-%s", template.TrainInfo.TrainNumber, date)
	service.Date = date
	service.PeriodID = periodID
	service.TrainInfo.Description = fmt.Sprintf("Train %s", template.TrainInfo.TrainNumber)

	return &service, nil
}
