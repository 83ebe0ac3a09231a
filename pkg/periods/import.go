package periods

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/sinscrit/train-tracking-tool/pkg/importer"
	"github.com/sinscrit/train-tracking-tool/pkg/tracking"
	"github.com/sinscrit/train-tracking-tool/pkg/util"
)

// PlanScheduled validates and plans a scheduled-train import against a
// stored period. Scheduled trains must fall inside the period and on a
// weekday the régime covers. Collisions are detected against the union of
// actual services and bonus trains, since a (date, trainNumber) identity is
// unique across both.
func (s *Store) PlanScheduled(periodID string, feed string, opts importer.ImportOptions) (*importer.MergePlan, error) {
	period := s.Get(periodID)
	if period == nil {
		return nil, fmt.Errorf("unknown period %q", periodID)
	}

	rows, err := importer.ParseTimetable(feed)
	if err != nil {
		return nil, err
	}

	services := importer.BuildScheduledServices(rows, period.ID, opts)

	if err := importer.ValidatePeriodRange(services, period); err != nil {
		return nil, err
	}
	if err := importer.ValidateRegimeDays(services, period.Regime); err != nil {
		return nil, err
	}

	existing := make([]*tracking.Service, 0, len(period.ActualServices)+len(period.BonusTrains))
	existing = append(existing, period.ActualServices...)
	existing = append(existing, period.BonusTrains...)

	return importer.PlanMerge(services, existing), nil
}

// ApplyScheduled commits a scheduled-train plan to the period. Plans with
// conflicts need explicit confirmation; an unconfirmed apply leaves the
// period untouched.
func (s *Store) ApplyScheduled(periodID string, plan *importer.MergePlan, confirmed bool) error {
	period := s.Get(periodID)
	if period == nil {
		return fmt.Errorf("unknown period %q", periodID)
	}

	if len(plan.Conflicts) > 0 && !confirmed {
		return importer.ErrConfirmationRequired
	}

	keep := func(existing *tracking.Service) bool {
		return !slices.ContainsFunc(plan.New, existing.SameIdentity)
	}
	util.InPlaceFilter(&period.ActualServices, keep)
	util.InPlaceFilter(&period.BonusTrains, keep)

	period.ActualServices = append(period.ActualServices, plan.New...)

	return nil
}

// ImportBonus adds bonus trains to a period. Bonus trains exist precisely
// for off-régime days, so only the period range applies; a duplicate
// identity is a hard error rather than an overwrite decision.
func (s *Store) ImportBonus(periodID string, feed string, opts importer.ImportOptions) ([]*tracking.Service, error) {
	period := s.Get(periodID)
	if period == nil {
		return nil, fmt.Errorf("unknown period %q", periodID)
	}

	rows, err := importer.ParseTimetable(feed)
	if err != nil {
		return nil, err
	}

	services := importer.BuildBonusServices(rows, period.ID, opts)

	if err := importer.ValidatePeriodRange(services, period); err != nil {
		return nil, err
	}

	for _, service := range services {
		if period.FindService(service.Date, service.TrainInfo.TrainNumber) != nil {
			return nil, fmt.Errorf("train %s already exists on %s", service.TrainInfo.TrainNumber, service.Date)
		}
	}

	period.BonusTrains = append(period.BonusTrains, services...)

	return services, nil
}
