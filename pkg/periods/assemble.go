package periods

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sinscrit/train-tracking-tool/pkg/importer"
	"github.com/sinscrit/train-tracking-tool/pkg/tracking"
)

// Assemble builds a complete period from one combined timetable feed:
// parse, extract the régime, roll it out across the date range, let the
// feed's own date-led rows override rolled-out instances, and route
// services on off-régime weekdays into the bonus list.
func Assemble(definition Definition, feed string) (*tracking.Period, error) {
	if err := definition.Validate(); err != nil {
		return nil, err
	}

	rows, err := importer.ParseTimetable(feed)
	if err != nil {
		return nil, err
	}

	regime := importer.ExtractRegime(rows)
	periodID := strings.ToLower(definition.Name)

	var actual []*tracking.Service
	if definition.AutoRollout {
		actual, err = importer.Rollout(regime, definition.StartDate, definition.EndDate, periodID)
		if err != nil {
			return nil, err
		}
	}

	// Date-led rows in the feed are authoritative over rolled-out
	// instances, so their collisions are overwritten without asking.
	imported := importer.BuildImportedServices(rows, periodID)
	plan := importer.PlanMerge(imported, actual)
	actual, err = importer.ApplyMerge(plan, true)
	if err != nil {
		return nil, err
	}

	var bonus []*tracking.Service
	kept := actual[:0]
	for _, service := range actual {
		day, err := service.Weekday()
		if err == nil && !regime.HasDay(day) {
			service.ID = strings.Replace(service.ID, "actual-", "bonus-", 1)
			bonus = append(bonus, service)
			continue
		}

		kept = append(kept, service)
	}

	period := &tracking.Period{
		ID:             periodID,
		Name:           definition.Name,
		StartDate:      definition.StartDate,
		EndDate:        definition.EndDate,
		Regime:         regime,
		BonusTrains:    bonus,
		ActualServices: kept,
	}

	log.Info().
		Str("period", definition.Name).
		Int("regime_days", len(regime.Days())).
		Int("actual_services", len(period.ActualServices)).
		Int("bonus_trains", len(period.BonusTrains)).
		Msg("Assembled period")

	return period, nil
}
