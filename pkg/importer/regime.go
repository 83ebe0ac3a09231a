package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sinscrit/train-tracking-tool/pkg/tracking"
)

// ExtractRegime groups template rows into the weekly reference structure.
// Only rows pinned to their own weekday's reference date qualify; date-led
// rows mixed into the same feed are left for the scheduled-train path.
// Within a weekday the first occurrence of a train number wins, later
// duplicates are dropped in favour of the canonical definition.
func ExtractRegime(rows []ParsedRow) tracking.Regime {
	regime := tracking.Regime{}
	seen := map[time.Weekday]map[string]bool{}

	for _, row := range rows {
		if row.Date != tracking.ReferenceDate(row.DayOfWeek) {
			continue
		}

		if seen[row.DayOfWeek] == nil {
			seen[row.DayOfWeek] = map[string]bool{}
		}
		if seen[row.DayOfWeek][row.TrainID] {
			log.Debug().
				Str("day", row.DayOfWeek.String()).
				Str("train", row.TrainID).
				Msg("Dropping duplicate régime row, first occurrence wins")
			continue
		}
		seen[row.DayOfWeek][row.TrainID] = true

		regime[row.DayOfWeek] = append(regime[row.DayOfWeek], templateService(row))
	}

	return regime
}

func templateService(row ParsedRow) *tracking.Service {
	service := &tracking.Service{
		ID: fmt.Sprintf("regime-%s-%s", strings.ToLower(row.DayOfWeek.String()), row.TrainID),
		TrainInfo: tracking.TrainInfo{
			TrainNumber: row.TrainID,
			Description: fmt.Sprintf("%s régime train %s", row.DayOfWeek, row.TrainID),
			Crew: tracking.Crew{
				Driver:       tracking.CrewDriverBlue,
				TrainManager: tracking.CrewTrainManagerRed,
			},
		},
		Verification: tracking.Verification{SystemBOK: true, SystemCOK: true},
	}

	// All three systems start out synchronized with the imported times.
	for _, id := range []tracking.SystemID{tracking.SystemReference, tracking.SystemB, tracking.SystemC} {
		record := service.Systems.Get(id)
		record.Status = tracking.StatusAutomaticallyCreated
		record.Visible = true
		record.Schedule = scheduleFromTimes(row.Times)
	}

	return service
}

func scheduleFromTimes(times [timingColumns]string) tracking.JourneySchedule {
	var schedule tracking.JourneySchedule
	for slot := tracking.StopSlot(0); slot < tracking.StopSlotCount; slot++ {
		schedule.Set(slot, parseStopTime(times[slot]))
	}

	return schedule
}

// "-" and the empty string both mean the stop is not served.
func parseStopTime(value string) tracking.StopTime {
	if value == "" || value == "-" {
		return tracking.StopTime{}
	}

	return tracking.StopTime{Time: value}
}
