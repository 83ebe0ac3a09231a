package importer

import (
	"strings"

	"github.com/sinscrit/train-tracking-tool/pkg/tracking"
)

// SerializeRegime renders a régime back into weekday-led semicolon rows, the
// inverse of ParseTimetable + ExtractRegime. Unserved stops come out as "-".
// Only the reference system times are written; the three systems of a
// template are synchronized by construction.
func SerializeRegime(regime tracking.Regime) string {
	var builder strings.Builder

	for _, day := range regime.Days() {
		for _, template := range regime[day] {
			fields := make([]string, 0, minColumns)
			fields = append(fields, strings.ToLower(day.String()), template.TrainInfo.TrainNumber)

			schedule := &template.Systems.Reference.Schedule
			for slot := tracking.StopSlot(0); slot < tracking.StopSlotCount; slot++ {
				if stopTime := schedule.At(slot); stopTime.Served() {
					fields = append(fields, stopTime.Time)
				} else {
					fields = append(fields, "-")
				}
			}

			builder.WriteString(strings.Join(fields, ";"))
			builder.WriteByte('\n')
		}
	}

	return builder.String()
}
