package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinscrit/train-tracking-tool/pkg/tracking"
)

func parsedRow(date string, day time.Weekday, trainID string, times ...string) ParsedRow {
	row := ParsedRow{Date: date, TrainID: trainID, DayOfWeek: day}
	copy(row.Times[:], times)

	return row
}

func TestExtractRegimeFirstOccurrenceWins(t *testing.T) {
	rows := []ParsedRow{
		parsedRow("2025-01-10", time.Friday, "9320", "-", "-", "-", "-", "-", "-", "-", "-", "-", "09:43", "10:09", "11:05"),
		parsedRow("2025-01-10", time.Friday, "9320", "-", "-", "-", "-", "-", "-", "-", "-", "-", "09:50", "10:16", "11:12"),
	}

	regime := ExtractRegime(rows)

	require.Len(t, regime[time.Friday], 1)
	template := regime[time.Friday][0]
	assert.Equal(t, "09:43", template.Systems.Reference.Schedule.At(tracking.ReturnBRUDeparture).Time)
}

func TestExtractRegimeSkipsDateLedRows(t *testing.T) {
	rows := []ParsedRow{
		parsedRow("2025-01-10", time.Friday, "9339", "12:22", "13:18", "13:44", "13:53", "14:45", "15:50", "-", "-", "-", "-", "-", "-"),
		// A concrete dated row accidentally mixed into the same feed
		parsedRow("2025-07-04", time.Friday, "9340", "12:40", "13:38", "14:04", "14:13", "15:05", "16:10", "-", "-", "-", "-", "-", "-"),
	}

	regime := ExtractRegime(rows)

	require.Len(t, regime[time.Friday], 1)
	assert.Equal(t, "9339", regime[time.Friday][0].TrainInfo.TrainNumber)
}

func TestExtractRegimeTemplateShape(t *testing.T) {
	rows := []ParsedRow{
		parsedRow("2025-01-10", time.Friday, "9339", "12:22", "13:18", "13:44", "13:53", "14:45", "15:50", "-", "", "-", "-", "-", "-"),
	}

	regime := ExtractRegime(rows)
	require.Len(t, regime[time.Friday], 1)

	template := regime[time.Friday][0]
	assert.Equal(t, "regime-friday-9339", template.ID)
	assert.True(t, template.IsTemplate())
	assert.Equal(t, "Friday régime train 9339", template.TrainInfo.Description)
	assert.Equal(t, tracking.CrewDriverBlue, template.TrainInfo.Crew.Driver)
	assert.True(t, template.Verification.SystemBOK)
	assert.True(t, template.Verification.SystemCOK)

	// All three systems start out synchronized
	for _, id := range []tracking.SystemID{tracking.SystemReference, tracking.SystemB, tracking.SystemC} {
		record := template.Systems.Get(id)
		assert.Equal(t, tracking.RecordStatus(tracking.StatusAutomaticallyCreated), record.Status)
		assert.True(t, record.Visible)
		assert.Equal(t, "12:22", record.Schedule.At(tracking.OutboundPNODeparture).Time)
		// "-" and empty both mean not served
		assert.False(t, record.Schedule.At(tracking.ReturnAMSDeparture).Served())
		assert.False(t, record.Schedule.At(tracking.ReturnHDKArrival).Served())
	}
}

func TestExtractRegimeSystemsAreIndependent(t *testing.T) {
	rows := []ParsedRow{
		parsedRow("2025-01-10", time.Friday, "9339", "12:22", "13:18", "13:44", "13:53", "14:45", "15:50", "-", "-", "-", "-", "-", "-"),
	}

	template := ExtractRegime(rows)[time.Friday][0]
	template.Systems.SystemB.SetStopTime(tracking.OutboundPNODeparture, "12:20", nil)

	assert.Equal(t, "12:22", template.Systems.Reference.Schedule.At(tracking.OutboundPNODeparture).Time)
	assert.Equal(t, "12:20", template.Systems.SystemB.Schedule.At(tracking.OutboundPNODeparture).Time)
}

func TestExtractRegimeGroupsByWeekday(t *testing.T) {
	rows := []ParsedRow{
		parsedRow("2025-01-10", time.Friday, "9320", "-", "-", "-", "-", "-", "-", "-", "-", "-", "09:43", "10:09", "11:05"),
		parsedRow("2025-01-11", time.Saturday, "9320", "-", "-", "-", "-", "-", "-", "-", "-", "-", "09:43", "10:09", "11:05"),
		parsedRow("2025-01-10", time.Friday, "9339", "12:22", "13:18", "13:44", "13:53", "14:45", "15:50", "-", "-", "-", "-", "-", "-"),
	}

	regime := ExtractRegime(rows)

	assert.Len(t, regime[time.Friday], 2)
	assert.Len(t, regime[time.Saturday], 1)
	assert.Equal(t, []time.Weekday{time.Friday, time.Saturday}, regime.Days())
}
