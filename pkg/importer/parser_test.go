package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimetableWeekdayLed(t *testing.T) {
	input := "Jour;Train;PNO;WNH;BRU;BRU;HDK;AMS;AMS;HDK;BRU;BRU;WNH;PNO\n" +
		"vendredi;9339;12:22;13:18;13:44;13:53;14:45;15:50;-;-;-;-;-;-\n" +
		";9320;-;-;-;-;-;-;-;-;09:43;10:09;;11:05\n"

	rows, err := ParseTimetable(input)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "9339", rows[0].TrainID)
	assert.Equal(t, time.Friday, rows[0].DayOfWeek)
	// Template rows are pinned to their weekday's reference date
	assert.Equal(t, "2025-01-10", rows[0].Date)
	assert.Equal(t, "12:22", rows[0].Times[0])
	assert.Equal(t, "-", rows[0].Times[11])

	// Continuation row inherits the established weekday
	assert.Equal(t, "9320", rows[1].TrainID)
	assert.Equal(t, time.Friday, rows[1].DayOfWeek)
	assert.Equal(t, "2025-01-10", rows[1].Date)
}

func TestParseTimetableDateLed(t *testing.T) {
	input := "2025-07-04\t9339\t12:20\t13:18\t13:44\t13:53\t14:45\t15:50\t-\t-\t-\t-\t-\t-\n" +
		"\t9376\t-\t-\t-\t-\t-\t-\t17:10\t18:16\t19:06\t19:13\t19:39\t20:35\n"

	rows, err := ParseTimetable(input)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2025-07-04", rows[0].Date)
	assert.Equal(t, time.Friday, rows[0].DayOfWeek)

	// Continuation row inherits the established date
	assert.Equal(t, "2025-07-04", rows[1].Date)
	assert.Equal(t, "9376", rows[1].TrainID)
}

func TestParseTimetableMixedDelimiters(t *testing.T) {
	// Delimiter detection is per line
	input := "vendredi;9339;12:22;13:18;13:44;13:53;14:45;15:50;-;-;-;-;-;-\n" +
		"samedi,9320,-,-,-,-,-,-,-,-,09:43,10:09,10:35,11:05\n"

	rows, err := ParseTimetable(input)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, time.Friday, rows[0].DayOfWeek)
	assert.Equal(t, time.Saturday, rows[1].DayOfWeek)
}

func TestParseTimetableUnrecognizedFirstColumnContinues(t *testing.T) {
	input := "2025-07-04;9339;12:20;13:18;13:44;13:53;14:45;15:50;-;-;-;-;-;-\n" +
		"x;9340;12:40;13:38;14:04;14:13;15:05;16:10;-;-;-;-;-;-\n"

	rows, err := ParseTimetable(input)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-07-04", rows[1].Date)
	assert.Equal(t, "9340", rows[1].TrainID)
}

func TestParseTimetableSkipsShortAndBlankTrainLines(t *testing.T) {
	input := "vendredi;9339;12:22;13:18;13:44;13:53;14:45;15:50;-;-;-;-;-;-\n" +
		"vendredi;9320\n" +
		"vendredi;;12:22;13:18;13:44;13:53;14:45;15:50;-;-;-;-;-;-\n"

	rows, err := ParseTimetable(input)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "9339", rows[0].TrainID)
}

func TestParseTimetableNoClassifiableRows(t *testing.T) {
	_, err := ParseTimetable("header;with;nothing\nuseful;at;all\n")

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "first row must contain a day of week or date", formatErr.Message)
}

func TestParseTimetableAllLinesTooShort(t *testing.T) {
	_, err := ParseTimetable("vendredi;9339;12:22\nvendredi;9320;09:43\n")

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "no valid train data found", formatErr.Message)
}

func TestParseTimetableInvalidDate(t *testing.T) {
	_, err := ParseTimetable("2025-13-45;9339;12:22;13:18;13:44;13:53;14:45;15:50;-;-;-;-;-;-\n")

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
}
