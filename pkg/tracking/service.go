package tracking

import "time"

const DateFormat = "2006-01-02"

const (
	CrewDriverBlue      = "Blue"
	CrewTrainManagerRed = "Red"
)

type Crew struct {
	Driver       string
	TrainManager string
}

type TrainInfo struct {
	TrainNumber string
	Description string
	Crew        Crew
}

// Verification records the manual per-system sign-off, independent of the
// automatic discrepancy detection.
type Verification struct {
	SystemBOK bool
	SystemCOK bool
}

// Service is a single train number on a single calendar date. Templates
// (régime rows) have an empty Date.
type Service struct {
	ID       string
	Date     string
	PeriodID string

	TrainInfo    TrainInfo
	Systems      SystemSet
	Verification Verification
}

func (s *Service) IsTemplate() bool {
	return s.Date == ""
}

func (s *Service) Weekday() (time.Weekday, error) {
	date, err := time.Parse(DateFormat, s.Date)
	if err != nil {
		return time.Sunday, err
	}

	return date.Weekday(), nil
}

// SameIdentity reports whether two services describe the same train on the
// same date. (date, trainNumber) is the service identity within a period.
func (s *Service) SameIdentity(other *Service) bool {
	return s.Date == other.Date && s.TrainInfo.TrainNumber == other.TrainInfo.TrainNumber
}

// DiscrepancyWith reports whether the given downstream system disagrees with
// the reference system on any stop time.
func (s *Service) DiscrepancyWith(id SystemID) bool {
	record := s.Systems.Get(id)
	if record == nil {
		return false
	}

	return DiscrepancyVs(&s.Systems.Reference.Schedule, &record.Schedule)
}

// MissingIn reports whether the reference system has timing data that the
// given downstream system lacks entirely.
func (s *Service) MissingIn(id SystemID) bool {
	record := s.Systems.Get(id)
	if record == nil {
		return false
	}

	return MissingRelativeTo(&s.Systems.Reference.Schedule, &record.Schedule)
}
