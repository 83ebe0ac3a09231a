package tracking

import (
	"time"
)

// Regime is the weekly reference schedule: template services per weekday.
type Regime map[time.Weekday][]*Service

// HasDay reports whether the weekday has a non-empty régime entry.
func (r Regime) HasDay(day time.Weekday) bool {
	return len(r[day]) > 0
}

// Days returns the weekdays with a non-empty régime entry, Monday first.
func (r Regime) Days() []time.Weekday {
	week := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}

	var days []time.Weekday
	for _, day := range week {
		if r.HasDay(day) {
			days = append(days, day)
		}
	}

	return days
}

// Period is a named operating period. Actual services are dated instances of
// régime templates, bonus trains are dated services whose weekday has no
// régime entry.
type Period struct {
	ID   string
	Name string

	StartDate string
	EndDate   string

	Regime         Regime
	BonusTrains    []*Service
	ActualServices []*Service
}

func (p *Period) ContainsDate(date string) bool {
	parsed, err := time.Parse(DateFormat, date)
	if err != nil {
		return false
	}
	start, err := time.Parse(DateFormat, p.StartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse(DateFormat, p.EndDate)
	if err != nil {
		return false
	}

	return !parsed.Before(start) && !parsed.After(end)
}

// FindService looks a service up by identity in the actual services and then
// the bonus trains.
func (p *Period) FindService(date string, trainNumber string) *Service {
	for _, service := range p.ActualServices {
		if service.Date == date && service.TrainInfo.TrainNumber == trainNumber {
			return service
		}
	}
	for _, service := range p.BonusTrains {
		if service.Date == date && service.TrainInfo.TrainNumber == trainNumber {
			return service
		}
	}

	return nil
}
