package periods

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slices"

	"github.com/sinscrit/train-tracking-tool/pkg/tracking"
)

var ErrLastPeriod = errors.New("cannot delete the last period, at least one period must exist")

// Store owns the mutable period list on behalf of the presentation layer.
// The reconciliation core itself stays stateless; everything it returns is
// threaded back through here.
type Store struct {
	periods []*tracking.Period
}

func NewStore(periods ...*tracking.Period) *Store {
	return &Store{periods: periods}
}

func (s *Store) List() []*tracking.Period {
	return s.periods
}

func (s *Store) Get(id string) *tracking.Period {
	index := slices.IndexFunc(s.periods, func(period *tracking.Period) bool {
		return period.ID == id
	})
	if index == -1 {
		return nil
	}

	return s.periods[index]
}

func (s *Store) Add(period *tracking.Period) error {
	if period.Name == "" {
		return errors.New("period name is required")
	}

	start, err := time.Parse(tracking.DateFormat, period.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", period.StartDate, err)
	}
	end, err := time.Parse(tracking.DateFormat, period.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", period.EndDate, err)
	}
	if !start.Before(end) {
		return errors.New("end date must be after start date")
	}

	if s.Get(period.ID) != nil {
		return fmt.Errorf("period %q already exists", period.Name)
	}

	s.periods = append(s.periods, period)

	return nil
}

// Reset replaces the imported content of a period while keeping its identity
// and date range.
func (s *Store) Reset(id string, regime tracking.Regime, actual []*tracking.Service, bonus []*tracking.Service) error {
	period := s.Get(id)
	if period == nil {
		return fmt.Errorf("unknown period %q", id)
	}

	period.Regime = regime
	period.ActualServices = actual
	period.BonusTrains = bonus

	return nil
}

func (s *Store) Delete(id string) error {
	if len(s.periods) <= 1 {
		return ErrLastPeriod
	}

	period := s.Get(id)
	if period == nil {
		return fmt.Errorf("unknown period %q", id)
	}

	index := slices.Index(s.periods, period)
	s.periods = append(s.periods[:index], s.periods[index+1:]...)

	return nil
}
