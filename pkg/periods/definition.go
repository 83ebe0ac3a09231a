package periods

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sinscrit/train-tracking-tool/pkg/tracking"
)

// Definition describes a period to assemble from a timetable feed.
type Definition struct {
	Name        string `yaml:"name"`
	StartDate   string `yaml:"start_date"`
	EndDate     string `yaml:"end_date"`
	AutoRollout bool   `yaml:"auto_rollout"`
}

func LoadDefinition(path string) (*Definition, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var definition Definition
	if err := yaml.Unmarshal(contents, &definition); err != nil {
		return nil, fmt.Errorf("decoding period definition %s: %w", path, err)
	}

	if err := definition.Validate(); err != nil {
		return nil, err
	}

	return &definition, nil
}

func (d *Definition) Validate() error {
	if d.Name == "" {
		return errors.New("period name is required")
	}

	start, err := time.Parse(tracking.DateFormat, d.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", d.StartDate, err)
	}
	end, err := time.Parse(tracking.DateFormat, d.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", d.EndDate, err)
	}
	if !start.Before(end) {
		return errors.New("end date must be after start date")
	}

	return nil
}
