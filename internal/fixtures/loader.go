package fixtures

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// LoadFile reads a YAML seed file and overlays each non-empty section on top
// of the built-in defaults. An empty path returns the defaults.
func LoadFile(path string) (*Seed, error) {
	seed := Default()
	if path == "" {
		return seed, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var overlay Seed
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	seed.merge(&overlay)
	return seed, nil
}

func (s *Seed) merge(o *Seed) {
	if len(o.Appointments) > 0 {
		s.Appointments = o.Appointments
	}
	if len(o.Dentists) > 0 {
		s.Dentists = o.Dentists
	}
	if len(o.Users) > 0 {
		s.Users = o.Users
	}
	if len(o.Patients) > 0 {
		s.Patients = o.Patients
	}
	if len(o.DentistOptions) > 0 {
		s.DentistOptions = o.DentistOptions
	}
	if len(o.TreatmentTypes) > 0 {
		s.TreatmentTypes = o.TreatmentTypes
	}
	if len(o.TimeSlots) > 0 {
		s.TimeSlots = o.TimeSlots
	}
	if len(o.Specializations) > 0 {
		s.Specializations = o.Specializations
	}
	if len(o.Stats) > 0 {
		s.Stats = o.Stats
	}
	if len(o.Chart.Weekly) > 0 {
		s.Chart.Weekly = o.Chart.Weekly
	}
	if len(o.Chart.Monthly) > 0 {
		s.Chart.Monthly = o.Chart.Monthly
	}
	if len(o.Chart.Yearly) > 0 {
		s.Chart.Yearly = o.Chart.Yearly
	}
	if len(o.Activities) > 0 {
		s.Activities = o.Activities
	}
	if len(o.Upcoming) > 0 {
		s.Upcoming = o.Upcoming
	}
}
