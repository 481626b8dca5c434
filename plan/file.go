package plan

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// File is a whole trip described in a single YAML document, the no-database
// input for `tripline render`.
type File struct {
	Trip    Trip    `yaml:"trip"`
	Entries Entries `yaml:",inline"`
}

// LoadFile reads a trip YAML file. Entries without IDs get generated ones so
// layout output can always be joined back to its source record.
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trip file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse trip file %q: %w", path, err)
	}

	if f.Trip.ID == "" {
		f.Trip.ID = uuid.NewString()
	}
	for i := range f.Entries.Flights {
		ensureID(&f.Entries.Flights[i].ID)
	}
	for i := range f.Entries.Lodgings {
		ensureID(&f.Entries.Lodgings[i].ID)
	}
	for i := range f.Entries.CarRentals {
		ensureID(&f.Entries.CarRentals[i].ID)
	}
	for i := range f.Entries.Restaurants {
		ensureID(&f.Entries.Restaurants[i].ID)
	}
	for i := range f.Entries.Activities {
		ensureID(&f.Entries.Activities[i].ID)
	}

	return &f, nil
}

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
