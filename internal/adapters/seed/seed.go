// Package seed ships the demo fleet snapshot embedded in the binary. It
// stands in for the external fleet-tracking service a real deployment would
// read from.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/logitrack/assist/internal/domain"
)

//go:embed fleet.yaml
var fleetYAML []byte

type snapshotFile struct {
	Shipments []shipmentDoc `yaml:"shipments"`
	Vehicles  []vehicleDoc  `yaml:"vehicles"`
}

type shipmentDoc struct {
	ID          string `yaml:"id"`
	Origin      string `yaml:"origin"`
	Destination string `yaml:"destination"`
	Status      string `yaml:"status"`
	Priority    string `yaml:"priority"`
	Weight      string `yaml:"weight"`
	Driver      string `yaml:"driver"`
	ETA         string `yaml:"eta"`
	Progress    int    `yaml:"progress"`
	Customer    string `yaml:"customer"`
}

type vehicleDoc struct {
	ID         string `yaml:"id"`
	Model      string `yaml:"model"`
	Driver     string `yaml:"driver"`
	Location   string `yaml:"location"`
	Fuel       int    `yaml:"fuel"`
	Status     string `yaml:"status"`
	LastUpdate string `yaml:"last_update"`
}

// Fleet decodes and validates the embedded snapshot. The progress/fuel
// invariants are enforced here, at the single point where records enter the
// system.
func Fleet() ([]domain.Shipment, []domain.Vehicle, error) {
	var f snapshotFile
	if err := yaml.Unmarshal(fleetYAML, &f); err != nil {
		return nil, nil, fmt.Errorf("decode fleet snapshot: %w", err)
	}

	shipments := make([]domain.Shipment, 0, len(f.Shipments))
	for _, d := range f.Shipments {
		s := domain.Shipment{
			ID:              domain.ShipmentID(d.ID),
			Origin:          d.Origin,
			Destination:     d.Destination,
			Status:          domain.ShipmentStatus(d.Status),
			Priority:        domain.Priority(d.Priority),
			ProgressPercent: d.Progress,
			ETALabel:        d.ETA,
			Weight:          d.Weight,
			Driver:          d.Driver,
			Customer:        d.Customer,
		}
		if err := s.Validate(); err != nil {
			return nil, nil, fmt.Errorf("fleet snapshot: %w", err)
		}
		shipments = append(shipments, s)
	}

	vehicles := make([]domain.Vehicle, 0, len(f.Vehicles))
	for _, d := range f.Vehicles {
		v := domain.Vehicle{
			ID:          domain.VehicleID(d.ID),
			Model:       d.Model,
			Driver:      d.Driver,
			Location:    d.Location,
			FuelPercent: d.Fuel,
			Status:      domain.VehicleStatus(d.Status),
			LastUpdate:  d.LastUpdate,
		}
		if err := v.Validate(); err != nil {
			return nil, nil, fmt.Errorf("fleet snapshot: %w", err)
		}
		vehicles = append(vehicles, v)
	}

	return shipments, vehicles, nil
}
