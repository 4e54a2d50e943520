package domain

import "fmt"

// Shipment mirrors one shipment card on the dashboard. The source of truth is
// the seeded fleet snapshot; in a real deployment it would be read from an
// external fleet-tracking service.
type Shipment struct {
	ID              ShipmentID
	Origin          string
	Destination     string
	Status          ShipmentStatus
	Priority        Priority
	ProgressPercent int
	ETALabel        string
	Weight          string
	Driver          string
	Customer        string
}

// Validate checks the data-entry invariants the seed snapshot must honor:
// ProgressPercent in [0,100], delivered shipments at 100, pending at 0.
func (s Shipment) Validate() error {
	if s.ProgressPercent < 0 || s.ProgressPercent > 100 {
		return fmt.Errorf("shipment %s: progress %d out of range [0,100]", s.ID, s.ProgressPercent)
	}
	if s.Status == ShipmentDelivered && s.ProgressPercent != 100 {
		return fmt.Errorf("shipment %s: delivered but progress is %d", s.ID, s.ProgressPercent)
	}
	if s.Status == ShipmentPending && s.ProgressPercent != 0 {
		return fmt.Errorf("shipment %s: pending but progress is %d", s.ID, s.ProgressPercent)
	}
	return nil
}

// Vehicle mirrors one fleet card on the dashboard.
type Vehicle struct {
	ID          VehicleID
	Model       string
	Driver      string
	Location    string
	FuelPercent int
	Status      VehicleStatus
	LastUpdate  string
}

// Validate checks that FuelPercent stays in [0,100].
func (v Vehicle) Validate() error {
	if v.FuelPercent < 0 || v.FuelPercent > 100 {
		return fmt.Errorf("vehicle %s: fuel %d out of range [0,100]", v.ID, v.FuelPercent)
	}
	return nil
}
