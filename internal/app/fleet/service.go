package fleet

import (
	"context"

	"github.com/logitrack/assist/internal/app/filter"
	"github.com/logitrack/assist/internal/app/status"
	"github.com/logitrack/assist/internal/domain"
	"github.com/logitrack/assist/internal/observability"
)

// Service answers read-only queries over the fleet snapshot: filtered
// listings and the dashboard's quick-stat summaries. The snapshot is fixed
// for the process lifetime.
type Service struct {
	shipments []domain.Shipment
	vehicles  []domain.Vehicle
}

func NewService(shipments []domain.Shipment, vehicles []domain.Vehicle) *Service {
	return &Service{
		shipments: shipments,
		vehicles:  vehicles,
	}
}

// Shipments returns the shipments matching the criteria, in snapshot order.
func (s *Service) Shipments(ctx context.Context, c filter.ShipmentCriteria) []domain.Shipment {
	out := filter.Shipments(s.shipments, c)

	observability.LoggerFromContext(ctx).Info("shipments filtered",
		"query", c.Query,
		"matched", len(out),
	)
	return out
}

// Vehicles returns the vehicles matching the criteria, in snapshot order.
func (s *Service) Vehicles(ctx context.Context, c filter.VehicleCriteria) []domain.Vehicle {
	out := filter.Vehicles(s.vehicles, c)

	observability.LoggerFromContext(ctx).Info("vehicles filtered",
		"query", c.Query,
		"matched", len(out),
	)
	return out
}

// Summary mirrors the quick-stat cards: vehicle counts by status, the
// low-fuel count, and shipment counts by status.
type Summary struct {
	ActiveVehicles      int
	IdleVehicles        int
	MaintenanceVehicles int
	LowFuelVehicles     int

	ShipmentsByStatus map[domain.ShipmentStatus]int
}

// Summary recomputes the counts from the snapshot on every call.
func (s *Service) Summary(ctx context.Context) Summary {
	out := Summary{
		ShipmentsByStatus: make(map[domain.ShipmentStatus]int),
	}

	for _, v := range s.vehicles {
		switch v.Status {
		case domain.VehicleActive:
			out.ActiveVehicles++
		case domain.VehicleIdle:
			out.IdleVehicles++
		case domain.VehicleMaintenance:
			out.MaintenanceVehicles++
		}
		if status.ClassifyFuelLevel(v.FuelPercent).Bucket == status.FuelLow {
			out.LowFuelVehicles++
		}
	}

	for _, sh := range s.shipments {
		out.ShipmentsByStatus[sh.Status]++
	}

	return out
}
