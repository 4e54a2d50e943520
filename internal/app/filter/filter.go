// Package filter combines a free-text query with categorical predicates into
// a single stable filter over the fleet collections. All active predicates
// are ANDed; "all" or an empty value means no constraint.
package filter

import (
	"strings"

	"github.com/logitrack/assist/internal/app/status"
	"github.com/logitrack/assist/internal/domain"
)

// All is the criteria value that leaves a categorical predicate unconstrained.
const All = "all"

// ShipmentCriteria is the transient filter state of the shipments screen.
type ShipmentCriteria struct {
	Query    string
	Status   string // a domain.ShipmentStatus value, or All
	Priority string // a domain.Priority value, or All
}

// VehicleCriteria is the transient filter state of the fleet screen.
type VehicleCriteria struct {
	Query  string
	Status string // a domain.VehicleStatus value, or All
	Fuel   string // a status.FuelBucket value, or All
}

// Shipments returns the records matching the criteria, in input order. The
// text query matches id, destination, and customer.
func Shipments(records []domain.Shipment, c ShipmentCriteria) []domain.Shipment {
	out := make([]domain.Shipment, 0, len(records))
	for _, s := range records {
		if !matchesText(c.Query, string(s.ID), s.Destination, s.Customer) {
			continue
		}
		if !unconstrained(c.Status) && string(s.Status) != c.Status {
			continue
		}
		if !unconstrained(c.Priority) && string(s.Priority) != c.Priority {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Vehicles returns the records matching the criteria, in input order. The
// text query matches id, driver, and model. The fuel predicate buckets
// FuelPercent through status.ClassifyFuelLevel so it can never disagree with
// the fuel badge.
func Vehicles(records []domain.Vehicle, c VehicleCriteria) []domain.Vehicle {
	out := make([]domain.Vehicle, 0, len(records))
	for _, v := range records {
		if !matchesText(c.Query, string(v.ID), v.Driver, v.Model) {
			continue
		}
		if !unconstrained(c.Status) && string(v.Status) != c.Status {
			continue
		}
		if !unconstrained(c.Fuel) && string(status.ClassifyFuelLevel(v.FuelPercent).Bucket) != c.Fuel {
			continue
		}
		out = append(out, v)
	}
	return out
}

func unconstrained(v string) bool {
	return v == "" || v == All
}

// matchesText reports whether any field contains the query, case-insensitive.
// An empty query matches everything.
func matchesText(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
