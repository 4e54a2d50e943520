// Package status derives presentation categories (color token, label, icon)
// from raw entity fields. Derived values are never stored on the entity;
// every caller recomputes them from the canonical field so multiple surfaces
// showing the same record cannot drift apart.
package status

import "strings"

// Color tokens shared with the dashboard theme.
const (
	ColorDelivered = "status-delivered"
	ColorInTransit = "status-in-transit"
	ColorDelayed   = "status-delayed"
	ColorPending   = "status-pending"
	ColorMuted     = "muted"
)

// Presentation is the derived view category for a status or priority value.
type Presentation struct {
	ColorToken string
	Label      string
	Icon       string
}

// ClassifyStatus maps a shipment or vehicle status to its presentation.
// Unknown values fall back to the muted category so any future status stays
// renderable.
func ClassifyStatus(status string) Presentation {
	switch status {
	case "delivered":
		return Presentation{ColorToken: ColorDelivered, Label: "Delivered", Icon: "check-circle"}
	case "in-transit":
		return Presentation{ColorToken: ColorInTransit, Label: "In Transit", Icon: "truck"}
	case "delayed":
		return Presentation{ColorToken: ColorDelayed, Label: "Delayed", Icon: "map-pin"}
	case "pending":
		return Presentation{ColorToken: ColorPending, Label: "Pending", Icon: "package"}
	case "active":
		return Presentation{ColorToken: ColorDelivered, Label: "Active", Icon: "truck"}
	case "idle":
		return Presentation{ColorToken: ColorPending, Label: "Idle", Icon: "clock"}
	case "maintenance":
		return Presentation{ColorToken: ColorDelayed, Label: "Maintenance", Icon: "settings"}
	default:
		return Presentation{ColorToken: ColorMuted, Label: fallbackLabel(status), Icon: "package"}
	}
}

// ClassifyPriority maps a shipment priority to its badge presentation, with
// the same muted fallback for unknown values.
func ClassifyPriority(priority string) Presentation {
	switch priority {
	case "high":
		return Presentation{ColorToken: ColorDelayed, Label: "High"}
	case "medium":
		return Presentation{ColorToken: ColorInTransit, Label: "Medium"}
	case "low":
		return Presentation{ColorToken: ColorPending, Label: "Low"}
	default:
		return Presentation{ColorToken: ColorMuted, Label: fallbackLabel(priority)}
	}
}

type FuelBucket string

const (
	FuelGood   FuelBucket = "good"
	FuelMedium FuelBucket = "medium"
	FuelLow    FuelBucket = "low"
)

// FuelLevel is the derived presentation for a fuel percentage.
type FuelLevel struct {
	Bucket     FuelBucket
	ColorToken string
	Label      string
}

// ClassifyFuelLevel buckets a fuel percentage. Boundaries are closed on the
// lower side: 70 is medium and 30 is low. The filter layer relies on these
// exact thresholds, so displayed badges and fuel filters always agree.
func ClassifyFuelLevel(percent int) FuelLevel {
	switch {
	case percent > 70:
		return FuelLevel{Bucket: FuelGood, ColorToken: ColorDelivered, Label: "Good"}
	case percent > 30:
		return FuelLevel{Bucket: FuelMedium, ColorToken: ColorInTransit, Label: "Medium"}
	default:
		return FuelLevel{Bucket: FuelLow, ColorToken: ColorDelayed, Label: "Low"}
	}
}

func fallbackLabel(raw string) string {
	if raw == "" {
		return "Unknown"
	}
	return strings.ToUpper(strings.ReplaceAll(raw, "-", " "))
}
