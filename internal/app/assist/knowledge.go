package assist

import "github.com/logitrack/assist/internal/domain"

// KnowledgeBase is the static shipment snapshot replies draw from. The
// featured shipment is the deterministic demo default every Track reply
// references; a real deployment would swap this for a live lookup.
type KnowledgeBase struct {
	Featured FeaturedShipment
}

// FeaturedShipment is the one shipment the assistant narrates in detail.
type FeaturedShipment struct {
	ID              domain.ShipmentID
	Origin          string
	Destination     string
	ProgressPercent int
	ETALabel        string
}

// DefaultKnowledgeBase returns the snapshot matching the seeded fleet data.
func DefaultKnowledgeBase() KnowledgeBase {
	return KnowledgeBase{
		Featured: FeaturedShipment{
			ID:              "SH-2024-001",
			Origin:          "New York",
			Destination:     "Los Angeles",
			ProgressPercent: 75,
			ETALabel:        "2 hours",
		},
	}
}
