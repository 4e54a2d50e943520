package domain

import "time"

type SessionID string
type TurnID string
type ShipmentID string
type VehicleID string

type Author string

const (
	AuthorUser      Author = "user"
	AuthorAssistant Author = "assistant"
)

type ShipmentStatus string

const (
	ShipmentPending   ShipmentStatus = "pending"
	ShipmentInTransit ShipmentStatus = "in-transit"
	ShipmentDelivered ShipmentStatus = "delivered"
	ShipmentDelayed   ShipmentStatus = "delayed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type VehicleStatus string

const (
	VehicleActive      VehicleStatus = "active"
	VehicleIdle        VehicleStatus = "idle"
	VehicleMaintenance VehicleStatus = "maintenance"
)

type Timestamp = time.Time
