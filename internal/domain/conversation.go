package domain

// ChatTurn is a single entry in a session's transcript (user or assistant).
// Turns are immutable once appended.
type ChatTurn struct {
	ID        TurnID
	SessionID SessionID
	Author    Author
	Text      string
	CreatedAt Timestamp

	// Reference names the shipment an assistant reply pertains to, when any.
	Reference ShipmentID
}

// Session represents one open chat widget. The transcript it owns is
// append-only and ordered by CreatedAt.
type Session struct {
	ID        SessionID
	CreatedAt Timestamp
	UpdatedAt Timestamp
}
