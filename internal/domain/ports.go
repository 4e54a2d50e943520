package domain

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned by SessionStore implementations when the
// requested session does not exist.
var ErrSessionNotFound = errors.New("session not found")

// Reply is the assistant's answer to one user message.
type Reply struct {
	Text string

	// Reference names the shipment the reply is about, when any.
	Reference ShipmentID
}

// Responder produces the assistant's reply for a user message.
type Responder interface {
	Respond(ctx context.Context, text string, convCtx ConversationContext) (Reply, error)
}

// ConversationContext gives the responder minimal context about the conversation.
type ConversationContext struct {
	SessionID SessionID
	History   []*ChatTurn // the last N turns
}

// SessionStore defines session persistence.
type SessionStore interface {
	CreateSession(session *Session) error
	UpdateSession(session *Session) error
	GetSession(id SessionID) (*Session, error)
}

// TurnStore defines transcript persistence. Transcripts are append-only.
type TurnStore interface {
	AppendTurn(turn *ChatTurn) error
	ListTurnsBySession(sessionID SessionID, limit int) ([]*ChatTurn, error)
}
