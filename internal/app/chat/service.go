package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/logitrack/assist/internal/domain"
	"github.com/logitrack/assist/internal/observability"
)

// DefaultReplyDelay is the simulated "thinking" latency before the assistant
// turn is appended.
const DefaultReplyDelay = 1500 * time.Millisecond

const greetingText = "Hello! I'm your logistics assistant. I can help you track packages, " +
	"check delivery status, or answer questions about your shipments. How can I help you today?"

const replyFailureText = "Sorry, something went wrong while preparing your answer. Please try again."

// historyLimit bounds how much transcript the responder sees per turn.
const historyLimit = 20

// Service orchestrates turn-taking for chat sessions. Each session loops
// Idle -> AwaitingReply -> Idle: Submit appends the user turn synchronously,
// then a scheduled task appends the assistant turn after the reply delay. At
// most one reply is pending per session; submissions arriving while a reply
// is pending are rejected, which is the backpressure rule the UI's disabled
// input relies on.
type Service struct {
	responder    domain.Responder
	sessionStore domain.SessionStore
	turnStore    domain.TurnStore
	scheduler    ReplyScheduler
	replyDelay   time.Duration
	now          func() time.Time

	mu      sync.Mutex
	pending map[domain.SessionID]bool
}

// NewService builds a chat service. A nil scheduler falls back to a
// TimerScheduler and a non-positive delay to DefaultReplyDelay.
func NewService(
	responder domain.Responder,
	sessionStore domain.SessionStore,
	turnStore domain.TurnStore,
	scheduler ReplyScheduler,
	replyDelay time.Duration,
) *Service {
	if scheduler == nil {
		scheduler = NewTimerScheduler()
	}
	if replyDelay <= 0 {
		replyDelay = DefaultReplyDelay
	}

	return &Service{
		responder:    responder,
		sessionStore: sessionStore,
		turnStore:    turnStore,
		scheduler:    scheduler,
		replyDelay:   replyDelay,
		now:          time.Now,
		pending:      make(map[domain.SessionID]bool),
	}
}

type StartSessionOutput struct {
	Session  *domain.Session
	Greeting *domain.ChatTurn
}

// StartSession creates a session whose transcript is seeded with the
// assistant greeting.
func (s *Service) StartSession(ctx context.Context) (*StartSessionOutput, error) {
	now := s.now()

	log := observability.LoggerFromContext(ctx)
	log.Info("starting new session")

	session := &domain.Session{
		ID:        domain.SessionID(generateID()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.sessionStore.CreateSession(session); err != nil {
		log.Error("failed to create session", "error", err)
		return nil, err
	}

	greeting := &domain.ChatTurn{
		ID:        domain.TurnID(generateID()),
		SessionID: session.ID,
		Author:    domain.AuthorAssistant,
		Text:      greetingText,
		CreatedAt: now,
	}

	if err := s.turnStore.AppendTurn(greeting); err != nil {
		log.Error("failed to append greeting turn", "error", err)
		return nil, err
	}

	log.Info("session started", "session_id", session.ID)

	return &StartSessionOutput{
		Session:  session,
		Greeting: greeting,
	}, nil
}

type SubmitInput struct {
	SessionID domain.SessionID
	Text      string
}

type SubmitOutput struct {
	// Accepted is false when the text was empty or a reply was already
	// pending; in both cases the transcript is unchanged.
	Accepted bool
	UserTurn *domain.ChatTurn
}

// Submit accepts one user message. On acceptance the user turn is appended
// immediately and the assistant reply is scheduled after the reply delay.
// Empty or whitespace-only text is a silent no-op, not an error. Once a
// submission is accepted its reply will be produced; there is no way to
// abort it.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*SubmitOutput, error) {
	if strings.TrimSpace(in.Text) == "" {
		return &SubmitOutput{Accepted: false}, nil
	}

	session, err := s.sessionStore.GetSession(in.SessionID)
	if err != nil {
		return nil, err
	}

	log := observability.LoggerFromContext(ctx).With("session_id", session.ID)

	s.mu.Lock()
	if s.pending[session.ID] {
		s.mu.Unlock()
		log.Info("submission rejected, reply pending")
		return &SubmitOutput{Accepted: false}, nil
	}
	s.pending[session.ID] = true
	s.mu.Unlock()

	now := s.now()

	userTurn := &domain.ChatTurn{
		ID:        domain.TurnID(generateID()),
		SessionID: session.ID,
		Author:    domain.AuthorUser,
		Text:      in.Text,
		CreatedAt: now,
	}

	if err := s.turnStore.AppendTurn(userTurn); err != nil {
		s.clearPending(session.ID)
		log.Error("failed to append user turn", "error", err)
		return nil, err
	}

	history, err := s.turnStore.ListTurnsBySession(session.ID, historyLimit)
	if err != nil {
		s.clearPending(session.ID)
		log.Error("failed to load history", "error", err)
		return nil, err
	}

	convCtx := domain.ConversationContext{
		SessionID: session.ID,
		History:   history,
	}

	text := in.Text
	s.scheduler.Schedule(session.ID, s.replyDelay, func() {
		s.deliverReply(session, text, convCtx)
	})

	log.Info("submission accepted", "text", in.Text)

	return &SubmitOutput{
		Accepted: true,
		UserTurn: userTurn,
	}, nil
}

// deliverReply runs on the scheduler once the reply delay has elapsed. It
// appends exactly one assistant turn and returns the session to Idle.
func (s *Service) deliverReply(session *domain.Session, text string, convCtx domain.ConversationContext) {
	ctx := context.Background()
	log := observability.Logger().With("session_id", session.ID)

	defer s.clearPending(session.ID)

	reply, err := s.responder.Respond(ctx, text, convCtx)
	if err != nil {
		log.Error("responder failed", "error", err)
		reply = domain.Reply{Text: replyFailureText}
	}

	assistantTurn := &domain.ChatTurn{
		ID:        domain.TurnID(generateID()),
		SessionID: session.ID,
		Author:    domain.AuthorAssistant,
		Text:      reply.Text,
		CreatedAt: s.now(),
		Reference: reply.Reference,
	}

	if err := s.turnStore.AppendTurn(assistantTurn); err != nil {
		log.Error("failed to append assistant turn", "error", err)
		return
	}

	session.UpdatedAt = s.now()
	if err := s.sessionStore.UpdateSession(session); err != nil {
		log.Error("failed to update session", "error", err)
	}

	log.Info("assistant turn appended", "reference", assistantTurn.Reference)
}

// Busy reports whether a reply is pending for the session.
func (s *Service) Busy(sessionID domain.SessionID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[sessionID]
}

// Transcript returns the session and a snapshot of its turns, oldest first.
// limit <= 0 returns the whole transcript.
func (s *Service) Transcript(
	ctx context.Context,
	sessionID domain.SessionID,
	limit int,
) (*domain.Session, []*domain.ChatTurn, error) {
	session, err := s.sessionStore.GetSession(sessionID)
	if err != nil {
		return nil, nil, err
	}

	turns, err := s.turnStore.ListTurnsBySession(sessionID, limit)
	if err != nil {
		observability.LoggerFromContext(ctx).Error("failed to list turns", "error", err)
		return nil, nil, err
	}

	return session, turns, nil
}

func (s *Service) clearPending(id domain.SessionID) {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
}

func generateID() string {
	return uuid.NewString()
}
