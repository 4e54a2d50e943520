package chat_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logitrack/assist/internal/adapters/storage/memory"
	"github.com/logitrack/assist/internal/app/assist"
	"github.com/logitrack/assist/internal/app/chat"
	"github.com/logitrack/assist/internal/domain"
)

// manualScheduler holds scheduled callbacks until the test fires them,
// standing in for the elapsed reply delay.
type manualScheduler struct {
	mu      sync.Mutex
	pending map[domain.SessionID]func()
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: make(map[domain.SessionID]func())}
}

func (s *manualScheduler) Schedule(id domain.SessionID, _ time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[id] = fn
}

func (s *manualScheduler) Cancel(id domain.SessionID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[id]
	delete(s.pending, id)
	return ok
}

// Fire runs and clears the pending callback for a session.
func (s *manualScheduler) Fire(id domain.SessionID) bool {
	s.mu.Lock()
	fn, ok := s.pending[id]
	delete(s.pending, id)
	s.mu.Unlock()

	if ok {
		fn()
	}
	return ok
}

func newTestService(t *testing.T) (*chat.Service, *manualScheduler) {
	t.Helper()

	scheduler := newManualScheduler()
	svc := chat.NewService(
		assist.NewScriptedResponder(assist.DefaultKnowledgeBase()),
		memory.NewSessionStore(),
		memory.NewTurnStore(),
		scheduler,
		chat.DefaultReplyDelay,
	)
	return svc, scheduler
}

func TestStartSessionSeedsGreeting(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	out, err := svc.StartSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, out.Session.ID)

	require.NotNil(t, out.Greeting)
	assert.Equal(t, domain.AuthorAssistant, out.Greeting.Author)
	assert.Contains(t, out.Greeting.Text, "logistics assistant")

	_, turns, err := svc.Transcript(ctx, out.Session.ID, 0)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, domain.AuthorAssistant, turns[0].Author)
	assert.False(t, svc.Busy(out.Session.ID))
}

func TestSubmitAppendsUserTurnThenAssistantTurn(t *testing.T) {
	svc, scheduler := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	id := session.Session.ID

	out, err := svc.Submit(ctx, chat.SubmitInput{SessionID: id, Text: "track package"})
	require.NoError(t, err)
	require.True(t, out.Accepted)
	require.NotNil(t, out.UserTurn)
	assert.Equal(t, domain.AuthorUser, out.UserTurn.Author)

	// User turn is visible before the reply; session is busy.
	_, turns, err := svc.Transcript(ctx, id, 0)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, domain.AuthorUser, turns[1].Author)
	assert.True(t, svc.Busy(id))

	require.True(t, scheduler.Fire(id))

	_, turns, err = svc.Transcript(ctx, id, 0)
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, domain.AuthorAssistant, turns[2].Author)
	assert.Equal(t, domain.ShipmentID("SH-2024-001"), turns[2].Reference)
	assert.False(t, svc.Busy(id))
}

func TestSubmitRejectedWhileReplyPending(t *testing.T) {
	svc, scheduler := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	id := session.Session.ID

	first, err := svc.Submit(ctx, chat.SubmitInput{SessionID: id, Text: "track package"})
	require.NoError(t, err)
	require.True(t, first.Accepted)

	// Second submission while busy: rejected, transcript unchanged.
	second, err := svc.Submit(ctx, chat.SubmitInput{SessionID: id, Text: "status update"})
	require.NoError(t, err)
	assert.False(t, second.Accepted)
	assert.Nil(t, second.UserTurn)

	_, turns, err := svc.Transcript(ctx, id, 0)
	require.NoError(t, err)
	assert.Len(t, turns, 2)

	// After the reply lands the session accepts input again.
	require.True(t, scheduler.Fire(id))
	third, err := svc.Submit(ctx, chat.SubmitInput{SessionID: id, Text: "status update"})
	require.NoError(t, err)
	assert.True(t, third.Accepted)
}

func TestSubmitIgnoresEmptyAndWhitespaceText(t *testing.T) {
	svc, scheduler := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	id := session.Session.ID

	for _, text := range []string{"", "   ", "\n\t"} {
		out, err := svc.Submit(ctx, chat.SubmitInput{SessionID: id, Text: text})
		require.NoError(t, err)
		assert.False(t, out.Accepted)
	}

	assert.False(t, svc.Busy(id))
	assert.False(t, scheduler.Fire(id), "no reply should have been scheduled")

	_, turns, err := svc.Transcript(ctx, id, 0)
	require.NoError(t, err)
	assert.Len(t, turns, 1)
}

func TestSubmitUnknownSession(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Submit(context.Background(), chat.SubmitInput{SessionID: "nope", Text: "track"})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestTimerSchedulerCancel(t *testing.T) {
	scheduler := chat.NewTimerScheduler()

	fired := make(chan struct{})
	scheduler.Schedule("s1", time.Hour, func() { close(fired) })

	assert.True(t, scheduler.Cancel("s1"))
	assert.False(t, scheduler.Cancel("s1"))

	select {
	case <-fired:
		t.Fatal("cancelled callback fired")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestTimerSchedulerFires(t *testing.T) {
	scheduler := chat.NewTimerScheduler()

	fired := make(chan struct{})
	scheduler.Schedule("s1", time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("callback never fired")
	}
	assert.False(t, scheduler.Cancel("s1"), "timer should have been cleared")
}
