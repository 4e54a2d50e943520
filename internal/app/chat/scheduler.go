package chat

import (
	"sync"
	"time"

	"github.com/logitrack/assist/internal/domain"
)

// ReplyScheduler schedules the assistant's delayed reply for a session.
// Cancel exists so a torn-down session can abandon its pending reply; the
// normal flow never cancels.
type ReplyScheduler interface {
	Schedule(id domain.SessionID, delay time.Duration, fn func())
	Cancel(id domain.SessionID) bool
}

// TimerScheduler runs callbacks on time.AfterFunc timers, at most one per
// session.
type TimerScheduler struct {
	mu     sync.Mutex
	timers map[domain.SessionID]*time.Timer
}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{
		timers: make(map[domain.SessionID]*time.Timer),
	}
}

func (s *TimerScheduler) Schedule(id domain.SessionID, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
	}
	s.timers[id] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, id)
		s.mu.Unlock()

		fn()
	})
}

// Cancel stops the pending callback for a session, reporting whether one was
// pending.
func (s *TimerScheduler) Cancel(id domain.SessionID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[id]
	if !ok {
		return false
	}
	t.Stop()
	delete(s.timers, id)
	return true
}
