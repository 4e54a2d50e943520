package memory

import (
	"sync"

	"github.com/logitrack/assist/internal/domain"
)

type TurnStore struct {
	mu    sync.RWMutex
	turns map[domain.SessionID][]*domain.ChatTurn
}

func NewTurnStore() *TurnStore {
	return &TurnStore{
		turns: make(map[domain.SessionID][]*domain.ChatTurn),
	}
}

func (s *TurnStore) AppendTurn(turn *domain.ChatTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns[turn.SessionID] = append(s.turns[turn.SessionID], turn)
	return nil
}

func (s *TurnStore) ListTurnsBySession(sessionID domain.SessionID, limit int) ([]*domain.ChatTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.turns[sessionID]
	if limit > 0 && len(turns) > limit {
		return turns[len(turns)-limit:], nil
	}
	return turns, nil
}
