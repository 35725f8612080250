package state

import (
	"sync"
	"time"
)

// Manager tracks dialog sessions keyed by Telegram user ID.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
	}
}

// GetState returns the user's current dialog state.
func (m *Manager) GetState(telegramID int64) UserState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if session, exists := m.sessions[telegramID]; exists {
		return session.State
	}
	return StateNone
}

// SetState moves the user to a dialog state. StateNone drops the session.
func (m *Manager) SetState(telegramID int64, state UserState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if state == StateNone {
		delete(m.sessions, telegramID)
		return
	}

	session, exists := m.sessions[telegramID]
	if !exists {
		session = &Session{Data: make(map[string]interface{})}
		m.sessions[telegramID] = session
	}
	session.State = state
	session.UpdatedAt = time.Now()
}

// GetData reads a scratch value from the user's session.
func (m *Manager) GetData(telegramID int64, key string) (interface{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if session, exists := m.sessions[telegramID]; exists {
		value, ok := session.Data[key]
		return value, ok
	}
	return nil, false
}

// SetData stores a scratch value in the user's session.
func (m *Manager) SetData(telegramID int64, key string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[telegramID]
	if !exists {
		session = &Session{Data: make(map[string]interface{})}
		m.sessions[telegramID] = session
	}
	session.Data[key] = value
	session.UpdatedAt = time.Now()
}

// ClearState drops the user's session and all its data.
func (m *Manager) ClearState(telegramID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, telegramID)
}

// CleanupStale drops sessions idle for longer than maxAge and returns how
// many were removed. An abandoned edit loses only its draft, the
// persisted schedule is untouched.
func (m *Manager) CleanupStale(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, session := range m.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
