package session

import (
	"sync"
	"time"
)

// IDGenerator produces unique session ids.
type IDGenerator interface {
	Generate() string
}

type managedSession struct {
	session  *Session
	lastSeen time.Time
}

// Manager issues sessions, finds them by id and drops idle ones.
// It owns the username set shared by all sessions.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*managedSession

	usernames *KnownSet
	ttl       time.Duration
	ids       IDGenerator
	now       func() time.Time
}

// NewManager returns a Manager whose sessions expire after ttl of idleness.
// A zero ttl disables expiry.
func NewManager(ttl time.Duration, ids IDGenerator) *Manager {
	return &Manager{
		sessions:  make(map[string]*managedSession),
		usernames: NewKnownSet(),
		ttl:       ttl,
		ids:       ids,
		now:       time.Now,
	}
}

// Usernames returns the shared username mirror.
func (m *Manager) Usernames() *KnownSet {
	return m.usernames
}

// New registers and returns a fresh empty session.
func (m *Manager) New() *Session {
	s := newSession(m.ids.Generate(), m.usernames)

	m.mu.Lock()
	m.sessions[s.id] = &managedSession{session: s, lastSeen: m.now()}
	m.mu.Unlock()

	return s
}

// Get returns the session with id and refreshes its idle timer. An expired
// session is dropped and reported as missing.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	ms, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return nil, false
	}

	now := m.now()
	if m.expired(ms, now) {
		delete(m.sessions, id)
		m.mu.Unlock()
		expire(ms.session)
		return nil, false
	}

	ms.lastSeen = now
	m.mu.Unlock()

	return ms.session, true
}

// Sweep drops every session idle for longer than the ttl, running the
// expiry transition on each, and returns how many were dropped.
func (m *Manager) Sweep() int {
	now := m.now()

	m.mu.Lock()
	expired := make([]*Session, 0)
	for id, ms := range m.sessions {
		if m.expired(ms, now) {
			delete(m.sessions, id)
			expired = append(expired, ms.session)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		expire(s)
	}

	return len(expired)
}

// Len returns the number of registered sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

func (m *Manager) expired(ms *managedSession, now time.Time) bool {
	return m.ttl > 0 && now.Sub(ms.lastSeen) > m.ttl
}

func expire(s *Session) {
	s.Lock()
	defer s.Unlock()

	s.Expire()
}
