package session

import "sync"

// Fixed keys the credential is persisted under, in every backend.
const (
	KeyToken   = "auth_token"
	KeyIsAdmin = "is_admin"
)

// Session is the client-held proof of authentication plus its role claim.
// The token is opaque and never decoded here.
type Session struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"is_admin"`
}

// Valid reports whether the session carries a token. A session without one is absent.
func (s Session) Valid() bool { return s.Token != "" }

// Store persists at most one Session.
//
// Implementations never fail the caller: if the backing storage is unavailable,
// Set is a no-op, Get reports absent and Clear does nothing.
type Store interface {
	Get() (Session, bool)
	Set(Session)
	Clear()
}

// MemoryStore keeps the session in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	session Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get() (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.session.Valid() {
		return Session{}, false
	}
	return m.session, true
}

func (m *MemoryStore) Set(s Session) {
	m.mu.Lock()
	m.session = s
	m.mu.Unlock()
}

func (m *MemoryStore) Clear() {
	m.mu.Lock()
	m.session = Session{}
	m.mu.Unlock()
}
