package usecase

import (
	"errors"
	"sync"
	"time"

	"github.com/Chopaholic/MotorAdverts/services/feed/internal/entity"
	"github.com/Chopaholic/MotorAdverts/services/feed/internal/repo/persistent"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("scroll session not found")

const (
	sessionIdleTTL  = 30 * time.Minute
	sessionSweepGap = time.Minute
)

type session struct {
	paginator *Paginator
	lastSeen  time.Time
}

// SessionManager tracks one Paginator per scrolling client. Sessions are
// in-memory; an idle session expires and the client starts a fresh one.
type SessionManager struct {
	mu       sync.Mutex
	repo     persistent.FeedRepository
	sessions map[string]*session
	stop     chan struct{}

	now func() time.Time
}

func NewSessionManager(repo persistent.FeedRepository) *SessionManager {
	m := &SessionManager{
		repo:     repo,
		sessions: make(map[string]*session),
		stop:     make(chan struct{}),
		now:      time.Now,
	}
	go m.sweep()
	return m
}

// Create starts a session with the given filters and returns its id. The
// caller performs the initial load.
func (m *SessionManager) Create(filters entity.Filters) (string, *Paginator) {
	id := uuid.New().String()
	p := NewPaginator(m.repo, filters)

	m.mu.Lock()
	m.sessions[id] = &session{paginator: p, lastSeen: m.now()}
	m.mu.Unlock()

	return id, p
}

// Get returns the session's paginator and refreshes its idle timer.
func (m *SessionManager) Get(id string) (*Paginator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok || m.now().Sub(s.lastSeen) > sessionIdleTTL {
		delete(m.sessions, id)
		return nil, ErrSessionNotFound
	}
	s.lastSeen = m.now()
	return s.paginator, nil
}

func (m *SessionManager) sweep() {
	ticker := time.NewTicker(sessionSweepGap)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.mu.Lock()
			for id, s := range m.sessions {
				if m.now().Sub(s.lastSeen) > sessionIdleTTL {
					delete(m.sessions, id)
				}
			}
			m.mu.Unlock()
		}
	}
}

// Close stops the background sweeper.
func (m *SessionManager) Close() {
	close(m.stop)
}
