package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"scorecast/internal/models"
)

// Session carries one prediction's state between the predict, schedule,
// report and lead-capture steps. Created on a successful prediction,
// discarded after the TTL.
type Session struct {
	ID          string
	Name        string
	Score       float64
	Hours       int
	WeakSubject string
	Advice      string
	Tier        models.Tier
	CreatedAt   time.Time
}

// SessionStore holds live sessions in memory. Expired entries are swept
// lazily on access; there is no background work.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*Session
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Create registers a new session and returns it.
func (s *SessionStore) Create(name string, score float64, hours int, weakSubject, advice string, tier models.Tier) *Session {
	sess := &Session{
		ID:          uuid.NewString(),
		Name:        name,
		Score:       score,
		Hours:       hours,
		WeakSubject: weakSubject,
		Advice:      advice,
		Tier:        tier,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session for id, or false when unknown or expired.
func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if time.Since(sess.CreatedAt) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	return sess, true
}

func (s *SessionStore) sweepLocked() {
	for id, sess := range s.sessions {
		if time.Since(sess.CreatedAt) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
