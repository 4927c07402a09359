package session

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one browser's server-side state. Its mutex serializes every
// mutation so racing requests (double clicks, duplicate tabs) cannot break
// the idempotent-scoring or monotonic-position invariants.
type Session struct {
	ID string

	mu          sync.Mutex
	Progression *Progression
	lastSeen    time.Time
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Store keeps sessions in memory, keyed by random id, and expires ones that
// have been idle longer than the TTL. Session state lives and dies with the
// process; nothing is persisted.
type Store struct {
	ttl time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore(ttl time.Duration) *Store {
	return &Store{ttl: ttl, sessions: make(map[string]*Session)}
}

// Get returns the session for id and refreshes its idle timer. Expired
// sessions miss and are dropped on the spot.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if time.Since(sess.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	sess.lastSeen = time.Now()
	return sess, true
}

// Create registers a fresh session under a random id.
func (s *Store) Create() *Session {
	sess := &Session{ID: uuid.NewString(), lastSeen: time.Now()}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// StartJanitor purges expired sessions every interval until stop is closed.
// A nil stop channel runs the janitor for the life of the process.
func (s *Store) StartJanitor(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.purge()
			case <-stop:
				return
			}
		}
	}()
}

func (s *Store) purge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		log.Printf("[session] purged %d expired sessions", removed)
	}
}
