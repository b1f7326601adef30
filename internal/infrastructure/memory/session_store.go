// Package memory holds the in-memory session store. There is deliberately no
// database behind it: an invoice lives exactly as long as its editing
// session, and an expired session is simply gone.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/asmitlabs/gst-invoice-api/internal/domain/entity"
)

// SessionStore implements invoicing.SessionStore over a mutex-guarded map.
// Each session has one logical writer, but different clients' sessions are
// served concurrently.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration // 0 = never expire
	now      func() time.Time
}

type session struct {
	invoice *entity.Invoice
	touched time.Time
}

// NewSessionStore builds a store whose sessions expire ttl after their last
// mutation or read.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create stores the invoice under a fresh session id.
func (s *SessionStore) Create(inv *entity.Invoice) string {
	id := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &session{invoice: inv, touched: s.now()}
	return id
}

// Get returns a snapshot of the session's invoice. Expired sessions count as
// missing and are dropped on the spot.
func (s *SessionStore) Get(id string) (entity.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.live(id)
	if !ok {
		return entity.Invoice{}, false
	}
	sess.touched = s.now()
	return sess.invoice.Snapshot(), true
}

// Mutate applies fn under the store's lock and returns the resulting
// snapshot.
func (s *SessionStore) Mutate(id string, fn func(*entity.Invoice)) (entity.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.live(id)
	if !ok {
		return entity.Invoice{}, false
	}
	fn(sess.invoice)
	sess.touched = s.now()
	return sess.invoice.Snapshot(), true
}

// Delete discards the session; unknown ids are a no-op.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// RunJanitor sweeps expired sessions at the given interval until ctx is
// cancelled. Expiry is also enforced lazily on access, so the janitor only
// bounds memory.
func (s *SessionStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// live returns the session when present and not expired; callers hold the
// write lock.
func (s *SessionStore) live(id string) (*session, bool) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.expired(sess) {
		delete(s.sessions, id)
		return nil, false
	}
	return sess, true
}

func (s *SessionStore) expired(sess *session) bool {
	return s.ttl > 0 && s.now().Sub(sess.touched) > s.ttl
}

func (s *SessionStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
		}
	}
}
