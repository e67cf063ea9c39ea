// Package session tracks in-progress exam attempts. The registry is the
// sole source of truth for "is this student currently mid-exam"; entries
// exist only between a successful start and a successful submission.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/Pangolins/internal/apperr"
	"github.com/rs/zerolog/log"
)

type Key struct {
	StudentID string
	ExamID    uint
}

type Session struct {
	Handle    uuid.UUID
	ExamID    uint
	StudentID string
	StartTime time.Time
	Duration  time.Duration
}

// Deadline is the nominal end of the attempt. Submissions after it are
// still accepted while the session remains registered.
func (s Session) Deadline() time.Time {
	return s.StartTime.Add(s.Duration)
}

// Registry is shared by every connected student; per-key operations are
// independent and guarded by a single RWMutex over the map.
type Registry struct {
	mu     sync.RWMutex
	active map[Key]Session
	grace  time.Duration
	now    func() time.Time
}

// NewRegistry builds an empty registry. Sessions older than their
// deadline plus grace are considered abandoned and become invisible to
// Lookup even before the sweeper removes them.
func NewRegistry(grace time.Duration) *Registry {
	return &Registry{
		active: make(map[Key]Session),
		grace:  grace,
		now:    time.Now,
	}
}

// SetClock overrides the registry's time source. Tests only.
func (r *Registry) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

// Open registers a new attempt. It fails with ErrAttemptInProgress when a
// live (non-abandoned) session already exists for the pair, so concurrent
// starts resolve deterministically: exactly one wins.
func (r *Registry) Open(studentID string, examID uint, duration time.Duration) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := Key{StudentID: studentID, ExamID: examID}
	if existing, ok := r.active[key]; ok {
		if !r.abandoned(existing) {
			return Session{}, apperr.ErrAttemptInProgress
		}
		// Stale entry from an attempt the student walked away from.
		delete(r.active, key)
	}

	sess := Session{
		Handle:    uuid.New(),
		ExamID:    examID,
		StudentID: studentID,
		StartTime: r.now(),
		Duration:  duration,
	}
	r.active[key] = sess
	return sess, nil
}

// Lookup returns the live session for the pair, lazily evicting it when
// it has passed the grace window.
func (r *Registry) Lookup(studentID string, examID uint) (Session, bool) {
	key := Key{StudentID: studentID, ExamID: examID}

	r.mu.RLock()
	sess, ok := r.active[key]
	r.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	if r.abandoned(sess) {
		r.mu.Lock()
		if cur, still := r.active[key]; still && cur.Handle == sess.Handle {
			delete(r.active, key)
		}
		r.mu.Unlock()
		return Session{}, false
	}
	return sess, true
}

// Close removes the session if present; closing an already-closed pair is
// a no-op so retried submissions stay harmless.
func (r *Registry) Close(studentID string, examID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, Key{StudentID: studentID, ExamID: examID})
}

// IsExpired reports whether now is past the session's nominal deadline.
func (r *Registry) IsExpired(sess Session, now time.Time) bool {
	return now.After(sess.Deadline())
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.active)
}

// Sweep evicts every abandoned session and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for key, sess := range r.active {
		if r.abandoned(sess) {
			delete(r.active, key)
			removed++
		}
	}
	return removed
}

// Run sweeps on the given interval until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				log.Info().Int("evicted", n).Msg("Session sweep removed abandoned exam sessions")
			}
		}
	}
}

// abandoned only reads the clock and grace window, both fixed after
// construction, so it is safe with or without the mutex held.
func (r *Registry) abandoned(sess Session) bool {
	return r.now().After(sess.Deadline().Add(r.grace))
}
