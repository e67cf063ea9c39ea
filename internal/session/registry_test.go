package session

import (
	"sync"
	"testing"
	"time"
)

func TestOpenAndLookup(t *testing.T) {
	r := NewRegistry(5 * time.Minute)

	sess, err := r.Open("s1", 10, 30*time.Minute)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if sess.StudentID != "s1" || sess.ExamID != 10 {
		t.Fatalf("unexpected session: %+v", sess)
	}

	got, ok := r.Lookup("s1", 10)
	if !ok {
		t.Fatal("Lookup: session not found")
	}
	if got.Handle != sess.Handle {
		t.Fatalf("Lookup returned different session: %v vs %v", got.Handle, sess.Handle)
	}
	if _, ok := r.Lookup("s2", 10); ok {
		t.Fatal("Lookup found session for wrong student")
	}
}

func TestOpenRejectsSecondStart(t *testing.T) {
	r := NewRegistry(5 * time.Minute)

	if _, err := r.Open("s1", 10, 30*time.Minute); err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if _, err := r.Open("s1", 10, 30*time.Minute); err == nil {
		t.Fatal("second Open for same pair succeeded, want rejection")
	}
	// A different exam for the same student is an independent key.
	if _, err := r.Open("s1", 11, 30*time.Minute); err != nil {
		t.Fatalf("Open for different exam: %v", err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	r := NewRegistry(5 * time.Minute)

	if _, err := r.Open("s1", 10, 30*time.Minute); err != nil {
		t.Fatalf("Open: %v", err)
	}
	r.Close("s1", 10)
	if _, ok := r.Lookup("s1", 10); ok {
		t.Fatal("session still live after Close")
	}
	r.Close("s1", 10) // no-op

	if _, err := r.Open("s1", 10, 30*time.Minute); err != nil {
		t.Fatalf("Open after Close: %v", err)
	}
}

func TestIsExpired(t *testing.T) {
	r := NewRegistry(5 * time.Minute)
	sess, err := r.Open("s1", 10, 30*time.Minute)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if r.IsExpired(sess, sess.StartTime.Add(29*time.Minute)) {
		t.Fatal("session expired before deadline")
	}
	if !r.IsExpired(sess, sess.StartTime.Add(31*time.Minute)) {
		t.Fatal("session not expired after deadline")
	}
}

func TestLazyEvictionPastGrace(t *testing.T) {
	r := NewRegistry(5 * time.Minute)
	start := time.Now()
	now := start
	r.SetClock(func() time.Time { return now })

	if _, err := r.Open("s1", 10, 30*time.Minute); err != nil {
		t.Fatalf("Open: %v", err)
	}

	// Past the deadline but within grace: still visible, flagged late.
	now = start.Add(32 * time.Minute)
	sess, ok := r.Lookup("s1", 10)
	if !ok {
		t.Fatal("session evicted inside grace window")
	}
	if !r.IsExpired(sess, now) {
		t.Fatal("session past deadline should report expired")
	}

	// Past deadline+grace: abandoned, Lookup evicts it.
	now = start.Add(36 * time.Minute)
	if _, ok := r.Lookup("s1", 10); ok {
		t.Fatal("abandoned session still visible past grace")
	}
	if r.Len() != 0 {
		t.Fatalf("Len = %d after lazy eviction, want 0", r.Len())
	}

	// The stale key no longer blocks a fresh start.
	if _, err := r.Open("s1", 10, 30*time.Minute); err != nil {
		t.Fatalf("Open after abandonment: %v", err)
	}
}

func TestSweep(t *testing.T) {
	r := NewRegistry(time.Minute)
	start := time.Now()
	now := start
	r.SetClock(func() time.Time { return now })

	if _, err := r.Open("s1", 10, 10*time.Minute); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := r.Open("s2", 10, 60*time.Minute); err != nil {
		t.Fatalf("Open: %v", err)
	}

	now = start.Add(20 * time.Minute)
	if n := r.Sweep(); n != 1 {
		t.Fatalf("Sweep removed %d sessions, want 1", n)
	}
	if _, ok := r.Lookup("s2", 10); !ok {
		t.Fatal("Sweep evicted a live session")
	}
}

func TestConcurrentOpenSameKey(t *testing.T) {
	r := NewRegistry(5 * time.Minute)

	const workers = 32
	var wg sync.WaitGroup
	wins := make(chan struct{}, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Open("s1", 10, 30*time.Minute); err == nil {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	won := 0
	for range wins {
		won++
	}
	if won != 1 {
		t.Fatalf("%d concurrent opens succeeded for one key, want exactly 1", won)
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
}

func TestConcurrentIndependentKeys(t *testing.T) {
	r := NewRegistry(5 * time.Minute)

	const students = 64
	var wg sync.WaitGroup
	for i := 0; i < students; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := string(rune('a' + n%26))
			examID := uint(n)
			if _, err := r.Open(id, examID, 30*time.Minute); err != nil {
				t.Errorf("Open(%q, %d): %v", id, examID, err)
				return
			}
			if _, ok := r.Lookup(id, examID); !ok {
				t.Errorf("Lookup(%q, %d) missing", id, examID)
			}
			r.Close(id, examID)
		}(i)
	}
	wg.Wait()

	if r.Len() != 0 {
		t.Fatalf("Len = %d after all closes, want 0", r.Len())
	}
}
