package services

import (
	"errors"
	"sync"
	"time"
)

var ErrSubmissionInFlight = errors.New("submission already in progress")

// Claim identifies one Begin call. Only the holder of the current claim
// can release a form instance.
type Claim uint64

type pendingClaim struct {
	id      Claim
	started time.Time
}

// InFlight tracks form instances that are currently being submitted so
// a double-posted form cannot produce a second notification.
type InFlight struct {
	pending map[string]pendingClaim
	mu      sync.Mutex
	next    Claim
	timeout time.Duration
	now     func() time.Time
}

func NewInFlight(timeout time.Duration) *InFlight {
	return &InFlight{
		pending: make(map[string]pendingClaim),
		timeout: timeout,
		now:     time.Now,
	}
}

// Begin claims formID. Claims older than the timeout are considered
// abandoned and may be taken over.
func (f *InFlight) Begin(formID string) (Claim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	if p, exists := f.pending[formID]; exists && now.Sub(p.started) < f.timeout {
		return 0, ErrSubmissionInFlight
	}

	f.next++
	f.pending[formID] = pendingClaim{id: f.next, started: now}
	return f.next, nil
}

// End releases formID if claim still holds it. A claim that was taken
// over after going stale releases nothing.
func (f *InFlight) End(formID string, claim Claim) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if p, exists := f.pending[formID]; exists && p.id == claim {
		delete(f.pending, formID)
	}
}

// Len returns the number of claimed form instances.
func (f *InFlight) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}
