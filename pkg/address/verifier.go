// Package address checks that a postal address looks deliverable.
package address

import (
	"context"
	"regexp"
	"time"

	"github.com/ragecodemaster/landing/pkg/cardinput"
)

// Fields is the address block of the card-linking form.
type Fields struct {
	Street string
	City   string
	State  string
	Zip    string
}

// Result reports validity per field.
type Result struct {
	Street bool
	City   bool
	State  bool
	Zip    bool
}

// OK reports whether every field passed.
func (r Result) OK() bool {
	return r.Street && r.City && r.State && r.Zip
}

// Verifier checks an address. Implementations may call a remote
// verification provider.
type Verifier interface {
	Verify(ctx context.Context, f Fields) (Result, error)
}

var (
	hasDigit   = regexp.MustCompile(`\d`)
	cityLetter = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

// Heuristic is a local stand-in for a real verification service. It only
// looks at the shape of each field.
type Heuristic struct {
	// Delay simulates provider latency.
	Delay time.Duration
}

// NewHeuristic returns a Heuristic verifier with the given simulated latency.
func NewHeuristic(delay time.Duration) *Heuristic {
	return &Heuristic{Delay: delay}
}

func (h *Heuristic) Verify(ctx context.Context, f Fields) (Result, error) {
	if h.Delay > 0 {
		timer := time.NewTimer(h.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-timer.C:
		}
	}

	return Result{
		Street: len(f.Street) > 5 && hasDigit.MatchString(f.Street),
		City:   len(f.City) > 2 && cityLetter.MatchString(f.City),
		State:  cardinput.ValidState(f.State),
		Zip:    cardinput.ValidZip(f.Zip),
	}, nil
}
