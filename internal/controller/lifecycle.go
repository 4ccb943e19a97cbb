// Package controller implements the per-screen view controllers. Every
// controller owns a local slice of server truth, issues gateway calls,
// and reconciles results through the same lifecycle protocol:
//
//	Idle -> Loading -> {Ready, Error}
//
// re-entering Loading on every refresh trigger. A refetch keeps prior
// data visible until the new fetch resolves. Mutations never patch
// cached state: on success the affected list is refetched in full
// before the controller settles.
package controller

import (
	"context"
	"sync"
)

// Phase is a controller's lifecycle phase.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseError
)

// String names the phase for logs.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// view is the shared lifecycle state embedded by every controller. Its
// mutex also guards the embedding controller's data fields, so a
// generation check and the state write it protects are one atomic step.
//
// The generation counter guards against abandoned fetches: a fetch that
// resolves after the controller moved on (a newer load, or Reset) must
// not write its stale result anywhere.
type view struct {
	mu    sync.Mutex
	phase Phase
	gen   uint64
	err   error
}

// begin enters Loading and returns the generation token the caller must
// present when completing. Prior data is left in place so the old view
// stays visible while loading.
func (v *view) begin() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	v.phase = PhaseLoading
	v.err = nil
	return v.gen
}

// complete settles a fetch started with begin. When the generation is
// stale the result is discarded entirely and complete reports false.
// Otherwise apply (which writes the controller's data fields) runs under
// the lock when err is nil, and the phase settles to Ready or Error.
func (v *view) complete(gen uint64, err error, apply func()) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return false
	}
	if err != nil {
		v.phase = PhaseError
		v.err = err
		return true
	}
	if apply != nil {
		apply()
	}
	v.phase = PhaseReady
	v.err = nil
	return true
}

// locked runs fn under the state lock, for reads and for the local
// state writes that bypass the fetch lifecycle.
func (v *view) locked(fn func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fn()
}

// Reset returns the controller to Idle and abandons any in-flight fetch.
func (v *view) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	v.phase = PhaseIdle
	v.err = nil
}

// Phase returns the lifecycle phase.
func (v *view) Phase() Phase {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.phase
}

// Err returns the error that settled the controller into PhaseError,
// or nil.
func (v *view) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// mutateThenRefetch applies the uniform mutation policy: run the
// gateway mutation, and only on success run a full refetch of the
// affected state. The refetch is awaited, so the screen is settled when
// control returns. On mutation failure nothing is refetched and prior
// state stays untouched.
func mutateThenRefetch(ctx context.Context, mutate, refetch func(context.Context) error) error {
	if err := mutate(ctx); err != nil {
		return err
	}
	return refetch(ctx)
}
