// Package view provides the fetch lifecycle every screen shares: a resource
// moves idle → loading → ready or error, and forms run a submitting
// sub-state on top of a ready screen.
package view

import (
	"math"
	"sync"
	"time"
)

// Phase is the lifecycle state of a fetched resource.
type Phase int

const (
	Idle Phase = iota
	Loading
	Ready
	Errored
)

// Resource holds one screen's copy of a server-owned value. The whole value
// is replaced on every successful fetch; the server stays the source of
// truth.
type Resource[T any] struct {
	mu      sync.Mutex
	phase   Phase
	data    T
	message string
}

// Begin moves the resource to loading, discarding any previous error.
func (r *Resource[T]) Begin() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phase = Loading
	r.message = ""
}

// Resolve replaces the local copy with the server's response.
func (r *Resource[T]) Resolve(data T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phase = Ready
	r.data = data
	r.message = ""
}

// Fail records a user-facing message. Partial results from the same batch
// are dropped with it.
func (r *Resource[T]) Fail(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	r.phase = Errored
	r.data = zero
	r.message = message
}

// Phase returns the current lifecycle state.
func (r *Resource[T]) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// Data returns the last resolved value; meaningful only when Ready.
func (r *Resource[T]) Data() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data
}

// Message returns the error message; meaningful only when Errored.
func (r *Resource[T]) Message() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.message
}

// Submission is the submitting → ready/error sub-machine of a form. A
// successful submit shows a banner that auto-clears after a fixed interval.
type Submission struct {
	mu         sync.Mutex
	submitting bool
	success    bool
	message    string
	timer      *time.Timer
}

// Begin marks the form as submitting and drops stale outcome state.
func (s *Submission) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = true
	s.success = false
	s.message = ""
}

// Succeed shows the success banner and schedules its auto-clear.
func (s *Submission) Succeed(clearAfter time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	s.success = true
	s.message = ""
	if s.timer != nil {
		s.timer.Stop()
	}
	if clearAfter > 0 {
		s.timer = time.AfterFunc(clearAfter, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.success = false
		})
	}
}

// Fail keeps the form up with the server's message; entered values are the
// caller's to preserve.
func (s *Submission) Fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	s.success = false
	s.message = message
}

// Submitting reports whether a submit is in flight.
func (s *Submission) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// Success reports whether the banner is currently shown.
func (s *Submission) Success() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.success
}

// Message returns the last failure message.
func (s *Submission) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Percent computes goal progress as min(100, round(100*value/goal)). A zero
// or missing goal reads as 0%, never a non-finite value.
func Percent(value, goal float64) int {
	if goal <= 0 {
		return 0
	}
	p := math.Round(value / goal * 100)
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return int(p)
}
