// Package testing provides test utilities and helpers for fist runtimes.
package testing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/fist"
)

// Recorder captures everything a Runtime's hooks observe. Its Effects can be
// passed straight to fist.Bind.
type Recorder[S any] struct {
	mu       sync.Mutex
	entered  []S
	errors   []error
	dispatch fist.Dispatcher[S]
}

// NewRecorder creates an empty Recorder.
func NewRecorder[S any]() *Recorder[S] {
	return &Recorder[S]{}
}

// Effects returns hooks that record entered states, raised errors and the
// bound dispatcher.
func (r *Recorder[S]) Effects() fist.Effects[S] {
	return fist.Effects[S]{
		OnEnter: func(state S) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.entered = append(r.entered, state)
		},
		OnError: func(err error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.errors = append(r.errors, err)
		},
		OnBind: func(dispatch fist.Dispatcher[S]) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.dispatch = dispatch
		},
	}
}

// Entered returns every state the enter hook saw, in order.
func (r *Recorder[S]) Entered() []S {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]S(nil), r.entered...)
}

// EnterCount returns how many times the enter hook fired.
func (r *Recorder[S]) EnterCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entered)
}

// Errors returns every error OnError received, in order.
func (r *Recorder[S]) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errors...)
}

// Dispatcher returns the dispatcher passed to OnBind, or nil before Bind.
func (r *Recorder[S]) Dispatcher() fist.Dispatcher[S] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dispatch
}

// Expect returns an action that fails the test unless the current state
// equals want. It leaves the state unchanged.
func Expect[S comparable](t *testing.T, want S) fist.Action[S] {
	t.Helper()
	return func(got S, _ fist.Effects[S]) fist.Outcome[S] {
		if got != want {
			t.Errorf("expected state %v, got %v", want, got)
		}
		return nil
	}
}

// RequireState fails the test immediately if the runtime is not in the expected state.
func RequireState[S comparable](t *testing.T, rt *fist.Runtime[S], want S) {
	t.Helper()
	if got := rt.State(); got != want {
		t.Fatalf("expected state %v, got %v", want, got)
	}
}

// RequireDispatch dispatches action and fails the test if an error escapes.
func RequireDispatch[S any](t *testing.T, rt *fist.Runtime[S], action fist.Action[S]) {
	t.Helper()
	if err := rt.Dispatch(action); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
}

// Settle runs the runtime's continuations until none are outstanding,
// failing the test if that takes longer than timeout or an error escapes.
func Settle[S any](t *testing.T, rt *fist.Runtime[S], timeout time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := rt.Settle(ctx); err != nil {
		t.Fatalf("Settle failed: %v", err)
	}
}
