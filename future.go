package fist

import (
	"context"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// Future is a value that settles exactly once, either resolved with a value
// or rejected with an error. It is the deferred value a Runtime suspends on.
//
// Futures are safe for concurrent use: they are usually settled from a
// goroutine other than the one that owns the Runtime.
type Future[T any] struct {
	mu      sync.Mutex
	done    chan struct{}
	settled bool
	val     T
	err     error
	subs    []func()
}

// settler is satisfied by every Future regardless of its value type.
type settler interface {
	subscribe(fn func())
}

// NewFuture creates a pending Future.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved returns a Future already resolved with v.
func Resolved[T any](v T) *Future[T] {
	f := NewFuture[T]()
	f.Resolve(v)
	return f
}

// Rejected returns a Future already rejected with err.
func Rejected[T any](err error) *Future[T] {
	f := NewFuture[T]()
	f.Reject(err)
	return f
}

// Resolve settles the Future with v. It returns false if the Future was
// already settled, in which case v is discarded.
func (f *Future[T]) Resolve(v T) bool {
	return f.settle(v, nil)
}

// Reject settles the Future with err. It returns false if the Future was
// already settled.
func (f *Future[T]) Reject(err error) bool {
	var zero T
	if err == nil {
		err = ErrNilError
	}
	return f.settle(zero, err)
}

func (f *Future[T]) settle(v T, err error) bool {
	f.mu.Lock()
	if f.settled {
		f.mu.Unlock()
		return false
	}
	f.settled = true
	f.val, f.err = v, err
	subs := f.subs
	f.subs = nil
	close(f.done)
	f.mu.Unlock()

	// Subscribers run in registration order on the settling goroutine.
	for _, fn := range subs {
		fn()
	}
	return true
}

// subscribe registers fn to run once the Future settles. If it has already
// settled, fn runs immediately on the caller's goroutine.
func (f *Future[T]) subscribe(fn func()) {
	f.mu.Lock()
	if !f.settled {
		f.subs = append(f.subs, fn)
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()
	fn()
}

// Done returns a channel that is closed when the Future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Result returns the settled value and error. Before Done is closed it
// returns the zero value and ErrPending.
func (f *Future[T]) Result() (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.settled {
		var zero T
		return zero, ErrPending
	}
	return f.val, f.err
}

// Wait blocks until the Future settles or ctx is done.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.Result()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Go runs fn on a new goroutine and returns a Future for its result.
// A panic inside fn rejects the Future.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := NewFuture[T]()
	go func() {
		defer func() {
			if p := recover(); p != nil {
				f.Reject(panicError(p))
			}
		}()
		v, err := fn()
		if err != nil {
			f.Reject(err)
			return
		}
		f.Resolve(v)
	}()
	return f
}

// After returns a Future that resolves with v once d has elapsed on clock.
// Use clockz.FakeClock to drive it deterministically in tests.
func After[T any](clock clockz.Clock, d time.Duration, v T) *Future[T] {
	f := NewFuture[T]()
	timer := clock.NewTimer(d)
	go func() {
		<-timer.C()
		f.Resolve(v)
	}()
	return f
}

// Then returns a Future settled with fn applied to f's value. A rejection
// of f is passed through unchanged and fn is not called. A panic in fn
// rejects the returned Future.
func Then[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	out := NewFuture[U]()
	f.subscribe(func() {
		defer func() {
			if p := recover(); p != nil {
				out.Reject(panicError(p))
			}
		}()
		v, err := f.Result()
		if err != nil {
			out.Reject(err)
			return
		}
		out.Resolve(fn(v))
	})
	return out
}
