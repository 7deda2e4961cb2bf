package fist

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on key runtime events.
// See pkg/prometheus for a ready-made implementation.
type MetricsProvider interface {
	// OnDispatch is called when an action is submitted through the dispatcher.
	OnDispatch()

	// OnEnter is called each time the enter hook is resolved.
	OnEnter()

	// OnRaise is called for every raised error. Handled reports whether an
	// OnError hook received it.
	OnRaise(handled bool)

	// OnSuspend is called when the runtime suspends on a deferred value.
	OnSuspend()

	// OnResume is called when a continuation runs, with the time it spent queued
	// and waiting for its deferred value.
	OnResume(wait time.Duration)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnDispatch()              {}
func (NoOpMetricsProvider) OnEnter()                 {}
func (NoOpMetricsProvider) OnRaise(_ bool)           {}
func (NoOpMetricsProvider) OnSuspend()               {}
func (NoOpMetricsProvider) OnResume(_ time.Duration) {}
