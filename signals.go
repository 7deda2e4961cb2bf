package fist

import "github.com/zoobzio/capitan"

// Runtime lifecycle signals.
var (
	// RuntimeBound is emitted when Bind creates a Runtime.
	RuntimeBound = capitan.NewSignal(
		"fist.runtime.bound",
		"Runtime bound to its initial state",
	)

	// RuntimeStopped is emitted when Run returns.
	RuntimeStopped = capitan.NewSignal(
		"fist.runtime.stopped",
		"Runtime event loop stopped",
	)

	// StateEntered is emitted when the state is replaced.
	StateEntered = capitan.NewSignal(
		"fist.state.entered",
		"State replaced",
	)

	// StateReentered is emitted each time the enter hook is resolved.
	StateReentered = capitan.NewSignal(
		"fist.state.reentered",
		"Enter hook resolved for current state",
	)
)

// Dispatch signals.
var (
	// ActionDispatched is emitted when an action is submitted through the dispatcher.
	ActionDispatched = capitan.NewSignal(
		"fist.action.dispatched",
		"Action submitted to runtime",
	)

	// ActionSuspended is emitted when the runtime registers a continuation on a future.
	ActionSuspended = capitan.NewSignal(
		"fist.action.suspended",
		"Runtime suspended on a deferred value",
	)

	// ActionResumed is emitted when a queued continuation runs.
	ActionResumed = capitan.NewSignal(
		"fist.action.resumed",
		"Deferred continuation resumed",
	)
)

// Error signals.
var (
	// ErrorHandled is emitted when a raised error is passed to OnError.
	ErrorHandled = capitan.NewSignal(
		"fist.error.handled",
		"Raised error delivered to OnError",
	)

	// ErrorUnhandled is emitted when a raised error has no OnError hook and
	// aborts the enclosing call.
	ErrorUnhandled = capitan.NewSignal(
		"fist.error.unhandled",
		"Raised error escaped the runtime",
	)
)
