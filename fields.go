package fist

import "github.com/zoobzio/capitan"

// Field keys for Runtime events.
var (
	// KeyRuntime is the name given to the Runtime with WithName.
	KeyRuntime = capitan.NewStringKey("runtime")

	// KeyState describes the state involved in the event.
	KeyState = capitan.NewStringKey("state")

	// KeyError is the error message when an error is raised.
	KeyError = capitan.NewStringKey("error")

	// KeyPending is the number of outstanding suspensions.
	KeyPending = capitan.NewIntKey("pending")

	// KeyWait is how long a continuation waited between suspension and resumption.
	KeyWait = capitan.NewDurationKey("wait")
)
