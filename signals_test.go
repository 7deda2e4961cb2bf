package fist

import "testing"

func TestSignalNames(t *testing.T) {
	tests := []struct {
		name func() string
		want string
	}{
		{RuntimeBound.Name, "fist.runtime.bound"},
		{RuntimeStopped.Name, "fist.runtime.stopped"},
		{StateEntered.Name, "fist.state.entered"},
		{StateReentered.Name, "fist.state.reentered"},
		{ActionDispatched.Name, "fist.action.dispatched"},
		{ActionSuspended.Name, "fist.action.suspended"},
		{ActionResumed.Name, "fist.action.resumed"},
		{ErrorHandled.Name, "fist.error.handled"},
		{ErrorUnhandled.Name, "fist.error.unhandled"},
	}
	for _, tt := range tests {
		if got := tt.name(); got != tt.want {
			t.Errorf("expected name %q, got %q", tt.want, got)
		}
	}
}
