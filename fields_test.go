package fist

import (
	"testing"
	"time"
)

func TestKeyRuntime(t *testing.T) {
	field := KeyRuntime.Field("orders")
	if field.Key().Name() != "runtime" {
		t.Errorf("expected key 'runtime', got %q", field.Key().Name())
	}
}

func TestKeyState(t *testing.T) {
	field := KeyState.Field("idle")
	if field.Key().Name() != "state" {
		t.Errorf("expected key 'state', got %q", field.Key().Name())
	}
}

func TestKeyError(t *testing.T) {
	field := KeyError.Field("something went wrong")
	if field.Key().Name() != "error" {
		t.Errorf("expected key 'error', got %q", field.Key().Name())
	}
}

func TestKeyPending(t *testing.T) {
	field := KeyPending.Field(3)
	if field.Key().Name() != "pending" {
		t.Errorf("expected key 'pending', got %q", field.Key().Name())
	}
}

func TestKeyWait(t *testing.T) {
	field := KeyWait.Field(100 * time.Millisecond)
	if field.Key().Name() != "wait" {
		t.Errorf("expected key 'wait', got %q", field.Key().Name())
	}
}
