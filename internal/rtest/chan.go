// Package rtest contains channel helpers for tests.
package rtest

import (
	"testing"
	"time"
)

// Deadline for the *Soon helpers.
// Generous so that slow CI machines do not cause flakes.
const soon = 5 * time.Second

// SendSoon sends v on ch, failing t if the send does not complete
// within a generous deadline.
func SendSoon[T any](t *testing.T, ch chan<- T, v T) {
	t.Helper()

	select {
	case ch <- v:
	case <-time.After(soon):
		t.Fatalf("failed to send %v within %s", v, soon)
	}
}

// ReceiveSoon receives a value from ch, failing t if nothing arrives
// within a generous deadline.
func ReceiveSoon[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case v := <-ch:
		return v
	case <-time.After(soon):
		t.Fatalf("failed to receive within %s", soon)
		panic("unreachable")
	}
}

// ClosedSoon drains ch until it is closed,
// failing t if that does not happen within a generous deadline.
func ClosedSoon[T any](t *testing.T, ch <-chan T) {
	t.Helper()

	deadline := time.After(soon)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("channel not closed within %s", soon)
		}
	}
}

// NotSending asserts that ch has no value ready and is not closed.
func NotSending[T any](t *testing.T, ch <-chan T) {
	t.Helper()

	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatal("expected channel to be open and quiet, but it was closed")
		}
		t.Fatalf("expected no value to be ready, but received %v", v)
	default:
	}
}
