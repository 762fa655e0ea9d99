package ripple

import "sync"

// Subscription is the disconnect handle returned by a Stream's Subscribe.
// The caller that received it owns it exclusively.
type Subscription struct {
	once       sync.Once
	disconnect func()
}

// NewSubscription returns a Subscription that runs disconnect
// on its first Unsubscribe call.
//
// It is exported so that bridges layered over a Stream can compose
// their own teardown with the underlying handle's.
func NewSubscription(disconnect func()) *Subscription {
	return &Subscription{disconnect: disconnect}
}

// Unsubscribe runs the disconnect function.
// Only the first call has any effect; later calls are no-ops.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		if s.disconnect != nil {
			s.disconnect()
		}
	})
}
