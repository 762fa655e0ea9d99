package ripple

import (
	"sync"

	"github.com/samber/lo"

	"github.com/ripple-engine/ripple/rinterop"
)

// Subject is both an [Observer] and a [Stream].
//
// Values passed to [Subject.Next] fan out synchronously to every
// current subscriber, and the most recent value is cached and replayed
// to late subscribers.
// A Subject decouples one physical event source from many listeners.
//
// A zero Subject is not usable; construct with [NewSubject].
type Subject[T any] struct {
	mu sync.Mutex

	// Membership, not ordering.
	// Delivery order across subscribers is unspecified.
	subscribers map[*subjectEntry[T]]struct{}

	hasValue bool
	last     T
}

// subjectEntry gives each subscription its own identity,
// so the same observer may subscribe more than once.
type subjectEntry[T any] struct {
	obs Observer[T]
}

// NewSubject returns an empty Subject: no subscribers, no cached value.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{
		subscribers: make(map[*subjectEntry[T]]struct{}),
	}
}

// Next caches v as the Subject's most recent value and synchronously
// delivers it to every subscriber present when the call began,
// before Next returns.
//
// The subscriber set is snapshotted at the start of the call:
// subscriptions added or removed by an observer's callback take effect
// on future emissions, never on the in-flight pass.
//
// A panicking observer aborts delivery to the observers remaining in
// the pass; the panic propagates to the caller of Next.
func (s *Subject[T]) Next(v T) {
	s.mu.Lock()
	s.hasValue = true
	s.last = v
	targets := lo.Keys(s.subscribers)
	s.mu.Unlock()

	// Delivery happens outside the lock so that observer callbacks
	// may re-enter Subscribe and Unsubscribe without deadlocking.
	for _, e := range targets {
		e.obs.Next(v)
	}
}

// Subscribe adds obs to the subscriber set.
//
// If the Subject has emitted at least once, the most recent value is
// delivered to obs before Subscribe returns.
// The observer is registered before that replay call, so a panicking
// replay leaves obs subscribed; registration and initial replay are
// not atomic.
func (s *Subject[T]) Subscribe(obs Observer[T]) *Subscription {
	e := &subjectEntry[T]{obs: obs}

	s.mu.Lock()
	s.subscribers[e] = struct{}{}
	replay, last := s.hasValue, s.last
	s.mu.Unlock()

	if replay {
		obs.Next(last)
	}

	return NewSubscription(func() {
		s.mu.Lock()
		delete(s.subscribers, e)
		s.mu.Unlock()
	})
}

// SubscribeFunc subscribes f as a bare callback.
// It is shorthand for Subscribe([NextFunc]).
func (s *Subject[T]) SubscribeFunc(f func(T)) *Subscription {
	return s.Subscribe(NextFunc[T](f))
}

// AsStream returns s itself.
func (s *Subject[T]) AsStream() Stream[T] { return s }

// InteropTag reports the process-wide tag under which s
// identifies itself as a conforming event source.
func (s *Subject[T]) InteropTag() string { return rinterop.Tag() }
