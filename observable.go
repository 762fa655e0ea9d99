package ripple

import "github.com/ripple-engine/ripple/rinterop"

// DisconnectFunc detaches a previously attached observer
// from the event source that a [ConnectFunc] governs.
type DisconnectFunc func()

// ConnectFunc attaches an observer to an event source
// and returns the function that detaches it again.
type ConnectFunc[T any] func(Observer[T]) DisconnectFunc

// Observable is an immutable wrapper around a connect function.
//
// The Observable itself is stateless: every call to [Observable.Subscribe]
// independently invokes the connect function, and the returned
// [Subscription] privately owns the resulting disconnect function.
type Observable[T any] struct {
	connect ConnectFunc[T]
}

// New returns an Observable wrapping connect.
//
// The connect function is stored, not invoked; activation is lazy
// and happens once per subscriber.
// No validation is performed on connect.
func New[T any](connect ConnectFunc[T]) *Observable[T] {
	return &Observable[T]{connect: connect}
}

// Subscribe invokes the connect function exactly once with obs
// and returns the handle that detaches obs again.
//
// If the connect function panics, the panic propagates to the caller
// and no Subscription is constructed.
func (o *Observable[T]) Subscribe(obs Observer[T]) *Subscription {
	disconnect := o.connect(obs)
	return NewSubscription(disconnect)
}

// SubscribeFunc subscribes f as a bare callback.
// It is shorthand for Subscribe([NextFunc]).
func (o *Observable[T]) SubscribeFunc(f func(T)) *Subscription {
	return o.Subscribe(NextFunc[T](f))
}

// AsStream returns o itself.
func (o *Observable[T]) AsStream() Stream[T] { return o }

// InteropTag reports the process-wide tag under which o
// identifies itself as a conforming event source.
func (o *Observable[T]) InteropTag() string { return rinterop.Tag() }
