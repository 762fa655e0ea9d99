// Package ripple contains a minimal push-based event-stream primitive.
//
// An [Observable] wraps a connect function and lazily activates it
// once per subscriber.
// A [Subject] sits between one producer and many consumers:
// it is an [Observer] whose values fan out to every current subscriber,
// and it replays its most recent value to late subscribers.
//
// There is no completion or error signal anywhere in the contract.
// A stream lives until every subscriber has called
// [Subscription.Unsubscribe]; termination and failure propagation
// belong to layers built on top of this one.
package ripple
