// Package rchan bridges Go channels and ripple streams.
//
// [Run] turns a receive channel into a [ripple.Subject], so one
// channel-shaped producer can feed many subscribers.
// [ToChan] goes the other way, exposing any [ripple.Stream] as a
// receive channel.
package rchan
