package rhub

import (
	"io"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/ripple-engine/ripple"
)

// Hub is a concurrent registry of named subjects.
type Hub[T any] struct {
	log *slog.Logger

	topics *xsync.MapOf[string, *ripple.Subject[T]]
}

// HubConfig is the configuration for [NewHub].
type HubConfig struct {
	// Logger for subscription lifecycle events.
	// If nil, logging is discarded.
	Logger *slog.Logger
}

// NewHub returns a Hub with no topics.
// Topics are created on first use, by publisher and subscriber alike.
func NewHub[T any](cfg HubConfig) *Hub[T] {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Hub[T]{
		log:    log,
		topics: xsync.NewMapOf[string, *ripple.Subject[T]](),
	}
}

// Topic returns the subject backing the given topic,
// creating it if it does not exist yet.
//
// The subject is shared: subscribing to it directly is equivalent to
// [Hub.Subscribe] with the same topic, minus the lifecycle logging.
func (h *Hub[T]) Topic(topic string) *ripple.Subject[T] {
	s, _ := h.topics.LoadOrCompute(topic, func() *ripple.Subject[T] {
		return ripple.NewSubject[T]()
	})
	return s
}

// Publish delivers v to every current subscriber of topic
// before returning.
func (h *Hub[T]) Publish(topic string, v T) {
	h.Topic(topic).Next(v)
}

// Subscribe attaches obs to topic.
//
// If the topic has seen at least one publish, its most recent value is
// delivered to obs before Subscribe returns.
func (h *Hub[T]) Subscribe(topic string, obs ripple.Observer[T]) *ripple.Subscription {
	id := uuid.Must(uuid.NewV4())
	log := h.log.With("topic", topic, "sub", id.String())

	inner := h.Topic(topic).Subscribe(obs)
	log.Debug("subscriber attached")

	return ripple.NewSubscription(func() {
		inner.Unsubscribe()
		log.Debug("subscriber detached")
	})
}

// SubscribeFunc subscribes f as a bare callback.
// It is shorthand for Subscribe with a [ripple.NextFunc].
func (h *Hub[T]) SubscribeFunc(topic string, f func(T)) *ripple.Subscription {
	return h.Subscribe(topic, ripple.NextFunc[T](f))
}
