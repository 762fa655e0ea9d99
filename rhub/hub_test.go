package rhub_test

import (
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/ripple-engine/ripple/rhub"
	"github.com/stretchr/testify/require"
)

func TestHub_Publish_reachesTopicSubscribers(t *testing.T) {
	t.Parallel()

	h := rhub.NewHub[string](rhub.HubConfig{Logger: slogt.New(t)})

	var a, b []string
	h.SubscribeFunc("greetings", func(v string) {
		a = append(a, v)
	})
	h.SubscribeFunc("greetings", func(v string) {
		b = append(b, v)
	})

	h.Publish("greetings", "hello")

	require.Equal(t, []string{"hello"}, a)
	require.Equal(t, []string{"hello"}, b)
}

func TestHub_Publish_topicsAreIsolated(t *testing.T) {
	t.Parallel()

	h := rhub.NewHub[int](rhub.HubConfig{Logger: slogt.New(t)})

	var odds, evens []int
	h.SubscribeFunc("odd", func(v int) {
		odds = append(odds, v)
	})
	h.SubscribeFunc("even", func(v int) {
		evens = append(evens, v)
	})

	h.Publish("odd", 1)
	h.Publish("even", 2)
	h.Publish("odd", 3)

	require.Equal(t, []int{1, 3}, odds)
	require.Equal(t, []int{2}, evens)
}

func TestHub_Subscribe_lateSubscriberSeesMostRecentValue(t *testing.T) {
	t.Parallel()

	h := rhub.NewHub[int](rhub.HubConfig{Logger: slogt.New(t)})

	h.Publish("counter", 1)
	h.Publish("counter", 2)

	var got []int
	h.SubscribeFunc("counter", func(v int) {
		got = append(got, v)
	})

	require.Equal(t, []int{2}, got)
}

func TestHub_Subscribe_freshTopicDeliversNothing(t *testing.T) {
	t.Parallel()

	h := rhub.NewHub[int](rhub.HubConfig{Logger: slogt.New(t)})

	var got []int
	h.SubscribeFunc("untouched", func(v int) {
		got = append(got, v)
	})

	require.Empty(t, got)
}

func TestHub_Unsubscribe_detachesFromTopic(t *testing.T) {
	t.Parallel()

	h := rhub.NewHub[int](rhub.HubConfig{Logger: slogt.New(t)})

	var got []int
	sub := h.SubscribeFunc("counter", func(v int) {
		got = append(got, v)
	})

	h.Publish("counter", 1)
	sub.Unsubscribe()
	sub.Unsubscribe() // Repeated calls are no-ops.
	h.Publish("counter", 2)

	require.Equal(t, []int{1}, got)
}

func TestHub_Topic_sharesSubjectWithHubOperations(t *testing.T) {
	t.Parallel()

	h := rhub.NewHub[int](rhub.HubConfig{Logger: slogt.New(t)})

	var got []int
	h.Topic("direct").SubscribeFunc(func(v int) {
		got = append(got, v)
	})

	h.Publish("direct", 5)
	require.Equal(t, []int{5}, got)
}

func TestHub_NewHub_nilLoggerIsAccepted(t *testing.T) {
	t.Parallel()

	h := rhub.NewHub[int](rhub.HubConfig{})

	var got []int
	sub := h.SubscribeFunc("quiet", func(v int) {
		got = append(got, v)
	})

	h.Publish("quiet", 1)
	sub.Unsubscribe()

	require.Equal(t, []int{1}, got)
}
