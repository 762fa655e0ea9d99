// Package rhub contains a topic-keyed registry of subjects.
//
// A [Hub] lets many producers and consumers rendezvous on topic names
// instead of sharing references to individual subjects.
// Each topic behaves like its backing [ripple.Subject]: publishes fan
// out to the topic's current subscribers, and a late subscriber
// observes the topic's most recent value.
package rhub
