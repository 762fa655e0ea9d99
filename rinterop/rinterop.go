// Package rinterop resolves the process-wide tag under which conforming
// stream types identify themselves to foreign consumers.
//
// The tag is resolved once, lazily, on first access, and never changes
// for the life of the process.
package rinterop

import (
	"os"
	"sync"
)

// FallbackTag is the fixed tag used when the hosting process
// has not registered one.
const FallbackTag = "ripple.observable.v1"

// EnvKey is the shared registry key consulted on first resolution.
// Publishing a tag there lets independently loaded copies of this
// library agree on a single tag.
const EnvKey = "RIPPLE_INTEROP_TAG"

var tag = sync.OnceValue(resolve)

func resolve() string {
	if t := os.Getenv(EnvKey); t != "" {
		return t
	}
	return FallbackTag
}

// Tag returns the resolved interop tag.
func Tag() string { return tag() }
