package chart

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// ErrUnknownBackend is returned by NewBackend for a name no package has
// registered.
var ErrUnknownBackend = errors.New("chart: unknown backend")

// BackendFactory returns a fresh Backend. Each Playback needs its own
// instance, so the registry stores factories rather than backends.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes a backend available to NewBackend under name.
//
// Output packages call it from init, so importing one for its side effect
// is enough to select it by name:
//
//	import _ "github.com/gogpu/chart/backend/svg"
//
//	b, err := chart.NewBackend("svg")
//
// Register panics on a nil factory or a name that is already taken.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("chart: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("chart: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister drops name from the registry. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend returns a new instance of the backend registered as name.
// The error for an unknown name wraps ErrUnknownBackend; the usual cause
// is a missing blank import of the output package.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	return factory(), nil
}

// MustBackend is NewBackend for callers that import the output package
// themselves. It panics on an unknown name.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends lists the registered output names in sorted order, e.g.
// ["raster" "svg"] when both bundled packages are imported.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Sorted(maps.Keys(backends))
}

// IsRegistered reports whether an output package has registered name.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
