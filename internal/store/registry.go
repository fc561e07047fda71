package store

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"chrono/internal/civil"
	"chrono/internal/zone"
)

var (
	// ErrNotInitialized is returned by lookups before a source is installed.
	ErrNotInitialized = errors.New("store: registry not initialized")
	// ErrAlreadyInitialized is returned by every Init after the first.
	ErrAlreadyInitialized = errors.New("store: registry already initialized")
	// ErrUnknownZone is returned for an identifier the source does not carry.
	ErrUnknownZone = errors.New("store: unknown zone")
)

// Source supplies zone rules to a Registry.
type Source interface {
	// DataVersion identifies the zone data release, e.g. "2025a".
	DataVersion() (string, error)
	// ZoneIDs lists every available zone identifier in sorted order.
	ZoneIDs() ([]string, error)
	// Load returns the rules for one zone, or an error wrapping
	// ErrUnknownZone.
	Load(id string) (*zone.Rules, error)
}

// Registry is a one-shot table of zone rules. The zero value is ready to
// use; install a source with Init before looking up region identifiers.
type Registry struct {
	source atomic.Pointer[sourceBox]

	mu    sync.Mutex
	cache map[string]*zone.Rules
}

// sourceBox wraps the interface so the install is a single pointer CAS.
type sourceBox struct {
	src Source
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Init installs the registry's source. The first caller wins; any later
// call fails with ErrAlreadyInitialized regardless of the source offered.
func (r *Registry) Init(src Source) error {
	if src == nil {
		return errors.New("store: nil source")
	}
	if !r.source.CompareAndSwap(nil, &sourceBox{src: src}) {
		return ErrAlreadyInitialized
	}
	return nil
}

// Initialized reports whether a source has been installed.
func (r *Registry) Initialized() bool {
	return r.source.Load() != nil
}

// Lookup resolves a zone identifier to its rules. Fixed-offset spellings
// ("Z", "+02:00", "-05:30:30") resolve without a source; anything else
// requires Init and hits the per-zone cache before the source.
func (r *Registry) Lookup(id string) (*zone.Rules, error) {
	if offset, err := civil.ParseOffset(id); err == nil {
		return zone.FixedRules(offset), nil
	}
	box := r.source.Load()
	if box == nil {
		return nil, fmt.Errorf("%w: cannot resolve %q", ErrNotInitialized, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if rules, found := r.cache[id]; found {
		return rules, nil
	}
	rules, err := box.src.Load(id)
	if err != nil {
		return nil, err
	}
	if r.cache == nil {
		r.cache = make(map[string]*zone.Rules)
	}
	r.cache[id] = rules
	return rules, nil
}

// DataVersion reports the installed source's data release.
func (r *Registry) DataVersion() (string, error) {
	box := r.source.Load()
	if box == nil {
		return "", ErrNotInitialized
	}
	return box.src.DataVersion()
}

// ZoneIDs lists the identifiers the installed source carries.
func (r *Registry) ZoneIDs() ([]string, error) {
	box := r.source.Load()
	if box == nil {
		return nil, ErrNotInitialized
	}
	return box.src.ZoneIDs()
}
