package store

import (
	"fmt"
	"sort"

	"chrono/internal/zone"
)

// MemorySource serves zone rules from an in-memory map.
type MemorySource struct {
	version string
	zones   map[string]*zone.Rules
}

// NewMemorySource copies the given zones into a source.
func NewMemorySource(dataVersion string, zones map[string]*zone.Rules) *MemorySource {
	copied := make(map[string]*zone.Rules, len(zones))
	for id, rules := range zones {
		copied[id] = rules
	}
	return &MemorySource{version: dataVersion, zones: copied}
}

// DataVersion implements Source.
func (s *MemorySource) DataVersion() (string, error) {
	return s.version, nil
}

// ZoneIDs implements Source.
func (s *MemorySource) ZoneIDs() ([]string, error) {
	ids := make([]string, 0, len(s.zones))
	for id := range s.zones {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Load implements Source.
func (s *MemorySource) Load(id string) (*zone.Rules, error) {
	rules, found := s.zones[id]
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, id)
	}
	return rules, nil
}

var _ Source = (*MemorySource)(nil)
