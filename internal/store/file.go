package store

import (
	"fmt"
	"os"
	"sync"

	"chrono/internal/tzdata"
	"chrono/internal/zone"
)

// FileSource reads a compiled zone archive from disk. The archive is
// loaded and checksum-verified once, on first use.
type FileSource struct {
	path string

	once    sync.Once
	archive *tzdata.Archive
	err     error
}

// NewFileSource returns a source backed by the archive at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) load() (*tzdata.Archive, error) {
	s.once.Do(func() {
		f, err := os.Open(s.path)
		if err != nil {
			s.err = err
			return
		}
		defer f.Close()
		s.archive, s.err = tzdata.ReadArchive(f)
	})
	return s.archive, s.err
}

// DataVersion implements Source.
func (s *FileSource) DataVersion() (string, error) {
	archive, err := s.load()
	if err != nil {
		return "", err
	}
	return archive.DataVersion, nil
}

// ZoneIDs implements Source.
func (s *FileSource) ZoneIDs() ([]string, error) {
	archive, err := s.load()
	if err != nil {
		return nil, err
	}
	return archive.ZoneIDs(), nil
}

// Load implements Source.
func (s *FileSource) Load(id string) (*zone.Rules, error) {
	archive, err := s.load()
	if err != nil {
		return nil, err
	}
	rules, found := archive.Zones[id]
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, id)
	}
	return rules, nil
}

var _ Source = (*FileSource)(nil)
