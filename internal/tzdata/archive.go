package tzdata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"

	"golang.org/x/crypto/blake2b"

	"chrono/internal/zone"
)

// ErrChecksum reports an archive whose checksum trailer does not match
// its content.
var ErrChecksum = errors.New("tzdata: checksum mismatch")

var archiveMagic = [4]byte{'T', 'Z', 'D', 'B'}

// FormatVersion is the archive layout version written by this package.
const FormatVersion = 1

const checksumSize = blake2b.Size256

// Archive is a decoded zone-rules archive.
type Archive struct {
	FormatVersion byte
	DataVersion   string
	Zones         map[string]*zone.Rules
}

// ZoneIDs returns the archive's zone identifiers in sorted order.
func (a *Archive) ZoneIDs() []string {
	ids := make([]string, 0, len(a.Zones))
	for id := range a.Zones {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// WriteArchive writes an archive holding the given zones, sorted by
// identifier, with a BLAKE2b-256 trailer over the header and zone table.
func WriteArchive(w io.Writer, dataVersion string, zones map[string]*zone.Rules) error {
	if len(dataVersion) > 255 {
		return fmt.Errorf("tzdata: data version %q too long", dataVersion)
	}
	if len(zones) > 0xFFFF {
		return fmt.Errorf("tzdata: %d zones exceed the table limit", len(zones))
	}

	var buf bytes.Buffer
	buf.Write(archiveMagic[:])
	buf.WriteByte(FormatVersion)
	buf.WriteByte(byte(len(dataVersion)))
	buf.WriteString(dataVersion)

	ids := make([]string, 0, len(zones))
	for id := range zones {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var table [2]byte
	binary.BigEndian.PutUint16(table[:], uint16(len(ids)))
	buf.Write(table[:])
	for _, id := range ids {
		if len(id) == 0 || len(id) > 255 {
			return fmt.Errorf("tzdata: zone id %q out of range", id)
		}
		buf.WriteByte(byte(len(id)))
		buf.WriteString(id)
		record, err := EncodeRules(nil, zones[id])
		if err != nil {
			return fmt.Errorf("zone %q: %w", id, err)
		}
		var size [4]byte
		binary.BigEndian.PutUint32(size[:], uint32(len(record)))
		buf.Write(size[:])
		buf.Write(record)
	}

	sum := blake2b.Sum256(buf.Bytes())
	buf.Write(sum[:])
	_, err := w.Write(buf.Bytes())
	return err
}

// ReadArchive reads and verifies a complete archive.
func ReadArchive(r io.Reader) (*Archive, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeArchive(data)
}

// DecodeArchive decodes an archive from memory, verifying the magic,
// format version, and checksum trailer before the zone table.
func DecodeArchive(data []byte) (*Archive, error) {
	if len(data) < len(archiveMagic)+checksumSize {
		return nil, fmt.Errorf("%w: archive too short", ErrDecode)
	}
	payload, trailer := data[:len(data)-checksumSize], data[len(data)-checksumSize:]
	sum := blake2b.Sum256(payload)
	if !bytes.Equal(sum[:], trailer) {
		return nil, ErrChecksum
	}

	r := &reader{data: payload}
	magic, err := r.take(len(archiveMagic))
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(magic, archiveMagic[:]) {
		return nil, fmt.Errorf("%w: bad magic %q", ErrDecode, magic)
	}
	format, err := r.byte()
	if err != nil {
		return nil, err
	}
	if format != FormatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrDecode, format)
	}
	versionLen, err := r.byte()
	if err != nil {
		return nil, err
	}
	version, err := r.take(int(versionLen))
	if err != nil {
		return nil, err
	}
	zoneCount, err := r.uint16()
	if err != nil {
		return nil, err
	}

	archive := &Archive{
		FormatVersion: format,
		DataVersion:   string(version),
		Zones:         make(map[string]*zone.Rules, zoneCount),
	}
	for i := 0; i < int(zoneCount); i++ {
		idLen, err := r.byte()
		if err != nil {
			return nil, err
		}
		id, err := r.take(int(idLen))
		if err != nil {
			return nil, err
		}
		recordLen, err := r.take(4)
		if err != nil {
			return nil, err
		}
		record, err := r.take(int(binary.BigEndian.Uint32(recordLen)))
		if err != nil {
			return nil, err
		}
		rules, err := DecodeRules(record)
		if err != nil {
			return nil, fmt.Errorf("zone %q: %w", id, err)
		}
		archive.Zones[string(id)] = rules
	}
	if r.pos != len(payload) {
		return nil, fmt.Errorf("%w: %d trailing bytes after zone table", ErrDecode, len(payload)-r.pos)
	}
	return archive, nil
}
