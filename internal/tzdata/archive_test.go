package tzdata_test

import (
	"bytes"
	"errors"
	"testing"

	"chrono/internal/civil"
	"chrono/internal/tzdata"
	"chrono/internal/zone"
)

func archiveFixture(t *testing.T) map[string]*zone.Rules {
	t.Helper()
	cet := civil.MustOffset(3600)
	cest := civil.MustOffset(7200)
	spring, err := zone.NewTransition(civil.NewDateTime(civil.MustDate(2018, 3, 25), civil.MustTime(2, 0, 0, 0)), cet, cest)
	if err != nil {
		t.Fatalf("NewTransition: %v", err)
	}
	fall, err := zone.NewTransition(civil.NewDateTime(civil.MustDate(2018, 10, 28), civil.MustTime(3, 0, 0, 0)), cest, cet)
	if err != nil {
		t.Fatalf("NewTransition: %v", err)
	}
	paris, err := zone.NewRules(cet, cet, nil, []zone.Transition{spring, fall}, nil)
	if err != nil {
		t.Fatalf("NewRules: %v", err)
	}
	return map[string]*zone.Rules{
		"Europe/Paris": paris,
		"UTC":          zone.FixedRules(civil.UTC),
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	zones := archiveFixture(t)
	var buf bytes.Buffer
	if err := tzdata.WriteArchive(&buf, "2025a", zones); err != nil {
		t.Fatalf("WriteArchive: %v", err)
	}

	archive, err := tzdata.ReadArchive(&buf)
	if err != nil {
		t.Fatalf("ReadArchive: %v", err)
	}
	if archive.DataVersion != "2025a" {
		t.Fatalf("DataVersion = %q", archive.DataVersion)
	}
	if archive.FormatVersion != tzdata.FormatVersion {
		t.Fatalf("FormatVersion = %d", archive.FormatVersion)
	}
	ids := archive.ZoneIDs()
	if len(ids) != 2 || ids[0] != "Europe/Paris" || ids[1] != "UTC" {
		t.Fatalf("ZoneIDs = %v", ids)
	}

	paris := archive.Zones["Europe/Paris"]
	offset, err := paris.OffsetAt(1530403200) // 2018-07-01T00:00Z
	if err != nil {
		t.Fatalf("OffsetAt: %v", err)
	}
	if offset.TotalSeconds() != 7200 {
		t.Fatalf("midsummer offset = %s", offset)
	}
	if !archive.Zones["UTC"].IsFixed() {
		t.Fatal("UTC zone not fixed")
	}
}

func TestArchiveChecksumCorruption(t *testing.T) {
	var buf bytes.Buffer
	if err := tzdata.WriteArchive(&buf, "2025a", archiveFixture(t)); err != nil {
		t.Fatalf("WriteArchive: %v", err)
	}
	data := buf.Bytes()
	data[len(data)/2] ^= 0x40
	if _, err := tzdata.DecodeArchive(data); !errors.Is(err, tzdata.ErrChecksum) {
		t.Fatalf("corrupted archive error = %v, want ErrChecksum", err)
	}
}

func TestArchiveTruncated(t *testing.T) {
	var buf bytes.Buffer
	if err := tzdata.WriteArchive(&buf, "2025a", archiveFixture(t)); err != nil {
		t.Fatalf("WriteArchive: %v", err)
	}
	if _, err := tzdata.DecodeArchive(buf.Bytes()[:10]); !errors.Is(err, tzdata.ErrDecode) {
		t.Fatalf("truncated archive error = %v, want ErrDecode", err)
	}
}

func TestArchiveBadMagic(t *testing.T) {
	data := append([]byte("XZDB"), make([]byte, 64)...)
	_, err := tzdata.DecodeArchive(data)
	if !errors.Is(err, tzdata.ErrDecode) && !errors.Is(err, tzdata.ErrChecksum) {
		t.Fatalf("bad magic error = %v", err)
	}
}
