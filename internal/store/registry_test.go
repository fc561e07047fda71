package store_test

import (
	"errors"
	"sync"
	"testing"

	"chrono/internal/civil"
	"chrono/internal/store"
	"chrono/internal/zone"
)

func fixtureZones(t *testing.T) map[string]*zone.Rules {
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
	return map[string]*zone.Rules{"Europe/Paris": paris}
}

func TestRegistryInitOnce(t *testing.T) {
	reg := store.NewRegistry()
	src := store.NewMemorySource("2025a", fixtureZones(t))
	if err := reg.Init(src); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := reg.Init(src); !errors.Is(err, store.ErrAlreadyInitialized) {
		t.Fatalf("second Init error = %v, want ErrAlreadyInitialized", err)
	}
	if !reg.Initialized() {
		t.Fatal("Initialized = false after Init")
	}
}

func TestRegistryLookup(t *testing.T) {
	reg := store.NewRegistry()
	if err := reg.Init(store.NewMemorySource("2025a", fixtureZones(t))); err != nil {
		t.Fatalf("Init: %v", err)
	}

	rules, err := reg.Lookup("Europe/Paris")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	offset, err := rules.OffsetAt(1530403200) // 2018-07-01T00:00Z
	if err != nil {
		t.Fatalf("OffsetAt: %v", err)
	}
	if offset.TotalSeconds() != 7200 {
		t.Fatalf("midsummer offset = %s", offset)
	}

	// The cache hands back the same rules value.
	again, err := reg.Lookup("Europe/Paris")
	if err != nil {
		t.Fatalf("second Lookup: %v", err)
	}
	if again != rules {
		t.Fatal("cached lookup returned a different value")
	}

	if _, err := reg.Lookup("Mars/Olympus"); !errors.Is(err, store.ErrUnknownZone) {
		t.Fatalf("unknown zone error = %v, want ErrUnknownZone", err)
	}
}

func TestRegistryFixedOffsetsWithoutInit(t *testing.T) {
	reg := store.NewRegistry()
	for id, seconds := range map[string]int{
		"Z":         0,
		"+02:00":    7200,
		"-05:30":    -19800,
		"+01:02:03": 3723,
	} {
		rules, err := reg.Lookup(id)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", id, err)
		}
		if !rules.IsFixed() {
			t.Fatalf("Lookup(%q) not fixed", id)
		}
		offset, err := rules.OffsetAt(0)
		if err != nil {
			t.Fatalf("OffsetAt: %v", err)
		}
		if offset.TotalSeconds() != seconds {
			t.Fatalf("Lookup(%q) offset = %d, want %d", id, offset.TotalSeconds(), seconds)
		}
	}

	if _, err := reg.Lookup("Europe/Paris"); !errors.Is(err, store.ErrNotInitialized) {
		t.Fatalf("region lookup before Init error = %v, want ErrNotInitialized", err)
	}
}

func TestRegistryConcurrentInit(t *testing.T) {
	reg := store.NewRegistry()
	src := store.NewMemorySource("2025a", fixtureZones(t))

	const goroutines = 16
	errs := make([]error, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = reg.Init(src)
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, store.ErrAlreadyInitialized):
		default:
			t.Fatalf("unexpected Init error: %v", err)
		}
	}
	if won != 1 {
		t.Fatalf("%d Init calls succeeded, want exactly 1", won)
	}
}

func TestRegistryMetadata(t *testing.T) {
	reg := store.NewRegistry()
	if _, err := reg.DataVersion(); !errors.Is(err, store.ErrNotInitialized) {
		t.Fatalf("DataVersion before Init error = %v", err)
	}
	if err := reg.Init(store.NewMemorySource("2025a", fixtureZones(t))); err != nil {
		t.Fatalf("Init: %v", err)
	}
	version, err := reg.DataVersion()
	if err != nil {
		t.Fatalf("DataVersion: %v", err)
	}
	if version != "2025a" {
		t.Fatalf("DataVersion = %q", version)
	}
	ids, err := reg.ZoneIDs()
	if err != nil {
		t.Fatalf("ZoneIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != "Europe/Paris" {
		t.Fatalf("ZoneIDs = %v", ids)
	}
}
