package zone_test

import (
	"errors"
	"testing"

	"chrono/internal/zone"
)

func TestResolveNormal(t *testing.T) {
	rules := testRules(t)
	dt := mustDateTime(t, 2018, 7, 1, 12, 0)
	resolved, err := rules.Resolve(dt, zone.PolicyEarlier)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.DateTime() != dt || resolved.Offset() != cest {
		t.Fatalf("Resolve = %s, want %sT%s", resolved, dt, cest)
	}

	offsets, err := rules.ValidOffsets(dt)
	if err != nil {
		t.Fatalf("ValidOffsets: %v", err)
	}
	if len(offsets) != 1 || offsets[0] != cest {
		t.Fatalf("ValidOffsets = %v", offsets)
	}
}

func TestResolveGap(t *testing.T) {
	rules := testRules(t)
	dt := mustDateTime(t, 2018, 3, 25, 2, 30)

	for _, policy := range []zone.Policy{zone.PolicyEarlier, zone.PolicyLater} {
		resolved, err := rules.Resolve(dt, policy)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", policy, err)
		}
		want := mustDateTime(t, 2018, 3, 25, 3, 30)
		if resolved.DateTime() != want || resolved.Offset() != cest {
			t.Fatalf("Resolve(%s) = %s, want %s at %s", policy, resolved, want, cest)
		}
	}

	if _, err := rules.Resolve(dt, zone.PolicyStrict); !errors.Is(err, zone.ErrSkippedTime) {
		t.Fatalf("strict gap error = %v", err)
	}

	offsets, err := rules.ValidOffsets(dt)
	if err != nil {
		t.Fatalf("ValidOffsets: %v", err)
	}
	if len(offsets) != 0 {
		t.Fatalf("ValidOffsets in gap = %v", offsets)
	}

	trans, ok, err := rules.TransitionAt(dt)
	if err != nil || !ok {
		t.Fatalf("TransitionAt: ok=%v err=%v", ok, err)
	}
	if !trans.IsGap() || trans.EpochSecond() != 1521939600 {
		t.Fatalf("TransitionAt = %s", trans)
	}
}

func TestResolveOverlap(t *testing.T) {
	rules := testRules(t)
	dt := mustDateTime(t, 2018, 10, 28, 2, 30)

	earlier, err := rules.Resolve(dt, zone.PolicyEarlier)
	if err != nil {
		t.Fatalf("Resolve(earlier): %v", err)
	}
	if earlier.DateTime() != dt || earlier.Offset() != cest {
		t.Fatalf("Resolve(earlier) = %s, want %s at %s", earlier, dt, cest)
	}

	later, err := rules.Resolve(dt, zone.PolicyLater)
	if err != nil {
		t.Fatalf("Resolve(later): %v", err)
	}
	if later.DateTime() != dt || later.Offset() != cet {
		t.Fatalf("Resolve(later) = %s, want %s at %s", later, dt, cet)
	}

	// The two readings are one hour apart as instants.
	if later.EpochSecond()-earlier.EpochSecond() != 3600 {
		t.Fatalf("instants %d and %d not an hour apart", earlier.EpochSecond(), later.EpochSecond())
	}

	if _, err := rules.Resolve(dt, zone.PolicyStrict); !errors.Is(err, zone.ErrAmbiguousTime) {
		t.Fatalf("strict overlap error = %v", err)
	}

	offsets, err := rules.ValidOffsets(dt)
	if err != nil {
		t.Fatalf("ValidOffsets: %v", err)
	}
	if len(offsets) != 2 || offsets[0] != cest || offsets[1] != cet {
		t.Fatalf("ValidOffsets in overlap = %v", offsets)
	}
}

func TestResolveProjectedGap(t *testing.T) {
	rules := testRules(t)
	dt := mustDateTime(t, 2019, 3, 31, 2, 30)
	resolved, err := rules.Resolve(dt, zone.PolicyEarlier)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := mustDateTime(t, 2019, 3, 31, 3, 30)
	if resolved.DateTime() != want || resolved.Offset() != cest {
		t.Fatalf("Resolve = %s, want %s at %s", resolved, want, cest)
	}
	if got := resolved.EpochSecond(); got != 1553995800 {
		t.Fatalf("EpochSecond = %d, want 1553995800", got)
	}
}

func TestResolveWindowEdges(t *testing.T) {
	rules := testRules(t)

	// The window start is inside the transition, the end is not.
	start := mustDateTime(t, 2018, 3, 25, 2, 0)
	if _, ok, err := rules.TransitionAt(start); err != nil || !ok {
		t.Fatalf("gap start not in window: ok=%v err=%v", ok, err)
	}
	end := mustDateTime(t, 2018, 3, 25, 3, 0)
	if _, ok, err := rules.TransitionAt(end); err != nil || ok {
		t.Fatalf("gap end in window: ok=%v err=%v", ok, err)
	}
}

func TestParsePolicy(t *testing.T) {
	for name, want := range map[string]zone.Policy{
		"earlier": zone.PolicyEarlier,
		"later":   zone.PolicyLater,
		"strict":  zone.PolicyStrict,
	} {
		got, err := zone.ParsePolicy(name)
		if err != nil {
			t.Fatalf("ParsePolicy(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("ParsePolicy(%q) = %v, want %v", name, got, want)
		}
	}
	if _, err := zone.ParsePolicy("nearest"); err == nil {
		t.Fatal("ParsePolicy accepted an unknown name")
	}
}
