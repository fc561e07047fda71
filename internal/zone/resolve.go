package zone

import (
	"errors"
	"fmt"
	"sort"

	"chrono/internal/civil"
)

// Policy selects how Resolve treats local date-times inside a gap or
// overlap window.
type Policy uint8

const (
	// PolicyEarlier shifts a gapped time forward by the gap length and
	// keeps the earlier offset of an overlap. This is the default.
	PolicyEarlier Policy = iota
	// PolicyLater shifts a gapped time forward, like PolicyEarlier, but
	// takes the later offset of an overlap.
	PolicyLater
	// PolicyStrict rejects both gaps and overlaps with an error.
	PolicyStrict
)

func (p Policy) String() string {
	switch p {
	case PolicyEarlier:
		return "earlier"
	case PolicyLater:
		return "later"
	case PolicyStrict:
		return "strict"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// ParsePolicy maps a policy name to its value.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "earlier":
		return PolicyEarlier, nil
	case "later":
		return PolicyLater, nil
	case "strict":
		return PolicyStrict, nil
	}
	return 0, fmt.Errorf("zone: unknown resolution policy %q", name)
}

var (
	// ErrSkippedTime is returned under PolicyStrict for a local time a
	// forward transition jumped over.
	ErrSkippedTime = errors.New("zone: local time falls in a gap")
	// ErrAmbiguousTime is returned under PolicyStrict for a local time a
	// backward transition repeated.
	ErrAmbiguousTime = errors.New("zone: local time is ambiguous")
)

// Resolve maps a local date-time to an offset date-time under the given
// policy. A gap shifts the local time forward by the gap length; an
// overlap keeps the policy's side of the transition.
func (z *Rules) Resolve(dt civil.DateTime, policy Policy) (civil.OffsetDateTime, error) {
	offset, trans, err := z.localLookup(dt)
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	if trans == nil {
		return civil.NewOffsetDateTime(dt, offset), nil
	}
	if trans.IsGap() {
		if policy == PolicyStrict {
			return civil.OffsetDateTime{}, fmt.Errorf("%w: %s in %s", ErrSkippedTime, dt, trans)
		}
		shifted, err := dt.PlusSeconds(int64(trans.DurationSeconds()))
		if err != nil {
			return civil.OffsetDateTime{}, err
		}
		return civil.NewOffsetDateTime(shifted, trans.OffsetAfter()), nil
	}
	switch policy {
	case PolicyLater:
		return civil.NewOffsetDateTime(dt, trans.OffsetAfter()), nil
	case PolicyStrict:
		return civil.OffsetDateTime{}, fmt.Errorf("%w: %s in %s", ErrAmbiguousTime, dt, trans)
	default:
		return civil.NewOffsetDateTime(dt, trans.OffsetBefore()), nil
	}
}

// ValidOffsets returns every offset valid for the local date-time: one
// for a normal time, two for an overlap, none for a gap.
func (z *Rules) ValidOffsets(dt civil.DateTime) ([]civil.Offset, error) {
	offset, trans, err := z.localLookup(dt)
	if err != nil {
		return nil, err
	}
	if trans == nil {
		return []civil.Offset{offset}, nil
	}
	if trans.IsGap() {
		return nil, nil
	}
	return []civil.Offset{trans.OffsetBefore(), trans.OffsetAfter()}, nil
}

// TransitionAt returns the transition whose skipped or repeated local
// window contains the date-time, if any.
func (z *Rules) TransitionAt(dt civil.DateTime) (Transition, bool, error) {
	_, trans, err := z.localLookup(dt)
	if err != nil || trans == nil {
		return Transition{}, false, err
	}
	return *trans, true, nil
}

// localLookup classifies a local date-time: a single valid offset, or the
// transition whose window contains it.
func (z *Rules) localLookup(dt civil.DateTime) (civil.Offset, *Transition, error) {
	if z.IsFixed() {
		return z.initialWall, nil, nil
	}
	idx := sort.Search(len(z.transitions), func(i int) bool {
		return dt.Before(z.transitions[i].localMax())
	})
	if idx < len(z.transitions) {
		t := z.transitions[idx]
		if dt.Before(t.localMin()) {
			return t.OffsetBefore(), nil, nil
		}
		return civil.Offset{}, &t, nil
	}
	lastOffset := z.initialWall
	if len(z.transitions) > 0 {
		lastOffset = z.transitions[len(z.transitions)-1].OffsetAfter()
	}
	if len(z.rules) == 0 {
		return lastOffset, nil, nil
	}
	projected, err := z.transitionsForYear(dt.Date().Year())
	if err != nil {
		return civil.Offset{}, nil, err
	}
	for _, t := range projected {
		if dt.Before(t.localMin()) {
			return t.OffsetBefore(), nil, nil
		}
		if t.containsLocal(dt) {
			t := t
			return civil.Offset{}, &t, nil
		}
	}
	if len(projected) > 0 {
		return projected[len(projected)-1].OffsetAfter(), nil, nil
	}
	return lastOffset, nil, nil
}
