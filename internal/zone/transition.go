package zone

import (
	"errors"
	"fmt"

	"chrono/internal/civil"
)

// ErrInvalidTransition reports a transition whose offsets or local
// date-time cannot describe a real offset change.
var ErrInvalidTransition = errors.New("zone: invalid transition")

// Transition is an instant at which a zone's UTC offset changes. It is
// immutable; the local date-times on both sides of the change and the
// epoch second are computed once at construction.
type Transition struct {
	localBefore civil.DateTime
	localAfter  civil.DateTime
	before      civil.Offset
	after       civil.Offset
	epochSecond int64
}

// NewTransition builds a transition occurring at the given local
// date-time as read on a clock still showing the pre-transition offset.
func NewTransition(local civil.DateTime, before, after civil.Offset) (Transition, error) {
	if before == after {
		return Transition{}, fmt.Errorf("%w: offsets are both %s", ErrInvalidTransition, before)
	}
	localAfter, err := local.PlusSeconds(int64(after.TotalSeconds() - before.TotalSeconds()))
	if err != nil {
		return Transition{}, fmt.Errorf("%w: %s out of range: %v", ErrInvalidTransition, local, err)
	}
	return Transition{
		localBefore: local,
		localAfter:  localAfter,
		before:      before,
		after:       after,
		epochSecond: local.EpochSecond(before),
	}, nil
}

// EpochSecond returns the instant of the change.
func (t Transition) EpochSecond() int64 { return t.epochSecond }

// DateTimeBefore returns the local date-time at the instant of the change
// in the pre-transition offset.
func (t Transition) DateTimeBefore() civil.DateTime { return t.localBefore }

// DateTimeAfter returns the local date-time at the instant of the change
// in the post-transition offset.
func (t Transition) DateTimeAfter() civil.DateTime { return t.localAfter }

// OffsetBefore returns the offset in force up to the transition instant.
func (t Transition) OffsetBefore() civil.Offset { return t.before }

// OffsetAfter returns the offset in force from the transition instant.
func (t Transition) OffsetAfter() civil.Offset { return t.after }

// DurationSeconds returns the signed size of the change: positive for a
// gap, negative for an overlap.
func (t Transition) DurationSeconds() int {
	return t.after.TotalSeconds() - t.before.TotalSeconds()
}

// IsGap reports whether local times are skipped by this transition.
func (t Transition) IsGap() bool { return t.DurationSeconds() > 0 }

// IsOverlap reports whether local times are repeated by this transition.
func (t Transition) IsOverlap() bool { return t.DurationSeconds() < 0 }

// localMin returns the inclusive start of the affected local window.
func (t Transition) localMin() civil.DateTime {
	if t.IsGap() {
		return t.localBefore
	}
	return t.localAfter
}

// localMax returns the exclusive end of the affected local window.
func (t Transition) localMax() civil.DateTime {
	if t.IsGap() {
		return t.localAfter
	}
	return t.localBefore
}

// containsLocal reports whether dt falls inside the skipped or repeated
// local window.
func (t Transition) containsLocal(dt civil.DateTime) bool {
	return !dt.Before(t.localMin()) && dt.Before(t.localMax())
}

func (t Transition) String() string {
	kind := "Overlap"
	if t.IsGap() {
		kind = "Gap"
	}
	return fmt.Sprintf("Transition[%s at %s%s to %s]", kind, t.localBefore, t.before, t.after)
}
