package zone

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"chrono/internal/civil"
)

// ErrInvalidRules reports construction input that cannot form a coherent
// offset history.
var ErrInvalidRules = errors.New("zone: invalid rules")

// maxProjectionRules bounds the per-year rule set; real zones use two.
const maxProjectionRules = 16

// Rule projections are cached per year only below this; later years are
// recomputed on demand.
const lastCachedYear = 2100

// StandardChange records a change of the standard (non-daylight) offset.
type StandardChange struct {
	EpochSecond int64
	Offset      civil.Offset
}

// Rules is the complete offset history of one zone: the wall and standard
// offsets in force before any change, the historical transitions, and the
// projection rules applied beyond the cataloged horizon. Values are
// immutable after construction; the projection cache is internally
// locked, so a single *Rules may be shared across goroutines.
type Rules struct {
	initialStandard civil.Offset
	initialWall     civil.Offset
	standardChanges []StandardChange
	transitions     []Transition
	rules           []TransitionRule

	mu        sync.Mutex
	yearCache map[int][]Transition
}

// NewRules validates and assembles a zone history. Transitions must be
// strictly increasing in time and chain offsets (each OffsetBefore equals
// the previous OffsetAfter, the first equals initialWall). Projection
// rules require at least one historical transition to anchor the horizon.
func NewRules(initialStandard, initialWall civil.Offset, standardChanges []StandardChange, transitions []Transition, rules []TransitionRule) (*Rules, error) {
	for i, sc := range standardChanges {
		if i > 0 && sc.EpochSecond <= standardChanges[i-1].EpochSecond {
			return nil, fmt.Errorf("%w: standard changes not increasing at index %d", ErrInvalidRules, i)
		}
	}
	wall := initialWall
	for i, t := range transitions {
		if i > 0 && t.EpochSecond() <= transitions[i-1].EpochSecond() {
			return nil, fmt.Errorf("%w: transitions not increasing at index %d", ErrInvalidRules, i)
		}
		if t.OffsetBefore() != wall {
			return nil, fmt.Errorf("%w: transition %d starts at %s, previous offset is %s", ErrInvalidRules, i, t.OffsetBefore(), wall)
		}
		wall = t.OffsetAfter()
	}
	if len(rules) > maxProjectionRules {
		return nil, fmt.Errorf("%w: %d projection rules", ErrInvalidRules, len(rules))
	}
	if len(rules) > 0 && len(transitions) == 0 {
		return nil, fmt.Errorf("%w: projection rules without a historical transition", ErrInvalidRules)
	}
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return &Rules{
		initialStandard: initialStandard,
		initialWall:     initialWall,
		standardChanges: append([]StandardChange(nil), standardChanges...),
		transitions:     append([]Transition(nil), transitions...),
		rules:           append([]TransitionRule(nil), rules...),
	}, nil
}

// FixedRules returns the history of a zone whose offset never changes.
func FixedRules(offset civil.Offset) *Rules {
	return &Rules{initialStandard: offset, initialWall: offset}
}

// IsFixed reports whether the offset never changes.
func (z *Rules) IsFixed() bool {
	return len(z.transitions) == 0 && len(z.rules) == 0
}

// InitialStandardOffset returns the standard offset before any change.
func (z *Rules) InitialStandardOffset() civil.Offset { return z.initialStandard }

// InitialOffset returns the wall offset before any transition.
func (z *Rules) InitialOffset() civil.Offset { return z.initialWall }

// StandardChanges returns a copy of the standard-offset history.
func (z *Rules) StandardChanges() []StandardChange {
	return append([]StandardChange(nil), z.standardChanges...)
}

// Transitions returns a copy of the historical transitions.
func (z *Rules) Transitions() []Transition {
	return append([]Transition(nil), z.transitions...)
}

// ProjectionRules returns a copy of the per-year projection rules.
func (z *Rules) ProjectionRules() []TransitionRule {
	return append([]TransitionRule(nil), z.rules...)
}

// OffsetAt returns the offset in force at an instant. Beyond the last
// historical transition the projection rules for the bracketing year are
// materialized.
func (z *Rules) OffsetAt(epochSecond int64) (civil.Offset, error) {
	if len(z.rules) > 0 && epochSecond >= z.transitions[len(z.transitions)-1].EpochSecond() {
		last := z.transitions[len(z.transitions)-1]
		year, err := z.yearOf(epochSecond, last.OffsetAfter())
		if err != nil {
			return civil.Offset{}, err
		}
		projected, err := z.transitionsForYear(year)
		if err != nil {
			return civil.Offset{}, err
		}
		for _, t := range projected {
			if epochSecond < t.EpochSecond() {
				return t.OffsetBefore(), nil
			}
		}
		if len(projected) > 0 {
			return projected[len(projected)-1].OffsetAfter(), nil
		}
		return last.OffsetAfter(), nil
	}
	idx := sort.Search(len(z.transitions), func(i int) bool {
		return z.transitions[i].EpochSecond() > epochSecond
	})
	if idx == 0 {
		return z.initialWall, nil
	}
	return z.transitions[idx-1].OffsetAfter(), nil
}

// StandardOffsetAt returns the standard offset in force at an instant.
// Projection rules never alter the standard offset.
func (z *Rules) StandardOffsetAt(epochSecond int64) civil.Offset {
	idx := sort.Search(len(z.standardChanges), func(i int) bool {
		return z.standardChanges[i].EpochSecond > epochSecond
	})
	if idx == 0 {
		return z.initialStandard
	}
	return z.standardChanges[idx-1].Offset
}

// NextTransition returns the first transition strictly after the instant,
// materializing projected years as needed. ok is false when the zone has
// no further transitions.
func (z *Rules) NextTransition(epochSecond int64) (t Transition, ok bool, err error) {
	idx := sort.Search(len(z.transitions), func(i int) bool {
		return z.transitions[i].EpochSecond() > epochSecond
	})
	if idx < len(z.transitions) {
		return z.transitions[idx], true, nil
	}
	if len(z.rules) == 0 {
		return Transition{}, false, nil
	}
	last := z.transitions[len(z.transitions)-1]
	year, err := z.yearOf(epochSecond, last.OffsetAfter())
	if err != nil {
		return Transition{}, false, err
	}
	// A non-empty rule set yields transitions every year, so the instant's
	// own year or the one after must contain the answer.
	for y := year; y <= year+1; y++ {
		projected, err := z.transitionsForYear(y)
		if err != nil {
			return Transition{}, false, err
		}
		for _, t := range projected {
			if t.EpochSecond() > epochSecond {
				return t, true, nil
			}
		}
	}
	return Transition{}, false, nil
}

// PreviousTransition returns the latest transition strictly before the
// instant. ok is false when the instant predates every transition.
func (z *Rules) PreviousTransition(epochSecond int64) (t Transition, ok bool, err error) {
	if len(z.rules) > 0 {
		last := z.transitions[len(z.transitions)-1]
		if epochSecond > last.EpochSecond() {
			year, err := z.yearOf(epochSecond, last.OffsetAfter())
			if err != nil {
				return Transition{}, false, err
			}
			for y := year; y >= year-1; y-- {
				projected, err := z.transitionsForYear(y)
				if err != nil {
					return Transition{}, false, err
				}
				for i := len(projected) - 1; i >= 0; i-- {
					if pt := projected[i]; pt.EpochSecond() < epochSecond && pt.EpochSecond() > last.EpochSecond() {
						return pt, true, nil
					}
				}
			}
			return last, true, nil
		}
	}
	idx := sort.Search(len(z.transitions), func(i int) bool {
		return z.transitions[i].EpochSecond() >= epochSecond
	})
	if idx == 0 {
		return Transition{}, false, nil
	}
	return z.transitions[idx-1], true, nil
}

// yearOf converts an instant to its calendar year at the given offset.
func (z *Rules) yearOf(epochSecond int64, offset civil.Offset) (int, error) {
	dt, err := civil.DateTimeOfEpochSecond(epochSecond, 0, offset)
	if err != nil {
		return 0, err
	}
	return dt.Date().Year(), nil
}

// transitionsForYear materializes every projection rule for a year, in
// rule order, caching years below the cache horizon.
func (z *Rules) transitionsForYear(year int) ([]Transition, error) {
	z.mu.Lock()
	defer z.mu.Unlock()
	if cached, found := z.yearCache[year]; found {
		return cached, nil
	}
	projected := make([]Transition, 0, len(z.rules))
	for _, r := range z.rules {
		t, err := r.TransitionIn(year)
		if err != nil {
			return nil, err
		}
		projected = append(projected, t)
	}
	if year < lastCachedYear {
		if z.yearCache == nil {
			z.yearCache = make(map[int][]Transition)
		}
		z.yearCache[year] = projected
	}
	return projected, nil
}
