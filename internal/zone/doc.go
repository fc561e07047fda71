// Package zone models the UTC-offset history of a time zone and resolves
// both instants and local date-times against it.
//
// # Overview
//
// A zone's behaviour is captured by Rules: an initial offset, a strictly
// increasing list of historical Transitions, and an optional set of
// TransitionRules that project future transitions year by year once the
// historical list runs out. Fixed-offset zones use FixedRules and never
// transition.
//
// # Resolution
//
// Instant resolution (OffsetAt) is a binary search over the historical
// transitions, falling back to rule projection beyond the cataloged
// horizon. Local resolution (Resolve, ValidOffsets) has three outcomes:
//   - normal: exactly one offset is valid.
//   - gap: the local time was skipped by a forward transition; under
//     the default policy it is shifted forward by the gap length and
//     stamped with the post-transition offset.
//   - overlap: the local time occurred twice; the default policy keeps
//     the earlier (pre-transition) offset.
//
// PolicyLater flips the overlap choice and PolicyStrict rejects both gap
// and overlap with an error.
//
// # Errors
//
// ErrInvalidTransition and ErrInvalidRules report malformed construction
// input. ErrSkippedTime and ErrAmbiguousTime are returned by Resolve under
// PolicyStrict.
package zone
