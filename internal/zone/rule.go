package zone

import (
	"errors"
	"fmt"

	"chrono/internal/civil"
)

// ErrInvalidRule reports a projection rule with out-of-range fields.
var ErrInvalidRule = errors.New("zone: invalid transition rule")

// TimeDefinition states which clock a rule's time-of-day is read on.
type TimeDefinition uint8

const (
	// TimeUTC reads the time-of-day as UTC.
	TimeUTC TimeDefinition = iota
	// TimeWall reads the time-of-day on the local clock before the change.
	TimeWall
	// TimeStandard reads the time-of-day at the standard offset, ignoring
	// any daylight saving in force.
	TimeStandard
)

func (d TimeDefinition) String() string {
	switch d {
	case TimeUTC:
		return "utc"
	case TimeWall:
		return "wall"
	case TimeStandard:
		return "standard"
	}
	return fmt.Sprintf("TimeDefinition(%d)", uint8(d))
}

// TransitionRule describes how to materialize one offset change in any
// given year, in the "last Sunday of October at 02:00" style. A negative
// DayOfMonth counts back from the end of the month (-1 is the last day);
// when DayOfWeek is non-zero the date snaps to that weekday, forward for
// positive DayOfMonth and backward for negative. EndOfDay moves a
// midnight time to the start of the following day.
type TransitionRule struct {
	Month          int
	DayOfMonth     int
	DayOfWeek      int
	TimeOfDay      civil.Time
	EndOfDay       bool
	Definition     TimeDefinition
	StandardOffset civil.Offset
	OffsetBefore   civil.Offset
	OffsetAfter    civil.Offset
}

// Validate checks the rule's fields without materializing a transition.
func (r TransitionRule) Validate() error {
	if r.Month < 1 || r.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidRule, r.Month)
	}
	if r.DayOfMonth == 0 || r.DayOfMonth < -28 || r.DayOfMonth > 31 {
		return fmt.Errorf("%w: day-of-month %d", ErrInvalidRule, r.DayOfMonth)
	}
	if r.DayOfWeek < 0 || r.DayOfWeek > 7 {
		return fmt.Errorf("%w: day-of-week %d", ErrInvalidRule, r.DayOfWeek)
	}
	if r.TimeOfDay.Nano() != 0 {
		return fmt.Errorf("%w: sub-second time-of-day %s", ErrInvalidRule, r.TimeOfDay)
	}
	if r.EndOfDay && r.TimeOfDay != civil.Midnight {
		return fmt.Errorf("%w: end-of-day with time %s", ErrInvalidRule, r.TimeOfDay)
	}
	if r.Definition > TimeStandard {
		return fmt.Errorf("%w: time definition %d", ErrInvalidRule, uint8(r.Definition))
	}
	if r.OffsetBefore == r.OffsetAfter {
		return fmt.Errorf("%w: offsets are both %s", ErrInvalidRule, r.OffsetBefore)
	}
	return nil
}

// TransitionIn materializes the rule's transition for one year.
func (r TransitionRule) TransitionIn(year int) (Transition, error) {
	if err := r.Validate(); err != nil {
		return Transition{}, err
	}
	day := r.DayOfMonth
	if day < 0 {
		day = civil.DaysInMonth(year, r.Month) + 1 + day
	}
	date, err := civil.NewDate(year, r.Month, day)
	if err != nil {
		return Transition{}, err
	}
	if r.DayOfWeek != 0 {
		if date, err = snapToWeekday(date, r.DayOfWeek, r.DayOfMonth < 0); err != nil {
			return Transition{}, err
		}
	}
	if r.EndOfDay {
		if date, err = date.PlusDays(1); err != nil {
			return Transition{}, err
		}
	}
	local := civil.NewDateTime(date, r.TimeOfDay)
	switch r.Definition {
	case TimeUTC:
		local, err = local.PlusSeconds(int64(r.OffsetBefore.TotalSeconds()))
	case TimeStandard:
		local, err = local.PlusSeconds(int64(r.OffsetBefore.TotalSeconds() - r.StandardOffset.TotalSeconds()))
	}
	if err != nil {
		return Transition{}, err
	}
	return NewTransition(local, r.OffsetBefore, r.OffsetAfter)
}

// snapToWeekday moves date to the given ISO weekday, backward when
// fromMonthEnd is set and forward otherwise. A date already on the
// weekday is kept.
func snapToWeekday(date civil.Date, weekday int, fromMonthEnd bool) (civil.Date, error) {
	if fromMonthEnd {
		back := (date.Weekday() - weekday + 7) % 7
		return date.PlusDays(int64(-back))
	}
	forward := (weekday - date.Weekday() + 7) % 7
	return date.PlusDays(int64(forward))
}
