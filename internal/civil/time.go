package civil

import "fmt"

// Nanosecond unit conversions shared across the package.
const (
	NanosPerSecond = int64(1_000_000_000)
	NanosPerMinute = 60 * NanosPerSecond
	NanosPerHour   = 60 * NanosPerMinute
	NanosPerDay    = 24 * NanosPerHour

	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour

	MinutesPerDay = 24 * 60
	HoursPerDay   = 24
)

// Time is a wall-clock time-of-day with nanosecond precision. The zero
// value is midnight.
type Time struct {
	nanoOfDay int64
}

// Midnight is the start of the day, 00:00.
var Midnight = Time{}

// NewTime returns the time for the given hour, minute, second and
// nanosecond fields.
func NewTime(hour, minute, second, nano int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, rangeErr("hour", int64(hour), 0, 23)
	}
	if minute < 0 || minute > 59 {
		return Time{}, rangeErr("minute", int64(minute), 0, 59)
	}
	if second < 0 || second > 59 {
		return Time{}, rangeErr("second", int64(second), 0, 59)
	}
	if nano < 0 || int64(nano) >= NanosPerSecond {
		return Time{}, rangeErr("nanosecond", int64(nano), 0, NanosPerSecond-1)
	}
	nod := int64(hour)*NanosPerHour + int64(minute)*NanosPerMinute + int64(second)*NanosPerSecond + int64(nano)
	return Time{nanoOfDay: nod}, nil
}

// MustTime is NewTime panicking on error, for statically known times.
func MustTime(hour, minute, second, nano int) Time {
	t, err := NewTime(hour, minute, second, nano)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfNano returns the time for a nanosecond-of-day count.
func TimeOfNano(nanoOfDay int64) (Time, error) {
	if nanoOfDay < 0 || nanoOfDay >= NanosPerDay {
		return Time{}, rangeErr("nano-of-day", nanoOfDay, 0, NanosPerDay-1)
	}
	return Time{nanoOfDay: nanoOfDay}, nil
}

// TimeOfSecondOfDay returns the time for a whole second-of-day count.
func TimeOfSecondOfDay(secondOfDay int) (Time, error) {
	if secondOfDay < 0 || secondOfDay >= SecondsPerDay {
		return Time{}, rangeErr("second-of-day", int64(secondOfDay), 0, SecondsPerDay-1)
	}
	return Time{nanoOfDay: int64(secondOfDay) * NanosPerSecond}, nil
}

// NanoOfDay returns the canonical nanosecond-of-day count.
func (t Time) NanoOfDay() int64 { return t.nanoOfDay }

// SecondOfDay returns the whole seconds elapsed since midnight.
func (t Time) SecondOfDay() int { return int(t.nanoOfDay / NanosPerSecond) }

// Hour returns the hour-of-day, 0 to 23.
func (t Time) Hour() int { return int(t.nanoOfDay / NanosPerHour) }

// Minute returns the minute-of-hour, 0 to 59.
func (t Time) Minute() int { return int(t.nanoOfDay/NanosPerMinute) % 60 }

// Second returns the second-of-minute, 0 to 59.
func (t Time) Second() int { return int(t.nanoOfDay/NanosPerSecond) % 60 }

// Nano returns the nanosecond-of-second, 0 to 999,999,999.
func (t Time) Nano() int { return int(t.nanoOfDay % NanosPerSecond) }

// Compare orders two times within the day.
func (t Time) Compare(other Time) int {
	switch {
	case t.nanoOfDay < other.nanoOfDay:
		return -1
	case t.nanoOfDay > other.nanoOfDay:
		return 1
	}
	return 0
}

// Before reports whether t is earlier in the day than other.
func (t Time) Before(other Time) bool { return t.nanoOfDay < other.nanoOfDay }

// After reports whether t is later in the day than other.
func (t Time) After(other Time) bool { return t.nanoOfDay > other.nanoOfDay }

// String renders the time as ISO-8601 HH:mm, extended with seconds and the
// shortest fraction needed to carry the full value.
func (t Time) String() string {
	hour, minute, second, nano := t.Hour(), t.Minute(), t.Second(), t.Nano()
	switch {
	case nano != 0:
		frac := fmt.Sprintf("%09d", nano)
		for len(frac) > 1 && frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}
		return fmt.Sprintf("%02d:%02d:%02d.%s", hour, minute, second, frac)
	case second != 0:
		return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
	default:
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}
}
