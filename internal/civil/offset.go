package civil

import "fmt"

// MaxOffsetSeconds bounds a UTC offset to eighteen hours either side of UTC.
const MaxOffsetSeconds = 18 * SecondsPerHour

// Offset is a fixed offset from UTC with second granularity. The zero value
// is UTC itself.
type Offset struct {
	seconds int32
}

// UTC is the zero offset.
var UTC = Offset{}

// NewOffset returns the offset for hour, minute and second components. The
// non-zero components must share one sign.
func NewOffset(hours, minutes, seconds int) (Offset, error) {
	if hours < -18 || hours > 18 {
		return Offset{}, rangeErr("offset hours", int64(hours), -18, 18)
	}
	if minutes < -59 || minutes > 59 {
		return Offset{}, rangeErr("offset minutes", int64(minutes), -59, 59)
	}
	if seconds < -59 || seconds > 59 {
		return Offset{}, rangeErr("offset seconds", int64(seconds), -59, 59)
	}
	if (hours > 0 && (minutes < 0 || seconds < 0)) ||
		(hours < 0 && (minutes > 0 || seconds > 0)) ||
		(minutes > 0 && seconds < 0) || (minutes < 0 && seconds > 0) {
		return Offset{}, fmt.Errorf("%w: offset components differ in sign", ErrRange)
	}
	return OffsetOfSeconds(hours*SecondsPerHour + minutes*SecondsPerMinute + seconds)
}

// OffsetOfSeconds returns the offset for a total second count within
// plus or minus eighteen hours.
func OffsetOfSeconds(totalSeconds int) (Offset, error) {
	if totalSeconds < -MaxOffsetSeconds || totalSeconds > MaxOffsetSeconds {
		return Offset{}, rangeErr("offset seconds", int64(totalSeconds), -MaxOffsetSeconds, MaxOffsetSeconds)
	}
	return Offset{seconds: int32(totalSeconds)}, nil
}

// MustOffset is OffsetOfSeconds panicking on error, for statically known offsets.
func MustOffset(totalSeconds int) Offset {
	o, err := OffsetOfSeconds(totalSeconds)
	if err != nil {
		panic(err)
	}
	return o
}

// TotalSeconds returns the offset in seconds, negative west of Greenwich.
func (o Offset) TotalSeconds() int { return int(o.seconds) }

// Compare orders offsets by total seconds.
func (o Offset) Compare(other Offset) int {
	switch {
	case o.seconds < other.seconds:
		return -1
	case o.seconds > other.seconds:
		return 1
	}
	return 0
}

// String renders the offset as Z, +HH:MM, or +HH:MM:SS.
func (o Offset) String() string {
	if o.seconds == 0 {
		return "Z"
	}
	total := int(o.seconds)
	sign := "+"
	if total < 0 {
		sign = "-"
		total = -total
	}
	hours := total / SecondsPerHour
	minutes := (total / SecondsPerMinute) % 60
	seconds := total % 60
	if seconds != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, minutes, seconds)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
}
