package civil

import (
	"chrono/internal/util/overflow"
)

// DateTime pairs a Date with a wall-clock Time. It carries no offset or
// zone information.
type DateTime struct {
	date Date
	time Time
}

// NewDateTime combines a date and a time-of-day.
func NewDateTime(date Date, time Time) DateTime {
	return DateTime{date: date, time: time}
}

// Date returns the calendar date component.
func (dt DateTime) Date() Date { return dt.date }

// Time returns the time-of-day component.
func (dt DateTime) Time() Time { return dt.time }

// Compare orders two date-times on the local time-line.
func (dt DateTime) Compare(other DateTime) int {
	if cmp := dt.date.Compare(other.date); cmp != 0 {
		return cmp
	}
	return dt.time.Compare(other.time)
}

// Before reports whether dt is earlier than other.
func (dt DateTime) Before(other DateTime) bool { return dt.Compare(other) < 0 }

// After reports whether dt is later than other.
func (dt DateTime) After(other DateTime) bool { return dt.Compare(other) > 0 }

// PlusDays returns the date-time the given number of days later, keeping
// the time-of-day.
func (dt DateTime) PlusDays(days int64) (DateTime, error) {
	newDate, err := dt.date.PlusDays(days)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: newDate, time: dt.time}, nil
}

// PlusHours returns the date-time the given number of hours later, rolling
// the date when the time-of-day wraps.
func (dt DateTime) PlusHours(hours int64) (DateTime, error) {
	return dt.shift(hours, 0, 0, 0, 1)
}

// PlusMinutes returns the date-time the given number of minutes later.
func (dt DateTime) PlusMinutes(minutes int64) (DateTime, error) {
	return dt.shift(0, minutes, 0, 0, 1)
}

// PlusSeconds returns the date-time the given number of seconds later.
func (dt DateTime) PlusSeconds(seconds int64) (DateTime, error) {
	return dt.shift(0, 0, seconds, 0, 1)
}

// PlusNanos returns the date-time the given number of nanoseconds later.
func (dt DateTime) PlusNanos(nanos int64) (DateTime, error) {
	return dt.shift(0, 0, 0, nanos, 1)
}

// MinusHours returns the date-time the given number of hours earlier.
func (dt DateTime) MinusHours(hours int64) (DateTime, error) {
	return dt.shift(hours, 0, 0, 0, -1)
}

// MinusMinutes returns the date-time the given number of minutes earlier.
func (dt DateTime) MinusMinutes(minutes int64) (DateTime, error) {
	return dt.shift(0, minutes, 0, 0, -1)
}

// MinusSeconds returns the date-time the given number of seconds earlier.
func (dt DateTime) MinusSeconds(seconds int64) (DateTime, error) {
	return dt.shift(0, 0, seconds, 0, -1)
}

// MinusNanos returns the date-time the given number of nanoseconds earlier.
func (dt DateTime) MinusNanos(nanos int64) (DateTime, error) {
	return dt.shift(0, 0, 0, nanos, -1)
}

// shift applies heterogeneous time amounts in a single pass. Whole days are
// split off each unit first so no intermediate sum can exceed int64; the
// remainders are combined with the current nanosecond-of-day using
// floor-division and floor-modulo, which makes negative amounts wrap the
// date backwards correctly.
func (dt DateTime) shift(hours, minutes, seconds, nanos int64, sign int64) (DateTime, error) {
	if hours|minutes|seconds|nanos == 0 {
		return dt, nil
	}
	totDays := nanos/NanosPerDay +
		seconds/int64(SecondsPerDay) +
		minutes/int64(MinutesPerDay) +
		hours/int64(HoursPerDay)
	totDays *= sign
	totNanos := nanos%NanosPerDay +
		(seconds%int64(SecondsPerDay))*NanosPerSecond +
		(minutes%int64(MinutesPerDay))*NanosPerMinute +
		(hours%int64(HoursPerDay))*NanosPerHour
	curNoD := dt.time.nanoOfDay
	totNanos = totNanos*sign + curNoD
	dayCarry, err := overflow.Add(totDays, overflow.FloorDiv(totNanos, NanosPerDay))
	if err != nil {
		return DateTime{}, err
	}
	newNoD := overflow.FloorMod(totNanos, NanosPerDay)
	newDate, err := dt.date.PlusDays(dayCarry)
	if err != nil {
		return DateTime{}, err
	}
	newTime := dt.time
	if newNoD != curNoD {
		newTime = Time{nanoOfDay: newNoD}
	}
	return DateTime{date: newDate, time: newTime}, nil
}

// EpochSecond converts the local date-time to an instant using the given
// fixed offset, returning seconds since 1970-01-01T00:00:00Z. The
// nanosecond component is truncated.
func (dt DateTime) EpochSecond(offset Offset) int64 {
	return dt.date.EpochDay()*int64(SecondsPerDay) +
		int64(dt.time.SecondOfDay()) -
		int64(offset.TotalSeconds())
}

// DateTimeOfEpochSecond converts an instant to the local date-time observed
// at the given fixed offset.
func DateTimeOfEpochSecond(epochSecond int64, nano int, offset Offset) (DateTime, error) {
	if nano < 0 || int64(nano) >= NanosPerSecond {
		return DateTime{}, rangeErr("nanosecond", int64(nano), 0, NanosPerSecond-1)
	}
	local, err := overflow.Add(epochSecond, int64(offset.TotalSeconds()))
	if err != nil {
		return DateTime{}, err
	}
	epochDay := overflow.FloorDiv(local, int64(SecondsPerDay))
	secOfDay := overflow.FloorMod(local, int64(SecondsPerDay))
	date, err := FromEpochDay(epochDay)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{
		date: date,
		time: Time{nanoOfDay: secOfDay*NanosPerSecond + int64(nano)},
	}, nil
}

// String renders the date-time as yyyy-MM-ddTHH:mm[:ss[.n]].
func (dt DateTime) String() string {
	return dt.date.String() + "T" + dt.time.String()
}

// OffsetDateTime fixes a DateTime to a specific UTC offset. The offset is a
// plain value, never derived from zone rules at this layer.
type OffsetDateTime struct {
	dateTime DateTime
	offset   Offset
}

// NewOffsetDateTime combines a local date-time with a fixed offset.
func NewOffsetDateTime(dateTime DateTime, offset Offset) OffsetDateTime {
	return OffsetDateTime{dateTime: dateTime, offset: offset}
}

// DateTime returns the local date-time component.
func (odt OffsetDateTime) DateTime() DateTime { return odt.dateTime }

// Offset returns the fixed offset component.
func (odt OffsetDateTime) Offset() Offset { return odt.offset }

// EpochSecond returns the instant as seconds since 1970-01-01T00:00:00Z.
func (odt OffsetDateTime) EpochSecond() int64 {
	return odt.dateTime.EpochSecond(odt.offset)
}

// String renders the value as the local form suffixed with the offset.
func (odt OffsetDateTime) String() string {
	return odt.dateTime.String() + odt.offset.String()
}
