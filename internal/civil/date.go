package civil

import (
	"fmt"

	"chrono/internal/util/overflow"
)

// Supported year range of the proleptic Gregorian calendar.
const (
	MinYear = -999_999_999
	MaxYear = 999_999_999
)

const (
	daysPerCycle = 146_097 // days in a 400-year Gregorian cycle

	// Days from year zero (0000-01-01) to the 1970-01-01 epoch:
	// five 400-year cycles back to year 0, minus the missing days of
	// 1970..2000 (thirty 365-day years and seven leap days).
	days0000To1970 = daysPerCycle*5 - (30*365 + 7)
)

// monthStart holds the zero-based day-of-year on which each month starts in
// a non-leap year, indexed by month-1.
var monthStart = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// Date is a proleptic-Gregorian calendar date. The zero value is not a
// valid date; construct through NewDate or FromEpochDay.
type Date struct {
	year  int32
	month int8
	day   int8
}

// NewDate returns the date for the given year, month (1-12) and day-of-month.
// The day must exist in the given month, including leap-year February.
func NewDate(year, month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, rangeErr("year", int64(year), MinYear, MaxYear)
	}
	if month < 1 || month > 12 {
		return Date{}, rangeErr("month", int64(month), 1, 12)
	}
	if day < 1 || day > 31 {
		return Date{}, rangeErr("day-of-month", int64(day), 1, 31)
	}
	if day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: day %d does not exist in %d-%02d", ErrInvalidDate, day, year, month)
	}
	return Date{year: int32(year), month: int8(month), day: int8(day)}, nil
}

// MustDate is NewDate panicking on error, for statically known dates.
func MustDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

var (
	minEpochDay = MustDate(MinYear, 1, 1).EpochDay()
	maxEpochDay = MustDate(MaxYear, 12, 31).EpochDay()
)

// FromEpochDay returns the date for a signed count of days from 1970-01-01.
func FromEpochDay(epochDay int64) (Date, error) {
	if epochDay < minEpochDay || epochDay > maxEpochDay {
		return Date{}, rangeErr("epoch-day", epochDay, minEpochDay, maxEpochDay)
	}
	zeroDay := epochDay + days0000To1970
	// Shift to a March-based year so the leap day falls at the end of
	// each four-year cycle.
	zeroDay -= 60
	var adjust int64
	if zeroDay < 0 {
		adjustCycles := (zeroDay+1)/daysPerCycle - 1
		adjust = adjustCycles * 400
		zeroDay -= adjustCycles * daysPerCycle
	}
	yearEst := (400*zeroDay + 591) / daysPerCycle
	doyEst := zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	if doyEst < 0 {
		yearEst--
		doyEst = zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	}
	yearEst += adjust
	marchDoy0 := int(doyEst)

	marchMonth0 := (marchDoy0*5 + 2) / 153
	month := (marchMonth0+2)%12 + 1
	dom := marchDoy0 - (marchMonth0*306+5)/10 + 1
	yearEst += int64(marchMonth0 / 10)

	return Date{year: int32(yearEst), month: int8(month), day: int8(dom)}, nil
}

// EpochDay returns the signed count of days from 1970-01-01 to this date.
func (d Date) EpochDay() int64 {
	y := int64(d.year)
	m := int64(d.month)
	total := 365 * y
	if y >= 0 {
		total += (y+3)/4 - (y+99)/100 + (y+399)/400
	} else {
		total -= y/-4 - y/-100 + y/-400
	}
	total += (367*m - 362) / 12
	total += int64(d.day) - 1
	if m > 2 {
		total--
		if !d.IsLeapYear() {
			total--
		}
	}
	return total - days0000To1970
}

// Year returns the proleptic year.
func (d Date) Year() int { return int(d.year) }

// Month returns the month-of-year, 1 to 12.
func (d Date) Month() int { return int(d.month) }

// Day returns the day-of-month, 1 to 31.
func (d Date) Day() int { return int(d.day) }

// IsLeapYear reports whether the year is a leap year under the proleptic
// Gregorian rule: divisible by 4, except centuries not divisible by 400.
func (d Date) IsLeapYear() bool { return isLeapYear(int64(d.year)) }

func isLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given year.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if isLeapYear(int64(year)) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// DayOfYear returns the day-of-year, 1 to 365 or 366 in a leap year.
func (d Date) DayOfYear() int {
	doy := monthStart[d.month-1] + int(d.day)
	if d.month > 2 && d.IsLeapYear() {
		doy++
	}
	return doy
}

// Weekday returns the ISO day-of-week, 1 for Monday through 7 for Sunday.
func (d Date) Weekday() int {
	return int(overflow.FloorMod(d.EpochDay()+3, 7)) + 1
}

// PlusDays returns the date the given number of days after this one,
// negative for earlier dates.
func (d Date) PlusDays(days int64) (Date, error) {
	if days == 0 {
		return d, nil
	}
	ed, err := overflow.Add(d.EpochDay(), days)
	if err != nil {
		return Date{}, err
	}
	return FromEpochDay(ed)
}

// PlusMonths returns the date the given number of months after this one.
// A day-of-month that does not exist in the resulting month is clamped to
// the month's last day.
func (d Date) PlusMonths(months int64) (Date, error) {
	if months == 0 {
		return d, nil
	}
	monthCount := int64(d.year)*12 + int64(d.month) - 1
	total, err := overflow.Add(monthCount, months)
	if err != nil {
		return Date{}, err
	}
	newYear := overflow.FloorDiv(total, 12)
	newMonth := int(overflow.FloorMod(total, 12)) + 1
	if newYear < MinYear || newYear > MaxYear {
		return Date{}, rangeErr("year", newYear, MinYear, MaxYear)
	}
	return clampDay(int(newYear), newMonth, int(d.day)), nil
}

// PlusYears returns the date the given number of years after this one,
// clamping February 29 to February 28 in non-leap years.
func (d Date) PlusYears(years int64) (Date, error) {
	if years == 0 {
		return d, nil
	}
	newYear, err := overflow.Add(int64(d.year), years)
	if err != nil {
		return Date{}, err
	}
	if newYear < MinYear || newYear > MaxYear {
		return Date{}, rangeErr("year", newYear, MinYear, MaxYear)
	}
	return clampDay(int(newYear), int(d.month), int(d.day)), nil
}

// WithYear returns a copy with the year replaced, clamping the day-of-month
// to the last valid day of the resulting month.
func (d Date) WithYear(year int) (Date, error) {
	if int(d.year) == year {
		return d, nil
	}
	if year < MinYear || year > MaxYear {
		return Date{}, rangeErr("year", int64(year), MinYear, MaxYear)
	}
	return clampDay(year, int(d.month), int(d.day)), nil
}

// WithMonth returns a copy with the month replaced, clamping the
// day-of-month to the last valid day of the resulting month.
func (d Date) WithMonth(month int) (Date, error) {
	if int(d.month) == month {
		return d, nil
	}
	if month < 1 || month > 12 {
		return Date{}, rangeErr("month", int64(month), 1, 12)
	}
	return clampDay(int(d.year), month, int(d.day)), nil
}

// WithDay returns a copy with the day-of-month replaced. Unlike WithYear
// and WithMonth this never clamps: a day that does not exist in the month
// is an error.
func (d Date) WithDay(day int) (Date, error) {
	if int(d.day) == day {
		return d, nil
	}
	return NewDate(int(d.year), int(d.month), day)
}

// clampDay builds a date resolving an invalid day-of-month to the last
// valid day. year and month must already be in range.
func clampDay(year, month, day int) Date {
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return Date{year: int32(year), month: int8(month), day: int8(day)}
}

// Compare orders two dates on the time-line: negative if d is earlier than
// other, zero if equal, positive if later.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		if d.year < other.year {
			return -1
		}
		return 1
	case d.month != other.month:
		if d.month < other.month {
			return -1
		}
		return 1
	case d.day != other.day:
		if d.day < other.day {
			return -1
		}
		return 1
	}
	return 0
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// String renders the date as ISO-8601 yyyy-MM-dd, with an explicit sign for
// years outside 0000-9999.
func (d Date) String() string {
	year := int64(d.year)
	abs := year
	if abs < 0 {
		abs = -abs
	}
	var prefix string
	switch {
	case year < 0 && abs >= 10_000:
		prefix = "-"
	case year < 0:
		return fmt.Sprintf("-%04d-%02d-%02d", abs, d.month, d.day)
	case abs >= 10_000:
		prefix = "+"
	}
	return fmt.Sprintf("%s%04d-%02d-%02d", prefix, abs, d.month, d.day)
}
