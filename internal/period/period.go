package period

import (
	"fmt"
	"strings"

	"chrono/internal/util/overflow"
)

const nanosPerSecond = int64(1_000_000_000)

// Period is an immutable amount of time split across calendar and clock
// units. Each field is signed and independent; no unit is implicitly
// converted to another.
type Period struct {
	years   int32
	months  int32
	days    int32
	hours   int32
	minutes int32
	seconds int32
	nanos   int64
}

// Zero is the period of no length.
var Zero = Period{}

// New returns a period of the given units. No normalization is performed:
// New(0, 13, 0, ...) keeps thirteen months.
func New(years, months, days, hours, minutes, seconds int32, nanos int64) Period {
	return Period{
		years:   years,
		months:  months,
		days:    days,
		hours:   hours,
		minutes: minutes,
		seconds: seconds,
		nanos:   nanos,
	}
}

// OfSeconds returns a period holding only seconds and nanoseconds.
func OfSeconds(seconds int32, nanos int64) Period {
	return Period{seconds: seconds, nanos: nanos}
}

// Years returns the years unit.
func (p Period) Years() int { return int(p.years) }

// Months returns the months unit.
func (p Period) Months() int { return int(p.months) }

// Days returns the days unit.
func (p Period) Days() int { return int(p.days) }

// Hours returns the hours unit.
func (p Period) Hours() int { return int(p.hours) }

// Minutes returns the minutes unit.
func (p Period) Minutes() int { return int(p.minutes) }

// Seconds returns the seconds unit.
func (p Period) Seconds() int { return int(p.seconds) }

// Nanos returns the nanoseconds unit.
func (p Period) Nanos() int64 { return p.nanos }

// IsZero reports whether every unit is zero.
func (p Period) IsZero() bool { return p == Zero }

// PlusYears returns a copy with the given years added, reporting overflow
// of the 32-bit field.
func (p Period) PlusYears(years int64) (Period, error) {
	v, err := addUnit(p.years, years)
	if err != nil {
		return Period{}, err
	}
	p.years = v
	return p, nil
}

// PlusMonths returns a copy with the given months added.
func (p Period) PlusMonths(months int64) (Period, error) {
	v, err := addUnit(p.months, months)
	if err != nil {
		return Period{}, err
	}
	p.months = v
	return p, nil
}

// PlusDays returns a copy with the given days added.
func (p Period) PlusDays(days int64) (Period, error) {
	v, err := addUnit(p.days, days)
	if err != nil {
		return Period{}, err
	}
	p.days = v
	return p, nil
}

// PlusHours returns a copy with the given hours added.
func (p Period) PlusHours(hours int64) (Period, error) {
	v, err := addUnit(p.hours, hours)
	if err != nil {
		return Period{}, err
	}
	p.hours = v
	return p, nil
}

// PlusMinutes returns a copy with the given minutes added.
func (p Period) PlusMinutes(minutes int64) (Period, error) {
	v, err := addUnit(p.minutes, minutes)
	if err != nil {
		return Period{}, err
	}
	p.minutes = v
	return p, nil
}

// PlusSeconds returns a copy with the given seconds added.
func (p Period) PlusSeconds(seconds int64) (Period, error) {
	v, err := addUnit(p.seconds, seconds)
	if err != nil {
		return Period{}, err
	}
	p.seconds = v
	return p, nil
}

// PlusNanos returns a copy with the given nanoseconds added.
func (p Period) PlusNanos(nanos int64) (Period, error) {
	v, err := overflow.Add(p.nanos, nanos)
	if err != nil {
		return Period{}, err
	}
	p.nanos = v
	return p, nil
}

// Plus returns the unit-wise sum of two periods.
func (p Period) Plus(other Period) (Period, error) {
	steps := []func(Period) (Period, error){
		func(q Period) (Period, error) { return q.PlusYears(int64(other.years)) },
		func(q Period) (Period, error) { return q.PlusMonths(int64(other.months)) },
		func(q Period) (Period, error) { return q.PlusDays(int64(other.days)) },
		func(q Period) (Period, error) { return q.PlusHours(int64(other.hours)) },
		func(q Period) (Period, error) { return q.PlusMinutes(int64(other.minutes)) },
		func(q Period) (Period, error) { return q.PlusSeconds(int64(other.seconds)) },
		func(q Period) (Period, error) { return q.PlusNanos(other.nanos) },
	}
	out := p
	var err error
	for _, step := range steps {
		if out, err = step(out); err != nil {
			return Period{}, err
		}
	}
	return out, nil
}

// Negated returns the period with every unit negated.
func (p Period) Negated() (Period, error) {
	years, err := overflow.Int32(-int64(p.years))
	if err != nil {
		return Period{}, err
	}
	months, err := overflow.Int32(-int64(p.months))
	if err != nil {
		return Period{}, err
	}
	days, err := overflow.Int32(-int64(p.days))
	if err != nil {
		return Period{}, err
	}
	hours, err := overflow.Int32(-int64(p.hours))
	if err != nil {
		return Period{}, err
	}
	minutes, err := overflow.Int32(-int64(p.minutes))
	if err != nil {
		return Period{}, err
	}
	seconds, err := overflow.Int32(-int64(p.seconds))
	if err != nil {
		return Period{}, err
	}
	nanos, err := overflow.Sub(0, p.nanos)
	if err != nil {
		return Period{}, err
	}
	return New(years, months, days, hours, minutes, seconds, nanos), nil
}

// Normalized carries each unit into the next larger one where the
// relationship is exact regardless of zone rules: nanoseconds into seconds,
// seconds into minutes, minutes into hours, and months into years. Days are
// left untouched because a calendar day is not always 24 hours.
// Normalizing an already-normalized period returns it unchanged.
func (p Period) Normalized() (Period, error) {
	if p.IsZero() {
		return Zero, nil
	}
	years := int64(p.years)
	months := int64(p.months)
	if months >= 12 {
		var err error
		if years, err = overflow.Add(years, months/12); err != nil {
			return Period{}, err
		}
		months %= 12
	}
	// Clock units fit int64 comfortably before the nanosecond scale-up.
	total := int64(p.hours)*3600 + int64(p.minutes)*60 + int64(p.seconds)
	total, err := overflow.Mul(total, nanosPerSecond)
	if err != nil {
		return Period{}, err
	}
	if total, err = overflow.Add(total, p.nanos); err != nil {
		return Period{}, err
	}
	nanos := total % nanosPerSecond
	total /= nanosPerSecond
	seconds := total % 60
	total /= 60
	minutes := total % 60
	total /= 60
	hours, err := overflow.Int32(total)
	if err != nil {
		return Period{}, err
	}
	return p.rebuild(years, months, int64(p.days), int64(hours), minutes, seconds, nanos)
}

// NormalizedWith24HourDays behaves like Normalized but additionally treats
// every day as exactly 24 hours, carrying whole days out of the clock
// units.
func (p Period) NormalizedWith24HourDays() (Period, error) {
	if p.IsZero() {
		return Zero, nil
	}
	years := int64(p.years)
	months := int64(p.months)
	if months >= 12 {
		var err error
		if years, err = overflow.Add(years, months/12); err != nil {
			return Period{}, err
		}
		months %= 12
	}
	total := int64(p.days)*86_400 + int64(p.hours)*3600 + int64(p.minutes)*60 + int64(p.seconds)
	total, err := overflow.Add(total, overflow.FloorDiv(p.nanos, nanosPerSecond))
	if err != nil {
		return Period{}, err
	}
	nanos := overflow.FloorMod(p.nanos, nanosPerSecond)
	seconds := total % 60
	total /= 60
	minutes := total % 60
	total /= 60
	hours := total % 24
	total /= 24
	days, err := overflow.Int32(total)
	if err != nil {
		return Period{}, err
	}
	return p.rebuild(years, months, int64(days), hours, minutes, seconds, nanos)
}

// rebuild narrows normalized unit counts back into a Period, returning the
// receiver unchanged when no field moved and Zero when everything is zero.
func (p Period) rebuild(years, months, days, hours, minutes, seconds, nanos int64) (Period, error) {
	y, err := overflow.Int32(years)
	if err != nil {
		return Period{}, err
	}
	mo, err := overflow.Int32(months)
	if err != nil {
		return Period{}, err
	}
	d, err := overflow.Int32(days)
	if err != nil {
		return Period{}, err
	}
	h, err := overflow.Int32(hours)
	if err != nil {
		return Period{}, err
	}
	mi, err := overflow.Int32(minutes)
	if err != nil {
		return Period{}, err
	}
	s, err := overflow.Int32(seconds)
	if err != nil {
		return Period{}, err
	}
	out := New(y, mo, d, h, mi, s, nanos)
	if out == p {
		return p, nil
	}
	if out == Zero {
		return Zero, nil
	}
	return out, nil
}

func addUnit(current int32, amount int64) (int32, error) {
	sum, err := overflow.Add(int64(current), amount)
	if err != nil {
		return 0, err
	}
	return overflow.Int32(sum)
}

// String renders the period in canonical ISO-8601 form. The zero period is
// PT0S; otherwise zero units are omitted and fractional seconds are
// trimmed to the shortest exact decimal.
func (p Period) String() string {
	if p.IsZero() {
		return "PT0S"
	}
	var buf strings.Builder
	buf.WriteByte('P')
	if p.years != 0 {
		fmt.Fprintf(&buf, "%dY", p.years)
	}
	if p.months != 0 {
		fmt.Fprintf(&buf, "%dM", p.months)
	}
	if p.days != 0 {
		fmt.Fprintf(&buf, "%dD", p.days)
	}
	if p.hours != 0 || p.minutes != 0 || p.seconds != 0 || p.nanos != 0 {
		buf.WriteByte('T')
		if p.hours != 0 {
			fmt.Fprintf(&buf, "%dH", p.hours)
		}
		if p.minutes != 0 {
			fmt.Fprintf(&buf, "%dM", p.minutes)
		}
		if p.seconds != 0 || p.nanos != 0 {
			writeSeconds(&buf, int64(p.seconds), p.nanos)
		}
	}
	return buf.String()
}

// writeSeconds renders the combined seconds and nanoseconds component,
// folding mixed signs into a single decimal value.
func writeSeconds(buf *strings.Builder, seconds, nanos int64) {
	if nanos == 0 {
		fmt.Fprintf(buf, "%dS", seconds)
		return
	}
	seconds += nanos / nanosPerSecond
	nanos %= nanosPerSecond
	if seconds < 0 && nanos > 0 {
		nanos -= nanosPerSecond
		seconds++
	} else if seconds > 0 && nanos < 0 {
		nanos += nanosPerSecond
		seconds--
	}
	if nanos < 0 {
		nanos = -nanos
		if seconds == 0 {
			buf.WriteByte('-')
		}
	}
	if nanos == 0 {
		fmt.Fprintf(buf, "%dS", seconds)
		return
	}
	frac := fmt.Sprintf("%09d", nanos)
	for len(frac) > 1 && frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}
	fmt.Fprintf(buf, "%d.%sS", seconds, frac)
}
