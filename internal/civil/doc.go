// Package civil implements immutable calendar and clock value types on the
// proleptic Gregorian calendar.
//
// Contents
//
//   - Date: a year-month-day triple, canonically an epoch-day count
//     relative to 1970-01-01 (NewDate, FromEpochDay, EpochDay)
//   - Time: a nanosecond-of-day wall-clock value (NewTime, TimeOfNano)
//   - DateTime: a Date and Time pair with overflow-checked arithmetic
//   - Offset: a UTC offset in seconds, |offset| <= 18 hours
//   - OffsetDateTime: a DateTime fixed to an Offset
//   - ISOWeek: the ISO-8601 week-based-year calculation
//
// # Notes
//
// All types are values constructed through validated factories; "with" and
// "plus" operations return new values and report arithmetic overflow or
// out-of-range fields as errors rather than wrapping. Conversions between
// field form and the epoch-day canonical form are closed formulas with an
// exact round-trip over the supported year range.
package civil
