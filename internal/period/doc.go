// Package period implements date-time amounts expressed in calendar and
// clock units: years, months, days, hours, minutes, seconds and
// nanoseconds.
//
// A Period keeps each unit separately; it performs no implicit conversion
// between them because a calendar day is not always 24 hours once zone
// rules apply. Normalized carries clock units upward and months into years;
// NormalizedWith24HourDays additionally treats days as exactly 24 hours.
// The package also implements the ISO-8601 textual form PnYnMnDTnHnMn.nS.
package period
