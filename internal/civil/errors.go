package civil

import (
	"errors"
	"fmt"
)

var (
	// ErrRange indicates a field value outside its legal domain, such as
	// month 13 or hour 24.
	ErrRange = errors.New("civil: field out of range")
	// ErrInvalidDate indicates a structurally in-range year-month-day
	// triple that is not a real calendar date, such as February 30.
	ErrInvalidDate = errors.New("civil: invalid date")
	// ErrParse indicates malformed date, time, or offset text.
	ErrParse = errors.New("civil: invalid text")
)

func rangeErr(field string, value, min, max int64) error {
	return fmt.Errorf("%w: %s %d not in [%d, %d]", ErrRange, field, value, min, max)
}

func parseErr(kind, text string) error {
	return fmt.Errorf("%w: cannot parse %q as %s", ErrParse, text, kind)
}
