package period

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"chrono/internal/util/overflow"
)

// ErrParse indicates period text that does not match the ISO-8601 grammar
// P[nY][nM][nD][T[nH][nM][n[.f]S]].
var ErrParse = errors.New("period: invalid text")

func parseErr(text, reason string) error {
	return fmt.Errorf("%w: %s in %q", ErrParse, reason, text)
}

// Parse reads the ISO-8601 period form. Designator letters are
// case-insensitive, every numeric component may carry its own sign, and
// fractional seconds accept either '.' or ',' with at most nine digits.
// Designators must appear in Y, M, D then H, M, S order without
// duplicates, and at least one component must be present.
func Parse(text string) (Period, error) {
	body := strings.Map(func(r rune) rune {
		if r == ',' {
			return '.'
		}
		if 'a' <= r && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, text)
	if len(body) < 2 || body[0] != 'P' {
		return Period{}, parseErr(text, "missing period designator")
	}
	body = body[1:]

	datePart := body
	timePart := ""
	if idx := strings.IndexByte(body, 'T'); idx >= 0 {
		datePart, timePart = body[:idx], body[idx+1:]
		if timePart == "" {
			return Period{}, parseErr(text, "no components after T")
		}
		if strings.IndexByte(timePart, 'T') >= 0 {
			return Period{}, parseErr(text, "repeated T designator")
		}
	}

	var p Period
	if err := parseSection(text, datePart, "YMD", false, &p); err != nil {
		return Period{}, err
	}
	if err := parseSection(text, timePart, "HMS", true, &p); err != nil {
		return Period{}, err
	}
	return p, nil
}

// parseSection consumes number-designator pairs, enforcing the fixed
// designator order within the section.
func parseSection(text, s, designators string, isTime bool, p *Period) error {
	i := 0
	nextDesignator := 0
	for i < len(s) {
		start := i
		if s[i] == '+' || s[i] == '-' {
			i++
		}
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start || (i == start+1 && (s[start] == '+' || s[start] == '-')) {
			return parseErr(text, "missing digits")
		}
		number := s[start:i]

		frac := ""
		if i < len(s) && s[i] == '.' {
			fracStart := i + 1
			i++
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				i++
			}
			frac = s[fracStart:i]
			if frac == "" {
				return parseErr(text, "decimal point without digits")
			}
			if len(frac) > 9 {
				return parseErr(text, "more than nine fractional digits")
			}
		}
		if i >= len(s) {
			return parseErr(text, "number without designator")
		}
		letter := s[i]
		i++

		pos := strings.IndexByte(designators, letter)
		if pos < 0 {
			return parseErr(text, fmt.Sprintf("unexpected designator %q", string(letter)))
		}
		if pos < nextDesignator {
			return parseErr(text, fmt.Sprintf("designator %q out of order", string(letter)))
		}
		nextDesignator = pos + 1

		if frac != "" && (!isTime || letter != 'S') {
			return parseErr(text, "fraction only allowed on seconds")
		}

		value, err := strconv.ParseInt(number, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: component %s exceeds the supported range in %q", overflow.ErrOverflow, number, text)
		}

		if isTime {
			switch letter {
			case 'H':
				p.hours = int32(value)
			case 'M':
				p.minutes = int32(value)
			case 'S':
				p.seconds = int32(value)
				if frac != "" {
					nanos, _ := strconv.ParseInt(frac+"000000000"[:9-len(frac)], 10, 64)
					if number[0] == '-' {
						nanos = -nanos
					}
					p.nanos = nanos
				}
			}
		} else {
			switch letter {
			case 'Y':
				p.years = int32(value)
			case 'M':
				p.months = int32(value)
			case 'D':
				p.days = int32(value)
			}
		}
	}
	return nil
}
