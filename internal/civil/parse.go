package civil

import (
	"strconv"
	"strings"
)

// ParseDate parses ISO-8601 yyyy-MM-dd, accepting a signed year of up to
// nine digits.
func ParseDate(text string) (Date, error) {
	if len(text) < 10 || text[len(text)-3] != '-' || text[len(text)-6] != '-' {
		return Date{}, parseErr("date", text)
	}
	yearText := text[:len(text)-6]
	if strings.HasPrefix(yearText, "+") {
		yearText = yearText[1:]
	}
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return Date{}, parseErr("date", text)
	}
	month, err := parseTwoDigits(text[len(text)-5 : len(text)-3])
	if err != nil {
		return Date{}, parseErr("date", text)
	}
	day, err := parseTwoDigits(text[len(text)-2:])
	if err != nil {
		return Date{}, parseErr("date", text)
	}
	return NewDate(year, month, day)
}

// ParseTime parses ISO-8601 HH:mm, HH:mm:ss, or HH:mm:ss.n with up to nine
// fractional digits.
func ParseTime(text string) (Time, error) {
	if len(text) < 5 || text[2] != ':' {
		return Time{}, parseErr("time", text)
	}
	hour, err := parseTwoDigits(text[0:2])
	if err != nil {
		return Time{}, parseErr("time", text)
	}
	minute, err := parseTwoDigits(text[3:5])
	if err != nil {
		return Time{}, parseErr("time", text)
	}
	second, nano := 0, 0
	if len(text) > 5 {
		if len(text) < 8 || text[5] != ':' {
			return Time{}, parseErr("time", text)
		}
		if second, err = parseTwoDigits(text[6:8]); err != nil {
			return Time{}, parseErr("time", text)
		}
		if len(text) > 8 {
			if text[8] != '.' || len(text) == 9 || len(text) > 18 {
				return Time{}, parseErr("time", text)
			}
			frac := text[9:]
			for _, c := range frac {
				if c < '0' || c > '9' {
					return Time{}, parseErr("time", text)
				}
			}
			padded := frac + "000000000"[:9-len(frac)]
			nano, _ = strconv.Atoi(padded)
		}
	}
	return NewTime(hour, minute, second, nano)
}

// ParseDateTime parses the combined form yyyy-MM-ddTHH:mm[:ss[.n]].
func ParseDateTime(text string) (DateTime, error) {
	sep := strings.IndexByte(text, 'T')
	if sep < 0 {
		sep = strings.IndexByte(text, 't')
	}
	if sep < 0 {
		return DateTime{}, parseErr("date-time", text)
	}
	date, err := ParseDate(text[:sep])
	if err != nil {
		return DateTime{}, err
	}
	tod, err := ParseTime(text[sep+1:])
	if err != nil {
		return DateTime{}, err
	}
	return NewDateTime(date, tod), nil
}

// ParseOffset parses Z, +HH, +HH:MM, or +HH:MM:SS, case-insensitive on Z.
func ParseOffset(text string) (Offset, error) {
	if text == "Z" || text == "z" {
		return UTC, nil
	}
	if len(text) < 3 || (text[0] != '+' && text[0] != '-') {
		return Offset{}, parseErr("offset", text)
	}
	sign := 1
	if text[0] == '-' {
		sign = -1
	}
	hours, err := parseTwoDigits(text[1:3])
	if err != nil {
		return Offset{}, parseErr("offset", text)
	}
	minutes, seconds := 0, 0
	rest := text[3:]
	if rest != "" {
		if len(rest) < 3 || rest[0] != ':' {
			return Offset{}, parseErr("offset", text)
		}
		if minutes, err = parseTwoDigits(rest[1:3]); err != nil {
			return Offset{}, parseErr("offset", text)
		}
		rest = rest[3:]
	}
	if rest != "" {
		if len(rest) != 3 || rest[0] != ':' {
			return Offset{}, parseErr("offset", text)
		}
		if seconds, err = parseTwoDigits(rest[1:]); err != nil {
			return Offset{}, parseErr("offset", text)
		}
	}
	if minutes > 59 || seconds > 59 {
		return Offset{}, parseErr("offset", text)
	}
	return OffsetOfSeconds(sign * (hours*SecondsPerHour + minutes*SecondsPerMinute + seconds))
}

func parseTwoDigits(s string) (int, error) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, ErrParse
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), nil
}
