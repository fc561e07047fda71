package period_test

import (
	"errors"
	"testing"

	"chrono/internal/period"
	"chrono/internal/util/overflow"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want period.Period
	}{
		{"PT0S", period.Zero},
		{"P0D", period.Zero},
		{"pt0s", period.Zero},
		{"P1Y", period.New(1, 0, 0, 0, 0, 0, 0)},
		{"P1Y2M3D", period.New(1, 2, 3, 0, 0, 0, 0)},
		{"P1Y2M3DT4H5M6S", period.New(1, 2, 3, 4, 5, 6, 0)},
		{"PT4H5M6S", period.New(0, 0, 0, 4, 5, 6, 0)},
		{"P-1Y2M", period.New(-1, 2, 0, 0, 0, 0, 0)},
		{"P+1Y", period.New(1, 0, 0, 0, 0, 0, 0)},
		{"PT0.5S", period.OfSeconds(0, 500_000_000)},
		{"PT0,5S", period.OfSeconds(0, 500_000_000)},
		{"PT-0.1S", period.OfSeconds(0, -100_000_000)},
		{"PT1.5S", period.OfSeconds(1, 500_000_000)},
		{"PT-1.5S", period.OfSeconds(-1, -500_000_000)},
		{"PT2.000000001S", period.OfSeconds(2, 1)},
		{"P12M", period.New(0, 12, 0, 0, 0, 0, 0)},
		{"PT60M", period.New(0, 0, 0, 0, 60, 0, 0)},
	}
	for _, tt := range tests {
		got, err := period.Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	bad := []string{
		"",
		"P",
		"PT",
		"T1H",
		"1Y",
		"P1",
		"P1X",
		"P1YT",
		"PT1ABC2S",
		"PT1S2H",
		"P1M2Y",
		"P1Y1Y",
		"PT1.5H",
		"PT1.S",
		"P+Y",
		"P-",
		"PT0.0000000001S",
		"P1YT2HT3S",
		"P1Y ",
	}
	for _, in := range bad {
		if _, err := period.Parse(in); !errors.Is(err, period.ErrParse) {
			t.Errorf("Parse(%q) error = %v, want ErrParse", in, err)
		}
	}
}

func TestParseOverflow(t *testing.T) {
	for _, in := range []string{"P2147483648Y", "PT-2147483649S"} {
		if _, err := period.Parse(in); !errors.Is(err, overflow.ErrOverflow) {
			t.Errorf("Parse(%q) error = %v, want ErrOverflow", in, err)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, text := range []string{
		"PT0S", "P1Y2M3DT4H5M6.7S", "P-1Y", "PT-0.1S", "PT1.5S", "P2D", "PT1H",
	} {
		p, err := period.Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if got := p.String(); got != text {
			t.Errorf("Parse(%q).String() = %q", text, got)
		}
	}
}
