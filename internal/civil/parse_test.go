package civil_test

import (
	"errors"
	"testing"

	"chrono/internal/civil"
)

func TestParseDate(t *testing.T) {
	good := map[string]civil.Date{
		"2023-04-05":  date(t, 2023, 4, 5),
		"0000-01-01":  date(t, 0, 1, 1),
		"-0005-12-31": date(t, -5, 12, 31),
		"+12345-06-07": date(t, 12345, 6, 7),
	}
	for text, want := range good {
		got, err := civil.ParseDate(text)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", text, err)
		}
		if got != want {
			t.Errorf("ParseDate(%q) = %s, want %s", text, got, want)
		}
	}

	bad := []string{"", "2023-4-05", "2023/04/05", "2023-04", "2023-13-01", "2023-02-29", "20230405"}
	for _, text := range bad {
		if _, err := civil.ParseDate(text); err == nil {
			t.Errorf("ParseDate(%q): expected error", text)
		}
	}
}

func TestParseTime(t *testing.T) {
	cases := []struct {
		text                       string
		hour, minute, second, nano int
	}{
		{"00:00", 0, 0, 0, 0},
		{"23:59", 23, 59, 0, 0},
		{"12:30:45", 12, 30, 45, 0},
		{"12:30:45.5", 12, 30, 45, 500_000_000},
		{"12:30:45.000000001", 12, 30, 45, 1},
	}
	for _, tc := range cases {
		got, err := civil.ParseTime(tc.text)
		if err != nil {
			t.Fatalf("ParseTime(%q): %v", tc.text, err)
		}
		want, err := civil.NewTime(tc.hour, tc.minute, tc.second, tc.nano)
		if err != nil {
			t.Fatalf("NewTime: %v", err)
		}
		if got != want {
			t.Errorf("ParseTime(%q) = %s, want %s", tc.text, got, want)
		}
	}

	bad := []string{"", "24:00", "12:60", "12:30:45.", "12:30:45.0000000001", "12:30:45,5", "1:30"}
	for _, text := range bad {
		if _, err := civil.ParseTime(text); !errors.Is(err, civil.ErrParse) && !errors.Is(err, civil.ErrRange) {
			t.Errorf("ParseTime(%q): got %v, want parse or range error", text, err)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := civil.ParseDateTime("2023-04-05T12:30:45.25")
	if err != nil {
		t.Fatalf("ParseDateTime: %v", err)
	}
	want := datetime(t, 2023, 4, 5, 12, 30, 45, 250_000_000)
	if got != want {
		t.Errorf("ParseDateTime = %s, want %s", got, want)
	}

	if _, err := civil.ParseDateTime("2023-04-05 12:30"); !errors.Is(err, civil.ErrParse) {
		t.Errorf("ParseDateTime without T: got %v, want ErrParse", err)
	}
}

func TestParseOffset(t *testing.T) {
	cases := map[string]int{
		"Z":         0,
		"z":         0,
		"+02:00":    7200,
		"-05:00":    -18000,
		"+05:30":    19800,
		"+01":       3600,
		"-00:07":    -420,
		"+10:20:30": 37230,
		"+18:00":    64800,
	}
	for text, seconds := range cases {
		got, err := civil.ParseOffset(text)
		if err != nil {
			t.Fatalf("ParseOffset(%q): %v", text, err)
		}
		if got.TotalSeconds() != seconds {
			t.Errorf("ParseOffset(%q) = %d seconds, want %d", text, got.TotalSeconds(), seconds)
		}
	}

	bad := []string{"", "02:00", "+2:00", "+19:00", "+02:60", "+02:00:60", "+02-00"}
	for _, text := range bad {
		if _, err := civil.ParseOffset(text); err == nil {
			t.Errorf("ParseOffset(%q): expected error", text)
		}
	}
}

func TestOffsetString(t *testing.T) {
	cases := map[int]string{
		0:      "Z",
		7200:   "+02:00",
		-18000: "-05:00",
		37230:  "+10:20:30",
		-420:   "-00:07",
	}
	for seconds, want := range cases {
		if got := civil.MustOffset(seconds).String(); got != want {
			t.Errorf("Offset(%d).String() = %q, want %q", seconds, got, want)
		}
	}
}

func TestNewOffsetSignConsistency(t *testing.T) {
	if _, err := civil.NewOffset(1, -30, 0); !errors.Is(err, civil.ErrRange) {
		t.Errorf("NewOffset(1, -30, 0): got %v, want ErrRange", err)
	}
	off, err := civil.NewOffset(-5, -30, 0)
	if err != nil {
		t.Fatalf("NewOffset(-5, -30, 0): %v", err)
	}
	if off.TotalSeconds() != -19800 {
		t.Errorf("TotalSeconds = %d, want -19800", off.TotalSeconds())
	}
}
