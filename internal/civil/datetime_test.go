package civil_test

import (
	"errors"
	"math"
	"testing"

	"chrono/internal/civil"
	"chrono/internal/util/overflow"
)

func datetime(t *testing.T, year, month, day, hour, minute, second, nano int) civil.DateTime {
	t.Helper()
	tod, err := civil.NewTime(hour, minute, second, nano)
	if err != nil {
		t.Fatalf("NewTime: %v", err)
	}
	return civil.NewDateTime(date(t, year, month, day), tod)
}

func TestMinusNanoFromMidnightRollsDateBack(t *testing.T) {
	midnight := datetime(t, 2023, 3, 1, 0, 0, 0, 0)
	got, err := midnight.MinusNanos(1)
	if err != nil {
		t.Fatalf("MinusNanos(1): %v", err)
	}
	want := datetime(t, 2023, 2, 28, 23, 59, 59, 999_999_999)
	if got != want {
		t.Errorf("MinusNanos(1) = %s, want %s", got, want)
	}
}

func TestPlusNanosAcrossMidnight(t *testing.T) {
	dt := datetime(t, 2023, 12, 31, 23, 59, 59, 999_999_999)
	got, err := dt.PlusNanos(1)
	if err != nil {
		t.Fatalf("PlusNanos(1): %v", err)
	}
	want := datetime(t, 2024, 1, 1, 0, 0, 0, 0)
	if got != want {
		t.Errorf("PlusNanos(1) = %s, want %s", got, want)
	}
}

func TestPlusMinusSymmetry(t *testing.T) {
	start := datetime(t, 2024, 2, 29, 12, 30, 45, 123_456_789)
	amounts := []int64{1, 25, 3600, 86_401, 123_456_789}

	for _, n := range amounts {
		forward, err := start.PlusHours(n)
		if err != nil {
			t.Fatalf("PlusHours(%d): %v", n, err)
		}
		back, err := forward.MinusHours(n)
		if err != nil {
			t.Fatalf("MinusHours(%d): %v", n, err)
		}
		if back != start {
			t.Errorf("PlusHours/MinusHours(%d) round trip = %s, want %s", n, back, start)
		}
	}
}

func TestPlusZeroReturnsSameValue(t *testing.T) {
	dt := datetime(t, 2023, 6, 15, 8, 30, 0, 0)
	got, err := dt.PlusSeconds(0)
	if err != nil {
		t.Fatalf("PlusSeconds(0): %v", err)
	}
	if got != dt {
		t.Errorf("PlusSeconds(0) changed the value: %s", got)
	}
}

func TestShiftExtremeAmounts(t *testing.T) {
	dt := datetime(t, 1970, 1, 1, 0, 0, 0, 0)

	// The whole legal input domain routes through checked arithmetic:
	// MaxInt64 nanoseconds is about 292 years and must not overflow.
	got, err := dt.PlusNanos(math.MaxInt64)
	if err != nil {
		t.Fatalf("PlusNanos(MaxInt64): %v", err)
	}
	if got.Date().Year() != 2262 {
		t.Errorf("PlusNanos(MaxInt64) year = %d, want 2262", got.Date().Year())
	}

	// Shifting far beyond the supported year range reports an error.
	if _, err := dt.PlusHours(math.MaxInt64 / 2); err == nil {
		t.Error("PlusHours(huge): expected error, got none")
	}
}

func TestShiftOverflowIsReported(t *testing.T) {
	nearMax := civil.NewDateTime(date(t, civil.MaxYear, 12, 31), civil.Midnight)
	_, err := nearMax.PlusHours(48)
	if !errors.Is(err, civil.ErrRange) && !errors.Is(err, overflow.ErrOverflow) {
		t.Errorf("PlusHours(48) at range edge: got %v, want range or overflow error", err)
	}
}

func TestEpochSecondConversions(t *testing.T) {
	cases := []struct {
		dt     civil.DateTime
		offset int
		epoch  int64
	}{
		{datetime(t, 1970, 1, 1, 0, 0, 0, 0), 0, 0},
		{datetime(t, 1970, 1, 1, 1, 0, 0, 0), 3600, 0},
		{datetime(t, 1969, 12, 31, 23, 0, 0, 0), -3600, 0},
		{datetime(t, 2001, 9, 9, 1, 46, 40, 0), 0, 1_000_000_000},
		{datetime(t, 1900, 1, 1, 0, 0, 0, 0), 0, -2_208_988_800},
	}
	for _, tc := range cases {
		off := civil.MustOffset(tc.offset)
		if got := tc.dt.EpochSecond(off); got != tc.epoch {
			t.Errorf("%s at %s: EpochSecond = %d, want %d", tc.dt, off, got, tc.epoch)
		}
		back, err := civil.DateTimeOfEpochSecond(tc.epoch, 0, off)
		if err != nil {
			t.Fatalf("DateTimeOfEpochSecond(%d): %v", tc.epoch, err)
		}
		if back != tc.dt {
			t.Errorf("DateTimeOfEpochSecond(%d, %s) = %s, want %s", tc.epoch, off, back, tc.dt)
		}
	}
}

func TestOffsetDateTime(t *testing.T) {
	odt := civil.NewOffsetDateTime(datetime(t, 2023, 7, 1, 14, 30, 0, 0), civil.MustOffset(2*3600))
	if got := odt.EpochSecond(); got != 1_688_214_600 {
		t.Errorf("EpochSecond = %d, want 1688214600", got)
	}
	if got := odt.String(); got != "2023-07-01T14:30+02:00" {
		t.Errorf("String = %q", got)
	}
}

func TestDateTimeString(t *testing.T) {
	cases := []struct {
		dt   civil.DateTime
		want string
	}{
		{datetime(t, 2023, 1, 2, 3, 4, 0, 0), "2023-01-02T03:04"},
		{datetime(t, 2023, 1, 2, 3, 4, 5, 0), "2023-01-02T03:04:05"},
		{datetime(t, 2023, 1, 2, 3, 4, 5, 600_000_000), "2023-01-02T03:04:05.6"},
		{datetime(t, 2023, 1, 2, 3, 4, 5, 1), "2023-01-02T03:04:05.000000001"},
	}
	for _, tc := range cases {
		if got := tc.dt.String(); got != tc.want {
			t.Errorf("String = %q, want %q", got, tc.want)
		}
	}
}
