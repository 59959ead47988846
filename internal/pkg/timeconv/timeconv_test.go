package timeconv

import (
	"testing"
	"time"
)

func TestDateToUnix(t *testing.T) {
	date := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	got := DateToUnix(date)
	if got != 1738368000 {
		t.Fatalf("expected 1738368000, got %d", got)
	}
}

// Дата, сконструированная в другой зоне, должна давать тот же результат:
// конвертация привязана к календарной дате, а не к зоне хоста.
func TestDateToUnix_TimezoneIndependent(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*3600)
	date := time.Date(2025, 2, 1, 0, 0, 0, 0, zone)

	if got := DateToUnix(date); got != 1738368000 {
		t.Fatalf("expected 1738368000 regardless of zone, got %d", got)
	}
}

func TestMillisToDate(t *testing.T) {
	// 2024-01-01T00:00:00Z
	got := MillisToDate(1704067200000)

	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMillisToDate_TruncatesWithinDay(t *testing.T) {
	// 2024-01-01T18:45:30Z — середина суток схлопывается в полночь UTC
	got := MillisToDate(1704134730000)

	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMillisToDate_EpochStart(t *testing.T) {
	got := MillisToDate(0)

	want := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected epoch start date, got %v", got)
	}
}

func TestMillisToDate_LeapYear(t *testing.T) {
	// 2024-02-29T00:00:00Z
	got := MillisToDate(1709164800000)

	want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected leap day, got %v", got)
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{
			name:  "two days apart",
			start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			want:  2,
		},
		{
			name:  "same day",
			start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			want:  0,
		},
		{
			name:  "across month boundary",
			start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			want:  31,
		},
		{
			name:  "reversed range is negative",
			start: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			want:  -2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysBetween(tc.start, tc.end); got != tc.want {
				t.Fatalf("expected %d days, got %d", tc.want, got)
			}
		})
	}
}
