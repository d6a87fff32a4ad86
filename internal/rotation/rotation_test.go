package rotation

import (
	"errors"
	"testing"
	"time"
)

func TestPickStableWithinDay(t *testing.T) {
	for range 10 {
		got, err := Pick(7, 42, OffsetGoldenRule)
		if err != nil {
			t.Fatalf("Pick: %v", err)
		}
		if got != 0 {
			t.Fatalf("Pick(7, 42, 0) = %d, want 0", got)
		}
	}
}

func TestPickCyclesAllIndices(t *testing.T) {
	const n = 7
	seen := make(map[int]bool, n)
	for day := 100; day < 100+n; day++ {
		idx, err := Pick(n, day, OffsetDailyDrop)
		if err != nil {
			t.Fatalf("Pick day %d: %v", day, err)
		}
		if idx < 0 || idx >= n {
			t.Fatalf("Pick day %d = %d, out of range", day, idx)
		}
		if seen[idx] {
			t.Fatalf("index %d repeated within one cycle", idx)
		}
		seen[idx] = true
	}
	if len(seen) != n {
		t.Errorf("cycle covered %d of %d indices", len(seen), n)
	}
}

func TestOffsetsDesynchronize(t *testing.T) {
	// With equal catalog lengths, the two features must never pick the
	// same index on the same day.
	const n = 7
	for day := range 2 * n {
		rule, _ := Pick(n, day, OffsetGoldenRule)
		drop, _ := Pick(n, day, OffsetDailyDrop)
		if rule == drop {
			t.Fatalf("day %d: rule and drop both picked %d", day, rule)
		}
	}
}

func TestPickEmptyCatalog(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := Pick(n, 5, 0); !errors.Is(err, ErrEmptyCatalog) {
			t.Errorf("Pick(%d, 5, 0) error = %v, want ErrEmptyCatalog", n, err)
		}
	}
}

func TestDayOfYear(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2026-01-01", 0},
		{"2026-01-31", 30},
		{"2026-02-01", 31},
		{"2026-12-31", 364},
		{"2024-12-31", 365}, // leap year
	}

	for _, tt := range tests {
		d, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := DayOfYear(d); got != tt.want {
			t.Errorf("DayOfYear(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestPickAtMatchesPick(t *testing.T) {
	d := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	got, err := PickAt(10, d, OffsetDailyDrop)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Pick(10, DayOfYear(d), OffsetDailyDrop)
	if got != want {
		t.Errorf("PickAt = %d, want %d", got, want)
	}
}
