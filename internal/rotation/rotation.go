// Package rotation picks a daily index into a content catalog.
//
// Picks are a pure function of the calendar date, so every call within the
// same day lands on the same record, and the selection cycles through the
// whole catalog over consecutive days. Features that rotate independently
// use distinct fixed offsets so their picks never change in step.
package rotation

import (
	"errors"
	"time"
)

// Offsets for the rotating features. Distinct on purpose: the golden rule
// and the daily drop must not always change together.
const (
	OffsetGoldenRule = 0
	OffsetDailyDrop  = 3
)

// ErrEmptyCatalog indicates a rotating pick was requested against a catalog
// with no entries. This is a data error — catalog validation at startup
// should make it unreachable.
var ErrEmptyCatalog = errors.New("rotation: empty catalog")

// DayOfYear returns the zero-based day of year for t (Jan 1 = 0).
func DayOfYear(t time.Time) int {
	return t.YearDay() - 1
}

// Pick returns the catalog index for the given day and offset.
func Pick(n, day, offset int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyCatalog
	}
	idx := (day + offset) % n
	if idx < 0 {
		idx += n
	}
	return idx, nil
}

// PickAt is the production entry point: the index for catalog length n at
// wall-clock time t. Callers inject t so picks stay testable.
func PickAt(n int, t time.Time, offset int) (int, error) {
	return Pick(n, DayOfYear(t), offset)
}
