package journey

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/kavery/platewise/internal/catalog"
)

func lesson(id string, level catalog.Level) catalog.Lesson {
	return catalog.Lesson{
		ID:         id,
		Title:      id,
		Paragraphs: [3]string{"a", "b", "c"},
		Category:   catalog.CategoryRoutine,
		Level:      level,
	}
}

// fiveFoundation: 5 foundation lessons plus one lesson per higher level.
func fiveFoundation(t *testing.T) *catalog.Catalog {
	t.Helper()
	return catalog.NewFrom(catalog.Content{
		Lessons: []catalog.Lesson{
			lesson("f1", catalog.LevelFoundation),
			lesson("f2", catalog.LevelFoundation),
			lesson("f3", catalog.LevelFoundation),
			lesson("f4", catalog.LevelFoundation),
			lesson("f5", catalog.LevelFoundation),
			lesson("i1", catalog.LevelIntermediate),
			lesson("a1", catalog.LevelAdvanced),
		},
	})
}

// smallCurriculum: [foundation: L1,L2], [intermediate: L3], [advanced: L4].
func smallCurriculum(t *testing.T) *catalog.Catalog {
	t.Helper()
	return catalog.NewFrom(catalog.Content{
		Lessons: []catalog.Lesson{
			lesson("L1", catalog.LevelFoundation),
			lesson("L2", catalog.LevelFoundation),
			lesson("L3", catalog.LevelIntermediate),
			lesson("L4", catalog.LevelAdvanced),
		},
	})
}

func completed(ids ...string) State {
	s := NewState()
	s.CompletedIDs = ids
	return s
}

func TestStatusesFreshJourney(t *testing.T) {
	cat := fiveFoundation(t)
	got := Statuses(cat, NewState())

	want := map[string]Status{
		"f1": StatusCurrent,
		"f2": StatusAvailable,
		"f3": StatusAvailable,
		"f4": StatusAvailable,
		"f5": StatusAvailable,
		"i1": StatusLocked,
		"a1": StatusLocked,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Statuses = %v, want %v", got, want)
	}
}

func TestStatusesIntermediateUnlocks(t *testing.T) {
	cat := fiveFoundation(t)
	s := completed("f1", "f2", "f3", "f4", "f5")

	got := Statuses(cat, s)
	if got["i1"] != StatusCurrent {
		t.Errorf("i1 = %q, want current after foundation completes", got["i1"])
	}
	if got["a1"] != StatusLocked {
		t.Errorf("a1 = %q, want locked", got["a1"])
	}
}

func TestStatusesSingleCurrent(t *testing.T) {
	cat := fiveFoundation(t)

	states := []State{
		NewState(),
		completed("f2", "f4"),
		completed("f1", "f2", "f3", "f4", "f5"),
		completed("f1", "f2", "f3", "f4", "f5", "i1"),
	}
	for i, s := range states {
		statuses := Statuses(cat, s)
		count := 0
		for _, st := range statuses {
			if st == StatusCurrent {
				count++
			}
		}
		if count != 1 {
			t.Errorf("state %d: %d current lessons, want exactly 1", i, count)
		}
	}
}

func TestStatusesSkipAhead(t *testing.T) {
	// Completing a later foundation lesson moves current to the first
	// incomplete one, not past it.
	cat := fiveFoundation(t)
	got := Statuses(cat, completed("f3"))

	if got["f1"] != StatusCurrent {
		t.Errorf("f1 = %q, want current", got["f1"])
	}
	if got["f3"] != StatusCompleted {
		t.Errorf("f3 = %q, want completed", got["f3"])
	}
	if got["f4"] != StatusAvailable {
		t.Errorf("f4 = %q, want available", got["f4"])
	}
}

func TestEndToEndSmallCurriculum(t *testing.T) {
	cat := smallCurriculum(t)
	s := completed("L1")

	got := Statuses(cat, s)
	want := map[string]Status{
		"L1": StatusCompleted,
		"L2": StatusCurrent,
		"L3": StatusLocked,
		"L4": StatusLocked,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Statuses = %v, want %v", got, want)
	}

	sums := Summaries(cat, s)
	if len(sums) != 3 {
		t.Fatalf("got %d summaries, want 3", len(sums))
	}
	fnd := sums[0]
	if fnd.Level != catalog.LevelFoundation || fnd.CompletedCount != 1 || fnd.TotalCount != 2 || fnd.Locked {
		t.Errorf("foundation summary = %+v", fnd)
	}
	if !sums[1].Locked || !sums[2].Locked {
		t.Errorf("higher levels should be locked: %+v", sums[1:])
	}
}

func TestSummariesUnlockChain(t *testing.T) {
	cat := smallCurriculum(t)

	tests := []struct {
		name       string
		state      State
		wantLocked [3]bool
	}{
		{"fresh", NewState(), [3]bool{false, true, true}},
		{"foundation done", completed("L1", "L2"), [3]bool{false, false, true}},
		{"intermediate done", completed("L1", "L2", "L3"), [3]bool{false, false, false}},
		{"partial foundation", completed("L2"), [3]bool{false, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sums := Summaries(cat, tt.state)
			for i, sum := range sums {
				if sum.Locked != tt.wantLocked[i] {
					t.Errorf("level %q locked = %v, want %v", sum.Level, sum.Locked, tt.wantLocked[i])
				}
			}
		})
	}
}

func TestMarkComplete(t *testing.T) {
	cat := smallCurriculum(t)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	s1, err := MarkComplete(cat, NewState(), "L1", now)
	if err != nil {
		t.Fatal(err)
	}
	if !s1.Completed("L1") {
		t.Error("L1 not recorded")
	}
	if s1.StartedAt == nil || !s1.StartedAt.Equal(now) {
		t.Errorf("StartedAt = %v, want %v", s1.StartedAt, now)
	}
	if s1.LastCompletedAt == nil || !s1.LastCompletedAt.Equal(now) {
		t.Errorf("LastCompletedAt = %v, want %v", s1.LastCompletedAt, now)
	}
	if s1.CurrentLevel != catalog.LevelFoundation {
		t.Errorf("CurrentLevel = %q, want foundation", s1.CurrentLevel)
	}

	later := now.Add(24 * time.Hour)
	s2, err := MarkComplete(cat, s1, "L2", later)
	if err != nil {
		t.Fatal(err)
	}
	if s2.CurrentLevel != catalog.LevelIntermediate {
		t.Errorf("CurrentLevel = %q, want intermediate after foundation completes", s2.CurrentLevel)
	}
	if !s2.StartedAt.Equal(now) {
		t.Errorf("StartedAt moved to %v", s2.StartedAt)
	}
	if !s2.LastCompletedAt.Equal(later) {
		t.Errorf("LastCompletedAt = %v, want %v", s2.LastCompletedAt, later)
	}
}

func TestMarkCompleteIdempotent(t *testing.T) {
	cat := smallCurriculum(t)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	s1, err := MarkComplete(cat, NewState(), "L1", now)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := MarkComplete(cat, s1, "L1", now.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("re-completion changed state:\n  first:  %+v\n  second: %+v", s1, s2)
	}
}

func TestMarkCompleteUnknownLesson(t *testing.T) {
	cat := smallCurriculum(t)
	in := completed("L1")
	before := in.clone()

	_, err := MarkComplete(cat, in, "L99", time.Now())
	var unknown *ErrUnknownLesson
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want ErrUnknownLesson", err)
	}
	if unknown.ID != "L99" {
		t.Errorf("error id = %q", unknown.ID)
	}
	if !reflect.DeepEqual(in, before) {
		t.Error("input state was mutated")
	}
}

func TestMarkCompleteDoesNotAliasInput(t *testing.T) {
	cat := smallCurriculum(t)
	in := completed("L1")

	out, err := MarkComplete(cat, in, "L2", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	out.CompletedIDs[0] = "mutated"
	if in.CompletedIDs[0] != "L1" {
		t.Error("output state aliases input slice")
	}
}

func TestCurrentLevelMonotonic(t *testing.T) {
	cat := smallCurriculum(t)

	// A state claiming advanced stays advanced even if completions say
	// otherwise (e.g. the catalog grew since the level was earned).
	s := completed("L1")
	s.CurrentLevel = catalog.LevelAdvanced

	out, err := MarkComplete(cat, s, "L2", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if out.CurrentLevel != catalog.LevelAdvanced {
		t.Errorf("CurrentLevel regressed to %q", out.CurrentLevel)
	}
}

func TestStatusIconsAndLabels(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCurrent, StatusAvailable, StatusLocked} {
		if s.Icon() == "?" {
			t.Errorf("status %q has no icon", s)
		}
		if s.Label() == "Unknown" {
			t.Errorf("status %q has no label", s)
		}
	}
}
