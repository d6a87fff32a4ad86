package journey

import (
	"fmt"
	"time"

	"github.com/kavery/platewise/internal/catalog"
)

// ErrUnknownLesson indicates a completion was requested for an id not in
// the lesson catalog. The input state is left unchanged.
type ErrUnknownLesson struct {
	ID string
}

func (e *ErrUnknownLesson) Error() string {
	return fmt.Sprintf("unknown lesson id %q", e.ID)
}

// MarkComplete records a lesson completion and returns the new state.
//
// Completing an already-completed lesson is a no-op, not an error: the
// returned state equals the input, timestamps included, so replayed events
// are harmless. A real completion appends the id, stamps LastCompletedAt
// (and StartedAt on the first-ever completion), and recomputes
// CurrentLevel, which never decreases.
func MarkComplete(cat *catalog.Catalog, s State, lessonID string, now time.Time) (State, error) {
	if _, ok := cat.LessonByID(lessonID); !ok {
		return s, &ErrUnknownLesson{ID: lessonID}
	}

	out := s.clone()
	if out.SchemaVersion == 0 {
		out.SchemaVersion = SchemaVersion
	}

	if out.Completed(lessonID) {
		return out, nil
	}

	out.CompletedIDs = append(out.CompletedIDs, lessonID)
	if out.StartedAt == nil {
		t := now
		out.StartedAt = &t
	}
	t := now
	out.LastCompletedAt = &t

	next := highestUnlocked(cat, out.completedSet())
	if next.Rank() > out.CurrentLevel.Rank() {
		out.CurrentLevel = next
	}

	return out, nil
}
