// Package journey computes curriculum progress from the lesson catalog and
// a learner's completion history.
//
// The journey state is owned by the store; this package never holds a
// writable copy. Every operation takes the current state as input and
// returns a new one, so callers can invoke it from concurrent events as
// long as writes to the persisted state are serialized.
package journey

import (
	"slices"
	"time"

	"github.com/kavery/platewise/internal/catalog"
)

// SchemaVersion is the persisted state schema version. Bump it when the
// shape of the stored state changes, so old rows can be migrated on load.
const SchemaVersion = 1

// State is a learner's journey through the curriculum.
type State struct {
	SchemaVersion int

	// CompletedIDs lists completed lesson ids in completion order.
	// Set semantics: an id appears at most once.
	CompletedIDs []string

	// CurrentLevel is the highest unlocked level. Monotonically
	// non-decreasing over the journey's lifetime.
	CurrentLevel catalog.Level

	StartedAt       *time.Time
	LastCompletedAt *time.Time
}

// NewState returns the journey state for a learner who hasn't started.
func NewState() State {
	return State{
		SchemaVersion: SchemaVersion,
		CurrentLevel:  catalog.LevelFoundation,
	}
}

// Completed reports whether the lesson id is in the completed set.
func (s State) Completed(id string) bool {
	return slices.Contains(s.CompletedIDs, id)
}

// completedSet returns the completed ids as a set for O(1) membership.
func (s State) completedSet() map[string]bool {
	set := make(map[string]bool, len(s.CompletedIDs))
	for _, id := range s.CompletedIDs {
		set[id] = true
	}
	return set
}

// clone returns a deep copy, so mutations never alias the input state.
func (s State) clone() State {
	out := s
	out.CompletedIDs = slices.Clone(s.CompletedIDs)
	if s.StartedAt != nil {
		t := *s.StartedAt
		out.StartedAt = &t
	}
	if s.LastCompletedAt != nil {
		t := *s.LastCompletedAt
		out.LastCompletedAt = &t
	}
	return out
}
