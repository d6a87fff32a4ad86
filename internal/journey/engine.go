package journey

import "github.com/kavery/platewise/internal/catalog"

// LevelSummary is the per-level progress rollup shown in the curriculum view.
type LevelSummary struct {
	Level          catalog.Level
	CompletedCount int
	TotalCount     int
	Locked         bool
}

// Statuses derives the status of every catalog lesson from the journey state.
//
// Exactly one lesson is current across the whole catalog: the first
// incomplete lesson, in catalog order, of the lowest unlocked level that
// still has incomplete lessons. Incomplete lessons in higher unlocked
// levels are available, and lessons in locked levels are locked.
func Statuses(cat *catalog.Catalog, s State) map[string]Status {
	done := s.completedSet()
	unlocked := unlockedLevels(cat, done)

	statuses := make(map[string]Status, len(cat.Lessons()))
	currentAssigned := false
	for _, l := range cat.Lessons() {
		switch {
		case done[l.ID]:
			statuses[l.ID] = StatusCompleted
		case !unlocked[l.Level]:
			statuses[l.ID] = StatusLocked
		case !currentAssigned:
			// Catalog order is level order, so the first incomplete
			// unlocked lesson is in the lowest such level.
			statuses[l.ID] = StatusCurrent
			currentAssigned = true
		default:
			statuses[l.ID] = StatusAvailable
		}
	}
	return statuses
}

// Summaries returns the per-level rollups in unlock order.
func Summaries(cat *catalog.Catalog, s State) []LevelSummary {
	done := s.completedSet()
	unlocked := unlockedLevels(cat, done)

	out := make([]LevelSummary, 0, len(catalog.AllLevels()))
	for _, level := range catalog.AllLevels() {
		lessons := cat.LessonsByLevel(level)
		sum := LevelSummary{
			Level:      level,
			TotalCount: len(lessons),
			Locked:     !unlocked[level],
		}
		for _, l := range lessons {
			if done[l.ID] {
				sum.CompletedCount++
			}
		}
		out = append(out, sum)
	}
	return out
}

// unlockedLevels applies the strict prerequisite chain: foundation is
// always unlocked, and each later level unlocks only when every lesson of
// the previous level is completed. No partial credit, no skipping.
func unlockedLevels(cat *catalog.Catalog, done map[string]bool) map[catalog.Level]bool {
	unlocked := make(map[catalog.Level]bool, len(catalog.AllLevels()))
	open := true
	for _, level := range catalog.AllLevels() {
		unlocked[level] = open
		if !open {
			continue
		}
		for _, l := range cat.LessonsByLevel(level) {
			if !done[l.ID] {
				open = false
				break
			}
		}
	}
	return unlocked
}

// highestUnlocked returns the highest unlocked level.
func highestUnlocked(cat *catalog.Catalog, done map[string]bool) catalog.Level {
	unlocked := unlockedLevels(cat, done)
	highest := catalog.LevelFoundation
	for _, level := range catalog.AllLevels() {
		if unlocked[level] {
			highest = level
		}
	}
	return highest
}
