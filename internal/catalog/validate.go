package catalog

import (
	"fmt"
	"strings"
)

// Validate runs the catalog self-check. It is called once at process init;
// a failure here is a build-time data error, not a runtime condition, so
// callers should treat any returned error as fatal.
func (c *Catalog) Validate() error {
	var problems []string

	if len(c.lessons) == 0 {
		problems = append(problems, "lesson catalog is empty")
	}
	if len(c.rules) == 0 {
		problems = append(problems, "golden rule catalog is empty")
	}
	if len(c.drops) == 0 {
		problems = append(problems, "drop catalog is empty")
	}
	if len(c.lines) == 0 {
		problems = append(problems, "loading line catalog is empty")
	}

	problems = append(problems, c.checkLessonIDs()...)
	problems = append(problems, c.checkLessonOrder()...)
	problems = append(problems, c.checkReactions()...)

	seen := make(map[string]bool, len(c.tactics))
	for _, t := range c.tactics {
		if t.ID == "" {
			problems = append(problems, "tactic with empty id")
			continue
		}
		if seen[t.ID] {
			problems = append(problems, fmt.Sprintf("duplicate tactic id %q", t.ID))
		}
		seen[t.ID] = true
	}

	if len(problems) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

func (c *Catalog) checkLessonIDs() []string {
	var problems []string
	seen := make(map[string]bool, len(c.lessons))
	for _, l := range c.lessons {
		if l.ID == "" {
			problems = append(problems, "lesson with empty id")
			continue
		}
		if seen[l.ID] {
			problems = append(problems, fmt.Sprintf("duplicate lesson id %q", l.ID))
		}
		seen[l.ID] = true

		if l.Level.Rank() < 0 {
			problems = append(problems, fmt.Sprintf("lesson %q has unknown level %q", l.ID, l.Level))
		}
		for i, p := range l.Paragraphs {
			if p == "" {
				problems = append(problems, fmt.Sprintf("lesson %q paragraph %d is empty", l.ID, i+1))
			}
		}
	}
	return problems
}

// checkLessonOrder verifies the lesson slice is ordered by level rank.
// The progression engine relies on this to walk the curriculum front to back.
func (c *Catalog) checkLessonOrder() []string {
	var problems []string
	prev := -1
	for _, l := range c.lessons {
		r := l.Level.Rank()
		if r < prev {
			problems = append(problems, fmt.Sprintf("lesson %q out of level order", l.ID))
		}
		if r > prev {
			prev = r
		}
	}

	for _, level := range AllLevels() {
		if len(c.lessonsByLevel[level]) == 0 {
			problems = append(problems, fmt.Sprintf("level %q has no lessons", level))
		}
	}
	return problems
}

// checkReactions enforces the picker's data invariant: every reaction
// type has at least one entry, so Pick never fails for a valid type.
func (c *Catalog) checkReactions() []string {
	var problems []string
	for _, t := range AllReactionTypes() {
		if len(c.reactionsByType[t]) == 0 {
			problems = append(problems, fmt.Sprintf("no reactions for type %q", t))
		}
	}
	for _, r := range c.reactions {
		switch r.Type {
		case ReactionPerfect, ReactionMeh, ReactionOops:
		default:
			problems = append(problems, fmt.Sprintf("reaction %q has unknown type %q", r.ID, r.Type))
		}
	}
	return problems
}
