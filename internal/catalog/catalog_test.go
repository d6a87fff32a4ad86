package catalog

import "testing"

func TestSeedCatalogValidates(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Fatalf("seed catalog failed validation: %v", err)
	}
}

func TestLessonByID(t *testing.T) {
	c := New()

	l, ok := c.LessonByID("fnd-protein-anchor")
	if !ok {
		t.Fatal("expected to find fnd-protein-anchor")
	}
	if l.Level != LevelFoundation {
		t.Errorf("level = %q, want %q", l.Level, LevelFoundation)
	}

	if _, ok := c.LessonByID("nope"); ok {
		t.Error("expected miss for unknown id")
	}
	if _, ok := c.LessonByID(""); ok {
		t.Error("expected miss for empty id")
	}
}

func TestLessonsAreLevelOrdered(t *testing.T) {
	c := New()
	prev := 0
	for _, l := range c.Lessons() {
		r := l.Level.Rank()
		if r < prev {
			t.Fatalf("lesson %q at rank %d after rank %d", l.ID, r, prev)
		}
		prev = r
	}
}

func TestLessonsByLevelCoversAllLessons(t *testing.T) {
	c := New()
	total := 0
	for _, level := range AllLevels() {
		ls := c.LessonsByLevel(level)
		if len(ls) == 0 {
			t.Errorf("level %q has no lessons", level)
		}
		for _, l := range ls {
			if l.Level != level {
				t.Errorf("lesson %q in level %q bucket has level %q", l.ID, level, l.Level)
			}
		}
		total += len(ls)
	}
	if total != len(c.Lessons()) {
		t.Errorf("level buckets hold %d lessons, catalog has %d", total, len(c.Lessons()))
	}
}

func TestTacticsByCategoryPreservesOrder(t *testing.T) {
	c := New()

	for _, cat := range AllCategories() {
		got := c.TacticsByCategory(cat)
		var want []Tactic
		for _, tac := range c.Tactics() {
			if tac.Category == cat {
				want = append(want, tac)
			}
		}
		if len(got) != len(want) {
			t.Fatalf("category %q: got %d tactics, want %d", cat, len(got), len(want))
		}
		for i := range got {
			if got[i].ID != want[i].ID {
				t.Errorf("category %q index %d: got %q, want %q", cat, i, got[i].ID, want[i].ID)
			}
		}
	}

	if got := c.TacticsByCategory("unknown"); len(got) != 0 {
		t.Errorf("unknown category returned %d tactics", len(got))
	}
}

func TestTacticByID(t *testing.T) {
	c := New()

	tac, ok := c.TacticByID("tac-breakfast-eggs")
	if !ok {
		t.Fatal("expected to find tac-breakfast-eggs")
	}
	if tac.Category != CategoryProtein {
		t.Errorf("category = %q, want %q", tac.Category, CategoryProtein)
	}

	if _, ok := c.TacticByID("nope"); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestLessonsByCategoryCoversAllLessons(t *testing.T) {
	c := New()
	total := 0
	for _, cat := range AllCategories() {
		for _, l := range c.LessonsByCategory(cat) {
			if l.Category != cat {
				t.Errorf("lesson %q in category %q bucket has category %q", l.ID, cat, l.Category)
			}
		}
		total += len(c.LessonsByCategory(cat))
	}
	if total != len(c.Lessons()) {
		t.Errorf("category buckets hold %d lessons, catalog has %d", total, len(c.Lessons()))
	}

	if got := c.LessonsByCategory("unknown"); len(got) != 0 {
		t.Errorf("unknown category returned %d lessons", len(got))
	}
}

func TestReactionsByType(t *testing.T) {
	c := New()
	for _, rt := range AllReactionTypes() {
		rs := c.ReactionsByType(rt)
		if len(rs) == 0 {
			t.Errorf("no reactions for %q", rt)
		}
		for _, r := range rs {
			if r.Type != rt {
				t.Errorf("reaction %q in %q bucket has type %q", r.ID, rt, r.Type)
			}
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := New()

	ls := c.Lessons()
	origID := ls[0].ID
	ls[0].ID = "mutated"

	again, ok := c.LessonByID(origID)
	if !ok || again.ID != origID {
		t.Error("mutating a returned slice leaked into the catalog")
	}
}
