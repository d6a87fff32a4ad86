package catalog

import "slices"

// Catalog holds all static content with precomputed lookup indexes.
// It is built once at startup and never mutated afterwards; components
// receive it by reference.
type Catalog struct {
	lessons   []Lesson
	tactics   []Tactic
	drops     []Drop
	rules     []GoldenRule
	reactions []Reaction
	lines     []string

	lessonByID        map[string]*Lesson
	lessonsByLevel    map[Level][]Lesson
	lessonsByCategory map[Category][]Lesson
	tacticByID        map[string]*Tactic
	tacticsByCategory map[Category][]Tactic
	reactionsByType   map[ReactionType][]Reaction
}

// Content groups the record slices a catalog is built from. Production
// uses the seed data; tests inject fixtures.
type Content struct {
	Lessons      []Lesson
	Tactics      []Tactic
	Drops        []Drop
	GoldenRules  []GoldenRule
	Reactions    []Reaction
	LoadingLines []string
}

// New builds the catalog from the seed data.
func New() *Catalog {
	return NewFrom(Content{
		Lessons:      seedLessons,
		Tactics:      seedTactics,
		Drops:        seedDrops,
		GoldenRules:  seedGoldenRules,
		Reactions:    seedReactions,
		LoadingLines: seedLoadingLines,
	})
}

// NewFrom builds a catalog from explicit content.
func NewFrom(content Content) *Catalog {
	return build(content.Lessons, content.Tactics, content.Drops, content.GoldenRules, content.Reactions, content.LoadingLines)
}

// build constructs a catalog with all indexes from the given records.
// Grouped indexes preserve catalog-definition order.
func build(lessons []Lesson, tactics []Tactic, drops []Drop, rules []GoldenRule, reactions []Reaction, lines []string) *Catalog {
	c := &Catalog{
		lessons:   lessons,
		tactics:   tactics,
		drops:     drops,
		rules:     rules,
		reactions: reactions,
		lines:     lines,

		lessonByID:        make(map[string]*Lesson, len(lessons)),
		lessonsByLevel:    make(map[Level][]Lesson),
		lessonsByCategory: make(map[Category][]Lesson),
		tacticByID:        make(map[string]*Tactic, len(tactics)),
		tacticsByCategory: make(map[Category][]Tactic),
		reactionsByType:   make(map[ReactionType][]Reaction),
	}

	for i := range c.lessons {
		l := &c.lessons[i]
		c.lessonByID[l.ID] = l
		c.lessonsByLevel[l.Level] = append(c.lessonsByLevel[l.Level], *l)
		c.lessonsByCategory[l.Category] = append(c.lessonsByCategory[l.Category], *l)
	}

	for i := range c.tactics {
		t := &c.tactics[i]
		c.tacticByID[t.ID] = t
		c.tacticsByCategory[t.Category] = append(c.tacticsByCategory[t.Category], *t)
	}

	for _, r := range c.reactions {
		c.reactionsByType[r.Type] = append(c.reactionsByType[r.Type], r)
	}

	return c
}

// Lessons returns all lessons in curriculum order (levels in unlock order,
// lessons in definition order within a level).
func (c *Catalog) Lessons() []Lesson {
	return slices.Clone(c.lessons)
}

// LessonByID returns the lesson with the given id. Absence is expected —
// persisted ids can reference removed content — so it reports via ok.
func (c *Catalog) LessonByID(id string) (Lesson, bool) {
	l, ok := c.lessonByID[id]
	if !ok {
		return Lesson{}, false
	}
	return *l, true
}

// LessonsByLevel returns the lessons of a level in curriculum order.
func (c *Catalog) LessonsByLevel(level Level) []Lesson {
	return slices.Clone(c.lessonsByLevel[level])
}

// LessonsByCategory returns the lessons tagged with a category in curriculum order.
func (c *Catalog) LessonsByCategory(cat Category) []Lesson {
	return slices.Clone(c.lessonsByCategory[cat])
}

// Tactics returns all tactics in definition order.
func (c *Catalog) Tactics() []Tactic {
	return slices.Clone(c.tactics)
}

// TacticByID returns the tactic with the given id.
func (c *Catalog) TacticByID(id string) (Tactic, bool) {
	t, ok := c.tacticByID[id]
	if !ok {
		return Tactic{}, false
	}
	return *t, true
}

// TacticsByCategory returns the tactics of a category in definition order.
func (c *Catalog) TacticsByCategory(cat Category) []Tactic {
	return slices.Clone(c.tacticsByCategory[cat])
}

// Drops returns all daily drops in definition order.
func (c *Catalog) Drops() []Drop {
	return slices.Clone(c.drops)
}

// GoldenRules returns all golden rules in definition order.
func (c *Catalog) GoldenRules() []GoldenRule {
	return slices.Clone(c.rules)
}

// Reactions returns all reactions in definition order.
func (c *Catalog) Reactions() []Reaction {
	return slices.Clone(c.reactions)
}

// ReactionsByType returns the reactions of a type in definition order.
func (c *Catalog) ReactionsByType(t ReactionType) []Reaction {
	return slices.Clone(c.reactionsByType[t])
}

// LoadingLines returns the loading lines shown while a plate check runs.
func (c *Catalog) LoadingLines() []string {
	return slices.Clone(c.lines)
}
