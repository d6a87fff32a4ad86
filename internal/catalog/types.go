package catalog

// Level represents a mastery level in the lesson curriculum.
// Levels are totally ordered: foundation < intermediate < advanced.
type Level string

const (
	LevelFoundation   Level = "foundation"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// AllLevels returns all levels in unlock order.
func AllLevels() []Level {
	return []Level{LevelFoundation, LevelIntermediate, LevelAdvanced}
}

// Rank returns the level's position in the unlock order, or -1 if unknown.
func (l Level) Rank() int {
	switch l {
	case LevelFoundation:
		return 0
	case LevelIntermediate:
		return 1
	case LevelAdvanced:
		return 2
	default:
		return -1
	}
}

// DisplayName returns a human-readable label for the level.
func (l Level) DisplayName() string {
	switch l {
	case LevelFoundation:
		return "Foundation"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	default:
		return string(l)
	}
}

// Category tags lessons and tactics by the habit area they address.
type Category string

const (
	CategoryProtein  Category = "protein"
	CategoryPlants   Category = "plants"
	CategoryCravings Category = "cravings"
	CategoryRoutine  Category = "routine"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{CategoryProtein, CategoryPlants, CategoryCravings, CategoryRoutine}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryProtein:
		return "Protein"
	case CategoryPlants:
		return "Plants"
	case CategoryCravings:
		return "Cravings"
	case CategoryRoutine:
		return "Routine"
	default:
		return string(c)
	}
}

// LessonParagraphs is the fixed number of body paragraphs per lesson.
const LessonParagraphs = 3

// Lesson is a single curriculum lesson. IDs are stable across releases —
// they are used as persistence keys in the journey store.
type Lesson struct {
	ID         string
	Title      string
	Subtitle   string
	Paragraphs [LessonParagraphs]string
	Category   Category
	Level      Level
}

// Tactic is a small actionable habit suggestion.
type Tactic struct {
	ID       string
	Title    string
	Body     string
	Category Category
}

// Drop is a one-sentence daily nutrition insight.
type Drop struct {
	ID   string
	Text string
}

// GoldenRule is one of the core eating principles shown in rotation.
type GoldenRule struct {
	ID    string
	Title string
	Body  string
}

// ReactionType classifies a plate check outcome.
type ReactionType string

const (
	ReactionPerfect ReactionType = "perfect"
	ReactionMeh     ReactionType = "meh"
	ReactionOops    ReactionType = "oops"
)

// AllReactionTypes returns all reaction types.
func AllReactionTypes() []ReactionType {
	return []ReactionType{ReactionPerfect, ReactionMeh, ReactionOops}
}

// Reaction is one coaching line shown after a plate check. Several
// reactions share a type; one is picked at random per check.
type Reaction struct {
	ID   string
	Type ReactionType
	Text string
}
