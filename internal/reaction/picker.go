package reaction

import (
	"fmt"
	"math/rand/v2"

	"github.com/kavery/platewise/internal/catalog"
)

// ErrNoReactions indicates the catalog has no entries for a reaction type.
// Catalog validation at startup asserts every type has at least one entry,
// so hitting this at call time means the check was skipped.
type ErrNoReactions struct {
	Type catalog.ReactionType
}

func (e *ErrNoReactions) Error() string {
	return fmt.Sprintf("no reactions for type %q", e.Type)
}

// Picker selects a reaction line uniformly at random within a type.
type Picker struct {
	cat *catalog.Catalog
	rng *rand.Rand
}

// NewPicker creates a picker. rng may be nil, in which case the shared
// seeded source is used; tests pass a fixed-seed rand for determinism.
func NewPicker(cat *catalog.Catalog, rng *rand.Rand) *Picker {
	return &Picker{cat: cat, rng: rng}
}

// Pick returns a uniformly random reaction of the given type.
func (p *Picker) Pick(t catalog.ReactionType) (catalog.Reaction, error) {
	rs := p.cat.ReactionsByType(t)
	if len(rs) == 0 {
		return catalog.Reaction{}, &ErrNoReactions{Type: t}
	}
	return rs[p.intN(len(rs))], nil
}

// React classifies the plate booleans and picks a matching line in one call.
func (p *Picker) React(hasProtein, hasPlants bool) (catalog.Reaction, error) {
	return p.Pick(Classify(hasProtein, hasPlants))
}

func (p *Picker) intN(n int) int {
	if p.rng != nil {
		return p.rng.IntN(n)
	}
	return rand.IntN(n)
}
