// Package reaction turns a plate check result into a coaching reaction.
package reaction

import "github.com/kavery/platewise/internal/catalog"

// Classify maps the two plate check booleans to a reaction type.
//
// The table is deliberately asymmetric: protein dominates, so a plate with
// plants but no protein still classifies as oops. This mirrors the coaching
// policy that protein is the anchor habit — it is not a weighted score.
//
//	protein  plants  → type
//	true     true    → perfect
//	true     false   → meh
//	false    any     → oops
func Classify(hasProtein, hasPlants bool) catalog.ReactionType {
	switch {
	case hasProtein && hasPlants:
		return catalog.ReactionPerfect
	case hasProtein:
		return catalog.ReactionMeh
	default:
		return catalog.ReactionOops
	}
}
