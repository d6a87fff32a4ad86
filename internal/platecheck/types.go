package platecheck

import (
	"fmt"

	"github.com/kavery/platewise/internal/catalog"
)

// Analysis is what the vision model reports about a meal photo.
type Analysis struct {
	HasProtein bool   `json:"has_protein"`
	HasPlants  bool   `json:"has_plants"`
	Suggestion string `json:"suggestion"`
}

// Result is the outcome of a plate check: the model's analysis plus the
// reaction chosen for it.
type Result struct {
	CheckID    string
	Analysis   Analysis
	Reaction   catalog.Reaction
	Suggestion string
}

// ErrAnalysisFailed wraps failures from the vision model.
type ErrAnalysisFailed struct {
	Err error
}

func (e *ErrAnalysisFailed) Error() string {
	return fmt.Sprintf("plate analysis failed: %v", e.Err)
}

func (e *ErrAnalysisFailed) Unwrap() error {
	return e.Err
}
