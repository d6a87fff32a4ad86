package catalog

import (
	"strings"
	"testing"
)

// minimal valid inputs for building broken variants from.
func validFixture() ([]Lesson, []Tactic, []Drop, []GoldenRule, []Reaction, []string) {
	lessons := []Lesson{
		{ID: "l1", Title: "a", Paragraphs: [3]string{"p", "p", "p"}, Category: CategoryProtein, Level: LevelFoundation},
		{ID: "l2", Title: "b", Paragraphs: [3]string{"p", "p", "p"}, Category: CategoryPlants, Level: LevelIntermediate},
		{ID: "l3", Title: "c", Paragraphs: [3]string{"p", "p", "p"}, Category: CategoryRoutine, Level: LevelAdvanced},
	}
	tactics := []Tactic{{ID: "t1", Title: "t", Body: "b", Category: CategoryProtein}}
	drops := []Drop{{ID: "d1", Text: "x"}}
	rules := []GoldenRule{{ID: "r1", Title: "r", Body: "b"}}
	reactions := []Reaction{
		{ID: "re1", Type: ReactionPerfect, Text: "x"},
		{ID: "re2", Type: ReactionMeh, Text: "x"},
		{ID: "re3", Type: ReactionOops, Text: "x"},
	}
	lines := []string{"loading"}
	return lessons, tactics, drops, rules, reactions, lines
}

func TestValidateAcceptsMinimalCatalog(t *testing.T) {
	c := build(validFixture())
	if err := c.Validate(); err != nil {
		t.Fatalf("valid fixture rejected: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(ls []Lesson, ts []Tactic, ds []Drop, rs []GoldenRule, res []Reaction) ([]Lesson, []Tactic, []Drop, []GoldenRule, []Reaction)
		wantMsg string
	}{
		{
			name: "duplicate lesson id",
			mutate: func(ls []Lesson, ts []Tactic, ds []Drop, rs []GoldenRule, res []Reaction) ([]Lesson, []Tactic, []Drop, []GoldenRule, []Reaction) {
				ls[1].ID = ls[0].ID
				return ls, ts, ds, rs, res
			},
			wantMsg: "duplicate lesson id",
		},
		{
			name: "empty paragraph",
			mutate: func(ls []Lesson, ts []Tactic, ds []Drop, rs []GoldenRule, res []Reaction) ([]Lesson, []Tactic, []Drop, []GoldenRule, []Reaction) {
				ls[0].Paragraphs[2] = ""
				return ls, ts, ds, rs, res
			},
			wantMsg: "paragraph 3 is empty",
		},
		{
			name: "unknown level",
			mutate: func(ls []Lesson, ts []Tactic, ds []Drop, rs []GoldenRule, res []Reaction) ([]Lesson, []Tactic, []Drop, []GoldenRule, []Reaction) {
				ls[0].Level = "expert"
				return ls, ts, ds, rs, res
			},
			wantMsg: "unknown level",
		},
		{
			name: "lessons out of level order",
			mutate: func(ls []Lesson, ts []Tactic, ds []Drop, rs []GoldenRule, res []Reaction) ([]Lesson, []Tactic, []Drop, []GoldenRule, []Reaction) {
				ls[0], ls[2] = ls[2], ls[0]
				return ls, ts, ds, rs, res
			},
			wantMsg: "out of level order",
		},
		{
			name: "missing reaction type",
			mutate: func(ls []Lesson, ts []Tactic, ds []Drop, rs []GoldenRule, res []Reaction) ([]Lesson, []Tactic, []Drop, []GoldenRule, []Reaction) {
				return ls, ts, ds, rs, res[:2] // drops the only oops
			},
			wantMsg: `no reactions for type "oops"`,
		},
		{
			name: "unknown reaction type",
			mutate: func(ls []Lesson, ts []Tactic, ds []Drop, rs []GoldenRule, res []Reaction) ([]Lesson, []Tactic, []Drop, []GoldenRule, []Reaction) {
				res = append(res, Reaction{ID: "re4", Type: "great", Text: "x"})
				return ls, ts, ds, rs, res
			},
			wantMsg: "unknown type",
		},
		{
			name: "duplicate tactic id",
			mutate: func(ls []Lesson, ts []Tactic, ds []Drop, rs []GoldenRule, res []Reaction) ([]Lesson, []Tactic, []Drop, []GoldenRule, []Reaction) {
				ts = append(ts, Tactic{ID: "t1", Title: "dup", Body: "b", Category: CategoryPlants})
				return ls, ts, ds, rs, res
			},
			wantMsg: "duplicate tactic id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls, ts, ds, rs, res, lines := validFixture()
			ls, ts, ds, rs, res = tt.mutate(ls, ts, ds, rs, res)
			err := build(ls, ts, ds, rs, res, lines).Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidateRejectsEmptyCatalogs(t *testing.T) {
	_, ts, ds, rs, res, lines := validFixture()
	err := build(nil, ts, ds, rs, res, lines).Validate()
	if err == nil {
		t.Fatal("expected error for empty lesson catalog")
	}
	if !strings.Contains(err.Error(), "lesson catalog is empty") {
		t.Errorf("unexpected error: %v", err)
	}
}
