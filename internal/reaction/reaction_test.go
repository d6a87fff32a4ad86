package reaction

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/kavery/platewise/internal/catalog"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		protein bool
		plants  bool
		want    catalog.ReactionType
	}{
		{true, true, catalog.ReactionPerfect},
		{true, false, catalog.ReactionMeh},
		{false, true, catalog.ReactionOops}, // plants alone don't rescue the plate
		{false, false, catalog.ReactionOops},
	}

	for _, tt := range tests {
		got := Classify(tt.protein, tt.plants)
		if got != tt.want {
			t.Errorf("Classify(%v, %v) = %q, want %q", tt.protein, tt.plants, got, tt.want)
		}
	}
}

func TestPickIsDeterministicWithSeededRand(t *testing.T) {
	cat := catalog.New()

	a := NewPicker(cat, rand.New(rand.NewPCG(7, 7)))
	b := NewPicker(cat, rand.New(rand.NewPCG(7, 7)))

	for range 20 {
		ra, err := a.Pick(catalog.ReactionMeh)
		if err != nil {
			t.Fatal(err)
		}
		rb, err := b.Pick(catalog.ReactionMeh)
		if err != nil {
			t.Fatal(err)
		}
		if ra.ID != rb.ID {
			t.Fatalf("same seed diverged: %q vs %q", ra.ID, rb.ID)
		}
		if ra.Type != catalog.ReactionMeh {
			t.Fatalf("picked %q reaction for meh", ra.Type)
		}
	}
}

func TestPickCoversAllEntries(t *testing.T) {
	cat := catalog.New()
	p := NewPicker(cat, rand.New(rand.NewPCG(1, 2)))

	entries := cat.ReactionsByType(catalog.ReactionOops)
	seen := make(map[string]bool)
	for range 200 {
		r, err := p.Pick(catalog.ReactionOops)
		if err != nil {
			t.Fatal(err)
		}
		seen[r.ID] = true
	}
	if len(seen) != len(entries) {
		t.Errorf("200 picks hit %d of %d oops reactions", len(seen), len(entries))
	}
}

func TestPickUnknownType(t *testing.T) {
	p := NewPicker(catalog.New(), rand.New(rand.NewPCG(0, 0)))

	_, err := p.Pick("delighted")
	var noReactions *ErrNoReactions
	if !errors.As(err, &noReactions) {
		t.Fatalf("error = %v, want ErrNoReactions", err)
	}
	if noReactions.Type != "delighted" {
		t.Errorf("error type = %q, want %q", noReactions.Type, "delighted")
	}
}

func TestReact(t *testing.T) {
	p := NewPicker(catalog.New(), rand.New(rand.NewPCG(3, 3)))

	r, err := p.React(false, true)
	if err != nil {
		t.Fatal(err)
	}
	if r.Type != catalog.ReactionOops {
		t.Errorf("React(false, true) type = %q, want oops", r.Type)
	}
}
