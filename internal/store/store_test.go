package store

import (
	"context"
	"testing"
	"time"

	"github.com/kavery/platewise/internal/catalog"
	"github.com/kavery/platewise/internal/journey"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestJourneyLoadMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.JourneyRepo()

	state, err := repo.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state != nil {
		t.Errorf("expected nil state for unknown user, got %+v", state)
	}
}

func TestJourneySaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.JourneyRepo()
	ctx := context.Background()

	started := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	last := started.Add(48 * time.Hour)
	in := journey.State{
		SchemaVersion:   journey.SchemaVersion,
		CompletedIDs:    []string{"fnd-protein-anchor", "fnd-half-plate-plants"},
		CurrentLevel:    catalog.LevelFoundation,
		StartedAt:       &started,
		LastCompletedAt: &last,
	}

	if err := repo.Save(ctx, "alex", in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := repo.Load(ctx, "alex")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out == nil {
		t.Fatal("expected state after save")
	}
	if out.SchemaVersion != journey.SchemaVersion {
		t.Errorf("schema version = %d", out.SchemaVersion)
	}
	if len(out.CompletedIDs) != 2 || out.CompletedIDs[0] != "fnd-protein-anchor" {
		t.Errorf("completed ids = %v", out.CompletedIDs)
	}
	if out.CurrentLevel != catalog.LevelFoundation {
		t.Errorf("current level = %q", out.CurrentLevel)
	}
	if out.StartedAt == nil || !out.StartedAt.Equal(started) {
		t.Errorf("started at = %v", out.StartedAt)
	}
}

func TestJourneySaveUpserts(t *testing.T) {
	s := openTestStore(t)
	repo := s.JourneyRepo()
	ctx := context.Background()

	first := journey.NewState()
	if err := repo.Save(ctx, "alex", first); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := first
	second.CompletedIDs = []string{"fnd-plate-method"}
	if err := repo.Save(ctx, "alex", second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	out, err := repo.Load(ctx, "alex")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out.CompletedIDs) != 1 || out.CompletedIDs[0] != "fnd-plate-method" {
		t.Errorf("completed ids = %v, want updated row", out.CompletedIDs)
	}

	n, err := s.Client().Journey.Query().Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("journey rows = %d, want 1 after upsert", n)
	}
}

func TestJourneyDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.JourneyRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, "alex", journey.NewState()); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, "alex"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	state, err := repo.Load(ctx, "alex")
	if err != nil {
		t.Fatal(err)
	}
	if state != nil {
		t.Error("state survived delete")
	}

	// Deleting a missing row is fine.
	if err := repo.Delete(ctx, "alex"); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestEventSequenceSpansTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendCompletion(ctx, CompletionEventData{
		UserID:   "alex",
		LessonID: "fnd-protein-anchor",
		Level:    "foundation",
	})
	if err != nil {
		t.Fatalf("append completion: %v", err)
	}

	err = repo.AppendPlateCheck(ctx, PlateCheckEventData{
		CheckID:      "c1",
		UserID:       "alex",
		HasProtein:   true,
		HasPlants:    false,
		ReactionType: "meh",
		ReactionID:   "react-meh-1",
	})
	if err != nil {
		t.Fatalf("append plate check: %v", err)
	}

	checks, err := repo.QueryPlateChecks(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query plate checks: %v", err)
	}
	if len(checks) != 1 {
		t.Fatalf("got %d plate checks, want 1", len(checks))
	}
	// Completion consumed sequence 1, so the plate check gets 2.
	if checks[0].Sequence != 2 {
		t.Errorf("plate check sequence = %d, want 2", checks[0].Sequence)
	}
}

func TestQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := range 3 {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      "plate-check",
			InputTokens:  10 + i,
			OutputTokens: 5,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Sequence < events[1].Sequence {
		t.Error("events not newest-first")
	}
	if events[0].InputTokens != 12 {
		t.Errorf("newest event input tokens = %d, want 12", events[0].InputTokens)
	}
}
