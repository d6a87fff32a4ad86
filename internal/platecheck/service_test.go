package platecheck

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/kavery/platewise/internal/catalog"
	"github.com/kavery/platewise/internal/llm"
	"github.com/kavery/platewise/internal/store"
)

func testCatalog() *catalog.Catalog {
	return catalog.NewFrom(catalog.Content{
		Reactions: []catalog.Reaction{
			{ID: "r-perfect", Type: catalog.ReactionPerfect, Text: "Nailed it!"},
			{ID: "r-meh", Type: catalog.ReactionMeh, Text: "Solid protein, but where are the plants?"},
			{ID: "r-oops", Type: catalog.ReactionOops, Text: "We'll get it next meal."},
		},
	})
}

// fakeEvents records appended plate checks in memory.
type fakeEvents struct {
	store.EventRepo
	plateChecks []store.PlateCheckEventData
	appendErr   error
}

func (f *fakeEvents) AppendPlateCheck(_ context.Context, data store.PlateCheckEventData) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.plateChecks = append(f.plateChecks, data)
	return nil
}

func testImage() llm.Image {
	return llm.Image{MediaType: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff}}
}

func TestCheck_BalancedPlate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"has_protein":true,"has_plants":true,"suggestion":""}`)},
	)
	events := &fakeEvents{}
	svc := NewService(mock, testCatalog(), events, DefaultServiceConfig())

	result, err := svc.Check(context.Background(), "local", testImage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Analysis.HasProtein || !result.Analysis.HasPlants {
		t.Fatalf("unexpected analysis: %+v", result.Analysis)
	}
	if result.Reaction.Type != catalog.ReactionPerfect {
		t.Fatalf("expected perfect reaction, got %q", result.Reaction.Type)
	}
	if result.Suggestion != "" {
		t.Fatalf("expected no suggestion for balanced plate, got %q", result.Suggestion)
	}
	if result.CheckID == "" {
		t.Fatal("expected a check ID")
	}
}

func TestCheck_ProteinOnlyGetsMeh(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"has_protein":true,"has_plants":false,"suggestion":"add some spinach"}`)},
	)
	svc := NewService(mock, testCatalog(), nil, DefaultServiceConfig())

	result, err := svc.Check(context.Background(), "local", testImage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Reaction.Type != catalog.ReactionMeh {
		t.Fatalf("expected meh reaction, got %q", result.Reaction.Type)
	}
	if result.Suggestion != "add some spinach" {
		t.Fatalf("unexpected suggestion: %q", result.Suggestion)
	}
}

func TestCheck_NoProteinGetsOops(t *testing.T) {
	tests := []struct {
		name      string
		hasPlants bool
	}{
		{"no protein no plants", false},
		{"plants without protein", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := json.RawMessage(`{"has_protein":false,"has_plants":` + boolJSON(tt.hasPlants) + `,"suggestion":""}`)
			mock := llm.NewMockProvider(llm.MockResponse{Content: content})
			svc := NewService(mock, testCatalog(), nil, DefaultServiceConfig())

			result, err := svc.Check(context.Background(), "local", testImage())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Reaction.Type != catalog.ReactionOops {
				t.Fatalf("expected oops reaction, got %q", result.Reaction.Type)
			}
		})
	}
}

func boolJSON(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func TestCheck_FallbackSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{
			name:     "missing protein",
			response: `{"has_protein":false,"has_plants":true,"suggestion":""}`,
			want:     fallbackProteinSuggestion,
		},
		{
			name:     "missing plants",
			response: `{"has_protein":true,"has_plants":false,"suggestion":""}`,
			want:     fallbackPlantsSuggestion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.response)})
			svc := NewService(mock, testCatalog(), nil, DefaultServiceConfig())

			result, err := svc.Check(context.Background(), "local", testImage())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Suggestion != tt.want {
				t.Fatalf("suggestion = %q, want %q", result.Suggestion, tt.want)
			}
		})
	}
}

func TestCheck_RecordsEvent(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"has_protein":true,"has_plants":false,"suggestion":"add greens"}`)},
	)
	events := &fakeEvents{}
	svc := NewService(mock, testCatalog(), events, DefaultServiceConfig())

	result, err := svc.Check(context.Background(), "alice", testImage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events.plateChecks) != 1 {
		t.Fatalf("expected 1 recorded check, got %d", len(events.plateChecks))
	}
	got := events.plateChecks[0]
	if got.CheckID != result.CheckID {
		t.Fatalf("check ID mismatch: %q vs %q", got.CheckID, result.CheckID)
	}
	if got.UserID != "alice" {
		t.Fatalf("expected user 'alice', got %q", got.UserID)
	}
	if got.ReactionType != string(catalog.ReactionMeh) {
		t.Fatalf("expected meh, got %q", got.ReactionType)
	}
	if got.Suggestion != "add greens" {
		t.Fatalf("unexpected suggestion: %q", got.Suggestion)
	}
}

func TestCheck_AppendFailureDoesNotFailCheck(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"has_protein":true,"has_plants":true,"suggestion":""}`)},
	)
	events := &fakeEvents{appendErr: errors.New("disk full")}
	svc := NewService(mock, testCatalog(), events, DefaultServiceConfig())

	if _, err := svc.Check(context.Background(), "local", testImage()); err != nil {
		t.Fatalf("append failure should not fail the check: %v", err)
	}
}

func TestCheck_ProviderErrorWrapped(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	svc := NewService(mock, testCatalog(), nil, DefaultServiceConfig())

	_, err := svc.Check(context.Background(), "local", testImage())
	if err == nil {
		t.Fatal("expected error")
	}
	var analysisErr *ErrAnalysisFailed
	if !errors.As(err, &analysisErr) {
		t.Fatalf("expected ErrAnalysisFailed, got: %T", err)
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got: %v", err)
	}
}

func TestCheck_SendsImageWithPurpose(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"has_protein":true,"has_plants":true,"suggestion":""}`)},
	)
	svc := NewService(mock, testCatalog(), nil, DefaultServiceConfig())

	if _, err := svc.Check(context.Background(), "local", testImage()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "plate-analysis" {
		t.Fatal("expected plate-analysis schema on the request")
	}
	if len(req.Messages) != 1 || req.Messages[0].Image == nil {
		t.Fatal("expected the image to be attached to the request")
	}
	if req.Messages[0].Image.MediaType != "image/jpeg" {
		t.Fatalf("unexpected media type: %q", req.Messages[0].Image.MediaType)
	}
}
