package coach

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/kavery/platewise/internal/catalog"
	"github.com/kavery/platewise/internal/llm"
)

func testCatalog() *catalog.Catalog {
	return catalog.NewFrom(catalog.Content{
		GoldenRules: []catalog.GoldenRule{
			{ID: "gr-protein", Title: "Protein anchors the plate", Body: "Start every meal by picking the protein."},
			{ID: "gr-plants", Title: "Half the plate is plants", Body: "Vegetables and fruit fill half of every plate."},
		},
	})
}

func TestAsk_ReturnsReply(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"answer":"Start with the protein, then fill half with veggies."}`)},
	)
	svc := NewService(mock, testCatalog(), DefaultConfig())

	reply, err := svc.Ask(context.Background(), "What should dinner look like?", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Answer != "Start with the protein, then fill half with veggies." {
		t.Fatalf("unexpected answer: %q", reply.Answer)
	}
}

func TestAsk_SystemPromptIncludesGoldenRules(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"answer":"ok"}`)},
	)
	svc := NewService(mock, testCatalog(), DefaultConfig())

	if _, err := svc.Ask(context.Background(), "hi", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if !strings.Contains(req.System, "Protein anchors the plate") {
		t.Fatal("system prompt should include the first golden rule")
	}
	if !strings.Contains(req.System, "Half the plate is plants") {
		t.Fatal("system prompt should include the second golden rule")
	}
}

func TestAsk_CarriesHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"answer":"ok"}`)},
	)
	svc := NewService(mock, testCatalog(), DefaultConfig())

	history := []Turn{
		{Question: "What's a good breakfast?", Answer: "Eggs and fruit."},
	}
	if _, err := svc.Ask(context.Background(), "And lunch?", history); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs := mock.Calls[0].Messages
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].Role != llm.RoleUser || msgs[0].Content != "What's a good breakfast?" {
		t.Fatalf("unexpected first message: %+v", msgs[0])
	}
	if msgs[1].Role != llm.RoleAssistant || msgs[1].Content != "Eggs and fruit." {
		t.Fatalf("unexpected second message: %+v", msgs[1])
	}
	if msgs[2].Content != "And lunch?" {
		t.Fatalf("unexpected final message: %+v", msgs[2])
	}
}

func TestAsk_TruncatesHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"answer":"ok"}`)},
	)
	cfg := DefaultConfig()
	cfg.MaxHistory = 2
	svc := NewService(mock, testCatalog(), cfg)

	history := []Turn{
		{Question: "q1", Answer: "a1"},
		{Question: "q2", Answer: "a2"},
		{Question: "q3", Answer: "a3"},
	}
	if _, err := svc.Ask(context.Background(), "q4", history); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2 kept turns (4 messages) plus the new question.
	msgs := mock.Calls[0].Messages
	if len(msgs) != 5 {
		t.Fatalf("expected 5 messages, got %d", len(msgs))
	}
	if msgs[0].Content != "q2" {
		t.Fatalf("expected oldest kept turn to be q2, got %q", msgs[0].Content)
	}
}

func TestAsk_ProviderErrorWrapped(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrRateLimit{}},
	)
	svc := NewService(mock, testCatalog(), DefaultConfig())

	_, err := svc.Ask(context.Background(), "hi", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var askErr *ErrAskFailed
	if !errors.As(err, &askErr) {
		t.Fatalf("expected ErrAskFailed, got: %T", err)
	}
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected wrapped ErrRateLimit, got: %v", err)
	}
}
