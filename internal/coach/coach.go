// Package coach answers free-form nutrition questions, grounded in the
// golden rules so advice stays consistent with the curriculum.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/kavery/platewise/internal/catalog"
	"github.com/kavery/platewise/internal/llm"
)

// Config holds configuration for the coach service.
type Config struct {
	MaxTokens   int
	Temperature float64
	MaxHistory  int
}

// DefaultConfig returns sensible defaults. History is capped so long
// conversations don't blow up the prompt.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.7,
		MaxHistory:  10,
	}
}

// Turn is one prior exchange in a coaching conversation.
type Turn struct {
	Question string
	Answer   string
}

// Reply is the coach's answer to a question.
type Reply struct {
	Answer string `json:"answer"`
}

// ReplySchema defines the JSON schema for coach responses.
var ReplySchema = &llm.Schema{
	Name:        "coach-reply",
	Description: "A coaching answer to a nutrition question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{
				"type":        "string",
				"description": "The coaching answer, a few short sentences at most",
			},
		},
		"required":             []any{"answer"},
		"additionalProperties": false,
	},
}

// ErrAskFailed wraps failures from the coaching model.
type ErrAskFailed struct {
	Err error
}

func (e *ErrAskFailed) Error() string {
	return fmt.Sprintf("coach request failed: %v", e.Err)
}

func (e *ErrAskFailed) Unwrap() error {
	return e.Err
}

// Service answers coaching questions using an LLM provider.
type Service struct {
	provider llm.Provider
	cat      *catalog.Catalog
	cfg      Config
}

// NewService creates a coach service.
func NewService(provider llm.Provider, cat *catalog.Catalog, cfg Config) *Service {
	return &Service{provider: provider, cat: cat, cfg: cfg}
}

// Ask answers a question, carrying forward prior turns as context.
func (s *Service) Ask(ctx context.Context, question string, history []Turn) (*Reply, error) {
	ctx = llm.WithPurpose(ctx, "coach")

	system, err := buildSystemPrompt(s.cat.GoldenRules())
	if err != nil {
		return nil, fmt.Errorf("build coach prompt: %w", err)
	}

	if len(history) > s.cfg.MaxHistory {
		history = history[len(history)-s.cfg.MaxHistory:]
	}

	var messages []llm.Message
	for _, turn := range history {
		messages = append(messages,
			llm.Message{Role: llm.RoleUser, Content: turn.Question},
			llm.Message{Role: llm.RoleAssistant, Content: turn.Answer},
		)
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: question})

	req := llm.Request{
		System:      system,
		Messages:    messages,
		Schema:      ReplySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, &ErrAskFailed{Err: err}
	}

	var reply Reply
	if err := json.Unmarshal(resp.Content, &reply); err != nil {
		return nil, &ErrAskFailed{Err: fmt.Errorf("parse coach response: %w", err)}
	}

	return &reply, nil
}

const systemPromptHeader = `You are Platewise, a warm and practical nutrition coach. Answer in a few short sentences. Be encouraging, concrete, and judgment-free. Never give medical advice, calorie targets, or weight-loss plans; if asked, gently redirect to habits.

Ground every answer in these principles:
`

var rulesTemplate = template.Must(template.New("rules").Parse(`{{range .}}- {{.Title}}: {{.Body}}
{{end}}`))

func buildSystemPrompt(rules []catalog.GoldenRule) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(systemPromptHeader)
	if err := rulesTemplate.Execute(&buf, rules); err != nil {
		return "", err
	}
	return buf.String(), nil
}
