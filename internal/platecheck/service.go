package platecheck

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/kavery/platewise/internal/catalog"
	"github.com/kavery/platewise/internal/llm"
	"github.com/kavery/platewise/internal/reaction"
	"github.com/kavery/platewise/internal/store"
)

// Fallback suggestions used when the model returns an empty suggestion
// for an unbalanced plate.
const (
	fallbackProteinSuggestion = "Try adding a protein source — eggs, chicken, beans or yogurt all work."
	fallbackPlantsSuggestion  = "A handful of veggies or a piece of fruit would round this out nicely."
)

// ServiceConfig holds configuration for the plate check service.
type ServiceConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultServiceConfig returns sensible defaults.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		MaxTokens:   256,
		Temperature: 0.3,
	}
}

// Service runs plate checks: a photo goes to the vision model, the
// analysis is classified into a reaction, and the check is recorded.
type Service struct {
	provider llm.Provider
	picker   *reaction.Picker
	events   store.EventRepo
	cfg      ServiceConfig
}

// NewService creates a plate check service. events may be nil, in which
// case checks are not recorded.
func NewService(provider llm.Provider, cat *catalog.Catalog, events store.EventRepo, cfg ServiceConfig) *Service {
	return &Service{
		provider: provider,
		picker:   reaction.NewPicker(cat, nil),
		events:   events,
		cfg:      cfg,
	}
}

// Check analyzes a meal photo and returns the result.
func (s *Service) Check(ctx context.Context, userID string, img llm.Image) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "plate-check")

	req := llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: analysisUserPrompt, Image: &img},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, &ErrAnalysisFailed{Err: err}
	}

	var analysis Analysis
	if err := json.Unmarshal(resp.Content, &analysis); err != nil {
		return nil, &ErrAnalysisFailed{Err: fmt.Errorf("parse analysis response: %w", err)}
	}

	react, err := s.picker.React(analysis.HasProtein, analysis.HasPlants)
	if err != nil {
		return nil, fmt.Errorf("pick reaction: %w", err)
	}

	result := &Result{
		CheckID:    uuid.NewString(),
		Analysis:   analysis,
		Reaction:   react,
		Suggestion: resolveSuggestion(analysis),
	}

	// Record the check but don't fail the result if the append fails.
	if s.events != nil {
		data := store.PlateCheckEventData{
			CheckID:      result.CheckID,
			UserID:       userID,
			HasProtein:   analysis.HasProtein,
			HasPlants:    analysis.HasPlants,
			ReactionType: string(react.Type),
			ReactionID:   react.ID,
			Suggestion:   result.Suggestion,
		}
		if appendErr := s.events.AppendPlateCheck(ctx, data); appendErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record plate check: %v\n", appendErr)
		}
	}

	return result, nil
}

// resolveSuggestion returns the model's suggestion, falling back to a
// canned one when the model left it empty on an unbalanced plate.
func resolveSuggestion(a Analysis) string {
	if a.Suggestion != "" {
		return a.Suggestion
	}
	switch {
	case !a.HasProtein:
		return fallbackProteinSuggestion
	case !a.HasPlants:
		return fallbackPlantsSuggestion
	}
	return ""
}
