package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "coach",
		InputTokens:  100,
		OutputTokens: 40,
		Success:      true,
		RequestBody:  "[user]\nhello",
		ResponseBody: `{"answer":"hi"}`,
	})
	require.NoError(t, err)

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, events, 1)

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "coach", got.Purpose)
	require.Equal(t, "[user]\nhello", got.RequestBody)
	require.Equal(t, `{"answer":"hi"}`, got.ResponseBody)

	missing, err := repo.GetLLMEvent(ctx, 99999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "plate-check", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "plate-check", InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "coach", InputTokens: 80, OutputTokens: 60, LatencyMs: 300, Success: true},
	}
	for _, data := range seed {
		require.NoError(t, repo.AppendLLMRequest(ctx, data))
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byPurpose := map[string]LLMPurposeUsage{}
	for _, st := range stats {
		byPurpose[st.Purpose] = st
	}

	plate := byPurpose["plate-check"]
	require.Equal(t, 2, plate.Calls)
	require.Equal(t, 400, plate.InputTokens)
	require.Equal(t, 200, plate.OutputTokens)
	require.Equal(t, 300, plate.AvgLatencyMs)

	coach := byPurpose["coach"]
	require.Equal(t, 1, coach.Calls)
	require.Equal(t, 80, coach.InputTokens)
}

func TestLLMUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "plate-check", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "plate-check", InputTokens: 200, OutputTokens: 100, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "coach", InputTokens: 50, OutputTokens: 25, Success: true},
	}
	for _, data := range seed {
		require.NoError(t, repo.AppendLLMRequest(ctx, data))
	}

	stats, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byModel := map[string]LLMModelUsage{}
	for _, st := range stats {
		byModel[st.Model] = st
	}

	mini := byModel["gpt-4o-mini"]
	require.Equal(t, 2, mini.Calls)
	require.Equal(t, 250, mini.InputTokens)
	require.Equal(t, 125, mini.OutputTokens)

	haiku := byModel["claude-haiku-4-5-20251001"]
	require.Equal(t, 1, haiku.Calls)
}

func TestQueryPlateChecksFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, rt := range []string{"perfect", "meh", "oops"} {
		err := repo.AppendPlateCheck(ctx, PlateCheckEventData{
			CheckID:      string(rune('a' + i)),
			UserID:       "alex",
			ReactionType: rt,
		})
		require.NoError(t, err)
	}

	// Limit applies after newest-first ordering.
	checks, err := repo.QueryPlateChecks(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, checks, 2)
	require.Equal(t, "oops", checks[0].ReactionType)
	require.Equal(t, "meh", checks[1].ReactionType)

	// After filters by sequence.
	older, err := repo.QueryPlateChecks(ctx, QueryOpts{After: checks[1].Sequence})
	require.NoError(t, err)
	require.Len(t, older, 1)
	require.Equal(t, "oops", older[0].ReactionType)
}
