package store

import (
	"context"
	"fmt"

	"github.com/kavery/platewise/ent"
	entllm "github.com/kavery/platewise/ent/llmrequestevent"
	entplate "github.com/kavery/platewise/ent/platecheckevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendCompletion(ctx context.Context, data CompletionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CompletionEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetLessonID(data.LessonID).
		SetLevel(data.Level).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save completion event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendPlateCheck(ctx context.Context, data PlateCheckEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PlateCheckEvent.Create().
		SetSequence(seqNum).
		SetCheckID(data.CheckID).
		SetUserID(data.UserID).
		SetHasProtein(data.HasProtein).
		SetHasPlants(data.HasPlants).
		SetReactionType(data.ReactionType).
		SetReactionID(data.ReactionID).
		SetSuggestion(data.Suggestion).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save plate check event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryPlateChecks(ctx context.Context, opts QueryOpts) ([]PlateCheckRecord, error) {
	q := r.client.PlateCheckEvent.Query().
		Order(ent.Desc(entplate.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.After > 0 {
		q = q.Where(entplate.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(entplate.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(entplate.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(entplate.TimestampLTE(opts.To))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plate check events: %w", err)
	}

	out := make([]PlateCheckRecord, len(rows))
	for i, row := range rows {
		out[i] = PlateCheckRecord{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			PlateCheckEventData: PlateCheckEventData{
				CheckID:      row.CheckID,
				UserID:       row.UserID,
				HasProtein:   row.HasProtein,
				HasPlants:    row.HasPlants,
				ReactionType: row.ReactionType,
				ReactionID:   row.ReactionID,
				Suggestion:   row.Suggestion,
			},
		}
	}
	return out, nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(entllm.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.After > 0 {
		q = q.Where(entllm.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(entllm.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(entllm.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(entllm.TimestampLTE(opts.To))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	out := make([]LLMRequestRecord, len(rows))
	for i, row := range rows {
		out[i] = llmRecordFromRow(row)
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestRecord, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM request event: %w", err)
	}
	rec := llmRecordFromRow(row)
	return &rec, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error) {
	var rows []struct {
		Purpose      string  `json:"purpose"`
		Calls        int     `json:"calls"`
		InputTokens  int     `json:"input_tokens"`
		OutputTokens int     `json:"output_tokens"`
		AvgLatencyMs float64 `json:"avg_latency_ms"`
	}

	err := r.client.LLMRequestEvent.Query().
		GroupBy(entllm.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(entllm.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(entllm.FieldOutputTokens), "output_tokens"),
			ent.As(ent.Mean(entllm.FieldLatencyMs), "avg_latency_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage by purpose: %w", err)
	}

	out := make([]LLMPurposeUsage, len(rows))
	for i, row := range rows {
		out[i] = LLMPurposeUsage{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int(row.AvgLatencyMs),
		}
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	var rows []struct {
		Model        string `json:"model"`
		Calls        int    `json:"calls"`
		InputTokens  int    `json:"input_tokens"`
		OutputTokens int    `json:"output_tokens"`
	}

	err := r.client.LLMRequestEvent.Query().
		GroupBy(entllm.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(entllm.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(entllm.FieldOutputTokens), "output_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage by model: %w", err)
	}

	out := make([]LLMModelUsage, len(rows))
	for i, row := range rows {
		out[i] = LLMModelUsage{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
		}
	}
	return out, nil
}

func llmRecordFromRow(row *ent.LLMRequestEvent) LLMRequestRecord {
	return LLMRequestRecord{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
	}
}
