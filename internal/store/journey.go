package store

import (
	"context"
	"fmt"

	"github.com/kavery/platewise/ent"
	entjourney "github.com/kavery/platewise/ent/journey"
	"github.com/kavery/platewise/internal/catalog"
	"github.com/kavery/platewise/internal/journey"
)

// journeyRepo implements JourneyRepo using the ent client.
type journeyRepo struct {
	client *ent.Client
}

func (r *journeyRepo) Load(ctx context.Context, userID string) (*journey.State, error) {
	row, err := r.client.Journey.Query().
		Where(entjourney.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load journey for %q: %w", userID, err)
	}

	state := journey.State{
		SchemaVersion:   row.SchemaVersion,
		CompletedIDs:    row.CompletedLessonIds,
		CurrentLevel:    catalog.Level(row.CurrentLevel),
		StartedAt:       row.StartedAt,
		LastCompletedAt: row.LastCompletedAt,
	}
	return &state, nil
}

func (r *journeyRepo) Save(ctx context.Context, userID string, state journey.State) error {
	ids := state.CompletedIDs
	if ids == nil {
		ids = []string{}
	}

	err := r.client.Journey.Create().
		SetUserID(userID).
		SetSchemaVersion(state.SchemaVersion).
		SetCompletedLessonIds(ids).
		SetCurrentLevel(string(state.CurrentLevel)).
		SetNillableStartedAt(state.StartedAt).
		SetNillableLastCompletedAt(state.LastCompletedAt).
		OnConflictColumns(entjourney.FieldUserID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save journey for %q: %w", userID, err)
	}
	return nil
}

func (r *journeyRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.client.Journey.Delete().
		Where(entjourney.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete journey for %q: %w", userID, err)
	}
	return nil
}
