package store

import (
	"context"

	"afriverse.co/editorial/core/db/sqlc"
	"afriverse.co/editorial/internal/model"
)

type activityStore struct {
	queries *sqlc.Queries
}

func newActivityStore(queries *sqlc.Queries) ActivityStore {
	return &activityStore{queries: queries}
}

func (s *activityStore) Create(ctx context.Context, a *model.Activity) error {
	row, err := s.queries.CreateActivity(ctx, sqlc.CreateActivityParams{
		ID:        a.ID,
		PostID:    a.PostID,
		ActorID:   a.ActorID,
		ActorName: a.ActorName,
		ActorRole: string(a.ActorRole),
		Action:    string(a.Action),
		Detail:    a.Detail,
	})
	if err != nil {
		return err
	}
	*a = *toActivityModel(row)
	return nil
}

func (s *activityStore) ListByPost(ctx context.Context, postID int64) ([]model.Activity, error) {
	rows, err := s.queries.ListActivityByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	items := make([]model.Activity, len(rows))
	for i, row := range rows {
		items[i] = *toActivityModel(row)
	}
	return items, nil
}

func toActivityModel(row sqlc.ActivityLog) *model.Activity {
	return &model.Activity{
		ID:        row.ID,
		PostID:    row.PostID,
		ActorID:   row.ActorID,
		ActorName: row.ActorName,
		ActorRole: model.Role(row.ActorRole),
		Action:    model.ActivityAction(row.Action),
		Detail:    row.Detail,
		CreatedAt: tsValue(row.CreatedAt),
	}
}
