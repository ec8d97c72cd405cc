package store

import (
	"context"

	"afriverse.co/editorial/core/db/sqlc"
	"afriverse.co/editorial/internal/model"
)

type feedbackStore struct {
	queries *sqlc.Queries
}

func newFeedbackStore(queries *sqlc.Queries) FeedbackStore {
	return &feedbackStore{queries: queries}
}

func (s *feedbackStore) Create(ctx context.Context, fb *model.Feedback) error {
	row, err := s.queries.CreateFeedback(ctx, sqlc.CreateFeedbackParams{
		ID:         fb.ID,
		ReviewID:   fb.ReviewID,
		AuthorID:   fb.AuthorID,
		AuthorName: fb.AuthorName,
		AuthorRole: string(fb.AuthorRole),
		Body:       fb.Body,
		Type:       string(fb.Type),
		Internal:   fb.Internal,
	})
	if err != nil {
		return err
	}
	*fb = *toFeedbackModel(row)
	return nil
}

func (s *feedbackStore) ListByReview(ctx context.Context, reviewID int64) ([]model.Feedback, error) {
	rows, err := s.queries.ListFeedbackByReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	return toFeedbackModels(rows), nil
}

func (s *feedbackStore) ListPublicByReview(ctx context.Context, reviewID int64) ([]model.Feedback, error) {
	rows, err := s.queries.ListPublicFeedbackByReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	return toFeedbackModels(rows), nil
}

func toFeedbackModel(row sqlc.ReviewFeedback) *model.Feedback {
	return &model.Feedback{
		ID:         row.ID,
		ReviewID:   row.ReviewID,
		AuthorID:   row.AuthorID,
		AuthorName: row.AuthorName,
		AuthorRole: model.Role(row.AuthorRole),
		Type:       model.FeedbackType(row.Type),
		Body:       row.Body,
		Internal:   row.Internal,
		CreatedAt:  tsValue(row.CreatedAt),
	}
}

func toFeedbackModels(rows []sqlc.ReviewFeedback) []model.Feedback {
	items := make([]model.Feedback, len(rows))
	for i, row := range rows {
		items[i] = *toFeedbackModel(row)
	}
	return items
}
