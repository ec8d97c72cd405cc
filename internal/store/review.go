package store

import (
	"context"
	"errors"

	"afriverse.co/editorial/core/db/sqlc"
	"afriverse.co/editorial/internal/model"
	"github.com/jackc/pgx/v5"
)

type reviewStore struct {
	queries *sqlc.Queries
}

func newReviewStore(queries *sqlc.Queries) ReviewStore {
	return &reviewStore{queries: queries}
}

func (s *reviewStore) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	row, err := s.queries.GetReview(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toReviewModel(row), nil
}

func (s *reviewStore) GetByPost(ctx context.Context, postID int64) (*model.Review, error) {
	row, err := s.queries.GetReviewByPost(ctx, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toReviewModel(row), nil
}

func (s *reviewStore) UpsertForSubmission(ctx context.Context, id, postID int64, priority model.Priority) (*model.Review, error) {
	row, err := s.queries.UpsertReviewForSubmission(ctx, sqlc.UpsertReviewForSubmissionParams{
		ID:       id,
		PostID:   postID,
		Priority: string(priority),
	})
	if err != nil {
		return nil, err
	}
	return toReviewModel(row), nil
}

func (s *reviewStore) Claim(ctx context.Context, postID, reviewerID int64) (*model.Review, error) {
	row, err := s.queries.ClaimReview(ctx, sqlc.ClaimReviewParams{
		PostID:     postID,
		ReviewerID: &reviewerID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toReviewModel(row), nil
}

func (s *reviewStore) SetStatus(ctx context.Context, postID int64, status model.ReviewStatus) (*model.Review, error) {
	row, err := s.queries.SetReviewStatus(ctx, sqlc.SetReviewStatusParams{
		PostID: postID,
		Status: string(status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toReviewModel(row), nil
}

func (s *reviewStore) MarkPublished(ctx context.Context, postID int64) (*model.Review, error) {
	row, err := s.queries.MarkReviewPublished(ctx, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toReviewModel(row), nil
}

func toReviewModel(row sqlc.Review) *model.Review {
	return &model.Review{
		ID:          row.ID,
		PostID:      row.PostID,
		Status:      model.ReviewStatus(row.Status),
		Priority:    model.Priority(row.Priority),
		ReviewerID:  row.ReviewerID,
		ClaimedAt:   tsPtr(row.ClaimedAt),
		PublishedAt: tsPtr(row.PublishedAt),
		CreatedAt:   tsValue(row.CreatedAt),
		UpdatedAt:   tsValue(row.UpdatedAt),
	}
}
