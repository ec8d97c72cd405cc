package store

import (
	"context"
	"errors"
	"time"

	"afriverse.co/editorial/core/db/sqlc"
	"afriverse.co/editorial/internal/model"
	"github.com/jackc/pgx/v5"
)

type postStore struct {
	queries *sqlc.Queries
}

func newPostStore(queries *sqlc.Queries) PostStore {
	return &postStore{queries: queries}
}

func (s *postStore) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	row, err := s.queries.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toPostModel(row), nil
}

func (s *postStore) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	row, err := s.queries.GetPostBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toPostModel(row), nil
}

func (s *postStore) Create(ctx context.Context, post *model.Post) error {
	row, err := s.queries.CreatePost(ctx, sqlc.CreatePostParams{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Title:     post.Title,
		Slug:      post.Slug,
		Excerpt:   post.Excerpt,
		Category:  post.Category,
		Body:      post.Body,
		WordCount: post.WordCount,
	})
	if err != nil {
		return err
	}
	*post = *toPostModel(row)
	return nil
}

func (s *postStore) UpdateContent(ctx context.Context, post *model.Post) error {
	row, err := s.queries.UpdatePostContent(ctx, sqlc.UpdatePostContentParams{
		ID:        post.ID,
		Title:     post.Title,
		Excerpt:   post.Excerpt,
		Category:  post.Category,
		Body:      post.Body,
		WordCount: post.WordCount,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*post = *toPostModel(row)
	return nil
}

func (s *postStore) SetStatus(ctx context.Context, id int64, status model.PostStatus, scheduledAt, publishedAt *time.Time) (*model.Post, error) {
	row, err := s.queries.SetPostStatus(ctx, sqlc.SetPostStatusParams{
		ID:          id,
		Status:      string(status),
		ScheduledAt: toTimestamptz(scheduledAt),
		PublishedAt: toTimestamptz(publishedAt),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toPostModel(row), nil
}

func (s *postStore) ClaimPending(ctx context.Context, id int64) (*model.Post, error) {
	row, err := s.queries.ClaimPendingPost(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toPostModel(row), nil
}

func (s *postStore) DeleteDraft(ctx context.Context, id int64) error {
	n, err := s.queries.DeleteDraftPost(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *postStore) ListByAuthor(ctx context.Context, authorID int64) ([]model.Post, error) {
	rows, err := s.queries.ListPostsByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return toPostModels(rows), nil
}

func (s *postStore) ListByStatus(ctx context.Context, status model.PostStatus) ([]model.Post, error) {
	rows, err := s.queries.ListPostsByStatus(ctx, string(status))
	if err != nil {
		return nil, err
	}
	return toPostModels(rows), nil
}

func (s *postStore) ListDueScheduled(ctx context.Context, limit int32) ([]model.Post, error) {
	rows, err := s.queries.ListDueScheduledPosts(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toPostModels(rows), nil
}

func toPostModel(row sqlc.Post) *model.Post {
	return &model.Post{
		ID:          row.ID,
		AuthorID:    row.AuthorID,
		Title:       row.Title,
		Slug:        row.Slug,
		Excerpt:     row.Excerpt,
		Category:    row.Category,
		Body:        row.Body,
		WordCount:   row.WordCount,
		Status:      model.PostStatus(row.Status),
		ScheduledAt: tsPtr(row.ScheduledAt),
		PublishedAt: tsPtr(row.PublishedAt),
		CreatedAt:   tsValue(row.CreatedAt),
		UpdatedAt:   tsValue(row.UpdatedAt),
	}
}

func toPostModels(rows []sqlc.Post) []model.Post {
	posts := make([]model.Post, len(rows))
	for i, row := range rows {
		posts[i] = *toPostModel(row)
	}
	return posts
}
