package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"afriverse.co/editorial/common"
	"afriverse.co/editorial/common/id"
	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/store"
)

type CreateDraftInput struct {
	Title    string
	Excerpt  string
	Category string
	Body     string
}

type UpdateDraftInput struct {
	Title    string
	Excerpt  string
	Category string
	Body     string
}

type PostService interface {
	CreateDraft(ctx context.Context, actor *model.Actor, input CreateDraftInput) (*model.Post, error)
	UpdateDraft(ctx context.Context, actor *model.Actor, postID int64, input UpdateDraftInput) (*model.Post, error)
	DeleteDraft(ctx context.Context, actor *model.Actor, postID int64) error
	Get(ctx context.Context, actor *model.Actor, postID int64) (*model.Post, error)
	GetBySlug(ctx context.Context, actor *model.Actor, slug string) (*model.Post, error)
	ListMine(ctx context.Context, actor *model.Actor) ([]model.Post, error)
	ListByStatus(ctx context.Context, actor *model.Actor, status model.PostStatus) ([]model.Post, error)
	Activity(ctx context.Context, actor *model.Actor, postID int64) ([]model.Activity, error)
}

type postService struct {
	postStore     store.PostStore
	activityStore store.ActivityStore
}

func NewPostService(postStore store.PostStore, activityStore store.ActivityStore) PostService {
	return &postService{
		postStore:     postStore,
		activityStore: activityStore,
	}
}

func (s *postService) CreateDraft(ctx context.Context, actor *model.Actor, input CreateDraftInput) (*model.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		verr := newValidationError()
		verr.add("title", "title is required")
		return nil, verr
	}

	slug, err := s.ensureSlug(ctx, title)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		ID:        id.New(),
		AuthorID:  actor.ID,
		Title:     title,
		Slug:      slug,
		Excerpt:   strings.TrimSpace(input.Excerpt),
		Category:  strings.TrimSpace(input.Category),
		Body:      input.Body,
		WordCount: int32(common.WordCount(input.Body)),
	}

	if err := s.postStore.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	s.record(ctx, actor, post.ID, model.ActivityCreated, "")
	return post, nil
}

func (s *postService) UpdateDraft(ctx context.Context, actor *model.Actor, postID int64, input UpdateDraftInput) (*model.Post, error) {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	// Authors may touch their post while it is in their hands; editorial
	// staff may fix up anything that has not gone live yet.
	switch {
	case actor.Role.IsEditorial():
		if post.Status == model.PostStatusPublished {
			return nil, ErrNotEditable
		}
	case post.AuthorID == actor.ID:
		if !post.Status.Editable() {
			return nil, ErrNotEditable
		}
	default:
		return nil, ErrForbidden
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		verr := newValidationError()
		verr.add("title", "title is required")
		return nil, verr
	}

	post.Title = title
	post.Excerpt = strings.TrimSpace(input.Excerpt)
	post.Category = strings.TrimSpace(input.Category)
	post.Body = input.Body
	post.WordCount = int32(common.WordCount(input.Body))

	if err := s.postStore.UpdateContent(ctx, post); err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}

	s.record(ctx, actor, post.ID, model.ActivityEdited, "")
	return post, nil
}

func (s *postService) DeleteDraft(ctx context.Context, actor *model.Actor, postID int64) error {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != actor.ID && !actor.Role.AtLeast(model.RoleAdmin) {
		return ErrForbidden
	}
	return s.postStore.DeleteDraft(ctx, postID)
}

func (s *postService) Get(ctx context.Context, actor *model.Actor, postID int64) (*model.Post, error) {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !canViewPost(actor, post) {
		return nil, store.ErrNotFound
	}
	return post, nil
}

func (s *postService) GetBySlug(ctx context.Context, actor *model.Actor, slug string) (*model.Post, error) {
	post, err := s.postStore.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !canViewPost(actor, post) {
		return nil, store.ErrNotFound
	}
	return post, nil
}

func (s *postService) ListMine(ctx context.Context, actor *model.Actor) ([]model.Post, error) {
	return s.postStore.ListByAuthor(ctx, actor.ID)
}

func (s *postService) ListByStatus(ctx context.Context, actor *model.Actor, status model.PostStatus) ([]model.Post, error) {
	if status != model.PostStatusPublished && !actor.Role.IsEditorial() {
		return nil, ErrForbidden
	}
	return s.postStore.ListByStatus(ctx, status)
}

func (s *postService) Activity(ctx context.Context, actor *model.Actor, postID int64) ([]model.Activity, error) {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != actor.ID && !actor.Role.IsEditorial() {
		return nil, ErrForbidden
	}
	return s.activityStore.ListByPost(ctx, postID)
}

// canViewPost: published posts are visible to anyone, anything earlier
// in the pipeline only to the author and editorial staff.
func canViewPost(actor *model.Actor, post *model.Post) bool {
	if post.Status == model.PostStatusPublished {
		return true
	}
	if actor == nil {
		return false
	}
	return post.AuthorID == actor.ID || actor.Role.IsEditorial()
}

func (s *postService) ensureSlug(ctx context.Context, title string) (string, error) {
	base, err := common.Slugify(title, "post")
	if err != nil {
		return "", fmt.Errorf("generating slug: %w", err)
	}

	// Fast path
	if _, err := s.postStore.GetBySlug(ctx, base); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return base, nil
		}
		return "", fmt.Errorf("checking slug availability: %w", err)
	}

	// Add numeric suffix until available
	for i := 1; i <= 20; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		_, err := s.postStore.GetBySlug(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking slug availability: %w", err)
		}
	}

	return "", fmt.Errorf("unable to find available slug for %q", base)
}

// record writes a best-effort audit entry outside of any transaction.
// Draft edits are not workflow transitions, so a failed audit write is
// logged but never fails the request.
func (s *postService) record(ctx context.Context, actor *model.Actor, postID int64, action model.ActivityAction, detail string) {
	err := s.activityStore.Create(ctx, &model.Activity{
		ID:        id.New(),
		PostID:    postID,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		ActorRole: actor.Role,
		Action:    action,
		Detail:    detail,
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to record activity",
			"error", err,
			"post_id", postID,
			"action", action)
	}
}
