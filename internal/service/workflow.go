package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"afriverse.co/editorial/common"
	"afriverse.co/editorial/common/id"
	"afriverse.co/editorial/common/logger"
	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/queue"
	"afriverse.co/editorial/internal/store"
	"afriverse.co/editorial/internal/workflow"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Submission gates: short titles and thin bodies bounce before a
	// reviewer ever sees them.
	MinTitleLength = 10
	MinBodyWords   = 300
)

type Decision string

const (
	DecisionApprove        Decision = "approve"
	DecisionRequestChanges Decision = "request_changes"
)

type SubmitInput struct {
	Priority model.Priority
	Note     string
}

type AddFeedbackInput struct {
	Type     model.FeedbackType
	Body     string
	Internal bool
}

// WorkflowService owns every post status transition. Each operation
// runs its writes in one transaction and enqueues notification events
// only after that transaction commits.
type WorkflowService interface {
	Submit(ctx context.Context, actor *model.Actor, postID int64, input SubmitInput) (*model.Post, error)
	Claim(ctx context.Context, actor *model.Actor, postID int64) (*model.Review, error)
	AddFeedback(ctx context.Context, actor *model.Actor, postID int64, input AddFeedbackInput) (*model.Feedback, error)
	ListFeedback(ctx context.Context, actor *model.Actor, postID int64) ([]model.Feedback, error)
	Resubmit(ctx context.Context, actor *model.Actor, postID int64, note string) (*model.Post, error)
	Decide(ctx context.Context, actor *model.Actor, postID int64, decision Decision, note string) (*model.Post, error)
	Publish(ctx context.Context, actor *model.Actor, postID int64) (*model.Post, error)
	Unpublish(ctx context.Context, actor *model.Actor, postID int64) (*model.Post, error)
	Schedule(ctx context.Context, actor *model.Actor, postID int64, at time.Time) (*model.Post, error)
	Archive(ctx context.Context, actor *model.Actor, postID int64) (*model.Post, error)
}

type workflowService struct {
	txRunner      TxRunner
	postStore     store.PostStore
	reviewStore   store.ReviewStore
	feedbackStore store.FeedbackStore
	producer      queue.Producer
}

func NewWorkflowService(
	txRunner TxRunner,
	postStore store.PostStore,
	reviewStore store.ReviewStore,
	feedbackStore store.FeedbackStore,
	producer queue.Producer,
) WorkflowService {
	return &workflowService{
		txRunner:      txRunner,
		postStore:     postStore,
		reviewStore:   reviewStore,
		feedbackStore: feedbackStore,
		producer:      producer,
	}
}

func (s *workflowService) Submit(ctx context.Context, actor *model.Actor, postID int64, input SubmitInput) (*model.Post, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{PostID: &postID, ActorID: &actor.ID})

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityNormal
	}
	if !priority.Valid() {
		verr := newValidationError()
		verr.add("priority", "must be low, normal, or urgent")
		return nil, verr
	}

	var updated *model.Post
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		post, err := sp.Posts().GetByID(ctx, postID)
		if err != nil {
			return err
		}
		if post.AuthorID != actor.ID && !actor.Role.IsEditorial() {
			return ErrForbidden
		}

		if err := validateSubmission(post); err != nil {
			return err
		}

		next, err := workflow.Next(post.Status, workflow.ActionSubmit)
		if err != nil {
			return err
		}

		updated, err = sp.Posts().SetStatus(ctx, postID, next, nil, nil)
		if err != nil {
			return err
		}

		review, err := sp.Reviews().UpsertForSubmission(ctx, id.New(), postID, priority)
		if err != nil {
			return fmt.Errorf("creating review: %w", err)
		}

		if note := strings.TrimSpace(input.Note); note != "" {
			fb := &model.Feedback{
				ID:         id.New(),
				ReviewID:   review.ID,
				AuthorID:   actor.ID,
				AuthorName: actor.Name,
				AuthorRole: actor.Role,
				Type:       model.FeedbackTypeComment,
				Body:       note,
			}
			if err := sp.Feedback().Create(ctx, fb); err != nil {
				return fmt.Errorf("recording submission note: %w", err)
			}
		}

		return recordActivity(ctx, sp, actor, postID, model.ActivitySubmittedForReview, string(priority))
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "post submitted for review", "priority", priority)
	s.notify(ctx, queue.EventReviewSubmitted, postID, actor.ID)
	return updated, nil
}

func (s *workflowService) Claim(ctx context.Context, actor *model.Actor, postID int64) (*model.Review, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{PostID: &postID, ActorID: &actor.ID})

	if !actor.Role.IsEditorial() {
		return nil, ErrForbidden
	}

	var review *model.Review
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		post, err := sp.Posts().GetByID(ctx, postID)
		if err != nil {
			return err
		}
		if post.AuthorID == actor.ID {
			return ErrOwnPost
		}

		// Conditional update; losing a claim race surfaces as ErrNotFound
		// because the row is no longer pending_review.
		if _, err := sp.Posts().ClaimPending(ctx, postID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrAlreadyClaimed
			}
			return err
		}

		review, err = sp.Reviews().Claim(ctx, postID, actor.ID)
		if errors.Is(err, store.ErrNotFound) {
			// Pending posts normally carry a review row from submission;
			// tolerate one that was created out of band.
			if _, err := sp.Reviews().UpsertForSubmission(ctx, id.New(), postID, model.PriorityNormal); err != nil {
				return fmt.Errorf("creating review: %w", err)
			}
			review, err = sp.Reviews().Claim(ctx, postID, actor.ID)
		}
		if err != nil {
			return fmt.Errorf("claiming review: %w", err)
		}

		return recordActivity(ctx, sp, actor, postID, model.ActivityClaimed, "")
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "review claimed")
	return review, nil
}

func (s *workflowService) AddFeedback(ctx context.Context, actor *model.Actor, postID int64, input AddFeedbackInput) (*model.Feedback, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{PostID: &postID, ActorID: &actor.ID})

	if !input.Type.Valid() {
		verr := newValidationError()
		verr.add("type", "must be comment, response, or internal_note")
		return nil, verr
	}
	if strings.TrimSpace(input.Body) == "" {
		verr := newValidationError()
		verr.add("body", "feedback body is required")
		return nil, verr
	}

	internal := input.Internal || input.Type == model.FeedbackTypeInternalNote

	var fb *model.Feedback
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		post, err := sp.Posts().GetByID(ctx, postID)
		if err != nil {
			return err
		}
		review, err := sp.Reviews().GetByPost(ctx, postID)
		if err != nil {
			return err
		}

		isAuthor := post.AuthorID == actor.ID
		if internal && !actor.Role.IsEditorial() {
			return ErrForbidden
		}
		if !isAuthor && !actor.Role.IsEditorial() {
			return ErrForbidden
		}

		fb = &model.Feedback{
			ID:         id.New(),
			ReviewID:   review.ID,
			AuthorID:   actor.ID,
			AuthorName: actor.Name,
			AuthorRole: actor.Role,
			Type:       input.Type,
			Body:       input.Body,
			Internal:   internal,
		}
		if err := sp.Feedback().Create(ctx, fb); err != nil {
			return fmt.Errorf("creating feedback: %w", err)
		}

		// An author responding to requested changes re-enters the queue:
		// the review flips to revision_submitted and the post goes back
		// to pending_review, same as an explicit resubmit.
		if isAuthor && post.Status == model.PostStatusChangesRequested && input.Type == model.FeedbackTypeResponse {
			next, err := workflow.Next(post.Status, workflow.ActionResubmit)
			if err != nil {
				return err
			}
			if _, err := sp.Posts().SetStatus(ctx, postID, next, nil, nil); err != nil {
				return err
			}
			if _, err := sp.Reviews().SetStatus(ctx, postID, model.ReviewStatusRevisionSubmitted); err != nil {
				return fmt.Errorf("updating review status: %w", err)
			}
		}

		return recordActivity(ctx, sp, actor, postID, model.ActivityFeedback, string(input.Type))
	})
	if err != nil {
		return nil, err
	}

	if !internal {
		s.notify(ctx, queue.EventFeedbackAdded, postID, actor.ID)
	}
	return fb, nil
}

func (s *workflowService) ListFeedback(ctx context.Context, actor *model.Actor, postID int64) ([]model.Feedback, error) {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	review, err := s.reviewStore.GetByPost(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []model.Feedback{}, nil
		}
		return nil, err
	}

	switch {
	case actor.Role.IsEditorial():
		return s.feedbackStore.ListByReview(ctx, review.ID)
	case post.AuthorID == actor.ID:
		// Authors never see internal notes.
		return s.feedbackStore.ListPublicByReview(ctx, review.ID)
	default:
		return nil, ErrForbidden
	}
}

func (s *workflowService) Resubmit(ctx context.Context, actor *model.Actor, postID int64, note string) (*model.Post, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{PostID: &postID, ActorID: &actor.ID})

	var updated *model.Post
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		post, err := sp.Posts().GetByID(ctx, postID)
		if err != nil {
			return err
		}
		if post.AuthorID != actor.ID {
			return ErrForbidden
		}

		if err := validateSubmission(post); err != nil {
			return err
		}

		next, err := workflow.Next(post.Status, workflow.ActionResubmit)
		if err != nil {
			return err
		}

		updated, err = sp.Posts().SetStatus(ctx, postID, next, nil, nil)
		if err != nil {
			return err
		}

		// The reviewer keeps the claim across resubmissions.
		review, err := sp.Reviews().SetStatus(ctx, postID, model.ReviewStatusRevisionSubmitted)
		if err != nil {
			return fmt.Errorf("updating review status: %w", err)
		}

		if trimmed := strings.TrimSpace(note); trimmed != "" {
			fb := &model.Feedback{
				ID:         id.New(),
				ReviewID:   review.ID,
				AuthorID:   actor.ID,
				AuthorName: actor.Name,
				AuthorRole: actor.Role,
				Type:       model.FeedbackTypeResponse,
				Body:       trimmed,
			}
			if err := sp.Feedback().Create(ctx, fb); err != nil {
				return fmt.Errorf("recording response note: %w", err)
			}
		}

		return recordActivity(ctx, sp, actor, postID, model.ActivityResubmitted, "")
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "post resubmitted after changes")
	s.notify(ctx, queue.EventReviewResubmitted, postID, actor.ID)
	return updated, nil
}

func (s *workflowService) Decide(ctx context.Context, actor *model.Actor, postID int64, decision Decision, note string) (*model.Post, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{PostID: &postID, ActorID: &actor.ID})

	if !actor.Role.IsEditorial() {
		return nil, ErrForbidden
	}

	var (
		updated *model.Post
		event   queue.EventType
	)
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		post, err := sp.Posts().GetByID(ctx, postID)
		if err != nil {
			return err
		}
		review, err := sp.Reviews().GetByPost(ctx, postID)
		if err != nil {
			return err
		}
		// Only the claiming reviewer decides; admins can override a stale claim.
		if review.ReviewerID != nil && *review.ReviewerID != actor.ID && !actor.Role.AtLeast(model.RoleAdmin) {
			return ErrNotReviewer
		}

		switch decision {
		case DecisionApprove:
			next, err := workflow.Next(post.Status, workflow.ActionApprove)
			if err != nil {
				return err
			}
			updated, err = sp.Posts().SetStatus(ctx, postID, next, nil, nil)
			if err != nil {
				return err
			}
			if _, err := sp.Reviews().SetStatus(ctx, postID, model.ReviewStatusApproved); err != nil {
				return fmt.Errorf("updating review status: %w", err)
			}
			event = queue.EventReviewApproved
			return recordActivity(ctx, sp, actor, postID, model.ActivityApproved, note)

		case DecisionRequestChanges:
			if strings.TrimSpace(note) == "" {
				verr := newValidationError()
				verr.add("note", "a note explaining the requested changes is required")
				return verr
			}
			next, err := workflow.Next(post.Status, workflow.ActionRequestChanges)
			if err != nil {
				return err
			}
			updated, err = sp.Posts().SetStatus(ctx, postID, next, nil, nil)
			if err != nil {
				return err
			}
			if _, err := sp.Reviews().SetStatus(ctx, postID, model.ReviewStatusChangesRequested); err != nil {
				return fmt.Errorf("updating review status: %w", err)
			}
			fb := &model.Feedback{
				ID:         id.New(),
				ReviewID:   review.ID,
				AuthorID:   actor.ID,
				AuthorName: actor.Name,
				AuthorRole: actor.Role,
				Type:       model.FeedbackTypeComment,
				Body:       note,
			}
			if err := sp.Feedback().Create(ctx, fb); err != nil {
				return fmt.Errorf("creating feedback: %w", err)
			}
			event = queue.EventChangesRequested
			return recordActivity(ctx, sp, actor, postID, model.ActivityChangesRequested, "")

		default:
			verr := newValidationError()
			verr.add("decision", "must be approve or request_changes")
			return verr
		}
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "review decided", "decision", decision)
	s.notify(ctx, event, postID, actor.ID)
	return updated, nil
}

func (s *workflowService) Publish(ctx context.Context, actor *model.Actor, postID int64) (*model.Post, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{PostID: &postID, ActorID: &actor.ID})

	var updated *model.Post
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		post, err := sp.Posts().GetByID(ctx, postID)
		if err != nil {
			return err
		}

		// Authors publish their own approved work; anything else is an
		// editor override.
		owner := post.AuthorID == actor.ID
		if post.Status == model.PostStatusApproved || post.Status == model.PostStatusScheduled {
			if !owner && !actor.Role.IsEditorial() {
				return ErrForbidden
			}
		} else if !actor.Role.IsEditorial() {
			return ErrForbidden
		}

		next, err := workflow.Next(post.Status, workflow.ActionPublish)
		if err != nil {
			return err
		}

		now := time.Now()
		updated, err = sp.Posts().SetStatus(ctx, postID, next, nil, &now)
		if err != nil {
			return err
		}

		// Posts published straight from draft never had a review row.
		if _, err := sp.Reviews().MarkPublished(ctx, postID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("marking review published: %w", err)
		}

		return recordActivity(ctx, sp, actor, postID, model.ActivityPublished, "")
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "post published")
	s.notify(ctx, queue.EventPostPublished, postID, actor.ID)
	return updated, nil
}

func (s *workflowService) Unpublish(ctx context.Context, actor *model.Actor, postID int64) (*model.Post, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{PostID: &postID, ActorID: &actor.ID})

	if !actor.Role.IsEditorial() {
		return nil, ErrForbidden
	}

	var updated *model.Post
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		post, err := sp.Posts().GetByID(ctx, postID)
		if err != nil {
			return err
		}

		next, err := workflow.Next(post.Status, workflow.ActionUnpublish)
		if err != nil {
			return err
		}

		// Back to approved, not draft: the content already cleared review.
		updated, err = sp.Posts().SetStatus(ctx, postID, next, nil, nil)
		if err != nil {
			return err
		}

		if _, err := sp.Reviews().SetStatus(ctx, postID, model.ReviewStatusApproved); err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("updating review status: %w", err)
		}

		return recordActivity(ctx, sp, actor, postID, model.ActivityUnpublished, "")
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "post unpublished")
	return updated, nil
}

func (s *workflowService) Schedule(ctx context.Context, actor *model.Actor, postID int64, at time.Time) (*model.Post, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{PostID: &postID, ActorID: &actor.ID})

	if !at.After(time.Now()) {
		verr := newValidationError()
		verr.add("scheduled_at", "must be in the future")
		return nil, verr
	}

	var updated *model.Post
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		post, err := sp.Posts().GetByID(ctx, postID)
		if err != nil {
			return err
		}
		if post.AuthorID != actor.ID && !actor.Role.IsEditorial() {
			return ErrForbidden
		}

		next, err := workflow.Next(post.Status, workflow.ActionSchedule)
		if err != nil {
			return err
		}

		updated, err = sp.Posts().SetStatus(ctx, postID, next, &at, nil)
		if err != nil {
			return err
		}

		return recordActivity(ctx, sp, actor, postID, model.ActivityScheduled, at.UTC().Format(time.RFC3339))
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "post scheduled", "scheduled_at", at)
	return updated, nil
}

func (s *workflowService) Archive(ctx context.Context, actor *model.Actor, postID int64) (*model.Post, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{PostID: &postID, ActorID: &actor.ID})

	var updated *model.Post
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		post, err := sp.Posts().GetByID(ctx, postID)
		if err != nil {
			return err
		}
		if post.AuthorID != actor.ID && !actor.Role.IsEditorial() {
			return ErrForbidden
		}

		next, err := workflow.Next(post.Status, workflow.ActionArchive)
		if err != nil {
			return err
		}

		updated, err = sp.Posts().SetStatus(ctx, postID, next, nil, nil)
		if err != nil {
			return err
		}

		return recordActivity(ctx, sp, actor, postID, model.ActivityArchived, "")
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "post archived")
	return updated, nil
}

// validateSubmission collects every failed gate instead of stopping at
// the first one.
func validateSubmission(post *model.Post) error {
	verr := newValidationError()
	if len(strings.TrimSpace(post.Title)) < MinTitleLength {
		verr.add("title", fmt.Sprintf("must be at least %d characters", MinTitleLength))
	}
	if common.WordCount(post.Body) < MinBodyWords {
		verr.add("body", fmt.Sprintf("must be at least %d words", MinBodyWords))
	}
	if strings.TrimSpace(post.Excerpt) == "" {
		verr.add("excerpt", "excerpt is required")
	}
	if strings.TrimSpace(post.Category) == "" {
		verr.add("category", "category is required")
	}
	if verr.ok() {
		return nil
	}
	return verr
}

func recordActivity(ctx context.Context, sp StoreProvider, actor *model.Actor, postID int64, action model.ActivityAction, detail string) error {
	return sp.Activity().Create(ctx, &model.Activity{
		ID:        id.New(),
		PostID:    postID,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		ActorRole: actor.Role,
		Action:    action,
		Detail:    detail,
	})
}

// notify enqueues a notification event after the transaction committed.
// Delivery is fire-and-forget: an enqueue failure is logged, never
// surfaced to the caller.
func (s *workflowService) notify(ctx context.Context, event queue.EventType, postID, actorID int64) {
	if s.producer == nil {
		return
	}
	msg := queue.EventMessage{
		EventType: event,
		PostID:    postID,
		ActorID:   actorID,
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		traceID := sc.TraceID().String()
		msg.TraceID = &traceID
	}
	if err := s.producer.Enqueue(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "failed to enqueue notification event",
			"error", err,
			"event_type", event,
			"post_id", postID)
	}
}
