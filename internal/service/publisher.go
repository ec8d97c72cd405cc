package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/queue"
	"afriverse.co/editorial/internal/store"
	"afriverse.co/editorial/internal/workflow"
)

// sweepActor is the synthetic identity recorded for sweep-published
// posts.
var sweepActor = &model.Actor{ID: 0, Name: "scheduler", Role: "system"}

type SweepResult struct {
	Due       int      `json:"due"`
	Published int      `json:"published"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

// PublisherService flips scheduled posts to published once their
// scheduled time passes.
type PublisherService interface {
	RunScheduledSweep(ctx context.Context) (*SweepResult, error)
}

type publisherService struct {
	txRunner   TxRunner
	postStore  store.PostStore
	producer   queue.Producer
	sweepLimit int32
}

func NewPublisherService(txRunner TxRunner, postStore store.PostStore, producer queue.Producer, sweepLimit int32) PublisherService {
	if sweepLimit <= 0 {
		sweepLimit = 50
	}
	return &publisherService{
		txRunner:   txRunner,
		postStore:  postStore,
		producer:   producer,
		sweepLimit: sweepLimit,
	}
}

func (s *publisherService) RunScheduledSweep(ctx context.Context) (*SweepResult, error) {
	due, err := s.postStore.ListDueScheduled(ctx, s.sweepLimit)
	if err != nil {
		return nil, fmt.Errorf("listing due posts: %w", err)
	}

	result := &SweepResult{Due: len(due)}
	if len(due) == 0 {
		return result, nil
	}

	slog.InfoContext(ctx, "publishing sweep started", "due", len(due))

	// One transaction per post: a single bad row must not hold back the
	// rest of the batch.
	for _, post := range due {
		if err := s.publishOne(ctx, post.ID); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("post %d: %v", post.ID, err))
			slog.ErrorContext(ctx, "sweep failed to publish post",
				"error", err,
				"post_id", post.ID)
			continue
		}
		result.Published++
		s.notifyPublished(ctx, post.ID)
	}

	slog.InfoContext(ctx, "publishing sweep finished",
		"due", result.Due,
		"published", result.Published,
		"failed", result.Failed)
	return result, nil
}

func (s *publisherService) publishOne(ctx context.Context, postID int64) error {
	return s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		post, err := sp.Posts().GetByID(ctx, postID)
		if err != nil {
			return err
		}

		// The list ran outside this transaction; someone may have
		// published or unscheduled the post in between.
		next, err := workflow.Next(post.Status, workflow.ActionPublish)
		if err != nil {
			return err
		}

		now := time.Now()
		if _, err := sp.Posts().SetStatus(ctx, postID, next, nil, &now); err != nil {
			return err
		}

		if _, err := sp.Reviews().MarkPublished(ctx, postID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("marking review published: %w", err)
		}

		return recordActivity(ctx, sp, sweepActor, postID, model.ActivityPublished, "scheduled")
	})
}

func (s *publisherService) notifyPublished(ctx context.Context, postID int64) {
	if s.producer == nil {
		return
	}
	if err := s.producer.Enqueue(ctx, queue.EventMessage{
		EventType: queue.EventPostPublished,
		PostID:    postID,
		ActorID:   sweepActor.ID,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to enqueue publish notification",
			"error", err,
			"post_id", postID)
	}
}
