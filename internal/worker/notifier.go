package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"afriverse.co/editorial/common/logger"
	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/notify"
	"afriverse.co/editorial/internal/queue"
	"afriverse.co/editorial/internal/store"
)

// Notifier resolves a workflow event to its recipients and mails them.
// State is loaded fresh at delivery time, so a post that was archived
// between enqueue and delivery simply produces no email.
type Notifier struct {
	postStore   store.PostStore
	reviewStore store.ReviewStore
	userStore   store.UserStore
	mailer      notify.Mailer
	studioURL   string
}

func NewNotifier(
	postStore store.PostStore,
	reviewStore store.ReviewStore,
	userStore store.UserStore,
	mailer notify.Mailer,
	studioURL string,
) *Notifier {
	return &Notifier{
		postStore:   postStore,
		reviewStore: reviewStore,
		userStore:   userStore,
		mailer:      mailer,
		studioURL:   studioURL,
	}
}

func (n *Notifier) Process(ctx context.Context, msg queue.Message) error {
	eventType := string(msg.EventType)
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		PostID:    &msg.PostID,
		EventType: &eventType,
		Component: "editorial.worker.notifier",
	})

	post, err := n.postStore.GetByID(ctx, msg.PostID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "post gone before notification delivery, dropping event")
			return nil
		}
		return fmt.Errorf("loading post: %w", err)
	}

	var actor *model.User
	if msg.ActorID > 0 {
		actor, err = n.userStore.GetByID(ctx, msg.ActorID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("loading actor: %w", err)
		}
	}

	recipients, err := n.recipients(ctx, msg.EventType, post, msg.ActorID)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		slog.DebugContext(ctx, "no recipients for event")
		return nil
	}

	subject, body := notify.Render(msg.EventType, post, actor, n.studioURL)
	if err := n.mailer.Send(ctx, notify.Email{
		To:      recipients,
		Subject: subject,
		HTML:    body,
	}); err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}

	slog.InfoContext(ctx, "notification delivered", "recipients", len(recipients))
	return nil
}

func (n *Notifier) recipients(ctx context.Context, event queue.EventType, post *model.Post, actorID int64) ([]string, error) {
	switch event {
	case queue.EventReviewSubmitted:
		return n.staffEmails(ctx, post.AuthorID, actorID)

	case queue.EventReviewResubmitted:
		// Prefer the reviewer who claimed; fall back to the whole desk
		// when the claim was released.
		review, err := n.reviewStore.GetByPost(ctx, post.ID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("loading review: %w", err)
		}
		if review != nil && review.ReviewerID != nil {
			return n.userEmails(ctx, *review.ReviewerID)
		}
		return n.staffEmails(ctx, post.AuthorID, actorID)

	case queue.EventChangesRequested, queue.EventReviewApproved, queue.EventPostPublished:
		if post.AuthorID == actorID {
			return nil, nil
		}
		return n.userEmails(ctx, post.AuthorID)

	case queue.EventFeedbackAdded:
		if actorID == post.AuthorID {
			review, err := n.reviewStore.GetByPost(ctx, post.ID)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return nil, fmt.Errorf("loading review: %w", err)
			}
			if review != nil && review.ReviewerID != nil {
				return n.userEmails(ctx, *review.ReviewerID)
			}
			return n.staffEmails(ctx, post.AuthorID, actorID)
		}
		return n.userEmails(ctx, post.AuthorID)

	default:
		return nil, nil
	}
}

func (n *Notifier) userEmails(ctx context.Context, userID int64) ([]string, error) {
	user, err := n.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return []string{user.Email}, nil
}

// staffEmails lists every editorial inbox except the post's author and
// the acting user.
func (n *Notifier) staffEmails(ctx context.Context, authorID, actorID int64) ([]string, error) {
	staff, err := n.userStore.ListEditorialStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing editorial staff: %w", err)
	}
	var emails []string
	for _, u := range staff {
		if u.ID == authorID || u.ID == actorID {
			continue
		}
		emails = append(emails, u.Email)
	}
	return emails, nil
}
