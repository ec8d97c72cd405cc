package service_test

import (
	"context"
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"afriverse.co/editorial/common/id"
	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/queue"
	"afriverse.co/editorial/internal/service"
	"afriverse.co/editorial/internal/store"
	"afriverse.co/editorial/internal/workflow"
)

var longBody = strings.TrimSpace(strings.Repeat("word ", 320))

var _ = Describe("WorkflowService", func() {
	var (
		svc      service.WorkflowService
		posts    *mockPostStore
		reviews  *mockReviewStore
		feedback *mockFeedbackStore
		activity *mockActivityStore
		producer *mockProducer
		ctx      context.Context

		author *model.Actor
		editor *model.Actor
		admin  *model.Actor
	)

	BeforeEach(func() {
		ctx = context.Background()
		posts = &mockPostStore{}
		reviews = &mockReviewStore{}
		feedback = &mockFeedbackStore{}
		activity = &mockActivityStore{}
		producer = &mockProducer{}

		provider := &mockStoreProvider{
			posts:    posts,
			reviews:  reviews,
			feedback: feedback,
			activity: activity,
			users:    &mockUserStore{},
		}
		txRunner := &mockTxRunner{
			withTxFn: func(ctx context.Context, fn func(stores service.StoreProvider) error) error {
				return fn(provider)
			},
		}
		svc = service.NewWorkflowService(txRunner, posts, reviews, feedback, producer)
		Expect(id.Init(1)).To(Succeed())

		author = &model.Actor{ID: 10, Name: "Amara Diallo", Role: model.RoleAuthor}
		editor = &model.Actor{ID: 20, Name: "Kwame Mensah", Role: model.RoleEditor}
		admin = &model.Actor{ID: 30, Name: "Naledi Dlamini", Role: model.RoleAdmin}
	})

	draft := func(authorID int64) *model.Post {
		return &model.Post{
			ID:       1,
			AuthorID: authorID,
			Title:    "A headline long enough to pass",
			Excerpt:  "A short excerpt",
			Category: "culture",
			Body:     longBody,
			Status:   model.PostStatusDraft,
		}
	}

	Describe("Submit", func() {
		It("moves the draft to pending_review and opens a review", func() {
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return draft(author.ID), nil
			}

			post, err := svc.Submit(ctx, author, 1, service.SubmitInput{Priority: model.PriorityUrgent, Note: "ready for review"})
			Expect(err).NotTo(HaveOccurred())
			Expect(post.Status).To(Equal(model.PostStatusPendingReview))
			Expect(reviews.upsertCalls).To(Equal(1))
			Expect(feedback.createCalls).To(Equal(1))
			Expect(activity.actions).To(ContainElement(model.ActivitySubmittedForReview))
			Expect(producer.messages).To(HaveLen(1))
			Expect(producer.messages[0].EventType).To(Equal(queue.EventReviewSubmitted))
		})

		It("defaults priority to normal", func() {
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return draft(author.ID), nil
			}
			var gotPriority model.Priority
			reviews.upsertForSubmissionFn = func(_ context.Context, reviewID, postID int64, priority model.Priority) (*model.Review, error) {
				gotPriority = priority
				return &model.Review{ID: reviewID, PostID: postID, Priority: priority}, nil
			}

			_, err := svc.Submit(ctx, author, 1, service.SubmitInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(gotPriority).To(Equal(model.PriorityNormal))
		})

		It("itemizes every failed submission gate", func() {
			post := draft(author.ID)
			post.Title = "Short"
			post.Body = "too thin"
			post.Excerpt = ""
			post.Category = ""
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return post, nil
			}

			_, err := svc.Submit(ctx, author, 1, service.SubmitInput{Priority: model.PriorityNormal})
			var verr *service.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Fields).To(HaveKey("title"))
			Expect(verr.Fields).To(HaveKey("body"))
			Expect(verr.Fields).To(HaveKey("excerpt"))
			Expect(verr.Fields).To(HaveKey("category"))
			Expect(producer.messages).To(BeEmpty())
		})

		It("rejects submission by a non-owner", func() {
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return draft(99), nil
			}

			_, err := svc.Submit(ctx, author, 1, service.SubmitInput{Priority: model.PriorityNormal})
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("rejects submission from published", func() {
			post := draft(author.ID)
			post.Status = model.PostStatusPublished
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return post, nil
			}

			_, err := svc.Submit(ctx, author, 1, service.SubmitInput{Priority: model.PriorityNormal})
			var ite *workflow.InvalidTransitionError
			Expect(errors.As(err, &ite)).To(BeTrue())
		})
	})

	Describe("Claim", func() {
		pending := func(authorID int64) *model.Post {
			post := draft(authorID)
			post.Status = model.PostStatusPendingReview
			return post
		}

		It("claims an unclaimed pending post", func() {
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return pending(author.ID), nil
			}

			review, err := svc.Claim(ctx, editor, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(review.ReviewerID).To(HaveValue(Equal(editor.ID)))
			Expect(activity.actions).To(ContainElement(model.ActivityClaimed))
		})

		It("rejects claims from non-editorial roles", func() {
			_, err := svc.Claim(ctx, author, 1)
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("rejects claiming your own post", func() {
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return pending(editor.ID), nil
			}

			_, err := svc.Claim(ctx, editor, 1)
			Expect(err).To(MatchError(service.ErrOwnPost))
		})

		It("surfaces a lost claim race as ErrAlreadyClaimed", func() {
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return pending(author.ID), nil
			}
			posts.claimPendingFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Claim(ctx, editor, 1)
			Expect(err).To(MatchError(service.ErrAlreadyClaimed))
		})
	})

	Describe("AddFeedback", func() {
		inReview := func() {
			post := draft(author.ID)
			post.Status = model.PostStatusInReview
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return post, nil
			}
			reviews.getByPostFn = func(_ context.Context, postID int64) (*model.Review, error) {
				return &model.Review{ID: 5, PostID: postID, ReviewerID: &editor.ID, Status: model.ReviewStatusInReview}, nil
			}
		}

		It("rejects internal notes from non-editorial actors", func() {
			inReview()
			_, err := svc.AddFeedback(ctx, author, 1, service.AddFeedbackInput{
				Type: model.FeedbackTypeInternalNote,
				Body: "sneaky",
			})
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("does not notify for internal notes", func() {
			inReview()
			fb, err := svc.AddFeedback(ctx, editor, 1, service.AddFeedbackInput{
				Type: model.FeedbackTypeInternalNote,
				Body: "between us",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(fb.Internal).To(BeTrue())
			Expect(producer.messages).To(BeEmpty())
		})

		It("flips the review to revision_submitted when the author responds to requested changes", func() {
			post := draft(author.ID)
			post.Status = model.PostStatusChangesRequested
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return post, nil
			}
			reviews.getByPostFn = func(_ context.Context, postID int64) (*model.Review, error) {
				return &model.Review{ID: 5, PostID: postID, ReviewerID: &editor.ID, Status: model.ReviewStatusChangesRequested}, nil
			}
			var gotStatus model.ReviewStatus
			reviews.setStatusFn = func(_ context.Context, postID int64, status model.ReviewStatus) (*model.Review, error) {
				gotStatus = status
				return &model.Review{PostID: postID, Status: status}, nil
			}
			var gotPostStatus model.PostStatus
			posts.setStatusFn = func(_ context.Context, id int64, status model.PostStatus, scheduledAt, publishedAt *time.Time) (*model.Post, error) {
				gotPostStatus = status
				return &model.Post{ID: id, Status: status}, nil
			}

			_, err := svc.AddFeedback(ctx, author, 1, service.AddFeedbackInput{
				Type: model.FeedbackTypeResponse,
				Body: "fixed, please re-check",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(gotStatus).To(Equal(model.ReviewStatusRevisionSubmitted))
			Expect(gotPostStatus).To(Equal(model.PostStatusPendingReview))
			Expect(producer.messages).To(HaveLen(1))
			Expect(producer.messages[0].EventType).To(Equal(queue.EventFeedbackAdded))
		})

		It("rejects empty bodies", func() {
			_, err := svc.AddFeedback(ctx, editor, 1, service.AddFeedbackInput{
				Type: model.FeedbackTypeComment,
				Body: "   ",
			})
			var verr *service.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
		})
	})

	Describe("Decide", func() {
		claimed := func() {
			post := draft(author.ID)
			post.Status = model.PostStatusInReview
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return post, nil
			}
			reviews.getByPostFn = func(_ context.Context, postID int64) (*model.Review, error) {
				return &model.Review{ID: 5, PostID: postID, ReviewerID: &editor.ID, Status: model.ReviewStatusInReview}, nil
			}
		}

		It("approves and notifies the author", func() {
			claimed()
			post, err := svc.Decide(ctx, editor, 1, service.DecisionApprove, "solid piece")
			Expect(err).NotTo(HaveOccurred())
			Expect(post.Status).To(Equal(model.PostStatusApproved))
			Expect(producer.messages).To(HaveLen(1))
			Expect(producer.messages[0].EventType).To(Equal(queue.EventReviewApproved))
		})

		It("requires a note when requesting changes", func() {
			claimed()
			_, err := svc.Decide(ctx, editor, 1, service.DecisionRequestChanges, " ")
			var verr *service.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Fields).To(HaveKey("note"))
		})

		It("records the note as feedback when requesting changes", func() {
			claimed()
			post, err := svc.Decide(ctx, editor, 1, service.DecisionRequestChanges, "intro needs work")
			Expect(err).NotTo(HaveOccurred())
			Expect(post.Status).To(Equal(model.PostStatusChangesRequested))
			Expect(feedback.createCalls).To(Equal(1))
			Expect(producer.messages[0].EventType).To(Equal(queue.EventChangesRequested))
		})

		It("rejects decisions from a reviewer who did not claim", func() {
			claimed()
			other := &model.Actor{ID: 77, Name: "Zanele", Role: model.RoleEditor}
			_, err := svc.Decide(ctx, other, 1, service.DecisionApprove, "")
			Expect(err).To(MatchError(service.ErrNotReviewer))
		})

		It("lets admins override a stale claim", func() {
			claimed()
			_, err := svc.Decide(ctx, admin, 1, service.DecisionApprove, "")
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("ListFeedback", func() {
		setup := func() {
			post := draft(author.ID)
			post.Status = model.PostStatusInReview
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return post, nil
			}
			reviews.getByPostFn = func(_ context.Context, postID int64) (*model.Review, error) {
				return &model.Review{ID: 5, PostID: postID}, nil
			}
		}

		It("filters internal notes for the author", func() {
			setup()
			var publicCalled bool
			feedback.listPublicByReviewFn = func(_ context.Context, reviewID int64) ([]model.Feedback, error) {
				publicCalled = true
				Expect(reviewID).To(Equal(int64(5)))
				return []model.Feedback{{ID: 1, Type: model.FeedbackTypeComment}}, nil
			}

			items, err := svc.ListFeedback(ctx, author, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(publicCalled).To(BeTrue())
			Expect(items).To(HaveLen(1))
		})

		It("returns the full thread to editorial staff", func() {
			setup()
			var fullCalled bool
			feedback.listByReviewFn = func(_ context.Context, _ int64) ([]model.Feedback, error) {
				fullCalled = true
				return nil, nil
			}

			_, err := svc.ListFeedback(ctx, editor, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(fullCalled).To(BeTrue())
		})

		It("rejects unrelated readers", func() {
			setup()
			stranger := &model.Actor{ID: 404, Role: model.RoleContributor}
			_, err := svc.ListFeedback(ctx, stranger, 1)
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("returns an empty thread when no review exists", func() {
			post := draft(author.ID)
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return post, nil
			}

			items, err := svc.ListFeedback(ctx, author, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(BeEmpty())
		})
	})

	Describe("Resubmit", func() {
		It("moves changes_requested back to pending and keeps the reviewer", func() {
			post := draft(author.ID)
			post.Status = model.PostStatusChangesRequested
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return post, nil
			}
			var gotStatus model.ReviewStatus
			reviews.setStatusFn = func(_ context.Context, postID int64, status model.ReviewStatus) (*model.Review, error) {
				gotStatus = status
				return &model.Review{PostID: postID, Status: status}, nil
			}

			updated, err := svc.Resubmit(ctx, author, 1, "fixed the lede")
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(model.PostStatusPendingReview))
			Expect(gotStatus).To(Equal(model.ReviewStatusRevisionSubmitted))
			Expect(producer.messages[0].EventType).To(Equal(queue.EventReviewResubmitted))
		})
	})

	Describe("Publish", func() {
		It("lets the author publish their approved post", func() {
			post := draft(author.ID)
			post.Status = model.PostStatusApproved
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return post, nil
			}

			updated, err := svc.Publish(ctx, author, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(model.PostStatusPublished))
			Expect(updated.PublishedAt).NotTo(BeNil())
			Expect(producer.messages[0].EventType).To(Equal(queue.EventPostPublished))
		})

		It("rejects the author publishing before approval", func() {
			post := draft(author.ID)
			post.Status = model.PostStatusPendingReview
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return post, nil
			}

			_, err := svc.Publish(ctx, author, 1)
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("lets an editor publish over the pipeline", func() {
			post := draft(author.ID)
			post.Status = model.PostStatusPendingReview
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return post, nil
			}

			_, err := svc.Publish(ctx, editor, 1)
			Expect(err).NotTo(HaveOccurred())
		})

		It("tolerates a missing review when publishing straight from draft", func() {
			post := draft(author.ID)
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return post, nil
			}
			reviews.markPublishedFn = func(_ context.Context, _ int64) (*model.Review, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Publish(ctx, editor, 1)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Unpublish", func() {
		It("returns the post to approved, not draft", func() {
			post := draft(author.ID)
			post.Status = model.PostStatusPublished
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return post, nil
			}

			updated, err := svc.Unpublish(ctx, editor, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(model.PostStatusApproved))
		})

		It("is editorial-only", func() {
			_, err := svc.Unpublish(ctx, author, 1)
			Expect(err).To(MatchError(service.ErrForbidden))
		})
	})

	Describe("Schedule", func() {
		It("rejects times in the past", func() {
			_, err := svc.Schedule(ctx, author, 1, time.Now().Add(-time.Minute))
			var verr *service.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Fields).To(HaveKey("scheduled_at"))
		})

		It("schedules an approved post", func() {
			post := draft(author.ID)
			post.Status = model.PostStatusApproved
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return post, nil
			}

			at := time.Now().Add(time.Hour)
			updated, err := svc.Schedule(ctx, author, 1, at)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(model.PostStatusScheduled))
			Expect(updated.ScheduledAt).To(HaveValue(BeTemporally("~", at, time.Second)))
		})
	})

	Describe("Archive", func() {
		It("rejects archiving mid-review", func() {
			post := draft(author.ID)
			post.Status = model.PostStatusInReview
			posts.getByIDFn = func(_ context.Context, _ int64) (*model.Post, error) {
				return post, nil
			}

			_, err := svc.Archive(ctx, editor, 1)
			var ite *workflow.InvalidTransitionError
			Expect(errors.As(err, &ite)).To(BeTrue())
		})
	})
})
