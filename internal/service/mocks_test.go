package service_test

import (
	"context"
	"time"

	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/queue"
	"afriverse.co/editorial/internal/service"
	"afriverse.co/editorial/internal/store"
)

type mockPostStore struct {
	getByIDFn          func(ctx context.Context, id int64) (*model.Post, error)
	getBySlugFn        func(ctx context.Context, slug string) (*model.Post, error)
	createFn           func(ctx context.Context, post *model.Post) error
	updateContentFn    func(ctx context.Context, post *model.Post) error
	setStatusFn        func(ctx context.Context, id int64, status model.PostStatus, scheduledAt, publishedAt *time.Time) (*model.Post, error)
	claimPendingFn     func(ctx context.Context, id int64) (*model.Post, error)
	deleteDraftFn      func(ctx context.Context, id int64) error
	listByAuthorFn     func(ctx context.Context, authorID int64) ([]model.Post, error)
	listByStatusFn     func(ctx context.Context, status model.PostStatus) ([]model.Post, error)
	listDueScheduledFn func(ctx context.Context, limit int32) ([]model.Post, error)
	createCalls        int
	setStatusCalls     int
}

func (m *mockPostStore) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockPostStore) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, store.ErrNotFound
}

func (m *mockPostStore) Create(ctx context.Context, post *model.Post) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, post)
	}
	return nil
}

func (m *mockPostStore) UpdateContent(ctx context.Context, post *model.Post) error {
	if m.updateContentFn != nil {
		return m.updateContentFn(ctx, post)
	}
	return nil
}

func (m *mockPostStore) SetStatus(ctx context.Context, id int64, status model.PostStatus, scheduledAt, publishedAt *time.Time) (*model.Post, error) {
	m.setStatusCalls++
	if m.setStatusFn != nil {
		return m.setStatusFn(ctx, id, status, scheduledAt, publishedAt)
	}
	return &model.Post{ID: id, Status: status, ScheduledAt: scheduledAt, PublishedAt: publishedAt}, nil
}

func (m *mockPostStore) ClaimPending(ctx context.Context, id int64) (*model.Post, error) {
	if m.claimPendingFn != nil {
		return m.claimPendingFn(ctx, id)
	}
	return &model.Post{ID: id, Status: model.PostStatusInReview}, nil
}

func (m *mockPostStore) DeleteDraft(ctx context.Context, id int64) error {
	if m.deleteDraftFn != nil {
		return m.deleteDraftFn(ctx, id)
	}
	return nil
}

func (m *mockPostStore) ListByAuthor(ctx context.Context, authorID int64) ([]model.Post, error) {
	if m.listByAuthorFn != nil {
		return m.listByAuthorFn(ctx, authorID)
	}
	return nil, nil
}

func (m *mockPostStore) ListByStatus(ctx context.Context, status model.PostStatus) ([]model.Post, error) {
	if m.listByStatusFn != nil {
		return m.listByStatusFn(ctx, status)
	}
	return nil, nil
}

func (m *mockPostStore) ListDueScheduled(ctx context.Context, limit int32) ([]model.Post, error) {
	if m.listDueScheduledFn != nil {
		return m.listDueScheduledFn(ctx, limit)
	}
	return nil, nil
}

type mockReviewStore struct {
	getByIDFn             func(ctx context.Context, id int64) (*model.Review, error)
	getByPostFn           func(ctx context.Context, postID int64) (*model.Review, error)
	upsertForSubmissionFn func(ctx context.Context, id, postID int64, priority model.Priority) (*model.Review, error)
	claimFn               func(ctx context.Context, postID, reviewerID int64) (*model.Review, error)
	setStatusFn           func(ctx context.Context, postID int64, status model.ReviewStatus) (*model.Review, error)
	markPublishedFn       func(ctx context.Context, postID int64) (*model.Review, error)
	upsertCalls           int
	setStatusCalls        int
}

func (m *mockReviewStore) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockReviewStore) GetByPost(ctx context.Context, postID int64) (*model.Review, error) {
	if m.getByPostFn != nil {
		return m.getByPostFn(ctx, postID)
	}
	return nil, store.ErrNotFound
}

func (m *mockReviewStore) UpsertForSubmission(ctx context.Context, id, postID int64, priority model.Priority) (*model.Review, error) {
	m.upsertCalls++
	if m.upsertForSubmissionFn != nil {
		return m.upsertForSubmissionFn(ctx, id, postID, priority)
	}
	return &model.Review{ID: id, PostID: postID, Status: model.ReviewStatusPending, Priority: priority}, nil
}

func (m *mockReviewStore) Claim(ctx context.Context, postID, reviewerID int64) (*model.Review, error) {
	if m.claimFn != nil {
		return m.claimFn(ctx, postID, reviewerID)
	}
	return &model.Review{PostID: postID, ReviewerID: &reviewerID, Status: model.ReviewStatusInReview}, nil
}

func (m *mockReviewStore) SetStatus(ctx context.Context, postID int64, status model.ReviewStatus) (*model.Review, error) {
	m.setStatusCalls++
	if m.setStatusFn != nil {
		return m.setStatusFn(ctx, postID, status)
	}
	return &model.Review{PostID: postID, Status: status}, nil
}

func (m *mockReviewStore) MarkPublished(ctx context.Context, postID int64) (*model.Review, error) {
	if m.markPublishedFn != nil {
		return m.markPublishedFn(ctx, postID)
	}
	return &model.Review{PostID: postID, Status: model.ReviewStatusPublished}, nil
}

type mockFeedbackStore struct {
	createFn             func(ctx context.Context, fb *model.Feedback) error
	listByReviewFn       func(ctx context.Context, reviewID int64) ([]model.Feedback, error)
	listPublicByReviewFn func(ctx context.Context, reviewID int64) ([]model.Feedback, error)
	createCalls          int
}

func (m *mockFeedbackStore) Create(ctx context.Context, fb *model.Feedback) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, fb)
	}
	return nil
}

func (m *mockFeedbackStore) ListByReview(ctx context.Context, reviewID int64) ([]model.Feedback, error) {
	if m.listByReviewFn != nil {
		return m.listByReviewFn(ctx, reviewID)
	}
	return nil, nil
}

func (m *mockFeedbackStore) ListPublicByReview(ctx context.Context, reviewID int64) ([]model.Feedback, error) {
	if m.listPublicByReviewFn != nil {
		return m.listPublicByReviewFn(ctx, reviewID)
	}
	return nil, nil
}

type mockActivityStore struct {
	createFn    func(ctx context.Context, a *model.Activity) error
	listFn      func(ctx context.Context, postID int64) ([]model.Activity, error)
	createCalls int
	actions     []model.ActivityAction
}

func (m *mockActivityStore) Create(ctx context.Context, a *model.Activity) error {
	m.createCalls++
	m.actions = append(m.actions, a.Action)
	if m.createFn != nil {
		return m.createFn(ctx, a)
	}
	return nil
}

func (m *mockActivityStore) ListByPost(ctx context.Context, postID int64) ([]model.Activity, error) {
	if m.listFn != nil {
		return m.listFn(ctx, postID)
	}
	return nil, nil
}

type mockUserStore struct {
	getByIDFn    func(ctx context.Context, id int64) (*model.User, error)
	setRoleFn    func(ctx context.Context, id int64, role model.Role) (*model.User, error)
	listByRoleFn func(ctx context.Context, role model.Role) ([]model.User, error)
	listStaffFn  func(ctx context.Context) ([]model.User, error)
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) GetByEmail(ctx context.Context, _ string) (*model.User, error) {
	return nil, store.ErrNotFound
}

func (m *mockUserStore) GetByWorkOSID(ctx context.Context, _ string) (*model.User, error) {
	return nil, store.ErrNotFound
}

func (m *mockUserStore) Create(ctx context.Context, _ *model.User) error { return nil }

func (m *mockUserStore) Update(ctx context.Context, _ *model.User) error { return nil }

func (m *mockUserStore) UpsertByWorkOSID(ctx context.Context, _ *model.User) error { return nil }

func (m *mockUserStore) SetRole(ctx context.Context, id int64, role model.Role) (*model.User, error) {
	if m.setRoleFn != nil {
		return m.setRoleFn(ctx, id, role)
	}
	return &model.User{ID: id, Role: role}, nil
}

func (m *mockUserStore) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	if m.listByRoleFn != nil {
		return m.listByRoleFn(ctx, role)
	}
	return nil, nil
}

func (m *mockUserStore) ListEditorialStaff(ctx context.Context) ([]model.User, error) {
	if m.listStaffFn != nil {
		return m.listStaffFn(ctx)
	}
	return nil, nil
}

type mockStoreProvider struct {
	posts    *mockPostStore
	reviews  *mockReviewStore
	feedback *mockFeedbackStore
	activity *mockActivityStore
	users    *mockUserStore
}

func (m *mockStoreProvider) Posts() store.PostStore        { return m.posts }
func (m *mockStoreProvider) Reviews() store.ReviewStore    { return m.reviews }
func (m *mockStoreProvider) Feedback() store.FeedbackStore { return m.feedback }
func (m *mockStoreProvider) Activity() store.ActivityStore { return m.activity }
func (m *mockStoreProvider) Users() store.UserStore        { return m.users }

type mockTxRunner struct {
	withTxFn func(ctx context.Context, fn func(stores service.StoreProvider) error) error
}

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	if m.withTxFn != nil {
		return m.withTxFn(ctx, fn)
	}
	return fn(&mockStoreProvider{})
}

type mockProducer struct {
	enqueueFn func(ctx context.Context, msg queue.EventMessage) error
	messages  []queue.EventMessage
}

func (m *mockProducer) Enqueue(ctx context.Context, msg queue.EventMessage) error {
	m.messages = append(m.messages, msg)
	if m.enqueueFn != nil {
		return m.enqueueFn(ctx, msg)
	}
	return nil
}

func (m *mockProducer) Close() error { return nil }
