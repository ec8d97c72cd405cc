package handler_test

import (
	"context"
	"strconv"
	"time"

	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/service"
)

// mockAuthService resolves any session ID to a user registered in the
// users map, letting tests pick an actor via the X-Session-ID header.
type mockAuthService struct {
	users            map[int64]*model.User
	handleCallbackFn func(ctx context.Context, code string) (*model.User, *model.Session, error)
}

func (m *mockAuthService) GetAuthorizationURL(state string) (string, error) {
	return "https://auth.example.com/authorize?state=" + state, nil
}

func (m *mockAuthService) HandleCallback(ctx context.Context, code string) (*model.User, *model.Session, error) {
	if m.handleCallbackFn != nil {
		return m.handleCallbackFn(ctx, code)
	}
	return nil, nil, service.ErrInvalidCode
}

func (m *mockAuthService) ValidateSession(_ context.Context, sessionID int64) (*model.User, error) {
	user, ok := m.users[sessionID]
	if !ok {
		return nil, service.ErrSessionExpired
	}
	return user, nil
}

func (m *mockAuthService) Logout(_ context.Context, _ int64) error {
	return nil
}

func (m *mockAuthService) register(user *model.User) string {
	if m.users == nil {
		m.users = make(map[int64]*model.User)
	}
	m.users[user.ID] = user
	return strconv.FormatInt(user.ID, 10)
}

type mockPostService struct {
	createDraftFn  func(ctx context.Context, actor *model.Actor, input service.CreateDraftInput) (*model.Post, error)
	updateDraftFn  func(ctx context.Context, actor *model.Actor, postID int64, input service.UpdateDraftInput) (*model.Post, error)
	deleteDraftFn  func(ctx context.Context, actor *model.Actor, postID int64) error
	getFn          func(ctx context.Context, actor *model.Actor, postID int64) (*model.Post, error)
	getBySlugFn    func(ctx context.Context, actor *model.Actor, slug string) (*model.Post, error)
	listMineFn     func(ctx context.Context, actor *model.Actor) ([]model.Post, error)
	listByStatusFn func(ctx context.Context, actor *model.Actor, status model.PostStatus) ([]model.Post, error)
	activityFn     func(ctx context.Context, actor *model.Actor, postID int64) ([]model.Activity, error)
}

func (m *mockPostService) CreateDraft(ctx context.Context, actor *model.Actor, input service.CreateDraftInput) (*model.Post, error) {
	return m.createDraftFn(ctx, actor, input)
}

func (m *mockPostService) UpdateDraft(ctx context.Context, actor *model.Actor, postID int64, input service.UpdateDraftInput) (*model.Post, error) {
	return m.updateDraftFn(ctx, actor, postID, input)
}

func (m *mockPostService) DeleteDraft(ctx context.Context, actor *model.Actor, postID int64) error {
	return m.deleteDraftFn(ctx, actor, postID)
}

func (m *mockPostService) Get(ctx context.Context, actor *model.Actor, postID int64) (*model.Post, error) {
	return m.getFn(ctx, actor, postID)
}

func (m *mockPostService) GetBySlug(ctx context.Context, actor *model.Actor, slug string) (*model.Post, error) {
	return m.getBySlugFn(ctx, actor, slug)
}

func (m *mockPostService) ListMine(ctx context.Context, actor *model.Actor) ([]model.Post, error) {
	return m.listMineFn(ctx, actor)
}

func (m *mockPostService) ListByStatus(ctx context.Context, actor *model.Actor, status model.PostStatus) ([]model.Post, error) {
	return m.listByStatusFn(ctx, actor, status)
}

func (m *mockPostService) Activity(ctx context.Context, actor *model.Actor, postID int64) ([]model.Activity, error) {
	return m.activityFn(ctx, actor, postID)
}

type mockWorkflowService struct {
	submitFn       func(ctx context.Context, actor *model.Actor, postID int64, input service.SubmitInput) (*model.Post, error)
	claimFn        func(ctx context.Context, actor *model.Actor, postID int64) (*model.Review, error)
	addFeedbackFn  func(ctx context.Context, actor *model.Actor, postID int64, input service.AddFeedbackInput) (*model.Feedback, error)
	listFeedbackFn func(ctx context.Context, actor *model.Actor, postID int64) ([]model.Feedback, error)
	resubmitFn     func(ctx context.Context, actor *model.Actor, postID int64, note string) (*model.Post, error)
	decideFn       func(ctx context.Context, actor *model.Actor, postID int64, decision service.Decision, note string) (*model.Post, error)
	publishFn      func(ctx context.Context, actor *model.Actor, postID int64) (*model.Post, error)
	unpublishFn    func(ctx context.Context, actor *model.Actor, postID int64) (*model.Post, error)
	scheduleFn     func(ctx context.Context, actor *model.Actor, postID int64, at time.Time) (*model.Post, error)
	archiveFn      func(ctx context.Context, actor *model.Actor, postID int64) (*model.Post, error)
}

func (m *mockWorkflowService) Submit(ctx context.Context, actor *model.Actor, postID int64, input service.SubmitInput) (*model.Post, error) {
	return m.submitFn(ctx, actor, postID, input)
}

func (m *mockWorkflowService) Claim(ctx context.Context, actor *model.Actor, postID int64) (*model.Review, error) {
	return m.claimFn(ctx, actor, postID)
}

func (m *mockWorkflowService) AddFeedback(ctx context.Context, actor *model.Actor, postID int64, input service.AddFeedbackInput) (*model.Feedback, error) {
	return m.addFeedbackFn(ctx, actor, postID, input)
}

func (m *mockWorkflowService) ListFeedback(ctx context.Context, actor *model.Actor, postID int64) ([]model.Feedback, error) {
	return m.listFeedbackFn(ctx, actor, postID)
}

func (m *mockWorkflowService) Resubmit(ctx context.Context, actor *model.Actor, postID int64, note string) (*model.Post, error) {
	return m.resubmitFn(ctx, actor, postID, note)
}

func (m *mockWorkflowService) Decide(ctx context.Context, actor *model.Actor, postID int64, decision service.Decision, note string) (*model.Post, error) {
	return m.decideFn(ctx, actor, postID, decision, note)
}

func (m *mockWorkflowService) Publish(ctx context.Context, actor *model.Actor, postID int64) (*model.Post, error) {
	return m.publishFn(ctx, actor, postID)
}

func (m *mockWorkflowService) Unpublish(ctx context.Context, actor *model.Actor, postID int64) (*model.Post, error) {
	return m.unpublishFn(ctx, actor, postID)
}

func (m *mockWorkflowService) Schedule(ctx context.Context, actor *model.Actor, postID int64, at time.Time) (*model.Post, error) {
	return m.scheduleFn(ctx, actor, postID, at)
}

func (m *mockWorkflowService) Archive(ctx context.Context, actor *model.Actor, postID int64) (*model.Post, error) {
	return m.archiveFn(ctx, actor, postID)
}

type mockPublisherService struct {
	sweepFn func(ctx context.Context) (*service.SweepResult, error)
}

func (m *mockPublisherService) RunScheduledSweep(ctx context.Context) (*service.SweepResult, error) {
	return m.sweepFn(ctx)
}

type mockUserService struct {
	getFn                func(ctx context.Context, userID int64) (*model.User, error)
	setRoleFn            func(ctx context.Context, actor *model.Actor, userID int64, role model.Role) (*model.User, error)
	listByRoleFn         func(ctx context.Context, actor *model.Actor, role model.Role) ([]model.User, error)
	listEditorialStaffFn func(ctx context.Context) ([]model.User, error)
}

func (m *mockUserService) Get(ctx context.Context, userID int64) (*model.User, error) {
	return m.getFn(ctx, userID)
}

func (m *mockUserService) SetRole(ctx context.Context, actor *model.Actor, userID int64, role model.Role) (*model.User, error) {
	return m.setRoleFn(ctx, actor, userID, role)
}

func (m *mockUserService) ListByRole(ctx context.Context, actor *model.Actor, role model.Role) ([]model.User, error) {
	return m.listByRoleFn(ctx, actor, role)
}

func (m *mockUserService) ListEditorialStaff(ctx context.Context) ([]model.User, error) {
	return m.listEditorialStaffFn(ctx)
}
