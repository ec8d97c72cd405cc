package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"afriverse.co/editorial/internal/http/handler"
	"afriverse.co/editorial/internal/http/middleware"
	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/service"
	"afriverse.co/editorial/internal/workflow"
)

var _ = Describe("ReviewHandler", func() {
	var (
		router        *gin.Engine
		workflowSvc   *mockWorkflowService
		postSvc       *mockPostService
		authSvc       *mockAuthService
		authorSession string
		editorSession string
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		workflowSvc = &mockWorkflowService{}
		postSvc = &mockPostService{}
		authSvc = &mockAuthService{}

		authorSession = authSvc.register(&model.User{ID: 10, Name: "Amara", Email: "amara@afriverse.co", Role: model.RoleAuthor})
		editorSession = authSvc.register(&model.User{ID: 20, Name: "Efe", Email: "efe@afriverse.co", Role: model.RoleEditor})

		h := handler.NewReviewHandler(workflowSvc, postSvc)

		posts := router.Group("/posts")
		posts.Use(middleware.RequireAuth(authSvc))
		{
			posts.POST("/:id/submit", h.Submit)
			posts.POST("/:id/feedback", h.AddFeedback)

			editorial := posts.Group("")
			editorial.Use(middleware.RequireRole(model.RoleEditor))
			{
				editorial.POST("/:id/claim", h.Claim)
				editorial.POST("/:id/decision", h.Decide)
			}
		}
	})

	do := func(method, path, session string, payload any) *httptest.ResponseRecorder {
		var body bytes.Buffer
		if payload != nil {
			Expect(json.NewEncoder(&body).Encode(payload)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &body)
		req.Header.Set("Content-Type", "application/json")
		if session != "" {
			req.Header.Set("X-Session-ID", session)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("Submit", func() {
		It("returns 200 with the pending post", func() {
			workflowSvc.submitFn = func(_ context.Context, actor *model.Actor, postID int64, input service.SubmitInput) (*model.Post, error) {
				Expect(actor.ID).To(Equal(int64(10)))
				Expect(input.Priority).To(Equal(model.PriorityUrgent))
				Expect(input.Note).To(Equal("ready"))
				return &model.Post{ID: postID, AuthorID: actor.ID, Status: model.PostStatusPendingReview}, nil
			}

			w := do(http.MethodPost, "/posts/77/submit", authorSession, map[string]string{"priority": "urgent", "note": "ready"})

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["status"]).To(Equal("pending_review"))
		})

		It("returns 400 with itemized fields when the gates fail", func() {
			workflowSvc.submitFn = func(_ context.Context, _ *model.Actor, _ int64, _ service.SubmitInput) (*model.Post, error) {
				return nil, &service.ValidationError{Fields: map[string]string{
					"title": "title must be at least 10 characters",
					"body":  "body must be at least 300 words",
				}}
			}

			w := do(http.MethodPost, "/posts/77/submit", authorSession, nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			fields := resp["fields"].(map[string]any)
			Expect(fields).To(HaveKey("title"))
			Expect(fields).To(HaveKey("body"))
		})

		It("returns 400 when the post cannot move from its status", func() {
			workflowSvc.submitFn = func(_ context.Context, _ *model.Actor, _ int64, _ service.SubmitInput) (*model.Post, error) {
				return nil, &workflow.InvalidTransitionError{From: model.PostStatusPublished, Action: workflow.ActionSubmit}
			}

			w := do(http.MethodPost, "/posts/77/submit", authorSession, nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["code"]).To(Equal("invalid_transition"))
		})

		It("returns 401 without a session", func() {
			w := do(http.MethodPost, "/posts/77/submit", "", nil)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 400 on a malformed id", func() {
			w := do(http.MethodPost, "/posts/not-a-number/submit", authorSession, nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Claim", func() {
		It("returns the claimed review to an editor", func() {
			now := time.Now()
			workflowSvc.claimFn = func(_ context.Context, actor *model.Actor, postID int64) (*model.Review, error) {
				Expect(actor.ID).To(Equal(int64(20)))
				return &model.Review{
					ID:         5,
					PostID:     postID,
					Status:     model.ReviewStatusInReview,
					Priority:   model.PriorityNormal,
					ReviewerID: &actor.ID,
					ClaimedAt:  &now,
				}, nil
			}

			w := do(http.MethodPost, "/posts/77/claim", editorSession, nil)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["status"]).To(Equal("in_review"))
			Expect(resp["reviewer_id"]).To(Equal("20"))
		})

		It("returns 403 for non-editorial callers before the service runs", func() {
			w := do(http.MethodPost, "/posts/77/claim", authorSession, nil)

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 400 when another reviewer won the race", func() {
			workflowSvc.claimFn = func(_ context.Context, _ *model.Actor, _ int64) (*model.Review, error) {
				return nil, service.ErrAlreadyClaimed
			}

			w := do(http.MethodPost, "/posts/77/claim", editorSession, nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Decide", func() {
		It("passes the decision and note through", func() {
			workflowSvc.decideFn = func(_ context.Context, _ *model.Actor, postID int64, decision service.Decision, note string) (*model.Post, error) {
				Expect(decision).To(Equal(service.DecisionRequestChanges))
				Expect(note).To(Equal("tighten the intro"))
				return &model.Post{ID: postID, Status: model.PostStatusChangesRequested}, nil
			}

			w := do(http.MethodPost, "/posts/77/decision", editorSession, map[string]string{
				"decision": "request_changes",
				"note":     "tighten the intro",
			})

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("rejects unknown decisions at binding", func() {
			w := do(http.MethodPost, "/posts/77/decision", editorSession, map[string]string{
				"decision": "maybe",
			})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 403 when another reviewer owns the review", func() {
			workflowSvc.decideFn = func(_ context.Context, _ *model.Actor, _ int64, _ service.Decision, _ string) (*model.Post, error) {
				return nil, service.ErrNotReviewer
			}

			w := do(http.MethodPost, "/posts/77/decision", editorSession, map[string]string{
				"decision": "approve",
			})

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("AddFeedback", func() {
		It("returns 201 with the created feedback", func() {
			workflowSvc.addFeedbackFn = func(_ context.Context, actor *model.Actor, postID int64, input service.AddFeedbackInput) (*model.Feedback, error) {
				Expect(input.Type).To(Equal(model.FeedbackTypeComment))
				return &model.Feedback{
					ID:         9,
					ReviewID:   5,
					AuthorID:   actor.ID,
					AuthorName: actor.Name,
					AuthorRole: actor.Role,
					Type:       input.Type,
					Body:       input.Body,
				}, nil
			}

			w := do(http.MethodPost, "/posts/77/feedback", editorSession, map[string]any{
				"type": "comment",
				"body": "second paragraph drags",
			})

			Expect(w.Code).To(Equal(http.StatusCreated))
		})

		It("rejects an unknown feedback type at binding", func() {
			w := do(http.MethodPost, "/posts/77/feedback", editorSession, map[string]any{
				"type": "rant",
				"body": "no",
			})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
