package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"afriverse.co/editorial/internal/http/handler"
	"afriverse.co/editorial/internal/http/middleware"
	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/service"
	"afriverse.co/editorial/internal/store"
)

var _ = Describe("PostHandler", func() {
	var (
		router        *gin.Engine
		postSvc       *mockPostService
		authSvc       *mockAuthService
		authorSession string
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		postSvc = &mockPostService{}
		authSvc = &mockAuthService{}

		authorSession = authSvc.register(&model.User{ID: 10, Name: "Amara", Email: "amara@afriverse.co", Role: model.RoleAuthor})

		h := handler.NewPostHandler(postSvc)

		public := router.Group("/posts")
		public.Use(middleware.OptionalAuth(authSvc))
		{
			public.GET("/:id", h.Get)
			public.GET("/slug/:slug", h.GetBySlug)
		}

		authed := router.Group("/posts")
		authed.Use(middleware.RequireAuth(authSvc))
		{
			authed.POST("", h.Create)
			authed.PUT("/:id", h.Update)
		}
	})

	Describe("Create", func() {
		It("returns 201 with allowed actions for the fresh draft", func() {
			postSvc.createDraftFn = func(_ context.Context, actor *model.Actor, input service.CreateDraftInput) (*model.Post, error) {
				return &model.Post{
					ID:       101,
					AuthorID: actor.ID,
					Title:    input.Title,
					Slug:     "lagos-after-dark",
					Status:   model.PostStatusDraft,
				}, nil
			}

			body, _ := json.Marshal(map[string]string{
				"title": "Lagos After Dark",
				"body":  "The city never sleeps.",
			})

			req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Session-ID", authorSession)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["id"]).To(Equal("101"))
			Expect(resp["slug"]).To(Equal("lagos-after-dark"))
			Expect(resp["allowed_actions"]).To(ContainElement("submit"))
		})

		It("returns 400 when the title is missing", func() {
			body, _ := json.Marshal(map[string]string{"body": "no title"})

			req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Session-ID", authorSession)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Get", func() {
		It("serves published posts to anonymous readers", func() {
			postSvc.getFn = func(_ context.Context, actor *model.Actor, postID int64) (*model.Post, error) {
				Expect(actor).To(BeNil())
				return &model.Post{ID: postID, Status: model.PostStatusPublished}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/posts/101", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("returns 404 when visibility rules hide the post", func() {
			postSvc.getFn = func(_ context.Context, _ *model.Actor, _ int64) (*model.Post, error) {
				return nil, store.ErrNotFound
			}

			req := httptest.NewRequest(http.MethodGet, "/posts/101", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Update", func() {
		It("returns 400 once the post left its editable states", func() {
			postSvc.updateDraftFn = func(_ context.Context, _ *model.Actor, _ int64, _ service.UpdateDraftInput) (*model.Post, error) {
				return nil, service.ErrNotEditable
			}

			body, _ := json.Marshal(map[string]string{"title": "Lagos After Dark, Revisited"})

			req := httptest.NewRequest(http.MethodPut, "/posts/101", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Session-ID", authorSession)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
