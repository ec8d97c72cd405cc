package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"afriverse.co/editorial/internal/http/handler"
	"afriverse.co/editorial/internal/service"
)

var _ = Describe("PublishHandler cron sweep", func() {
	var (
		workflowSvc  *mockWorkflowService
		publisherSvc *mockPublisherService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		workflowSvc = &mockWorkflowService{}
		publisherSvc = &mockPublisherService{
			sweepFn: func(_ context.Context) (*service.SweepResult, error) {
				return &service.SweepResult{
					Due:       3,
					Published: 2,
					Failed:    1,
					Errors:    []string{"post 7: connection reset"},
				}, nil
			},
		}
	})

	newRouter := func(secret string, isProduction bool) *gin.Engine {
		router := gin.New()
		h := handler.NewPublishHandler(workflowSvc, publisherSvc, secret, isProduction)
		cron := router.Group("/publishing")
		cron.Use(h.RequireCronSecret())
		cron.POST("/sweep", h.Sweep)
		return router
	}

	It("runs the sweep with the right bearer secret", func() {
		router := newRouter("cron-secret", true)

		req := httptest.NewRequest(http.MethodPost, "/publishing/sweep", nil)
		req.Header.Set("Authorization", "Bearer cron-secret")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var resp service.SweepResult
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Published).To(Equal(2))
		Expect(resp.Errors).To(ConsistOf("post 7: connection reset"))
	})

	It("rejects a wrong secret", func() {
		router := newRouter("cron-secret", true)

		req := httptest.NewRequest(http.MethodPost, "/publishing/sweep", nil)
		req.Header.Set("Authorization", "Bearer wrong")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("refuses to run unconfigured in production", func() {
		router := newRouter("", true)

		req := httptest.NewRequest(http.MethodPost, "/publishing/sweep", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
	})

	It("stays open for manual runs in development", func() {
		router := newRouter("", false)

		req := httptest.NewRequest(http.MethodPost, "/publishing/sweep", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
	})
})
