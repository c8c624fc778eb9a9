package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ncnews/internal/handlers"
	"ncnews/internal/logger"
	"ncnews/internal/middleware"
	"ncnews/internal/models"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubTopics struct{}

func (stubTopics) List(context.Context) ([]models.Topic, error) {
	return []models.Topic{{Slug: "mitch", Description: "The man, the Mitch, the legend"}}, nil
}

func newTestRouter(limiter *middleware.RateLimiter) *mux.Router {
	router := mux.NewRouter()
	InitRoutes(router, limiter,
		handlers.NewTopicHandler(stubTopics{}),
		handlers.NewArticleHandler(nil),
		handlers.NewCommentHandler(nil),
		handlers.NewUserHandler(nil),
	)
	return router
}

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func msgOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	msg, _ := body["msg"].(string)
	return msg
}

func TestRoutes(t *testing.T) {
	router := newTestRouter(nil)

	t.Run("api index", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/api")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("topics", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/api/topics")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"slug":"mitch"`)
	})

	t.Run("unknown path", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/api/not-a-route")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Endpoint not found!", msgOf(t, rec))
		assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("wrong method", func(t *testing.T) {
		rec := serve(router, http.MethodDelete, "/api/topics")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "Method not allowed!", msgOf(t, rec))
		assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("non numeric ids never reach services", func(t *testing.T) {
		for _, tc := range []struct{ method, target string }{
			{http.MethodGet, "/api/articles/abc"},
			{http.MethodPatch, "/api/articles/abc"},
			{http.MethodGet, "/api/articles/abc/comments"},
			{http.MethodPost, "/api/articles/abc/comments"},
			{http.MethodDelete, "/api/comments/abc"},
		} {
			rec := serve(router, tc.method, tc.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code, tc.method+" "+tc.target)
			assert.Equal(t, "Bad request!", msgOf(t, rec))
		}
	})

	t.Run("metrics", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/metrics")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "http_requests_total")
	})
}

func TestRoutes_FallbacksAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })

	router := newTestRouter(nil)
	serve(router, http.MethodGet, "/nowhere")
	serve(router, http.MethodPut, "/api/users")

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 2)
	assert.EqualValues(t, http.StatusNotFound, entries[0].ContextMap()["status"])
	assert.EqualValues(t, http.StatusMethodNotAllowed, entries[1].ContextMap()["status"])
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
}

func TestRoutes_RateLimited(t *testing.T) {
	router := newTestRouter(middleware.NewRateLimiter(0.001, 1))

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api").Code)
	rec := serve(router, http.MethodGet, "/api")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many requests!", msgOf(t, rec))
}
