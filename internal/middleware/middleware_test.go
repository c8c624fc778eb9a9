package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ncnews/internal/logger"
	"ncnews/internal/reqctx"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = reqctx.GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
}

func TestLogging_RecordsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })

	h := RequestID(Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/topics?x=1", nil))

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.EqualValues(t, 15, fields["bytes"])
	assert.Equal(t, "/api/topics", fields["path"])
	assert.Equal(t, "x=1", fields["query"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestRecoverer_ReturnsJSON500(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error!", body["msg"])
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	router := mux.NewRouter()
	router.Use(Metrics)
	router.HandleFunc("/api/articles/{article_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	counter := httpReqs.WithLabelValues(http.MethodGet, "/api/articles/{article_id}", "404")
	before := testutil.ToFloat64(counter)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/articles/7", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/articles/8", nil))

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, float64(0), testutil.ToFloat64(httpInflight))
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	frozen := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }

	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:1111"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:2222"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:3333"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2:1111"))
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(5, 5)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.limiter("stale")
	now = now.Add(visitorTTL + time.Second)
	for i := 0; i < cleanupInterval; i++ {
		rl.limiter("fresh")
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "stale")
	assert.Contains(t, rl.visitors, "fresh")
}
