package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/SscSPs/l10n_addons/internal/middleware"
	"github.com/SscSPs/l10n_addons/internal/utils"
)

const secret = "test-secret-key-that-is-long-enough"

type recordedEvent struct {
	distinctID string
	event      string
	properties map[string]any
}

type fakeTracker struct {
	events []recordedEvent
}

func (f *fakeTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	f.events = append(f.events, recordedEvent{distinctID, event, properties})
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/api/v1/orders/:id", func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user": userID})
	})
	return r
}

func serve(r *gin.Engine, header, value string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/orders/o1", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(middleware.AuthMiddleware(secret))

	token, err := utils.GenerateJWT("alice", secret, time.Hour)
	require.NoError(t, err)
	w := serve(r, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"alice"}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(r, "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "Authorization", token).Code)

	expired, err := utils.GenerateJWT("alice", secret, -time.Minute)
	require.NoError(t, err)
	w = serve(r, "Authorization", "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")

	other, err := utils.GenerateJWT("alice", "another-secret", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "Authorization", "Bearer "+other).Code)
}

func TestAPIKeyAuth(t *testing.T) {
	r := newRouter(
		middleware.APIKeyAuth(map[string]string{"k1": "scheduler"}),
		middleware.AuthMiddleware(secret),
	)

	w := serve(r, "x-api-key", "k1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"client:scheduler"}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(r, "x-api-key", "nope").Code)

	// Without the header the JWT middleware decides.
	assert.Equal(t, http.StatusUnauthorized, serve(r, "", "").Code)
}

func TestRateLimit(t *testing.T) {
	l := limiter.New(memory.NewStore(), limiter.Rate{Period: time.Minute, Limit: 2})
	r := newRouter(middleware.RateLimit(l))

	assert.Equal(t, http.StatusOK, serve(r, "", "").Code)
	w := serve(r, "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = serve(r, "", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// An api key client has its own bucket.
	assert.Equal(t, http.StatusOK, serve(r, "x-api-key", "k1").Code)
}

func TestPosthogMiddleware(t *testing.T) {
	tracker := &fakeTracker{}
	r := newRouter(
		middleware.APIKeyAuth(map[string]string{"k1": "scheduler"}),
		middleware.PosthogMiddleware(tracker),
	)

	serve(r, "x-api-key", "k1")
	serve(r, "x-api-key", "bad") // Rejected requests are not tracked

	require.Len(t, tracker.events, 1)
	ev := tracker.events[0]
	assert.Equal(t, "client:scheduler", ev.distinctID)
	assert.Equal(t, "api_v1_orders_:id", ev.event)
	assert.Equal(t, http.StatusOK, ev.properties["status_code"])
	assert.Equal(t, map[string]string{"id": "o1"}, ev.properties["params"])
	assert.Equal(t, "api_key", ev.properties["auth_method"])
}

func TestRouteRateLimit(t *testing.T) {
	l := limiter.New(memory.NewStore(), limiter.Rate{Period: time.Minute, Limit: 1})
	r := newRouter(middleware.RouteRateLimit(l))

	w := serve(r, "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusTooManyRequests, serve(r, "", "").Code)
}
