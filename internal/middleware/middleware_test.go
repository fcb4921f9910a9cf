package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-assistant/config"
	"timesheet-assistant/pkg/log"
)

func newEngine(mw gin.HandlerFunc, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.GET("/", handler)
	return r
}

func ok(c *gin.Context) { c.Status(http.StatusOK) }

func TestRateLimit(t *testing.T) {
	m := New(log.NewNop(), config.RateLimitConfig{Enabled: true, RequestsPerMin: 1, Burst: 2})
	r := newEngine(m.RateLimit(), ok)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	// another client has its own bucket
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	m := New(log.NewNop(), config.RateLimitConfig{Enabled: false, RequestsPerMin: 1, Burst: 1})
	r := newEngine(m.RateLimit(), ok)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRequestID(t *testing.T) {
	m := New(log.NewNop(), config.RateLimitConfig{})
	var seen string
	r := newEngine(m.RequestID(), func(c *gin.Context) {
		seen, _ = c.Request.Context().Value(log.RequestIDKey).(string)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NoError(t, uuid.Validate(w.Header().Get(HeaderRequestID)))
}

func TestSession(t *testing.T) {
	m := New(log.NewNop(), config.RateLimitConfig{})
	var seen string
	r := newEngine(m.Session(), func(c *gin.Context) {
		seen = SessionID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, cookies[0].Value, seen)

	// existing cookie is reused
	first := seen
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: first})
	r.ServeHTTP(w, req)
	assert.Equal(t, first, seen)
	assert.Empty(t, w.Result().Cookies())
}
