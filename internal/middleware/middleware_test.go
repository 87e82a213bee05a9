package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
	"github.com/BruksfildServices01/detailing-scheduler/internal/usecase/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// ---------------- auth ----------------

type stubTokens struct {
	claims *auth.Claims
}

func (s stubTokens) ParseToken(raw string) (*auth.Claims, error) {
	if raw != "good" {
		return nil, httperr.ErrBusiness("invalid_token")
	}
	return s.claims, nil
}

func TestAuthMiddleware(t *testing.T) {
	claims := &auth.Claims{Username: "admin", Role: auth.RoleAdmin}
	claims.Subject = "3"

	r := gin.New()
	r.GET("/private", AuthMiddleware(stubTokens{claims: claims}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":   c.MustGet(ContextUserID),
			"user": c.GetString(ContextUsername),
		})
	})

	cases := []struct {
		header string
		status int
		code   string
	}{
		{"", http.StatusUnauthorized, "missing_authorization_header"},
		{"Token good", http.StatusUnauthorized, "invalid_authorization_header"},
		{"Bearer bad", http.StatusUnauthorized, "invalid_token"},
		{"bearer good", http.StatusOK, ""},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := serve(r, req)

		assert.Equal(t, tc.status, rec.Code, tc.header)
		if tc.code != "" {
			assert.Contains(t, rec.Body.String(), tc.code)
		} else {
			assert.JSONEq(t, `{"id":3,"user":"admin"}`, rec.Body.String())
		}
	}
}

// ---------------- request id ----------------

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	minted := rec.Header().Get(RequestIDHeader)
	assert.Len(t, minted, 36)
	assert.Equal(t, minted, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = serve(r, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

// ---------------- rate limit ----------------

func TestRateLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(1, 2, zap.NewNop())

	r := gin.New()
	r.POST("/contact", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = ip + ":1234"
		return serve(r, req).Code
	}

	assert.Equal(t, http.StatusCreated, send("10.0.0.1"))
	assert.Equal(t, http.StatusCreated, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusCreated, send("10.0.0.2"))
}

func TestRateLimiterDropsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1, zap.NewNop())

	clock := time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }

	assert.True(t, rl.limiter("10.0.0.1").Allow())
	assert.False(t, rl.limiter("10.0.0.1").Allow())
	rl.limiter("10.0.0.2")
	assert.Equal(t, 2, rl.tracked())

	clock = clock.Add(5 * time.Minute)
	rl.limiter("10.0.0.2")
	assert.Equal(t, 2, rl.tracked())

	// 10.0.0.1 has been silent for the idle window, 10.0.0.2 has not.
	clock = clock.Add(idleTTL - time.Minute)
	rl.limiter("10.0.0.3")
	assert.Equal(t, 2, rl.tracked())

	_, kept := rl.visitors["10.0.0.2"]
	assert.True(t, kept)
	_, dropped := rl.visitors["10.0.0.1"]
	assert.False(t, dropped)
}

// ---------------- cors ----------------

func TestCORSReflectsAnyOriginWhenUnconfigured(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	rec := serve(r, req)

	assert.Equal(t, "https://shop.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRestrictsToConfiguredOrigins(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://allowed.example.com"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := serve(r, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

// ---------------- logging / metrics ----------------

type recordingObserver struct {
	path   string
	status int
}

func (o *recordingObserver) ObserveHTTPRequest(_ string, path string, status int, _ time.Duration) {
	o.path = path
	o.status = status
}

func TestRequestLoggerAndMetrics(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	obs := &recordingObserver{}

	r := gin.New()
	r.Use(RequestID(), RequestLogger(zap.New(core)), Metrics(obs))
	r.GET("/api/appointments/:date", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, httptest.NewRequest(http.MethodGet, "/api/appointments/2026-10-20", nil))

	assert.Equal(t, "/api/appointments/:date", obs.path)
	assert.Equal(t, http.StatusOK, obs.status)

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/api/appointments/2026-10-20", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestRecoveryReturnsJSON(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/", func(c *gin.Context) { panic("boom") })

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
}
