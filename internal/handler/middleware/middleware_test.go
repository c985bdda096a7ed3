//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"activity-booking/internal/domain/auth"
	"activity-booking/internal/handler/middleware"
	"activity-booking/internal/pkg/apikey"
	"activity-booking/internal/pkg/config"
	"activity-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	tokens *jwt.Service
	router *gin.Engine
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	hash, err := apikey.Hash(config.TestPublicAPIKey)
	s.Require().NoError(err)
	s.tokens = jwt.NewService("test-secret", time.Hour)
	m := middleware.NewAuthMiddleware(s.tokens, config.AuthConfig{PublicAPIKeyHash: hash})

	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	s.router = gin.New()
	s.router.GET("/public", m.RequireAPIKey(), ok)
	s.router.GET("/monitor", m.RequireRole(auth.RoleMonitor), ok)
	s.router.GET("/admin", m.RequireRole(auth.RoleAdmin), ok)
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) do(path string, headers map[string]string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w.Code
}

func (s *AuthMiddlewareTestSuite) token(role auth.Role) string {
	tok, err := s.tokens.GenerateToken("ops@example.com", role)
	s.Require().NoError(err)
	return "Bearer " + tok
}

func (s *AuthMiddlewareTestSuite) TestRequireAPIKey() {
	s.Equal(http.StatusUnauthorized, s.do("/public", nil))
	s.Equal(http.StatusUnauthorized, s.do("/public", map[string]string{middleware.HeaderAPIKey: "wrong"}))
	s.Equal(http.StatusNoContent, s.do("/public", map[string]string{middleware.HeaderAPIKey: config.TestPublicAPIKey}))
	// second hit is served from the verified cache
	s.Equal(http.StatusNoContent, s.do("/public", map[string]string{middleware.HeaderAPIKey: config.TestPublicAPIKey}))
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	tests := []struct {
		name   string
		path   string
		auth   string
		expect int
	}{
		{"no token", "/monitor", "", http.StatusUnauthorized},
		{"garbage token", "/monitor", "Bearer nope", http.StatusUnauthorized},
		{"monitor on monitor route", "/monitor", s.token(auth.RoleMonitor), http.StatusNoContent},
		{"admin on monitor route", "/monitor", s.token(auth.RoleAdmin), http.StatusNoContent},
		{"monitor on admin route", "/admin", s.token(auth.RoleMonitor), http.StatusForbidden},
		{"admin on admin route", "/admin", s.token(auth.RoleAdmin), http.StatusNoContent},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			headers := map[string]string{}
			if tt.auth != "" {
				headers["Authorization"] = tt.auth
			}
			s.Equal(tt.expect, s.do(tt.path, headers))
		})
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{PerMinute: 1, Burst: 2})
	r := gin.New()
	r.GET("/", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, call("10.0.0.1"))
	require.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2"), "buckets are per client")
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.GET("/", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}
