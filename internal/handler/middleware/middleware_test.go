//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gym-booking/internal/domain/user"
	"gym-booking/internal/handler/middleware"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/pkg/cookie"
	"gym-booking/internal/pkg/jwt"
	"gym-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService("middleware-test-secret", time.Hour, clock.NewRealClock())
	logger := middleware.NewLogger(config.NewTestConfig().Log).GetSlogLogger()
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc), logger)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	whoami := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": role.String()})
	}
	r.GET("/me", auth.RequireAuth(), whoami)
	r.GET("/admin", auth.RequireAuth(), auth.RequireRole(user.RoleAdmin), whoami)
	r.GET("/ws", auth.RequireAuth(), whoami)
	return r, svc
}

func TestRequireAuth(t *testing.T) {
	r, svc := newAuthRouter(t)
	id := uuid.New()
	token, err := svc.GenerateToken(id, user.RoleUser)
	require.NoError(t, err)

	tests := []struct {
		name    string
		path    string
		prepare func(req *http.Request)
		want    int
	}{
		{
			name:    "bearer header",
			path:    "/me",
			prepare: func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) },
			want:    http.StatusOK,
		},
		{
			name:    "cookie",
			path:    "/me",
			prepare: func(req *http.Request) { req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: token}) },
			want:    http.StatusOK,
		},
		{
			name: "query token on websocket upgrade",
			path: "/ws?token=" + token,
			prepare: func(req *http.Request) {
				req.Header.Set("Upgrade", "websocket")
			},
			want: http.StatusOK,
		},
		{
			name:    "query token ignored on plain requests",
			path:    "/me?token=" + token,
			prepare: func(*http.Request) {},
			want:    http.StatusUnauthorized,
		},
		{
			name:    "missing token",
			path:    "/me",
			prepare: func(*http.Request) {},
			want:    http.StatusUnauthorized,
		},
		{
			name:    "tampered token",
			path:    "/me",
			prepare: func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token+"x") },
			want:    http.StatusUnauthorized,
		},
		{
			name:    "user on admin route",
			path:    "/admin",
			prepare: func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) },
			want:    http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			tt.prepare(req)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code, w.Body.String())
			if tt.want == http.StatusOK {
				assert.Contains(t, w.Body.String(), id.String())
			}
		})
	}
}

func TestRequireRoleAdmin(t *testing.T) {
	r, svc := newAuthRouter(t)
	token, err := svc.GenerateToken(uuid.New(), user.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"ADMIN"`)
}

type recordingObserver struct {
	method, route string
	status        int
}

func (o *recordingObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	o.method, o.route, o.status = method, route, status
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	obs := &recordingObserver{}
	r := gin.New()
	r.Use(middleware.Metrics(obs))
	r.DELETE("/bookings/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/bookings/"+uuid.NewString(), nil))

	assert.Equal(t, http.MethodDelete, obs.method)
	assert.Equal(t, "/bookings/:id", obs.route)
	assert.Equal(t, http.StatusNoContent, obs.status)
}

func TestLoggingMiddlewareRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)
	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, middleware.GetRequestID(c)) })

	t.Run("propagates the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "req-123", w.Body.String())
	})

	t.Run("generates one when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), w.Body.String())
	})
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log).GetSlogLogger()
	r := gin.New()
	r.Use(middleware.CustomRecovery(logger))
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}
