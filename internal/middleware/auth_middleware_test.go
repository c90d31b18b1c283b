package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-payroll/internal/middleware"
	"go-payroll/internal/session"
	sessionMock "go-payroll/internal/session/mock"
	"go-payroll/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const cookieName = "payroll_session"

func setupRouter(t *testing.T, store session.Store, tokens *session.TokenIssuer, guards ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.LoadSession(middleware.SessionConfig{
		Store:      store,
		Tokens:     tokens,
		CookieName: cookieName,
	}))
	handlers := append(guards, func(c *gin.Context) {
		p, _ := contextutil.GetPrincipal(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": p.UserID, "role": p.Role})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := sessionMock.NewMockStore(ctrl)
	tokens := session.NewTokenIssuer("secret")

	router := setupRouter(t, store, tokens, middleware.AuthMiddleware())

	t.Run("no token -> 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authentication required")
	})

	t.Run("bearer token with live session", func(t *testing.T) {
		token, _ := tokens.Issue("sid-1", "user-1", time.Hour)
		store.EXPECT().
			Get(gomock.Any(), "sid-1").
			Return(&session.Session{ID: "sid-1", UserID: "user-1", Role: "hr"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"user-1","role":"hr"}`, w.Body.String())
	})

	t.Run("cookie token with expired session -> 401", func(t *testing.T) {
		token, _ := tokens.Issue("sid-2", "user-1", time.Hour)
		store.EXPECT().
			Get(gomock.Any(), "sid-2").
			Return(nil, session.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Session expired")
	})

	t.Run("store failure -> 401", func(t *testing.T) {
		token, _ := tokens.Issue("sid-3", "user-1", time.Hour)
		store.EXPECT().
			Get(gomock.Any(), "sid-3").
			Return(nil, errors.New("redis down"))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("forged token never reaches the store", func(t *testing.T) {
		forged, _ := session.NewTokenIssuer("other").Issue("sid-1", "user-1", time.Hour)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRoleMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := sessionMock.NewMockStore(ctrl)
	tokens := session.NewTokenIssuer("secret")

	cases := []struct {
		name    string
		role    string
		allowed []string
		status  int
		message string
	}{
		{"hr allowed for admin|hr", "hr", []string{"admin", "hr"}, http.StatusOK, ""},
		{"employee denied for admin|hr", "employee", []string{"admin", "hr"}, http.StatusForbidden, "Access denied"},
		{"hr denied for admin only", "hr", []string{"admin"}, http.StatusForbidden, "Admin privileges required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := setupRouter(t, store, tokens, middleware.AuthMiddleware(), middleware.RoleMiddleware(tc.allowed...))

			token, _ := tokens.Issue("sid", "user-1", time.Hour)
			store.EXPECT().
				Get(gomock.Any(), "sid").
				Return(&session.Session{ID: "sid", UserID: "user-1", Role: tc.role}, nil)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.message != "" {
				assert.Contains(t, w.Body.String(), tc.message)
			}
		})
	}
}
