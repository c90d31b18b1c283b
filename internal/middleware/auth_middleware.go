package middleware

import (
	"errors"
	"strings"

	autherrors "go-payroll/internal/auth/errors"
	"go-payroll/internal/session"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

type SessionConfig struct {
	Store      session.Store
	Tokens     *session.TokenIssuer
	CookieName string
	Logger     *zap.Logger
}

// ExtractToken mengambil token dari header Authorization (Bearer) atau cookie session.
func ExtractToken(c *gin.Context, cookieName string) string {
	if tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found && tokenString != "" {
		return tokenString
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

// LoadSession menempelkan principal ke context jika request membawa session yang valid.
// Request tanpa session tetap diteruskan; AuthMiddleware yang memutuskan menolak.
func LoadSession(cfg SessionConfig) gin.HandlerFunc {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("session")

	return func(c *gin.Context) {
		tokenString := ExtractToken(c, cfg.CookieName)
		if tokenString == "" {
			c.Next()
			return
		}

		sid, err := cfg.Tokens.Parse(tokenString)
		if err != nil {
			c.Set("session_error", autherrors.ErrSessionExpired)
			c.Next()
			return
		}

		sess, err := cfg.Store.Get(c.Request.Context(), sid)
		if err != nil {
			if !errors.Is(err, session.ErrSessionNotFound) {
				logger.Error("load session failed", zap.String("session_id", sid), zap.Error(err))
			}
			c.Set("session_error", autherrors.ErrSessionExpired)
			c.Next()
			return
		}

		principal := contextutil.Principal{
			UserID:    sess.UserID,
			Name:      sess.Name,
			Email:     sess.Email,
			Role:      sess.Role,
			SessionID: sess.ID,
		}

		c.Set(ContextUserID, principal.UserID)
		c.Set(ContextRole, principal.Role)
		c.Request = c.Request.WithContext(contextutil.WithPrincipal(c.Request.Context(), principal))

		c.Next()
	}
}

// AuthMiddleware menolak request yang belum login.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := contextutil.GetPrincipal(c.Request.Context()); ok {
			c.Next()
			return
		}

		errObj := autherrors.ErrUnauthenticated
		if v, exists := c.Get("session_error"); exists {
			if e, ok := v.(error); ok && errors.Is(e, autherrors.ErrSessionExpired) {
				errObj = autherrors.ErrSessionExpired
			}
		}
		response.AbortError(c, errObj.HTTPStatus, errObj.Message)
	}
}

// RoleMiddleware: role-string equality, tanpa permission matrix.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := contextutil.GetPrincipal(c.Request.Context())
		if !ok {
			response.AbortError(c, autherrors.ErrUnauthenticated.HTTPStatus, autherrors.ErrUnauthenticated.Message)
			return
		}

		if !principal.HasRole(allowedRoles...) {
			errObj := autherrors.ErrForbidden
			if len(allowedRoles) == 1 && allowedRoles[0] == "admin" {
				errObj = autherrors.ErrAdminOnly
			}
			response.AbortError(c, errObj.HTTPStatus, errObj.Message)
			return
		}

		c.Next()
	}
}
