package auth

import (
	"net/http"
	"time"

	autherrors "go-payroll/internal/auth/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

const (
	ActionLogin          = "login"
	ActionLogout         = "logout"
	ActionRegister       = "register"
	ActionChangePassword = "change_password"
)

type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

type Handler struct {
	service Service
	cookie  CookieConfig
	logger  *zap.Logger
}

func NewHandler(service Service, cookie CookieConfig, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, cookie: cookie, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("method", c.Request.Method),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) setCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

type actionEnvelope struct {
	Action string `json:"action"`
}

// Get: ?check (status login) atau ?users (khusus admin).
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	if _, ok := c.GetQuery("check"); ok {
		resp, err := h.service.Check(ctx)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		if !resp.Authenticated {
			response.SuccessMessage(c, http.StatusOK, "Not authenticated", resp)
			return
		}
		response.Success(c, http.StatusOK, resp)
		return
	}

	if _, ok := c.GetQuery("users"); ok {
		if !h.requireAdmin(c) {
			return
		}
		users, err := h.service.ListUsers(ctx)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.SuccessList(c, http.StatusOK, users)
		return
	}

	h.writeServiceError(c, autherrors.ErrInvalidRequest)
}

func (h *Handler) requireAdmin(c *gin.Context) bool {
	p, ok := contextutil.GetPrincipal(c.Request.Context())
	if !ok {
		h.writeServiceError(c, autherrors.ErrUnauthenticated)
		return false
	}
	if !p.HasRole(RoleAdmin) {
		h.writeServiceError(c, autherrors.ErrAdminOnly)
		return false
	}
	return true
}

func (h *Handler) Post(c *gin.Context) {
	var env actionEnvelope
	if err := c.ShouldBindBodyWith(&env, binding.JSON); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	switch env.Action {
	case ActionLogin:
		h.login(c)
	case ActionLogout:
		h.logout(c)
	case ActionRegister:
		h.register(c)
	case ActionChangePassword:
		h.changePassword(c)
	default:
		h.writeServiceError(c, autherrors.ErrInvalidAction)
	}
}

func (h *Handler) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.setCookie(c, resp.Token, int(h.cookie.TTL.Seconds()))
	response.SuccessMessage(c, http.StatusOK, "Login successful", resp)
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.setCookie(c, "", -1)
	response.SuccessMessage(c, http.StatusOK, "Logout successful", nil)
}

func (h *Handler) register(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusCreated, "User registered successfully", resp)
}

func (h *Handler) changePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Password changed successfully", nil)
}
