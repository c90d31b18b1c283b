package attendance

import (
	"context"
	"net/http"

	attendanceerrors "go-payroll/internal/attendance/errors"
	autherrors "go-payroll/internal/auth/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

const (
	ActionClockIn    = "clock_in"
	ActionClockOut   = "clock_out"
	ActionMarkAbsent = "mark_absent"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

type actionEnvelope struct {
	Action string `json:"action"`
}

type idEnvelope struct {
	ID string `json:"id"`
}

// Get: ?stats, ?date=YYYY-MM-DD, atau semua record.
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	if _, ok := c.GetQuery("stats"); ok {
		stats, err := h.service.GetStats(ctx)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, stats)
		return
	}

	resp, err := h.service.GetAll(ctx, ListFilter{Date: c.Query("date")})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessList(c, http.StatusOK, resp)
}

// Post dispatch berdasarkan field action.
func (h *Handler) Post(c *gin.Context) {
	var env actionEnvelope
	if err := c.ShouldBindBodyWith(&env, binding.JSON); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	switch env.Action {
	case "":
		h.writeServiceError(c, attendanceerrors.ErrActionRequired)
	case ActionClockIn:
		h.clock(c, h.service.ClockIn, "Clocked in successfully")
	case ActionClockOut:
		h.clock(c, h.service.ClockOut, "Clocked out successfully")
	case ActionMarkAbsent:
		h.markAbsent(c)
	default:
		h.writeServiceError(c, attendanceerrors.ErrInvalidAction)
	}
}

func (h *Handler) clock(c *gin.Context, fn func(ctx context.Context, employeeID string) (AttendanceResponse, error), msg string) {
	var req ClockRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := fn(c.Request.Context(), req.EmployeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, msg, resp)
}

func (h *Handler) markAbsent(c *gin.Context) {
	principal, _ := contextutil.GetPrincipal(c.Request.Context())
	if !principal.HasRole("admin", "hr") {
		h.writeServiceError(c, autherrors.ErrForbidden)
		return
	}

	var req MarkAbsentRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.MarkAbsent(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Employee marked as absent", resp)
}

func (h *Handler) Update(c *gin.Context) {
	var idEnv idEnvelope
	if err := c.ShouldBindBodyWith(&idEnv, binding.JSON); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if idEnv.ID == "" {
		h.writeServiceError(c, attendanceerrors.ErrAttendanceIDRequired)
		return
	}

	var req UpdateAttendanceRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Attendance updated successfully", resp)
}
