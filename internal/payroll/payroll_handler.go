package payroll

import (
	"fmt"
	"net/http"

	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

const (
	ActionProcess      = "process"
	ActionUpdateStatus = "update_status"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payroll.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payroll request failed",
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

// Get: ?id=&payslip (PDF), ?id= (detail), ?stats, atau list.
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	if id, ok := c.GetQuery("id"); ok {
		if _, wantPayslip := c.GetQuery("payslip"); wantPayslip {
			h.downloadPayslip(c, id)
			return
		}
		resp, err := h.service.GetByID(ctx, id)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp)
		return
	}

	if _, ok := c.GetQuery("stats"); ok {
		stats, err := h.service.GetStats(ctx)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, stats)
		return
	}

	resp, err := h.service.GetAll(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessList(c, http.StatusOK, resp)
}

func (h *Handler) downloadPayslip(c *gin.Context, id string) {
	slip, err := h.service.Payslip(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, slip.Filename))
	c.Data(http.StatusOK, "application/pdf", slip.Content)
}

// Post: tanpa action diperlakukan sebagai process.
func (h *Handler) Post(c *gin.Context) {
	var env actionEnvelope
	if err := c.ShouldBindBodyWith(&env, binding.JSON); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	switch env.Action {
	case "", ActionProcess:
		h.process(c)
	case ActionUpdateStatus:
		h.updateStatus(c)
	default:
		h.writeServiceError(c, payrollerrors.ErrInvalidAction)
	}
}

func (h *Handler) process(c *gin.Context) {
	var req ProcessPayrollRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.logger.Debug("http process payroll validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	records, err := h.service.Process(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessListMessage(c, http.StatusOK, "Payroll processed successfully", records)
}

func (h *Handler) updateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if req.ID == "" || req.Status == "" {
		h.writeServiceError(c, payrollerrors.ErrIDAndStatusRequired)
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), req.ID, req.Status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Payroll status updated successfully", resp)
}

func (h *Handler) Update(c *gin.Context) {
	h.updateStatus(c)
}

// Delete membaca id dari body; query ?id= dipakai sebagai fallback.
func (h *Handler) Delete(c *gin.Context) {
	var req idEnvelope
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
	}
	if req.ID == "" {
		req.ID = c.Query("id")
	}
	if req.ID == "" {
		h.writeServiceError(c, payrollerrors.ErrPayrollIDRequired)
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Payroll record deleted successfully", nil)
}
