package employee

import (
	"net/http"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
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

// Get: ?id= (detail), ?stats (statistik), tanpa query (list).
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	if id, ok := c.GetQuery("id"); ok {
		h.logger.Debug("http get employee by id", zap.String("employee_id", id))
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

// Create menerima body langsung atau dengan {"action": "create"}.
func (h *Handler) Create(c *gin.Context) {
	var env actionEnvelope
	if err := c.ShouldBindBodyWith(&env, binding.JSON); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if env.Action != "" && env.Action != "create" {
		h.writeServiceError(c, employeeerrors.ErrInvalidAction)
		return
	}

	var req CreateEmployeeRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.logger.Debug("http create employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusCreated, "Employee created successfully", resp)
}

func (h *Handler) Update(c *gin.Context) {
	var idEnv idEnvelope
	if err := c.ShouldBindBodyWith(&idEnv, binding.JSON); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if idEnv.ID == "" {
		h.writeServiceError(c, employeeerrors.ErrEmployeeIDRequired)
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.logger.Debug("http update employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Employee updated successfully", resp)
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
		h.writeServiceError(c, employeeerrors.ErrEmployeeIDRequired)
		return
	}
	if _, err := uuid.Parse(req.ID); err != nil {
		h.writeServiceError(c, employeeerrors.ErrEmployeeNotFound)
		return
	}

	result, err := h.service.Delete(c.Request.Context(), req.ID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, result.Message(), nil)
}
