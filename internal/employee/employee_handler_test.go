package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/apperror"

	employeeMock "go-payroll/internal/employee/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	h := employee.NewHandler(svc)
	r := gin.New()
	r.GET("/employees", h.Get)
	r.POST("/employees", h.Create)
	r.PUT("/employees", h.Update)
	r.DELETE("/employees", h.Delete)
	return r
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEmployeeHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := employeeMock.NewMockService(ctrl)
	id := uuid.NewString()
	other := uuid.NewString()

	svc.EXPECT().GetAll(gomock.Any()).
		Return([]employee.EmployeeResponse{{ID: "1"}, {ID: "2"}}, nil)
	svc.EXPECT().GetByID(gomock.Any(), id).
		Return(employee.EmployeeResponse{ID: id, EmployeeCode: "EMP001"}, nil)
	svc.EXPECT().GetByID(gomock.Any(), other).
		Return(employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound)
	svc.EXPECT().GetStats(gomock.Any()).
		Return(employee.EmployeeStats{Total: 4, Active: 3}, nil)

	r := newRouter(svc)

	w := do(r, http.MethodGet, "/employees", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)

	w = do(r, http.MethodGet, "/employees?id="+id, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"employee_id":"EMP001"`)

	w = do(r, http.MethodGet, "/employees?id="+other, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Employee not found"}`, w.Body.String())

	w = do(r, http.MethodGet, "/employees?stats", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active":3`)
}

func TestEmployeeHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := employeeMock.NewMockService(ctrl)

	svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, "John", req.FirstName)
			return employee.EmployeeResponse{ID: "x", EmployeeCode: "EMP-000001"}, nil
		})

	r := newRouter(svc)

	body := `{"action":"create","first_name":"John","last_name":"Doe","email":"john@company.com",
		"department":"IT","position":"Dev","hire_date":"2023-01-15","salary_type":"monthly","base_salary":5000}`
	w := do(r, http.MethodPost, "/employees", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	var env map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, true, env["success"])
	assert.Equal(t, "Employee created successfully", env["message"])

	t.Run("missing field", func(t *testing.T) {
		w := do(r, http.MethodPost, "/employees", `{"first_name":"John"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "is required")
	})

	t.Run("bad salary type", func(t *testing.T) {
		bad := strings.Replace(body, `"monthly"`, `"weekly"`, 1)
		w := do(r, http.MethodPost, "/employees", bad)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Salary Type is invalid")
	})

	t.Run("unknown action", func(t *testing.T) {
		w := do(r, http.MethodPost, "/employees", `{"action":"archive"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid action")
	})
}

func TestEmployeeHandler_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := employeeMock.NewMockService(ctrl)
	id := uuid.NewString()

	svc.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, id, req.ID)
			assert.NotNil(t, req.BaseSalary)
			assert.Nil(t, req.Email)
			return employee.EmployeeResponse{ID: id}, nil
		})
	svc.EXPECT().Delete(gomock.Any(), id).
		Return(employee.DeleteResult{Deactivated: true}, nil).
		Times(2)

	r := newRouter(svc)

	w := do(r, http.MethodPut, "/employees", `{"id":"`+id+`","base_salary":6000}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPut, "/employees", `{"base_salary":6000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Employee ID required")

	w = do(r, http.MethodDelete, "/employees", `{"id":"`+id+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Employee deactivated")

	w = do(r, http.MethodDelete, "/employees?id="+id, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodDelete, "/employees", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
