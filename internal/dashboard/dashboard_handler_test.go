package dashboard_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-payroll/internal/dashboard"
	dashboardMock "go-payroll/internal/dashboard/mock"
	"go-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(svc dashboard.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	h := dashboard.NewHandler(svc)
	r := gin.New()
	r.GET("/dashboard", h.Get)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func get(t *testing.T, r *gin.Engine, target string) (int, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func TestDashboardHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := dashboardMock.NewMockService(ctrl)
	r := newRouter(svc)

	svc.EXPECT().GetStats(gomock.Any()).Return(dashboard.DashboardStats{
		TotalEmployees: 8, AttendanceRate: 75, Departments: []dashboard.DepartmentSummary{},
	}, nil)
	svc.EXPECT().GetQuickStats(gomock.Any()).Return(dashboard.QuickStats{
		Today: dashboard.TodayStats{Present: 6, Late: 2},
	}, nil)

	code, env := get(t, r, "/dashboard")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"totalEmployees":8`)
	assert.Contains(t, string(env.Data), `"attendanceRate":75`)

	code, env = get(t, r, "/dashboard?quick")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"today":{"present":6,"late":2,"new_employees":0}`)
}

func TestDashboardHandler_GetError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := dashboardMock.NewMockService(ctrl)
	r := newRouter(svc)

	svc.EXPECT().GetStats(gomock.Any()).Return(dashboard.DashboardStats{}, errors.New("db down"))
	svc.EXPECT().GetQuickStats(gomock.Any()).Times(0)

	code, env := get(t, r, "/dashboard")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.False(t, env.Success)
	assert.Equal(t, "An unexpected error occurred", env.Message)
}
