package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list carries count and empty array", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		response.SuccessList[string](c, http.StatusOK, nil)
		assert.JSONEq(t, `{"success":true,"data":[],"count":0}`, w.Body.String())
	})

	t.Run("error has message only", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		response.Error(c, http.StatusNotFound, "Employee not found")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Employee not found"}`, w.Body.String())
	})

	t.Run("abort stops the chain", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		response.AbortError(c, http.StatusForbidden, "Access denied")
		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
