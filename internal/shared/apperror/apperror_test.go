package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and message", func(t *testing.T) {
		err := apperror.New(apperror.CodeConflict, "Email already exists", http.StatusConflict)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, apperror.CodeConflict, httpErr.Code)
		assert.Equal(t, "Email already exists", httpErr.Message)
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", apperror.ErrNotFound)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})

	t.Run("unknown error becomes generic 500", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "An unexpected error occurred", httpErr.Message)
	})
}

func TestMapValidationError(t *testing.T) {
	apperror.Init()

	type req struct {
		EmployeeID string `json:"employee_id" binding:"required"`
		Email      string `json:"email" binding:"omitempty,email"`
	}

	err := binding.Validator.ValidateStruct(&req{})
	mapped := apperror.MapValidationError(err)
	assert.Equal(t, "Employee Id is required", mapped.Error())

	err = binding.Validator.ValidateStruct(&req{EmployeeID: "x", Email: "nope"})
	mapped = apperror.MapValidationError(err)
	assert.Equal(t, "Email is invalid", mapped.Error())

	mapped = apperror.MapValidationError(errors.New("EOF"))
	assert.Equal(t, "Invalid input", mapped.Error())
}

func TestParseClock(t *testing.T) {
	d, ok := apperror.ParseClock("09:00:01")
	assert.True(t, ok)
	assert.Equal(t, "9h0m1s", d.String())

	d, ok = apperror.ParseClock("17:30")
	assert.True(t, ok)
	assert.Equal(t, "17h30m0s", d.String())

	_, ok = apperror.ParseClock("25:00")
	assert.False(t, ok)
}
