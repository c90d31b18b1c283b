package attendanceerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFoundOrInactive = apperror.New(
		apperror.CodeNotFound,
		"Employee not found or inactive",
		http.StatusNotFound,
	)
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"Employee already clocked in today",
		http.StatusConflict,
	)
	ErrAlreadyCompleted = apperror.New(
		apperror.CodeConflict,
		"Employee already completed attendance for today",
		http.StatusConflict,
	)
	ErrNoClockIn = apperror.New(
		apperror.CodeNotFound,
		"No clock-in record found for today",
		http.StatusNotFound,
	)
	ErrAlreadyClockedOut = apperror.New(
		apperror.CodeConflict,
		"Employee already clocked out today",
		http.StatusConflict,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
	ErrClockOutBeforeClockIn = apperror.New(
		apperror.CodeInvalidInput,
		"Clock-out time cannot be earlier than clock-in time",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrActionRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Action required",
		http.StatusBadRequest,
	)
	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid action",
		http.StatusBadRequest,
	)
	ErrAttendanceIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Attendance ID required",
		http.StatusBadRequest,
	)
)
