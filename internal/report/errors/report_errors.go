package reporterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidReportType = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid report type. Must be payroll, attendance, or employees.",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end must be on or after start",
		http.StatusBadRequest,
	)
)
