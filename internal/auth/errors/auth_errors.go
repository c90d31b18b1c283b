package autherrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrCredentialsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Email and password are required",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"User not found",
		http.StatusUnauthorized,
	)
	ErrInvalidPassword = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid password",
		http.StatusUnauthorized,
	)
	ErrUnauthenticated = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication required",
		http.StatusUnauthorized,
	)
	ErrSessionExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Session expired, please log in again",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"Access denied",
		http.StatusForbidden,
	)
	ErrAdminOnly = apperror.New(
		apperror.CodeForbidden,
		"Access denied. Admin privileges required.",
		http.StatusForbidden,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Email already exists",
		http.StatusConflict,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid role. Must be admin, hr, or employee.",
		http.StatusBadRequest,
	)
	ErrCurrentPasswordIncorrect = apperror.New(
		apperror.CodeInvalidInput,
		"Current password is incorrect",
		http.StatusBadRequest,
	)
	ErrPasswordsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Current password and new password are required",
		http.StatusBadRequest,
	)
	ErrPasswordTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"New password must be at least 6 characters",
		http.StatusBadRequest,
	)
	ErrInvalidRequest = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid request",
		http.StatusBadRequest,
	)
	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid action",
		http.StatusBadRequest,
	)
)
