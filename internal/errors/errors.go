// Package errors provides custom error types for the Targetrack API.
// All service-layer errors should use AppError so that handlers can render
// a consistent JSON body without leaking internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so that
// copies made by Wrap and WithMessage still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Employee errors.
var (
	ErrEmployeeNotFound = &AppError{Code: "EMPLOYEE_NOT_FOUND", Message: "Employee not found", StatusCode: http.StatusNotFound}
)

// Category errors.
var (
	ErrCategoryNotFound    = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrCategoryHasProducts = &AppError{Code: "CATEGORY_HAS_PRODUCTS", Message: "Category still has products", StatusCode: http.StatusConflict}
	ErrDuplicateCategory   = &AppError{Code: "DUPLICATE_CATEGORY", Message: "A category with this name already exists", StatusCode: http.StatusConflict}
)

// Product errors.
var (
	ErrProductNotFound   = &AppError{Code: "PRODUCT_NOT_FOUND", Message: "Product not found", StatusCode: http.StatusNotFound}
	ErrProductHasTargets = &AppError{Code: "PRODUCT_HAS_TARGETS", Message: "Product is referenced by existing targets", StatusCode: http.StatusConflict}
)

// Target errors.
var (
	ErrTargetNotFound       = &AppError{Code: "TARGET_NOT_FOUND", Message: "Target not found", StatusCode: http.StatusNotFound}
	ErrNoTargetsForEmployee = &AppError{Code: "NO_TARGETS_FOR_EMPLOYEE", Message: "No targets found for this employee", StatusCode: http.StatusNotFound}
)

// Achievement errors.
var (
	ErrAchievementNotFound = &AppError{Code: "ACHIEVEMENT_NOT_FOUND", Message: "Achievement not found", StatusCode: http.StatusNotFound}
	ErrAchievementExists   = &AppError{Code: "ACHIEVEMENT_EXISTS", Message: "An achievement already exists for this target", StatusCode: http.StatusConflict}
)
