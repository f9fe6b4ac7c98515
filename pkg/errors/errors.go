package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// AuthRequired marks a classification attempted without a signed-in user.
// No state is touched; the client redirects to login.
func AuthRequired(err error) *AppError {
	return &AppError{
		Code:    "AUTH_REQUIRED",
		Message: "Sign in to classify items",
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

// InvalidResult marks a classifier response that completed but carried no
// usable category. Distinct from a transport failure.
func InvalidResult(message string) *AppError {
	return &AppError{
		Code:    "INVALID_RESULT",
		Message: message,
		Status:  http.StatusUnprocessableEntity,
		Err:     nil,
	}
}

func ClassificationFailed(message string, err error) *AppError {
	return &AppError{
		Code:    "CLASSIFICATION_FAILED",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

// ClassificationInProgress rejects a second submission while one is still in
// flight for the same user.
func ClassificationInProgress() *AppError {
	return &AppError{
		Code:    "CLASSIFICATION_IN_PROGRESS",
		Message: "A classification is already in progress",
		Status:  http.StatusConflict,
		Err:     nil,
	}
}

func StorageUnavailable(err error) *AppError {
	return &AppError{
		Code:    "STORAGE_UNAVAILABLE",
		Message: "Profile storage is unavailable",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func RemoteDataUnavailable(section string, err error) *AppError {
	return &AppError{
		Code:    "REMOTE_DATA_UNAVAILABLE",
		Message: fmt.Sprintf("%s data is currently unavailable", section),
		Status:  http.StatusServiceUnavailable,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
