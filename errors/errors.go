package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the error type translated into HTTP responses at the edge
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the raw cause to errors.Is
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

func newAppError(raw error, httpCode int, code ErrorCode, message string) AppError {
	return AppError{
		Raw:       raw,
		HTTPCode:  httpCode,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// General Errors
func ErrInternal(err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_INTERNAL, "Internal server error")
}

func ErrInvalidArgument(message string) AppError {
	return newAppError(nil, http.StatusBadRequest, ErrorCode_INVALID_ARGUMENT, message)
}

func ErrNotFound(resource string) AppError {
	return newAppError(nil, http.StatusNotFound, ErrorCode_NOT_FOUND, fmt.Sprintf("%s not found", resource))
}

func ErrInvalidPayload(err error) AppError {
	return newAppError(err, http.StatusBadRequest, ErrorCode_INVALID_PAYLOAD, "Invalid payload")
}

func ErrRateLimited() AppError {
	return newAppError(nil, http.StatusTooManyRequests, ErrorCode_RATE_LIMITED, "Too many requests")
}

// Sentiment Data Errors
func ErrPlatformNotFound(platformID string) AppError {
	return newAppError(nil, http.StatusNotFound, ErrorCode_PLATFORM_NOT_FOUND, "Platform not found").
		WithDetail("platform_id", platformID)
}

func ErrClusterNotFound(clusterID string) AppError {
	return newAppError(nil, http.StatusNotFound, ErrorCode_CLUSTER_NOT_FOUND, "Cluster not found").
		WithDetail("cluster_id", clusterID)
}

func ErrDataShape(err error) AppError {
	return newAppError(err, http.StatusUnprocessableEntity, ErrorCode_DATA_SHAPE_INVALID, "Clustering data is malformed")
}

func ErrSourceUnavailable(source string, err error) AppError {
	return newAppError(err, http.StatusServiceUnavailable, ErrorCode_SOURCE_UNAVAILABLE, "Clustering source unavailable").
		WithDetail("source", source)
}
