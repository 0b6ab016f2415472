package errors

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "file-wrangler/internal/app/errors"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindBadRequest         ErrorKind = "bad_request"
	KindNotFound           ErrorKind = "not_found"
	KindForbidden          ErrorKind = "forbidden"
	KindInvalidPattern     ErrorKind = "invalid_pattern"
	KindConflict           ErrorKind = "conflict"
	KindBusy               ErrorKind = "busy"
	KindStorage            ErrorKind = "storage"
	KindStorageFull        ErrorKind = "storage_full"
	KindInternal           ErrorKind = "internal"
	KindServiceUnavailable ErrorKind = "service_unavailable"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Code      string            `json:"code,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindInvalidPattern:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict, KindBusy:
		return http.StatusConflict
	case KindStorage:
		return http.StatusBadGateway
	case KindStorageFull:
		return http.StatusInsufficientStorage
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError(message string) *APIError {
	return &APIError{
		Kind:    KindForbidden,
		Message: message,
	}
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *APIError {
	return &APIError{
		Kind:    KindConflict,
		Message: message,
	}
}

// NewBusyError creates a busy error for when an operation slot is taken
func NewBusyError(message string) *APIError {
	return &APIError{
		Kind:    KindBusy,
		Message: message,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewServiceUnavailableError creates a service unavailable error
func NewServiceUnavailableError(message string) *APIError {
	return &APIError{
		Kind:    KindServiceUnavailable,
		Message: message,
	}
}

// FromAppError translates an application error into an API error. The
// operation taxonomy maps onto HTTP-facing kinds and the original kind is
// preserved in Code so clients can branch on it.
func FromAppError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	// Precondition failures are client mistakes, not server faults.
	if errors.Is(err, apperrors.ErrNotConfirmed) ||
		errors.Is(err, apperrors.ErrEmptySelection) ||
		errors.Is(err, apperrors.ErrNoDestination) {
		return &APIError{Kind: KindBadRequest, Message: err.Error()}
	}

	appKind := apperrors.KindOf(err)
	e := &APIError{
		Message: err.Error(),
		Code:    string(appKind),
	}

	switch appKind {
	case apperrors.KindPathNotFound:
		e.Kind = KindNotFound
	case apperrors.KindPermission:
		e.Kind = KindForbidden
	case apperrors.KindInvalidPattern:
		e.Kind = KindInvalidPattern
	case apperrors.KindInvalidName:
		e.Kind = KindValidation
	case apperrors.KindCollision, apperrors.KindDestinationExists:
		e.Kind = KindConflict
	case apperrors.KindBusy:
		e.Kind = KindBusy
	case apperrors.KindDiskFull:
		e.Kind = KindStorageFull
	case apperrors.KindStorage:
		e.Kind = KindStorage
	default:
		e.Kind = KindInternal
	}

	return e
}
