package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Kind classifies an error within the operation taxonomy. Bulk reports and
// the API layer both key off these values.
type Kind string

const (
	KindPathNotFound      Kind = "path_not_found"
	KindPermission        Kind = "permission"
	KindInvalidPattern    Kind = "invalid_pattern"
	KindCollision         Kind = "collision"
	KindDestinationExists Kind = "destination_exists"
	KindDiskFull          Kind = "disk_full"
	KindInvalidName       Kind = "invalid_name"
	KindStorage           Kind = "storage"
	KindBusy              Kind = "busy"
	KindInternal          Kind = "internal"
)

// Common error values
var (
	// Listing errors
	ErrNotDirectory = NewKind(KindPathNotFound, "not a directory")

	// Executor errors
	ErrBusy           = NewKind(KindBusy, "another bulk operation is in flight")
	ErrNotConfirmed   = New("destructive operation requires confirmation")
	ErrEmptySelection = New("selection is empty")
	ErrNoDestination  = New("destination directory is required")
)

// Error represents a standardized error
type Error struct {
	kind    Kind
	message string
	cause   error
}

// New creates a new error with the internal kind
func New(message string) *Error {
	return &Error{kind: KindInternal, message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{kind: KindInternal, message: fmt.Sprintf(format, args...)}
}

// NewKind creates a new error with an explicit kind
func NewKind(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// NewKindf creates a new formatted error with an explicit kind
func NewKindf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context, keeping the cause's kind
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    KindOf(err),
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    KindOf(err),
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// WrapKind wraps an error and forces a kind
func WrapKind(err error, kind Kind, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    kind,
		message: message,
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the error's classification
func (e *Error) Kind() Kind {
	return e.kind
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// KindOf classifies any error. Tagged errors keep their kind; untagged
// filesystem errors are mapped onto the taxonomy.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindPathNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, fs.ErrExist):
		return KindDestinationExists
	case errors.Is(err, syscall.ENOSPC):
		return KindDiskFull
	default:
		return KindInternal
	}
}

// Classify tags an untagged error with its inferred kind so the kind
// survives further wrapping.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{
		kind:    KindOf(err),
		message: err.Error(),
		cause:   err,
	}
}
