// Package errors provides coded, structured errors compatible with the standard library.
//
// Overview:
//   - Responsibility: Classify scaffolding failures by code and keep the failing operation
//   - Key Types: Code for classification, E for structured errors
//   - Concurrency Model: All functions are safe for concurrent use
//   - Error Semantics: Compatible with errors.Is / errors.As unwrapping
//   - Performance Notes: One allocation per constructed error
//
// Usage:
//
//	err := errors.New(errors.CodeInvalidArgument, "class name must not be empty")
//	wrapped := errors.Wrap(errors.CodeInternal, "projectfs.write", ioErr)
//	code := errors.CodeOf(wrapped)
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Code represents an error classification code.
type Code string

// Error codes used by the scaffold tool.
const (
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeNotFound         Code = "NOT_FOUND"
	CodeAlreadyExists    Code = "ALREADY_EXISTS"
	CodePermissionDenied Code = "PERMISSION_DENIED"
	CodeInternal         Code = "INTERNAL"
	CodeAborted          Code = "ABORTED"
)

// E represents a structured error with code, operation, message, and cause.
type E struct {
	Code Code   // Error classification code
	Op   string // Operation that failed
	Err  error  // Underlying error (may be nil)
	Msg  string // Human-readable message
}

// Error implements the error interface.
func (e *E) Error() string {
	prefix := string(e.Code)
	if e.Op != "" {
		prefix = e.Op + ": " + prefix
	}

	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", prefix, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	default:
		return fmt.Sprintf("%s: %s", prefix, e.Msg)
	}
}

// Unwrap returns the underlying error.
func (e *E) Unwrap() error {
	return e.Err
}

// New creates a new structured error with the given code and message.
func New(code Code, msg string) error {
	return &E{Code: code, Msg: msg}
}

// Newf creates a new structured error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &E{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates a new structured error wrapping an existing error.
// The operation name identifies where the error occurred.
func Wrap(code Code, op string, err error) error {
	return &E{Code: code, Op: op, Err: err}
}

// Wrapf creates a new structured error wrapping an existing error with a formatted message.
func Wrapf(code Code, op string, err error, format string, args ...any) error {
	return &E{
		Code: code,
		Op:   op,
		Err:  err,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// WrapFS wraps a filesystem error, picking the code from the cause.
// Permission problems map to CodePermissionDenied, existing targets to
// CodeAlreadyExists, missing targets to CodeNotFound, everything else to CodeInternal.
func WrapFS(op string, err error) error {
	if err == nil {
		return nil
	}

	code := CodeInternal
	switch {
	case errors.Is(err, fs.ErrPermission):
		code = CodePermissionDenied
	case errors.Is(err, fs.ErrExist):
		code = CodeAlreadyExists
	case errors.Is(err, fs.ErrNotExist):
		code = CodeNotFound
	}
	return Wrap(code, op, err)
}

// CodeOf extracts the error code from an error.
// Returns an empty code if the error chain carries no *E.
func CodeOf(err error) Code {
	var e *E
	if err != nil && errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
