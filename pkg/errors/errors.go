// Package errors provides coded errors for treemap.
//
// A [Code] classifies a failure so callers can branch on it without string
// matching, and so the CLI can pick a process exit status. Codes are
// grouped by kind:
//   - INVALID_*: bad flags, config values or paths
//   - FILE_NOT_FOUND, PERMISSION_DENIED: the filesystem refused a scan
//   - UNSUPPORTED: an edit the tree cannot perform, such as moving a node
//     when no factory can rebuild it
//   - INTERNAL_ERROR: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s", f)
//	if errors.Is(err, errors.ErrCodeInvalidFormat) {
//	    // Handle validation error
//	}
//
//	err = errors.Wrap(errors.ErrCodeFileNotFound, origErr, "scan %s", path)
//	os.Exit(errors.ExitCode(err))
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidPath       Code = "INVALID_PATH"
	ErrCodeInvalidDimensions Code = "INVALID_DIMENSIONS"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodePermission   Code = "PERMISSION_DENIED"

	ErrCodeUnsupported Code = "UNSUPPORTED"
	ErrCodeInternal    Code = "INTERNAL_ERROR"
)

// Exit statuses, following the BSD sysexits convention.
const (
	exitFailure  = 1
	exitUsage    = 64
	exitNoInput  = 66
	exitSoftware = 70
	exitNoPerm   = 77
	exitConfig   = 78
)

var exitCodes = map[Code]int{
	ErrCodeInvalidInput:      exitUsage,
	ErrCodeInvalidFormat:     exitUsage,
	ErrCodeInvalidPath:       exitUsage,
	ErrCodeInvalidDimensions: exitUsage,
	ErrCodeInvalidConfig:     exitConfig,
	ErrCodeFileNotFound:      exitNoInput,
	ErrCodePermission:        exitNoPerm,
	ErrCodeUnsupported:       exitSoftware,
	ErrCodeInternal:          exitSoftware,
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error that keeps cause in the chain.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// CodeOf returns the code of the outermost *Error in err's chain, or "".
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// ExitCode maps err to a process exit status: 0 for nil, a sysexits value
// for coded errors, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := exitCodes[CodeOf(err)]; ok {
		return code
	}
	return exitFailure
}
