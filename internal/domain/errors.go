package domain

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeInvalidWorkingHours ErrorCode = "INVALID_WORKING_HOURS"
	CodeInvalidWorkingDays  ErrorCode = "INVALID_WORKING_DAYS"
	CodeInvalidDateRange    ErrorCode = "INVALID_DATE_RANGE"
	CodeInvalidTimezone     ErrorCode = "INVALID_TIMEZONE"
	CodeRangeTooLong        ErrorCode = "RANGE_TOO_LONG"
	CodeInvalidBusyPeriod   ErrorCode = "INVALID_BUSY_PERIOD"
	CodeInvalidRequest      ErrorCode = "INVALID_REQUEST"
	CodeParseError          ErrorCode = "PARSE_ERROR"
	CodeInternal            ErrorCode = "INTERNAL_COMPUTATION_ERROR"
)

// ValidationError reports input that breaks a documented constraint. Callers
// should surface it to the client as a bad request.
type ValidationError struct {
	Code ErrorCode
	msg  string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func NewValidationError(code ErrorCode, msg string) error {
	return &ValidationError{Code: code, msg: msg}
}

// ParseError reports a timestamp that is not valid RFC3339. Field is the
// request path of the value, e.g. "busy_periods[2].end".
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: invalid RFC3339 timestamp %q", e.Field, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InternalError signals a broken invariant after validation succeeded.
type InternalError struct {
	msg string
}

func (e *InternalError) Error() string {
	return "internal computation error: " + e.msg
}

func internalError(format string, args ...any) error {
	return &InternalError{msg: fmt.Sprintf(format, args...)}
}

// CodeOf returns the error code carried by err, or "" when err is not one of
// the engine's error types.
func CodeOf(err error) ErrorCode {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Code
	}
	var pErr *ParseError
	if errors.As(err, &pErr) {
		return CodeParseError
	}
	var iErr *InternalError
	if errors.As(err, &iErr) {
		return CodeInternal
	}
	return ""
}

// IsClientError reports whether err was caused by the caller's input.
func IsClientError(err error) bool {
	code := CodeOf(err)
	return code != "" && code != CodeInternal
}
