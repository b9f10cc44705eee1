// Package errors provides the unified error type and factory functions for
// the LegalAid-Assistant platform.  Every layer (domain, application,
// infrastructure, interfaces) uses AppError as the single carrier for
// structured error information, enabling consistent HTTP responses, logging,
// and metrics labels.
//
// The advisory pipeline itself is designed without fatal paths: unknown
// domains fall back to Civil Law knowledge, unknown sessions are created
// implicitly, missing reference tables degrade to a fallback string.  The
// errors defined here therefore appear almost exclusively at the API
// boundary (validation, parsing) and in the infrastructure adapters
// (postgres, redis, kafka, minio).
package errors

import (
	"errors"
	"fmt"
)

// ─────────────────────────────────────────────────────────────────────────────
// AppError — the canonical platform error type
// ─────────────────────────────────────────────────────────────────────────────

// AppError is the single structured error type used throughout the platform.
// It satisfies the standard error interface and supports Go 1.13+ error
// wrapping so that errors.Is / errors.As / errors.Unwrap work transparently
// across all layers.
//
// Usage:
//
//	return errors.New(errors.CodeInvalidDomain, "unknown legal domain")
//	return errors.Wrap(dbErr, errors.CodeDatabaseError, "failed to store feedback")
//	return errors.Validation("message must not be empty").WithDetail("field=message")
type AppError struct {
	// Code is the typed error code identifying the failure category.
	Code ErrorCode

	// Message is the primary human-readable description of the error,
	// suitable for inclusion in API responses returned to callers.
	Message string

	// Detail carries supplementary context (field names, session ids, object
	// keys) that aids debugging without leaking internals to end users.
	Detail string

	// Cause is the underlying error that triggered this AppError, enabling
	// errors.Is / errors.As traversal of the full error chain.
	Cause error
}

// Error implements the standard error interface.
// Format: "[<code>] <message>: <detail>"; the detail segment is omitted when
// Detail is empty.
func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As to
// traverse the full chain without any boilerplate at call sites.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail returns a shallow copy of the receiver with Detail set.
// Safe to call on a nil pointer (returns nil).
func (e *AppError) WithDetail(detail string) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Detail = detail
	return &clone
}

// WithCause returns a shallow copy of the receiver with Cause set.  Use this
// to attach a lower-level error to an already-constructed AppError without
// going through Wrap.
func (e *AppError) WithCause(err error) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Cause = err
	return &clone
}

// ─────────────────────────────────────────────────────────────────────────────
// Factories
// ─────────────────────────────────────────────────────────────────────────────

// New constructs a fresh AppError with the given code and message.  It is the
// preferred factory for errors that originate in the current layer without an
// underlying cause.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf constructs a fresh AppError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs an AppError that wraps an existing error.  If err is nil,
// Wrap returns nil so it can be used inline:
//
//	return errors.Wrap(repo.Save(ctx, entry), errors.CodeDatabaseError, "save failed")
//
// When err is already an *AppError and code is CodeUnknown the original code
// is preserved, so adding context never loses the original classification.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	if code == CodeUnknown {
		var ae *AppError
		if errors.As(err, &ae) {
			code = ae.Code
		}
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// NotFound constructs a CodeNotFound AppError.
func NotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

// Validation constructs a CodeValidation AppError.
func Validation(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// InvalidDomain constructs a CodeInvalidDomain AppError for a domain label
// outside the closed set.
func InvalidDomain(value string) *AppError {
	return &AppError{
		Code:    CodeInvalidDomain,
		Message: "invalid legal domain",
		Detail:  fmt.Sprintf("domain=%q", value),
	}
}

// Internal constructs a CodeInternal AppError.
func Internal(message string) *AppError {
	return &AppError{Code: CodeInternal, Message: message}
}

// ─────────────────────────────────────────────────────────────────────────────
// Chain inspection helpers
// ─────────────────────────────────────────────────────────────────────────────

// IsCode reports whether any error in err's chain is an *AppError with the
// given code.
func IsCode(err error, code ErrorCode) bool {
	var ae *AppError
	for err != nil {
		if errors.As(err, &ae) && ae.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetCode extracts the ErrorCode from the first *AppError in err's chain.
// Nil maps to CodeOK; a chain without any AppError maps to CodeUnknown.
// Middleware uses this as a single metric label without coupling to specific
// domain errors.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}

// IsNotFound reports whether err's chain carries a not-found class code.
func IsNotFound(err error) bool {
	return IsCode(err, CodeNotFound) || IsCode(err, CodeSessionNotFound) || IsCode(err, CodeFeedbackNotFound)
}

// IsValidation reports whether err's chain carries a validation class code.
func IsValidation(err error) bool {
	return IsCode(err, CodeValidation) || IsCode(err, CodeBadRequest) || IsCode(err, CodeInvalidDomain) ||
		IsCode(err, CodeUnsupportedFormat) || IsCode(err, CodeUnsupportedLanguage)
}

// IsInvalidDomain reports whether err's chain carries CodeInvalidDomain.
func IsInvalidDomain(err error) bool { return IsCode(err, CodeInvalidDomain) }

// IsConflict reports whether err's chain carries CodeConflict.
func IsConflict(err error) bool { return IsCode(err, CodeConflict) }

// IsUnauthorized reports whether err's chain carries CodeUnauthorized.
func IsUnauthorized(err error) bool { return IsCode(err, CodeUnauthorized) }

// IsForbidden reports whether err's chain carries CodeForbidden.
func IsForbidden(err error) bool { return IsCode(err, CodeForbidden) }
