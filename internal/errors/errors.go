package errors

import (
	"errors"
	"fmt"
)

// Code represents a domain-specific error code.
type Code string

// Error codes for different failure scenarios.
const (
	// CodePermissionDenied indicates a required OS permission is not granted.
	CodePermissionDenied Code = "PERMISSION_DENIED"

	// CodeEventCreationFailed indicates the OS refused to create or post an input event.
	CodeEventCreationFailed Code = "EVENT_CREATION_FAILED"

	// CodeInvalidInput indicates invalid input parameters.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeElementNotFound indicates a UI element could not be found.
	CodeElementNotFound Code = "ELEMENT_NOT_FOUND"

	// CodeElementNotVisible indicates the element exists but has zero size.
	CodeElementNotVisible Code = "ELEMENT_NOT_VISIBLE"

	// CodeActionFailed indicates the OS rejected a perform-action or set-attribute call.
	CodeActionFailed Code = "ACTION_FAILED"

	// CodeReadFailed indicates a required attribute could not be read.
	CodeReadFailed Code = "READ_FAILED"

	// CodeNoScrollContainer indicates no scrollable ancestor exists for the element.
	CodeNoScrollContainer Code = "NO_SCROLL_CONTAINER"

	// CodeScrollMaxAttempts indicates the scroll-into-view attempt limit was exhausted.
	CodeScrollMaxAttempts Code = "SCROLL_MAX_ATTEMPTS"

	// CodeScrollNoProgress indicates the target disappeared between scroll
	// iterations, or the remaining scroll delta fell below the minimum step
	// while the target was still not visible.
	CodeScrollNoProgress Code = "SCROLL_NO_PROGRESS"

	// CodeTimeout indicates the operation timed out.
	CodeTimeout Code = "TIMEOUT"

	// CodeCaptureFailed indicates the capture collaborator could not produce an image.
	CodeCaptureFailed Code = "CAPTURE_FAILED"

	// CodeAppNotFound indicates the named application is not installed.
	CodeAppNotFound Code = "APP_NOT_FOUND"

	// CodeAppNotRunning indicates the named application is not running.
	CodeAppNotRunning Code = "APP_NOT_RUNNING"

	// CodeWindowNotFound indicates no window matched the lookup.
	CodeWindowNotFound Code = "WINDOW_NOT_FOUND"

	// CodeInvalidConfig indicates configuration validation failed.
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// CodeLoggingFailed indicates logger setup or teardown failed.
	CodeLoggingFailed Code = "LOGGING_FAILED"

	// CodeInternal indicates an internal error occurred.
	CodeInternal Code = "INTERNAL"
)

// AccessibilitySettingsHint names the System Settings pane that grants
// accessibility trust. Included in permission errors so the message is
// actionable.
const AccessibilitySettingsHint = "System Settings > Privacy & Security > Accessibility"

// ScreenRecordingSettingsHint names the System Settings pane that grants
// screen recording.
const ScreenRecordingSettingsHint = "System Settings > Privacy & Security > Screen Recording"

// Error represents a domain error with code, message, and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Context map[string]any
}

// New creates a new domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new domain error with formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements error matching for errors.Is.
func (e *Error) Is(target error) bool {
	targetError, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Code == targetError.Code
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}

	e.Context[key] = value

	return e
}

// Wrap wraps an existing error with a domain error code and message.
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an existing error with formatted message.
func Wrapf(err error, code Code, format string, args ...any) *Error {
	if err == nil {
		return nil
	}

	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// IsCode checks if an error has the specified error code.
func IsCode(err error, code Code) bool {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}

	return false
}

// GetCode extracts the error code from an error, or returns CodeInternal if not a domain error.
func GetCode(err error) Code {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	return CodeInternal
}

// PermissionDenied builds the standard permission error for the named grant
// ("accessibility" or "screen-recording") with its recovery hint.
func PermissionDenied(which string) *Error {
	hint := AccessibilitySettingsHint
	if which == "screen-recording" {
		hint = ScreenRecordingSettingsHint
	}

	return Newf(
		CodePermissionDenied,
		"%s permission not granted; enable it under %s",
		which,
		hint,
	)
}

// IsPermissionError checks if an error is permission-related.
func IsPermissionError(err error) bool {
	return IsCode(err, CodePermissionDenied)
}

// IsScrollOutcome checks if an error is one of the scroll-into-view failure outcomes.
func IsScrollOutcome(err error) bool {
	return IsCode(err, CodeNoScrollContainer) ||
		IsCode(err, CodeScrollMaxAttempts) ||
		IsCode(err, CodeScrollNoProgress) ||
		IsCode(err, CodeTimeout)
}

// IsUserError checks if an error is due to user input/configuration.
func IsUserError(err error) bool {
	return IsCode(err, CodeInvalidConfig) || IsCode(err, CodeInvalidInput)
}
