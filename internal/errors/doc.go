// Package errors provides domain-specific error types and utilities.
//
// This package implements a structured error handling system with error codes,
// wrapping, and context information. It follows Go 1.13+ error handling patterns
// with errors.Is and errors.As support.
//
// # Usage
//
//	// Creating errors
//	err := errors.New(errors.CodeInvalidInput, "query cannot be empty")
//	err := errors.Newf(errors.CodeElementNotFound, "no element matched %q", query)
//
//	// Wrapping errors
//	if err := doSomething(); err != nil {
//		return errors.Wrap(err, errors.CodeActionFailed, "failed to press element")
//	}
//
//	// Adding context
//	err := errors.New(errors.CodeActionFailed, "click failed").
//		WithContext("role", role).
//		WithContext("action", "left_click")
//
//	// Checking error codes
//	if errors.IsCode(err, errors.CodePermissionDenied) {
//		// Handle permission error
//	}
//
// # Error Codes
//
// Error codes are organized by domain:
//   - Permissions: CodePermissionDenied
//   - Input events: CodeEventCreationFailed, CodeInvalidInput
//   - Element lookup: CodeElementNotFound, CodeElementNotVisible, CodeReadFailed
//   - Actions: CodeActionFailed, CodeCaptureFailed
//   - Scrolling: CodeNoScrollContainer, CodeScrollMaxAttempts, CodeScrollNoProgress
//   - Applications: CodeAppNotFound, CodeAppNotRunning, CodeWindowNotFound
//   - System: CodeTimeout, CodeInvalidConfig, CodeLoggingFailed, CodeInternal
package errors
