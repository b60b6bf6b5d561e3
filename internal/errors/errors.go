// Package errors provides structured error types and exit codes for zcalibrate.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess          = 0 // Success
	ExitRuntimeError     = 1 // Runtime error
	ExitConfigError      = 2 // Configuration or argument validation error
	ExitEnvironmentError = 3 // Environment error (temporary workspace could not be created or removed)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindValidation
	KindEnvironment
)

// ZcalibrateError is the base error type for zcalibrate.
type ZcalibrateError struct {
	Kind    ErrorKind
	Message string
	Stage   string // Pipeline stage if applicable
	Cause   error  // Underlying error
}

func (e *ZcalibrateError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("[%s] %s", e.Stage, e.Message)
	}
	return e.Message
}

func (e *ZcalibrateError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *ZcalibrateError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *ZcalibrateError {
	return &ZcalibrateError{
		Kind:    KindConfig,
		Message: fmt.Sprintf(format, args...),
	}
}

// ConfigWrap wraps a config loading error as a configuration error.
func ConfigWrap(err error, message string) *ZcalibrateError {
	return &ZcalibrateError{
		Kind:    KindConfig,
		Message: fmt.Sprintf("%s: %v", message, err),
		Cause:   err,
	}
}

// Validation creates a new argument validation error.
func Validation(message string) *ZcalibrateError {
	return &ZcalibrateError{
		Kind:    KindValidation,
		Message: message,
	}
}

// Validationf creates a new argument validation error with formatting.
func Validationf(format string, args ...interface{}) *ZcalibrateError {
	return Validation(fmt.Sprintf(format, args...))
}

// EnvironmentWrap wraps a filesystem or process error as an environment error.
func EnvironmentWrap(err error, message string) *ZcalibrateError {
	return &ZcalibrateError{
		Kind:    KindEnvironment,
		Message: fmt.Sprintf("%s: %v", message, err),
		Cause:   err,
	}
}

// StageError labels a failure to run a pipeline stage, such as a program
// that could not be started or a redirect file that could not be opened.
func StageError(stage string, err error, message string) *ZcalibrateError {
	return &ZcalibrateError{
		Kind:    KindRuntime,
		Stage:   stage,
		Message: fmt.Sprintf("%s: %v", message, err),
		Cause:   err,
	}
}

// GetExitCode returns the exit code for an error.
// Wrapped errors are inspected, so a joined or annotated ZcalibrateError keeps its kind.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ze *ZcalibrateError
	if stderrors.As(err, &ze) {
		return ze.ExitCode()
	}
	return ExitRuntimeError
}

// IsKind reports whether err is or wraps a ZcalibrateError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ze *ZcalibrateError
	return stderrors.As(err, &ze) && ze.Kind == kind
}
