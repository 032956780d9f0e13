/*
Copyright © 2025 Ian Shuley

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package errors defines the error taxonomy shared by the generator packages.
package errors

import "fmt"

// ErrorCode identifies a class of generation configuration failure
type ErrorCode string

const (
	CodeNoClassesEnabled         ErrorCode = "NO_CLASSES_ENABLED"
	CodeLengthOutOfRange         ErrorCode = "LENGTH_OUT_OF_RANGE"
	CodeLengthTooShortForClasses ErrorCode = "LENGTH_TOO_SHORT_FOR_CLASSES"
)

// ConfigError represents a generation configuration that cannot produce a secret.
// All config errors are detected before any randomness is consumed and none are retryable.
type ConfigError struct {
	Code    ErrorCode
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("config error: %s", e.Code)
	}
	if e.Field != "" {
		return fmt.Sprintf("config error on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// Is matches any ConfigError carrying the same code, so callers can test
// against the sentinels below with errors.Is.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinels for errors.Is comparisons
var (
	ErrNoClassesEnabled         = &ConfigError{Code: CodeNoClassesEnabled}
	ErrLengthOutOfRange         = &ConfigError{Code: CodeLengthOutOfRange}
	ErrLengthTooShortForClasses = &ConfigError{Code: CodeLengthTooShortForClasses}
)

// ValidationError represents invalid settings (config file, env, flags)
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Helper functions for common cases
func NewNoClassesEnabledError() *ConfigError {
	return &ConfigError{
		Code:    CodeNoClassesEnabled,
		Field:   "classes",
		Message: "at least one character class must be enabled",
	}
}

func NewLengthOutOfRangeError(length, min, max int) *ConfigError {
	return &ConfigError{
		Code:    CodeLengthOutOfRange,
		Field:   "length",
		Message: fmt.Sprintf("length %d is outside the allowed range [%d, %d]", length, min, max),
	}
}

func NewLengthTooShortError(length, classes int) *ConfigError {
	return &ConfigError{
		Code:    CodeLengthTooShortForClasses,
		Field:   "length",
		Message: fmt.Sprintf("length %d cannot cover %d enabled classes", length, classes),
	}
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
