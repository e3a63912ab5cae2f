// Package errdefs defines the error kinds shared by the condorkit packages.
package errdefs

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Common errors
var (
	// ErrExecutableNotFound indicates a required command is not on the search path
	ErrExecutableNotFound = errors.New("executable not found")

	// ErrDirectoryNotFound indicates a target directory does not exist
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrVersionUnavailable indicates no scheduler version source produced output
	ErrVersionUnavailable = errors.New("scheduler version unavailable")

	// ErrCommandFailed indicates an external command exited with a non-zero status
	ErrCommandFailed = errors.New("command failed")
)

// ConfigurationError reports an invalid logger setup: a missing component name
// or a verbosity outside the accepted set.
type ConfigurationError struct {
	Component string   // Component name (may be empty when the name itself is missing)
	Value     string   // Offending value
	Valid     []string // Accepted values, if the failure is a range check
	Reason    string
}

func (e *ConfigurationError) Error() string {
	if len(e.Valid) > 0 {
		return fmt.Sprintf("verbose option %s for %s not valid, valid options are %s",
			e.Value, e.Component, strings.Join(e.Valid, ", "))
	}
	if e.Component != "" {
		return fmt.Sprintf("configuration error for %s: %s", e.Component, e.Reason)
	}
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// EnvironmentError reports a missing host prerequisite: an executable, a
// directory, or a scheduler version source.
type EnvironmentError struct {
	Name   string // Command name or directory path
	Reason string // Human-readable description
	Err    error  // Underlying error, usually one of the sentinels above
}

func (e *EnvironmentError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	if e.Name != "" {
		return fmt.Sprintf("%s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("environment error: %v", e.Err)
}

func (e *EnvironmentError) Unwrap() error {
	return e.Err
}

// ParseError reports version text that does not match the expected pattern.
type ParseError struct {
	Input  string // Raw text that failed to parse
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %q: %s", truncate(e.Input, 120), e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValueError reports a null or otherwise unusable argument.
type ValueError struct {
	Arg    string // Argument name
	Reason string
}

func (e *ValueError) Error() string {
	if e.Arg == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Arg, e.Reason)
}

// Helper functions for creating errors

// NewConfigurationError creates a new ConfigurationError without a valid set
func NewConfigurationError(component string, reason string) *ConfigurationError {
	return &ConfigurationError{
		Component: component,
		Reason:    reason,
	}
}

// NewEnvironmentError creates a new EnvironmentError
func NewEnvironmentError(name string, reason string, err error) *EnvironmentError {
	return &EnvironmentError{
		Name:   name,
		Reason: reason,
		Err:    err,
	}
}

// NewParseError creates a new ParseError
func NewParseError(input string, reason string, err error) *ParseError {
	return &ParseError{
		Input:  input,
		Reason: reason,
		Err:    err,
	}
}

// NewValueError creates a new ValueError
func NewValueError(arg string, reason string) *ValueError {
	return &ValueError{
		Arg:    arg,
		Reason: reason,
	}
}

// IsConfigurationError checks if an error is a ConfigurationError
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsEnvironmentError checks if an error is an EnvironmentError
func IsEnvironmentError(err error) bool {
	var ee *EnvironmentError
	return errors.As(err, &ee)
}

// IsParseError checks if an error is a ParseError
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsValueError checks if an error is a ValueError
func IsValueError(err error) bool {
	var ve *ValueError
	return errors.As(err, &ve)
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
