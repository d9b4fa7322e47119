// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/modregex"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Synthesis or verification failure (budget, mismatch)
	ExitCommandError = 2 // Usage error (bad arguments, invalid inputs, config)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Diagnostic output; keeps JSON on Writer clean
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // error kind, e.g. "BudgetExceeded"
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// texter is implemented by payloads with a custom text rendering.
type texter interface {
	Text() string
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	if t, ok := data.(texter); ok {
		_, err := fmt.Fprintln(f.Writer, t.Text())
		return err
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(w, "Details: %v\n", details)
	}
	return nil
}

// errorDetails is the JSON detail block of a synthesis failure.
type errorDetails struct {
	Divisor   int    `json:"divisor"`
	Base      int    `json:"base"`
	Remainder int    `json:"remainder"`
	Cause     string `json:"cause"`
}

// synthesisFailure reports err and maps it onto an exit code: rejected
// inputs are usage errors, budget and cancellation are failures.
func synthesisFailure(f *OutputFormatter, err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	var se *modregex.SynthesisError
	if !errors.As(err, &se) {
		_ = f.Error("Error", err.Error(), nil)
		return WrapExitError(ExitFailure, "synthesis failed", err)
	}

	_ = f.Error(se.Kind.String(), se.Kind.Description(), errorDetails{
		Divisor:   se.Divisor,
		Base:      se.Base,
		Remainder: se.Remainder,
		Cause:     se.Err.Error(),
	})

	code := ExitFailure
	switch se.Kind {
	case modregex.KindInvalidModulus, modregex.KindInvalidBase,
		modregex.KindRemainderOutOfRange, modregex.KindInvalidOption:
		code = ExitCommandError
	}
	return WrapExitError(code, se.Kind.Description(), err)
}

// Size is a fragment count that may be +Inf; JSON has no infinity, so it
// is encoded as the string "inf".
type Size float64

// MarshalJSON implements json.Marshaler.
func (s Size) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(s), 0) || math.IsNaN(float64(s)) {
		return []byte(`"inf"`), nil
	}
	return []byte(strconv.FormatFloat(float64(s), 'f', -1, 64)), nil
}

// String formats the size with %g, or "inf".
func (s Size) String() string {
	if math.IsInf(float64(s), 0) {
		return "inf"
	}
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}

// parseInts converts positional arguments to integers.
func parseInts(args []string, names ...string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, NewExitError(ExitCommandError, fmt.Sprintf("%s %q: input restricted to integers", names[i], a))
		}
		out[i] = v
	}
	return out, nil
}
