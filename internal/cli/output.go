package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for qry.
const (
	ExitSuccess      = 0 // Query ran and produced output
	ExitFailure      = 1 // The query itself failed (no match, empty input, ...)
	ExitCommandError = 2 // Bad flags, unreadable input, unparseable document
)

// ExitError carries the exit code a failure should produce.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func commandError(err error) error {
	return &ExitError{Code: ExitCommandError, Err: err}
}

// GetExitCode extracts the exit code from an error. Errors that are not an
// ExitError map to ExitFailure.
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

// Response is the JSON envelope written in --format json mode.
type Response struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// OutputFormatter writes results as text or as a JSON envelope.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Diagnostics; keeps JSON on Writer clean
}

// JSON reports whether the formatter emits JSON.
func (f *OutputFormatter) JSON() bool {
	return f.Format == formatJSON
}

// Success writes data. In text mode text renders it; a nil text prints
// data with fmt.
func (f *OutputFormatter) Success(data any, text func(w io.Writer) error) error {
	if f.JSON() {
		return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Data: data})
	}

	if text == nil {
		_, err := fmt.Fprintln(f.Writer, data)

		return err
	}

	return text(f.Writer)
}

// Error reports err in the configured format.
func (f *OutputFormatter) Error(err error) error {
	if f.JSON() {
		return json.NewEncoder(f.Writer).Encode(Response{Status: "error", Error: err.Error()})
	}

	_, werr := fmt.Fprintf(f.ErrWriter, "qry: %v\n", err)

	return werr
}
