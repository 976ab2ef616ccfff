// Package errors defines the stable error code system for fetch_input and init_day.
package errors

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// Code is a stable error code string.
type Code string

// Error codes. Stable public contract; scripts may match on them.
const (
	// EUsage is a fetch_input usage error (exit 2).
	EUsage Code = "E_USAGE"
	// EScaffoldUsage is an init_day usage error. It exits 1, not 2, to keep
	// the historical init_day exit status.
	EScaffoldUsage Code = "E_SCAFFOLD_USAGE"

	ECredentialRead Code = "E_CREDENTIAL_READ"
	EInvalidConfig  Code = "E_INVALID_CONFIG"
	EInternal       Code = "E_INTERNAL"

	// Scaffolding
	EPathExists       Code = "E_PATH_EXISTS"
	ETemplate         Code = "E_TEMPLATE"
	ECopyFailed       Code = "E_COPY_FAILED"
	EManifestFailed   Code = "E_MANIFEST_FAILED"
	EInputWriteFailed Code = "E_INPUT_WRITE_FAILED"

	// Network
	EFetchFailed Code = "E_FETCH_FAILED"
)

// exitCodes holds every code whose exit status is not 1.
var exitCodes = map[Code]int{
	EUsage: 2,
}

// AocError is the standard error type for both commands.
type AocError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *AocError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *AocError) Unwrap() error {
	return e.Cause
}

// New creates a new AocError with the given code and message.
func New(code Code, msg string) error {
	return &AocError{Code: code, Msg: msg}
}

// NewWithDetails creates a new AocError with code, message, and details.
// Details map is copied (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &AocError{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new AocError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &AocError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new AocError wrapping an underlying error with details.
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &AocError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// GetCode extracts the error code from an error, or empty string if not an AocError.
func GetCode(err error) Code {
	var ae *AocError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// AsAocError returns (*AocError, true) if err is or wraps an AocError.
func AsAocError(err error) (*AocError, bool) {
	var ae *AocError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the process exit code for an error.
// Returns 0 if err is nil, 2 for E_USAGE, 1 for everything else
// (including E_SCAFFOLD_USAGE).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := exitCodes[GetCode(err)]; ok {
		return code
	}
	return 1
}

// Print writes the error to w in the stable stderr format:
//
//	error_code: <CODE>
//	<message>
//	<key>: <value>   (one line per detail, sorted by key)
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	ae, ok := AsAocError(err)
	if !ok {
		fmt.Fprintln(w, err.Error())
		return
	}
	fmt.Fprintf(w, "error_code: %s\n", ae.Code)
	fmt.Fprintln(w, ae.Msg)
	keys := make([]string, 0, len(ae.Details))
	for k := range ae.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %s\n", k, ae.Details[k])
	}
}
