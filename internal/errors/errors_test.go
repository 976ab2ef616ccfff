package errors

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(EPathExists, "output path already exists: ./out")

	if err.Error() != "E_PATH_EXISTS: output path already exists: ./out" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap_UnwrapsToCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(EFetchFailed, "request failed", cause)

	if err.Error() != "E_FETCH_FAILED: request failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "E_FETCH_FAILED: request failed")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach cause")
	}

	// still reachable through an fmt wrapper
	outer := fmt.Errorf("scaffold: %w", err)
	if GetCode(outer) != EFetchFailed {
		t.Errorf("GetCode(outer) = %q, want %q", GetCode(outer), EFetchFailed)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil error", nil, ""},
		{"aoc error", New(EUsage, "x"), EUsage},
		{"wrapped aoc error", Wrap(ECopyFailed, "y", errors.New("z")), ECopyFailed},
		{"plain error", errors.New("plain"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"fetch usage", New(EUsage, "x"), 2},
		{"scaffold usage", New(EScaffoldUsage, "x"), 1},
		{"path exists", New(EPathExists, "x"), 1},
		{"fetch failed", New(EFetchFailed, "x"), 1},
		{"plain error", errors.New("x"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"usage", New(EUsage, "expected 2 arguments, got 1"), "error_code: E_USAGE\nexpected 2 arguments, got 1\n"},
		{"exists", New(EPathExists, "output path already exists: out"), "error_code: E_PATH_EXISTS\noutput path already exists: out\n"},
		{"plain", errors.New("boom"), "boom\n"},
		{
			"details sorted",
			WrapWithDetails(ECopyFailed, "failed to copy template", errors.New("eacces"), map[string]string{"template": "embedded", "path": "out"}),
			"error_code: E_COPY_FAILED\nfailed to copy template\npath: out\ntemplate: embedded\n",
		},
		{
			"wrapped details",
			fmt.Errorf("init: %w", NewWithDetails(EPathExists, "output path already exists: out", map[string]string{"path": "out"})),
			"error_code: E_PATH_EXISTS\noutput path already exists: out\npath: out\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Print(&buf, tt.err)
			if got := buf.String(); got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewWithDetails_CopiesMap(t *testing.T) {
	details := map[string]string{"path": "out"}
	err := NewWithDetails(EPathExists, "exists", details)
	details["path"] = "modified"

	ae, ok := AsAocError(err)
	if !ok {
		t.Fatal("AsAocError failed")
	}
	if ae.Details["path"] != "out" {
		t.Errorf("Details[path] = %q, want %q", ae.Details["path"], "out")
	}
}

func TestNewWithDetails_NilDetails(t *testing.T) {
	ae, ok := AsAocError(NewWithDetails(EUsage, "test", map[string]string{}))
	if !ok {
		t.Fatal("AsAocError failed")
	}
	if ae.Details != nil {
		t.Errorf("Details should be nil, got %v", ae.Details)
	}
}

func TestWrapWithDetails(t *testing.T) {
	cause := errors.New("underlying")
	err := WrapWithDetails(ETemplate, "wrapped", cause, map[string]string{"template": "/tmp/tpl"})

	ae, ok := AsAocError(err)
	if !ok {
		t.Fatal("AsAocError failed")
	}
	if ae.Cause != cause {
		t.Error("Cause not set")
	}
	if ae.Details["template"] != "/tmp/tpl" {
		t.Errorf("Details[template] = %q", ae.Details["template"])
	}
}

func TestAsAocError(t *testing.T) {
	if _, ok := AsAocError(errors.New("regular")); ok {
		t.Error("should return false for non-AocError")
	}
	if ae, ok := AsAocError(nil); ok || ae != nil {
		t.Error("should return nil, false for nil")
	}
}
