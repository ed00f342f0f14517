package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"user error", NewUserError("bad args"), ExitUserError},
		{"system error", NewSystemError("write failed"), ExitSystemError},
		{"untyped error", errors.New("something"), ExitUserError},
		{"wrapped exit error", fmt.Errorf("context: %w", NewSystemError("inner")), ExitSystemError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewSystemErrorWithCause("wrapper", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
	if err.Error() != "wrapper" {
		t.Errorf("Error() = %q, want %q", err.Error(), "wrapper")
	}
}

func TestNewUserErrorWithCause(t *testing.T) {
	cause := errors.New("inner")
	err := NewUserErrorWithCause("outer", cause)

	if err.Code != ExitUserError {
		t.Errorf("Code = %d, want %d", err.Code, ExitUserError)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}
}
