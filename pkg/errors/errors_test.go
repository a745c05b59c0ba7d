// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/bumv/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "line_count_error",
			code:    errors.ErrLineCount,
			message: "edited list has 3 lines, expected 4",
			wantStr: "[LINE_COUNT_MISMATCH] edited list has 3 lines, expected 4",
		},
		{
			name:    "duplicate_target_error",
			code:    errors.ErrDuplicateTarget,
			message: "duplicate target",
			wantStr: "[DUPLICATE_TARGET] duplicate target",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := errors.Wrap(cause, errors.ErrRenameFailed, "rename failed")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match the cause via errors.Is")
	}

	want := "[RENAME_FAILED] rename failed: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if errors.Wrap(nil, errors.ErrRenameFailed, "noop") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrTargetExists, "target %s exists", "b.txt")

	if !errors.IsErrorCode(err, errors.ErrTargetExists) {
		t.Error("IsErrorCode should match the original code")
	}

	if errors.IsErrorCode(err, errors.ErrSourceMissing) {
		t.Error("IsErrorCode should not match a different code")
	}

	// Codes survive wrapping in plain errors
	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.IsErrorCode(wrapped, errors.ErrTargetExists) {
		t.Error("IsErrorCode should see through fmt.Errorf wrapping")
	}

	if errors.GetErrorCode(fmt.Errorf("plain")) != errors.ErrUnknown {
		t.Error("GetErrorCode of a plain error should be ErrUnknown")
	}
}

func TestErrorsIsOnCodes(t *testing.T) {
	a := errors.New(errors.ErrStaleSnapshot, "directory changed")
	b := errors.New(errors.ErrStaleSnapshot, "another message")

	if !stderrors.Is(a, b) {
		t.Error("two errors with the same code should satisfy errors.Is")
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrDuplicateTarget, "duplicate target").
		WithDetail("line", 3).
		WithDetail("path", "b.txt")

	details := errors.GetErrorDetails(err)
	if details["line"] != 3 || details["path"] != "b.txt" {
		t.Errorf("unexpected details: %+v", details)
	}
}
