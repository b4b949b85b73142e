package errors

import (
	"errors"
	"fmt"
	"testing"
)

// -----------------------------------------------------------------------------
// TransportError Tests
// -----------------------------------------------------------------------------

func TestNewTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransportError("request failed", cause)

	if err.message != "request failed" {
		t.Errorf("message = %q, want %q", err.message, "request failed")
	}
	if err.cause != cause {
		t.Errorf("cause = %v, want %v", err.cause, cause)
	}
	if err.IsUserFacing() {
		t.Error("IsUserFacing() = true, want false")
	}
}

func TestTransportError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *TransportError
		want string
	}{
		{
			name: "without cause",
			err:  NewTransportError("request failed", nil),
			want: "transport error: request failed",
		},
		{
			name: "with cause",
			err:  NewTransportError("request failed", errors.New("timeout")),
			want: "transport error: request failed: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransportError_Is(t *testing.T) {
	err := NewTransportError("request failed", ErrMissingAPIKey)

	var te *TransportError
	if !As(err, &te) {
		t.Error("As(*TransportError) = false, want true")
	}
	if !Is(err, ErrMissingAPIKey) {
		t.Error("Is(ErrMissingAPIKey) = false, want true")
	}
}

// -----------------------------------------------------------------------------
// APIError Tests
// -----------------------------------------------------------------------------

func TestAPIError(t *testing.T) {
	err := NewAPIError(401, "invalid api key")

	if err.Status != 401 {
		t.Errorf("Status = %d, want 401", err.Status)
	}
	if err.Message() != "invalid api key" {
		t.Errorf("Message() = %q, want %q", err.Message(), "invalid api key")
	}
	want := "api error [status=401]: invalid api key"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !err.IsUserFacing() {
		t.Error("IsUserFacing() = false, want true")
	}
}

func TestAPIError_Is_StatusMatching(t *testing.T) {
	err := fmt.Errorf("decompose: %w", NewAPIError(429, "rate limited"))

	if !Is(err, &APIError{Status: 429}) {
		t.Error("Is(status 429) = false, want true")
	}
	if Is(err, &APIError{Status: 500}) {
		t.Error("Is(status 500) = true, want false")
	}
	// Zero-status target matches any APIError.
	if !Is(err, &APIError{}) {
		t.Error("Is(any APIError) = false, want true")
	}
}

// -----------------------------------------------------------------------------
// ParseError Tests
// -----------------------------------------------------------------------------

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "without tier",
			err:  NewParseError("no steps array", nil),
			want: "parse error: no steps array",
		},
		{
			name: "with tier and cause",
			err:  NewParseError("bad json", errors.New("unexpected end")).WithTier(2),
			want: "parse error [tier=2]: bad json: unexpected end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// StorageError Tests
// -----------------------------------------------------------------------------

func TestStorageError_Error(t *testing.T) {
	err := NewStorageError("write rejected", ErrQuotaExceeded).WithKey("tasks")

	want := "storage error [key=tasks]: write rejected: storage quota exceeded"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !Is(err, ErrQuotaExceeded) {
		t.Error("Is(ErrQuotaExceeded) = false, want true")
	}
}

// -----------------------------------------------------------------------------
// Semantic Error Tests
// -----------------------------------------------------------------------------

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "a1b2c3d4")

	want := `task "a1b2c3d4" not found`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !Is(err, ErrTaskNotFound) {
		t.Error("Is(ErrTaskNotFound) = false, want true")
	}
	if Is(err, ErrStepNotFound) {
		t.Error("Is(ErrStepNotFound) = true, want false")
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound() = false, want true")
	}
}

func TestNotFoundError_Step(t *testing.T) {
	err := NewNotFoundError("step", "step-3")

	if !Is(err, ErrStepNotFound) {
		t.Error("Is(ErrStepNotFound) = false, want true")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("goal must not be empty", ErrEmptyGoal).WithField("goal")

	want := "validation error [field=goal]: goal must not be empty: goal is empty"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !Is(err, ErrEmptyGoal) {
		t.Error("Is(ErrEmptyGoal) = false, want true")
	}
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("tasks")

	var ce *ConflictError
	if !As(err, &ce) {
		t.Error("As(*ConflictError) = false, want true")
	}
	if ce.Key != "tasks" {
		t.Errorf("Key = %q, want %q", ce.Key, "tasks")
	}
}

// -----------------------------------------------------------------------------
// Classification Tests
// -----------------------------------------------------------------------------

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"transport", NewTransportError("down", nil), false},
		{"api", NewAPIError(500, "server error"), true},
		{"storage", NewStorageError("write rejected", nil), true},
		{"wrapped user-facing", fmt.Errorf("outer: %w", NewValidationError("bad", nil)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsAbsorbable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"transport", NewTransportError("down", nil), true},
		{"api", NewAPIError(503, "unavailable"), true},
		{"parse", NewParseError("garbage", nil).WithTier(3), true},
		{"validation", NewValidationError("empty goal", nil), false},
		{"storage", NewStorageError("full", nil), false},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAbsorbable(tt.err); got != tt.want {
				t.Errorf("IsAbsorbable() = %v, want %v", got, tt.want)
			}
		})
	}
}
