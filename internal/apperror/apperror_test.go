// GO TESTING BASICS:
// 1. Test files MUST end in _test.go — Go's tooling auto-discovers them
// 2. Test functions MUST start with "Test" and take *testing.T as the only param
// 3. Same package as the code being tested (so we can access unexported stuff)
// 4. Run with: go test ./internal/apperror/ -v  (-v = verbose, shows each test name)
package apperror

import (
	"errors"
	"testing"
)

// TABLE-DRIVEN TESTS:
// Go's idiomatic pattern for testing multiple cases — define a slice of test
// cases and loop over them, so adding a case is adding one struct literal.

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{
			name:      "NotFound wraps ErrNotFound",
			err:       NotFound("crop", "tomato"),
			target:    ErrNotFound,
			wantMatch: true,
		},
		{
			name:      "ValidationFailed wraps ErrValidation",
			err:       ValidationFailed("query", "query is required"),
			target:    ErrValidation,
			wantMatch: true,
		},
		{
			name:      "Invalid wraps ErrValidation",
			err:       Invalid(FieldErrors{"imageData": {"imageData is required"}}),
			target:    ErrValidation,
			wantMatch: true,
		},
		{
			name:      "Upstream wraps ErrUpstream",
			err:       Upstream("diagnose disease", errors.New("model timeout")),
			target:    ErrUpstream,
			wantMatch: true,
		},
		{
			name:      "NotFound does NOT match ErrValidation",
			err:       NotFound("crop", "tomato"),
			target:    ErrValidation,
			wantMatch: false,
		},
		{
			name:      "Upstream does NOT match ErrNotFound",
			err:       Upstream("get market insight", errors.New("boom")),
			target:    ErrNotFound,
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.target)
			if got != tt.wantMatch {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.wantMatch)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name        string
		err         *AppError
		wantMessage string
	}{
		{
			name:        "NotFound message includes resource and id",
			err:         NotFound("crop", "tomato"),
			wantMessage: "crop not found with id tomato",
		},
		{
			name:        "ValidationFailed uses custom message",
			err:         ValidationFailed("query", "query is required"),
			wantMessage: "query is required",
		},
		{
			name:        "Upstream message is capability-specific and stable",
			err:         Upstream("diagnose disease", errors.New("status 503 from model")),
			wantMessage: "failed to diagnose disease",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestUpstreamNeverLeaksCause(t *testing.T) {
	// The cause must stay reachable for server-side logs (errors.Is on the
	// chain) while the client-facing message stays generic.
	cause := errors.New("api key rejected")
	err := Upstream("process voice query", cause)

	if !errors.Is(err, cause) {
		t.Errorf("cause should remain on the error chain")
	}
	if err.Error() != "failed to process voice query" {
		t.Errorf("Error() = %q, want stable message", err.Error())
	}
}

func TestFieldErrorsAdd(t *testing.T) {
	fields := FieldErrors{}
	fields.Add("imageData", "imageData is required")
	fields.Add("imageData", "imageData must be a base64 string")

	if len(fields["imageData"]) != 2 {
		t.Errorf("expected 2 violations on imageData, got %d", len(fields["imageData"]))
	}
}

func TestValidationFailedFields(t *testing.T) {
	// Single-field failures still render as a field-error map, so 400 bodies
	// have one shape regardless of how many fields failed.
	err := ValidationFailed("location", "location is required")

	msgs, ok := err.Fields["location"]
	if !ok || len(msgs) != 1 || msgs[0] != "location is required" {
		t.Errorf("Fields = %v, want location violation", err.Fields)
	}
}
