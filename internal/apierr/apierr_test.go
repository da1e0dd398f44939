package apierr

import (
	"errors"
	"fmt"
	"testing"
)

func TestRequestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *RequestError
		want string
	}{
		{
			name: "transport",
			err:  Transport("cbdb", errors.New("connection refused")),
			want: "API request failed: connection refused",
		},
		{
			name: "status",
			err:  Status("tgaz", 404),
			want: "HTTP error status: 404",
		},
		{
			name: "decode",
			err:  Decode("tgaz", errors.New("unexpected end of JSON input")),
			want: "Invalid response format: unexpected end of JSON input",
		},
		{
			name: "unexpected",
			err:  Unexpected("cbdb", errors.New("boom")),
			want: "An unexpected error occurred: boom",
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

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("tool failed: %w", Status("tgaz", 500))

	kind, ok := KindOf(err)
	if !ok {
		t.Fatal("expected a RequestError in the chain")
	}
	if kind != KindStatus {
		t.Errorf("kind = %v, want %v", kind, KindStatus)
	}

	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("plain error should not yield a kind")
	}
}

func TestIsKind(t *testing.T) {
	err := Transport("cbdb", errors.New("dial tcp: connection refused"))

	if !IsKind(err, KindTransport) {
		t.Error("expected KindTransport")
	}
	if IsKind(err, KindDecode) {
		t.Error("did not expect KindDecode")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Transport("cbdb", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindTransport, "transport"},
		{KindStatus, "status"},
		{KindDecode, "decode"},
		{KindUnexpected, "unexpected"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "field and value",
			err:  NewValidationError("accurate", "3", "must be 0 (exact) or 1 (fuzzy)"),
			want: `validation failed for accurate="3": must be 0 (exact) or 1 (fuzzy)`,
		},
		{
			name: "field only",
			err:  NewValidationError("name", "", "place name is required"),
			want: "validation failed for name: place name is required",
		},
		{
			name: "message only",
			err:  NewValidationError("", "", "bad input"),
			want: "validation failed: bad input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	if !IsValidation(NewValidationError("f", "", "m")) {
		t.Error("expected IsValidation to be true")
	}
	if IsValidation(errors.New("plain")) {
		t.Error("expected IsValidation to be false for plain error")
	}
}
