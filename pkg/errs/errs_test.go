package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestUserMessage(t *testing.T) {
	cause := errors.New("connection refused")
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "validation", err: NewValidationError("amount", "Amount must be greater than 0"), want: "Amount must be greater than 0"},
		{name: "conflict", err: NewConflictError("tx-1"), want: MsgDuplicateID},
		{name: "wrapped conflict", err: fmt.Errorf("create: %w", NewConflictError("tx-1")), want: MsgDuplicateID},
		{name: "transport", err: NewTransportError("list", "Failed to fetch transactions", 500, cause), want: "Failed to fetch transactions"},
		{name: "not found", err: NewNotFoundError("transaction 7 not found"), want: "transaction 7 not found"},
		{name: "range", err: NewRangeError(4, 2), want: "page 5 is out of range (1-2)"},
		{name: "other", err: errors.New("boom"), want: MsgUnexpected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Fatalf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := fmt.Errorf("list: %w", NewTransportError("list", "Failed to fetch transactions", 0, cause))
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to be reachable")
	}
	if !IsTransport(err) {
		t.Fatalf("expected IsTransport")
	}
	if IsConflict(err) || IsValidation(err) || IsNotFound(err) {
		t.Fatalf("transport error matched another kind")
	}
}

func TestTransportErrorString(t *testing.T) {
	err := NewTransportError("create", "Failed to create transaction", 502, nil)
	if got, want := err.Error(), "Failed to create transaction: status 502"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
