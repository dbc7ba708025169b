package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("end", "end_time must be greater than start_time")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidInput, err.Code)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", err.HTTPStatus)
	}
	if err.Details["field"] != "end" {
		t.Errorf("expected field detail 'end', got %v", err.Details["field"])
	}
}

func TestInsufficientDataIsSoft(t *testing.T) {
	err := InsufficientData("turn_length", "speaker_00", 2)
	if IsHard(err) {
		t.Error("insufficient data must be a soft error")
	}
	if !IsCode(err, ErrCodeInsufficientData) {
		t.Error("expected INSUFFICIENT_DATA code")
	}
}

func TestHardErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		hard bool
	}{
		{"invalid input", InvalidInput("start", "negative"), true},
		{"empty conversation", EmptyConversation(), true},
		{"missing field", MissingField("speaker"), true},
		{"insufficient data", InsufficientData("adaptability", "a->b", 2), false},
		{"plain error", stderrors.New("boom"), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsHard(tc.err); got != tc.hard {
				t.Errorf("IsHard = %v, want %v", got, tc.hard)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("parse failure")
	err := Internal(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestWrappedAsAppError(t *testing.T) {
	appErr := EmptyConversation()
	wrapped := fmt.Errorf("analyze conversation: %w", appErr)

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed on wrapped error")
	}
	if got.Code != ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidInput, got.Code)
	}
}

func TestToResponse(t *testing.T) {
	err := MissingField("speaker")
	resp := err.ToResponse()
	if resp.Error.Code != ErrCodeMissingField {
		t.Errorf("expected code %s, got %s", ErrCodeMissingField, resp.Error.Code)
	}
	if resp.Error.Details["field"] != "speaker" {
		t.Errorf("expected field detail, got %v", resp.Error.Details)
	}
}
