package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeEmptyInput, "nothing to render: %d categories", 4)

	if err.Code != ErrCodeEmptyInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeEmptyInput)
	}
	if err.Message != "nothing to render: 4 categories" {
		t.Errorf("Message = %v, want %v", err.Message, "nothing to render: 4 categories")
	}

	expected := "EMPTY_INPUT: nothing to render: 4 categories"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(ErrCodeLoadFailure, cause, "could not load default data")

	if err.Code != ErrCodeLoadFailure {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeLoadFailure)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if got, want := err.Error(), "LOAD_FAILURE: could not load default data: unexpected EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInvalidKey, "test"), ErrCodeInvalidKey, true},
		{"non-matching code", New(ErrCodeInvalidKey, "test"), ErrCodeLoadFailure, false},
		{"wrapped error", Wrap(ErrCodeLoadFailure, New(ErrCodeInvalidKey, "inner"), "outer"), ErrCodeLoadFailure, true},
		{"non-Error type", errors.New("plain error"), ErrCodeEmptyInput, false},
		{"nil error", nil, ErrCodeEmptyInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeConfirmationRequired, "test"), ErrCodeConfirmationRequired},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeEmptyInput, "friendly message"), "friendly message"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDetail(t *testing.T) {
	err := Wrap(ErrCodeLoadFailure, errors.New("open default-swot.json: no such file"), "could not load default data")
	want := "could not load default data (open default-swot.json: no such file)"
	if got := Detail(err); got != want {
		t.Errorf("Detail() = %q, want %q", got, want)
	}

	if got := Detail(New(ErrCodeEmptyInput, "empty")); got != "empty" {
		t.Errorf("Detail() without cause = %q, want %q", got, "empty")
	}
}
