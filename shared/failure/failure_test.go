package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"eventbook/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "Date already booked",
	}

	if f.Error() != "Date already booked" {
		t.Errorf("expected error message to be 'Date already booked', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected *failure.Failure
	}{
		{
			name:     "with error",
			input:    errors.New("failed to decode request body"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "failed to decode request body"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			if f.Code != tt.expected.Code || f.Message != tt.expected.Message {
				t.Errorf("expected %+v, got %+v", tt.expected, f)
			}
		})
	}
}

func TestBadRequestFromString(t *testing.T) {
	result := failure.BadRequestFromString("Missing required fields")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
	}

	if f.Message != "Missing required fields" {
		t.Errorf("expected message to be 'Missing required fields', got %s", f.Message)
	}
}

func TestNotFound(t *testing.T) {
	result := failure.NotFound("Booking not found")

	if code := failure.GetCode(result); code != http.StatusNotFound {
		t.Errorf("expected code to be %d, got %d", http.StatusNotFound, code)
	}

	if result.Error() != "Booking not found" {
		t.Errorf("expected message to be 'Booking not found', got %s", result.Error())
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "failure", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest},
		{name: "wrapped failure", err: fmt.Errorf("outer: %w", failure.NotFound("missing")), code: http.StatusNotFound},
		{name: "predefined failure", err: failure.UnauthorizedError, code: http.StatusUnauthorized},
		{name: "plain error", err: errors.New("connection refused"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.err); code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, code)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "client failure", err: failure.BadRequestFromString("Date already booked"), message: "Date already booked"},
		{name: "wrapped client failure", err: fmt.Errorf("update: %w", failure.NotFound("Booking not found")), message: "Booking not found"},
		{name: "plain error is hidden", err: errors.New("pq: connection refused"), message: "Internal server error"},
		{name: "server failure is hidden", err: &failure.Failure{Code: http.StatusBadGateway, Message: "upstream"}, message: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if msg := failure.Message(tt.err); msg != tt.message {
				t.Errorf("expected message to be %q, got %q", tt.message, msg)
			}
		})
	}
}
