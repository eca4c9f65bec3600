package failure_test

import (
	"errors"
	"net/http"
	"praxis/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequest", err: failure.BadRequest(errors.New("bad")), code: http.StatusBadRequest},
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest},
		{name: "Unauthorized", err: failure.Unauthorized("no token"), code: http.StatusUnauthorized},
		{name: "NotFound", err: failure.NotFound("appointment not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("slot already booked"), code: http.StatusConflict},
		{name: "Forbidden", err: failure.Forbidden("nope"), code: http.StatusForbidden},
		{name: "UnprocessableEntity", err: failure.UnprocessableEntity("cannot transition"), code: http.StatusUnprocessableEntity},
		{name: "InternalError", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, got)
			}
		})
	}
}

func TestBadRequestNilError(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestValidationCarriesAllFields(t *testing.T) {
	fields := []failure.FieldError{
		{Field: "client_email", Rule: failure.RuleFormat, Message: "client_email must be a valid email address"},
		{Field: "client_phone", Rule: failure.RuleFormat, Message: "client_phone must be a valid phone number"},
		{Field: "appointment_date", Rule: failure.RuleRequired, Message: "appointment_date is required"},
	}

	err := failure.Validation(fields)

	if got := failure.GetCode(err); got != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, got)
	}

	got := failure.GetFields(err)
	if len(got) != len(fields) {
		t.Fatalf("expected %d field errors, got %d", len(fields), len(got))
	}

	for i, field := range fields {
		if got[i] != field {
			t.Errorf("expected field error %v, got %v", field, got[i])
		}
	}
}

func TestGetCodeUnknownError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, got)
	}

	if fields := failure.GetFields(errors.New("plain")); fields != nil {
		t.Errorf("expected nil fields, got %v", fields)
	}
}
