package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name            string
		err             *Error
		expectedStatus  int
		expectedCode    string
		expectedMessage string
	}{
		{
			name:            "not found with custom message",
			err:             NotFound("Route not found - /nope"),
			expectedStatus:  http.StatusNotFound,
			expectedCode:    CodeResourceNotFound,
			expectedMessage: "Route not found - /nope",
		},
		{
			name:            "not found default message",
			err:             NotFound(""),
			expectedStatus:  http.StatusNotFound,
			expectedCode:    CodeResourceNotFound,
			expectedMessage: "Resource not found",
		},
		{
			name:            "bad request with caller-supplied code",
			err:             BadRequest("Email already exists", CodeAuthEmailAlreadyExists),
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    CodeAuthEmailAlreadyExists,
			expectedMessage: "Email already exists",
		},
		{
			name:            "bad request default message",
			err:             BadRequest("", ""),
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    "",
			expectedMessage: "Bad Request",
		},
		{
			name:            "unauthorized default",
			err:             Unauthorized(""),
			expectedStatus:  http.StatusUnauthorized,
			expectedCode:    CodeAccessUnauthorized,
			expectedMessage: "Unauthorized Access",
		},
		{
			name:            "internal default",
			err:             Internal(""),
			expectedStatus:  http.StatusInternalServerError,
			expectedCode:    CodeInternalServerError,
			expectedMessage: "Internal Server Error",
		},
		{
			name:            "generic http exception",
			err:             NewHTTP(http.StatusTooManyRequests, CodeTooManyRequests, ""),
			expectedStatus:  http.StatusTooManyRequests,
			expectedCode:    CodeTooManyRequests,
			expectedMessage: "Http Exception Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, tt.err.Status)
			assert.Equal(t, tt.expectedCode, tt.err.Code)
			assert.Equal(t, tt.expectedMessage, tt.err.Message)
			assert.Equal(t, tt.expectedMessage, tt.err.Error())
		})
	}
}

func TestErrorAs(t *testing.T) {
	var wrapped error = BadRequest("Email already exists", CodeAuthEmailAlreadyExists)

	var appErr *Error
	assert.True(t, errors.As(wrapped, &appErr), "should unwrap to *apperr.Error")
	assert.Equal(t, CodeAuthEmailAlreadyExists, appErr.Code)
}
