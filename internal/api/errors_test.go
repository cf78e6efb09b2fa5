package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	type testCase struct {
		input  *Error
		output string
	}

	testCases := []testCase{
		{
			input:  NotFound("Movie"),
			output: "Movie Not Found.",
		},
		{
			input:  NotFound("Episode"),
			output: "Episode Not Found.",
		},
		{
			input:  Unauthorized("Invalid Password."),
			output: "Invalid Password.",
		},
		{
			input:  &Error{Code: http.StatusUnauthorized},
			output: "Invalid Token.",
		},
		{
			input:  Internal(),
			output: "Internal Server Error.",
		},
		{
			input:  BadRequest("This email is already taken."),
			output: "This email is already taken.",
		},
		{
			input:  &Error{Code: http.StatusTeapot},
			output: "An Error Occurred.",
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.output, tc.input.Message())
		assert.Equal(t, tc.output, tc.input.Error())
	}
}

func TestErrorClassification(t *testing.T) {
	wrapped := fmt.Errorf("resolve request: %w", NotFound("Serie"))

	var apiErr *Error
	assert.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
	assert.Equal(t, "Serie Not Found.", apiErr.Message())

	apiErr = nil
	assert.False(t, errors.As(errors.New("connection reset"), &apiErr))
}

func TestBindingErrorFallback(t *testing.T) {
	err := bindingError(errors.New("unexpected EOF"))
	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, "unexpected EOF", err.Message())
}
