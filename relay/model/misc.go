package model

import "net/http"

// ErrorEnvelope is the JSON body returned on every failed request.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type ErrorWithStatusCode struct {
	ErrorEnvelope
	StatusCode int `json:"-"`
}

func NewError(statusCode int, message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		ErrorEnvelope: ErrorEnvelope{Error: message},
		StatusCode:    statusCode,
	}
}

func NewErrorWithDetails(statusCode int, message string, details string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		ErrorEnvelope: ErrorEnvelope{Error: message, Details: details},
		StatusCode:    statusCode,
	}
}

// The full failure taxonomy of one generation request. Every branch is
// terminal and maps to exactly one status/body pair.

func ErrMissingParam() *ErrorWithStatusCode {
	return NewError(http.StatusBadRequest, "Missing required parameter: prompt or model")
}

func ErrModelNotFound() *ErrorWithStatusCode {
	return NewError(http.StatusBadRequest, "Model is invalid")
}

func ErrModelDisabled() *ErrorWithStatusCode {
	return NewError(http.StatusBadRequest, "This model is currently disabled")
}

func ErrUpstreamParse(details string) *ErrorWithStatusCode {
	return NewErrorWithDetails(http.StatusInternalServerError, "Failed to parse response", details)
}

func ErrUpstreamFormat() *ErrorWithStatusCode {
	return NewErrorWithDetails(http.StatusInternalServerError, "Invalid response format", "Image data not found in response")
}

func ErrUpstreamDecode(details string) *ErrorWithStatusCode {
	return NewErrorWithDetails(http.StatusInternalServerError, "Failed to process image data", details)
}

func ErrInference(details string) *ErrorWithStatusCode {
	return NewErrorWithDetails(http.StatusInternalServerError, "Image generation failed", details)
}
