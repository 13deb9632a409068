package ollama

import "errors"

var (
	// ErrUnexpectedStatus is returned for any non-2xx answer
	ErrUnexpectedStatus = errors.New("ollama: unexpected status")

	// ErrMissingResponse is returned when the body has no "response" field
	ErrMissingResponse = errors.New("ollama: missing response field")

	// ErrInvalidResponse is returned when "response" is not a string
	ErrInvalidResponse = errors.New("ollama: response field is not a string")
)
