package order

import "errors"

type Code string

const (
	CodeValidation    Code = "VALIDATION_ERROR"
	CodeConfiguration Code = "CONFIGURATION_ERROR"
	CodeRelay         Code = "RELAY_ERROR"
)

// Error is the taxonomy crossing the API boundary: Code is machine-readable,
// Message is shown to the customer, Details carries the upstream description
// and is only exposed outside production.
type Error struct {
	Code    Code
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

func NewValidation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

func NewConfiguration(message string) *Error {
	return &Error{Code: CodeConfiguration, Message: message}
}

func NewRelay(message, details string) *Error {
	return &Error{Code: CodeRelay, Message: message, Details: details}
}

// AsError extracts a typed *Error from an error chain, or nil.
func AsError(err error) *Error {
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	return nil
}
