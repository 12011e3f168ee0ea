package domain

import "errors"

type ErrorCode string

const (
	ErrorCodeLoadFailed      ErrorCode = "LOAD_FAILED"
	ErrorCodeNotLoaded       ErrorCode = "NOT_LOADED"
	ErrorCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrorCodeInternal        ErrorCode = "INTERNAL"
)

// LoadFailedMessage is the only text shown to users when tickets could
// not be fetched, whatever the cause.
const LoadFailedMessage = "Failed to load data. Please try again later."

type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapDomainError attaches a code and message to an underlying cause.
func WrapDomainError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// HasCode reports whether err carries a DomainError with the given code.
func HasCode(err error, code ErrorCode) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
