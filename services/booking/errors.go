package booking

import (
	"errors"
	"fmt"
)

// Error codes for booking lifecycle failures.
const (
	CodeNotFound          = "notFound"
	CodeNotAuthorized     = "notAuthorized"
	CodeInvalidTransition = "invalidTransition"
	CodeInvalidInput      = "invalidInput"
)

// Error is a typed booking lifecycle error.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...interface{}) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func hasCode(err error, code string) bool {
	var bErr *Error
	return errors.As(err, &bErr) && bErr.Code == code
}

// IsNotFound reports whether err means the referenced booking does not exist.
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsNotAuthorized reports whether err means the caller may not act on the booking.
func IsNotAuthorized(err error) bool { return hasCode(err, CodeNotAuthorized) }

// IsInvalidTransition reports whether err means the status change is illegal.
func IsInvalidTransition(err error) bool { return hasCode(err, CodeInvalidTransition) }

// IsInvalidInput reports whether err means the request itself was malformed.
func IsInvalidInput(err error) bool { return hasCode(err, CodeInvalidInput) }
