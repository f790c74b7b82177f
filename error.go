package sitegrab

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL          = "internal"
	EINVALID           = "invalid"
	ENOTFOUND          = "not_found"
	EMISSINGCREDENTIAL = "missing_credential"
	ETRANSPORT         = "transport"
	ESERVICE           = "service"
	EPARSE             = "parse"
	EUNKNOWN           = "unknown"
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the code and message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string

	// HTTP status returned by the scraping service, if any.
	Status int
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("sitegrab error: code=%s status=%d message=%s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("sitegrab error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// ErrorStatus unwraps an application error and returns the HTTP status
// reported by the scraping service. Returns 0 when there is none.
func ErrorStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
