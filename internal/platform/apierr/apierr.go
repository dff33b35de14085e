package apierr

import (
	"fmt"
	"net/http"
)

// Codes carried in the "code" field of the error envelope.
const (
	CodeNotFound        = "not_found"
	CodeInvalidArgument = "invalid_argument"
	CodeUnavailable     = "unavailable"
	CodeForbidden       = "forbidden"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func NotFound(err error) *Error { return New(http.StatusNotFound, CodeNotFound, err) }

func InvalidArgument(err error) *Error { return New(http.StatusBadRequest, CodeInvalidArgument, err) }

func Unavailable(err error) *Error { return New(http.StatusServiceUnavailable, CodeUnavailable, err) }

func Forbidden(err error) *Error { return New(http.StatusForbidden, CodeForbidden, err) }
