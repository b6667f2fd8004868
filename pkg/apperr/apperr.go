// Package apperr holds the error taxonomy shared by repositories, services
// and handlers. Handlers turn a Kind into an HTTP status; the Message is what
// the client sees, the wrapped Err is only logged.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type Kind int

const (
	KindStorage Kind = iota
	KindNotFound
	KindMissingField
	KindInvalidField
	KindUnknownFarmer
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindMissingField:
		return "missing_field"
	case KindInvalidField:
		return "invalid_field"
	case KindUnknownFarmer:
		return "unknown_farmer"
	default:
		return "storage"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so errors.Is(err, apperr.ErrNotFound) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Message == "" && t.Kind == e.Kind
}

var (
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrMissingField  = &Error{Kind: KindMissingField}
	ErrInvalidField  = &Error{Kind: KindInvalidField}
	ErrUnknownFarmer = &Error{Kind: KindUnknownFarmer}
	ErrStorage       = &Error{Kind: KindStorage}
)

func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

func MissingField(fields ...string) *Error {
	return &Error{Kind: KindMissingField, Message: "missing required field: " + strings.Join(fields, ", ")}
}

func Invalid(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidField, Message: fmt.Sprintf(format, args...)}
}

func UnknownFarmer(id uint) *Error {
	return &Error{Kind: KindUnknownFarmer, Message: fmt.Sprintf("farmer %d does not exist", id)}
}

// Storage wraps a backing-store failure. op names the repository call.
func Storage(op string, err error) *Error {
	return &Error{Kind: KindStorage, Message: "database error", Err: fmt.Errorf("%s: %w", op, err)}
}

// KindOf reports the Kind of err. Errors outside the taxonomy count as storage failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

// HTTPStatus maps err to the response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindMissingField, KindInvalidField, KindUnknownFarmer:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the text safe to return to a client.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "internal server error"
}
