// Package errors is the error taxonomy shared by handlers, usecases and
// repositories. Every failure is either a ValidationError (field level,
// resolved before any network call) or a RequestError carrying a Kind.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

type Kind int

const (
	KindInternal Kind = iota
	KindTransport
	KindRejected
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindSuperseded
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindRejected:
		return "rejected"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindSuperseded:
		return "superseded"
	default:
		return "internal"
	}
}

type RequestError struct {
	Kind    Kind
	Code    int
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *RequestError) Unwrap() error { return e.Err }

// ValidationError maps a field name to the messages rendered next to it.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a message for field and returns the receiver for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

func Validation(field, message string) error {
	return (&ValidationError{}).Add(field, message)
}

func BadRequest(msg string) error {
	return &RequestError{Kind: KindRejected, Code: http.StatusBadRequest, Message: msg}
}

func UnauthorizedError(msg string) error {
	return &RequestError{Kind: KindUnauthorized, Code: http.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) error {
	return &RequestError{Kind: KindForbidden, Code: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) error {
	return &RequestError{Kind: KindNotFound, Code: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &RequestError{Kind: KindConflict, Code: http.StatusConflict, Message: msg}
}

func Superseded(msg string) error {
	return &RequestError{Kind: KindSuperseded, Code: http.StatusConflict, Message: msg}
}

func InternalServerError(msg string) error {
	return &RequestError{Kind: KindInternal, Code: http.StatusInternalServerError, Message: msg}
}

// Transport wraps a failure to reach the backend at all.
func Transport(msg string, err error) error {
	return &RequestError{Kind: KindTransport, Code: http.StatusBadGateway, Message: msg, Err: err}
}

// Unavailable is a transport failure the client should back off from, e.g. an open breaker.
func Unavailable(msg string, err error) error {
	return &RequestError{Kind: KindTransport, Code: http.StatusServiceUnavailable, Message: msg, Err: err}
}

// FromStatus converts a backend HTTP status into a RequestError.
func FromStatus(code int, msg string) error {
	switch {
	case code == http.StatusUnauthorized:
		return UnauthorizedError(msg)
	case code == http.StatusForbidden:
		return Forbidden(msg)
	case code == http.StatusNotFound:
		return NotFound(msg)
	case code == http.StatusConflict:
		return Conflict(msg)
	case code >= 400 && code < 500:
		return &RequestError{Kind: KindRejected, Code: code, Message: msg}
	case code == http.StatusServiceUnavailable:
		return Unavailable(msg, nil)
	default:
		return Transport(msg, nil)
	}
}

// KindOf reports the Kind of err, KindInternal when err is not a RequestError.
func KindOf(err error) Kind {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	var re *RequestError
	return errors.As(err, &re) && re.Kind == kind
}

// HTTPStatus picks the response status for err.
func HTTPStatus(err error) int {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity
	}
	var re *RequestError
	if errors.As(err, &re) && re.Code != 0 {
		return re.Code
	}
	return http.StatusInternalServerError
}

// Message picks the user-facing message for err. Internal details are hidden.
func Message(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return "validation failed"
	}
	var re *RequestError
	if errors.As(err, &re) {
		return re.Message
	}
	return "internal server error"
}
