// Package apperr classifies errors raised anywhere in a request into the
// HTTP status and message sent to the client.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind tags an error with the response family it belongs to.
type Kind int

const (
	KindUnclassified Kind = iota
	KindValidation
	KindNotFound
	KindStoreSyntax
	KindStoreIntegrity
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStoreSyntax:
		return "store_syntax"
	case KindStoreIntegrity:
		return "store_integrity"
	default:
		return "unclassified"
	}
}

// ErrInvalidInput marks a value that could not be parsed into the type the
// store expects, such as a non-numeric id. It is answered like the store's own
// invalid-text-representation error.
var ErrInvalidInput = errors.New("invalid input syntax")

// Error is an application error carrying the status and message to send.
type Error struct {
	Kind   Kind
	Status int
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Validation is a 400 raised before the store is touched.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Msg: msg}
}

// NotFound is a 404 for an entity the application looked up and did not find.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Msg: fmt.Sprintf(format, args...)}
}

// InvalidInput wraps a parse failure of a path or body value.
func InvalidInput(what string, err error) error {
	return fmt.Errorf("%s: %w: %w", what, ErrInvalidInput, err)
}
