// Package apperr is the error taxonomy every workflow speaks. Services
// return these; handlers only translate them to HTTP statuses.
package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	// Internal covers anything that is not a business-rule failure,
	// typically an unexpected storage error.
	Internal Kind = iota
	// Validation is malformed input.
	Validation
	// NotFound is a reference to an absent entity.
	NotFound
	// Authorization is an actor lacking permission for an action.
	Authorization
	// Temporal is an action attempted against a past-dated meetup.
	Temporal
	// Conflict is a uniqueness or business-rule violation.
	Conflict
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap keeps the underlying cause reachable via errors.Is/As.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// HTTPStatus maps an error kind to a status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Validation:
		return fiber.StatusBadRequest
	case NotFound:
		return fiber.StatusNotFound
	case Authorization, Temporal:
		return fiber.StatusForbidden
	case Conflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
