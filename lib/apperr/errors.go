package apperr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// Kind classifies an error the way the API reports it. Clients branch on the
// kind (status class), never on message text.
type Kind int

const (
	KindServer Kind = iota // 5xx, injected or unexpected; retryable
	KindValidation
	KindConflict
	KindNotFound
	KindAuth
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindAuth:
		return "auth"
	default:
		return "server"
	}
}

type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Kind() Kind {
	return e.kind
}

func New(kind Kind, msg string) error {
	return &Error{kind: kind, msg: msg}
}

func Errorf(kind Kind, format string, args ...interface{}) error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{kind: kind, msg: msg, err: err}
}

// KindOf reports the kind of err. Unclassified errors count as server errors,
// so an unexpected failure stays retryable.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindServer
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsRetryable reports whether the retry wrapper may re-issue the failed call.
// Only transient/server-class failures qualify.
func IsRetryable(err error) bool {
	return err != nil && KindOf(err) == KindServer
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindConflict:
		return fiber.StatusConflict
	case KindNotFound:
		return fiber.StatusNotFound
	case KindAuth:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// FromStatus converts an HTTP status into the matching kind, by status class.
func FromStatus(status int, msg string) error {
	switch {
	case status == fiber.StatusNotFound:
		return New(KindNotFound, msg)
	case status == fiber.StatusUnauthorized || status == fiber.StatusForbidden:
		return New(KindAuth, msg)
	case status == fiber.StatusConflict:
		return New(KindConflict, msg)
	case status >= 400 && status < 500:
		return New(KindValidation, msg)
	default:
		return New(KindServer, msg)
	}
}
