package database

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	KindOther Kind = iota
	KindNotFound
	KindDuplicateKey
	KindValidationFailed
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindDuplicateKey:
		return "duplicate key"
	case KindValidationFailed:
		return "validation failed"
	default:
		return "other"
	}
}

// Error is the error type returned by the repositories and the services built on top
// of them. Kind tells callers how to report it without inspecting driver errors.
type Error struct {
	Kind     Kind
	Value    string
	Messages []string
	Status   int
	Message  string
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("bootcamp %s not found", e.Value)
	case KindValidationFailed:
		return "validation failed: " + strings.Join(e.Messages, ",")
	}

	if e.Message != "" {
		return e.Message
	}

	if e.Err != nil {
		return e.Err.Error()
	}

	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports errors of the same kind as equal so that callers can use errors.Is with
// the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrDuplicateKey     = &Error{Kind: KindDuplicateKey}
	ErrValidationFailed = &Error{Kind: KindValidationFailed}
)

func NotFound(id string) error {
	return &Error{Kind: KindNotFound, Value: id}
}

func DuplicateKey(err error) error {
	return &Error{Kind: KindDuplicateKey, Err: err}
}

func ValidationFailed(messages ...string) error {
	return &Error{Kind: KindValidationFailed, Messages: messages}
}

// WithStatus wraps err so that it is reported with the given status code and message.
func WithStatus(status int, message string, err error) error {
	return &Error{Kind: KindOther, Status: status, Message: message, Err: err}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindOther
}
