package flow

import (
	"errors"
	"fmt"
)

// Kind classifies why a flow did not succeed.
type Kind string

const (
	KindValidation Kind = "validation" // rejected before any I/O
	KindAuth       Kind = "auth"       // credentials did not match
	KindStorage    Kind = "storage"    // token could not be persisted
	KindRemote     Kind = "remote"     // network failure or non-2xx response
)

// ErrSubmitInProgress is returned when Attempt is called while a previous
// attempt on the same flow is still running.
var ErrSubmitInProgress = errors.New("submission already in progress")

// Error is the failed outcome of a flow. Message is safe to show the user.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// MessageOf returns the user-facing message of err.
func MessageOf(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func validationError(op string, err error) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: err.Error(), Err: err}
}
