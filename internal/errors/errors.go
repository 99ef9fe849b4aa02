package errors

import "errors"

// Kind classifies a failure for recovery purposes: validation errors are
// fixable by the user before submission, auth errors route to login,
// upstream and network errors require explicit re-initiation. No
// operation is ever retried automatically.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation is a client-side rejection before any request is sent.
	KindValidation
	// KindAuthRequired means no live session exists for the operation.
	KindAuthRequired
	// KindUpstream is a non-2xx response from the remote API.
	KindUpstream
	// KindNetwork means the request could not be completed at all.
	KindNetwork
)

// Error carries a user-facing message plus the classification the caller
// recovers on. Status is set for upstream errors only.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func AuthRequired(message string) *Error {
	return &Error{Kind: KindAuthRequired, Message: message}
}

func Upstream(status int, message string) *Error {
	return &Error{Kind: KindUpstream, Status: status, Message: message}
}

func Network(err error, message string) *Error {
	return &Error{Kind: KindNetwork, Message: message, Err: err}
}

// KindOf extracts the classification from an error chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
