// Package errs defines the tagged error taxonomy raised at the service
// boundary. The HTTP layer switches on the kind: business-rule, auth and
// not-found failures map to 400 with the message in the body, persistence
// failures to 500.
package errs

import "errors"

type Kind int

const (
	KindBusinessRule Kind = iota
	KindAuthentication
	KindNotFound
	KindPersistence
)

// Error carries a kind tag plus the human-readable message. Messages are
// part of the API contract and must be returned verbatim.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "domain error"
}

func (e *Error) Unwrap() error { return e.Err }

func BusinessRule(msg string) error {
	return &Error{Kind: KindBusinessRule, Message: msg}
}

func Authentication(msg string) error {
	return &Error{Kind: KindAuthentication, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Persistence wraps an unexpected store failure. Services never swallow
// these; they surface to the adapter as an internal error.
func Persistence(err error) error {
	return &Error{Kind: KindPersistence, Message: "persistence failure", Err: err}
}

// KindOf reports the kind of a domain error. The boolean is false when err
// is not a domain error (the adapter then treats it as internal).
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}

func IsBusinessRule(err error) bool   { k, ok := KindOf(err); return ok && k == KindBusinessRule }
func IsAuthentication(err error) bool { k, ok := KindOf(err); return ok && k == KindAuthentication }
func IsNotFound(err error) bool       { k, ok := KindOf(err); return ok && k == KindNotFound }
func IsPersistence(err error) bool    { k, ok := KindOf(err); return ok && k == KindPersistence }
