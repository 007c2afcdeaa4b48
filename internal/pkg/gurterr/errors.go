// Package gurterr defines the error family shared by all GURT packages.
//
// Every failure surfaced across the client boundary belongs to exactly one
// Kind. Internal errors raised during a protocol phase are coerced into the
// phase's kind before they cross the boundary, so callers never see raw
// socket or TLS error types.
package gurterr

import (
	"errors"
	"fmt"
)

// Kind classifies a GURT failure.
type Kind int

// The closed set of failure kinds.
const (
	// URL indicates a malformed or wrong-scheme address.
	URL Kind = iota + 1
	// Connection indicates a refused, unreachable or prematurely closed socket.
	Connection
	// Timeout indicates a phase bound was exceeded.
	Timeout
	// Transport indicates an encrypted-transport setup or negotiation failure.
	Transport
	// Handshake indicates a failed GURT handshake exchange.
	Handshake
	// Protocol indicates malformed wire grammar.
	Protocol
)

func (k Kind) String() string {
	switch k {
	case URL:
		return "url error"
	case Connection:
		return "connection error"
	case Timeout:
		return "timeout error"
	case Transport:
		return "transport error"
	case Handshake:
		return "handshake error"
	case Protocol:
		return "protocol error"
	}
	return "unknown error"
}

// Error is a classified GURT failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error with the given message.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Err: errors.New(msg)}
}

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Wrap classifies err under kind, annotated with msg.
// Returns nil if err is nil.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: fmt.Errorf("%s: %w", msg, err)}
}

// Coerce classifies err under kind unless it is already classified,
// in which case it is returned unchanged. Returns nil if err is nil.
func Coerce(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	var ge *Error
	if errors.As(err, &ge) {
		return err
	}
	return Wrap(kind, err, msg)
}

// Is reports whether err is classified under kind.
func Is(err error, kind Kind) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Kind == kind
}
